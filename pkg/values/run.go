package values

import (
	"fmt"
	"testing"
)

// Run runs fn as a subtest for each value, named by the value's Go syntax.
func Run(t *testing.T, vals []any, fn func(t *testing.T, v any)) {
	t.Helper()
	for _, v := range vals {
		t.Run(fmt.Sprintf("%#v", v), func(t *testing.T) {
			fn(t, v)
		})
	}
}
