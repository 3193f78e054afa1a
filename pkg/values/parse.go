package values

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
)

// ErrNotBool is returned by ParseBool for values that are neither truthy nor falsy tokens.
var ErrNotBool = errors.New("not a boolean token")

// ParseBool interprets v as a boolean token.
//
// It accepts every token produced by TruthyValues and FalsyValues: bools, integers
// equal to 0 or 1, and the strings true/y/yes/on/1 and false/n/no/off/0 in any case.
func ParseBool(v any) (bool, error) {
	switch val := v.(type) {
	case bool:
		return val, nil
	case string:
		switch strings.ToLower(strings.TrimSpace(val)) {
		case "true", "y", "yes", "on", "1":
			return true, nil
		case "false", "n", "no", "off", "0":
			return false, nil
		}
		return false, fmt.Errorf("%q: %w", val, ErrNotBool)
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		switch rv.Int() {
		case 1:
			return true, nil
		case 0:
			return false, nil
		}
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		switch rv.Uint() {
		case 1:
			return true, nil
		case 0:
			return false, nil
		}
	}
	return false, fmt.Errorf("%#v: %w", v, ErrNotBool)
}

// IsTruthy reports whether v is a truthy token. Unrecognised values are false.
func IsTruthy(v any) bool {
	b, err := ParseBool(v)
	return err == nil && b
}
