package values

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBool_GeneratedTokens(t *testing.T) {
	Run(t, MustTruthyValues(), func(t *testing.T, v any) {
		got, err := ParseBool(v)
		require.NoError(t, err)
		assert.True(t, got)
		assert.True(t, IsTruthy(v))
	})

	Run(t, MustFalsyValues(), func(t *testing.T, v any) {
		got, err := ParseBool(v)
		require.NoError(t, err)
		assert.False(t, got)
		assert.False(t, IsTruthy(v))
	})
}

func TestParseBool(t *testing.T) {
	tests := []struct {
		name    string
		input   any
		want    bool
		wantErr bool
	}{
		{name: "padded string", input: "  Yes\n", want: true},
		{name: "int64 one", input: int64(1), want: true},
		{name: "uint8 zero", input: uint8(0), want: false},
		{name: "unknown word", input: "maybe", wantErr: true},
		{name: "empty string", input: "", wantErr: true},
		{name: "int two", input: 2, wantErr: true},
		{name: "float", input: 1.0, wantErr: true},
		{name: "nil", input: nil, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseBool(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrNotBool))
				assert.False(t, IsTruthy(tt.input))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
