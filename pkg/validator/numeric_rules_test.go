package validator_test

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/schemakit/pkg/validator"
)

func TestNumber(t *testing.T) {
	t.Parallel()

	t.Run("keeps native numbers as is", func(t *testing.T) {
		res := validator.Compile(validator.Number()).Validate(5)
		require.True(t, res.Valid())
		assert.Equal(t, 5, res.Value)

		res = validator.Compile(validator.Number()).Validate(uint16(7))
		require.True(t, res.Valid())
		assert.Equal(t, uint16(7), res.Value)
	})

	t.Run("converts numeric strings", func(t *testing.T) {
		res := validator.Compile(validator.Number()).Validate(" 12.5 ")
		require.True(t, res.Valid())
		assert.Equal(t, 12.5, res.Value)
	})

	t.Run("converts json numbers", func(t *testing.T) {
		res := validator.Compile(validator.Number()).Validate(json.Number("7"))
		require.True(t, res.Valid())
		assert.Equal(t, float64(7), res.Value)
	})

	t.Run("converts integer strings to int64", func(t *testing.T) {
		res := validator.Compile(validator.Number().Integer()).Validate("123")
		require.True(t, res.Valid())
		assert.Equal(t, int64(123), res.Value)
	})

	t.Run("integers beyond float precision keep every digit", func(t *testing.T) {
		v := validator.Compile(validator.Number().Integer())

		tests := []struct {
			name  string
			value any
			want  any
		}{
			{"json number", json.Number("9007199254740993"), int64(9007199254740993)},
			{"negative json number", json.Number("-9223372036854775808"), int64(math.MinInt64)},
			{"string", " 9007199254740993 ", int64(9007199254740993)},
			{"unsigned string", "18446744073709551615", uint64(math.MaxUint64)},
			{"exponent falls back to float", json.Number("1e3"), int64(1000)},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				res := v.Validate(tt.value)
				require.True(t, res.Valid(), res.Errors)
				assert.Equal(t, tt.want, res.Value)
			})
		}
	})

	t.Run("exact integers still respect bounds", func(t *testing.T) {
		res := validator.Compile(validator.Number().Integer().Max(65535).Label("a")).Validate(json.Number("12312312312"))
		require.False(t, res.Valid())
		assert.Equal(t, []string{"a must be less than or equal to 65535"}, res.Errors.Messages())
	})

	t.Run("rejects strings without conversion", func(t *testing.T) {
		res := validator.CompileWith(validator.Number(), validator.Options{}).Validate("123")
		require.False(t, res.Valid())
		assert.Equal(t, "number.base", res.Errors[0].TranslationKey)
	})

	t.Run("rejects non numeric values", func(t *testing.T) {
		for _, value := range []any{"abc", true, nil, []int{1}, math.NaN(), math.Inf(1)} {
			res := validator.Compile(validator.Number()).Validate(value)
			require.False(t, res.Valid(), "value %v", value)
			assert.Equal(t, []string{"value is not a valid number."}, res.Errors.Messages())
		}
	})

	t.Run("rejects fractions for integers", func(t *testing.T) {
		res := validator.Compile(validator.Number().Integer().Label("a")).Validate(1312.22)
		require.False(t, res.Valid())
		assert.Equal(t, []string{"a is not a valid integer."}, res.Errors.Messages())
	})

	t.Run("bounds", func(t *testing.T) {
		v := validator.Compile(validator.Number().Integer().Min(-32768).Max(65535))

		for _, value := range []any{0, 65535, -32768, "100"} {
			assert.True(t, v.Validate(value).Valid(), "value %v", value)
		}

		res := v.Validate(65536)
		require.False(t, res.Valid())
		assert.Equal(t, []string{"value must be less than or equal to 65535"}, res.Errors.Messages())

		res = v.Validate(-40000)
		require.False(t, res.Valid())
		assert.Equal(t, []string{"value must be larger than or equal to -32768"}, res.Errors.Messages())
		assert.Equal(t, float64(-32768), res.Errors[0].TranslationValues["limit"])
	})

	t.Run("integer modifier panics on other kinds", func(t *testing.T) {
		err := recoverError(func() { validator.String().Integer() })
		assert.ErrorIs(t, err, validator.ErrInvalidRule)
	})
}

func TestBoolean(t *testing.T) {
	t.Parallel()

	v := validator.Compile(validator.Boolean().Label("flag"))

	tests := []struct {
		name  string
		value any
		want  bool
	}{
		{"native true", true, true},
		{"native false", false, false},
		{"string true", "true", true},
		{"string with spaces", " false ", false},
		{"string one", "1", true},
		{"number one", 1, true},
		{"number zero", 0.0, false},
		{"json number one", json.Number("1"), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := v.Validate(tt.value)
			require.True(t, res.Valid())
			assert.Equal(t, tt.want, res.Value)
		})
	}

	t.Run("rejects other values", func(t *testing.T) {
		for _, value := range []any{"yes", 2, "abc", nil} {
			res := v.Validate(value)
			require.False(t, res.Valid(), "value %v", value)
			assert.Equal(t, []string{"flag is not a valid boolean."}, res.Errors.Messages())
		}
	})

	t.Run("rejects strings without conversion", func(t *testing.T) {
		res := validator.CompileWith(validator.Boolean(), validator.Options{}).Validate("true")
		assert.False(t, res.Valid())
	})
}
