package validation

import (
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestName(t *testing.T) {
	testCases := []struct {
		name     string
		raw      string
		expected string
		err      error
	}{
		{name: "should accept exactly three characters", raw: "Gin", expected: "Gin"},
		{name: "should trim surrounding whitespace", raw: "  Mojito \t", expected: "Mojito"},
		{name: "should reject two characters", raw: "ab", err: ErrNameTooShort},
		{name: "should reject short name padded with spaces", raw: "   ab   ", err: ErrNameTooShort},
		{name: "should reject empty name", raw: "", err: ErrNameTooShort},
		{name: "should count runes not bytes", raw: "Çé", err: ErrNameTooShort},
		{name: "should reject names over the maximum", raw: fmt.Sprintf("%051d", 0), err: ErrNameTooLong},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Name(tt.raw, MinNameLength, MaxNameLength)
			if tt.err != nil {
				assert.ErrorIs(t, err, tt.err)
				assert.Empty(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestPrice(t *testing.T) {
	testCases := []struct {
		name     string
		raw      string
		expected string
		ok       bool
		err      error
	}{
		{name: "should accept positive price", raw: "5.00", expected: "5", ok: true},
		{name: "should accept smallest unit", raw: "0.01", expected: "0.01", ok: true},
		{name: "should accept the largest decimal(10,2) value", raw: "99999999.99", expected: "99999999.99", ok: true},
		{name: "should round to two places", raw: "2.499", expected: "2.5", ok: true},
		{name: "should reject zero", raw: "0", err: ErrPriceNotPositive},
		{name: "should reject negative", raw: "-1.50", err: ErrPriceNotPositive},
		{name: "should reject absent", raw: "", err: ErrPriceNotPositive},
		{name: "should reject non numeric", raw: "cheap", err: ErrPriceNotPositive},
		{name: "should reject values rounding to zero", raw: "0.001", err: ErrPriceNotPositive},
		{name: "should reject nine integer digits", raw: "100000000", err: ErrPriceTooLarge},
		{name: "should reject values rounding past the limit", raw: "99999999.995", err: ErrPriceTooLarge},
		{name: "should reject huge values", raw: "12345678901234567890.12", err: ErrPriceTooLarge},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Price(tt.raw)
			if !tt.ok {
				assert.ErrorIs(t, err, tt.err)
				return
			}
			require.NoError(t, err)
			assert.True(t, got.Equal(decimal.RequireFromString(tt.expected)), "got %s", got)
		})
	}
}

func TestRequired(t *testing.T) {
	got, err := Required("  Fresh mint  ", MaxFlavourLength)
	require.NoError(t, err)
	assert.Equal(t, "Fresh mint", got)

	_, err = Required("   ", 0)
	assert.ErrorIs(t, err, ErrRequired)

	_, err = Required("abcd", 3)
	assert.ErrorIs(t, err, ErrTooLong)
}

func TestErrors(t *testing.T) {
	errs := Errors{}
	assert.NoError(t, errs.Err())

	errs.Add("name", ErrNameTooShort)
	errs.Add("name", ErrNameTooLong)
	errs.Add("price", ErrPriceNotPositive)
	errs.Add("description", nil)

	err := errs.Err()
	require.Error(t, err)
	assert.Equal(t, "validation failed: name: name too short; price: price must be positive", err.Error())

	wrapped := fmt.Errorf("create cocktail: %w", err)
	fieldErrs, ok := AsErrors(wrapped)
	require.True(t, ok)
	assert.Equal(t, "name too short", fieldErrs.Details()["name"])
}
