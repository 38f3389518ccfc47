// Package validation holds the field rules shared by every catalog entity.
package validation

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

const (
	MinNameLength    = 3
	MaxNameLength    = 50
	MaxFlavourLength = 150

	// prices are stored as decimal(10,2)
	PriceDigits = 10
	PricePlaces = 2
)

// maxPrice is the first value that no longer fits decimal(PriceDigits,PricePlaces)
var maxPrice = decimal.New(1, PriceDigits-PricePlaces)

var (
	ErrNameTooShort     = errors.New("name too short")
	ErrNameTooLong      = errors.New("name too long")
	ErrPriceNotPositive = errors.New("price must be positive")
	ErrPriceTooLarge    = fmt.Errorf("price must have at most %d digits before the decimal point", PriceDigits-PricePlaces)
	ErrRequired         = errors.New("this field is required")
	ErrTooLong          = errors.New("value too long")
)

// Name trims raw and checks its length in characters against [min, max].
// A max of zero disables the upper bound.
func Name(raw string, min, max int) (string, error) {
	name := strings.TrimSpace(raw)
	length := utf8.RuneCountInString(name)
	if length < min {
		return "", ErrNameTooShort
	}
	if max > 0 && length > max {
		return "", ErrNameTooLong
	}
	return name, nil
}

// Price parses raw as a decimal rounded to cents and rejects absent,
// non-numeric, non-positive and oversized values.
func Price(raw string) (decimal.Decimal, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return decimal.Zero, ErrPriceNotPositive
	}
	price, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, ErrPriceNotPositive
	}
	price = price.Round(PricePlaces)
	if !price.IsPositive() {
		return decimal.Zero, ErrPriceNotPositive
	}
	if price.GreaterThanOrEqual(maxPrice) {
		return decimal.Zero, ErrPriceTooLarge
	}
	return price, nil
}

// Required trims raw and rejects an empty result or one longer than max runes.
func Required(raw string, max int) (string, error) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return "", ErrRequired
	}
	if max > 0 && utf8.RuneCountInString(value) > max {
		return "", ErrTooLong
	}
	return value, nil
}

// Errors collects field-level rejections keyed by field name
type Errors map[string]string

// Add records err against field, keeping the first message per field
func (e Errors) Add(field string, err error) {
	if err == nil {
		return
	}
	if _, exists := e[field]; exists {
		return
	}
	e[field] = err.Error()
}

// Err returns nil when no field was rejected so callers can return it directly
func (e Errors) Err() error {
	if len(e) == 0 {
		return nil
	}
	return e
}

func (e Errors) Error() string {
	fields := make([]string, 0, len(e))
	for field := range e {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		parts = append(parts, fmt.Sprintf("%s: %s", field, e[field]))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Details converts the errors to the map shape used by models.APIError
func (e Errors) Details() map[string]interface{} {
	details := make(map[string]interface{}, len(e))
	for field, message := range e {
		details[field] = message
	}
	return details
}

// AsErrors unwraps err into field errors when it carries them
func AsErrors(err error) (Errors, bool) {
	var fieldErrs Errors
	if errors.As(err, &fieldErrs) {
		return fieldErrs, true
	}
	return nil, false
}
