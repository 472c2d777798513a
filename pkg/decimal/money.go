// Package decimal provides the Money value type used for account balances.
package decimal

import (
	"github.com/rpgo/sekfmt/pkg/currency"
	"github.com/shopspring/decimal"
)

// Money is a krona amount with exact decimal precision. It decodes from
// YAML and JSON through the embedded Decimal.
type Money struct {
	decimal.Decimal
}

// NewMoney creates a new Money instance from a float64
func NewMoney(value float64) Money {
	return Money{decimal.NewFromFloat(value)}
}

// NewMoneyFromDecimal creates a new Money instance from a decimal.Decimal
func NewMoneyFromDecimal(d decimal.Decimal) Money {
	return Money{d}
}

// NewMoneyFromString creates a new Money instance from a string
func NewMoneyFromString(value string) (Money, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return Money{}, err
	}
	return Money{d}, nil
}

// Zero returns a zero Money amount
func Zero() Money {
	return Money{decimal.Zero}
}

// Sum adds up a list of amounts
func Sum(amounts ...Money) Money {
	total := decimal.Zero
	for _, a := range amounts {
		total = total.Add(a.Decimal)
	}
	return Money{total}
}

// Round rounds the amount to öre, half away from zero
func (m Money) Round() Money {
	return Money{currency.Default().Round(m.Decimal)}
}

// Abs returns the absolute amount
func (m Money) Abs() Money {
	return Money{m.Decimal.Abs()}
}

// Add adds another Money amount
func (m Money) Add(other Money) Money {
	return Money{m.Decimal.Add(other.Decimal)}
}

// Equal checks if this amount equals another
func (m Money) Equal(other Money) bool {
	return m.Decimal.Equal(other.Decimal)
}

// IsWholeOre reports whether the amount needs no more than two decimals.
// Amounts below one öre are never whole and are decided without rescaling.
func (m Money) IsWholeOre() bool {
	if m.IsZero() {
		return true
	}
	rounded := m.Round()
	if rounded.IsZero() {
		return false
	}
	return rounded.Equal(m)
}

// Validate reports amounts beyond float64 range, see currency.Validate
func (m Money) Validate() error {
	return currency.Validate(m.Decimal)
}

// Amount returns the underlying decimal so Money satisfies currency.Amounter
func (m Money) Amount() decimal.Decimal {
	return m.Decimal
}

// String returns the plain machine-readable amount, e.g. "1234.50"
func (m Money) String() string {
	return m.Round().Decimal.StringFixed(currency.Default().Scale())
}

// Format returns the localized krona string, e.g. "1 234,50 kr"
func (m Money) Format() string {
	return currency.Format(m.Decimal)
}
