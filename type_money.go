package networth

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Money represents a monetary value for display purposes. Balance records
// keep raw floats; reports wrap them in Money to get currency-correct
// formatting.
type Money struct {
	value decimal.Decimal // as major unit value
	cur   string
}

// M builds a Money from a major-unit value and an ISO currency code.
func M(value float64, currency string) Money {
	return Money{value: decimal.NewFromFloat(value), cur: currency}
}

// currency returns the money's currency, never nil.
func (m Money) currency() money.Currency {
	return *money.New(0, m.cur).Currency()
}

// Currency returns the ISO currency code.
func (m Money) Currency() string { return m.cur }

// Add returns the sum of two amounts; currencies are assumed equal.
func (m Money) Add(n Money) Money { return Money{value: m.value.Add(n.value), cur: m.cur} }

// IsZero reports whether the amount is zero.
func (m Money) IsZero() bool { return m.value.IsZero() }

// String formats the value with its currency symbol and grouping,
// e.g. "$1,234.56".
func (m Money) String() string {
	cur := m.currency()
	dec := m.value.Shift(int32(cur.Fraction))
	return cur.Formatter().Format(dec.Round(0).IntPart())
}
