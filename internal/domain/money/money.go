package money

import (
	"errors"
	"fmt"
)

var ErrNegativeAmount = errors.New("money cannot be negative")

// Money is an amount in cents. All financial arithmetic in the domain
// runs on integer cents; formatting to decimal happens at the edges.
type Money struct {
	cents int64
}

func New(cents int64) (Money, error) {
	if cents < 0 {
		return Money{}, ErrNegativeAmount
	}
	return Money{cents: cents}, nil
}

// MustNew is for literals in tests and constants. Panics on negative input.
func MustNew(cents int64) Money {
	m, err := New(cents)
	if err != nil {
		panic(err)
	}
	return m
}

func Zero() Money {
	return Money{}
}

func (m Money) Cents() int64 {
	return m.cents
}

func (m Money) IsZero() bool {
	return m.cents == 0
}

func (m Money) IsPositive() bool {
	return m.cents > 0
}

func (m Money) Add(other Money) Money {
	return Money{cents: m.cents + other.cents}
}

// Sub floors at zero so derived balances never go negative.
func (m Money) Sub(other Money) Money {
	remaining := m.cents - other.cents
	if remaining < 0 {
		remaining = 0
	}
	return Money{cents: remaining}
}

func (m Money) LessThan(other Money) bool {
	return m.cents < other.cents
}

// Percent returns the given percentage of the amount, truncated to cents.
func (m Money) Percent(pct float64) Money {
	return Money{cents: int64(float64(m.cents) * pct / 100.0)}
}

// Decimal renders the amount with two fractional digits, e.g. "150.00".
func (m Money) Decimal() string {
	return fmt.Sprintf("%d.%02d", m.cents/100, m.cents%100)
}

func (m Money) String() string {
	return m.Decimal()
}
