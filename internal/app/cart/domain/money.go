package domain

import (
	"encoding/json"
	"fmt"
	"math/big"
)

// Money is a monetary amount in USD with exact decimal arithmetic backed
// by big.Rat. Keeping amounts rational avoids floating-point drift when
// percentage discounts are applied; rounding to cents happens only at
// the display and persistence boundaries.
type Money struct {
	rat *big.Rat
}

var centsPerUnit = big.NewRat(100, 1)

// NewMoneyFromCents creates a Money from an integer number of cents.
// Example: NewMoneyFromCents(149980) represents $1499.80.
func NewMoneyFromCents(cents int64) *Money {
	return &Money{rat: big.NewRat(cents, 100)}
}

// NewMoneyFromUnits creates a Money from whole currency units.
// Example: NewMoneyFromUnits(1999) represents $1999.00.
func NewMoneyFromUnits(units int64) *Money {
	return &Money{rat: big.NewRat(units, 1)}
}

// ZeroMoney returns a zero amount.
func ZeroMoney() *Money {
	return &Money{rat: new(big.Rat)}
}

// Add returns the sum of two amounts as a new Money.
func (m *Money) Add(other *Money) *Money {
	return &Money{rat: new(big.Rat).Add(m.rat, other.rat)}
}

// Subtract returns the difference of two amounts as a new Money.
func (m *Money) Subtract(other *Money) *Money {
	return &Money{rat: new(big.Rat).Sub(m.rat, other.rat)}
}

// MultiplyByRat scales the amount by a rational factor and returns a new Money.
func (m *Money) MultiplyByRat(rat *big.Rat) *Money {
	return &Money{rat: new(big.Rat).Mul(m.rat, rat)}
}

// IsZero returns true if the amount is zero.
func (m *Money) IsZero() bool {
	return m.rat.Sign() == 0
}

// IsNegative returns true if the amount is negative.
func (m *Money) IsNegative() bool {
	return m.rat.Sign() < 0
}

// LessThan returns true if this amount is less than the other.
func (m *Money) LessThan(other *Money) bool {
	return m.rat.Cmp(other.rat) < 0
}

// GreaterThan returns true if this amount is greater than the other.
func (m *Money) GreaterThan(other *Money) bool {
	return m.rat.Cmp(other.rat) > 0
}

// Equals returns true if the two amounts are equal.
func (m *Money) Equals(other *Money) bool {
	return m.rat.Cmp(other.rat) == 0
}

// Cents rounds the amount to the minimal currency unit using half-up
// rounding (half away from zero for negative amounts) and returns it as
// an integer number of cents.
func (m *Money) Cents() int64 {
	scaled := new(big.Rat).Mul(m.rat, centsPerUnit)
	num := new(big.Int).Set(scaled.Num())
	den := scaled.Denom()

	neg := num.Sign() < 0
	if neg {
		num.Neg(num)
	}

	// floor((2*num + den) / (2*den)) rounds half-up for non-negative values
	two := big.NewInt(2)
	q := new(big.Int).Mul(num, two)
	q.Add(q, den)
	q.Div(q, new(big.Int).Mul(den, two))

	if neg {
		q.Neg(q)
	}
	return q.Int64()
}

// String renders the amount with two decimal places, e.g. "1348.20".
func (m *Money) String() string {
	return m.rat.FloatString(2)
}

// Copy creates an independent copy of the amount.
func (m *Money) Copy() *Money {
	return &Money{rat: new(big.Rat).Set(m.rat)}
}

// MarshalJSON encodes the amount as an integer number of cents.
func (m *Money) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.Cents())
}

// UnmarshalJSON decodes an integer number of cents.
func (m *Money) UnmarshalJSON(data []byte) error {
	var cents int64
	if err := json.Unmarshal(data, &cents); err != nil {
		return fmt.Errorf("money must be an integer number of cents: %w", err)
	}
	m.rat = big.NewRat(cents, 100)
	return nil
}
