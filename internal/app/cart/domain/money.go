package domain

import (
	"math/big"
)

// Money represents a monetary value with exact rational arithmetic.
// It uses big.Rat internally so that summing many line totals does not
// accumulate floating-point error. Money is immutable: all operations return
// new instances.
type Money struct {
	amount *big.Rat
}

// NewMoneyFromFloat converts a dataset price into Money.
// The conversion is exact for the binary value of f.
func NewMoneyFromFloat(f float64) *Money {
	rat := new(big.Rat)
	if rat.SetFloat64(f) == nil {
		// NaN or Inf never reach here from a validated dataset.
		return Zero()
	}
	return &Money{amount: rat}
}

// Zero returns a Money instance representing zero.
func Zero() *Money {
	return &Money{amount: big.NewRat(0, 1)}
}

// Add returns a new Money that is the sum of m and other.
func (m *Money) Add(other *Money) *Money {
	result := new(big.Rat).Add(m.amount, other.amount)
	return &Money{amount: result}
}

// MultiplyByInt returns m × n, used for price × quantity.
func (m *Money) MultiplyByInt(n int) *Money {
	result := new(big.Rat).Mul(m.amount, new(big.Rat).SetInt64(int64(n)))
	return &Money{amount: result}
}

// IsZero returns true if the money amount is zero.
func (m *Money) IsZero() bool {
	return m.amount.Sign() == 0
}

// Equals returns true if m equals other.
func (m *Money) Equals(other *Money) bool {
	if other == nil {
		return false
	}
	return m.amount.Cmp(other.amount) == 0
}

// Float64 returns the nearest float64.
// Note: This may lose precision and should only be used for display purposes.
func (m *Money) Float64() float64 {
	f, _ := m.amount.Float64()
	return f
}

// String returns the amount rounded to cents, e.g. "19.99".
func (m *Money) String() string {
	return m.amount.FloatString(2)
}

// FloatString returns a decimal string representation with the specified precision.
func (m *Money) FloatString(precision int) string {
	return m.amount.FloatString(precision)
}
