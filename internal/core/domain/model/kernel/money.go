package kernel

import (
	"fmt"

	"ordering/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// moneyScale is the number of fractional digits kept for every amount.
const moneyScale = 2

// ErrMoneyIsNotConstructed is returned when validating a zero-value Money.
var ErrMoneyIsNotConstructed = errs.NewValueIsRequiredError("Money must be created via NewMoney, MoneyFromString, or ZeroMoney")

// Money is a non-negative monetary amount with two fractional digits.
// It is backed by shopspring/decimal so that quantity × unit price and the
// sum of line totals are exact.
//
// Example:
//
//	price, _ := kernel.MoneyFromString("2499.00")
//	line := price.Multiply(2) // 4998.00
//	total := line.Add(kernel.MustMoney("1299.00")) // 6297.00
type Money struct {
	amount        decimal.Decimal
	isConstructed bool
}

// NewMoney creates Money from a decimal, rounding to two fractional digits.
// Negative amounts are rejected.
func NewMoney(amount decimal.Decimal) (Money, error) {
	if amount.IsNegative() {
		return Money{}, errs.NewValueIsInvalidErrorWithCause(
			"amount is invalid",
			fmt.Errorf("%s is negative", amount.String()),
		)
	}

	return Money{
		amount:        amount.Round(moneyScale),
		isConstructed: true,
	}, nil
}

// MoneyFromString parses a decimal string such as "2499.00".
func MoneyFromString(s string) (Money, error) {
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount is invalid", err)
	}

	return NewMoney(amount)
}

// MustMoney is MoneyFromString for literals known to be valid; it panics otherwise.
func MustMoney(s string) Money {
	m, err := MoneyFromString(s)
	if err != nil {
		panic(err)
	}
	return m
}

// ZeroMoney returns a valid amount of 0.00, the identity for Add.
func ZeroMoney() Money {
	return Money{
		amount:        decimal.Zero,
		isConstructed: true,
	}
}

// Decimal returns the underlying decimal value.
func (m Money) Decimal() decimal.Decimal {
	return m.amount
}

// Multiply returns m × quantity.
func (m Money) Multiply(quantity int) Money {
	return Money{
		amount:        m.amount.Mul(decimal.NewFromInt(int64(quantity))),
		isConstructed: true,
	}
}

// Add returns m + other.
func (m Money) Add(other Money) Money {
	return Money{
		amount:        m.amount.Add(other.amount),
		isConstructed: true,
	}
}

// IsEqual compares amounts numerically, so 10.0 equals 10.00.
func (m Money) IsEqual(other Money) bool {
	return m.amount.Equal(other.amount)
}

// String formats the amount with exactly two fractional digits.
func (m Money) String() string {
	return m.amount.StringFixed(moneyScale)
}

// Validate returns ErrMoneyIsNotConstructed for the zero value.
func (m Money) Validate() error {
	if !m.isConstructed {
		return ErrMoneyIsNotConstructed
	}
	return nil
}
