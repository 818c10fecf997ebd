package kernel_test

import (
	"testing"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoneyFromString(t *testing.T) {
	t.Run("should parse and format with two digits", func(t *testing.T) {
		m, err := kernel.MoneyFromString("2499")

		require.NoError(t, err)
		assert.Equal(t, "2499.00", m.String())
	})

	t.Run("should round to two digits", func(t *testing.T) {
		m, err := kernel.MoneyFromString("10.005")

		require.NoError(t, err)
		assert.Equal(t, "10.01", m.String())
	})

	t.Run("should reject negative amounts", func(t *testing.T) {
		_, err := kernel.MoneyFromString("-1.00")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject garbage", func(t *testing.T) {
		_, err := kernel.MoneyFromString("twelve")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestMoney_Arithmetic(t *testing.T) {
	a := kernel.MustMoney("2499.00")
	b := kernel.MustMoney("1299.00")

	total := kernel.ZeroMoney().Add(a.Multiply(2)).Add(b.Multiply(1))

	assert.Equal(t, "6297.00", total.String())
	assert.True(t, total.IsEqual(kernel.MustMoney("6297")))
	assert.True(t, total.Decimal().Equal(decimal.RequireFromString("6297")))
}

func TestMoney_Validate(t *testing.T) {
	var zero kernel.Money
	require.ErrorIs(t, zero.Validate(), kernel.ErrMoneyIsNotConstructed)

	require.NoError(t, kernel.ZeroMoney().Validate())

	m, err := kernel.NewMoney(decimal.NewFromFloat(1.5))
	require.NoError(t, err)
	assert.Equal(t, "1.50", m.String())
}
