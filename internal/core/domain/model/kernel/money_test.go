package kernel_test

import (
	"testing"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoneyFromString(t *testing.T) {
	t.Run("parses decimal amounts", func(t *testing.T) {
		m, err := kernel.MoneyFromString("999.99")

		require.NoError(t, err)
		assert.Equal(t, "999.99", m.String())
		assert.True(t, decimal.RequireFromString("999.99").Equal(m.Decimal()))
	})

	t.Run("rejects malformed amounts", func(t *testing.T) {
		_, err := kernel.MoneyFromString("ten dollars")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("MustMoney panics on malformed amounts", func(t *testing.T) {
		assert.Panics(t, func() { kernel.MustMoney("1,00") })
	})
}

func TestMoney_Mul(t *testing.T) {
	testCases := []struct {
		price    string
		quantity int
		expected string
	}{
		{"0.01", 1, "0.01"},
		{"0.01", 1000, "10"},
		{"999.99", 1, "999.99"},
		{"999.99", 1000, "999990"},
		{"100", 3, "300"},
		{"0", 5, "0"},
	}

	for _, tc := range testCases {
		t.Run(tc.price+"x"+decimal.NewFromInt(int64(tc.quantity)).String(), func(t *testing.T) {
			total := kernel.MustMoney(tc.price).Mul(tc.quantity)

			assert.True(t, kernel.MustMoney(tc.expected).Equal(total),
				"expected %s, got %s", tc.expected, total)
		})
	}
}

func TestMoney_Arithmetic(t *testing.T) {
	sum := kernel.MustMoney("0.10").Add(kernel.MustMoney("0.20"))
	assert.True(t, kernel.MustMoney("0.3").Equal(sum))
	assert.Equal(t, "0.30", sum.String())

	assert.True(t, kernel.Money{}.IsZero())
	assert.True(t, kernel.MustMoney("-1").IsNegative())
	assert.False(t, kernel.MoneyFromInt(1).IsNegative())
	assert.True(t, kernel.NewMoney(decimal.NewFromInt(7)).Equal(kernel.MoneyFromInt(7)))
}
