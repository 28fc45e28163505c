package domain_test

import (
	"encoding/json"
	"testing"

	"github.com/SscSPs/workspace_storefront/internal/apperrors"
	"github.com/SscSPs/workspace_storefront/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoney_Add(t *testing.T) {
	a := domain.NewMoney(1050, "usd")
	b := domain.NewMoney(250, "USD")

	sum, err := a.Add(b)
	require.NoError(t, err)
	assert.Equal(t, domain.NewMoney(1300, "USD"), sum)
	assert.Equal(t, int64(1050), a.Amount(), "operands are not modified")

	diff, err := b.Sub(a)
	require.NoError(t, err)
	assert.Equal(t, int64(-800), diff.Amount())
	assert.True(t, diff.IsNegative())
	assert.Equal(t, int64(800), diff.Abs().Amount())
}

func TestMoney_CurrencyMismatch(t *testing.T) {
	usd := domain.NewMoney(100, "USD")
	eur := domain.NewMoney(100, "EUR")

	_, err := usd.Add(eur)
	assert.ErrorIs(t, err, apperrors.ErrCurrencyMismatch)

	_, err = usd.Sub(eur)
	assert.ErrorIs(t, err, apperrors.ErrCurrencyMismatch)

	_, err = domain.Sum("USD", usd, eur)
	assert.ErrorIs(t, err, apperrors.ErrCurrencyMismatch)
}

func TestMoney_MulDecimal(t *testing.T) {
	tests := []struct {
		name   string
		amount int64
		factor string
		want   int64
	}{
		{"whole", 10000, "3", 30000},
		{"percentage", 20000, "0.1", 2000},
		{"half rounds away from zero", 25, "0.5", 13},
		{"negative half rounds away from zero", 25, "-0.5", -13},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := domain.NewMoney(tt.amount, "USD").MulDecimal(decimal.RequireFromString(tt.factor))
			assert.Equal(t, tt.want, got.Amount())
		})
	}
}

func TestSum_Empty(t *testing.T) {
	total, err := domain.Sum("EUR")
	require.NoError(t, err)
	assert.True(t, total.IsZero())
	assert.Equal(t, "EUR", total.Currency())
}

func TestMoney_JSON(t *testing.T) {
	data, err := json.Marshal(domain.NewMoney(1050, "USD"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"amount":1050,"currency":"USD"}`, string(data))

	var m domain.Money
	require.NoError(t, json.Unmarshal([]byte(`{"amount":99,"currency":"eur"}`), &m))
	assert.Equal(t, domain.NewMoney(99, "EUR"), m)

	err = json.Unmarshal([]byte(`{"amount":"x"}`), &m)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}
