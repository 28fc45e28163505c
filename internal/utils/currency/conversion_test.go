package currency_test

import (
	"testing"

	"github.com/SscSPs/workspace_storefront/internal/apperrors"
	"github.com/SscSPs/workspace_storefront/internal/core/domain"
	"github.com/SscSPs/workspace_storefront/internal/utils/currency"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDivisorFor(t *testing.T) {
	tests := []struct {
		code string
		want int64
	}{
		{"USD", 100},
		{"eur", 100},
		{"JPY", 1},
		{"KWD", 1000},
	}
	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			got, err := currency.DivisorFor(tt.code)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := currency.DivisorFor("XYZW")
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestToSubUnit(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		divisor int64
		want    int64
		wantErr bool
	}{
		{name: "dot separator", value: "10.50", divisor: 100, want: 1050},
		{name: "comma separator", value: "10,50", divisor: 100, want: 1050},
		{name: "whole number", value: "7", divisor: 100, want: 700},
		{name: "zero decimals currency", value: "1500", divisor: 1, want: 1500},
		{name: "zero", value: "0", divisor: 100, want: 0},
		{name: "not divisible", value: "10.555", divisor: 100, wantErr: true},
		{name: "negative", value: "-1", divisor: 100, wantErr: true},
		{name: "not a number", value: "ten", divisor: 100, wantErr: true},
		{name: "empty", value: " ", divisor: 100, wantErr: true},
		{name: "unsafe number", value: "90071992547409.92", divisor: 100, wantErr: true},
		{name: "bad divisor", value: "1", divisor: 3, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := currency.ToSubUnit(tt.value, tt.divisor)
			if tt.wantErr {
				assert.ErrorIs(t, err, apperrors.ErrValidation)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestToSubUnitFloat(t *testing.T) {
	got, err := currency.ToSubUnitFloat(19.99, 100)
	require.NoError(t, err)
	assert.Equal(t, int64(1999), got)

	got, err = currency.ToSubUnitFloat(10.005, 100)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
	assert.Zero(t, got)

	a, b := 0.1, 0.2
	got, err = currency.ToSubUnitFloat(a+b, 100)
	assert.ErrorIs(t, err, apperrors.ErrValidation, "0.30000000000000004 has no whole number of cents")
	assert.Zero(t, got)
}

func TestSymbolFor(t *testing.T) {
	tests := []struct {
		code string
		want string
	}{
		{"USD", "$"},
		{"eur", "€"},
		{"GBP", "£"},
		{"AUD", "A$"},
		{"CHF", "CHF "},
		{"ZZZ", "ZZZ "},
	}
	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			assert.Equal(t, tt.want, currency.SymbolFor(tt.code))
		})
	}
}

func TestRoundTrip(t *testing.T) {
	for _, v := range []string{"0.01", "10.5", "123456.78", "99"} {
		sub, err := currency.ToSubUnit(v, 100)
		require.NoError(t, err)

		major, err := currency.ToMajorDecimal(domain.NewMoney(sub, "USD"))
		require.NoError(t, err)
		assert.True(t, major.Equal(decimal.RequireFromString(v)), v)
	}

	f, err := currency.ToMajorNumber(domain.NewMoney(1050, "USD"))
	require.NoError(t, err)
	assert.InDelta(t, 10.5, f, 1e-9)
}

func TestTruncateToPrecision(t *testing.T) {
	tests := []struct {
		value   string
		divisor int64
		want    string
	}{
		{"10.555", 100, "10.55"},
		{"10,559", 100, "10,55"},
		{"10.5", 100, "10.5"},
		{"10,", 100, "10,"},
		{"10.", 100, "10."},
		{"12.9", 1, "12"},
		{"0.0009", 1000, "0"},
	}
	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			got, err := currency.TruncateToPrecision(tt.value, tt.divisor)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := currency.TruncateToPrecision("abc", 100)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestFormat(t *testing.T) {
	s, err := currency.Format(domain.NewMoney(-2000, "USD"), "")
	require.NoError(t, err)
	assert.Equal(t, "-$20.00", s)

	s, err = currency.Format(domain.NewMoney(1500, "JPY"), "")
	require.NoError(t, err)
	assert.Equal(t, "¥1500", s)

	assert.Equal(t, "€1.50", currency.FormatMajor(decimal.RequireFromString("1.5"), "€", 2))
}
