package pricing_test

import (
	"testing"

	"github.com/SscSPs/workspace_storefront/internal/apperrors"
	"github.com/SscSPs/workspace_storefront/internal/core/domain"
	"github.com/SscSPs/workspace_storefront/internal/core/pricing"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type visibleRow struct {
	Key    domain.BreakdownRowKey
	Label  string
	Value  string
	Detail string
}

func visible(b domain.Breakdown) []visibleRow {
	var rows []visibleRow
	for _, r := range b.VisibleRows() {
		rows = append(rows, visibleRow{Key: r.Key, Label: r.Label, Value: r.Value, Detail: r.Detail})
	}
	return rows
}

func estimated(t *testing.T, params pricing.EstimateParams) domain.Transaction {
	t.Helper()
	tx, err := pricing.EstimateTransaction(params)
	require.NoError(t, err)
	return tx
}

func TestBuildBreakdown_Customer(t *testing.T) {
	tx := estimated(t, twoDaySeatEstimate())

	b, err := pricing.BuildBreakdown(pricing.BreakdownInput{
		Transaction:  tx,
		Role:         domain.RoleCustomer,
		RentalPeriod: domain.Daily,
	}, noConversion())
	require.NoError(t, err)

	assert.Equal(t, "tx-estimate", b.TransactionID)
	assert.True(t, b.Estimated)
	assert.Equal(t, pricing.LabelCommissionFeeNote, b.FooterNote)
	assert.Equal(t, []visibleRow{
		{domain.RowBookingPeriod, pricing.LabelBookingPeriod, "Mon, Mar 4 – Tue, Mar 5", "2 days"},
		{domain.RowCustomFee, "BookingBreakdown.seatsFee", "$200.00", "$100.00 × 2"},
		{domain.RowSubtotal, pricing.LabelSubtotal, "$200.00", ""},
		{domain.RowCustomerCommission, pricing.LabelCustomerCommission, "$20.00", ""},
		{domain.RowTotal, "BookingBreakdown.total", "$220.00", ""},
	}, visible(b))
}

func TestBuildBreakdown_Provider(t *testing.T) {
	tx := estimated(t, twoDaySeatEstimate())
	tx.Status = domain.StatusDelivered

	b, err := pricing.BuildBreakdown(pricing.BreakdownInput{
		Transaction:  tx,
		Role:         domain.RoleProvider,
		RentalPeriod: domain.Daily,
	}, noConversion())
	require.NoError(t, err)

	rows := visible(b)
	require.Len(t, rows, 5)
	assert.Equal(t, visibleRow{domain.RowProviderCommission, pricing.LabelProviderCommission, "-$10.00", ""}, rows[3])
	assert.Equal(t, visibleRow{domain.RowTotal, "BookingBreakdown.providerTotalDelivered", "$190.00", ""}, rows[4])
}

func TestBuildBreakdown_PromoDiscount(t *testing.T) {
	params := twoDaySeatEstimate()
	params.CustomerCommissionPercent = decimal.Zero
	params.ProviderCommissionPercent = decimal.Zero
	tx := estimated(t, params)

	b, err := pricing.BuildBreakdown(pricing.BreakdownInput{
		Transaction:  tx,
		Role:         domain.RoleCustomer,
		RentalPeriod: domain.Daily,
		Promo:        &domain.Promo{Code: "SPRING10", Value: decimal.NewFromInt(10)},
	}, noConversion())
	require.NoError(t, err)

	rows := visible(b)
	require.Len(t, rows, 5)
	assert.Equal(t, visibleRow{domain.RowSubtotal, pricing.LabelSubtotal, "$200.00", ""}, rows[2])
	assert.Equal(t, visibleRow{domain.RowPromoDiscount, pricing.LabelPromoDiscount, "-$20.00", "SPRING10"}, rows[3])
	assert.Equal(t, visibleRow{domain.RowTotal, "BookingBreakdown.total", "$180.00", ""}, rows[4])
	assert.Empty(t, b.FooterNote)

	assert.Equal(t, int64(20000), tx.PayinTotal.Amount(), "the transaction total is not modified")
}

func TestBuildBreakdown_NoAdjustmentsHidesSubtotal(t *testing.T) {
	params := twoDaySeatEstimate()
	params.CustomerCommissionPercent = decimal.Zero
	tx := estimated(t, params)

	b, err := pricing.BuildBreakdown(pricing.BreakdownInput{
		Transaction:  tx,
		Role:         domain.RoleCustomer,
		RentalPeriod: domain.Daily,
	}, noConversion())
	require.NoError(t, err)

	keys := make([]domain.BreakdownRowKey, 0)
	for _, r := range b.VisibleRows() {
		keys = append(keys, r.Key)
	}
	assert.Equal(t, []domain.BreakdownRowKey{domain.RowBookingPeriod, domain.RowCustomFee, domain.RowTotal}, keys)
}

func TestBuildBreakdown_Refund(t *testing.T) {
	tx := estimated(t, twoDaySeatEstimate())
	tx.Status = domain.StatusCanceled
	tx.LineItems = append(tx.LineItems,
		domain.LineItem{
			Code:       domain.LineItemSeatsFee,
			UnitPrice:  domain.NewMoney(10000, "USD"),
			Quantity:   decimal.NewFromInt(-2),
			LineTotal:  domain.NewMoney(-20000, "USD"),
			Reversal:   true,
			IncludeFor: []domain.Role{domain.RoleCustomer, domain.RoleProvider},
		},
		domain.LineItem{
			Code:       domain.LineItemCustomerCommission,
			UnitPrice:  domain.NewMoney(20000, "USD"),
			Quantity:   decimal.RequireFromString("-0.1"),
			LineTotal:  domain.NewMoney(-2000, "USD"),
			Reversal:   true,
			IncludeFor: []domain.Role{domain.RoleCustomer},
		},
	)
	tx.PayinTotal = domain.Zero("USD")

	b, err := pricing.BuildBreakdown(pricing.BreakdownInput{
		Transaction:  tx,
		Role:         domain.RoleCustomer,
		RentalPeriod: domain.Daily,
	}, noConversion())
	require.NoError(t, err)

	rows := visible(b)
	require.Len(t, rows, 7)
	assert.Equal(t, visibleRow{domain.RowRefund, pricing.LabelRefund, "-$200.00", ""}, rows[3])
	assert.Equal(t, visibleRow{domain.RowCustomerCommissionRefund, pricing.LabelCustomerCommissionRefund, "-$20.00", ""}, rows[5])
	assert.Equal(t, visibleRow{domain.RowTotal, "BookingBreakdown.totalCanceled", "$0.00", ""}, rows[6])
}

func TestBuildBreakdown_OrderIndependentOfLineItems(t *testing.T) {
	params := twoDaySeatEstimate()
	params.Workspaces = map[domain.WorkspaceType]int{domain.Seats: 2, domain.MeetingRooms: 1}
	tx := estimated(t, params)

	reversed := tx
	reversed.LineItems = make([]domain.LineItem, len(tx.LineItems))
	for i, li := range tx.LineItems {
		reversed.LineItems[len(tx.LineItems)-1-i] = li
	}

	in := pricing.BreakdownInput{Transaction: tx, Role: domain.RoleCustomer, RentalPeriod: domain.Daily}
	want, err := pricing.BuildBreakdown(in, noConversion())
	require.NoError(t, err)

	in.Transaction = reversed
	got, err := pricing.BuildBreakdown(in, noConversion())
	require.NoError(t, err)

	assert.Equal(t, want, got)
	assert.Equal(t, "BookingBreakdown.seatsFee", want.VisibleRows()[1].Label)
	assert.Equal(t, "BookingBreakdown.meetingRoomsFee", want.VisibleRows()[2].Label)
}

func TestBuildBreakdown_Converted(t *testing.T) {
	tx := estimated(t, twoDaySeatEstimate())

	var outcomes []pricing.ConversionOutcome
	conv := pricing.NewConverter(usd, eurPreferences(), pricing.WithObserver(func(o pricing.ConversionOutcome) {
		outcomes = append(outcomes, o)
	}))

	b, err := pricing.BuildBreakdown(pricing.BreakdownInput{
		Transaction:  tx,
		Role:         domain.RoleCustomer,
		RentalPeriod: domain.Daily,
	}, conv)
	require.NoError(t, err)

	rows := b.VisibleRows()
	assert.Equal(t, "€180.00", rows[1].Value)
	assert.Equal(t, "€90.00 × 2", rows[1].Detail)
	assert.Equal(t, "€198.00", rows[len(rows)-1].Value)
	assert.NotEmpty(t, outcomes)
	for _, o := range outcomes {
		assert.Equal(t, pricing.OutcomeConverted, o)
	}
}

func TestBuildBreakdown_CurrencyMismatch(t *testing.T) {
	tx := estimated(t, twoDaySeatEstimate())
	tx.LineItems = append(tx.LineItems, domain.NewLineItem(domain.LineItemOfficeRoomsFee, domain.NewMoney(100, "EUR"), decimal.NewFromInt(1), domain.RoleCustomer))

	_, err := pricing.BuildBreakdown(pricing.BreakdownInput{
		Transaction:  tx,
		Role:         domain.RoleCustomer,
		RentalPeriod: domain.Daily,
	}, noConversion())
	assert.ErrorIs(t, err, apperrors.ErrCurrencyMismatch)
}

func TestBuildBreakdown_InvalidInput(t *testing.T) {
	tx := estimated(t, twoDaySeatEstimate())

	_, err := pricing.BuildBreakdown(pricing.BreakdownInput{Transaction: tx, Role: "admin", RentalPeriod: domain.Daily}, noConversion())
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	_, err = pricing.BuildBreakdown(pricing.BreakdownInput{
		Transaction:  tx,
		Role:         domain.RoleCustomer,
		RentalPeriod: domain.Daily,
		Promo:        &domain.Promo{Code: "TOO-MUCH", Value: decimal.NewFromInt(150)},
	}, noConversion())
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestTotalLabel(t *testing.T) {
	assert.Equal(t, "BookingBreakdown.total", pricing.TotalLabel(domain.RoleCustomer, domain.StatusPending))
	assert.Equal(t, "BookingBreakdown.totalDeclined", pricing.TotalLabel(domain.RoleCustomer, domain.StatusDeclined))
	assert.Equal(t, "BookingBreakdown.providerTotalDefault", pricing.TotalLabel(domain.RoleProvider, domain.StatusAccepted))
	assert.Equal(t, "BookingBreakdown.providerTotalCanceled", pricing.TotalLabel(domain.RoleProvider, domain.StatusCanceled))
}
