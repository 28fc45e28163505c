package dto

import (
	"time"

	"github.com/SscSPs/workspace_storefront/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ConvertRequest asks for an amount to be formatted for the viewer. Either
// Amount (minor units) or AmountMajor ("10.50" or "10,50") must be set.
type ConvertRequest struct {
	Amount      *int64 `json:"amount"`
	AmountMajor string `json:"amountMajor"`
	Currency    string `json:"currency" binding:"omitempty,iso4217"`
}

// ConvertResponse is the display string of a converted amount.
type ConvertResponse struct {
	Amount          domain.Money `json:"amount"`
	Formatted       string       `json:"formatted"`
	DisplayCurrency string       `json:"displayCurrency,omitempty"`
	Source          string       `json:"source"`
}

// ListingPriceRequest carries the listing whose card price is wanted.
type ListingPriceRequest struct {
	Listing domain.Listing `json:"listing"`
}

// ListingPriceResponse is the "from" price of a listing card. Price is null
// when nothing should be rendered.
type ListingPriceResponse struct {
	Price     *domain.Money `json:"price"`
	Formatted string        `json:"formatted,omitempty"`
}

// DurationRequest asks for the billable quantity of a booking. For monthly
// bookings Months may be given instead of End.
type DurationRequest struct {
	RentalPeriod string    `json:"rentalPeriod" binding:"required,rental_period"`
	Start        time.Time `json:"start" binding:"required"`
	End          time.Time `json:"end"`
	Months       int       `json:"months" binding:"omitempty,min=1"`
}

// DurationResponse describes a valid booking duration.
type DurationResponse struct {
	Units       decimal.Decimal `json:"units"`
	UnitsLabel  string          `json:"unitsLabel"`
	PeriodLabel string          `json:"periodLabel"`
	End         time.Time       `json:"end"`
}

// PromoRequest is a percentage coupon.
type PromoRequest struct {
	Code  string          `json:"code"`
	Value decimal.Decimal `json:"value"`
}

// BreakdownRequest asks for the breakdown of an existing transaction.
type BreakdownRequest struct {
	Transaction  domain.Transaction `json:"transaction"`
	Role         string             `json:"role" binding:"required,oneof=customer provider"`
	RentalPeriod string             `json:"rentalPeriod" binding:"required,rental_period"`
	Promo        *PromoRequest      `json:"promo"`
}

// EstimateBreakdownRequest asks for the breakdown of a booking that has not been
// requested yet.
type EstimateBreakdownRequest struct {
	Listing      domain.Listing `json:"listing"`
	RentalPeriod string         `json:"rentalPeriod" binding:"required,rental_period"`
	Start        time.Time      `json:"start" binding:"required"`
	End          time.Time      `json:"end" binding:"required"`
	Workspaces   map[string]int `json:"workspaces" binding:"required,dive,keys,workspace_type,endkeys,min=0"`
	Role         string         `json:"role" binding:"omitempty,oneof=customer provider"`
	Promo        *PromoRequest  `json:"promo"`
}

// BreakdownRowResponse is one rendered row.
type BreakdownRowResponse struct {
	Key    string `json:"key"`
	Label  string `json:"label"`
	Value  string `json:"value"`
	Detail string `json:"detail,omitempty"`
}

// BreakdownResponse holds the visible rows of a breakdown in render order.
type BreakdownResponse struct {
	TransactionID   string                 `json:"transactionID"`
	Estimated       bool                   `json:"estimated"`
	Role            string                 `json:"role"`
	Rows            []BreakdownRowResponse `json:"rows"`
	FooterNote      string                 `json:"footerNote,omitempty"`
	DisplayCurrency string                 `json:"displayCurrency,omitempty"`
	Transaction     *domain.Transaction    `json:"transaction,omitempty"`
}

// ToPromo converts the optional promo of a request.
func (p *PromoRequest) ToPromo() *domain.Promo {
	if p == nil {
		return nil
	}
	return &domain.Promo{Code: p.Code, Value: p.Value}
}

// ToBreakdownResponse keeps only the visible rows of b.
func ToBreakdownResponse(b domain.Breakdown, prefs domain.Preferences) BreakdownResponse {
	visible := b.VisibleRows()
	rows := make([]BreakdownRowResponse, len(visible))
	for i, r := range visible {
		rows[i] = BreakdownRowResponse{Key: string(r.Key), Label: r.Label, Value: r.Value, Detail: r.Detail}
	}
	return BreakdownResponse{
		TransactionID:   b.TransactionID,
		Estimated:       b.Estimated,
		Role:            string(b.Role),
		Rows:            rows,
		FooterNote:      b.FooterNote,
		DisplayCurrency: prefs.Currency,
	}
}
