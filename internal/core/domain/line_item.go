package domain

import (
	"fmt"

	"github.com/SscSPs/workspace_storefront/internal/apperrors"
	"github.com/shopspring/decimal"
)

// Role is the viewer's side of a transaction.
type Role string

const (
	RoleCustomer Role = "customer"
	RoleProvider Role = "provider"
)

// Valid reports whether r is customer or provider.
func (r Role) Valid() bool {
	return r == RoleCustomer || r == RoleProvider
}

// LineItemCode tags what a line item charges for.
type LineItemCode string

const (
	LineItemHour  LineItemCode = "line-item/hour"
	LineItemDay   LineItemCode = "line-item/day"
	LineItemMonth LineItemCode = "line-item/month"

	LineItemSeatsFee        LineItemCode = "line-item/seats_fee"
	LineItemOfficeRoomsFee  LineItemCode = "line-item/office_rooms_fee"
	LineItemMeetingRoomsFee LineItemCode = "line-item/meeting_rooms_fee"

	LineItemCustomerCommission LineItemCode = "line-item/customer-commission"
	LineItemProviderCommission LineItemCode = "line-item/provider-commission"
)

// UnitCodeFor returns the booking-unit line item code of a rental period.
func UnitCodeFor(p RentalPeriod) LineItemCode {
	switch p {
	case Hourly:
		return LineItemHour
	case Monthly:
		return LineItemMonth
	default:
		return LineItemDay
	}
}

// FeeCodeFor returns the custom fee line item code of a workspace type.
func FeeCodeFor(t WorkspaceType) LineItemCode {
	return LineItemCode("line-item/" + string(t) + "_fee")
}

// WorkspaceTypeOfFee maps a custom fee code back to its workspace type.
func WorkspaceTypeOfFee(code LineItemCode) (WorkspaceType, bool) {
	switch code {
	case LineItemSeatsFee:
		return Seats, true
	case LineItemOfficeRoomsFee:
		return OfficeRooms, true
	case LineItemMeetingRoomsFee:
		return MeetingRooms, true
	}
	return "", false
}

// LineItem is one priced component of a transaction.
//
// For non-reversal items LineTotal == UnitPrice * Quantity. Commission items
// carry their percentage and use Quantity = Percentage / 100. Reversals refund
// an earlier item with the same code.
type LineItem struct {
	Code       LineItemCode     `json:"code"`
	UnitPrice  Money            `json:"unitPrice"`
	Quantity   decimal.Decimal  `json:"quantity"`
	Percentage *decimal.Decimal `json:"percentage,omitempty"`
	LineTotal  Money            `json:"lineTotal"`
	Reversal   bool             `json:"reversal"`
	IncludeFor []Role           `json:"includeFor"`
}

// IsCommission reports whether the item is a customer or provider commission.
func (li LineItem) IsCommission() bool {
	return li.Code == LineItemCustomerCommission || li.Code == LineItemProviderCommission
}

// IncludesRole reports whether the item applies to r.
func (li LineItem) IncludesRole(r Role) bool {
	for _, inc := range li.IncludeFor {
		if inc == r {
			return true
		}
	}
	return false
}

// ComputedTotal returns UnitPrice * Quantity in exact decimal arithmetic,
// rounded to whole minor units.
func (li LineItem) ComputedTotal() Money {
	return li.UnitPrice.MulDecimal(li.Quantity)
}

// Validate checks the line total invariant of non-reversal items.
func (li LineItem) Validate() error {
	if li.UnitPrice.Currency() != li.LineTotal.Currency() {
		return fmt.Errorf("%w: line item %s mixes %s and %s", apperrors.ErrCurrencyMismatch, li.Code, li.UnitPrice.Currency(), li.LineTotal.Currency())
	}
	if li.Reversal {
		return nil
	}
	if expected := li.ComputedTotal(); expected.Amount() != li.LineTotal.Amount() {
		return fmt.Errorf("%w: line item %s total %d does not equal unit price x quantity (%d)",
			apperrors.ErrValidation, li.Code, li.LineTotal.Amount(), expected.Amount())
	}
	return nil
}

// NewLineItem builds a non-reversal item whose total is derived from price and quantity.
func NewLineItem(code LineItemCode, unitPrice Money, quantity decimal.Decimal, includeFor ...Role) LineItem {
	return LineItem{
		Code:       code,
		UnitPrice:  unitPrice,
		Quantity:   quantity,
		LineTotal:  unitPrice.MulDecimal(quantity),
		IncludeFor: append([]Role(nil), includeFor...),
	}
}

// NewCommissionLineItem builds a commission item charging percentage of base.
func NewCommissionLineItem(code LineItemCode, base Money, percentage decimal.Decimal, includeFor ...Role) LineItem {
	pct := percentage
	li := NewLineItem(code, base, percentage.Div(decimal.NewFromInt(100)), includeFor...)
	li.Percentage = &pct
	return li
}
