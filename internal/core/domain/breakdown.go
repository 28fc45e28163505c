package domain

// BreakdownRowKey identifies a row of a booking breakdown.
type BreakdownRowKey string

const (
	RowBookingPeriod            BreakdownRowKey = "bookingPeriod"
	RowCustomFee                BreakdownRowKey = "customFee"
	RowSubtotal                 BreakdownRowKey = "subtotal"
	RowRefund                   BreakdownRowKey = "refund"
	RowCustomerCommission       BreakdownRowKey = "customerCommission"
	RowCustomerCommissionRefund BreakdownRowKey = "customerCommissionRefund"
	RowProviderCommission       BreakdownRowKey = "providerCommission"
	RowProviderCommissionRefund BreakdownRowKey = "providerCommissionRefund"
	RowPromoDiscount            BreakdownRowKey = "promoDiscount"
	RowTotal                    BreakdownRowKey = "total"
)

// BreakdownRow is one optional line of a breakdown. Label is a message key for
// the storefront's translations; Value and Detail are display-ready strings.
type BreakdownRow struct {
	Key     BreakdownRowKey `json:"key"`
	Visible bool            `json:"-"`
	Label   string          `json:"label"`
	Value   string          `json:"value"`
	Detail  string          `json:"detail,omitempty"`
}

// Breakdown is the ordered, labelled and currency-converted price breakdown of a
// transaction as seen by one role.
type Breakdown struct {
	TransactionID string         `json:"transactionID"`
	Estimated     bool           `json:"estimated"`
	Role          Role           `json:"role"`
	Rows          []BreakdownRow `json:"rows"`
	FooterNote    string         `json:"footerNote,omitempty"`
}

// VisibleRows returns the rows to render, in order.
func (b Breakdown) VisibleRows() []BreakdownRow {
	rows := make([]BreakdownRow, 0, len(b.Rows))
	for _, r := range b.Rows {
		if r.Visible {
			rows = append(rows, r)
		}
	}
	return rows
}
