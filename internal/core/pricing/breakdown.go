package pricing

import (
	"fmt"
	"strings"

	"github.com/SscSPs/workspace_storefront/internal/apperrors"
	"github.com/SscSPs/workspace_storefront/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Message keys of breakdown labels.
const (
	LabelBookingPeriod            = "BookingBreakdown.bookingPeriod"
	LabelSubtotal                 = "BookingBreakdown.subTotal"
	LabelRefund                   = "BookingBreakdown.refund"
	LabelCustomerCommission       = "BookingBreakdown.commission"
	LabelCustomerCommissionRefund = "BookingBreakdown.refundCustomerFee"
	LabelProviderCommission       = "BookingBreakdown.commission"
	LabelProviderCommissionRefund = "BookingBreakdown.refundProviderFee"
	LabelPromoDiscount            = "BookingBreakdown.promoDiscount"
	LabelCommissionFeeNote        = "BookingBreakdown.commissionFeeNote"
)

var customFeeLabels = map[domain.WorkspaceType]string{
	domain.Seats:        "BookingBreakdown.seatsFee",
	domain.OfficeRooms:  "BookingBreakdown.officeRoomsFee",
	domain.MeetingRooms: "BookingBreakdown.meetingRoomsFee",
}

// BreakdownInput is what the assembler needs. The transaction may be a real
// one fetched from the marketplace or an EstimateTransaction result.
type BreakdownInput struct {
	Transaction  domain.Transaction
	Role         domain.Role
	RentalPeriod domain.RentalPeriod
	Promo        *domain.Promo
}

// TotalLabel returns the label key of the total row for a role and transaction status.
func TotalLabel(role domain.Role, status domain.TransactionStatus) string {
	prefix := "BookingBreakdown.total"
	if role == domain.RoleProvider {
		prefix = "BookingBreakdown.providerTotal"
	}
	switch status {
	case domain.StatusDelivered:
		return prefix + "Delivered"
	case domain.StatusDeclined:
		return prefix + "Declined"
	case domain.StatusCanceled:
		return prefix + "Canceled"
	}
	if role == domain.RoleProvider {
		return prefix + "Default"
	}
	return prefix
}

type assembler struct {
	in   BreakdownInput
	conv *Converter
	cur  string
}

// BuildBreakdown assembles the ordered rows of the transaction's breakdown as
// seen by in.Role, with every amount formatted through conv. The order of the
// rows does not depend on the order of the line items.
func BuildBreakdown(in BreakdownInput, conv *Converter) (domain.Breakdown, error) {
	if !in.Role.Valid() {
		return domain.Breakdown{}, fmt.Errorf("%w: unknown role %q", apperrors.ErrValidation, in.Role)
	}
	if !in.RentalPeriod.Valid() {
		return domain.Breakdown{}, fmt.Errorf("%w: unknown rental period %q", apperrors.ErrValidation, in.RentalPeriod)
	}
	if in.Promo != nil {
		if err := in.Promo.Validate(); err != nil {
			return domain.Breakdown{}, err
		}
	}
	a := &assembler{in: in, conv: conv, cur: in.Transaction.TotalFor(in.Role).Currency()}
	return a.build()
}

func (a *assembler) items(match func(domain.LineItem) bool) []domain.LineItem {
	var out []domain.LineItem
	for _, li := range a.in.Transaction.LineItems {
		if li.IncludesRole(a.in.Role) && match(li) {
			out = append(out, li)
		}
	}
	return out
}

func (a *assembler) sum(items []domain.LineItem) (domain.Money, error) {
	totals := make([]domain.Money, len(items))
	for i, li := range items {
		totals[i] = li.LineTotal
	}
	return domain.Sum(a.cur, totals...)
}

func (a *assembler) build() (domain.Breakdown, error) {
	tx := a.in.Transaction
	role := a.in.Role
	var rows []domain.BreakdownRow

	rows = append(rows, a.bookingPeriodRow())

	feeRows, err := a.customFeeRows()
	if err != nil {
		return domain.Breakdown{}, err
	}
	rows = append(rows, feeRows...)

	subtotal, err := a.sum(a.items(func(li domain.LineItem) bool { return !li.IsCommission() && !li.Reversal }))
	if err != nil {
		return domain.Breakdown{}, err
	}
	refund, err := a.sum(a.items(func(li domain.LineItem) bool { return !li.IsCommission() && li.Reversal }))
	if err != nil {
		return domain.Breakdown{}, err
	}

	commissionCode := domain.LineItemCustomerCommission
	if role == domain.RoleProvider {
		commissionCode = domain.LineItemProviderCommission
	}
	commissionItems := a.items(func(li domain.LineItem) bool { return li.Code == commissionCode && !li.Reversal })
	commission, err := a.sum(commissionItems)
	if err != nil {
		return domain.Breakdown{}, err
	}
	commissionRefundItems := a.items(func(li domain.LineItem) bool { return li.Code == commissionCode && li.Reversal })
	commissionRefund, err := a.sum(commissionRefundItems)
	if err != nil {
		return domain.Breakdown{}, err
	}

	roleTotal := tx.TotalFor(role)
	var discount domain.Money
	if a.in.Promo != nil {
		discount = a.in.Promo.Discount(roleTotal)
	}
	hasPromo := a.in.Promo != nil && !discount.IsZero()

	hasAdjustment := !refund.IsZero() || len(commissionItems) > 0 || len(commissionRefundItems) > 0 || hasPromo

	row, err := a.moneyRow(domain.RowSubtotal, LabelSubtotal, subtotal, hasAdjustment)
	if err != nil {
		return domain.Breakdown{}, err
	}
	rows = append(rows, row)

	if row, err = a.negatedRow(domain.RowRefund, LabelRefund, refund, !refund.IsZero()); err != nil {
		return domain.Breakdown{}, err
	}
	rows = append(rows, row)

	isCustomer := role == domain.RoleCustomer
	commissionRows := []struct {
		key     domain.BreakdownRowKey
		label   string
		amount  domain.Money
		visible bool
		negate  bool
	}{
		{domain.RowCustomerCommission, LabelCustomerCommission, commission, isCustomer && len(commissionItems) > 0, false},
		{domain.RowCustomerCommissionRefund, LabelCustomerCommissionRefund, commissionRefund, isCustomer && len(commissionRefundItems) > 0, true},
		{domain.RowProviderCommission, LabelProviderCommission, commission, !isCustomer && len(commissionItems) > 0, false},
		{domain.RowProviderCommissionRefund, LabelProviderCommissionRefund, commissionRefund, !isCustomer && len(commissionRefundItems) > 0, false},
	}
	for _, c := range commissionRows {
		if !c.visible {
			rows = append(rows, domain.BreakdownRow{Key: c.key, Label: c.label})
			continue
		}
		if c.negate {
			row, err = a.negatedRow(c.key, c.label, c.amount, true)
		} else {
			row, err = a.moneyRow(c.key, c.label, c.amount, true)
		}
		if err != nil {
			return domain.Breakdown{}, err
		}
		rows = append(rows, row)
	}

	total := roleTotal
	if hasPromo {
		if total, err = roleTotal.Sub(discount); err != nil {
			return domain.Breakdown{}, err
		}
		if row, err = a.negatedRow(domain.RowPromoDiscount, LabelPromoDiscount, discount, true); err != nil {
			return domain.Breakdown{}, err
		}
		row.Detail = a.in.Promo.Code
	} else {
		row = domain.BreakdownRow{Key: domain.RowPromoDiscount, Label: LabelPromoDiscount}
	}
	rows = append(rows, row)

	if row, err = a.moneyRow(domain.RowTotal, TotalLabel(role, tx.Status), total, true); err != nil {
		return domain.Breakdown{}, err
	}
	rows = append(rows, row)

	b := domain.Breakdown{
		TransactionID: tx.ID,
		Estimated:     tx.Estimated,
		Role:          role,
		Rows:          rows,
	}
	if len(commissionItems) > 0 {
		b.FooterNote = LabelCommissionFeeNote
	}
	return b, nil
}

func (a *assembler) moneyRow(key domain.BreakdownRowKey, label string, m domain.Money, visible bool) (domain.BreakdownRow, error) {
	row := domain.BreakdownRow{Key: key, Label: label, Visible: visible}
	if !visible {
		return row, nil
	}
	value, err := a.conv.Format(m)
	if err != nil {
		return domain.BreakdownRow{}, err
	}
	row.Value = value
	return row, nil
}

// negatedRow renders |m| with a leading minus.
func (a *assembler) negatedRow(key domain.BreakdownRowKey, label string, m domain.Money, visible bool) (domain.BreakdownRow, error) {
	row, err := a.moneyRow(key, label, m.Abs(), visible)
	if err != nil || !visible {
		return row, err
	}
	row.Value = "-" + row.Value
	return row, nil
}

func (a *assembler) bookingPeriodRow() domain.BreakdownRow {
	row := domain.BreakdownRow{
		Key:     domain.RowBookingPeriod,
		Label:   LabelBookingPeriod,
		Visible: true,
		Value:   FormatBookingPeriod(a.in.RentalPeriod, a.in.Transaction.Booking),
	}
	if units, ok := UnitsFromLineItems(a.in.RentalPeriod, a.in.Transaction.LineItems); ok {
		row.Detail = FormatUnits(a.in.RentalPeriod, units)
	}
	return row
}

func (a *assembler) customFeeRows() ([]domain.BreakdownRow, error) {
	var rows []domain.BreakdownRow
	for _, t := range domain.WorkspaceTypes {
		code := domain.FeeCodeFor(t)
		items := a.items(func(li domain.LineItem) bool { return li.Code == code && !li.Reversal })
		if len(items) == 0 {
			continue
		}
		total := domain.Zero(a.cur)
		quantity := decimal.Zero
		unitPrice := items[0].UnitPrice
		sameUnitPrice := true
		for _, li := range items {
			var err error
			if total, err = total.Add(li.ComputedTotal()); err != nil {
				return nil, err
			}
			quantity = quantity.Add(li.Quantity)
			if li.UnitPrice != unitPrice {
				sameUnitPrice = false
			}
		}
		row, err := a.moneyRow(domain.RowCustomFee, customFeeLabels[t], total, true)
		if err != nil {
			return nil, err
		}
		if sameUnitPrice {
			price, err := a.conv.Format(unitPrice)
			if err != nil {
				return nil, err
			}
			row.Detail = strings.Join([]string{price, quantity.String()}, " × ")
		}
		rows = append(rows, row)
	}
	return rows, nil
}
