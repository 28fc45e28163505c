package pricing

import (
	"fmt"

	"github.com/SscSPs/workspace_storefront/internal/apperrors"
	"github.com/SscSPs/workspace_storefront/internal/core/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// EstimateParams describes a booking the customer is about to request.
type EstimateParams struct {
	Listing      domain.Listing
	RentalPeriod domain.RentalPeriod
	Booking      domain.Booking
	Workspaces   map[domain.WorkspaceType]int // Requested count per workspace type

	CustomerCommissionPercent decimal.Decimal
	ProviderCommissionPercent decimal.Decimal

	// NewID generates the synthetic transaction id. Defaults to uuid.NewString.
	NewID func() string
}

// EstimateTransaction builds the transaction the marketplace would create for
// params, so a breakdown can be shown before anything is submitted. The result
// is never persisted.
func EstimateTransaction(params EstimateParams) (domain.Transaction, error) {
	period := params.RentalPeriod
	if !period.Valid() {
		return domain.Transaction{}, fmt.Errorf("%w: unknown rental period %q", apperrors.ErrValidation, period)
	}
	pd := params.Listing.PublicData
	if !pd.HasRentalType(period) {
		return domain.Transaction{}, fmt.Errorf("%w: listing is not rentable %s", apperrors.ErrValidation, period)
	}

	units, err := BookingUnits(period, params.Booking)
	if err != nil {
		return domain.Transaction{}, err
	}

	var fees []domain.LineItem
	for _, t := range domain.WorkspaceTypes {
		count := params.Workspaces[t]
		if count == 0 {
			continue
		}
		if count < 0 {
			return domain.Transaction{}, fmt.Errorf("%w: negative %s count", apperrors.ErrValidation, t)
		}
		if !pd.HasWorkspace(t) {
			return domain.Transaction{}, fmt.Errorf("%w: listing does not offer %s", apperrors.ErrValidation, t)
		}
		price := pd.Price(t, period)
		if price == nil || !price.IsPositive() {
			return domain.Transaction{}, fmt.Errorf("%w: no %s price configured for %s", apperrors.ErrValidation, period, t)
		}
		quantity := decimal.NewFromInt(int64(count)).Mul(units)
		fees = append(fees, domain.NewLineItem(domain.FeeCodeFor(t), *price, quantity, domain.RoleCustomer, domain.RoleProvider))
	}
	if len(fees) == 0 {
		return domain.Transaction{}, fmt.Errorf("%w: select at least one workspace", apperrors.ErrValidation)
	}

	cur := fees[0].UnitPrice.Currency()
	subtotal := domain.Zero(cur)
	for _, fee := range fees {
		if subtotal, err = subtotal.Add(fee.LineTotal); err != nil {
			return domain.Transaction{}, err
		}
	}

	items := make([]domain.LineItem, 0, len(fees)+3)
	items = append(items, domain.NewLineItem(domain.UnitCodeFor(period), domain.Zero(cur), units, domain.RoleCustomer, domain.RoleProvider))
	items = append(items, fees...)
	if params.CustomerCommissionPercent.IsPositive() {
		items = append(items, domain.NewCommissionLineItem(domain.LineItemCustomerCommission, subtotal, params.CustomerCommissionPercent, domain.RoleCustomer))
	}
	if params.ProviderCommissionPercent.IsPositive() {
		items = append(items, domain.NewCommissionLineItem(domain.LineItemProviderCommission, subtotal, params.ProviderCommissionPercent.Neg(), domain.RoleProvider))
	}

	payin, err := totalFor(domain.RoleCustomer, cur, items)
	if err != nil {
		return domain.Transaction{}, err
	}
	payout, err := totalFor(domain.RoleProvider, cur, items)
	if err != nil {
		return domain.Transaction{}, err
	}

	newID := params.NewID
	if newID == nil {
		newID = uuid.NewString
	}
	return domain.Transaction{
		ID:          newID(),
		Estimated:   true,
		Status:      domain.StatusPending,
		LineItems:   items,
		PayinTotal:  payin,
		PayoutTotal: payout,
		Booking:     params.Booking,
	}, nil
}

func totalFor(role domain.Role, cur string, items []domain.LineItem) (domain.Money, error) {
	total := domain.Zero(cur)
	for _, li := range items {
		if !li.IncludesRole(role) {
			continue
		}
		var err error
		if total, err = total.Add(li.LineTotal); err != nil {
			return domain.Money{}, err
		}
	}
	return total, nil
}
