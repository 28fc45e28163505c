package pricing

import "github.com/SscSPs/workspace_storefront/internal/core/domain"

// SelectMinPrice returns the lowest positive price among the (workspace type,
// rental period) combinations the listing has switched on. Combinations are
// visited seats, office rooms, meeting rooms, each hourly, daily, monthly; on a
// tie the first one visited wins. It returns nil when nothing is eligible.
func SelectMinPrice(pd domain.ListingPublicData) *domain.Money {
	var min *domain.Money
	for _, t := range domain.WorkspaceTypes {
		if !pd.HasWorkspace(t) {
			continue
		}
		for _, p := range domain.RentalPeriods {
			if !pd.HasRentalType(p) {
				continue
			}
			price := pd.Price(t, p)
			if price == nil || !price.IsPositive() {
				continue
			}
			if min == nil || price.Amount() < min.Amount() {
				candidate := *price
				min = &candidate
			}
		}
	}
	return min
}

// DisplayPrice is the "from" price of a listing card: the minimum eligible price,
// else the legacy single price when it is positive, else nil.
func DisplayPrice(l domain.Listing) *domain.Money {
	if min := SelectMinPrice(l.PublicData); min != nil {
		return min
	}
	if l.Price != nil && l.Price.IsPositive() {
		legacy := *l.Price
		return &legacy
	}
	return nil
}

// PriceFor returns the listing's price for (t, p) only when both are switched on.
func PriceFor(pd domain.ListingPublicData, t domain.WorkspaceType, p domain.RentalPeriod) *domain.Money {
	if !pd.HasWorkspace(t) || !pd.HasRentalType(p) {
		return nil
	}
	return pd.Price(t, p)
}
