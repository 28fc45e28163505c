package pricing_test

import (
	"time"

	"github.com/SscSPs/workspace_storefront/internal/core/domain"
	"github.com/SscSPs/workspace_storefront/internal/core/pricing"
	"github.com/shopspring/decimal"
)

var usd = domain.Currency{CurrencyCode: "USD", Symbol: "$", Name: "US Dollar", Precision: 2}

func usdPtr(amount int64) *domain.Money {
	m := domain.NewMoney(amount, "USD")
	return &m
}

func date(y int, m time.Month, d, hour, min int) time.Time {
	return time.Date(y, m, d, hour, min, 0, 0, time.UTC)
}

func seatsListing() domain.Listing {
	return domain.Listing{
		ID:    "listing-1",
		Title: "Canal-side coworking",
		PublicData: domain.ListingPublicData{
			Workspaces:       []domain.WorkspaceType{domain.Seats, domain.MeetingRooms},
			RentalTypes:      []domain.RentalPeriod{domain.Hourly, domain.Daily},
			PriceSeatsHourly: usdPtr(1500),
			PriceSeatsDaily:  usdPtr(10000),

			PriceMeetingRoomsHourly: usdPtr(4000),
			PriceMeetingRoomsDaily:  usdPtr(25000),
		},
	}
}

func noConversion() *pricing.Converter {
	return pricing.NewConverter(usd, domain.NoConversion())
}

func eurPreferences() domain.Preferences {
	return domain.Preferences{
		Currency: "EUR",
		Rates:    domain.RateTable{{IsoCode: "EUR", CurrentRate: decimal.RequireFromString("0.9"), Symbol: "€"}},
		Source:   domain.PreferenceFromUser,
	}
}

func fixedID() string { return "tx-estimate" }
