package domain

// WorkspaceType is the kind of space being booked.
type WorkspaceType string

const (
	Seats        WorkspaceType = "seats"
	OfficeRooms  WorkspaceType = "office_rooms"
	MeetingRooms WorkspaceType = "meeting_rooms"
)

// WorkspaceTypes lists every workspace type in display order.
var WorkspaceTypes = []WorkspaceType{Seats, OfficeRooms, MeetingRooms}

// RentalPeriod is the billing granularity of a booking.
type RentalPeriod string

const (
	Hourly  RentalPeriod = "hourly"
	Daily   RentalPeriod = "daily"
	Monthly RentalPeriod = "monthly"
)

// RentalPeriods lists every rental period in display order.
var RentalPeriods = []RentalPeriod{Hourly, Daily, Monthly}

// Valid reports whether t is a known workspace type.
func (t WorkspaceType) Valid() bool {
	return t == Seats || t == OfficeRooms || t == MeetingRooms
}

// Valid reports whether p is a known rental period.
func (p RentalPeriod) Valid() bool {
	return p == Hourly || p == Daily || p == Monthly
}

// ListingPublicData holds the provider-editable pricing configuration of a listing.
// Prices are sparse: any of the nine (type, period) prices may be absent.
type ListingPublicData struct {
	Workspaces  []WorkspaceType `json:"workspaces"`
	RentalTypes []RentalPeriod  `json:"rentalTypes"`

	PriceSeatsHourly         *Money `json:"priceSeatsHourly,omitempty"`
	PriceSeatsDaily          *Money `json:"priceSeatsDaily,omitempty"`
	PriceSeatsMonthly        *Money `json:"priceSeatsMonthly,omitempty"`
	PriceOfficeRoomsHourly   *Money `json:"priceOfficeRoomsHourly,omitempty"`
	PriceOfficeRoomsDaily    *Money `json:"priceOfficeRoomsDaily,omitempty"`
	PriceOfficeRoomsMonthly  *Money `json:"priceOfficeRoomsMonthly,omitempty"`
	PriceMeetingRoomsHourly  *Money `json:"priceMeetingRoomsHourly,omitempty"`
	PriceMeetingRoomsDaily   *Money `json:"priceMeetingRoomsDaily,omitempty"`
	PriceMeetingRoomsMonthly *Money `json:"priceMeetingRoomsMonthly,omitempty"`
}

// HasWorkspace reports whether the listing offers workspace type t.
func (pd ListingPublicData) HasWorkspace(t WorkspaceType) bool {
	for _, w := range pd.Workspaces {
		if w == t {
			return true
		}
	}
	return false
}

// HasRentalType reports whether the listing can be rented per period p.
func (pd ListingPublicData) HasRentalType(p RentalPeriod) bool {
	for _, r := range pd.RentalTypes {
		if r == p {
			return true
		}
	}
	return false
}

// Price returns the configured price for (t, p), or nil when none is set.
// Activity (workspaces / rentalTypes) is not checked here.
func (pd ListingPublicData) Price(t WorkspaceType, p RentalPeriod) *Money {
	switch t {
	case Seats:
		switch p {
		case Hourly:
			return pd.PriceSeatsHourly
		case Daily:
			return pd.PriceSeatsDaily
		case Monthly:
			return pd.PriceSeatsMonthly
		}
	case OfficeRooms:
		switch p {
		case Hourly:
			return pd.PriceOfficeRoomsHourly
		case Daily:
			return pd.PriceOfficeRoomsDaily
		case Monthly:
			return pd.PriceOfficeRoomsMonthly
		}
	case MeetingRooms:
		switch p {
		case Hourly:
			return pd.PriceMeetingRoomsHourly
		case Daily:
			return pd.PriceMeetingRoomsDaily
		case Monthly:
			return pd.PriceMeetingRoomsMonthly
		}
	}
	return nil
}

// Listing is the subset of a marketplace listing the pricing core reads.
type Listing struct {
	ID         string            `json:"id"`
	Title      string            `json:"title"`
	Price      *Money            `json:"price,omitempty"` // Legacy single price
	PublicData ListingPublicData `json:"publicData"`
}
