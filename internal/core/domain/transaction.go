package domain

import "time"

// TransactionStatus is the lifecycle state relevant to breakdown labels.
type TransactionStatus string

const (
	StatusPending   TransactionStatus = "pending"
	StatusAccepted  TransactionStatus = "accepted"
	StatusDelivered TransactionStatus = "delivered"
	StatusDeclined  TransactionStatus = "declined"
	StatusCanceled  TransactionStatus = "canceled"
)

// Booking is the booked time range. End is exclusive for hourly bookings and the
// last booked day for daily and monthly bookings.
type Booking struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Transaction is a priced booking, either fetched from the marketplace backend
// or estimated locally before one exists. Estimated transactions are never persisted.
type Transaction struct {
	ID          string            `json:"id"`
	Estimated   bool              `json:"estimated"`
	Status      TransactionStatus `json:"status"`
	LineItems   []LineItem        `json:"lineItems"`
	PayinTotal  Money             `json:"payinTotal"`
	PayoutTotal Money             `json:"payoutTotal"`
	Booking     Booking           `json:"booking"`
}

// TotalFor returns the payin total for customers and the payout total for providers.
func (t Transaction) TotalFor(r Role) Money {
	if r == RoleProvider {
		return t.PayoutTotal
	}
	return t.PayinTotal
}
