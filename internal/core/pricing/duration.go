package pricing

import (
	"fmt"
	"time"

	"github.com/SscSPs/workspace_storefront/internal/apperrors"
	"github.com/SscSPs/workspace_storefront/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Message keys shown by the booking form when a duration cannot be billed.
const (
	MsgSelectValidDuration    = "BookingTimeForm.selectValidDuration"
	MsgDurationNeedsFullHours = "BookingTimeForm.durationNeedsFullHours"
)

var hourNanos = decimal.NewFromInt(int64(time.Hour))

// CountHours returns the exact number of hours between start and end. A
// 09:00–09:45 range yields 0.75.
func CountHours(start, end time.Time) decimal.Decimal {
	return decimal.NewFromInt(int64(end.Sub(start))).Div(hourNanos)
}

// IsFullHours reports whether hours is a positive whole number.
func IsFullHours(hours decimal.Decimal) bool {
	return hours.IsPositive() && hours.IsInteger()
}

func calendarDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DaysBetweenInclusive counts calendar days from start to end, both included.
// The same day counts as 1. It returns 0 when end is before start.
func DaysBetweenInclusive(start, end time.Time) int {
	days := int(calendarDate(end).Sub(calendarDate(start)).Hours()/24) + 1
	if days < 0 {
		return 0
	}
	return days
}

// addMonths moves d by months calendar months, clamping the day to the last day
// of the target month: Jan 31 + 1 month is Feb 29 in 2024.
func addMonths(d time.Time, months int) time.Time {
	y, m, day := d.Date()
	first := time.Date(y, m+time.Month(months), 1, 0, 0, 0, 0, time.UTC)
	if last := first.AddDate(0, 1, -1).Day(); day > last {
		day = last
	}
	return time.Date(first.Year(), first.Month(), day, 0, 0, 0, 0, time.UTC)
}

// MonthsBetween counts whole months from start through end, where end is the
// last booked day. Jan 15 – Feb 14 is one month, and so is Jan 31 – Feb 29.
func MonthsBetween(start, end time.Time) int {
	e := calendarDate(end)
	months := (e.Year()-start.Year())*12 + int(e.Month()) - int(start.Month()) + 1
	for months > 0 && MonthlyEndDate(start, months).After(e) {
		months--
	}
	if months < 0 {
		return 0
	}
	return months
}

// MonthlyEndDate returns the last booked day of a booking of months months:
// the day before the same day-of-month, or the last day of the target month
// when that month is too short.
func MonthlyEndDate(start time.Time, months int) time.Time {
	s := calendarDate(start)
	next := addMonths(s, months)
	if next.Day() < s.Day() {
		return next
	}
	return next.AddDate(0, 0, -1)
}

func durationError(key, reason string) error {
	return &apperrors.DurationError{MessageKey: key, Reason: reason}
}

// BookingUnits computes the billable quantity of a booking from its dates:
// hours for hourly, inclusive days for daily and whole months for monthly.
// Hourly bookings must cover a positive number of full hours.
func BookingUnits(period domain.RentalPeriod, booking domain.Booking) (decimal.Decimal, error) {
	switch period {
	case domain.Hourly:
		hours := CountHours(booking.Start, booking.End)
		if !hours.IsPositive() {
			return decimal.Zero, durationError(MsgSelectValidDuration, "booking must end after it starts")
		}
		if !IsFullHours(hours) {
			return decimal.Zero, durationError(MsgDurationNeedsFullHours, fmt.Sprintf("%s hours is not a whole number of hours", hours))
		}
		return hours, nil
	case domain.Daily:
		days := DaysBetweenInclusive(booking.Start, booking.End)
		if days < 1 {
			return decimal.Zero, durationError(MsgSelectValidDuration, "booking must end on or after its first day")
		}
		return decimal.NewFromInt(int64(days)), nil
	case domain.Monthly:
		months := MonthsBetween(booking.Start, booking.End)
		if months < 1 {
			return decimal.Zero, durationError(MsgSelectValidDuration, "monthly booking must cover at least one month")
		}
		return decimal.NewFromInt(int64(months)), nil
	}
	return decimal.Zero, fmt.Errorf("%w: unknown rental period %q", apperrors.ErrValidation, period)
}

// UnitsFromLineItems returns the quantity of the booking-unit line item of a
// persisted transaction. The quantity is authoritative and never recomputed from dates.
func UnitsFromLineItems(period domain.RentalPeriod, items []domain.LineItem) (decimal.Decimal, bool) {
	code := domain.UnitCodeFor(period)
	for _, li := range items {
		if li.Code == code && !li.Reversal {
			return li.Quantity, true
		}
	}
	return decimal.Zero, false
}

const (
	dayLayout  = "Mon, Jan 2"
	timeLayout = "15:04"
)

// FormatBookingPeriod renders the booked range. Hourly bookings within one day
// show that single date with the hour range.
func FormatBookingPeriod(period domain.RentalPeriod, booking domain.Booking) string {
	start, end := booking.Start, booking.End
	if period == domain.Hourly {
		if calendarDate(start).Equal(calendarDate(end)) {
			return fmt.Sprintf("%s, %s – %s", start.Format(dayLayout), start.Format(timeLayout), end.Format(timeLayout))
		}
		return fmt.Sprintf("%s, %s – %s, %s", start.Format(dayLayout), start.Format(timeLayout), end.Format(dayLayout), end.Format(timeLayout))
	}
	return fmt.Sprintf("%s – %s", start.Format(dayLayout), end.Format(dayLayout))
}

// FormatUnits renders a quantity with its unit: "8 hours", "1 day".
func FormatUnits(period domain.RentalPeriod, units decimal.Decimal) string {
	var unit string
	switch period {
	case domain.Hourly:
		unit = "hour"
	case domain.Monthly:
		unit = "month"
	default:
		unit = "day"
	}
	if !units.Equal(decimal.NewFromInt(1)) {
		unit += "s"
	}
	return units.String() + " " + unit
}
