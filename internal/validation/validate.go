package validation

import (
	"time"

	"github.com/Eursukkul/travel-listings/internal/models"
	"github.com/shopspring/decimal"
)

const (
	MsgListingDates    = "Available from date must be before available to date."
	MsgBookingDates    = "Start date must be before end date."
	MsgBookingWindow   = "Booking dates must be within the listing's availability period."
	MsgRatingRange     = "Rating must be between 1 and 5."
	MsgNegativePrice   = "Price per night must not be negative."
	MsgPriceOutOfRange = "Ensure that there are no more than 10 digits in total and no more than 2 decimal places."

	MinRating = 1
	MaxRating = 5
)

// numeric(10,2) holds at most 8 integer digits.
var maxMoney = decimal.New(1, 8)

// ValidateListing checks the listing's availability window and price.
func ValidateListing(l *models.Listing) error {
	if !l.From().Before(l.To()) {
		return New(MsgListingDates)
	}
	if l.PricePerNight.IsNegative() {
		return New(MsgNegativePrice)
	}
	return ValidateMoney(l.PricePerNight)
}

// ValidateBooking checks that the stay is a non-empty range inside the listing's
// availability window. A nil listing only gets the range check.
func ValidateBooking(b *models.Booking, listing *models.Listing) error {
	start, end := b.Start(), b.End()
	if !start.Before(end) {
		return New(MsgBookingDates)
	}
	if listing == nil {
		return nil
	}
	if !WithinWindow(listing, start, end) {
		return New(MsgBookingWindow)
	}
	return nil
}

func ValidateReviewRating(value int) error {
	if value < MinRating || value > MaxRating {
		return New(MsgRatingRange)
	}
	return nil
}

// ValidateMoney rejects amounts that would not fit a numeric(10,2) column.
func ValidateMoney(d decimal.Decimal) error {
	if d.Exponent() < -2 && !d.Equal(d.Round(2)) {
		return New(MsgPriceOutOfRange)
	}
	if d.Abs().GreaterThanOrEqual(maxMoney) {
		return New(MsgPriceOutOfRange)
	}
	return nil
}

// WithinWindow reports whether [start, end] lies inside the listing's availability.
func WithinWindow(listing *models.Listing, start, end time.Time) bool {
	return !start.Before(listing.From()) && !end.After(listing.To())
}
