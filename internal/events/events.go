package events

import "time"

const (
	ListingCreated = "listing.created"
	BookingCreated = "booking.created"
	ReviewCreated  = "review.created"
)

type ListingCreatedPayload struct {
	ListingID     uint   `json:"listing_id"`
	Title         string `json:"title"`
	Location      string `json:"location"`
	PricePerNight string `json:"price_per_night"`
}

type BookingCreatedPayload struct {
	BookingID    uint   `json:"booking_id"`
	ListingID    uint   `json:"listing_id"`
	ListingTitle string `json:"listing_title"`
	User         string `json:"user"`
	StartDate    string `json:"start_date"`
	EndDate      string `json:"end_date"`
	TotalPrice   string `json:"total_price"`
}

type ReviewCreatedPayload struct {
	ReviewID  uint      `json:"review_id"`
	ListingID uint      `json:"listing_id"`
	User      string    `json:"user"`
	Rating    int       `json:"rating"`
	CreatedAt time.Time `json:"created_at"`
}
