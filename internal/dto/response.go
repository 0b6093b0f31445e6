package dto

import (
	"time"

	"github.com/Eursukkul/travel-listings/internal/models"
	"github.com/shopspring/decimal"
)

type ListingResponse struct {
	ID            uint   `json:"id"`
	Title         string `json:"title"`
	Description   string `json:"description"`
	PricePerNight string `json:"price_per_night"`
	Location      string `json:"location"`
	AvailableFrom Date   `json:"available_from"`
	AvailableTo   Date   `json:"available_to"`
}

// ListingDetailResponse is the listing with its bookings, reviews and rating summary.
type ListingDetailResponse struct {
	ListingResponse
	Bookings      []BookingResponse `json:"bookings"`
	Reviews       []ReviewResponse  `json:"reviews"`
	AverageRating *float64          `json:"average_rating"`
	TotalReviews  int               `json:"total_reviews"`
}

type BookingResponse struct {
	ID              uint   `json:"id"`
	Listing         uint   `json:"listing"`
	ListingTitle    string `json:"listing_title"`
	ListingLocation string `json:"listing_location"`
	User            string `json:"user"`
	StartDate       Date   `json:"start_date"`
	EndDate         Date   `json:"end_date"`
	TotalPrice      string `json:"total_price"`
}

type ReviewResponse struct {
	ID           uint      `json:"id"`
	Listing      uint      `json:"listing"`
	ListingTitle string    `json:"listing_title"`
	User         string    `json:"user"`
	Rating       int       `json:"rating"`
	Comment      string    `json:"comment"`
	CreatedAt    time.Time `json:"created_at"`
}

type ErrorResponse struct {
	Message string `json:"message"`
}

func money(d decimal.Decimal) string {
	return d.StringFixed(2)
}

func ToListingResponse(l *models.Listing) ListingResponse {
	return ListingResponse{
		ID:            l.ID,
		Title:         l.Title,
		Description:   l.Description,
		PricePerNight: money(l.PricePerNight),
		Location:      l.Location,
		AvailableFrom: NewDate(l.AvailableFrom),
		AvailableTo:   NewDate(l.AvailableTo),
	}
}

// ToListingDetailResponse expects l.Bookings and l.Reviews to be loaded. The
// nested items take their listing fields from l.
func ToListingDetailResponse(l *models.Listing) ListingDetailResponse {
	bookings := make([]BookingResponse, len(l.Bookings))
	for i := range l.Bookings {
		b := l.Bookings[i]
		b.Listing = l
		bookings[i] = ToBookingResponse(&b)
	}

	reviews := make([]ReviewResponse, len(l.Reviews))
	for i := range l.Reviews {
		r := l.Reviews[i]
		r.Listing = l
		reviews[i] = ToReviewResponse(&r)
	}

	return ListingDetailResponse{
		ListingResponse: ToListingResponse(l),
		Bookings:        bookings,
		Reviews:         reviews,
		AverageRating:   AverageRating(l.Reviews),
		TotalReviews:    TotalReviews(l.Reviews),
	}
}

func ToBookingResponse(b *models.Booking) BookingResponse {
	resp := BookingResponse{
		ID:         b.ID,
		Listing:    b.ListingID,
		User:       b.User,
		StartDate:  NewDate(b.StartDate),
		EndDate:    NewDate(b.EndDate),
		TotalPrice: money(b.TotalPrice),
	}
	if b.Listing != nil {
		resp.ListingTitle = b.Listing.Title
		resp.ListingLocation = b.Listing.Location
	}
	return resp
}

func ToReviewResponse(r *models.Review) ReviewResponse {
	resp := ReviewResponse{
		ID:        r.ID,
		Listing:   r.ListingID,
		User:      r.User,
		Rating:    r.Rating,
		Comment:   r.Comment,
		CreatedAt: r.CreatedAt,
	}
	if r.Listing != nil {
		resp.ListingTitle = r.Listing.Title
	}
	return resp
}

// AverageRating is the arithmetic mean of the ratings, or nil when there are none.
func AverageRating(reviews []models.Review) *float64 {
	if len(reviews) == 0 {
		return nil
	}
	sum := 0
	for _, r := range reviews {
		sum += r.Rating
	}
	avg := float64(sum) / float64(len(reviews))
	return &avg
}

func TotalReviews(reviews []models.Review) int {
	return len(reviews)
}
