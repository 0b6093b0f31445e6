package dto

import (
	"github.com/Eursukkul/travel-listings/internal/models"
	"github.com/shopspring/decimal"
)

type ListingRequest struct {
	Title         string           `json:"title" validate:"required,max=200"`
	Description   string           `json:"description" validate:"required"`
	PricePerNight *decimal.Decimal `json:"price_per_night" validate:"required"`
	Location      string           `json:"location" validate:"required,max=100"`
	AvailableFrom *Date            `json:"available_from" validate:"required"`
	AvailableTo   *Date            `json:"available_to" validate:"required"`
}

func (r *ListingRequest) ToModel() *models.Listing {
	l := &models.Listing{
		Title:         r.Title,
		Description:   r.Description,
		Location:      r.Location,
		AvailableFrom: r.AvailableFrom.Model(),
		AvailableTo:   r.AvailableTo.Model(),
	}
	if r.PricePerNight != nil {
		l.PricePerNight = *r.PricePerNight
	}
	return l
}

type BookingRequest struct {
	Listing   uint   `json:"listing" validate:"required"`
	User      string `json:"user" validate:"required,max=100"`
	StartDate *Date  `json:"start_date" validate:"required"`
	EndDate   *Date  `json:"end_date" validate:"required"`
	// TotalPrice is optional; when omitted the service prices the stay itself.
	TotalPrice *decimal.Decimal `json:"total_price"`
}

func (r *BookingRequest) ToModel() *models.Booking {
	b := &models.Booking{
		ListingID: r.Listing,
		User:      r.User,
		StartDate: r.StartDate.Model(),
		EndDate:   r.EndDate.Model(),
	}
	if r.TotalPrice != nil {
		b.TotalPrice = *r.TotalPrice
	}
	return b
}

type ReviewRequest struct {
	Listing uint   `json:"listing" validate:"required"`
	User    string `json:"user" validate:"required,max=100"`
	Rating  int    `json:"rating"`
	Comment string `json:"comment" validate:"required"`
}

func (r *ReviewRequest) ToModel() *models.Review {
	return &models.Review{
		ListingID: r.Listing,
		User:      r.User,
		Rating:    r.Rating,
		Comment:   r.Comment,
	}
}
