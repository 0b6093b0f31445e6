package handler

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"time"

	"github.com/Eursukkul/travel-listings/internal/models"
	"github.com/Eursukkul/travel-listings/internal/repository"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// --- Mock ListingService ---

type mockListingService struct {
	createFn func(ctx context.Context, listing *models.Listing) error
	getFn    func(ctx context.Context, id uint) (*models.Listing, error)
	listFn   func(ctx context.Context, filter repository.ListingFilter) ([]models.Listing, error)
	updateFn func(ctx context.Context, id uint, listing *models.Listing) (*models.Listing, error)
	deleteFn func(ctx context.Context, id uint) error
}

func (m *mockListingService) CreateListing(ctx context.Context, listing *models.Listing) error {
	return m.createFn(ctx, listing)
}
func (m *mockListingService) GetListing(ctx context.Context, id uint) (*models.Listing, error) {
	return m.getFn(ctx, id)
}
func (m *mockListingService) ListListings(ctx context.Context, filter repository.ListingFilter) ([]models.Listing, error) {
	return m.listFn(ctx, filter)
}
func (m *mockListingService) UpdateListing(ctx context.Context, id uint, listing *models.Listing) (*models.Listing, error) {
	return m.updateFn(ctx, id, listing)
}
func (m *mockListingService) DeleteListing(ctx context.Context, id uint) error {
	return m.deleteFn(ctx, id)
}

// --- Mock BookingService ---

type mockBookingService struct {
	createFn func(ctx context.Context, booking *models.Booking) error
	getFn    func(ctx context.Context, id uint) (*models.Booking, error)
	listFn   func(ctx context.Context, listingID *uint) ([]models.Booking, error)
}

func (m *mockBookingService) CreateBooking(ctx context.Context, booking *models.Booking) error {
	return m.createFn(ctx, booking)
}
func (m *mockBookingService) GetBooking(ctx context.Context, id uint) (*models.Booking, error) {
	return m.getFn(ctx, id)
}
func (m *mockBookingService) ListBookings(ctx context.Context, listingID *uint) ([]models.Booking, error) {
	return m.listFn(ctx, listingID)
}

// --- Mock ReviewService ---

type mockReviewService struct {
	createFn func(ctx context.Context, review *models.Review) error
	getFn    func(ctx context.Context, id uint) (*models.Review, error)
	listFn   func(ctx context.Context, listingID *uint) ([]models.Review, error)
}

func (m *mockReviewService) CreateReview(ctx context.Context, review *models.Review) error {
	return m.createFn(ctx, review)
}
func (m *mockReviewService) GetReview(ctx context.Context, id uint) (*models.Review, error) {
	return m.getFn(ctx, id)
}
func (m *mockReviewService) ListReviews(ctx context.Context, listingID *uint) ([]models.Review, error) {
	return m.listFn(ctx, listingID)
}

// --- Helpers ---

func newContext(method, target, body string, params ...string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = NewRequestValidator()

	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, r)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if len(params) == 2 {
		c.SetParamNames(params[0])
		c.SetParamValues(params[1])
	}
	return c, rec
}

func httpCode(err error) int {
	if he, ok := err.(*echo.HTTPError); ok {
		return he.Code
	}
	return http.StatusOK
}

func day(y int, m time.Month, d int) datatypes.Date {
	return datatypes.Date(time.Date(y, m, d, 0, 0, 0, 0, time.UTC))
}

func sampleListing() *models.Listing {
	return &models.Listing{
		ID:            1,
		Title:         "Urban Loft Downtown",
		Description:   "Modern loft in the heart of the city.",
		PricePerNight: decimal.RequireFromString("320.00"),
		Location:      "New York, New York",
		AvailableFrom: day(2026, 11, 1),
		AvailableTo:   day(2027, 2, 1),
	}
}
