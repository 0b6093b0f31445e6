package service

import (
	"context"
	"errors"
	"time"

	"github.com/Eursukkul/travel-listings/internal/models"
	"github.com/Eursukkul/travel-listings/internal/repository"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// --- Mock ListingRepository ---

type mockListingRepo struct {
	createFn       func(ctx context.Context, listing *models.Listing) error
	findByIDFn     func(ctx context.Context, id uint) (*models.Listing, error)
	findRelatedFn  func(ctx context.Context, id uint) (*models.Listing, error)
	findAllFn      func(ctx context.Context, filter repository.ListingFilter) ([]models.Listing, error)
	updateFn       func(ctx context.Context, listing *models.Listing) error
	deleteFn       func(ctx context.Context, id uint) error
	transactionErr error
}

func (m *mockListingRepo) Create(ctx context.Context, listing *models.Listing) error {
	return m.createFn(ctx, listing)
}
func (m *mockListingRepo) FindByID(ctx context.Context, id uint) (*models.Listing, error) {
	return m.findByIDFn(ctx, id)
}
func (m *mockListingRepo) FindByIDWithRelations(ctx context.Context, id uint) (*models.Listing, error) {
	return m.findRelatedFn(ctx, id)
}
func (m *mockListingRepo) FindByIDForUpdate(ctx context.Context, tx *gorm.DB, id uint) (*models.Listing, error) {
	return m.findByIDFn(ctx, id)
}
func (m *mockListingRepo) FindAll(ctx context.Context, filter repository.ListingFilter) ([]models.Listing, error) {
	return m.findAllFn(ctx, filter)
}
func (m *mockListingRepo) Update(ctx context.Context, listing *models.Listing) error {
	return m.updateFn(ctx, listing)
}
func (m *mockListingRepo) Delete(ctx context.Context, id uint) error {
	return m.deleteFn(ctx, id)
}
func (m *mockListingRepo) DeleteAll(ctx context.Context) (int64, error) { return 0, nil }
func (m *mockListingRepo) Count(ctx context.Context) (int64, error)     { return 0, nil }
func (m *mockListingRepo) Transaction(ctx context.Context, fn func(tx *gorm.DB) error) error {
	if m.transactionErr != nil {
		return m.transactionErr
	}
	return fn(nil)
}

// --- Mock BookingRepository ---

type mockBookingRepo struct {
	createFn   func(ctx context.Context, tx *gorm.DB, booking *models.Booking) error
	findByIDFn func(ctx context.Context, id uint) (*models.Booking, error)
	findAllFn  func(ctx context.Context, listingID *uint) ([]models.Booking, error)
}

func (m *mockBookingRepo) Create(ctx context.Context, tx *gorm.DB, booking *models.Booking) error {
	return m.createFn(ctx, tx, booking)
}
func (m *mockBookingRepo) FindByID(ctx context.Context, id uint) (*models.Booking, error) {
	return m.findByIDFn(ctx, id)
}
func (m *mockBookingRepo) FindAll(ctx context.Context, listingID *uint) ([]models.Booking, error) {
	return m.findAllFn(ctx, listingID)
}
func (m *mockBookingRepo) DeleteAll(ctx context.Context) (int64, error) { return 0, nil }
func (m *mockBookingRepo) Count(ctx context.Context) (int64, error)     { return 0, nil }

// --- Mock ReviewRepository ---

type mockReviewRepo struct {
	createFn   func(ctx context.Context, review *models.Review) error
	findByIDFn func(ctx context.Context, id uint) (*models.Review, error)
	findAllFn  func(ctx context.Context, listingID *uint) ([]models.Review, error)
}

func (m *mockReviewRepo) Create(ctx context.Context, review *models.Review) error {
	return m.createFn(ctx, review)
}
func (m *mockReviewRepo) FindByID(ctx context.Context, id uint) (*models.Review, error) {
	return m.findByIDFn(ctx, id)
}
func (m *mockReviewRepo) FindAll(ctx context.Context, listingID *uint) ([]models.Review, error) {
	return m.findAllFn(ctx, listingID)
}
func (m *mockReviewRepo) DeleteAll(ctx context.Context) (int64, error) { return 0, nil }
func (m *mockReviewRepo) Count(ctx context.Context) (int64, error)     { return 0, nil }

// --- Mock EventPublisher ---

type published struct {
	key     string
	payload any
}

type mockPublisher struct {
	sent []published
	err  error
}

func (m *mockPublisher) Publish(routingKey string, payload any) error {
	m.sent = append(m.sent, published{key: routingKey, payload: payload})
	return m.err
}

// --- Fixtures ---

var errDB = errors.New("db connection failed")

func date(y int, m time.Month, d int) datatypes.Date {
	return datatypes.Date(time.Date(y, m, d, 0, 0, 0, 0, time.UTC))
}

func sampleListing() *models.Listing {
	return &models.Listing{
		ID:            1,
		Title:         "Cozy Beachfront Villa",
		Description:   "Beautiful villa with stunning ocean views.",
		PricePerNight: decimal.RequireFromString("250.00"),
		Location:      "Malibu, California",
		AvailableFrom: date(2026, 6, 1),
		AvailableTo:   date(2026, 8, 31),
	}
}

func listingFound(l *models.Listing) func(ctx context.Context, id uint) (*models.Listing, error) {
	return func(ctx context.Context, id uint) (*models.Listing, error) {
		if id != l.ID {
			return nil, gorm.ErrRecordNotFound
		}
		cp := *l
		return &cp, nil
	}
}
