package seed

import (
	"context"
	"errors"

	"github.com/Eursukkul/travel-listings/internal/models"
	"github.com/Eursukkul/travel-listings/internal/repository"
	"gorm.io/gorm"
)

// memStore backs the three repositories with slices and records clear order.
type memStore struct {
	listings []models.Listing
	bookings []models.Booking
	reviews  []models.Review
	nextID   uint
	cleared  []string

	// failListingAt makes the n-th listing insert (1-based) fail.
	failListingAt int
	inserts       int
}

var errInsert = errors.New("insert failed")

func (m *memStore) id() uint {
	m.nextID++
	return m.nextID
}

type memListings struct{ *memStore }
type memBookings struct{ *memStore }
type memReviews struct{ *memStore }

func (r memListings) Create(ctx context.Context, l *models.Listing) error {
	r.inserts++
	if r.failListingAt != 0 && r.inserts == r.failListingAt {
		return errInsert
	}
	l.ID = r.id()
	r.listings = append(r.listings, *l)
	return nil
}
func (r memListings) FindByID(ctx context.Context, id uint) (*models.Listing, error) {
	for i := range r.listings {
		if r.listings[i].ID == id {
			return &r.listings[i], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}
func (r memListings) FindByIDWithRelations(ctx context.Context, id uint) (*models.Listing, error) {
	return r.FindByID(ctx, id)
}
func (r memListings) FindByIDForUpdate(ctx context.Context, tx *gorm.DB, id uint) (*models.Listing, error) {
	return r.FindByID(ctx, id)
}
func (r memListings) FindAll(ctx context.Context, filter repository.ListingFilter) ([]models.Listing, error) {
	return append([]models.Listing(nil), r.listings...), nil
}
func (r memListings) Update(ctx context.Context, l *models.Listing) error { return nil }
func (r memListings) Delete(ctx context.Context, id uint) error          { return nil }
func (r memListings) DeleteAll(ctx context.Context) (int64, error) {
	r.cleared = append(r.cleared, "listings")
	n := int64(len(r.listings))
	r.listings = nil
	return n, nil
}
func (r memListings) Count(ctx context.Context) (int64, error) { return int64(len(r.listings)), nil }
func (r memListings) Transaction(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return fn(nil)
}

func (r memBookings) Create(ctx context.Context, tx *gorm.DB, b *models.Booking) error {
	b.ID = r.id()
	r.bookings = append(r.bookings, *b)
	return nil
}
func (r memBookings) FindByID(ctx context.Context, id uint) (*models.Booking, error) {
	return nil, gorm.ErrRecordNotFound
}
func (r memBookings) FindAll(ctx context.Context, listingID *uint) ([]models.Booking, error) {
	return r.bookings, nil
}
func (r memBookings) DeleteAll(ctx context.Context) (int64, error) {
	r.cleared = append(r.cleared, "bookings")
	n := int64(len(r.bookings))
	r.bookings = nil
	return n, nil
}
func (r memBookings) Count(ctx context.Context) (int64, error) { return int64(len(r.bookings)), nil }

func (r memReviews) Create(ctx context.Context, rv *models.Review) error {
	rv.ID = r.id()
	r.reviews = append(r.reviews, *rv)
	return nil
}
func (r memReviews) FindByID(ctx context.Context, id uint) (*models.Review, error) {
	return nil, gorm.ErrRecordNotFound
}
func (r memReviews) FindAll(ctx context.Context, listingID *uint) ([]models.Review, error) {
	return r.reviews, nil
}
func (r memReviews) DeleteAll(ctx context.Context) (int64, error) {
	r.cleared = append(r.cleared, "reviews")
	n := int64(len(r.reviews))
	r.reviews = nil
	return n, nil
}
func (r memReviews) Count(ctx context.Context) (int64, error) { return int64(len(r.reviews)), nil }
