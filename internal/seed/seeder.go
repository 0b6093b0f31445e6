// Package seed fills the database with sample listings, bookings and reviews.
// A run is sequential and unwrapped by any transaction: the first failure stops
// it and whatever was written before stays.
package seed

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/Eursukkul/travel-listings/internal/models"
	"github.com/Eursukkul/travel-listings/internal/repository"
	"github.com/Eursukkul/travel-listings/internal/validation"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

const (
	minLeadDays   = 1
	maxLeadDays   = 30
	minWindowDays = 30
	maxWindowDays = 365

	minSynthPrice = 50
	maxSynthPrice = 600

	// bookingMargin is how many days at the end of a window no stay may start in.
	bookingMargin = 7
	maxStayNights = 14
)

var ErrNoListings = errors.New("no listings available to attach bookings or reviews to")

type Options struct {
	Listings int
	Bookings int
	Reviews  int
	// Clear deletes all reviews, bookings and listings before seeding.
	Clear bool
}

func DefaultOptions() Options {
	return Options{Listings: 20, Bookings: 50, Reviews: 100}
}

type Result struct {
	Listings int
	Bookings int
	Reviews  int
}

type Seeder struct {
	listings repository.ListingRepository
	bookings repository.BookingRepository
	reviews  repository.ReviewRepository
	rng      *rand.Rand
	now      func() time.Time
}

func NewSeeder(
	listings repository.ListingRepository,
	bookings repository.BookingRepository,
	reviews repository.ReviewRepository,
	rng *rand.Rand,
) *Seeder {
	return &Seeder{
		listings: listings,
		bookings: bookings,
		reviews:  reviews,
		rng:      rng,
		now:      time.Now,
	}
}

func (s *Seeder) Run(ctx context.Context, opts Options) (*Result, error) {
	if opts.Clear {
		log.Println("[Seed] clearing existing data...")
		if err := s.Clear(ctx); err != nil {
			return nil, err
		}
		log.Println("[Seed] existing data cleared")
	}

	log.Printf("[Seed] creating %d listings...", opts.Listings)
	listings, err := s.CreateListings(ctx, opts.Listings)
	if err != nil {
		return nil, err
	}
	log.Printf("[Seed] created %d listings", len(listings))

	pool, err := s.listingPool(ctx, listings, opts)
	if err != nil {
		return nil, err
	}

	log.Printf("[Seed] creating %d bookings...", opts.Bookings)
	bookings, err := s.CreateBookings(ctx, opts.Bookings, pool)
	if err != nil {
		return nil, err
	}
	log.Printf("[Seed] created %d bookings", len(bookings))

	log.Printf("[Seed] creating %d reviews...", opts.Reviews)
	reviews, err := s.CreateReviews(ctx, opts.Reviews, pool)
	if err != nil {
		return nil, err
	}
	log.Printf("[Seed] created %d reviews", len(reviews))

	res := &Result{Listings: len(listings), Bookings: len(bookings), Reviews: len(reviews)}
	log.Printf("[Seed] completed: listings=%d bookings=%d reviews=%d", res.Listings, res.Bookings, res.Reviews)
	return res, nil
}

// Clear removes children before parents: reviews, bookings, then listings.
func (s *Seeder) Clear(ctx context.Context) error {
	if _, err := s.reviews.DeleteAll(ctx); err != nil {
		return fmt.Errorf("clear reviews: %w", err)
	}
	if _, err := s.bookings.DeleteAll(ctx); err != nil {
		return fmt.Errorf("clear bookings: %w", err)
	}
	if _, err := s.listings.DeleteAll(ctx); err != nil {
		return fmt.Errorf("clear listings: %w", err)
	}
	return nil
}

// listingPool picks what bookings and reviews attach to: this run's listings, or the
// stored ones when the run created none.
func (s *Seeder) listingPool(ctx context.Context, created []*models.Listing, opts Options) ([]*models.Listing, error) {
	if len(created) > 0 || (opts.Bookings <= 0 && opts.Reviews <= 0) {
		return created, nil
	}

	stored, err := s.listings.FindAll(ctx, repository.ListingFilter{})
	if err != nil {
		return nil, fmt.Errorf("load listings: %w", err)
	}
	if len(stored) == 0 {
		return nil, ErrNoListings
	}
	pool := make([]*models.Listing, len(stored))
	for i := range stored {
		pool[i] = &stored[i]
	}
	return pool, nil
}

// CreateListings uses the curated listings first and synthesizes the remainder.
func (s *Seeder) CreateListings(ctx context.Context, count int) ([]*models.Listing, error) {
	listings := make([]*models.Listing, 0, max(count, 0))

	for i := 0; i < count; i++ {
		var l *models.Listing
		if i < len(curatedListings) {
			c := curatedListings[i]
			l = &models.Listing{
				Title:         c.title,
				Description:   c.description,
				Location:      c.location,
				PricePerNight: decimal.RequireFromString(c.price),
			}
		} else {
			l = s.synthesizeListing()
		}

		from := s.today().AddDate(0, 0, s.intBetween(minLeadDays, maxLeadDays))
		to := from.AddDate(0, 0, s.intBetween(minWindowDays, maxWindowDays))
		l.AvailableFrom = datatypes.Date(from)
		l.AvailableTo = datatypes.Date(to)

		if err := validation.ValidateListing(l); err != nil {
			return listings, fmt.Errorf("listing %q: %w", l.Title, err)
		}
		if err := s.listings.Create(ctx, l); err != nil {
			return listings, fmt.Errorf("create listing %q: %w", l.Title, err)
		}
		listings = append(listings, l)
	}

	return listings, nil
}

func (s *Seeder) synthesizeListing() *models.Listing {
	propertyType := pick(s.rng, propertyTypes)
	location := pick(s.rng, extraLocations)
	fragment := pick(s.rng, descriptionFragments)
	city, _, _ := strings.Cut(location, ",")

	return &models.Listing{
		Title:         fmt.Sprintf("%s in %s", propertyType, city),
		Description:   fmt.Sprintf("%s Located in the beautiful %s.", fragment, location),
		Location:      location,
		PricePerNight: decimal.NewFromInt(int64(s.intBetween(minSynthPrice, maxSynthPrice))),
	}
}

// CreateBookings makes up to count bookings. A draw that lands on a listing whose
// window is too short for the start margin is skipped, so fewer may be returned.
func (s *Seeder) CreateBookings(ctx context.Context, count int, listings []*models.Listing) ([]*models.Booking, error) {
	if count > 0 && len(listings) == 0 {
		return nil, ErrNoListings
	}

	var bookings []*models.Booking
	for i := 0; i < count; i++ {
		listing := pick(s.rng, listings)
		user := pick(s.rng, bookingUsers)

		maxStartOffset := models.DaysBetween(listing.From(), listing.To()) - bookingMargin
		if maxStartOffset <= 0 {
			continue
		}

		start := listing.From().AddDate(0, 0, s.intBetween(0, maxStartOffset))
		maxNights := min(maxStayNights, models.DaysBetween(start, listing.To()))
		nights := s.intBetween(1, maxNights)
		end := start.AddDate(0, 0, nights)

		b := &models.Booking{
			ListingID:  listing.ID,
			User:       user,
			StartDate:  datatypes.Date(start),
			EndDate:    datatypes.Date(end),
			TotalPrice: listing.PriceFor(nights),
		}
		if err := validation.ValidateBooking(b, listing); err != nil {
			return bookings, fmt.Errorf("booking for listing %d: %w", listing.ID, err)
		}
		if err := s.bookings.Create(ctx, nil, b); err != nil {
			return bookings, fmt.Errorf("create booking for listing %d: %w", listing.ID, err)
		}
		b.Listing = listing
		bookings = append(bookings, b)
	}

	return bookings, nil
}

func (s *Seeder) CreateReviews(ctx context.Context, count int, listings []*models.Listing) ([]*models.Review, error) {
	if count > 0 && len(listings) == 0 {
		return nil, ErrNoListings
	}

	var reviews []*models.Review
	for i := 0; i < count; i++ {
		listing := pick(s.rng, listings)
		user := pick(s.rng, reviewerUsers)
		rating := weightedRating(s.rng)

		r := &models.Review{
			ListingID: listing.ID,
			User:      user,
			Rating:    rating,
			Comment:   pick(s.rng, commentPool(rating)),
		}
		if err := validation.ValidateReviewRating(r.Rating); err != nil {
			return reviews, err
		}
		if err := s.reviews.Create(ctx, r); err != nil {
			return reviews, fmt.Errorf("create review for listing %d: %w", listing.ID, err)
		}
		r.Listing = listing
		reviews = append(reviews, r)
	}

	return reviews, nil
}

func (s *Seeder) today() time.Time {
	y, m, d := s.now().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// intBetween returns a uniform integer in [lo, hi].
func (s *Seeder) intBetween(lo, hi int) int {
	return lo + s.rng.IntN(hi-lo+1)
}

func pick[T any](rng *rand.Rand, items []T) T {
	return items[rng.IntN(len(items))]
}

func weightedRating(rng *rand.Rand) int {
	total := 0
	for _, w := range ratingWeights {
		total += w
	}
	n := rng.IntN(total)
	for i, w := range ratingWeights {
		if n < w {
			return i + 1
		}
		n -= w
	}
	return len(ratingWeights)
}

func commentPool(rating int) []string {
	switch {
	case rating >= 4:
		return positiveComments
	case rating == 3:
		return neutralComments
	default:
		return negativeComments
	}
}
