package service

import (
	"context"
	"fmt"
	"time"

	"github.com/Eursukkul/travel-listings/internal/events"
	"github.com/Eursukkul/travel-listings/internal/models"
	"github.com/Eursukkul/travel-listings/internal/repository"
	"github.com/Eursukkul/travel-listings/internal/validation"
	"gorm.io/gorm"
)

const MsgNegativeTotal = "Total price must not be negative."

type BookingService interface {
	CreateBooking(ctx context.Context, booking *models.Booking) error
	GetBooking(ctx context.Context, id uint) (*models.Booking, error)
	ListBookings(ctx context.Context, listingID *uint) ([]models.Booking, error)
}

type bookingService struct {
	bookingRepo repository.BookingRepository
	listingRepo repository.ListingRepository
	publisher   EventPublisher
}

func NewBookingService(bookingRepo repository.BookingRepository, listingRepo repository.ListingRepository, publisher EventPublisher) BookingService {
	return &bookingService{
		bookingRepo: bookingRepo,
		listingRepo: listingRepo,
		publisher:   publisher,
	}
}

// CreateBooking validates the stay against the listing's availability and stores it.
// A zero total price is replaced by price_per_night × nights; a submitted one is kept.
func (s *bookingService) CreateBooking(ctx context.Context, booking *models.Booking) error {
	err := s.listingRepo.Transaction(ctx, func(tx *gorm.DB) error {
		// Lock the listing so its window cannot change between the check and the insert
		listing, err := s.listingRepo.FindByIDForUpdate(ctx, tx, booking.ListingID)
		if err != nil {
			return notFound(err, ErrListingNotFound)
		}

		if err := validation.ValidateBooking(booking, listing); err != nil {
			return err
		}

		if booking.TotalPrice.IsZero() {
			booking.TotalPrice = listing.PriceFor(booking.Nights())
		}
		if booking.TotalPrice.IsNegative() {
			return validation.New(MsgNegativeTotal)
		}
		if err := validation.ValidateMoney(booking.TotalPrice); err != nil {
			return err
		}

		if err := s.bookingRepo.Create(ctx, tx, booking); err != nil {
			return fmt.Errorf("create booking: %w", err)
		}
		booking.Listing = listing
		return nil
	})
	if err != nil {
		return err
	}

	publish(s.publisher, events.BookingCreated, events.BookingCreatedPayload{
		BookingID:    booking.ID,
		ListingID:    booking.ListingID,
		ListingTitle: booking.Listing.Title,
		User:         booking.User,
		StartDate:    booking.Start().Format(time.DateOnly),
		EndDate:      booking.End().Format(time.DateOnly),
		TotalPrice:   booking.TotalPrice.StringFixed(2),
	})
	return nil
}

func (s *bookingService) GetBooking(ctx context.Context, id uint) (*models.Booking, error) {
	booking, err := s.bookingRepo.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err, ErrBookingNotFound)
	}
	return booking, nil
}

// ListBookings returns all bookings, or only those of one listing when listingID is set.
func (s *bookingService) ListBookings(ctx context.Context, listingID *uint) ([]models.Booking, error) {
	if listingID != nil {
		if _, err := s.listingRepo.FindByID(ctx, *listingID); err != nil {
			return nil, notFound(err, ErrListingNotFound)
		}
	}
	return s.bookingRepo.FindAll(ctx, listingID)
}
