package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/Eursukkul/travel-listings/internal/events"
	"github.com/Eursukkul/travel-listings/internal/models"
	"github.com/Eursukkul/travel-listings/internal/repository"
	"github.com/Eursukkul/travel-listings/internal/validation"
	"gorm.io/gorm"
)

type ListingService interface {
	CreateListing(ctx context.Context, listing *models.Listing) error
	GetListing(ctx context.Context, id uint) (*models.Listing, error)
	ListListings(ctx context.Context, filter repository.ListingFilter) ([]models.Listing, error)
	UpdateListing(ctx context.Context, id uint, listing *models.Listing) (*models.Listing, error)
	DeleteListing(ctx context.Context, id uint) error
}

type listingService struct {
	repo      repository.ListingRepository
	publisher EventPublisher
}

func NewListingService(repo repository.ListingRepository, publisher EventPublisher) ListingService {
	return &listingService{repo: repo, publisher: publisher}
}

func (s *listingService) CreateListing(ctx context.Context, listing *models.Listing) error {
	if err := validation.ValidateListing(listing); err != nil {
		return err
	}
	if err := s.repo.Create(ctx, listing); err != nil {
		return fmt.Errorf("create listing: %w", err)
	}

	publish(s.publisher, events.ListingCreated, events.ListingCreatedPayload{
		ListingID:     listing.ID,
		Title:         listing.Title,
		Location:      listing.Location,
		PricePerNight: listing.PricePerNight.StringFixed(2),
	})
	return nil
}

// GetListing returns the listing with its bookings and reviews loaded.
func (s *listingService) GetListing(ctx context.Context, id uint) (*models.Listing, error) {
	listing, err := s.repo.FindByIDWithRelations(ctx, id)
	if err != nil {
		return nil, notFound(err, ErrListingNotFound)
	}
	return listing, nil
}

func (s *listingService) ListListings(ctx context.Context, filter repository.ListingFilter) ([]models.Listing, error) {
	return s.repo.FindAll(ctx, filter)
}

func (s *listingService) UpdateListing(ctx context.Context, id uint, listing *models.Listing) (*models.Listing, error) {
	if err := validation.ValidateListing(listing); err != nil {
		return nil, err
	}

	listing.ID = id
	if err := s.repo.Update(ctx, listing); err != nil {
		return nil, notFound(err, ErrListingNotFound)
	}
	return s.repo.FindByID(ctx, id)
}

func (s *listingService) DeleteListing(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return notFound(err, ErrListingNotFound)
	}
	return nil
}

// notFound translates gorm's missing-row error into the given sentinel.
func notFound(err, sentinel error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return sentinel
	}
	return err
}
