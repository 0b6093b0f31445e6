package service

import (
	"context"
	"fmt"

	"github.com/Eursukkul/travel-listings/internal/events"
	"github.com/Eursukkul/travel-listings/internal/models"
	"github.com/Eursukkul/travel-listings/internal/repository"
	"github.com/Eursukkul/travel-listings/internal/validation"
)

type ReviewService interface {
	CreateReview(ctx context.Context, review *models.Review) error
	GetReview(ctx context.Context, id uint) (*models.Review, error)
	ListReviews(ctx context.Context, listingID *uint) ([]models.Review, error)
}

type reviewService struct {
	reviewRepo  repository.ReviewRepository
	listingRepo repository.ListingRepository
	publisher   EventPublisher
}

func NewReviewService(reviewRepo repository.ReviewRepository, listingRepo repository.ListingRepository, publisher EventPublisher) ReviewService {
	return &reviewService{
		reviewRepo:  reviewRepo,
		listingRepo: listingRepo,
		publisher:   publisher,
	}
}

func (s *reviewService) CreateReview(ctx context.Context, review *models.Review) error {
	if err := validation.ValidateReviewRating(review.Rating); err != nil {
		return err
	}

	listing, err := s.listingRepo.FindByID(ctx, review.ListingID)
	if err != nil {
		return notFound(err, ErrListingNotFound)
	}

	if err := s.reviewRepo.Create(ctx, review); err != nil {
		return fmt.Errorf("create review: %w", err)
	}
	review.Listing = listing

	publish(s.publisher, events.ReviewCreated, events.ReviewCreatedPayload{
		ReviewID:  review.ID,
		ListingID: review.ListingID,
		User:      review.User,
		Rating:    review.Rating,
		CreatedAt: review.CreatedAt,
	})
	return nil
}

func (s *reviewService) GetReview(ctx context.Context, id uint) (*models.Review, error) {
	review, err := s.reviewRepo.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err, ErrReviewNotFound)
	}
	return review, nil
}

func (s *reviewService) ListReviews(ctx context.Context, listingID *uint) ([]models.Review, error) {
	if listingID != nil {
		if _, err := s.listingRepo.FindByID(ctx, *listingID); err != nil {
			return nil, notFound(err, ErrListingNotFound)
		}
	}
	return s.reviewRepo.FindAll(ctx, listingID)
}
