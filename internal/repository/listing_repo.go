package repository

import (
	"context"

	"github.com/Eursukkul/travel-listings/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ListingFilter struct {
	// Location matches listings whose location contains it, case-insensitively.
	Location string
}

type ListingRepository interface {
	Create(ctx context.Context, listing *models.Listing) error
	FindByID(ctx context.Context, id uint) (*models.Listing, error)
	FindByIDWithRelations(ctx context.Context, id uint) (*models.Listing, error)
	FindByIDForUpdate(ctx context.Context, tx *gorm.DB, id uint) (*models.Listing, error)
	FindAll(ctx context.Context, filter ListingFilter) ([]models.Listing, error)
	Update(ctx context.Context, listing *models.Listing) error
	Delete(ctx context.Context, id uint) error
	DeleteAll(ctx context.Context) (int64, error)
	Count(ctx context.Context) (int64, error)
	Transaction(ctx context.Context, fn func(tx *gorm.DB) error) error
}

type listingRepository struct {
	db *gorm.DB
}

func NewListingRepository(db *gorm.DB) ListingRepository {
	return &listingRepository{db: db}
}

func (r *listingRepository) Transaction(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return r.db.WithContext(ctx).Transaction(fn)
}

func (r *listingRepository) Create(ctx context.Context, listing *models.Listing) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(listing).Error
}

func (r *listingRepository) FindByID(ctx context.Context, id uint) (*models.Listing, error) {
	var listing models.Listing
	if err := r.db.WithContext(ctx).First(&listing, id).Error; err != nil {
		return nil, err
	}
	return &listing, nil
}

// FindByIDWithRelations loads the listing together with its bookings and reviews.
func (r *listingRepository) FindByIDWithRelations(ctx context.Context, id uint) (*models.Listing, error) {
	var listing models.Listing
	err := r.db.WithContext(ctx).
		Preload("Bookings", func(db *gorm.DB) *gorm.DB { return db.Order("start_date ASC, id ASC") }).
		Preload("Reviews", func(db *gorm.DB) *gorm.DB { return db.Order("created_at DESC, id DESC") }).
		First(&listing, id).Error
	if err != nil {
		return nil, err
	}
	return &listing, nil
}

// FindByIDForUpdate acquires a row-level lock on the listing within the given transaction.
func (r *listingRepository) FindByIDForUpdate(ctx context.Context, tx *gorm.DB, id uint) (*models.Listing, error) {
	var listing models.Listing
	if err := tx.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&listing, id).Error; err != nil {
		return nil, err
	}
	return &listing, nil
}

func (r *listingRepository) FindAll(ctx context.Context, filter ListingFilter) ([]models.Listing, error) {
	var listings []models.Listing
	q := r.db.WithContext(ctx)
	if filter.Location != "" {
		q = q.Where("location ILIKE ?", "%"+filter.Location+"%")
	}
	if err := q.Order("id ASC").Find(&listings).Error; err != nil {
		return nil, err
	}
	return listings, nil
}

func (r *listingRepository) Update(ctx context.Context, listing *models.Listing) error {
	result := r.db.WithContext(ctx).
		Model(&models.Listing{ID: listing.ID}).
		Select("title", "description", "price_per_night", "location", "available_from", "available_to", "updated_at").
		Updates(listing)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Delete removes the listing and, with it, every booking and review that references it.
func (r *listingRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Select(clause.Associations).Delete(&models.Listing{ID: id})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

func (r *listingRepository) DeleteAll(ctx context.Context) (int64, error) {
	result := r.db.WithContext(ctx).
		Session(&gorm.Session{AllowGlobalUpdate: true}).
		Delete(&models.Listing{})
	return result.RowsAffected, result.Error
}

func (r *listingRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Listing{}).Count(&count).Error
	return count, err
}
