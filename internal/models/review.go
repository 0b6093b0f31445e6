package models

import "time"

type Review struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	ListingID uint   `gorm:"not null;index" json:"listing_id"`
	User      string `gorm:"type:varchar(100);not null" json:"user"`
	Rating    int    `gorm:"not null;check:chk_reviews_rating,rating >= 1 AND rating <= 5" json:"rating"`
	Comment   string `gorm:"type:text;not null" json:"comment"`
	// CreatedAt is set by gorm on insert and never written again.
	CreatedAt time.Time `gorm:"autoCreateTime;<-:create" json:"created_at"`

	Listing *Listing `gorm:"foreignKey:ListingID" json:"listing,omitempty"`
}
