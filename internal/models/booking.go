package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

type Booking struct {
	ID         uint            `gorm:"primaryKey" json:"id"`
	ListingID  uint            `gorm:"not null;index" json:"listing_id"`
	User       string          `gorm:"type:varchar(100);not null" json:"user"`
	StartDate  datatypes.Date  `gorm:"not null" json:"start_date"`
	EndDate    datatypes.Date  `gorm:"not null" json:"end_date"`
	TotalPrice decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"total_price"`
	CreatedAt  time.Time       `json:"created_at"`

	Listing *Listing `gorm:"foreignKey:ListingID" json:"listing,omitempty"`
}

func (b *Booking) Start() time.Time { return time.Time(b.StartDate) }

func (b *Booking) End() time.Time { return time.Time(b.EndDate) }

// Nights is the number of whole days between start and end.
func (b *Booking) Nights() int {
	return DaysBetween(b.Start(), b.End())
}

// DaysBetween counts calendar days from a to b, ignoring time of day and zone offsets.
func DaysBetween(a, b time.Time) int {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	da := time.Date(ay, am, ad, 0, 0, 0, 0, time.UTC)
	db := time.Date(by, bm, bd, 0, 0, 0, 0, time.UTC)
	return int(db.Sub(da).Hours() / 24)
}
