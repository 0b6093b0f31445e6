package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

type Listing struct {
	ID            uint            `gorm:"primaryKey" json:"id"`
	Title         string          `gorm:"type:varchar(200);not null" json:"title"`
	Description   string          `gorm:"type:text;not null" json:"description"`
	PricePerNight decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"price_per_night"`
	Location      string          `gorm:"type:varchar(100);not null;index" json:"location"`
	AvailableFrom datatypes.Date  `gorm:"not null" json:"available_from"`
	AvailableTo   datatypes.Date  `gorm:"not null" json:"available_to"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`

	Bookings []Booking `gorm:"foreignKey:ListingID;constraint:OnDelete:CASCADE" json:"bookings,omitempty"`
	Reviews  []Review  `gorm:"foreignKey:ListingID;constraint:OnDelete:CASCADE" json:"reviews,omitempty"`
}

func (l *Listing) From() time.Time { return time.Time(l.AvailableFrom) }

func (l *Listing) To() time.Time { return time.Time(l.AvailableTo) }

// PriceFor is the total charge for a stay of the given number of nights.
func (l *Listing) PriceFor(nights int) decimal.Decimal {
	return l.PricePerNight.Mul(decimal.NewFromInt(int64(nights)))
}
