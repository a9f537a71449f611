package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	RoomTypeSingle = "Single"
	RoomTypeDouble = "Double"
)

type Room struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	HotelID uint `gorm:"not null;index" json:"hotelId"`

	Number      int     `gorm:"not null" json:"number"`
	Name        string  `gorm:"size:255;not null" json:"name"`
	Space       int     `json:"space"`
	Type        string  `gorm:"size:16;not null" json:"type"`
	PricePerDay float64 `gorm:"not null" json:"pricePerDay"`

	// JSON array of strings
	Specification datatypes.JSON `json:"specification,omitempty"`
	// JSON array of Picture
	Pictures datatypes.JSON `json:"pictures,omitempty"`

	// NotAvailable is the room's availability ledger: a JSON array of
	// day keys ("2006-01-02") currently reserved by active bookings.
	// See availability.go for the operations over it.
	NotAvailable datatypes.JSON `json:"notAvailable,omitempty"`

	Hotel *Hotel `gorm:"foreignKey:HotelID" json:"hotel,omitempty"`
}

func ValidRoomType(t string) bool {
	return t == RoomTypeSingle || t == RoomTypeDouble
}
