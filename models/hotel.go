package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Picture is one stored image: ID is the path under ./uploads, URL is the
// public path it is served from.
type Picture struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

type Hotel struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Name        string  `gorm:"size:255;not null" json:"name"`
	Location    string  `gorm:"size:255;not null;index" json:"location"`
	Distance    float64 `json:"distance"`
	Description string  `gorm:"type:text" json:"description"`

	// JSON array of strings
	Specification datatypes.JSON `json:"specification,omitempty"`
	// JSON array of Picture
	Pictures datatypes.JSON `json:"pictures,omitempty"`

	Rooms []Room `gorm:"foreignKey:HotelID" json:"rooms,omitempty"`
}
