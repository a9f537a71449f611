package models

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type BookingStatus string

const (
	// StatusProcessing is the initial status of every booking.
	StatusProcessing BookingStatus = "Processing"
	// StatusChecked means the guest has checked in; reserved dates stay held.
	StatusChecked BookingStatus = "Checked"
	// StatusComplete is terminal; reaching it releases the booking's dates.
	StatusComplete BookingStatus = "Complete"
)

func (s BookingStatus) Valid() bool {
	return s == StatusProcessing || s == StatusChecked || s == StatusComplete
}

// PaymentInfo is the proof captured from the payment provider at creation
// time. Only id and status are ever read.
type PaymentInfo struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

type Booking struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	ReferenceCode string `gorm:"size:64;uniqueIndex" json:"referenceCode"`

	UserID  uint `gorm:"not null;index" json:"userId"`
	HotelID uint `gorm:"not null;index" json:"hotelId"`
	RoomID  uint `gorm:"not null;index" json:"roomId"`

	// JSON array of day keys ("2006-01-02"), non-empty, unique, immutable.
	Dates datatypes.JSON `gorm:"not null" json:"dates"`

	TotalPrice float64 `gorm:"not null" json:"totalPrice"`
	Phone      string  `gorm:"size:32" json:"phone"`

	PaymentID     string `gorm:"column:payment_id;size:128" json:"-"`
	PaymentStatus string `gorm:"column:payment_status;size:64" json:"-"`

	Status BookingStatus `gorm:"size:16;not null;default:Processing" json:"status"`
	PaidAt time.Time     `json:"paidAt"`

	User  *User  `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Hotel *Hotel `gorm:"foreignKey:HotelID" json:"hotel,omitempty"`
	Room  *Room  `gorm:"foreignKey:RoomID" json:"room,omitempty"`
}

func (b *Booking) PaymentInfo() PaymentInfo {
	return PaymentInfo{ID: b.PaymentID, Status: b.PaymentStatus}
}

// BookedDates decodes the booking's reserved day keys.
func (b *Booking) BookedDates() ([]string, error) {
	if len(b.Dates) == 0 {
		return nil, nil
	}
	var days []string
	if err := json.Unmarshal(b.Dates, &days); err != nil {
		return nil, err
	}
	return days, nil
}

// SetBookedDates stores the given day keys on the booking.
func (b *Booking) SetBookedDates(days []string) error {
	raw, err := json.Marshal(days)
	if err != nil {
		return err
	}
	b.Dates = datatypes.JSON(raw)
	return nil
}
