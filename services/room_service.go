package services

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"spothotel-backend/models"
)

// RoomService wraps *gorm.DB for room inventory management.
type RoomService struct {
	DB *gorm.DB
}

func NewRoomService(db *gorm.DB) *RoomService {
	return &RoomService{DB: db}
}

type RoomInput struct {
	Number        int      `json:"number" binding:"required"`
	Name          string   `json:"name" binding:"required"`
	Space         int      `json:"space"`
	Type          string   `json:"type" binding:"required"`
	PricePerDay   float64  `json:"pricePerDay" binding:"required"`
	Specification []string `json:"specification"`
}

func (s *RoomService) Create(ctx context.Context, hotelID uint, in RoomInput) (*models.Room, error) {
	if !models.ValidRoomType(in.Type) {
		return nil, ErrInvalidRoomType
	}

	var hotel models.Hotel
	if err := s.DB.WithContext(ctx).First(&hotel, hotelID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrHotelNotFound
		}
		return nil, err
	}

	var count int64
	if err := s.DB.WithContext(ctx).Model(&models.Room{}).
		Where("hotel_id = ? AND number = ?", hotel.ID, in.Number).
		Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrDuplicateRoomNumber
	}

	spec, err := encodeSpecification(in.Specification)
	if err != nil {
		return nil, err
	}

	room := &models.Room{
		HotelID:       hotel.ID,
		Number:        in.Number,
		Name:          in.Name,
		Space:         in.Space,
		Type:          in.Type,
		PricePerDay:   in.PricePerDay,
		Specification: spec,
	}
	if err := s.DB.WithContext(ctx).Create(room).Error; err != nil {
		return nil, err
	}
	return room, nil
}

func (s *RoomService) Update(ctx context.Context, id uint, in RoomInput) (*models.Room, error) {
	if !models.ValidRoomType(in.Type) {
		return nil, ErrInvalidRoomType
	}

	var room models.Room
	if err := s.DB.WithContext(ctx).First(&room, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}

	spec, err := encodeSpecification(in.Specification)
	if err != nil {
		return nil, err
	}

	room.Name = in.Name
	room.Space = in.Space
	room.Type = in.Type
	room.PricePerDay = in.PricePerDay
	room.Specification = spec

	if err := s.DB.WithContext(ctx).Save(&room).Error; err != nil {
		return nil, err
	}
	return &room, nil
}

// Delete removes the room and its bookings in one transaction. No ledger
// release is needed: the room record, and with it the ledger, disappears.
func (s *RoomService) Delete(ctx context.Context, id uint) (*models.Room, error) {
	var room models.Room
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&room, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrRoomNotFound
			}
			return err
		}
		if err := tx.Where("room_id = ?", room.ID).Delete(&models.Booking{}).Error; err != nil {
			return fmt.Errorf("delete room bookings: %w", err)
		}
		return tx.Delete(&room).Error
	})
	if err != nil {
		return nil, err
	}
	return &room, nil
}

func (s *RoomService) GetByID(ctx context.Context, id uint) (*models.Room, error) {
	var room models.Room
	if err := s.DB.WithContext(ctx).Preload("Hotel").First(&room, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}
	return &room, nil
}

func (s *RoomService) ListByHotel(ctx context.Context, hotelID uint) ([]models.Room, error) {
	var hotel models.Hotel
	if err := s.DB.WithContext(ctx).First(&hotel, hotelID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrHotelNotFound
		}
		return nil, err
	}

	var rooms []models.Room
	if err := s.DB.WithContext(ctx).Where("hotel_id = ?", hotel.ID).Find(&rooms).Error; err != nil {
		return nil, err
	}
	return rooms, nil
}

// ReplacePictures swaps the room's picture set, returning the previous one
// so the caller can delete the files.
func (s *RoomService) ReplacePictures(ctx context.Context, id uint, pics []models.Picture) ([]models.Picture, *models.Room, error) {
	var room models.Room
	if err := s.DB.WithContext(ctx).First(&room, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrRoomNotFound
		}
		return nil, nil, err
	}

	previous := DecodePictures(room.Pictures)

	raw, err := EncodePictures(pics)
	if err != nil {
		return nil, nil, err
	}
	room.Pictures = raw

	if err := s.DB.WithContext(ctx).Save(&room).Error; err != nil {
		return nil, nil, err
	}
	return previous, &room, nil
}
