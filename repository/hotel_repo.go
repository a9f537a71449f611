package repository

import (
	"context"

	"gorm.io/gorm"

	"spothotel-backend/models"
)

type HotelRepository interface {
	FindByID(ctx context.Context, tx *gorm.DB, id uint) (*models.Hotel, error)
}

type hotelRepository struct {
	db *gorm.DB
}

func NewHotelRepository(db *gorm.DB) HotelRepository {
	return &hotelRepository{db: db}
}

func (r *hotelRepository) conn(tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}
	return r.db
}

func (r *hotelRepository) FindByID(ctx context.Context, tx *gorm.DB, id uint) (*models.Hotel, error) {
	var hotel models.Hotel
	if err := r.conn(tx).WithContext(ctx).First(&hotel, id).Error; err != nil {
		return nil, err
	}
	return &hotel, nil
}
