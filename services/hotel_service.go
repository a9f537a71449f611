package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"spothotel-backend/models"
	"spothotel-backend/utils"
)

// HotelService wraps *gorm.DB for hotel inventory management and search.
type HotelService struct {
	DB *gorm.DB
}

func NewHotelService(db *gorm.DB) *HotelService {
	return &HotelService{DB: db}
}

type HotelInput struct {
	Name          string   `json:"name" binding:"required"`
	Location      string   `json:"location" binding:"required"`
	Distance      float64  `json:"distance"`
	Description   string   `json:"description" binding:"required"`
	Specification []string `json:"specification"`
}

// SearchInput carries the optional hotel search filters. Zero values mean
// "not specified"; the controller validates explicit bad values.
type SearchInput struct {
	Location string
	MinRooms int
	Persons  int
	From     string
	To       string
}

func encodeSpecification(spec []string) (datatypes.JSON, error) {
	if spec == nil {
		spec = []string{}
	}
	raw, err := json.Marshal(spec)
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(raw), nil
}

func (s *HotelService) Create(ctx context.Context, in HotelInput) (*models.Hotel, error) {
	spec, err := encodeSpecification(in.Specification)
	if err != nil {
		return nil, err
	}

	hotel := &models.Hotel{
		Name:          in.Name,
		Location:      in.Location,
		Distance:      in.Distance,
		Description:   in.Description,
		Specification: spec,
	}
	if err := s.DB.WithContext(ctx).Create(hotel).Error; err != nil {
		return nil, err
	}
	return hotel, nil
}

func (s *HotelService) Update(ctx context.Context, id uint, in HotelInput) (*models.Hotel, error) {
	var hotel models.Hotel
	if err := s.DB.WithContext(ctx).First(&hotel, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrHotelNotFound
		}
		return nil, err
	}

	spec, err := encodeSpecification(in.Specification)
	if err != nil {
		return nil, err
	}

	hotel.Name = in.Name
	hotel.Location = in.Location
	hotel.Distance = in.Distance
	hotel.Description = in.Description
	hotel.Specification = spec

	if err := s.DB.WithContext(ctx).Save(&hotel).Error; err != nil {
		return nil, err
	}
	return &hotel, nil
}

// Delete removes the hotel along with its rooms and their bookings in one
// transaction, and returns the deleted record so the caller can clean up
// stored pictures.
func (s *HotelService) Delete(ctx context.Context, id uint) (*models.Hotel, error) {
	var hotel models.Hotel
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&hotel, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrHotelNotFound
			}
			return err
		}
		if err := tx.Where("hotel_id = ?", hotel.ID).Delete(&models.Booking{}).Error; err != nil {
			return fmt.Errorf("delete hotel bookings: %w", err)
		}
		if err := tx.Where("hotel_id = ?", hotel.ID).Delete(&models.Room{}).Error; err != nil {
			return fmt.Errorf("delete hotel rooms: %w", err)
		}
		return tx.Delete(&hotel).Error
	})
	if err != nil {
		return nil, err
	}
	return &hotel, nil
}

func (s *HotelService) GetByID(ctx context.Context, id uint) (*models.Hotel, error) {
	var hotel models.Hotel
	if err := s.DB.WithContext(ctx).Preload("Rooms").First(&hotel, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrHotelNotFound
		}
		return nil, err
	}
	return &hotel, nil
}

// ReplacePictures swaps the hotel's picture set, returning the previous one
// so the caller can delete the files.
func (s *HotelService) ReplacePictures(ctx context.Context, id uint, pics []models.Picture) ([]models.Picture, *models.Hotel, error) {
	var hotel models.Hotel
	if err := s.DB.WithContext(ctx).First(&hotel, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrHotelNotFound
		}
		return nil, nil, err
	}

	previous := DecodePictures(hotel.Pictures)

	raw, err := EncodePictures(pics)
	if err != nil {
		return nil, nil, err
	}
	hotel.Pictures = raw

	if err := s.DB.WithContext(ctx).Save(&hotel).Error; err != nil {
		return nil, nil, err
	}
	return previous, &hotel, nil
}

// Search filters hotels by location keyword, minimum room count, guest
// capacity, and a free-date window (a hotel matches if at least one of its
// rooms has every day in the window unreserved).
func (s *HotelService) Search(ctx context.Context, in SearchInput) ([]models.Hotel, error) {
	q := s.DB.WithContext(ctx).Preload("Rooms")
	if kw := strings.TrimSpace(in.Location); kw != "" {
		q = q.Where("LOWER(location) LIKE ?", "%"+strings.ToLower(kw)+"%")
	}

	var hotels []models.Hotel
	if err := q.Find(&hotels).Error; err != nil {
		return nil, err
	}

	var window []string
	if in.From != "" && in.To != "" {
		var err error
		window, err = dayWindow(in.From, in.To)
		if err != nil {
			return nil, err
		}
	}

	matched := make([]models.Hotel, 0, len(hotels))
	for i := range hotels {
		h := &hotels[i]
		if len(h.Rooms) < in.MinRooms {
			continue
		}
		if in.Persons > 0 && !hotelHasCapacity(h, in.Persons) {
			continue
		}
		if len(window) > 0 && !hotelHasFreeRoom(h, window) {
			continue
		}
		matched = append(matched, *h)
	}
	return matched, nil
}

// dayWindow expands an inclusive from..to range into day keys.
func dayWindow(from, to string) ([]string, error) {
	start, err := utils.ParseBookingDate(from)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDate, err)
	}
	end, err := utils.ParseBookingDate(to)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDate, err)
	}
	if start.After(end) {
		return nil, ErrInvalidSearch
	}

	var days []string
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		days = append(days, utils.DayKey(d))
	}
	return days, nil
}

// hotelHasCapacity reports whether the hotel can host the given party size:
// two or more guests need a Double room, a single guest any room.
func hotelHasCapacity(h *models.Hotel, persons int) bool {
	for _, room := range h.Rooms {
		if persons > 1 {
			if room.Type == models.RoomTypeDouble {
				return true
			}
			continue
		}
		return true
	}
	return false
}

func hotelHasFreeRoom(h *models.Hotel, window []string) bool {
	for i := range h.Rooms {
		conflicts, err := h.Rooms[i].ConflictingDays(window)
		if err != nil {
			continue
		}
		if len(conflicts) == 0 {
			return true
		}
	}
	return false
}
