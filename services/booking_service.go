package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"math"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"spothotel-backend/models"
	"spothotel-backend/queue"
	"spothotel-backend/repository"
	"spothotel-backend/utils"
)

const (
	eventBookingCreated = "booking.created"
	eventBookingStatus  = "booking.status"
)

type CreateBookingInput struct {
	HotelID    uint
	RoomID     uint
	UserID     uint
	Dates      []string
	TotalPrice float64
	Phone      string
	PaymentID  string
}

type BookingService interface {
	// CreateBooking validates a reservation request and, if it passes,
	// atomically reserves the dates on the room and persists the booking.
	CreateBooking(ctx context.Context, in CreateBookingInput) (*models.Booking, error)
	// UpdateStatus applies an admin status change. Completing a booking
	// releases its dates from the room's ledger in the same transaction.
	UpdateStatus(ctx context.Context, bookingID uint, status models.BookingStatus) (*models.Booking, error)
	GetBooking(ctx context.Context, id uint) (*models.Booking, error)
	ListByUser(ctx context.Context, userID uint) ([]models.Booking, error)
	ListAll(ctx context.Context) ([]models.Booking, error)
}

// transactor runs a function inside a database transaction. *gorm.DB
// satisfies it.
type transactor interface {
	Transaction(fc func(tx *gorm.DB) error, opts ...*sql.TxOptions) error
}

type bookingService struct {
	tx       transactor
	hotels   repository.HotelRepository
	rooms    repository.RoomRepository
	bookings repository.BookingRepository
	payments PaymentGateway
	events   *queue.Publisher
}

// NewBookingService wires the reservation engine. events may be nil, in
// which case lifecycle events are not published.
func NewBookingService(
	db *gorm.DB,
	hotels repository.HotelRepository,
	rooms repository.RoomRepository,
	bookings repository.BookingRepository,
	payments PaymentGateway,
	events *queue.Publisher,
) BookingService {
	return &bookingService{
		tx:       db,
		hotels:   hotels,
		rooms:    rooms,
		bookings: bookings,
		payments: payments,
		events:   events,
	}
}

// MinorUnits converts a human-facing price to the payment provider's minor
// currency unit.
func MinorUnits(price float64) int64 {
	return int64(math.Round(price * 100))
}

func (s *bookingService) CreateBooking(ctx context.Context, in CreateBookingInput) (*models.Booking, error) {
	// Payment proof comes first: a reservation must never be committed
	// without verified funds capture, and the captured amount must match
	// the submitted price exactly. This is a network call, so it stays
	// outside the room transaction.
	payment, err := s.payments.RetrievePayment(ctx, in.PaymentID)
	if err != nil {
		return nil, err
	}
	if payment.Status != PaymentStatusSucceeded || payment.Amount != MinorUnits(in.TotalPrice) {
		return nil, ErrPaymentInvalid
	}

	var booking *models.Booking

	err = s.tx.Transaction(func(tx *gorm.DB) error {
		hotel, err := s.hotels.FindByID(ctx, tx, in.HotelID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrHotelNotFound
			}
			return fmt.Errorf("find hotel: %w", err)
		}

		// Row lock: check-then-reserve must be serialized per room, or
		// two concurrent requests could both pass the conflict check.
		room, err := s.rooms.FindByIDForUpdate(ctx, tx, in.RoomID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrRoomNotFound
			}
			return fmt.Errorf("lock room: %w", err)
		}

		if room.HotelID != hotel.ID {
			return ErrRoomNotInHotel
		}

		if len(in.Dates) == 0 {
			return ErrEmptyDates
		}

		days, err := utils.DayKeys(in.Dates)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidDate, err)
		}

		today := utils.Today().Format(utils.DayFormat)
		seen := make(map[string]struct{}, len(days))
		for _, day := range days {
			if day < today {
				return ErrPastDate
			}
			if _, dup := seen[day]; dup {
				return ErrDuplicateDates
			}
			seen[day] = struct{}{}
		}

		if MinorUnits(float64(len(days))*room.PricePerDay) != MinorUnits(in.TotalPrice) {
			return ErrPriceMismatch
		}

		conflicts, err := room.ConflictingDays(days)
		if err != nil {
			return fmt.Errorf("read availability: %w", err)
		}
		if len(conflicts) > 0 {
			return ErrDatesConflict
		}

		if err := room.Reserve(days); err != nil {
			return fmt.Errorf("reserve dates: %w", err)
		}
		if err := s.rooms.Save(ctx, tx, room); err != nil {
			return fmt.Errorf("save room: %w", err)
		}

		b := &models.Booking{
			ReferenceCode: uuid.NewString(),
			UserID:        in.UserID,
			HotelID:       hotel.ID,
			RoomID:        room.ID,
			TotalPrice:    in.TotalPrice,
			Phone:         in.Phone,
			PaymentID:     payment.ID,
			PaymentStatus: payment.Status,
			Status:        models.StatusProcessing,
			PaidAt:        time.Now().UTC(),
		}
		if err := b.SetBookedDates(days); err != nil {
			return fmt.Errorf("encode dates: %w", err)
		}
		if err := s.bookings.Create(ctx, tx, b); err != nil {
			return fmt.Errorf("create booking: %w", err)
		}

		booking = b
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publish(eventBookingCreated, booking)
	return booking, nil
}

func (s *bookingService) UpdateStatus(ctx context.Context, bookingID uint, status models.BookingStatus) (*models.Booking, error) {
	if status != models.StatusChecked && status != models.StatusComplete {
		return nil, ErrInvalidStatus
	}

	var booking *models.Booking

	err := s.tx.Transaction(func(tx *gorm.DB) error {
		b, err := s.bookings.FindByID(ctx, tx, bookingID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrBookingNotFound
			}
			return fmt.Errorf("find booking: %w", err)
		}

		// Complete is terminal.
		if b.Status == models.StatusComplete {
			return ErrBookingComplete
		}

		switch status {
		case models.StatusChecked:
			if b.Status == models.StatusChecked {
				return ErrAlreadyCheckedIn
			}

		case models.StatusComplete:
			// The stay is over: free the booking's dates for new
			// reservations. Ledger and status move in one transaction.
			room, err := s.rooms.FindByIDForUpdate(ctx, tx, b.RoomID)
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return ErrRoomNotFound
				}
				return fmt.Errorf("lock room: %w", err)
			}

			days, err := b.BookedDates()
			if err != nil {
				return fmt.Errorf("decode booking dates: %w", err)
			}
			if err := room.Release(days); err != nil {
				return fmt.Errorf("release dates: %w", err)
			}
			if err := s.rooms.Save(ctx, tx, room); err != nil {
				return fmt.Errorf("save room: %w", err)
			}
		}

		if err := s.bookings.UpdateStatus(ctx, tx, b.ID, status); err != nil {
			return fmt.Errorf("update status: %w", err)
		}

		b.Status = status
		booking = b
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publish(eventBookingStatus, booking)
	return booking, nil
}

func (s *bookingService) GetBooking(ctx context.Context, id uint) (*models.Booking, error) {
	booking, err := s.bookings.FindDetailed(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	return booking, nil
}

func (s *bookingService) ListByUser(ctx context.Context, userID uint) ([]models.Booking, error) {
	return s.bookings.FindByUser(ctx, userID)
}

func (s *bookingService) ListAll(ctx context.Context) ([]models.Booking, error) {
	return s.bookings.FindAll(ctx)
}

type bookingEvent struct {
	BookingID     uint    `json:"booking_id"`
	ReferenceCode string  `json:"reference_code"`
	UserID        uint    `json:"user_id"`
	HotelID       uint    `json:"hotel_id"`
	RoomID        uint    `json:"room_id"`
	Status        string  `json:"status"`
	TotalPrice    float64 `json:"total_price"`
}

// publish is best-effort: a broker outage must not fail a committed booking.
func (s *bookingService) publish(routingKey string, b *models.Booking) {
	if s.events == nil || b == nil {
		return
	}
	evt := bookingEvent{
		BookingID:     b.ID,
		ReferenceCode: b.ReferenceCode,
		UserID:        b.UserID,
		HotelID:       b.HotelID,
		RoomID:        b.RoomID,
		Status:        string(b.Status),
		TotalPrice:    b.TotalPrice,
	}
	if err := s.events.Publish(routingKey, evt); err != nil {
		log.Printf("warning: failed to publish %s for booking %d: %v", routingKey, b.ID, err)
	}
}
