package services

import "errors"

var (
	ErrHotelNotFound   = errors.New("hotel not found")
	ErrRoomNotFound    = errors.New("room not found")
	ErrBookingNotFound = errors.New("booking not found")
	ErrUserNotFound    = errors.New("user not found")

	ErrRoomNotInHotel = errors.New("this room is not available in this hotel")

	ErrEmptyDates     = errors.New("please insert booking dates")
	ErrInvalidDate    = errors.New("invalid booking date")
	ErrPastDate       = errors.New("given date is before the current date")
	ErrDuplicateDates = errors.New("can't book the same date more than once")
	ErrPriceMismatch  = errors.New("total price does not match the room price")

	ErrDatesConflict = errors.New("room already booked")

	ErrPaymentInvalid     = errors.New("invalid payment info")
	ErrPaymentUnavailable = errors.New("payment provider unavailable")

	ErrInvalidStatus    = errors.New("can't change booking status")
	ErrAlreadyCheckedIn = errors.New("user already checked in")
	ErrBookingComplete  = errors.New("booking is already complete")

	ErrForbidden = errors.New("access denied")

	ErrEmailTaken          = errors.New("email already registered")
	ErrWrongPassword       = errors.New("password incorrect")
	ErrPasswordTooShort    = errors.New("password should be at least 8 characters")
	ErrInvalidRole         = errors.New("only user and admin role available")
	ErrOwnRoleChange       = errors.New("you can't change your own role")
	ErrDuplicateRoomNumber = errors.New("duplicate room number")
	ErrInvalidRoomType     = errors.New("room type must be Single or Double")
	ErrInvalidSearch       = errors.New("please check start and end date")
)
