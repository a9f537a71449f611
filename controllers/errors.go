package controllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"spothotel-backend/services"
	"spothotel-backend/utils"
)

// statusForServiceError maps a service error to its HTTP status class. The
// error kind is preserved end-to-end; only unknown errors collapse to 500.
func statusForServiceError(err error) int {
	switch {
	case errors.Is(err, services.ErrHotelNotFound),
		errors.Is(err, services.ErrRoomNotFound),
		errors.Is(err, services.ErrBookingNotFound),
		errors.Is(err, services.ErrUserNotFound):
		return http.StatusNotFound

	case errors.Is(err, services.ErrDatesConflict),
		errors.Is(err, services.ErrEmailTaken):
		return http.StatusConflict

	case errors.Is(err, services.ErrPaymentInvalid):
		return http.StatusPaymentRequired

	case errors.Is(err, services.ErrPaymentUnavailable):
		return http.StatusServiceUnavailable

	case errors.Is(err, services.ErrForbidden):
		return http.StatusForbidden

	case errors.Is(err, services.ErrWrongPassword):
		return http.StatusUnauthorized

	case errors.Is(err, services.ErrRoomNotInHotel),
		errors.Is(err, services.ErrEmptyDates),
		errors.Is(err, services.ErrInvalidDate),
		errors.Is(err, services.ErrPastDate),
		errors.Is(err, services.ErrDuplicateDates),
		errors.Is(err, services.ErrPriceMismatch),
		errors.Is(err, services.ErrInvalidStatus),
		errors.Is(err, services.ErrAlreadyCheckedIn),
		errors.Is(err, services.ErrBookingComplete),
		errors.Is(err, services.ErrPasswordTooShort),
		errors.Is(err, services.ErrInvalidRole),
		errors.Is(err, services.ErrOwnRoleChange),
		errors.Is(err, services.ErrDuplicateRoomNumber),
		errors.Is(err, services.ErrInvalidRoomType),
		errors.Is(err, services.ErrInvalidSearch):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func respondServiceError(c *gin.Context, err error) {
	code := statusForServiceError(err)
	if code == http.StatusInternalServerError {
		log.Printf("internal error on %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		utils.JSONError(c, code, "internal server error")
		return
	}
	utils.JSONError(c, code, err.Error())
}

func parseUintString(s string) (uint, error) {
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, err
	}
	return uint(v), nil
}

func parseIDParam(c *gin.Context, name string) (uint, bool) {
	id, err := parseUintString(c.Param(name))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid "+name)
		return 0, false
	}
	return id, true
}
