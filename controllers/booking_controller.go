package controllers

import (
	"encoding/json"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"spothotel-backend/middleware"
	"spothotel-backend/models"
	"spothotel-backend/services"
	"spothotel-backend/utils"
)

type BookingController struct {
	Bookings services.BookingService
	Payments services.PaymentGateway
}

func NewBookingController(bookings services.BookingService, payments services.PaymentGateway) *BookingController {
	return &BookingController{Bookings: bookings, Payments: payments}
}

type createBookingPayload struct {
	PaymentInfo models.PaymentInfo `json:"paymentInfo"`
	Dates       []string           `json:"dates"`
	TotalPrice  float64            `json:"totalPrice"`
	// phone arrives as either a JSON number or a string
	Phone json.Number `json:"phone"`
}

type updateStatusPayload struct {
	Status string `json:"status" binding:"required"`
}

type paymentIntentPayload struct {
	Amount float64 `json:"amount" binding:"required"`
}

// CreateBooking handles POST /hotel/:id/:room/book.
func (ctrl *BookingController) CreateBooking(c *gin.Context) {
	hotelID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	roomID, err := parseUintString(c.Param("room"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid room")
		return
	}

	var payload createBookingPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid booking payload")
		return
	}

	booking, err := ctrl.Bookings.CreateBooking(c.Request.Context(), services.CreateBookingInput{
		HotelID:    hotelID,
		RoomID:     roomID,
		UserID:     middleware.UserID(c),
		Dates:      payload.Dates,
		TotalPrice: payload.TotalPrice,
		Phone:      payload.Phone.String(),
		PaymentID:  payload.PaymentInfo.ID,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.JSONSuccess(c, http.StatusCreated, gin.H{
		"bookingId":     booking.ID,
		"referenceCode": booking.ReferenceCode,
	})
}

// UpdateBooking handles PUT /booking/:id (admin): status changes only.
func (ctrl *BookingController) UpdateBooking(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var payload updateStatusPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "status is required")
		return
	}

	booking, err := ctrl.Bookings.UpdateStatus(c.Request.Context(), id, models.BookingStatus(payload.Status))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, booking)
}

// GetOwnBooking handles GET /me/booking/:id. Accessing another user's
// booking is forbidden.
func (ctrl *BookingController) GetOwnBooking(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	booking, err := ctrl.Bookings.GetBooking(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if booking.UserID != middleware.UserID(c) {
		respondServiceError(c, services.ErrForbidden)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, booking)
}

func (ctrl *BookingController) GetOwnBookings(c *gin.Context) {
	bookings, err := ctrl.Bookings.ListByUser(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, bookings)
}

// GetBooking handles GET /booking/:id (admin).
func (ctrl *BookingController) GetBooking(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	booking, err := ctrl.Bookings.GetBooking(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, booking)
}

func (ctrl *BookingController) GetAllBookings(c *gin.Context) {
	bookings, err := ctrl.Bookings.ListAll(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, bookings)
}

// GetStripeAPIKey returns the publishable key the frontend needs to collect
// card details.
func (ctrl *BookingController) GetStripeAPIKey(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message":      "success",
		"stripeApiKey": os.Getenv("STRIPE_API_KEY"),
	})
}

// CreatePaymentIntent handles POST /stripeclientkey: creates a payment
// intent for the given amount and returns its client secret.
func (ctrl *BookingController) CreatePaymentIntent(c *gin.Context) {
	var payload paymentIntentPayload
	if err := c.ShouldBindJSON(&payload); err != nil || payload.Amount <= 0 {
		utils.JSONError(c, http.StatusBadRequest, "amount is required")
		return
	}

	intent, err := ctrl.Payments.CreatePaymentIntent(
		c.Request.Context(),
		services.MinorUnits(payload.Amount),
		"bdt",
		map[string]string{"company": "Spothotel"},
	)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":       true,
		"client_secret": intent.ClientSecret,
	})
}
