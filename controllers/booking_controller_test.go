package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"spothotel-backend/middleware"
	"spothotel-backend/models"
	"spothotel-backend/services"
)

type bookingServiceMock struct {
	createBooking func(in services.CreateBookingInput) (*models.Booking, error)
	updateStatus  func(id uint, status models.BookingStatus) (*models.Booking, error)
	getBooking    func(id uint) (*models.Booking, error)
	listByUser    func(userID uint) ([]models.Booking, error)
	listAll       func() ([]models.Booking, error)
}

func (m *bookingServiceMock) CreateBooking(ctx context.Context, in services.CreateBookingInput) (*models.Booking, error) {
	return m.createBooking(in)
}

func (m *bookingServiceMock) UpdateStatus(ctx context.Context, id uint, status models.BookingStatus) (*models.Booking, error) {
	return m.updateStatus(id, status)
}

func (m *bookingServiceMock) GetBooking(ctx context.Context, id uint) (*models.Booking, error) {
	return m.getBooking(id)
}

func (m *bookingServiceMock) ListByUser(ctx context.Context, userID uint) ([]models.Booking, error) {
	return m.listByUser(userID)
}

func (m *bookingServiceMock) ListAll(ctx context.Context) ([]models.Booking, error) {
	return m.listAll()
}

type paymentGatewayMock struct {
	createPaymentIntent func(amount int64, currency string, metadata map[string]string) (*services.PaymentIntent, error)
}

func (m *paymentGatewayMock) RetrievePayment(ctx context.Context, id string) (*services.Payment, error) {
	return nil, services.ErrPaymentUnavailable
}

func (m *paymentGatewayMock) CreatePaymentIntent(ctx context.Context, amount int64, currency string, metadata map[string]string) (*services.PaymentIntent, error) {
	return m.createPaymentIntent(amount, currency, metadata)
}

// asUser stands in for RequireAuth in tests.
func asUser(id uint) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.ContextUserID, id)
		c.Next()
	}
}

func newBookingRouter(svc services.BookingService, gw services.PaymentGateway, userID uint) *gin.Engine {
	gin.SetMode(gin.TestMode)
	ctrl := NewBookingController(svc, gw)

	r := gin.New()
	r.Use(asUser(userID))
	r.POST("/hotel/:id/:room/book", ctrl.CreateBooking)
	r.PUT("/booking/:id", ctrl.UpdateBooking)
	r.GET("/me/booking/:id", ctrl.GetOwnBooking)
	r.POST("/stripeclientkey", ctrl.CreatePaymentIntent)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCreateBookingEndpoint(t *testing.T) {
	var got services.CreateBookingInput
	svc := &bookingServiceMock{
		createBooking: func(in services.CreateBookingInput) (*models.Booking, error) {
			got = in
			return &models.Booking{ID: 11, ReferenceCode: "ref-11"}, nil
		},
	}
	r := newBookingRouter(svc, nil, 3)

	w := doJSON(t, r, http.MethodPost, "/hotel/1/2/book", gin.H{
		"paymentInfo": gin.H{"id": "pi_abc", "status": "succeeded"},
		"dates":       []string{"2026-06-01", "2026-06-02"},
		"totalPrice":  200,
		"phone":       "01700000000",
	})

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, uint(1), got.HotelID)
	assert.Equal(t, uint(2), got.RoomID)
	assert.Equal(t, uint(3), got.UserID)
	assert.Equal(t, "pi_abc", got.PaymentID)
	assert.Equal(t, []string{"2026-06-01", "2026-06-02"}, got.Dates)

	var resp struct {
		Success bool `json:"success"`
		Data    struct {
			BookingID     uint   `json:"bookingId"`
			ReferenceCode string `json:"referenceCode"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, uint(11), resp.Data.BookingID)
	assert.Equal(t, "ref-11", resp.Data.ReferenceCode)
}

func TestCreateBookingEndpointNumericPhone(t *testing.T) {
	var got services.CreateBookingInput
	svc := &bookingServiceMock{
		createBooking: func(in services.CreateBookingInput) (*models.Booking, error) {
			got = in
			return &models.Booking{ID: 1}, nil
		},
	}
	r := newBookingRouter(svc, nil, 3)

	w := doJSON(t, r, http.MethodPost, "/hotel/1/2/book", gin.H{
		"paymentInfo": gin.H{"id": "pi_abc"},
		"dates":       []string{"2026-06-01"},
		"totalPrice":  100,
		"phone":       1700000000,
	})

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "1700000000", got.Phone)
}

func TestCreateBookingEndpointErrorMapping(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{services.ErrDatesConflict, http.StatusConflict},
		{services.ErrPaymentInvalid, http.StatusPaymentRequired},
		{services.ErrPaymentUnavailable, http.StatusServiceUnavailable},
		{services.ErrHotelNotFound, http.StatusNotFound},
		{services.ErrPastDate, http.StatusBadRequest},
		{services.ErrPriceMismatch, http.StatusBadRequest},
	}

	for _, tc := range cases {
		svc := &bookingServiceMock{
			createBooking: func(in services.CreateBookingInput) (*models.Booking, error) {
				return nil, tc.err
			},
		}
		r := newBookingRouter(svc, nil, 3)

		w := doJSON(t, r, http.MethodPost, "/hotel/1/2/book", gin.H{
			"paymentInfo": gin.H{"id": "pi_abc"},
			"dates":       []string{"2026-06-01"},
			"totalPrice":  100,
		})
		assert.Equal(t, tc.want, w.Code, "error %v", tc.err)
	}
}

func TestCreateBookingEndpointBadParams(t *testing.T) {
	svc := &bookingServiceMock{}
	r := newBookingRouter(svc, nil, 3)

	w := doJSON(t, r, http.MethodPost, "/hotel/abc/2/book", gin.H{})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, http.MethodPost, "/hotel/1/xyz/book", gin.H{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateBookingEndpoint(t *testing.T) {
	svc := &bookingServiceMock{
		updateStatus: func(id uint, status models.BookingStatus) (*models.Booking, error) {
			return &models.Booking{ID: id, Status: status}, nil
		},
	}
	r := newBookingRouter(svc, nil, 3)

	w := doJSON(t, r, http.MethodPut, "/booking/7", gin.H{"status": "Checked"})
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodPut, "/booking/7", gin.H{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateBookingEndpointInvalidStatus(t *testing.T) {
	svc := &bookingServiceMock{
		updateStatus: func(id uint, status models.BookingStatus) (*models.Booking, error) {
			return nil, services.ErrInvalidStatus
		},
	}
	r := newBookingRouter(svc, nil, 3)

	w := doJSON(t, r, http.MethodPut, "/booking/7", gin.H{"status": "Cancelled"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetOwnBookingForbidsOtherUsers(t *testing.T) {
	svc := &bookingServiceMock{
		getBooking: func(id uint) (*models.Booking, error) {
			return &models.Booking{ID: id, UserID: 99}, nil
		},
	}
	r := newBookingRouter(svc, nil, 3)

	w := doJSON(t, r, http.MethodGet, "/me/booking/5", nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestGetOwnBookingReturnsOwn(t *testing.T) {
	svc := &bookingServiceMock{
		getBooking: func(id uint) (*models.Booking, error) {
			return &models.Booking{ID: id, UserID: 3}, nil
		},
	}
	r := newBookingRouter(svc, nil, 3)

	w := doJSON(t, r, http.MethodGet, "/me/booking/5", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestCreatePaymentIntentEndpoint(t *testing.T) {
	var gotAmount int64
	var gotCurrency string
	gw := &paymentGatewayMock{
		createPaymentIntent: func(amount int64, currency string, metadata map[string]string) (*services.PaymentIntent, error) {
			gotAmount = amount
			gotCurrency = currency
			return &services.PaymentIntent{ID: "pi_new", ClientSecret: "secret_123"}, nil
		},
	}
	r := newBookingRouter(&bookingServiceMock{}, gw, 3)

	w := doJSON(t, r, http.MethodPost, "/stripeclientkey", gin.H{"amount": 150.5})
	require.Equal(t, http.StatusOK, w.Code)

	assert.Equal(t, int64(15050), gotAmount)
	assert.Equal(t, "bdt", gotCurrency)
	assert.Contains(t, w.Body.String(), "secret_123")
}

func TestCreatePaymentIntentEndpointRejectsBadAmount(t *testing.T) {
	r := newBookingRouter(&bookingServiceMock{}, &paymentGatewayMock{}, 3)

	w := doJSON(t, r, http.MethodPost, "/stripeclientkey", gin.H{"amount": 0})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, http.MethodPost, "/stripeclientkey", gin.H{"amount": -5})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
