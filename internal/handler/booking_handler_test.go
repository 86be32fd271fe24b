package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/h2o-salon/salon-backend/internal/dto"
	"github.com/h2o-salon/salon-backend/internal/models"
	"github.com/h2o-salon/salon-backend/internal/razorpay"
	"github.com/h2o-salon/salon-backend/internal/service"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- Mock BookingService ---

type mockBookingService struct {
	createBookingFn  func(ctx context.Context, b *models.Booking) (*models.Booking, error)
	createOrderFn    func(ctx context.Context, bookingID uint, amount float64) (*razorpay.Order, error)
	confirmPaymentFn func(ctx context.Context, orderID, paymentID, signature string) (*models.Booking, error)
	listBookingsFn   func(ctx context.Context) ([]models.Booking, error)
	totalEarningsFn  func(ctx context.Context) (float64, error)
}

func (m *mockBookingService) CreateBooking(ctx context.Context, b *models.Booking) (*models.Booking, error) {
	return m.createBookingFn(ctx, b)
}
func (m *mockBookingService) CreateOrder(ctx context.Context, bookingID uint, amount float64) (*razorpay.Order, error) {
	return m.createOrderFn(ctx, bookingID, amount)
}
func (m *mockBookingService) ConfirmPayment(ctx context.Context, orderID, paymentID, signature string) (*models.Booking, error) {
	return m.confirmPaymentFn(ctx, orderID, paymentID, signature)
}
func (m *mockBookingService) ListBookings(ctx context.Context) ([]models.Booking, error) {
	return m.listBookingsFn(ctx)
}
func (m *mockBookingService) TotalEarnings(ctx context.Context) (float64, error) {
	return m.totalEarningsFn(ctx)
}

func newContext(t *testing.T, method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func newHandler(svc service.BookingService) *BookingHandler {
	return NewBookingHandler(svc, zerolog.Nop())
}

const validBookingBody = `{
	"fullName": "Ravi Kumar",
	"email": "ravi@example.com",
	"phone": "9876543210",
	"date": "2024-05-01",
	"service": "Hair",
	"subService": "Haircut",
	"barber": "A",
	"time": "10:00",
	"amount": 200
}`

// --- /api/book ---

func TestCreateBooking_Handler_Success(t *testing.T) {
	svc := &mockBookingService{
		createBookingFn: func(ctx context.Context, b *models.Booking) (*models.Booking, error) {
			b.ID = 7
			return b, nil
		},
	}

	c, rec := newContext(t, http.MethodPost, "/api/book", validBookingBody)
	err := newHandler(svc).CreateBooking(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp dto.BookResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, uint(7), resp.BookingID)
	assert.Equal(t, float64(200), resp.Amount)
}

// A taken slot is HTTP 200 with success=false, not an error status.
func TestCreateBooking_Handler_SlotConflict(t *testing.T) {
	svc := &mockBookingService{
		createBookingFn: func(ctx context.Context, b *models.Booking) (*models.Booking, error) {
			return nil, service.ErrSlotTaken
		},
	}

	c, rec := newContext(t, http.MethodPost, "/api/book", validBookingBody)
	err := newHandler(svc).CreateBooking(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp dto.BookResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Equal(t, "This time slot is already booked", resp.Message)
}

func TestCreateBooking_Handler_MissingFields(t *testing.T) {
	c, _ := newContext(t, http.MethodPost, "/api/book", `{"fullName":"Ravi Kumar"}`)
	err := newHandler(&mockBookingService{}).CreateBooking(c)

	he, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, he.Code)
}

func TestCreateBooking_Handler_StoreError(t *testing.T) {
	svc := &mockBookingService{
		createBookingFn: func(ctx context.Context, b *models.Booking) (*models.Booking, error) {
			return nil, errors.New("connection refused")
		},
	}

	c, _ := newContext(t, http.MethodPost, "/api/book", validBookingBody)
	err := newHandler(svc).CreateBooking(c)

	he, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusInternalServerError, he.Code)
}

// --- /api/create-order ---

func TestCreateOrder_Handler_Success(t *testing.T) {
	svc := &mockBookingService{
		createOrderFn: func(ctx context.Context, bookingID uint, amount float64) (*razorpay.Order, error) {
			assert.Equal(t, uint(7), bookingID)
			assert.Equal(t, float64(200), amount)
			return &razorpay.Order{ID: "order_abc", Amount: 20000, Currency: "INR", Receipt: "7"}, nil
		},
	}

	c, rec := newContext(t, http.MethodPost, "/api/create-order", `{"amount":200,"bookingId":7}`)
	err := newHandler(svc).CreateOrder(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var order razorpay.Order
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &order))
	assert.Equal(t, "order_abc", order.ID)
	assert.Equal(t, int64(20000), order.Amount)
}

func TestCreateOrder_Handler_GatewayError(t *testing.T) {
	svc := &mockBookingService{
		createOrderFn: func(ctx context.Context, bookingID uint, amount float64) (*razorpay.Order, error) {
			return nil, errors.New("gateway timeout")
		},
	}

	c, rec := newContext(t, http.MethodPost, "/api/create-order", `{"amount":200,"bookingId":7}`)
	err := newHandler(svc).CreateOrder(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	var resp dto.VerifyResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
}

// --- /api/verify-payment ---

const verifyBody = `{
	"razorpay_order_id": "order_abc",
	"razorpay_payment_id": "pay_xyz",
	"razorpay_signature": "deadbeef"
}`

func TestVerifyPayment_Handler_Success(t *testing.T) {
	svc := &mockBookingService{
		confirmPaymentFn: func(ctx context.Context, orderID, paymentID, signature string) (*models.Booking, error) {
			assert.Equal(t, "order_abc", orderID)
			assert.Equal(t, "pay_xyz", paymentID)
			assert.Equal(t, "deadbeef", signature)
			return &models.Booking{ID: 7, PaymentStatus: models.PaymentPaid}, nil
		},
	}

	c, rec := newContext(t, http.MethodPost, "/api/verify-payment", verifyBody)
	err := newHandler(svc).VerifyPayment(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp dto.VerifyResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
}

func TestVerifyPayment_Handler_BadSignature(t *testing.T) {
	svc := &mockBookingService{
		confirmPaymentFn: func(ctx context.Context, orderID, paymentID, signature string) (*models.Booking, error) {
			return nil, service.ErrBadSignature
		},
	}

	c, rec := newContext(t, http.MethodPost, "/api/verify-payment", verifyBody)
	err := newHandler(svc).VerifyPayment(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp dto.VerifyResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
}

// A repeated callback for a paid booking stays successful.
func TestVerifyPayment_Handler_AlreadyPaid(t *testing.T) {
	svc := &mockBookingService{
		confirmPaymentFn: func(ctx context.Context, orderID, paymentID, signature string) (*models.Booking, error) {
			return &models.Booking{ID: 7, PaymentStatus: models.PaymentPaid}, service.ErrAlreadyPaid
		},
	}

	c, rec := newContext(t, http.MethodPost, "/api/verify-payment", verifyBody)
	err := newHandler(svc).VerifyPayment(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp dto.VerifyResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
}

func TestVerifyPayment_Handler_UnknownOrder(t *testing.T) {
	svc := &mockBookingService{
		confirmPaymentFn: func(ctx context.Context, orderID, paymentID, signature string) (*models.Booking, error) {
			return nil, service.ErrOrderNotFound
		},
	}

	c, rec := newContext(t, http.MethodPost, "/api/verify-payment", verifyBody)
	err := newHandler(svc).VerifyPayment(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp dto.VerifyResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
}

// --- /api/chat ---

func TestChat_Handler_PricesBeforeTiming(t *testing.T) {
	c, rec := newContext(t, http.MethodPost, "/api/chat", `{"message":"What are your prices and timing?"}`)
	err := newHandler(&mockBookingService{}).Chat(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp dto.ChatResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Contains(t, resp.Reply, "Prices")
}

func TestChat_Handler_EmptyMessage(t *testing.T) {
	c, rec := newContext(t, http.MethodPost, "/api/chat", `{"message":""}`)
	err := newHandler(&mockBookingService{}).Chat(c)

	assert.NoError(t, err)

	var resp dto.ChatResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Please type a message.", resp.Reply)
}

// --- admin ---

func TestListBookings_Handler(t *testing.T) {
	svc := &mockBookingService{
		listBookingsFn: func(ctx context.Context) ([]models.Booking, error) {
			return []models.Booking{
				{ID: 2, FullName: "B", PaymentStatus: models.PaymentPaid},
				{ID: 1, FullName: "A", PaymentStatus: models.PaymentPending},
			}, nil
		},
	}

	c, rec := newContext(t, http.MethodGet, "/api/admin/bookings", "")
	err := newHandler(svc).ListBookings(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp []dto.BookingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp, 2)
	assert.Equal(t, uint(2), resp[0].ID, "newest booking first")
	assert.Equal(t, models.PaymentPaid, resp[0].PaymentStatus)
}

func TestEarnings_Handler(t *testing.T) {
	svc := &mockBookingService{
		totalEarningsFn: func(ctx context.Context) (float64, error) {
			return 500, nil
		},
	}

	c, rec := newContext(t, http.MethodGet, "/api/admin/earnings", "")
	err := newHandler(svc).Earnings(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp dto.EarningsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, float64(500), resp.Total)
}

func TestLiveness_Handler(t *testing.T) {
	c, rec := newContext(t, http.MethodGet, "/", "")
	err := newHandler(&mockBookingService{}).Liveness(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "running successfully")
}
