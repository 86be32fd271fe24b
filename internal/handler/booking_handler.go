package handler

import (
	"errors"
	"net/http"

	"github.com/h2o-salon/salon-backend/internal/chat"
	"github.com/h2o-salon/salon-backend/internal/dto"
	"github.com/h2o-salon/salon-backend/internal/service"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

type BookingHandler struct {
	svc service.BookingService
	log zerolog.Logger
}

func NewBookingHandler(svc service.BookingService, log zerolog.Logger) *BookingHandler {
	return &BookingHandler{svc: svc, log: log}
}

func (h *BookingHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/", h.Liveness)

	api := e.Group("/api")
	api.POST("/book", h.CreateBooking)
	api.POST("/create-order", h.CreateOrder)
	api.POST("/verify-payment", h.VerifyPayment)
	api.POST("/chat", h.Chat)

	admin := api.Group("/admin")
	admin.GET("/bookings", h.ListBookings)
	admin.GET("/earnings", h.Earnings)
}

func (h *BookingHandler) Liveness(c echo.Context) error {
	return c.String(http.StatusOK, "🚀 Backend is running successfully")
}

// CreateBooking reserves a slot. A taken slot is not an HTTP error: the
// client gets 200 with success=false and a human-readable message.
func (h *BookingHandler) CreateBooking(c echo.Context) error {
	var req dto.CreateBookingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.FullName == "" || req.Email == "" || req.Phone == "" ||
		req.Date == "" || req.Service == "" || req.SubService == "" ||
		req.Barber == "" || req.Time == "" || req.Amount < 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "all booking fields are required")
	}

	booking, err := h.svc.CreateBooking(c.Request().Context(), req.ToModel())
	if err != nil {
		if errors.Is(err, service.ErrSlotTaken) {
			return c.JSON(http.StatusOK, dto.BookResult{
				Success: false,
				Message: "This time slot is already booked",
			})
		}
		h.log.Error().Err(err).Msg("create booking failed")
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, dto.BookResult{
		Success:   true,
		BookingID: booking.ID,
		Amount:    booking.Amount,
	})
}

// CreateOrder opens a Razorpay order and attaches its id to the booking. The
// gateway's order descriptor is returned unwrapped, as the checkout widget
// expects it.
func (h *BookingHandler) CreateOrder(c echo.Context) error {
	var req dto.CreateOrderRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	order, err := h.svc.CreateOrder(c.Request().Context(), req.BookingID, req.Amount)
	if err != nil {
		h.log.Error().Err(err).Uint("booking_id", req.BookingID).Msg("create order failed")
		return c.JSON(http.StatusInternalServerError, dto.VerifyResponse{Success: false})
	}

	return c.JSON(http.StatusOK, order)
}

// VerifyPayment checks the callback signature. Verification failure is an
// ordinary outcome, not an HTTP error; a repeated callback for an already
// paid booking stays successful without re-sending the receipt.
func (h *BookingHandler) VerifyPayment(c echo.Context) error {
	var req dto.VerifyPaymentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	_, err := h.svc.ConfirmPayment(c.Request().Context(), req.RazorpayOrderID, req.RazorpayPaymentID, req.RazorpaySignature)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrAlreadyPaid):
			return c.JSON(http.StatusOK, dto.VerifyResponse{Success: true})
		case errors.Is(err, service.ErrBadSignature), errors.Is(err, service.ErrOrderNotFound):
			return c.JSON(http.StatusOK, dto.VerifyResponse{Success: false})
		default:
			h.log.Error().Err(err).Str("order_id", req.RazorpayOrderID).Msg("verify payment failed")
			return c.JSON(http.StatusOK, dto.VerifyResponse{Success: false})
		}
	}

	return c.JSON(http.StatusOK, dto.VerifyResponse{Success: true})
}

func (h *BookingHandler) Chat(c echo.Context) error {
	var req dto.ChatRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	return c.JSON(http.StatusOK, dto.ChatResponse{Reply: chat.Respond(req.Message)})
}

func (h *BookingHandler) ListBookings(c echo.Context) error {
	bookings, err := h.svc.ListBookings(c.Request().Context())
	if err != nil {
		h.log.Error().Err(err).Msg("list bookings failed")
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	resp := make([]dto.BookingResponse, len(bookings))
	for i, b := range bookings {
		resp[i] = dto.ToBookingResponse(&b)
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *BookingHandler) Earnings(c echo.Context) error {
	total, err := h.svc.TotalEarnings(c.Request().Context())
	if err != nil {
		h.log.Error().Err(err).Msg("total earnings failed")
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, dto.EarningsResponse{Total: total})
}
