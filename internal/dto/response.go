package dto

import (
	"time"

	"github.com/h2o-salon/salon-backend/internal/models"
)

type BookingResponse struct {
	ID                uint                 `json:"id"`
	FullName          string               `json:"fullName"`
	Email             string               `json:"email"`
	Phone             string               `json:"phone"`
	Date              string               `json:"date"`
	Service           string               `json:"service"`
	SubService        string               `json:"subService"`
	Barber            string               `json:"barber"`
	Time              string               `json:"time"`
	Amount            float64              `json:"amount"`
	PaymentStatus     models.PaymentStatus `json:"paymentStatus"`
	RazorpayOrderID   string               `json:"razorpayOrderId,omitempty"`
	RazorpayPaymentID string               `json:"razorpayPaymentId,omitempty"`
	CreatedAt         time.Time            `json:"createdAt"`
}

// BookResult is the /api/book envelope: success with id and amount, or a
// friendly failure message on slot conflict.
type BookResult struct {
	Success   bool    `json:"success"`
	BookingID uint    `json:"bookingId,omitempty"`
	Amount    float64 `json:"amount,omitempty"`
	Message   string  `json:"message,omitempty"`
}

type EarningsResponse struct {
	Total float64 `json:"total"`
}

type VerifyResponse struct {
	Success bool `json:"success"`
}

type ChatResponse struct {
	Reply string `json:"reply"`
}

type ErrorResponse struct {
	Message string `json:"message"`
}

func ToBookingResponse(b *models.Booking) BookingResponse {
	return BookingResponse{
		ID:                b.ID,
		FullName:          b.FullName,
		Email:             b.Email,
		Phone:             b.Phone,
		Date:              b.Date,
		Service:           b.Service,
		SubService:        b.SubService,
		Barber:            b.Barber,
		Time:              b.Time,
		Amount:            b.Amount,
		PaymentStatus:     b.PaymentStatus,
		RazorpayOrderID:   b.RazorpayOrderID,
		RazorpayPaymentID: b.RazorpayPaymentID,
		CreatedAt:         b.CreatedAt,
	}
}

func (r CreateBookingRequest) ToModel() *models.Booking {
	return &models.Booking{
		FullName:   r.FullName,
		Email:      r.Email,
		Phone:      r.Phone,
		Date:       r.Date,
		Service:    r.Service,
		SubService: r.SubService,
		Barber:     r.Barber,
		Time:       r.Time,
		Amount:     r.Amount,
	}
}
