package dto

type CreateBookingRequest struct {
	FullName   string  `json:"fullName"`
	Email      string  `json:"email"`
	Phone      string  `json:"phone"`
	Date       string  `json:"date"` // yyyy-mm-dd
	Service    string  `json:"service"`
	SubService string  `json:"subService"`
	Barber     string  `json:"barber"`
	Time       string  `json:"time"` // HH:mm
	Amount     float64 `json:"amount"`
}

type CreateOrderRequest struct {
	Amount    float64 `json:"amount"`
	BookingID uint    `json:"bookingId"`
}

// VerifyPaymentRequest carries the gateway's redirect parameters; the field
// names are Razorpay's.
type VerifyPaymentRequest struct {
	RazorpayOrderID   string `json:"razorpay_order_id"`
	RazorpayPaymentID string `json:"razorpay_payment_id"`
	RazorpaySignature string `json:"razorpay_signature"`
}

type ChatRequest struct {
	Message string `json:"message"`
}
