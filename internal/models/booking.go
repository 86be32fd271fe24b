package models

import (
	"fmt"
	"time"
)

type PaymentStatus string

const (
	PaymentPending PaymentStatus = "pending"
	PaymentPaid    PaymentStatus = "paid"
)

type Booking struct {
	ID         uint    `gorm:"primaryKey" json:"id"`
	FullName   string  `gorm:"not null" json:"full_name"`
	Email      string  `gorm:"not null" json:"email"`
	Phone      string  `gorm:"not null" json:"phone"`
	Date       string  `gorm:"type:varchar(10);not null;uniqueIndex:idx_booking_slot" json:"date"` // yyyy-mm-dd
	Service    string  `gorm:"not null" json:"service"`
	SubService string  `gorm:"not null" json:"sub_service"`
	Barber     string  `gorm:"not null;uniqueIndex:idx_booking_slot" json:"barber"`
	Time       string  `gorm:"type:varchar(5);not null;uniqueIndex:idx_booking_slot" json:"time"` // HH:mm
	Amount     float64 `gorm:"not null" json:"amount"`

	PaymentStatus     PaymentStatus `gorm:"type:varchar(10);not null;default:'pending'" json:"payment_status"`
	RazorpayOrderID   string        `gorm:"index" json:"razorpay_order_id,omitempty"`
	RazorpayPaymentID string        `json:"razorpay_payment_id,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// MarkPaid performs the single allowed status transition. Paid is terminal:
// any booking that is no longer pending is rejected.
func (b *Booking) MarkPaid(paymentID string) error {
	if b.PaymentStatus != PaymentPending {
		return fmt.Errorf("booking %d is %s, cannot mark paid", b.ID, b.PaymentStatus)
	}
	b.PaymentStatus = PaymentPaid
	b.RazorpayPaymentID = paymentID
	return nil
}
