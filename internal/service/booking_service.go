package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/h2o-salon/salon-backend/internal/metrics"
	"github.com/h2o-salon/salon-backend/internal/models"
	"github.com/h2o-salon/salon-backend/internal/notify"
	"github.com/h2o-salon/salon-backend/internal/razorpay"
	"github.com/h2o-salon/salon-backend/internal/repository"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

var (
	ErrSlotTaken     = errors.New("this time slot is already booked")
	ErrOrderNotFound = errors.New("no booking carries this order id")
	ErrAlreadyPaid   = errors.New("booking is already paid")
	ErrBadSignature  = errors.New("payment signature mismatch")
)

// PaymentGateway is the slice of the Razorpay client the service needs,
// substitutable with a fake in tests.
type PaymentGateway interface {
	CreateOrder(ctx context.Context, amountMajor float64, receipt string) (*razorpay.Order, error)
	VerifySignature(orderID, paymentID, signature string) bool
}

type BookingService interface {
	CreateBooking(ctx context.Context, booking *models.Booking) (*models.Booking, error)
	CreateOrder(ctx context.Context, bookingID uint, amount float64) (*razorpay.Order, error)
	ConfirmPayment(ctx context.Context, orderID, paymentID, signature string) (*models.Booking, error)
	ListBookings(ctx context.Context) ([]models.Booking, error)
	TotalEarnings(ctx context.Context) (float64, error)
}

type bookingService struct {
	repo       repository.BookingRepository
	gateway    PaymentGateway
	dispatcher notify.Dispatcher
	log        zerolog.Logger
}

func NewBookingService(repo repository.BookingRepository, gateway PaymentGateway, dispatcher notify.Dispatcher, log zerolog.Logger) BookingService {
	return &bookingService{
		repo:       repo,
		gateway:    gateway,
		dispatcher: dispatcher,
		log:        log,
	}
}

// CreateBooking reserves a (barber, date, time) slot. The existence check is
// advisory — it gives the common case a fast, friendly answer. The unique
// index is the authoritative guard: a duplicate-key violation on insert maps
// to the same conflict outcome, so concurrent requests behave identically.
func (s *bookingService) CreateBooking(ctx context.Context, booking *models.Booking) (*models.Booking, error) {
	booking.FullName = strings.TrimSpace(booking.FullName)
	booking.Email = strings.ToLower(strings.TrimSpace(booking.Email))
	booking.PaymentStatus = models.PaymentPending

	_, err := s.repo.FindBySlot(ctx, booking.Barber, booking.Date, booking.Time)
	if err == nil {
		metrics.IncSlotConflict()
		return nil, ErrSlotTaken
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	if err := s.repo.Create(ctx, booking); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			metrics.IncSlotConflict()
			return nil, ErrSlotTaken
		}
		return nil, err
	}

	metrics.IncBookingCreated()
	return booking, nil
}

// CreateOrder opens a gateway order for the amount and records the returned
// order id on the booking. The receipt reference is the booking id.
func (s *bookingService) CreateOrder(ctx context.Context, bookingID uint, amount float64) (*razorpay.Order, error) {
	order, err := s.gateway.CreateOrder(ctx, amount, strconv.FormatUint(uint64(bookingID), 10))
	if err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}

	if err := s.repo.AttachOrder(ctx, bookingID, order.ID); err != nil {
		return nil, fmt.Errorf("attach order %s to booking %d: %w", order.ID, bookingID, err)
	}

	return order, nil
}

// ConfirmPayment verifies the gateway callback signature and flips the
// booking to paid, exactly once. On success the receipt is dispatched
// asynchronously; dispatch failure is logged and swallowed.
func (s *bookingService) ConfirmPayment(ctx context.Context, orderID, paymentID, signature string) (*models.Booking, error) {
	if !s.gateway.VerifySignature(orderID, paymentID, signature) {
		metrics.IncPaymentVerified("bad_signature")
		return nil, ErrBadSignature
	}

	booking, err := s.repo.FindByOrderID(ctx, orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}

	if err := booking.MarkPaid(paymentID); err != nil {
		metrics.IncPaymentVerified("already_paid")
		return booking, ErrAlreadyPaid
	}

	// Conditional update in the store; 0 rows means a concurrent callback
	// won the transition.
	rows, err := s.repo.MarkPaid(ctx, orderID, paymentID)
	if err != nil {
		return nil, err
	}
	if rows == 0 {
		metrics.IncPaymentVerified("already_paid")
		return booking, ErrAlreadyPaid
	}

	metrics.IncPaymentVerified("paid")

	if s.dispatcher != nil {
		if err := s.dispatcher.DispatchReceipt(booking); err != nil {
			s.log.Error().Err(err).Uint("booking_id", booking.ID).Msg("receipt dispatch failed")
		}
	}

	return booking, nil
}

func (s *bookingService) ListBookings(ctx context.Context) ([]models.Booking, error) {
	return s.repo.FindAll(ctx)
}

func (s *bookingService) TotalEarnings(ctx context.Context) (float64, error) {
	return s.repo.TotalEarnings(ctx)
}
