package repository

import (
	"context"

	"github.com/h2o-salon/salon-backend/internal/models"
	"gorm.io/gorm"
)

type BookingRepository interface {
	Create(ctx context.Context, booking *models.Booking) error
	FindByID(ctx context.Context, id uint) (*models.Booking, error)
	FindBySlot(ctx context.Context, barber, date, timeSlot string) (*models.Booking, error)
	FindByOrderID(ctx context.Context, orderID string) (*models.Booking, error)
	AttachOrder(ctx context.Context, bookingID uint, orderID string) error
	MarkPaid(ctx context.Context, orderID, paymentID string) (int64, error)
	FindAll(ctx context.Context) ([]models.Booking, error)
	TotalEarnings(ctx context.Context) (float64, error)
}

type bookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) BookingRepository {
	return &bookingRepository{db: db}
}

func (r *bookingRepository) Create(ctx context.Context, booking *models.Booking) error {
	return r.db.WithContext(ctx).Create(booking).Error
}

func (r *bookingRepository) FindByID(ctx context.Context, id uint) (*models.Booking, error) {
	var booking models.Booking
	if err := r.db.WithContext(ctx).First(&booking, id).Error; err != nil {
		return nil, err
	}
	return &booking, nil
}

func (r *bookingRepository) FindBySlot(ctx context.Context, barber, date, timeSlot string) (*models.Booking, error) {
	var booking models.Booking
	err := r.db.WithContext(ctx).
		Where("barber = ? AND date = ? AND time = ?", barber, date, timeSlot).
		First(&booking).Error
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

func (r *bookingRepository) FindByOrderID(ctx context.Context, orderID string) (*models.Booking, error) {
	var booking models.Booking
	err := r.db.WithContext(ctx).
		Where("razorpay_order_id = ?", orderID).
		First(&booking).Error
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

func (r *bookingRepository) AttachOrder(ctx context.Context, bookingID uint, orderID string) error {
	return r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Where("id = ?", bookingID).
		Update("razorpay_order_id", orderID).Error
}

// MarkPaid flips a pending booking to paid in a single conditional update.
// Returns the number of rows affected; 0 means the order id is unknown or
// the booking was already paid — the caller disambiguates.
func (r *bookingRepository) MarkPaid(ctx context.Context, orderID, paymentID string) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Where("razorpay_order_id = ? AND payment_status = ?", orderID, models.PaymentPending).
		Updates(map[string]any{
			"payment_status":      models.PaymentPaid,
			"razorpay_payment_id": paymentID,
		})
	return res.RowsAffected, res.Error
}

func (r *bookingRepository) FindAll(ctx context.Context) ([]models.Booking, error) {
	var bookings []models.Booking
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *bookingRepository) TotalEarnings(ctx context.Context) (float64, error) {
	var total float64
	err := r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Where("payment_status = ?", models.PaymentPaid).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&total).Error
	return total, err
}
