package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"hotelhunt/internal/model"
)

// BookingRepository defines booking persistence operations. Bookings are
// write-once: there are no update or delete operations.
type BookingRepository interface {
	Create(ctx context.Context, booking *model.Booking) error
	FindByUser(ctx context.Context, userID uuid.UUID) ([]model.Booking, error)
	List(ctx context.Context) ([]model.Booking, error)
}

type bookingRepository struct {
	db *gorm.DB
}

// NewBookingRepository creates a new booking repository.
func NewBookingRepository(db *gorm.DB) BookingRepository {
	return &bookingRepository{db: db}
}

func (r *bookingRepository) Create(ctx context.Context, booking *model.Booking) error {
	return r.db.WithContext(ctx).Create(booking).Error
}

func hotelSummary(db *gorm.DB) *gorm.DB {
	return db.Select("id", "name", "loc")
}

func userSummary(db *gorm.DB) *gorm.DB {
	return db.Select("id", "name", "email")
}

// FindByUser returns a user's bookings with the referenced hotel's name and
// location joined in for display.
func (r *bookingRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]model.Booking, error) {
	var bookings []model.Booking
	if err := r.db.WithContext(ctx).
		Preload("Hotel", hotelSummary).
		Where("user_id = ?", userID).
		Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

// List returns every booking with both the user's name/email and the hotel's
// name/location joined in. Intended for administrative use only.
func (r *bookingRepository) List(ctx context.Context) ([]model.Booking, error) {
	var bookings []model.Booking
	if err := r.db.WithContext(ctx).
		Preload("Hotel", hotelSummary).
		Preload("User", userSummary).
		Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}
