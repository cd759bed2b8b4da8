package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"hotelhunt/internal/errors"
	"hotelhunt/internal/model"
	"hotelhunt/internal/repository"
)

// BookingService handles reservation operations.
type BookingService interface {
	Create(ctx context.Context, userID, hotelID uuid.UUID, checkin, checkout string) (*model.Booking, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]model.Booking, error)
	List(ctx context.Context) ([]model.Booking, error)
}

type bookingService struct {
	bookingRepo repository.BookingRepository
	userRepo    repository.UserRepository
}

// NewBookingService creates a new booking service.
func NewBookingService(bookingRepo repository.BookingRepository, userRepo repository.UserRepository) BookingService {
	return &bookingService{bookingRepo: bookingRepo, userRepo: userRepo}
}

// Create looks up the user and snapshots their name, email and mobile number
// into the new booking. Later changes to the user do not touch the booking.
//
// The hotel reference is deliberately not checked against the directory, and
// no availability or overlap check is made: any date range may be
// double-booked.
func (s *bookingService) Create(ctx context.Context, userID, hotelID uuid.UUID, checkin, checkout string) (*model.Booking, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	booking := &model.Booking{
		HotelID:  hotelID,
		UserID:   user.ID,
		Name:     user.Name,
		Email:    user.Email,
		Phone:    user.MobNo,
		Checkin:  checkin,
		Checkout: checkout,
	}

	if err := s.bookingRepo.Create(ctx, booking); err != nil {
		return nil, fmt.Errorf("create booking: %w", err)
	}
	return booking, nil
}

// ListByUser returns a user's bookings with hotel name/location joined in.
func (s *bookingService) ListByUser(ctx context.Context, userID uuid.UUID) ([]model.Booking, error) {
	return s.bookingRepo.FindByUser(ctx, userID)
}

// List returns every booking with user and hotel projections joined in.
func (s *bookingService) List(ctx context.Context) ([]model.Booking, error) {
	return s.bookingRepo.List(ctx)
}
