package handler

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	apperrors "hotelhunt/internal/errors"
	"hotelhunt/internal/model"
)

// MockBookingService is a mock implementation of service.BookingService.
type MockBookingService struct {
	mock.Mock
}

func (m *MockBookingService) Create(ctx context.Context, userID, hotelID uuid.UUID, checkin, checkout string) (*model.Booking, error) {
	args := m.Called(ctx, userID, hotelID, checkin, checkout)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Booking), args.Error(1)
}

func (m *MockBookingService) ListByUser(ctx context.Context, userID uuid.UUID) ([]model.Booking, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Booking), args.Error(1)
}

func (m *MockBookingService) List(ctx context.Context) ([]model.Booking, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Booking), args.Error(1)
}

func TestCreateBooking(t *testing.T) {
	userID := uuid.New()
	hotelID := uuid.New()
	body := fmt.Sprintf(`{"userId":%q,"hotelId":%q,"checkin":"2026-09-01","checkout":"2026-09-03"}`,
		userID, hotelID)

	t.Run("unknown user", func(t *testing.T) {
		svc := new(MockBookingService)
		svc.On("Create", mock.Anything, userID, hotelID, "2026-09-01", "2026-09-03").
			Return(nil, apperrors.ErrUserNotFound)
		e := newTestEcho()
		e.POST("/bookings", NewBookingHandler(svc).CreateBooking)

		req := httptest.NewRequest(http.MethodPost, "/bookings", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Contains(t, rec.Body.String(), "User not found")
		svc.AssertExpectations(t)
	})

	t.Run("successful booking echoes the created record", func(t *testing.T) {
		svc := new(MockBookingService)
		svc.On("Create", mock.Anything, userID, hotelID, "2026-09-01", "2026-09-03").
			Return(&model.Booking{
				ID: uuid.New(), UserID: userID, HotelID: hotelID,
				Name: "A", Email: "a@x.com", Phone: "111",
				Checkin: "2026-09-01", Checkout: "2026-09-03",
			}, nil)
		e := newTestEcho()
		e.POST("/bookings", NewBookingHandler(svc).CreateBooking)

		req := httptest.NewRequest(http.MethodPost, "/bookings", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Contains(t, rec.Body.String(), "Booking successful")
		assert.Contains(t, rec.Body.String(), `"email":"a@x.com"`)
		svc.AssertExpectations(t)
	})

	t.Run("malformed ids are rejected before the service runs", func(t *testing.T) {
		svc := new(MockBookingService)
		e := newTestEcho()
		e.POST("/bookings", NewBookingHandler(svc).CreateBooking)

		req := httptest.NewRequest(http.MethodPost, "/bookings",
			strings.NewReader(`{"userId":"abc","hotelId":"def","checkin":"x","checkout":"y"}`))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		svc.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestListUserBookings(t *testing.T) {
	userID := uuid.New()
	svc := new(MockBookingService)
	svc.On("ListByUser", mock.Anything, userID).Return([]model.Booking{
		{UserID: userID, Hotel: &model.Hotel{Name: "Hilltop Retreat", Loc: "Manali"}},
	}, nil)
	e := newTestEcho()
	e.GET("/bookings/:userId", NewBookingHandler(svc).ListUserBookings)

	req := httptest.NewRequest(http.MethodGet, "/bookings/"+userID.String(), nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Hilltop Retreat")
	svc.AssertExpectations(t)
}
