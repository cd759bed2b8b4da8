package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	apperrors "hotelhunt/internal/errors"
	"hotelhunt/internal/model"
)

type testValidator struct {
	validator *validator.Validate
}

func (v *testValidator) Validate(i interface{}) error {
	return v.validator.Struct(i)
}

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = &testValidator{validator: validator.New()}
	return e
}

// MockHotelService is a mock implementation of service.HotelService.
type MockHotelService struct {
	mock.Mock
}

func (m *MockHotelService) Create(ctx context.Context, hotel *model.Hotel) (*model.Hotel, error) {
	args := m.Called(ctx, hotel)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Hotel), args.Error(1)
}

func (m *MockHotelService) Get(ctx context.Context, id uuid.UUID) (*model.Hotel, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Hotel), args.Error(1)
}

func (m *MockHotelService) List(ctx context.Context) ([]model.Hotel, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Hotel), args.Error(1)
}

func (m *MockHotelService) Search(ctx context.Context, query string) ([]model.Hotel, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Hotel), args.Error(1)
}

func (m *MockHotelService) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestSearchHotels(t *testing.T) {
	t.Run("missing query is rejected", func(t *testing.T) {
		svc := new(MockHotelService)
		e := newTestEcho()
		e.GET("/hotels/search", NewHotelHandler(svc).SearchHotels)

		req := httptest.NewRequest(http.MethodGet, "/hotels/search", nil)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), `"message":"Invalid search query"`)
		svc.AssertNotCalled(t, "Search", mock.Anything, mock.Anything)
	})

	t.Run("numeric query reaches the service verbatim", func(t *testing.T) {
		svc := new(MockHotelService)
		svc.On("Search", mock.Anything, "200").Return([]model.Hotel{
			{Name: "Desert Rose Hotel", Loc: "Jaisalmer", PricePerNight: decimal.NewFromInt(200)},
		}, nil)
		e := newTestEcho()
		e.GET("/hotels/search", NewHotelHandler(svc).SearchHotels)

		req := httptest.NewRequest(http.MethodGet, "/hotels/search?query=200", nil)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Desert Rose Hotel")
		svc.AssertExpectations(t)
	})

	t.Run("no match yields an empty list", func(t *testing.T) {
		svc := new(MockHotelService)
		svc.On("Search", mock.Anything, "zanzibar").Return([]model.Hotel(nil), nil)
		e := newTestEcho()
		e.GET("/hotels/search", NewHotelHandler(svc).SearchHotels)

		req := httptest.NewRequest(http.MethodGet, "/hotels/search?query=zanzibar", nil)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, "[]", rec.Body.String())
	})
}

func TestGetHotel(t *testing.T) {
	t.Run("malformed id", func(t *testing.T) {
		svc := new(MockHotelService)
		e := newTestEcho()
		e.GET("/hotels/:id", NewHotelHandler(svc).GetHotel)

		req := httptest.NewRequest(http.MethodGet, "/hotels/not-a-uuid", nil)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "Invalid hotel ID")
	})

	t.Run("absent id", func(t *testing.T) {
		id := uuid.New()
		svc := new(MockHotelService)
		svc.On("Get", mock.Anything, id).Return(nil, apperrors.ErrHotelNotFound)
		e := newTestEcho()
		e.GET("/hotels/:id", NewHotelHandler(svc).GetHotel)

		req := httptest.NewRequest(http.MethodGet, "/hotels/"+id.String(), nil)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Contains(t, rec.Body.String(), "Hotel not found")
	})
}

func TestDeleteHotel(t *testing.T) {
	t.Run("absent id", func(t *testing.T) {
		id := uuid.New()
		svc := new(MockHotelService)
		svc.On("Delete", mock.Anything, id).Return(apperrors.ErrHotelNotFound)
		e := newTestEcho()
		e.DELETE("/hotels/:id", NewHotelHandler(svc).DeleteHotel)

		req := httptest.NewRequest(http.MethodDelete, "/hotels/"+id.String(), nil)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("existing id", func(t *testing.T) {
		id := uuid.New()
		svc := new(MockHotelService)
		svc.On("Delete", mock.Anything, id).Return(nil)
		e := newTestEcho()
		e.DELETE("/hotels/:id", NewHotelHandler(svc).DeleteHotel)

		req := httptest.NewRequest(http.MethodDelete, "/hotels/"+id.String(), nil)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Hotel deleted successfully")
		svc.AssertExpectations(t)
	})
}
