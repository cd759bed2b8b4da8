package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"hotelhunt/internal/errors"
	"hotelhunt/internal/model"
	"hotelhunt/internal/service"
)

// BookingHandler handles reservation endpoints.
type BookingHandler struct {
	bookingService service.BookingService
}

// NewBookingHandler creates a new booking handler.
func NewBookingHandler(bookingService service.BookingService) *BookingHandler {
	return &BookingHandler{bookingService: bookingService}
}

// BookingRequest represents a booking submission.
type BookingRequest struct {
	UserID   string `json:"userId" validate:"required,uuid"`
	HotelID  string `json:"hotelId" validate:"required,uuid"`
	Checkin  string `json:"checkin"`
	Checkout string `json:"checkout"`
}

// BookingResponse represents a successful booking creation.
type BookingResponse struct {
	Message string         `json:"message"`
	Booking *model.Booking `json:"booking"`
}

// CreateBooking godoc
// @Summary Create a booking
// @Description Snapshots the user's name/email/phone into the booking. The hotel reference is not validated and no availability check is made.
// @Tags bookings
// @Accept json
// @Produce json
// @Param request body BookingRequest true "Booking data"
// @Success 201 {object} BookingResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /bookings [post]
func (h *BookingHandler) CreateBooking(c echo.Context) error {
	var req BookingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Message: "invalid request body",
			Code:    "INVALID_REQUEST",
		})
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Message: err.Error(),
			Code:    "VALIDATION_ERROR",
		})
	}

	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Message: "invalid userId",
			Code:    "INVALID_USER_ID",
		})
	}

	hotelID, err := uuid.Parse(req.HotelID)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Message: "invalid hotelId",
			Code:    "INVALID_HOTEL_ID",
		})
	}

	booking, err := h.bookingService.Create(c.Request().Context(), userID, hotelID, req.Checkin, req.Checkout)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusCreated, BookingResponse{
		Message: "Booking successful",
		Booking: booking,
	})
}

// ListUserBookings godoc
// @Summary List a user's bookings
// @Description Each booking carries the referenced hotel's name and location.
// @Tags bookings
// @Produce json
// @Param userId path string true "User ID"
// @Success 200 {array} model.Booking
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /bookings/{userId} [get]
func (h *BookingHandler) ListUserBookings(c echo.Context) error {
	userID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Message: "invalid userId",
			Code:    "INVALID_USER_ID",
		})
	}

	bookings, err := h.bookingService.ListByUser(c.Request().Context(), userID)
	if err != nil {
		return respondError(c, err)
	}
	if bookings == nil {
		bookings = []model.Booking{}
	}
	return c.JSON(http.StatusOK, bookings)
}

// ListBookings godoc
// @Summary List all bookings
// @Description Administrative listing with user and hotel projections joined in. No pagination.
// @Tags bookings
// @Produce json
// @Success 200 {array} model.Booking
// @Failure 500 {object} errors.ErrorResponse
// @Router /bookings [get]
func (h *BookingHandler) ListBookings(c echo.Context) error {
	bookings, err := h.bookingService.List(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	if bookings == nil {
		bookings = []model.Booking{}
	}
	return c.JSON(http.StatusOK, bookings)
}
