package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"hotelhunt/internal/errors"
	"hotelhunt/internal/model"
	"hotelhunt/internal/service"
)

// HotelHandler handles hotel directory endpoints.
type HotelHandler struct {
	hotelService service.HotelService
}

// NewHotelHandler creates a new hotel handler.
func NewHotelHandler(hotelService service.HotelService) *HotelHandler {
	return &HotelHandler{hotelService: hotelService}
}

// ListHotels godoc
// @Summary List all hotels
// @Tags hotels
// @Produce json
// @Success 200 {array} model.Hotel
// @Failure 500 {object} errors.ErrorResponse
// @Router /hotels [get]
func (h *HotelHandler) ListHotels(c echo.Context) error {
	hotels, err := h.hotelService.List(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	if hotels == nil {
		hotels = []model.Hotel{}
	}
	return c.JSON(http.StatusOK, hotels)
}

// GetHotel godoc
// @Summary Get hotel by id
// @Tags hotels
// @Produce json
// @Param id path string true "Hotel ID"
// @Success 200 {object} model.Hotel
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /hotels/{id} [get]
func (h *HotelHandler) GetHotel(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Message: "Invalid hotel ID",
			Code:    "INVALID_HOTEL_ID",
		})
	}

	hotel, err := h.hotelService.Get(c.Request().Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, hotel)
}

// CreateHotel godoc
// @Summary Add a hotel to the directory
// @Description Inserts the payload verbatim. Directory entries carry no field validation.
// @Tags hotels
// @Accept json
// @Produce json
// @Param hotel body model.Hotel true "Hotel payload"
// @Success 201 {object} map[string]string
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /hotels [post]
func (h *HotelHandler) CreateHotel(c echo.Context) error {
	var hotel model.Hotel
	if err := c.Bind(&hotel); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Message: "invalid request body",
			Code:    "INVALID_REQUEST",
		})
	}

	if _, err := h.hotelService.Create(c.Request().Context(), &hotel); err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, map[string]string{
		"message": "Hotel added successfully",
	})
}

// DeleteHotel godoc
// @Summary Delete hotel by id
// @Description Bookings referencing the hotel are left in place (weak references).
// @Tags hotels
// @Produce json
// @Param id path string true "Hotel ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /hotels/{id} [delete]
func (h *HotelHandler) DeleteHotel(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Message: "Invalid hotel ID",
			Code:    "INVALID_HOTEL_ID",
		})
	}

	if err := h.hotelService.Delete(c.Request().Context(), id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{
		"message": "Hotel deleted successfully",
	})
}

// SearchHotels godoc
// @Summary Search hotels
// @Description Case-insensitive substring match over name, loc, amenities and areaofroom; numeric queries also match pricepernight exactly.
// @Tags hotels
// @Produce json
// @Param query query string true "Free-text query"
// @Success 200 {array} model.Hotel
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /hotels/search [get]
func (h *HotelHandler) SearchHotels(c echo.Context) error {
	query := c.QueryParam("query")
	if query == "" {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Message: "Invalid search query",
			Code:    "INVALID_QUERY",
		})
	}

	hotels, err := h.hotelService.Search(c.Request().Context(), query)
	if err != nil {
		return respondError(c, err)
	}
	if hotels == nil {
		hotels = []model.Hotel{}
	}
	return c.JSON(http.StatusOK, hotels)
}
