package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"hotelhunt/internal/handler"
)

// Register wires routes and middleware. Route paths preserve the original
// public contract; every route is public, no token is required anywhere.
func Register(
	e *echo.Echo,
	authHandler *handler.AuthHandler,
	userHandler *handler.UserHandler,
	hotelHandler *handler.HotelHandler,
	bookingHandler *handler.BookingHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// Auth
	e.POST("/auth/:action", authHandler.Handle)

	// Users
	e.GET("/users", userHandler.ListUsers)

	// Hotel directory
	e.GET("/hotels/search", hotelHandler.SearchHotels)
	e.GET("/hotels", hotelHandler.ListHotels)
	e.GET("/hotels/:id", hotelHandler.GetHotel)
	e.POST("/hotels", hotelHandler.CreateHotel)
	e.DELETE("/hotels/:id", hotelHandler.DeleteHotel)
	// Legacy alias kept for older clients.
	e.POST("/addhotel", hotelHandler.CreateHotel)

	// Bookings
	e.POST("/bookings", bookingHandler.CreateBooking)
	e.GET("/bookings", bookingHandler.ListBookings)
	e.GET("/bookings/:userId", bookingHandler.ListUserBookings)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
