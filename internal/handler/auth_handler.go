package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"hotelhunt/internal/errors"
	"hotelhunt/internal/service"
)

// AuthHandler handles the combined signup/login endpoint.
type AuthHandler struct {
	authService service.AuthService
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// SignupRequest represents a signup request.
type SignupRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	MobNo    string `json:"mobno" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginRequest represents a login request.
type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// UserProjection is the minimal user view returned on login. No session or
// token is issued; the client persists this object itself.
type UserProjection struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
}

// LoginResponse represents a successful login response.
type LoginResponse struct {
	Message string         `json:"message"`
	User    UserProjection `json:"user"`
}

// Handle godoc
// @Summary Signup or login
// @Description Combined authentication endpoint. action is "signup" or "login".
// @Tags auth
// @Accept json
// @Produce json
// @Param action path string true "Action tag" Enums(signup, login)
// @Param request body SignupRequest true "Credentials"
// @Success 200 {object} LoginResponse
// @Success 201 {object} map[string]string
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /auth/{action} [post]
func (h *AuthHandler) Handle(c echo.Context) error {
	switch c.Param("action") {
	case "signup":
		return h.signup(c)
	case "login":
		return h.login(c)
	default:
		return respondError(c, errors.ErrInvalidAction)
	}
}

func (h *AuthHandler) signup(c echo.Context) error {
	var req SignupRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Message: "invalid request body",
			Code:    "INVALID_REQUEST",
		})
	}

	if err := c.Validate(&req); err != nil {
		return respondError(c, errors.ErrMissingFields)
	}

	if _, err := h.authService.Signup(c.Request().Context(), req.Name, req.Email, req.MobNo, req.Password); err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusCreated, map[string]string{
		"message": "Signup successful",
	})
}

func (h *AuthHandler) login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Message: "invalid request body",
			Code:    "INVALID_REQUEST",
		})
	}

	if err := c.Validate(&req); err != nil {
		return respondError(c, errors.ErrMissingFields)
	}

	user, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, LoginResponse{
		Message: "Login successful",
		User: UserProjection{
			ID:    user.ID,
			Name:  user.Name,
			Email: user.Email,
		},
	})
}

// respondError maps a domain error to its HTTP shape. Unclassified failures
// degrade to a generic 500 with the raw cause logged server-side only.
func respondError(c echo.Context, err error) error {
	httpErr := errors.MapErrorToHTTP(err)
	if httpErr.StatusCode == http.StatusInternalServerError {
		c.Logger().Errorf("internal error: %v", err)
	}
	return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
}
