package errors

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-sql-driver/mysql"
)

var (
	// ErrHotelNotFound is returned when a hotel is not found.
	ErrHotelNotFound = errors.New("Hotel not found")
	// ErrUserNotFound is returned when a user is not found.
	ErrUserNotFound = errors.New("User not found")
	// ErrInvalidCredentials is returned when email/password do not match a user.
	ErrInvalidCredentials = errors.New("Invalid credentials")
	// ErrMissingFields is returned when required signup fields are absent.
	ErrMissingFields = errors.New("Missing required fields")
	// ErrInvalidAction is returned for an unknown auth action tag.
	ErrInvalidAction = errors.New("Invalid action")
)

// ConflictError reports a uniqueness violation on a named user field.
type ConflictError struct {
	Field string
	Value string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("Duplicate value for %s: %s", e.Field, e.Value)
}

// ErrorResponse represents a standardized error response. The human-readable
// text rides under "message", the key the original clients read.
type ErrorResponse struct {
	Message string `json:"message"`
	Code    string `json:"code"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Message: e.Message,
		Code:    e.Code,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors.
//
// The original backend answered uniqueness conflicts and bad credentials with
// 400, not 409/401; that contract is preserved here.
func MapErrorToHTTP(err error) *HTTPError {
	var conflict *ConflictError
	if errors.As(err, &conflict) {
		return NewHTTPError(http.StatusBadRequest, conflict.Error(), "DUPLICATE_"+strings.ToUpper(conflict.Field))
	}
	switch err {
	case ErrHotelNotFound:
		return NewHTTPError(http.StatusNotFound, err.Error(), "HOTEL_NOT_FOUND")
	case ErrUserNotFound:
		return NewHTTPError(http.StatusNotFound, err.Error(), "USER_NOT_FOUND")
	case ErrInvalidCredentials:
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INVALID_CREDENTIALS")
	case ErrMissingFields:
		return NewHTTPError(http.StatusBadRequest, err.Error(), "MISSING_FIELDS")
	case ErrInvalidAction:
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INVALID_ACTION")
	default:
		return NewHTTPError(http.StatusInternalServerError, "Internal Server Error", "INTERNAL_ERROR")
	}
}

// DuplicateKeyField classifies a MySQL duplicate-key failure (error 1062) and
// reports which user column collided. The signup existence check and insert are
// not atomic, so the loser of a concurrent signup race surfaces here.
func DuplicateKeyField(err error) (string, bool) {
	var mysqlErr *mysql.MySQLError
	if !errors.As(err, &mysqlErr) || mysqlErr.Number != 1062 {
		return "", false
	}
	msg := mysqlErr.Message
	switch {
	case strings.Contains(msg, "email"):
		return "email", true
	case strings.Contains(msg, "mobno"):
		return "mobno", true
	default:
		return "", false
	}
}
