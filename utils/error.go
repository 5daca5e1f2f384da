package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Error codes returned by the core services. The REST layer maps each code
// to an HTTP status; none of them is fatal to the process.
const (
	CodeValidation      = "ValidationError"
	CodeNotFound        = "ResourceNotFound"
	CodeConflict        = "ResourceConflict"
	CodeUnknownBadge    = "UnknownBadge"
	CodeNoActiveBooking = "NoActiveBooking"
	CodeInvalidCount    = "InvalidCount"
)

// ServiceError is a typed, recoverable failure from a core service.
type ServiceError struct {
	Code    string
	Message string
}

func (e *ServiceError) Error() string {
	return e.Code + ": " + e.Message
}

func NewValidationError(msg string) error {
	return &ServiceError{Code: CodeValidation, Message: msg}
}

func NewNotFoundError(msg string) error {
	return &ServiceError{Code: CodeNotFound, Message: msg}
}

func NewConflictError(msg string) error {
	return &ServiceError{Code: CodeConflict, Message: msg}
}

func NewUnknownBadgeError(msg string) error {
	return &ServiceError{Code: CodeUnknownBadge, Message: msg}
}

func NewNoActiveBookingError(msg string) error {
	return &ServiceError{Code: CodeNoActiveBooking, Message: msg}
}

func NewInvalidCountError(msg string) error {
	return &ServiceError{Code: CodeInvalidCount, Message: msg}
}

// ErrorResponse defines the structure of error responses
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// ErrorHandler is a middleware to catch panics and return structured errors
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				Logger := GetLogger()
				Logger.Error("Unhandled panic", zap.Any("error", err))

				c.JSON(http.StatusInternalServerError, ErrorResponse{
					Error:   "InternalError",
					Message: "An unexpected error occurred. Please try again later.",
				})
				c.Abort()
			}
		}()
		c.Next()
	}
}

// statusForCode maps the service error taxonomy onto HTTP statuses.
func statusForCode(code string) int {
	switch code {
	case CodeValidation, CodeConflict, CodeInvalidCount:
		return http.StatusBadRequest
	case CodeNotFound, CodeUnknownBadge, CodeNoActiveBooking:
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}

// RespondError writes the JSON error body for a service failure.
func RespondError(c *gin.Context, err error) {
	var svcErr *ServiceError
	if errors.As(err, &svcErr) {
		c.JSON(statusForCode(svcErr.Code), ErrorResponse{Error: svcErr.Code, Message: svcErr.Message})
		return
	}
	GetLogger().Error("internal error", zap.Error(err))
	c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "InternalError", Message: err.Error()})
}

// JSONError sends a standardized JSON error response
func JSONError(c *gin.Context, status int, code string, message string) {
	GetLogger().Warn(code, zap.String("message", message))
	c.JSON(status, ErrorResponse{Error: code, Message: message})
}
