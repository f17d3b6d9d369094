package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Error taxonomy codes. Every failure leaving a service carries one of these
// so callers can decide whether a retry is safe (only unavailable is).
const (
	CodeInvalidArgument = "invalidArgument"
	CodeConflict        = "conflict"
	CodeNotFound        = "notFound"
	CodeUnauthorized    = "unauthorized"
	CodeUnavailable     = "unavailable"
)

// ServiceError is a classified service-level failure.
type ServiceError struct {
	Code    string
	Message string
}

func (e *ServiceError) Error() string {
	return e.Code + ": " + e.Message
}

func NewInvalidArgument(msg string) error {
	return &ServiceError{Code: CodeInvalidArgument, Message: msg}
}

func NewConflict(msg string) error {
	return &ServiceError{Code: CodeConflict, Message: msg}
}

func NewNotFound(msg string) error {
	return &ServiceError{Code: CodeNotFound, Message: msg}
}

func NewUnauthorized(msg string) error {
	return &ServiceError{Code: CodeUnauthorized, Message: msg}
}

func NewUnavailable(msg string) error {
	return &ServiceError{Code: CodeUnavailable, Message: msg}
}

// ErrorCode extracts the taxonomy code from err, unwrapping as needed.
// Unclassified errors are treated as unavailable.
func ErrorCode(err error) string {
	var se *ServiceError
	if errors.As(err, &se) {
		return se.Code
	}
	return CodeUnavailable
}

// StatusForCode maps a taxonomy code to its HTTP status.
func StatusForCode(code string) int {
	switch code {
	case CodeInvalidArgument:
		return http.StatusBadRequest
	case CodeConflict:
		return http.StatusConflict
	case CodeNotFound:
		return http.StatusNotFound
	case CodeUnauthorized:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// ErrorResponse defines the structure of error responses
type ErrorResponse struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
	Details string `json:"details,omitempty"`
}

// JSONFromError writes a classified error as a JSON response.
func JSONFromError(c *gin.Context, err error) {
	code := ErrorCode(err)
	logger := GetLogger()
	if code == CodeUnavailable {
		logger.Error("Request failed", zap.Error(err))
	} else {
		logger.Warn("Request rejected", zap.String("code", code), zap.Error(err))
	}
	var se *ServiceError
	msg := "Internal server error"
	if errors.As(err, &se) {
		msg = se.Message
	}
	c.JSON(StatusForCode(code), ErrorResponse{Message: msg, Code: code})
}

// ErrorHandler is a middleware to catch panics and return structured errors
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				GetLogger().Error("Unhandled panic", zap.Any("error", err))

				c.JSON(http.StatusInternalServerError, ErrorResponse{
					Message: "Internal Server Error",
					Details: "An unexpected error occurred. Please try again later.",
				})
				c.Abort()
			}
		}()
		c.Next()
	}
}

// JSONError sends a standardized JSON error response
func JSONError(c *gin.Context, status int, message string, details string) {
	GetLogger().Warn(message, zap.String("details", details))
	c.JSON(status, ErrorResponse{Message: message, Details: details})
}
