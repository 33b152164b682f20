package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ServiceError codes. Every recoverable domain failure carries one of these.
const (
	CodeNotFound       = "NOT_FOUND"
	CodeForbidden      = "FORBIDDEN"
	CodeInvalidState   = "INVALID_STATE"
	CodeInvalidInput   = "INVALID_INPUT"
	CodeAlreadyExists  = "ALREADY_EXISTS"
	CodeAmountExceeded = "AMOUNT_EXCEEDED"
)

// ServiceError is a recoverable domain failure with a stable kind and message.
type ServiceError struct {
	Code    string
	Message string
}

func (e *ServiceError) Error() string {
	return e.Message
}

func NewServiceError(code, message string) error {
	return &ServiceError{Code: code, Message: message}
}

func NotFoundErr(message string) error       { return NewServiceError(CodeNotFound, message) }
func ForbiddenErr(message string) error      { return NewServiceError(CodeForbidden, message) }
func InvalidStateErr(message string) error   { return NewServiceError(CodeInvalidState, message) }
func InvalidInputErr(message string) error   { return NewServiceError(CodeInvalidInput, message) }
func AlreadyExistsErr(message string) error  { return NewServiceError(CodeAlreadyExists, message) }
func AmountExceededErr(message string) error { return NewServiceError(CodeAmountExceeded, message) }

// ErrorCode extracts the ServiceError code from err, or "" if err is not a
// ServiceError.
func ErrorCode(err error) string {
	var se *ServiceError
	if errors.As(err, &se) {
		return se.Code
	}
	return ""
}

// ErrorResponse defines the structure of error responses
type ErrorResponse struct {
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// ErrorHandler is a middleware to catch panics and return structured errors
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				Logger := GetLogger()
				Logger.Error("Unhandled panic", zap.Any("error", err))

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
	Logger := GetLogger()
	Logger.Warn(message, zap.String("details", details))
	c.JSON(status, ErrorResponse{Message: message, Details: details})
}

// RespondServiceError maps a domain error to an HTTP response. Unknown errors
// become a 500 without leaking internals.
func RespondServiceError(c *gin.Context, err error) {
	var se *ServiceError
	if !errors.As(err, &se) {
		GetLogger().Error("unexpected service error", zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Message: "Server error"})
		return
	}

	status := http.StatusBadRequest
	switch se.Code {
	case CodeNotFound:
		status = http.StatusNotFound
	case CodeForbidden:
		status = http.StatusForbidden
	case CodeInvalidState, CodeInvalidInput, CodeAlreadyExists, CodeAmountExceeded:
		status = http.StatusBadRequest
	}
	c.JSON(status, ErrorResponse{Message: se.Message})
}
