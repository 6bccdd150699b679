// Package response writes the unified JSON envelope of the storefront API.
package response

import (
	"net/http"

	deliverycontext "storefront/internal/delivery/context"
	domainerrors "storefront/internal/domain/errors"

	"github.com/labstack/echo/v4"
)

// Response unified API response structure
type Response struct {
	Success bool                   `json:"success"`
	Code    int                    `json:"code"`    // HTTP status code
	Message string                 `json:"message"` // User-friendly message
	Data    any                    `json:"data,omitempty"`
	Meta    *domainerrors.MetaInfo `json:"meta,omitempty"`
}

// Success successful response
func Success(c echo.Context, statusCode int, data any, message string) error {
	if message == "" {
		message = http.StatusText(statusCode)
	}

	return c.JSON(statusCode, Response{
		Success: true,
		Code:    statusCode,
		Message: message,
		Data:    data,
		Meta:    &domainerrors.MetaInfo{RequestID: deliverycontext.GetRequestID(c)},
	})
}

// OK is Success with status 200.
func OK(c echo.Context, data any, message string) error {
	return Success(c, http.StatusOK, data, message)
}

// Accepted 202 response for work that continues in the background
func Accepted(c echo.Context, message string) error {
	return Success(c, http.StatusAccepted, nil, message)
}

// BindingError rejects a request body or parameters that could not be decoded.
func BindingError(err error) error {
	return domainerrors.ErrValidationFailed.WithDetails(err.Error())
}
