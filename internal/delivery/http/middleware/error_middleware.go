package middleware

import (
	"fmt"
	"log/slog"
	"net/http"

	deliverycontext "storefront/internal/delivery/context"
	domainerrors "storefront/internal/domain/errors"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ErrorMiddleware renders every handler error through the unified envelope.
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

// HandleHTTPError is installed as echo's HTTPErrorHandler.
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	body := m.toResponse(err, c)
	body.Meta = &domainerrors.MetaInfo{RequestID: deliverycontext.GetRequestID(c)}

	if writeErr := c.JSON(body.Code, body); writeErr != nil {
		m.logger.Warn("Failed to write error response", slog.Any("error", writeErr))
	}
}

func (m *ErrorMiddleware) toResponse(err error, c echo.Context) domainerrors.Response {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return fromAppError(appErr)
	}

	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		return fromAppError(domainerrors.ErrValidationFailed.WithDetails(describe(validationErrs)))
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		if httpErr.Code == http.StatusNotFound {
			return fromAppError(domainerrors.ErrNotFound.WithDetails(c.Request().URL.Path))
		}

		message := fmt.Sprint(httpErr.Message)

		return domainerrors.Response{
			Code:    httpErr.Code,
			Message: message,
			Error: &domainerrors.ErrorInfo{
				Code:    "HTTP_ERROR",
				Details: message,
			},
		}
	}

	deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger).Error("Unhandled error",
		slog.Any("error", err),
		slog.String("path", c.Request().URL.Path),
		slog.String("method", c.Request().Method),
	)

	return fromAppError(domainerrors.ErrInternalError)
}

func fromAppError(appErr domainerrors.AppError) domainerrors.Response {
	return domainerrors.Response{
		Code:    appErr.HTTPCode(),
		Message: appErr.Message(),
		Error: &domainerrors.ErrorInfo{
			Code:    appErr.ErrorCode(),
			Details: appErr.Details(),
		},
	}
}

// describe maps the first failing field to the message the storefront forms show.
func describe(errs validator.ValidationErrors) string {
	if len(errs) == 0 {
		return ""
	}

	fe := errs[0]
	switch fe.Tag() {
	case "email":
		return domainerrors.ErrInvalidEmail.Message()
	case "min":
		if fe.Field() == "Password" {
			return domainerrors.ErrPasswordTooShort.Message()
		}
	case "postalcode":
		return domainerrors.ErrInvalidPostalCode.Message()
	case "required":
		if fe.Field() == "FirstName" || fe.Field() == "LastName" {
			return domainerrors.ErrFullNameRequired.Message()
		}
	}

	return fmt.Sprintf("%s failed the %q rule", fe.Field(), fe.Tag())
}
