// Package response writes the unified JSON envelope of the console API.
package response

import (
	"net/http"

	deliverycontext "github.com/ACIL0001/Mazad-click-backoffice-sub000/internal/delivery/context"
	domainerrors "github.com/ACIL0001/Mazad-click-backoffice-sub000/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// Response is the envelope of every JSON answer.
type Response struct {
	Success   bool                    `json:"success"`
	Code      int                     `json:"code"`
	Message   string                  `json:"message"`
	RequestID string                  `json:"request_id,omitempty"`
	Data      any                     `json:"data,omitempty"`
	Error     *domainerrors.ErrorInfo `json:"error,omitempty"`
}

func requestID(c echo.Context) string {
	return deliverycontext.GetRequestIDFromContext(c.Request().Context())
}

// Success writes data with a 2xx status.
func Success(c echo.Context, statusCode int, data any, message string) error {
	if message == "" {
		message = http.StatusText(statusCode)
	}

	return c.JSON(statusCode, Response{
		Success:   true,
		Code:      statusCode,
		Message:   message,
		RequestID: requestID(c),
		Data:      data,
	})
}

func Error(c echo.Context, statusCode int, errorCode, message, details string) error {
	if message == "" {
		message = http.StatusText(statusCode)
	}

	return c.JSON(statusCode, Response{
		Code:      statusCode,
		Message:   message,
		RequestID: requestID(c),
		Error: &domainerrors.ErrorInfo{
			Code:    errorCode,
			Details: details,
		},
	})
}

// BindingError answers 400 for a body that could not be decoded.
func BindingError(c echo.Context, message string) error {
	return Error(c, http.StatusBadRequest, "INVALID_INPUT", message, "")
}

// ValidationError answers 400 with the validator's message as details.
func ValidationError(c echo.Context, err error) error {
	return Error(c, http.StatusBadRequest, domainerrors.ErrValidationFailed.ErrorCode(),
		domainerrors.ErrValidationFailed.Message(), err.Error())
}

// HandleAppError writes client-facing AppErrors directly and leaves everything
// else, including 5xx AppErrors, to the echo error handler.
func HandleAppError(c echo.Context, err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) && appErr.HTTPCode() < http.StatusInternalServerError {
		return Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), appErr.Details())
	}

	return err
}
