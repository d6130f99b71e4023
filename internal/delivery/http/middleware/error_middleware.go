package middleware

import (
	"log/slog"
	"net/http"

	deliverycontext "github.com/ACIL0001/Mazad-click-backoffice-sub000/internal/delivery/context"
	domainerrors "github.com/ACIL0001/Mazad-click-backoffice-sub000/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ErrorMiddleware renders errors returned by handlers.
type ErrorMiddleware struct {
	logger *slog.Logger
}

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

	resp := domainerrors.Response{RequestID: deliverycontext.GetRequestIDFromContext(c.Request().Context())}

	var appErr domainerrors.AppError
	var httpErr *echo.HTTPError
	switch {
	case errors.As(err, &appErr):
		resp.Code = appErr.HTTPCode()
		resp.Message = appErr.Message()
		resp.Error = &domainerrors.ErrorInfo{Code: appErr.ErrorCode()}
		// Upstream and storage details stay in the logs.
		if resp.Code < http.StatusInternalServerError {
			resp.Error.Details = appErr.Details()
		} else {
			m.log(c).Error("Request failed", slog.Any("error", err))
		}

	case errors.As(err, &httpErr):
		resp.Code = httpErr.Code
		resp.Message = http.StatusText(httpErr.Code)
		if msg, ok := httpErr.Message.(string); ok && msg != "" {
			resp.Message = msg
		}
		resp.Error = &domainerrors.ErrorInfo{Code: "HTTP_ERROR"}

	default:
		m.log(c).Error("Unhandled error",
			slog.Any("error", err),
			slog.String("path", c.Request().URL.Path),
			slog.String("method", c.Request().Method),
		)
		resp.Code = http.StatusInternalServerError
		resp.Message = domainerrors.ErrInternalError.Message()
		resp.Error = &domainerrors.ErrorInfo{Code: domainerrors.ErrInternalError.ErrorCode()}
	}

	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(resp.Code)

		return
	}
	_ = c.JSON(resp.Code, resp)
}

func (m *ErrorMiddleware) log(c echo.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger)
}
