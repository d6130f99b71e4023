// Package middleware holds echo middleware shared by every HTTP surface of the console.
package middleware

import (
	"log/slog"

	deliverycontext "github.com/ACIL0001/Mazad-click-backoffice-sub000/internal/delivery/context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// RequestIDMiddleware propagates X-Request-Id and attaches a request-scoped
// logger to the request context. The logger carries attrs in addition to the request ID.
type RequestIDMiddleware struct {
	logger *slog.Logger
	attrs  []any
}

func NewRequestIDMiddleware(logger *slog.Logger, attrs ...slog.Attr) *RequestIDMiddleware {
	args := make([]any, 0, len(attrs))
	for _, attr := range attrs {
		args = append(args, attr)
	}

	return &RequestIDMiddleware{
		logger: logger,
		attrs:  args,
	}
}

func (m *RequestIDMiddleware) Process(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := c.Request().Header.Get(deliverycontext.HeaderXRequestID)
		if requestID == "" {
			requestID = uuid.NewString()
		}

		deliverycontext.SetRequestID(c, requestID)
		c.Response().Header().Set(deliverycontext.HeaderXRequestID, requestID)

		reqLogger := m.logger.With(slog.String("request_id", requestID)).With(m.attrs...)

		ctx := deliverycontext.WithRequestID(c.Request().Context(), requestID)
		ctx = deliverycontext.WithLogger(ctx, reqLogger)
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}
