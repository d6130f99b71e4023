package handler

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	deliverycontext "github.com/ACIL0001/Mazad-click-backoffice-sub000/internal/delivery/context"
	"github.com/ACIL0001/Mazad-click-backoffice-sub000/internal/delivery/http/middleware"
	"github.com/ACIL0001/Mazad-click-backoffice-sub000/internal/delivery/http/response"
	"github.com/ACIL0001/Mazad-click-backoffice-sub000/internal/domain/entity"
	"github.com/ACIL0001/Mazad-click-backoffice-sub000/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// AccessHandlerParams holds dependencies for AccessHandler, injected by Fx.
type AccessHandlerParams struct {
	fx.In

	AccessUC usecase.AccessUsecase
	Logger   *slog.Logger
}

// AccessHandler exposes the route gate over HTTP.
type AccessHandler struct {
	accessUC usecase.AccessUsecase
	logger   *slog.Logger
}

func NewAccessHandler(params AccessHandlerParams) *AccessHandler {
	return &AccessHandler{
		accessUC: params.AccessUC,
		logger:   params.Logger,
	}
}

// AccessQuery is the query of GET /access.
type AccessQuery struct {
	Route string `query:"route" validate:"required"`
}

// Evaluate answers the gate decision for ?route=. LOADING answers 202 so the
// client polls again once initialization completes.
func (h *AccessHandler) Evaluate(c echo.Context) error {
	var q AccessQuery
	if err := c.Bind(&q); err != nil {
		return response.BindingError(c, "Invalid access query")
	}
	if err := c.Validate(&q); err != nil {
		return response.ValidationError(c, err)
	}

	decision, err := middleware.EvaluateCurrent(c.Request().Context(), h.accessUC, q.Route)
	if err != nil {
		return response.HandleAppError(c, errors.WithStack(err))
	}

	status := http.StatusOK
	if decision.Kind == entity.DecisionLoading {
		status = http.StatusAccepted
	}

	return response.Success(c, status, decision, "")
}

// Watch streams a server-sent event for every fresh decision on ?route= until
// the client disconnects.
func (h *AccessHandler) Watch(c echo.Context) error {
	var q AccessQuery
	if err := c.Bind(&q); err != nil {
		return response.BindingError(c, "Invalid access query")
	}
	if err := c.Validate(&q); err != nil {
		return response.ValidationError(c, err)
	}

	res := c.Response()
	res.Header().Set(echo.HeaderContentType, "text/event-stream")
	res.Header().Set("Cache-Control", "no-cache")
	res.Header().Set("Connection", "keep-alive")
	res.WriteHeader(http.StatusOK)
	res.Flush()

	ctx := c.Request().Context()
	logger := deliverycontext.GetLoggerOrDefault(ctx, h.logger)
	h.accessUC.Watch(ctx, q.Route, func(decision entity.Decision) {
		data, err := json.Marshal(decision)
		if err != nil {
			logger.Error("Failed to encode decision", slog.Any("error", err))

			return
		}
		if _, err := fmt.Fprintf(res, "event: decision\ndata: %s\n\n", data); err != nil {
			logger.Debug("Decision stream closed", slog.Any("error", err))

			return
		}
		res.Flush()
	})

	return nil
}

// Protected is served behind the gate middleware and echoes the admitting decision.
func (h *AccessHandler) Protected(c echo.Context) error {
	decision, ok := deliverycontext.GetDecision(c)
	if !ok {
		return errors.New("protected route served without a gate decision")
	}

	return response.Success(c, http.StatusOK, decision, "")
}
