package worker

import (
	"bytes"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ACIL0001/Mazad-click-backoffice-sub000/config"
	"github.com/ACIL0001/Mazad-click-backoffice-sub000/internal/delivery/worker/handler"
	"github.com/ACIL0001/Mazad-click-backoffice-sub000/internal/infra/metrics"
	mockUC "github.com/ACIL0001/Mazad-click-backoffice-sub000/internal/mocks/usecase"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"go.uber.org/fx/fxtest"
)

func newTestParams(t *testing.T, metricsEnabled bool) ServerParams {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.Config{}
	cfg.HTTP.MaxRequestBodySize = "1K"

	return ServerParams{
		Lc:      fxtest.NewLifecycle(t),
		Cfg:     cfg,
		Logger:  logger,
		Metrics: metrics.NewWithRegistry(metricsEnabled, prometheus.NewRegistry()),
		PushHandler: handler.NewPushHandler(handler.PushHandlerParams{
			Config: cfg,
			Logger: logger,
			Audit:  mockUC.NewMockAuditUsecase(t),
		}),
	}
}

func TestWorkerEcho_Routes(t *testing.T) {
	e := NewEcho(newTestParams(t, true))

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("X-Request-Id"))

	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	// a malformed push is rejected before reaching the audit trail
	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader("{"))
	req.Header.Set("Content-Type", "application/json")
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestWorkerEcho_BodyLimit(t *testing.T) {
	e := NewEcho(newTestParams(t, false))

	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(strings.Repeat("x", 4096)))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)

	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestWorkerEcho_AccessLogWithoutDebug(t *testing.T) {
	var buf bytes.Buffer
	params := newTestParams(t, false)
	params.Logger = slog.New(slog.NewJSONHandler(&buf, nil))
	e := NewEcho(params)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.False(t, params.Cfg.Env.Debug)
	assert.Contains(t, buf.String(), "/health")
	assert.Contains(t, buf.String(), rec.Header().Get("X-Request-Id"))
}
