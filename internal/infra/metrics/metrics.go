// Package metrics provides Prometheus metrics for the console's session lifecycle and route gate.
package metrics

import (
	"net/http"

	"github.com/ACIL0001/Mazad-click-backoffice-sub000/config"
	"github.com/ACIL0001/Mazad-click-backoffice-sub000/internal/domain/entity"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Login outcomes recorded by RecordLogin.
const (
	LoginSuccess         = "success"
	LoginInvalidInput    = "invalid_input"
	LoginUpstreamError   = "upstream_error"
	LoginInvalidResponse = "invalid_response"
	LoginPortalDenied    = "portal_denied"
	LoginStorageError    = "storage_error"
)

// Audit outcomes recorded by RecordAuditEvent.
const (
	AuditRecorded  = "recorded"
	AuditDuplicate = "duplicate"
	AuditRejected  = "rejected"
	AuditFailed    = "failed"
)

// Metrics holds the collectors of one console process. A nil or disabled
// Metrics records nothing.
type Metrics struct {
	enabled  bool
	registry *prometheus.Registry

	loginsTotal                    *prometheus.CounterVec
	gateDecisionsTotal             *prometheus.CounterVec
	gateEvaluationDuration         prometheus.Histogram
	subscriptionCheckFailuresTotal prometheus.Counter
	auditEventsTotal               *prometheus.CounterVec
}

// New creates the metrics of the process from configuration.
func New(cfg *config.Config) *Metrics {
	return NewWithRegistry(cfg.Metrics != nil && cfg.Metrics.Enabled, prometheus.NewRegistry())
}

// NewWithRegistry registers the collectors on registry when enabled.
func NewWithRegistry(enabled bool, registry *prometheus.Registry) *Metrics {
	m := &Metrics{enabled: enabled, registry: registry}
	if !enabled {
		return m
	}

	factory := promauto.With(registry)

	m.loginsTotal = factory.NewCounterVec(prometheus.CounterOpts{
		Name: "console_logins_total",
		Help: "Login attempts by outcome",
	}, []string{"result"})

	m.gateDecisionsTotal = factory.NewCounterVec(prometheus.CounterOpts{
		Name: "console_gate_decisions_total",
		Help: "Route gate decisions by kind and redirect target",
	}, []string{"decision", "redirect"})

	m.gateEvaluationDuration = factory.NewHistogram(prometheus.HistogramOpts{
		Name:    "console_gate_evaluation_duration_seconds",
		Help:    "Route gate evaluation duration in seconds",
		Buckets: prometheus.DefBuckets,
	})

	m.subscriptionCheckFailuresTotal = factory.NewCounter(prometheus.CounterOpts{
		Name: "console_subscription_check_failures_total",
		Help: "Subscription lookups that failed and were treated as inactive",
	})

	m.auditEventsTotal = factory.NewCounterVec(prometheus.CounterOpts{
		Name: "console_audit_events_total",
		Help: "Session events handled by the audit worker by type and outcome",
	}, []string{"type", "result"})

	return m
}

// Enabled reports whether collectors are registered.
func (m *Metrics) Enabled() bool {
	return m != nil && m.enabled
}

// RecordLogin records the outcome of one login attempt.
func (m *Metrics) RecordLogin(result string) {
	if !m.Enabled() {
		return
	}
	m.loginsTotal.WithLabelValues(result).Inc()
}

// RecordDecision records one gate decision and how long it took.
func (m *Metrics) RecordDecision(decision entity.Decision, durationSeconds float64) {
	if !m.Enabled() {
		return
	}
	m.gateDecisionsTotal.WithLabelValues(string(decision.Kind), decision.Redirect).Inc()
	m.gateEvaluationDuration.Observe(durationSeconds)
}

// RecordSubscriptionCheckFailure records a failed subscription lookup.
func (m *Metrics) RecordSubscriptionCheckFailure() {
	if !m.Enabled() {
		return
	}
	m.subscriptionCheckFailuresTotal.Inc()
}

// RecordAuditEvent records how the audit worker handled one session event.
func (m *Metrics) RecordAuditEvent(eventType, result string) {
	if !m.Enabled() {
		return
	}
	m.auditEventsTotal.WithLabelValues(eventType, result).Inc()
}

// Handler exposes the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
