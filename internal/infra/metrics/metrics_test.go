package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ACIL0001/Mazad-click-backoffice-sub000/internal/domain/entity"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_Disabled(t *testing.T) {
	m := NewWithRegistry(false, prometheus.NewRegistry())

	assert.False(t, m.Enabled())
	assert.NotPanics(t, func() {
		m.RecordLogin(LoginSuccess)
		m.RecordDecision(entity.Allow("/dashboard"), 0.01)
		m.RecordSubscriptionCheckFailure()
		m.RecordAuditEvent("login", AuditRecorded)
	})
}

func TestMetrics_Nil(t *testing.T) {
	var m *Metrics

	assert.False(t, m.Enabled())
	assert.NotPanics(t, func() {
		m.RecordLogin(LoginPortalDenied)
		m.RecordSubscriptionCheckFailure()
	})
}

func TestMetrics_RecordsCounters(t *testing.T) {
	m := NewWithRegistry(true, prometheus.NewRegistry())

	m.RecordLogin(LoginSuccess)
	m.RecordLogin(LoginSuccess)
	m.RecordLogin(LoginPortalDenied)
	m.RecordDecision(entity.RedirectTo("/dashboard", entity.PathSubscriptionPlans), 0.02)
	m.RecordSubscriptionCheckFailure()
	m.RecordAuditEvent("logout", AuditRecorded)
	m.RecordAuditEvent("logout", AuditDuplicate)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.loginsTotal.WithLabelValues(LoginSuccess)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.loginsTotal.WithLabelValues(LoginPortalDenied)))
	assert.Equal(t, 1.0, testutil.ToFloat64(
		m.gateDecisionsTotal.WithLabelValues(string(entity.DecisionRedirect), entity.PathSubscriptionPlans)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.subscriptionCheckFailuresTotal))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.auditEventsTotal.WithLabelValues("logout", AuditDuplicate)))
}

func TestMetrics_Handler(t *testing.T) {
	m := NewWithRegistry(true, prometheus.NewRegistry())
	m.RecordLogin(LoginSuccess)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "console_logins_total")
}
