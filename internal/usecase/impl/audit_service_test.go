package impl

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/ACIL0001/Mazad-click-backoffice-sub000/config"
	domainerrors "github.com/ACIL0001/Mazad-click-backoffice-sub000/internal/domain/errors"
	"github.com/ACIL0001/Mazad-click-backoffice-sub000/internal/domain/service"
	"github.com/ACIL0001/Mazad-click-backoffice-sub000/internal/infra/metrics"
	mockSvc "github.com/ACIL0001/Mazad-click-backoffice-sub000/internal/mocks/service"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newAuditEvent() *service.SessionEvent {
	return &service.SessionEvent{
		RequestID:  "req-1",
		EventID:    "5f0c2a52-1d8e-4c61-9a53-2b4fbc1d7e11",
		Type:       service.SessionEventLogin,
		Portal:     "ADMIN",
		UserID:     "admin-1",
		Role:       "ADMIN",
		OccurredAt: time.Date(2026, 3, 15, 0, 30, 0, 0, time.FixedZone("CET", 3600)),
	}
}

func newAuditService(storage service.SessionStorage, prefix string) *auditService {
	svc := NewAuditService(AuditServiceParams{
		Storage: storage,
		Config:  &config.Config{Audit: &config.AuditConfig{Prefix: prefix}},
		Metrics: metrics.NewWithRegistry(true, prometheus.NewRegistry()),
		Logger:  testLogger(),
	})

	return svc.(*auditService)
}

func TestAuditService_Record(t *testing.T) {
	ctx := context.Background()
	backing := newMemStorage(t)
	svc := newAuditService(backing, "audit")
	event := newAuditEvent()

	recorded, err := svc.Record(ctx, event)
	require.NoError(t, err)
	assert.True(t, recorded)

	// the day is taken in UTC
	data, err := backing.Read(ctx, "audit/admin/2026-03-14/5f0c2a52-1d8e-4c61-9a53-2b4fbc1d7e11.json")
	require.NoError(t, err)

	var stored service.SessionEvent
	require.NoError(t, json.Unmarshal(data, &stored))
	assert.Equal(t, event.EventID, stored.EventID)
	assert.Equal(t, event.UserID, stored.UserID)
	assert.True(t, event.OccurredAt.Equal(stored.OccurredAt))
}

func TestAuditService_RecordRedeliveryIsIgnored(t *testing.T) {
	ctx := context.Background()
	storageMock := mockSvc.NewMockSessionStorage(t)
	svc := newAuditService(storageMock, "trail")
	event := newAuditEvent()
	key := "trail/admin/2026-03-14/" + event.EventID + ".json"

	storageMock.EXPECT().Read(ctx, key).Return(nil, service.ErrStorageKeyNotFound).Once()
	storageMock.EXPECT().Write(ctx, key, mock.Anything).Return(nil).Once()
	storageMock.EXPECT().Read(ctx, key).Return([]byte(`{}`), nil).Once()

	recorded, err := svc.Record(ctx, event)
	require.NoError(t, err)
	assert.True(t, recorded)

	recorded, err = svc.Record(ctx, event)
	require.NoError(t, err)
	assert.False(t, recorded)
}

func TestAuditService_RecordRejectsMalformedEvents(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(e *service.SessionEvent)
	}{
		{name: "missing event id", mutate: func(e *service.SessionEvent) { e.EventID = "" }},
		{name: "event id is not a uuid", mutate: func(e *service.SessionEvent) { e.EventID = "../../auth_admin" }},
		{name: "unknown type", mutate: func(e *service.SessionEvent) { e.Type = "password_reset" }},
		{name: "unknown portal", mutate: func(e *service.SessionEvent) { e.Portal = "PARTNER" }},
		{name: "missing timestamp", mutate: func(e *service.SessionEvent) { e.OccurredAt = time.Time{} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			storageMock := mockSvc.NewMockSessionStorage(t)
			svc := newAuditService(storageMock, "audit")
			event := newAuditEvent()
			tt.mutate(event)

			recorded, err := svc.Record(context.Background(), event)
			require.ErrorIs(t, err, domainerrors.ErrValidationFailed)
			assert.False(t, recorded)
		})
	}

	t.Run("nil event", func(t *testing.T) {
		svc := newAuditService(mockSvc.NewMockSessionStorage(t), "audit")

		_, err := svc.Record(context.Background(), nil)
		require.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})
}

func TestAuditService_RecordStorageFailure(t *testing.T) {
	ctx := context.Background()
	event := newAuditEvent()
	storageErr := errors.New("bucket unavailable")

	t.Run("lookup", func(t *testing.T) {
		storageMock := mockSvc.NewMockSessionStorage(t)
		storageMock.EXPECT().Read(ctx, mock.Anything).Return(nil, storageErr).Once()

		_, err := newAuditService(storageMock, "audit").Record(ctx, event)
		require.ErrorIs(t, err, storageErr)
		assert.NotErrorIs(t, err, domainerrors.ErrValidationFailed)
	})

	t.Run("write", func(t *testing.T) {
		storageMock := mockSvc.NewMockSessionStorage(t)
		storageMock.EXPECT().Read(ctx, mock.Anything).Return(nil, service.ErrStorageKeyNotFound).Once()
		storageMock.EXPECT().Write(ctx, mock.Anything, mock.Anything).Return(storageErr).Once()

		recorded, err := newAuditService(storageMock, "audit").Record(ctx, event)
		require.ErrorIs(t, err, storageErr)
		assert.False(t, recorded)
	})
}
