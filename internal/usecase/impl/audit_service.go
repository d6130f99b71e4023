package impl

import (
	"context"
	"encoding/json"
	"log/slog"
	"path"
	"strings"

	"github.com/ACIL0001/Mazad-click-backoffice-sub000/config"
	deliverycontext "github.com/ACIL0001/Mazad-click-backoffice-sub000/internal/delivery/context"
	domainerrors "github.com/ACIL0001/Mazad-click-backoffice-sub000/internal/domain/errors"
	"github.com/ACIL0001/Mazad-click-backoffice-sub000/internal/domain/service"
	"github.com/ACIL0001/Mazad-click-backoffice-sub000/internal/errors"
	"github.com/ACIL0001/Mazad-click-backoffice-sub000/internal/infra/metrics"
	"github.com/ACIL0001/Mazad-click-backoffice-sub000/internal/usecase"

	"github.com/go-playground/validator/v10"
	"go.uber.org/fx"
)

const auditDateLayout = "2006-01-02"

// AuditServiceParams holds dependencies for the audit trail, injected by Fx.
type AuditServiceParams struct {
	fx.In

	Storage service.SessionStorage
	Config  *config.Config
	Metrics *metrics.Metrics
	Logger  *slog.Logger
}

// auditService implements the AuditUsecase interface on top of the key/value storage.
// Records are laid out as <prefix>/<portal>/<day>/<event id>.json.
type auditService struct {
	storage  service.SessionStorage
	prefix   string
	validate *validator.Validate
	metrics  *metrics.Metrics
	logger   *slog.Logger
}

// NewAuditService is the constructor for auditService.
func NewAuditService(params AuditServiceParams) usecase.AuditUsecase {
	prefix := "audit"
	if params.Config != nil && params.Config.Audit != nil && params.Config.Audit.Prefix != "" {
		prefix = params.Config.Audit.Prefix
	}

	return &auditService{
		storage:  params.Storage,
		prefix:   prefix,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		metrics:  params.Metrics,
		logger:   params.Logger,
	}
}

func (s *auditService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

func (s *auditService) Record(ctx context.Context, event *service.SessionEvent) (bool, error) {
	if event == nil {
		s.metrics.RecordAuditEvent("", metrics.AuditRejected)

		return false, domainerrors.ErrValidationFailed.WithDetails("empty session event")
	}
	if err := s.validate.Struct(event); err != nil {
		s.metrics.RecordAuditEvent(string(event.Type), metrics.AuditRejected)

		return false, domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	key := s.recordKey(event)

	// Pub/Sub delivers at least once.
	_, err := s.storage.Read(ctx, key)
	switch {
	case err == nil:
		s.metrics.RecordAuditEvent(string(event.Type), metrics.AuditDuplicate)
		s.log(ctx).Debug("Session event already recorded", slog.String("event_id", event.EventID))

		return false, nil
	case !errors.Is(err, service.ErrStorageKeyNotFound):
		s.metrics.RecordAuditEvent(string(event.Type), metrics.AuditFailed)

		return false, errors.Wrap(err, "failed to look up audit record")
	}

	data, err := json.Marshal(event)
	if err != nil {
		return false, errors.Wrap(err, "failed to encode audit record")
	}
	if err := s.storage.Write(ctx, key, data); err != nil {
		s.metrics.RecordAuditEvent(string(event.Type), metrics.AuditFailed)

		return false, errors.Wrap(err, "failed to write audit record")
	}

	s.metrics.RecordAuditEvent(string(event.Type), metrics.AuditRecorded)
	s.log(ctx).Info("Session event recorded",
		slog.String("event_id", event.EventID),
		slog.String("type", string(event.Type)),
		slog.String("portal", event.Portal),
		slog.String("user_id", event.UserID))

	return true, nil
}

func (s *auditService) recordKey(event *service.SessionEvent) string {
	return path.Join(
		s.prefix,
		strings.ToLower(event.Portal),
		event.OccurredAt.UTC().Format(auditDateLayout),
		event.EventID+".json",
	)
}
