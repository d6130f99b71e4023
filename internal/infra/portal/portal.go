// Package portal resolves which console portal this process serves.
package portal

import (
	"log/slog"

	"github.com/ACIL0001/Mazad-click-backoffice-sub000/config"
	"github.com/ACIL0001/Mazad-click-backoffice-sub000/internal/domain/entity"
)

// New derives the portal once from the configured serving port. The value is
// provided as a singleton so every consumer sees the same portal.
func New(cfg *config.Config, logger *slog.Logger) entity.PortalContext {
	pc := entity.NewPortalContext(cfg.HTTP.Port)

	logger.Info("Portal resolved",
		slog.Int("port", pc.Port),
		slog.String("portal", pc.Portal.String()),
		slog.String("storage_key", pc.StorageKey),
		slog.Bool("admin_only", entity.PortalRequiresAdmin(pc.Portal)),
	)

	return pc
}
