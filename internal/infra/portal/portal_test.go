package portal

import (
	"io"
	"log/slog"
	"testing"

	"github.com/ACIL0001/Mazad-click-backoffice-sub000/config"
	"github.com/ACIL0001/Mazad-click-backoffice-sub000/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	tests := []struct {
		port int
		want entity.PortalContext
	}{
		{port: 3002, want: entity.PortalContext{Port: 3002, Portal: entity.PortalSeller, StorageKey: "auth_seller"}},
		{port: 3003, want: entity.PortalContext{Port: 3003, Portal: entity.PortalAdmin, StorageKey: "auth_admin"}},
		{port: 3000, want: entity.PortalContext{Port: 3000, Portal: entity.PortalPublic, StorageKey: "auth"}},
		{port: 0, want: entity.PortalContext{Port: 0, Portal: entity.PortalPublic, StorageKey: "auth"}},
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	for _, tt := range tests {
		cfg := &config.Config{}
		cfg.HTTP.Port = tt.port

		assert.Equal(t, tt.want, New(cfg, logger))
	}
}
