package analytics

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"astro-atlas/internal/analytics/routes"
	"astro-atlas/internal/analytics/services"
	favservices "astro-atlas/internal/favorites/services"
	objservices "astro-atlas/internal/objects/services"
	"astro-atlas/pkg/config"
	"astro-atlas/pkg/database"
	"astro-atlas/pkg/module"

	"github.com/danielgtaylor/huma/v2"
	"github.com/robfig/cron/v3"
)

// Module represents the analytics module. Besides serving derived
// statistics it owns the activity log and its retention job.
type Module struct {
	*module.BaseModule
	service *services.Service
	routes  *routes.Module
	cron    *cron.Cron
}

func NewModule(db *database.MongoDB, redis *database.Redis, objects *objservices.Service, favorites *favservices.Service) (*Module, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is required")
	}

	service := services.NewService(db.Database, objects, favorites, redis)

	return &Module{
		BaseModule: module.NewBaseModule("analytics", db, redis),
		service:    service,
		routes:     routes.NewModule(service),
	}, nil
}

// Initialize declares log indexes.
func (m *Module) Initialize(ctx context.Context) error {
	if err := m.service.InitializeModule(ctx); err != nil {
		return fmt.Errorf("failed to initialize analytics service: %w", err)
	}
	return nil
}

// RegisterRoutes implements module.Module
func (m *Module) RegisterRoutes(api huma.API) {
	slog.Info("Registering analytics routes")
	m.routes.RegisterRoutes(api)
}

// StartBackgroundTasks runs the daily activity-log pruning job. Retention is
// configurable via LOG_RETENTION_DAYS.
func (m *Module) StartBackgroundTasks(ctx context.Context) {
	retention := time.Duration(config.GetIntEnv("LOG_RETENTION_DAYS", 30)) * 24 * time.Hour

	m.cron = cron.New()
	_, err := m.cron.AddFunc("@daily", func() {
		pruneCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		removed, err := m.service.PruneLogs(pruneCtx, retention)
		if err != nil {
			slog.Error("Activity log pruning failed", "error", err)
			return
		}
		slog.Info("Pruned activity logs", "removed", removed, "retention", retention)
	})
	if err != nil {
		slog.Error("Failed to schedule log pruning", "error", err)
		return
	}
	m.cron.Start()

	go func() {
		select {
		case <-ctx.Done():
		case <-m.StopChannel():
		}
		m.cron.Stop()
	}()
}

// GetService returns the analytics service for use by other modules
func (m *Module) GetService() *services.Service {
	return m.service
}

var _ module.Module = (*Module)(nil)
