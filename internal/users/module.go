package users

import (
	"context"
	"fmt"
	"log/slog"

	"astro-atlas/internal/users/routes"
	"astro-atlas/internal/users/services"
	"astro-atlas/pkg/database"
	"astro-atlas/pkg/module"

	"github.com/danielgtaylor/huma/v2"
)

// Module represents the users resource module
type Module struct {
	*module.BaseModule
	service *services.Service
	routes  *routes.Module
}

func NewModule(db *database.MongoDB, redis *database.Redis) (*Module, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is required")
	}

	service := services.NewService(db.Database)

	return &Module{
		BaseModule: module.NewBaseModule("users", db, redis),
		service:    service,
		routes:     routes.NewModule(service),
	}, nil
}

// Initialize declares database indexes. The unique email index is the only
// uniqueness enforcement the users resource has.
func (m *Module) Initialize(ctx context.Context) error {
	if err := m.service.InitializeModule(ctx); err != nil {
		return fmt.Errorf("failed to initialize users service: %w", err)
	}
	return nil
}

// RegisterRoutes implements module.Module
func (m *Module) RegisterRoutes(api huma.API) {
	slog.Info("Registering user routes")
	m.routes.RegisterRoutes(api)
}

// GetService returns the users service for use by other modules
func (m *Module) GetService() *services.Service {
	return m.service
}

var _ module.Module = (*Module)(nil)
