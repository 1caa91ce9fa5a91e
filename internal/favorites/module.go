package favorites

import (
	"fmt"
	"log/slog"

	"astro-atlas/internal/favorites/routes"
	"astro-atlas/internal/favorites/services"
	"astro-atlas/pkg/database"
	"astro-atlas/pkg/module"

	"github.com/danielgtaylor/huma/v2"
)

// Module represents the favorites resource module
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
		BaseModule: module.NewBaseModule("favorites", db, redis),
		service:    service,
		routes:     routes.NewModule(service),
	}, nil
}

// RegisterRoutes implements module.Module
func (m *Module) RegisterRoutes(api huma.API) {
	slog.Info("Registering favorites routes")
	m.routes.RegisterRoutes(api)
}

// GetService returns the favorites service for use by other modules
func (m *Module) GetService() *services.Service {
	return m.service
}

var _ module.Module = (*Module)(nil)
