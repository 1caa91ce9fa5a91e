package objects

import (
	"fmt"
	"log/slog"

	"astro-atlas/internal/objects/routes"
	"astro-atlas/internal/objects/services"
	"astro-atlas/pkg/database"
	"astro-atlas/pkg/module"

	"github.com/danielgtaylor/huma/v2"
)

// Module represents the celestial-object catalog module
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
		BaseModule: module.NewBaseModule("objects", db, redis),
		service:    service,
		routes:     routes.NewModule(service),
	}, nil
}

// RegisterRoutes implements module.Module
func (m *Module) RegisterRoutes(api huma.API) {
	slog.Info("Registering celestial object routes")
	m.routes.RegisterRoutes(api)
}

// GetService returns the catalog service for use by other modules
func (m *Module) GetService() *services.Service {
	return m.service
}

var _ module.Module = (*Module)(nil)
