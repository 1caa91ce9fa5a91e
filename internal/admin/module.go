package admin

import (
	"fmt"
	"log/slog"

	"astro-atlas/internal/admin/routes"
	"astro-atlas/internal/admin/services"
	anservices "astro-atlas/internal/analytics/services"
	objservices "astro-atlas/internal/objects/services"
	userservices "astro-atlas/internal/users/services"
	"astro-atlas/pkg/database"
	"astro-atlas/pkg/module"

	"github.com/danielgtaylor/huma/v2"
)

// Module represents the admin module. It owns no collections of its own; all
// state lives with the user, catalog and analytics modules.
type Module struct {
	*module.BaseModule
	service *services.Service
	routes  *routes.Module
}

func NewModule(db *database.MongoDB, redis *database.Redis, users *userservices.Service, objects *objservices.Service, analytics *anservices.Service) (*Module, error) {
	if users == nil || objects == nil || analytics == nil {
		return nil, fmt.Errorf("admin module requires user, object and analytics services")
	}

	service := services.NewService(users, objects, analytics)

	return &Module{
		BaseModule: module.NewBaseModule("admin", db, redis),
		service:    service,
		routes:     routes.NewModule(service),
	}, nil
}

// RegisterRoutes implements module.Module
func (m *Module) RegisterRoutes(api huma.API) {
	slog.Info("Registering admin routes")
	m.routes.RegisterRoutes(api)
}

var _ module.Module = (*Module)(nil)
