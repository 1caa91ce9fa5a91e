package module

import (
	"context"
	"log/slog"
	"sync"

	"astro-atlas/pkg/database"

	"github.com/danielgtaylor/huma/v2"
)

// Module is implemented by every resource module the server mounts.
type Module interface {
	// RegisterRoutes registers the module's operations on the shared API.
	RegisterRoutes(api huma.API)

	// StartBackgroundTasks starts any background processing for this module
	StartBackgroundTasks(ctx context.Context)

	// Stop gracefully stops the module and its background tasks
	Stop()

	// Name returns the module name for logging and identification
	Name() string
}

// BaseModule provides the shared dependencies and stop plumbing.
type BaseModule struct {
	name     string
	mongodb  *database.MongoDB
	redis    *database.Redis
	stopCh   chan struct{}
	stopOnce sync.Once
}

func NewBaseModule(name string, mongodb *database.MongoDB, redis *database.Redis) *BaseModule {
	return &BaseModule{
		name:    name,
		mongodb: mongodb,
		redis:   redis,
		stopCh:  make(chan struct{}),
	}
}

func (b *BaseModule) Name() string {
	return b.name
}

func (b *BaseModule) MongoDB() *database.MongoDB {
	return b.mongodb
}

func (b *BaseModule) Redis() *database.Redis {
	return b.redis
}

// StopChannel returns the channel closed when Stop is called.
func (b *BaseModule) StopChannel() <-chan struct{} {
	return b.stopCh
}

// Stop closes the stop channel exactly once.
func (b *BaseModule) Stop() {
	b.stopOnce.Do(func() {
		close(b.stopCh)
		slog.Info("Module stopped", "module", b.name)
	})
}

// StartBackgroundTasks is a no-op default; modules with background work
// override it.
func (b *BaseModule) StartBackgroundTasks(ctx context.Context) {
}
