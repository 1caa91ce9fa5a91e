package app

import (
	"context"
	"log"
	"log/slog"

	"astro-atlas/pkg/config"
	"astro-atlas/pkg/database"
	"astro-atlas/pkg/logging"

	"github.com/joho/godotenv"
)

// AppContext holds the shared application dependencies.
type AppContext struct {
	MongoDB          *database.MongoDB
	Redis            *database.Redis
	TelemetryManager *logging.TelemetryManager
	ServiceName      string
	shutdownFuncs    []func(context.Context) error
}

// InitializeApp loads .env, sets up telemetry/logging, and connects the
// databases. MongoDB is required; Redis is optional and the service keeps
// running without it.
func InitializeApp(serviceName string) (*AppContext, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file found or error loading it: %v", err)
	}

	ctx := context.Background()

	telemetryManager := logging.NewTelemetryManager(serviceName)
	if err := telemetryManager.Initialize(ctx); err != nil {
		log.Printf("Warning: Failed to initialize telemetry: %v", err)
	}

	mongodb, err := database.NewMongoDB(ctx, serviceName)
	if err != nil {
		slog.Error("Failed to connect to MongoDB", "error", err)
		return nil, err
	}

	redis, err := database.NewRedis(ctx)
	if err != nil {
		slog.Warn("Redis unavailable, continuing without it", "error", err)
		redis = nil
	}

	appCtx := &AppContext{
		MongoDB:          mongodb,
		Redis:            redis,
		TelemetryManager: telemetryManager,
		ServiceName:      serviceName,
	}

	appCtx.shutdownFuncs = append(appCtx.shutdownFuncs, mongodb.Close)
	if redis != nil {
		appCtx.shutdownFuncs = append(appCtx.shutdownFuncs, func(ctx context.Context) error {
			return redis.Close()
		})
	}
	appCtx.shutdownFuncs = append(appCtx.shutdownFuncs, telemetryManager.Shutdown)

	return appCtx, nil
}

// Shutdown closes all dependencies in registration order.
func (a *AppContext) Shutdown(ctx context.Context) error {
	slog.Info("Shutting down application", "service", a.ServiceName)

	for _, shutdown := range a.shutdownFuncs {
		if err := shutdown(ctx); err != nil {
			slog.Error("Error during shutdown", "error", err)
		}
	}

	slog.Info("Application shutdown completed", "service", a.ServiceName)
	return nil
}

// GetPort returns the listen port from the environment or the default.
func GetPort(defaultPort string) string {
	return config.GetEnv("PORT", defaultPort)
}
