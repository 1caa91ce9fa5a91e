package database

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"astro-atlas/pkg/config"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.opentelemetry.io/contrib/instrumentation/go.mongodb.org/mongo-driver/mongo/otelmongo"
)

type MongoDB struct {
	Client   *mongo.Client
	Database *mongo.Database
}

// NewMongoDB connects using MONGODB_URI and selects the database named in the
// URI path, falling back to defaultDB when the URI carries none.
func NewMongoDB(ctx context.Context, defaultDB string) (*MongoDB, error) {
	uri := config.GetEnv("MONGODB_URI", "mongodb://localhost:27017/"+defaultDB)

	opts := options.Client().ApplyURI(uri)
	if config.GetBoolEnv("ENABLE_TELEMETRY", false) {
		opts.SetMonitor(otelmongo.NewMonitor())
	}

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	dbName := databaseNameFromURI(uri, defaultDB)
	slog.Info("Connected to MongoDB", "database", dbName)

	return &MongoDB{
		Client:   client,
		Database: client.Database(dbName),
	}, nil
}

func (m *MongoDB) Close(ctx context.Context) error {
	return m.Client.Disconnect(ctx)
}

func (m *MongoDB) Collection(name string) *mongo.Collection {
	return m.Database.Collection(name)
}

func (m *MongoDB) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	return m.Client.Ping(ctx, nil)
}

// databaseNameFromURI extracts the path segment of a mongodb:// or
// mongodb+srv:// URI. Query parameters are ignored.
func databaseNameFromURI(uri, fallback string) string {
	rest := uri
	if idx := strings.Index(rest, "://"); idx >= 0 {
		rest = rest[idx+3:]
	}
	idx := strings.Index(rest, "/")
	if idx < 0 {
		return fallback
	}
	rest = rest[idx+1:]
	if idx := strings.Index(rest, "?"); idx >= 0 {
		rest = rest[:idx]
	}
	if rest == "" {
		return fallback
	}
	return rest
}
