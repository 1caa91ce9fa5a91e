package services

import (
	"context"
	"fmt"
	"time"

	"astro-atlas/internal/analytics/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Repository handles database operations for activity logs
type Repository struct {
	collection *mongo.Collection
}

func NewRepository(db *mongo.Database) *Repository {
	return &Repository{collection: db.Collection(models.LogsCollection)}
}

// CreateIndexes declares the timestamp index the pruning job deletes by.
func (r *Repository) CreateIndexes(ctx context.Context) error {
	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "timestamp", Value: -1}}},
	}
	_, err := r.collection.Indexes().CreateMany(ctx, indexes)
	return err
}

// Insert records one activity entry.
func (r *Repository) Insert(ctx context.Context, entry *models.ActivityLog) error {
	entry.Timestamp = time.Now()

	result, err := r.collection.InsertOne(ctx, entry)
	if err != nil {
		return fmt.Errorf("failed to insert activity log: %w", err)
	}
	entry.ID = result.InsertedID.(primitive.ObjectID)
	return nil
}

// List returns the most recent entries, newest first.
func (r *Repository) List(ctx context.Context, limit int) ([]models.ActivityLog, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "timestamp", Value: -1}}).
		SetLimit(int64(limit))

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list activity logs: %w", err)
	}
	defer cursor.Close(ctx)

	logs := []models.ActivityLog{}
	if err := cursor.All(ctx, &logs); err != nil {
		return nil, fmt.Errorf("failed to decode activity logs: %w", err)
	}
	if logs == nil {
		logs = []models.ActivityLog{}
	}
	return logs, nil
}

// PruneBefore deletes entries older than the cutoff and reports how many
// were removed.
func (r *Repository) PruneBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	result, err := r.collection.DeleteMany(ctx, bson.M{"timestamp": bson.M{"$lt": cutoff}})
	if err != nil {
		return 0, fmt.Errorf("failed to prune activity logs: %w", err)
	}
	return result.DeletedCount, nil
}
