package services

import (
	"context"
	"errors"
	"fmt"

	"astro-atlas/internal/collections/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	// ErrNotFound is returned when an identifier does not resolve to a document.
	ErrNotFound = errors.New("collection not found")

	// ErrInvalidID is returned when an identifier is not a valid ObjectID.
	ErrInvalidID = errors.New("invalid collection identifier")
)

// Repository handles database operations for collections
type Repository struct {
	collection *mongo.Collection
}

func NewRepository(db *mongo.Database) *Repository {
	return &Repository{collection: db.Collection(models.CollectionsCollection)}
}

// List returns every collection in natural order. An empty store yields an
// empty slice, never nil.
func (r *Repository) List(ctx context.Context) ([]models.Collection, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to list collections: %w", err)
	}
	defer cursor.Close(ctx)

	collections := []models.Collection{}
	if err := cursor.All(ctx, &collections); err != nil {
		return nil, fmt.Errorf("failed to decode collections: %w", err)
	}
	if collections == nil {
		collections = []models.Collection{}
	}
	return collections, nil
}

// Create inserts one document and fills in its generated identifier.
func (r *Repository) Create(ctx context.Context, c *models.Collection) error {
	result, err := r.collection.InsertOne(ctx, c)
	if err != nil {
		return fmt.Errorf("failed to create collection: %w", err)
	}
	c.ID = result.InsertedID.(primitive.ObjectID)
	return nil
}

// Update applies a partial field set and returns the updated document, or
// ErrNotFound when the identifier does not resolve. Last write wins.
func (r *Repository) Update(ctx context.Context, id primitive.ObjectID, updates bson.M) (*models.Collection, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated models.Collection
	err := r.collection.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": updates}, opts).Decode(&updated)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update collection: %w", err)
	}
	return &updated, nil
}

// Delete removes one document. A zero deleted count is reported as
// ErrNotFound rather than silent success.
func (r *Repository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete collection: %w", err)
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
