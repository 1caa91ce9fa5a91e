package services

import (
	"context"
	"errors"
	"fmt"

	"astro-atlas/internal/objects/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	// ErrNotFound is returned when an identifier does not resolve to a document.
	ErrNotFound = errors.New("celestial object not found")

	// ErrInvalidID is returned when an identifier is not a valid ObjectID.
	ErrInvalidID = errors.New("invalid object identifier")
)

// Repository handles database operations for catalog objects
type Repository struct {
	collection *mongo.Collection
}

func NewRepository(db *mongo.Database) *Repository {
	return &Repository{collection: db.Collection(models.ObjectsCollection)}
}

// List returns every catalog object in natural order, as an empty slice when
// the store is empty.
func (r *Repository) List(ctx context.Context) ([]models.CelestialObject, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to list celestial objects: %w", err)
	}
	defer cursor.Close(ctx)

	objects := []models.CelestialObject{}
	if err := cursor.All(ctx, &objects); err != nil {
		return nil, fmt.Errorf("failed to decode celestial objects: %w", err)
	}
	if objects == nil {
		objects = []models.CelestialObject{}
	}
	return objects, nil
}

// GetByID returns one document or ErrNotFound.
func (r *Repository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.CelestialObject, error) {
	var obj models.CelestialObject
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&obj)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get celestial object: %w", err)
	}
	return &obj, nil
}

// Create inserts one document and fills in its generated identifier.
func (r *Repository) Create(ctx context.Context, obj *models.CelestialObject) error {
	result, err := r.collection.InsertOne(ctx, obj)
	if err != nil {
		return fmt.Errorf("failed to create celestial object: %w", err)
	}
	obj.ID = result.InsertedID.(primitive.ObjectID)
	return nil
}

// Update applies a partial field set and returns the updated document or
// ErrNotFound.
func (r *Repository) Update(ctx context.Context, id primitive.ObjectID, updates bson.M) (*models.CelestialObject, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated models.CelestialObject
	err := r.collection.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": updates}, opts).Decode(&updated)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update celestial object: %w", err)
	}
	return &updated, nil
}

// Delete removes one document, reporting ErrNotFound on a zero match.
func (r *Repository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete celestial object: %w", err)
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
