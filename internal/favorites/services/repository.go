package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"astro-atlas/internal/favorites/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	// ErrNotFound is returned when an identifier does not resolve to a document.
	ErrNotFound = errors.New("favorite not found")

	// ErrInvalidID is returned when an identifier is not a valid ObjectID.
	ErrInvalidID = errors.New("invalid favorite identifier")
)

// Repository handles database operations for favorites
type Repository struct {
	collection *mongo.Collection
}

func NewRepository(db *mongo.Database) *Repository {
	return &Repository{collection: db.Collection(models.FavoritesCollection)}
}

// List returns every favorite in natural order, as an empty slice when the
// store is empty.
func (r *Repository) List(ctx context.Context) ([]models.Favorite, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to list favorites: %w", err)
	}
	defer cursor.Close(ctx)

	favorites := []models.Favorite{}
	if err := cursor.All(ctx, &favorites); err != nil {
		return nil, fmt.Errorf("failed to decode favorites: %w", err)
	}
	if favorites == nil {
		favorites = []models.Favorite{}
	}
	return favorites, nil
}

// Create inserts one document, stamping both timestamps.
func (r *Repository) Create(ctx context.Context, f *models.Favorite) error {
	f.CreatedAt = time.Now()
	f.UpdatedAt = f.CreatedAt

	result, err := r.collection.InsertOne(ctx, f)
	if err != nil {
		return fmt.Errorf("failed to create favorite: %w", err)
	}
	f.ID = result.InsertedID.(primitive.ObjectID)
	return nil
}

// Update applies a partial field set, advances updatedAt, and returns the
// updated document or ErrNotFound.
func (r *Repository) Update(ctx context.Context, id primitive.ObjectID, updates bson.M) (*models.Favorite, error) {
	updates["updatedAt"] = time.Now()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var updated models.Favorite
	err := r.collection.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": updates}, opts).Decode(&updated)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update favorite: %w", err)
	}
	return &updated, nil
}

// Delete removes one document, reporting ErrNotFound on a zero match.
func (r *Repository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete favorite: %w", err)
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
