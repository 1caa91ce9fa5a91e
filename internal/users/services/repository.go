package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"astro-atlas/internal/users/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	// ErrNotFound is returned when an identifier does not resolve to a document.
	ErrNotFound = errors.New("user not found")

	// ErrInvalidID is returned when an identifier is not a valid ObjectID.
	ErrInvalidID = errors.New("invalid user identifier")

	// ErrDuplicateEmail is returned when the unique email index rejects an insert.
	ErrDuplicateEmail = errors.New("email already registered")
)

// Repository handles database operations for users
type Repository struct {
	collection *mongo.Collection
}

func NewRepository(db *mongo.Database) *Repository {
	return &Repository{collection: db.Collection(models.UsersCollection)}
}

// CreateIndexes declares the unique email index.
func (r *Repository) CreateIndexes(ctx context.Context) error {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	}
	_, err := r.collection.Indexes().CreateMany(ctx, indexes)
	return err
}

// List returns every user in natural order, as an empty slice when the store
// is empty.
func (r *Repository) List(ctx context.Context) ([]models.User, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer cursor.Close(ctx)

	users := []models.User{}
	if err := cursor.All(ctx, &users); err != nil {
		return nil, fmt.Errorf("failed to decode users: %w", err)
	}
	if users == nil {
		users = []models.User{}
	}
	return users, nil
}

// Create inserts one user, stamping both timestamps. Duplicate emails are
// reported as ErrDuplicateEmail.
func (r *Repository) Create(ctx context.Context, u *models.User) error {
	u.CreatedAt = time.Now()
	u.UpdatedAt = u.CreatedAt

	result, err := r.collection.InsertOne(ctx, u)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicateEmail
		}
		return fmt.Errorf("failed to create user: %w", err)
	}
	u.ID = result.InsertedID.(primitive.ObjectID)
	return nil
}

// Delete removes one user, returning the removed document or ErrNotFound.
// The admin ban route reports the removed user back to the caller.
func (r *Repository) Delete(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	var removed models.User
	err := r.collection.FindOneAndDelete(ctx, bson.M{"_id": id}).Decode(&removed)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to delete user: %w", err)
	}
	return &removed, nil
}
