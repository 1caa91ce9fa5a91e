package models

import (
	"time"

	"astro-atlas/pkg/category"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// FavoritesCollection is the MongoDB collection name
const FavoritesCollection = "favorites"

// Favorite is a user-saved celestial object. Its schema is deliberately
// separate from the catalog's CelestialObject: favorites carry a views
// counter and a free-form discovered string, and are global rather than
// per-user.
type Favorite struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name        string             `bson:"name" json:"name"`
	Category    category.Category  `bson:"type" json:"type"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	Distance    *float64           `bson:"distance,omitempty" json:"distance,omitempty"`
	Mass        string             `bson:"mass,omitempty" json:"mass,omitempty"`
	Image       string             `bson:"image" json:"image"`
	Views       int                `bson:"views" json:"views"`
	Discovered  string             `bson:"discovered,omitempty" json:"discovered,omitempty"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}
