package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CollectionsCollection is the MongoDB collection name
const CollectionsCollection = "collections"

// DefaultColor is the color tag assigned when a collection is created
// without one.
const DefaultColor = "from-blue-500 to-cyan-500"

// Collection is a named grouping of favorites. The items field is a manually
// maintained count, not a membership list, and the two date fields are plain
// YYYY-MM-DD strings rather than document timestamps.
type Collection struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name         string             `bson:"name" json:"name"`
	Items        int                `bson:"items" json:"items"`
	Shared       bool               `bson:"shared" json:"shared"`
	Color        string             `bson:"color" json:"color"`
	Description  string             `bson:"description" json:"description"`
	Created      string             `bson:"created" json:"created"`
	LastModified string             `bson:"lastModified" json:"lastModified"`
}

// DateStamp formats a time the way the date-string fields store it.
func DateStamp(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}
