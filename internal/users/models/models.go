package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UsersCollection is the MongoDB collection name
const UsersCollection = "users"

// User is an identity record. The password field stores whatever opaque
// string the caller supplies; there is no verification pipeline. Display
// preferences are free-form strings, and memberSince is a display string
// distinct from the document timestamps.
type User struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name          string             `bson:"name" json:"name"`
	Email         string             `bson:"email" json:"email"`
	Password      string             `bson:"password,omitempty" json:"-"`
	Location      string             `bson:"location,omitempty" json:"location,omitempty"`
	Language      string             `bson:"language,omitempty" json:"language,omitempty"`
	Bio           string             `bson:"bio,omitempty" json:"bio,omitempty"`
	DarkMode      string             `bson:"darkMode,omitempty" json:"darkMode,omitempty"`
	Notifications string             `bson:"notifications,omitempty" json:"notifications,omitempty"`
	Privacy       string             `bson:"privacy,omitempty" json:"privacy,omitempty"`
	Level         int                `bson:"level" json:"level"`
	Achievements  int                `bson:"achievements" json:"achievements"`
	MemberSince   string             `bson:"memberSince,omitempty" json:"memberSince,omitempty"`
	IsActive      bool               `bson:"isActive" json:"isActive"`
	CreatedAt     time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time          `bson:"updatedAt" json:"updatedAt"`
}
