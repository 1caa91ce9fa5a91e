// Package validation is the single source of field constraints for the API.
// The server-side route handlers and the Go client apply the same rule set,
// so a payload rejected by one is rejected by the other.
package validation

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Rule pairs a validator/v10 constraint expression with the message returned
// when the constraint fails.
type Rule struct {
	Constraint string
	Message    string
}

// Rules maps "entity.field" to its constraint. Description minimums differ
// per context on purpose: admin submissions require fuller descriptions than
// catalog ones, and favorites leave the field free-form.
var Rules = map[string]Rule{
	"collection.name":          {Constraint: "min=3", Message: "Collection name must be at least 3 characters long"},
	"favorite.name":            {Constraint: "required", Message: "Favorite name is required"},
	"favorite.image":           {Constraint: "required", Message: "Favorite image is required"},
	"object.name":              {Constraint: "min=3", Message: "Object name must be at least 3 characters long"},
	"object.description":       {Constraint: "omitempty,min=20", Message: "Object description must be at least 20 characters long"},
	"admin.object.description": {Constraint: "min=50", Message: "Object description must be at least 50 characters long"},
	"user.email":               {Constraint: "required,email", Message: "A valid email address is required"},
	"user.name":                {Constraint: "required", Message: "User name is required"},
}

var validate = validator.New()

// Error reports which rule a value violated.
type Error struct {
	Key     string
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// Field checks a single value against the named rule. String values are
// trimmed before length constraints apply, matching the server's historical
// behavior for names.
func Field(key string, value interface{}) error {
	rule, ok := Rules[key]
	if !ok {
		return fmt.Errorf("no validation rule registered for %q", key)
	}

	if s, isString := value.(string); isString {
		value = strings.TrimSpace(s)
	}

	if err := validate.Var(value, rule.Constraint); err != nil {
		return &Error{Key: key, Message: rule.Message}
	}
	return nil
}

// Struct applies validator tags declared on a struct type directly.
func Struct(v interface{}) error {
	return validate.Struct(v)
}
