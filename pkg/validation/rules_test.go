package validation

import (
	"errors"
	"testing"
)

func TestField(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		value   interface{}
		wantErr string
	}{
		{name: "collection name long enough", key: "collection.name", value: "Nearby Stars"},
		{name: "collection name too short", key: "collection.name", value: "ab", wantErr: "Collection name must be at least 3 characters long"},
		{name: "collection name padding does not count", key: "collection.name", value: "  ab  ", wantErr: "Collection name must be at least 3 characters long"},
		{name: "favorite name present", key: "favorite.name", value: "Mars"},
		{name: "favorite name missing", key: "favorite.name", value: "", wantErr: "Favorite name is required"},
		{name: "favorite image missing", key: "favorite.image", value: "   ", wantErr: "Favorite image is required"},
		{name: "object description may be empty", key: "object.description", value: ""},
		{name: "object description too short", key: "object.description", value: "short description", wantErr: "Object description must be at least 20 characters long"},
		{name: "object description long enough", key: "object.description", value: "The red planet, known for its iron oxide surface."},
		{name: "admin description must be fuller", key: "admin.object.description", value: "The red planet.", wantErr: "Object description must be at least 50 characters long"},
		{name: "admin description long enough", key: "admin.object.description", value: "Ringed gas giant and the second-largest planet in the solar system."},
		{name: "valid email", key: "user.email", value: "sarah.j@example.com"},
		{name: "invalid email", key: "user.email", value: "not-an-email", wantErr: "A valid email address is required"},
		{name: "empty email", key: "user.email", value: "", wantErr: "A valid email address is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Field(tt.key, tt.value)
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("Field(%q, %v) unexpected error: %v", tt.key, tt.value, err)
				}
				return
			}

			var verr *Error
			if !errors.As(err, &verr) {
				t.Fatalf("Field(%q, %v) error = %v, want *validation.Error", tt.key, tt.value, err)
			}
			if verr.Message != tt.wantErr {
				t.Errorf("message = %q, want %q", verr.Message, tt.wantErr)
			}
			if verr.Key != tt.key {
				t.Errorf("key = %q, want %q", verr.Key, tt.key)
			}
		})
	}
}

func TestFieldUnregisteredKey(t *testing.T) {
	err := Field("nope.field", "value")
	if err == nil {
		t.Fatal("expected an error for an unregistered rule key")
	}
	var verr *Error
	if errors.As(err, &verr) {
		t.Fatal("unregistered keys must not produce a rule violation")
	}
}
