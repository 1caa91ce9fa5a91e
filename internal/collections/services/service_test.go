package services

import (
	"context"
	"errors"
	"testing"

	"astro-atlas/internal/collections/dto"
	"astro-atlas/pkg/validation"
)

func TestCreateRejectsShortName(t *testing.T) {
	s := &Service{}

	tests := []struct {
		name       string
		collection string
	}{
		{name: "two characters", collection: "ab"},
		{name: "padding does not count", collection: "  ab  "},
		{name: "empty", collection: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := &dto.CreateCollectionInput{}
			input.Body.Name = tt.collection

			_, err := s.Create(context.Background(), input)

			var verr *validation.Error
			if !errors.As(err, &verr) {
				t.Fatalf("error = %v, want *validation.Error", err)
			}
			if verr.Message != "Collection name must be at least 3 characters long" {
				t.Errorf("message = %q", verr.Message)
			}
		})
	}
}

func TestUpdateRejectsInvalidID(t *testing.T) {
	s := &Service{}

	input := &dto.UpdateCollectionInput{}
	if _, err := s.Update(context.Background(), "not-a-hex-id", input); !errors.Is(err, ErrInvalidID) {
		t.Errorf("error = %v, want ErrInvalidID", err)
	}
}

func TestUpdateRejectsShortName(t *testing.T) {
	s := &Service{}

	short := "ab"
	input := &dto.UpdateCollectionInput{}
	input.Body.Name = &short

	_, err := s.Update(context.Background(), "65f000000000000000000001", input)

	var verr *validation.Error
	if !errors.As(err, &verr) {
		t.Fatalf("error = %v, want *validation.Error", err)
	}
}

func TestDeleteRejectsInvalidID(t *testing.T) {
	s := &Service{}

	if err := s.Delete(context.Background(), "zzz"); !errors.Is(err, ErrInvalidID) {
		t.Errorf("error = %v, want ErrInvalidID", err)
	}
}
