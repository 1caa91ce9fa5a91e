package services

import (
	"context"
	"errors"
	"testing"

	"astro-atlas/internal/favorites/dto"
	"astro-atlas/pkg/validation"
)

func TestCreateValidation(t *testing.T) {
	s := &Service{}

	tests := []struct {
		name    string
		setup   func(*dto.CreateFavoriteInput)
		wantKey string
	}{
		{
			name: "missing name",
			setup: func(in *dto.CreateFavoriteInput) {
				in.Body.Image = "https://example.com/mars.jpg"
				in.Body.Type = "planet"
			},
			wantKey: "favorite.name",
		},
		{
			name: "missing image",
			setup: func(in *dto.CreateFavoriteInput) {
				in.Body.Name = "Mars"
				in.Body.Type = "planet"
			},
			wantKey: "favorite.image",
		},
		{
			name: "category outside the closed set",
			setup: func(in *dto.CreateFavoriteInput) {
				in.Body.Name = "Mystery"
				in.Body.Image = "https://example.com/mystery.jpg"
				in.Body.Type = "blackhole"
			},
			wantKey: "favorite.type",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := &dto.CreateFavoriteInput{}
			tt.setup(input)

			_, err := s.Create(context.Background(), input)

			var verr *validation.Error
			if !errors.As(err, &verr) {
				t.Fatalf("error = %v, want *validation.Error", err)
			}
			if verr.Key != tt.wantKey {
				t.Errorf("violated rule = %q, want %q", verr.Key, tt.wantKey)
			}
		})
	}
}

func TestUpdateValidation(t *testing.T) {
	s := &Service{}

	if _, err := s.Update(context.Background(), "nope", &dto.UpdateFavoriteInput{}); !errors.Is(err, ErrInvalidID) {
		t.Errorf("error = %v, want ErrInvalidID", err)
	}

	badType := "Quasar"
	input := &dto.UpdateFavoriteInput{}
	input.Body.Type = &badType

	_, err := s.Update(context.Background(), "65f000000000000000000001", input)
	var verr *validation.Error
	if !errors.As(err, &verr) || verr.Key != "favorite.type" {
		t.Errorf("error = %v, want favorite.type violation", err)
	}
}
