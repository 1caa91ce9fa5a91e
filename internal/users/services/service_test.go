package services

import (
	"context"
	"errors"
	"testing"

	"astro-atlas/internal/users/dto"
	"astro-atlas/pkg/validation"
)

func TestCreateValidation(t *testing.T) {
	s := &Service{}

	tests := []struct {
		name    string
		user    func(*dto.CreateUserInput)
		wantKey string
	}{
		{
			name: "missing name",
			user: func(in *dto.CreateUserInput) {
				in.Body.Email = "john@example.com"
			},
			wantKey: "user.name",
		},
		{
			name: "missing email",
			user: func(in *dto.CreateUserInput) {
				in.Body.Name = "John Doe"
			},
			wantKey: "user.email",
		},
		{
			name: "malformed email",
			user: func(in *dto.CreateUserInput) {
				in.Body.Name = "John Doe"
				in.Body.Email = "john-at-example"
			},
			wantKey: "user.email",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := &dto.CreateUserInput{}
			tt.user(input)

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

func TestBanRejectsInvalidID(t *testing.T) {
	s := &Service{}

	if _, err := s.Ban(context.Background(), "not-an-object-id"); !errors.Is(err, ErrInvalidID) {
		t.Errorf("error = %v, want ErrInvalidID", err)
	}
}
