package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"astro-atlas/internal/objects/dto"
	"astro-atlas/internal/objects/models"
	"astro-atlas/pkg/validation"
)

func validCreateInput() *dto.CreateObjectInput {
	input := &dto.CreateObjectInput{}
	input.Body.Name = "Saturn"
	input.Body.Type = "planet"
	input.Body.Distance = 9.58
	input.Body.Description = "Ringed gas giant and the second-largest planet in the solar system."
	return input
}

func TestCreateValidation(t *testing.T) {
	s := &Service{}

	tests := []struct {
		name    string
		mutate  func(*dto.CreateObjectInput)
		rule    string
		wantKey string
	}{
		{
			name:    "short name",
			mutate:  func(in *dto.CreateObjectInput) { in.Body.Name = "ab" },
			wantKey: "object.name",
		},
		{
			name:    "short description",
			mutate:  func(in *dto.CreateObjectInput) { in.Body.Description = "too short" },
			wantKey: "object.description",
		},
		{
			name:    "admin context requires a fuller description",
			mutate:  func(in *dto.CreateObjectInput) { in.Body.Description = "Long enough for catalog." },
			rule:    "admin.object.description",
			wantKey: "admin.object.description",
		},
		{
			name:    "category outside the closed set",
			mutate:  func(in *dto.CreateObjectInput) { in.Body.Type = "spaceship" },
			wantKey: "object.type",
		},
		{
			name: "attributes for the wrong category",
			mutate: func(in *dto.CreateObjectInput) {
				in.Body.Attributes = &models.Attributes{Star: &models.StarAttributes{SpectralClass: "G2V"}}
			},
			wantKey: "object.attributes",
		},
		{
			name:    "unparseable discovery date",
			mutate:  func(in *dto.CreateObjectInput) { in.Body.DiscoveryDate = "25/07/1610" },
			wantKey: "object.discoveryDate",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validCreateInput()
			tt.mutate(input)

			_, err := s.Create(context.Background(), input, tt.rule)

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

func TestCreateDescriptionOptionalInCatalogContext(t *testing.T) {
	s := &Service{}

	input := validCreateInput()
	input.Body.Description = ""
	input.Body.Type = "spaceship" // fail later so the nil repo is never reached

	_, err := s.Create(context.Background(), input, "")
	var verr *validation.Error
	if !errors.As(err, &verr) || verr.Key != "object.type" {
		t.Fatalf("error = %v, want an object.type violation after the empty description passes", err)
	}
}

func TestGetRejectsInvalidID(t *testing.T) {
	s := &Service{}
	if _, err := s.Get(context.Background(), "not-hex"); !errors.Is(err, ErrInvalidID) {
		t.Errorf("error = %v, want ErrInvalidID", err)
	}
}

func TestUpdateRejectsInvalidInput(t *testing.T) {
	s := &Service{}

	if _, err := s.Update(context.Background(), "nope", &dto.UpdateObjectInput{}); !errors.Is(err, ErrInvalidID) {
		t.Errorf("error = %v, want ErrInvalidID", err)
	}

	badType := "spaceship"
	input := &dto.UpdateObjectInput{}
	input.Body.Type = &badType

	_, err := s.Update(context.Background(), "65f000000000000000000001", input)
	var verr *validation.Error
	if !errors.As(err, &verr) || verr.Key != "object.type" {
		t.Errorf("error = %v, want object.type violation", err)
	}
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		raw     string
		want    time.Time
		wantErr bool
	}{
		{raw: "1610-07-25", want: time.Date(1610, time.July, 25, 0, 0, 0, 0, time.UTC)},
		{raw: "1915-10-18T12:30:00Z", want: time.Date(1915, time.October, 18, 12, 30, 0, 0, time.UTC)},
		{raw: "July 25, 1610", wantErr: true},
		{raw: "", wantErr: true},
	}

	for _, tt := range tests {
		got, err := parseDate(tt.raw)
		if (err != nil) != tt.wantErr {
			t.Errorf("parseDate(%q) error = %v, wantErr %v", tt.raw, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && !got.Equal(tt.want) {
			t.Errorf("parseDate(%q) = %v, want %v", tt.raw, got, tt.want)
		}
	}
}
