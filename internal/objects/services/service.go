package services

import (
	"context"
	"strings"
	"time"

	"astro-atlas/internal/objects/dto"
	"astro-atlas/internal/objects/models"
	"astro-atlas/pkg/category"
	"astro-atlas/pkg/validation"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Service handles business logic for catalog objects
type Service struct {
	repo *Repository
}

func NewService(db *mongo.Database) *Service {
	return &Service{repo: NewRepository(db)}
}

func (s *Service) List(ctx context.Context) ([]models.CelestialObject, error) {
	return s.repo.List(ctx)
}

func (s *Service) Get(ctx context.Context, rawID string) (*models.CelestialObject, error) {
	id, err := primitive.ObjectIDFromHex(rawID)
	if err != nil {
		return nil, ErrInvalidID
	}
	return s.repo.GetByID(ctx, id)
}

// Create validates against the catalog's rule context. descriptionRule lets
// the admin module reuse this path with its stricter minimum.
func (s *Service) Create(ctx context.Context, input *dto.CreateObjectInput, descriptionRule string) (*models.CelestialObject, error) {
	if descriptionRule == "" {
		descriptionRule = "object.description"
	}

	if err := validation.Field("object.name", input.Body.Name); err != nil {
		return nil, err
	}
	if err := validation.Field(descriptionRule, input.Body.Description); err != nil {
		return nil, err
	}
	cat, err := category.Parse(input.Body.Type)
	if err != nil {
		return nil, &validation.Error{Key: "object.type", Message: err.Error()}
	}
	if err := input.Body.Attributes.Validate(cat); err != nil {
		return nil, &validation.Error{Key: "object.attributes", Message: err.Error()}
	}

	obj := &models.CelestialObject{
		Name:        strings.TrimSpace(input.Body.Name),
		Category:    cat,
		Distance:    input.Body.Distance,
		Description: input.Body.Description,
		ImageURL:    input.Body.ImageURL,
		Mass:        input.Body.Mass,
		Attributes:  input.Body.Attributes,
	}

	if input.Body.DiscoveryDate != "" {
		discovered, err := parseDate(input.Body.DiscoveryDate)
		if err != nil {
			return nil, &validation.Error{Key: "object.discoveryDate", Message: "Discovery date must be RFC 3339 or YYYY-MM-DD"}
		}
		obj.DiscoveryDate = &discovered
	}

	if err := s.repo.Create(ctx, obj); err != nil {
		return nil, err
	}
	return obj, nil
}

func (s *Service) Update(ctx context.Context, rawID string, input *dto.UpdateObjectInput) (*models.CelestialObject, error) {
	id, err := primitive.ObjectIDFromHex(rawID)
	if err != nil {
		return nil, ErrInvalidID
	}

	updates := bson.M{}
	var cat category.Category
	if input.Body.Type != nil {
		cat, err = category.Parse(*input.Body.Type)
		if err != nil {
			return nil, &validation.Error{Key: "object.type", Message: err.Error()}
		}
		updates["type"] = cat
	}
	if input.Body.Name != nil {
		if err := validation.Field("object.name", *input.Body.Name); err != nil {
			return nil, err
		}
		updates["name"] = strings.TrimSpace(*input.Body.Name)
	}
	if input.Body.Distance != nil {
		updates["distance"] = *input.Body.Distance
	}
	if input.Body.Description != nil {
		if err := validation.Field("object.description", *input.Body.Description); err != nil {
			return nil, err
		}
		updates["description"] = *input.Body.Description
	}
	if input.Body.ImageURL != nil {
		updates["imageUrl"] = *input.Body.ImageURL
	}
	if input.Body.Mass != nil {
		updates["mass"] = *input.Body.Mass
	}
	if input.Body.DiscoveryDate != nil {
		discovered, err := parseDate(*input.Body.DiscoveryDate)
		if err != nil {
			return nil, &validation.Error{Key: "object.discoveryDate", Message: "Discovery date must be RFC 3339 or YYYY-MM-DD"}
		}
		updates["discoveryDate"] = discovered
	}
	if input.Body.Attributes != nil {
		// The variant can only be checked against a known category; when the
		// payload does not carry one, fetch the stored document's.
		if input.Body.Type == nil {
			current, err := s.repo.GetByID(ctx, id)
			if err != nil {
				return nil, err
			}
			cat = current.Category
		}
		if err := input.Body.Attributes.Validate(cat); err != nil {
			return nil, &validation.Error{Key: "object.attributes", Message: err.Error()}
		}
		updates["attributes"] = input.Body.Attributes
	}

	return s.repo.Update(ctx, id, updates)
}

func (s *Service) Delete(ctx context.Context, rawID string) error {
	id, err := primitive.ObjectIDFromHex(rawID)
	if err != nil {
		return ErrInvalidID
	}
	return s.repo.Delete(ctx, id)
}

func parseDate(raw string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", raw)
}
