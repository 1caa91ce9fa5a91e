package services

import (
	"context"
	"strings"
	"time"

	"astro-atlas/internal/collections/dto"
	"astro-atlas/internal/collections/models"
	"astro-atlas/pkg/validation"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Service handles business logic for collections
type Service struct {
	repo *Repository
}

func NewService(db *mongo.Database) *Service {
	return &Service{repo: NewRepository(db)}
}

func (s *Service) List(ctx context.Context) ([]models.Collection, error) {
	return s.repo.List(ctx)
}

// Create validates the name, fills defaults for the optional fields, and
// inserts the document.
func (s *Service) Create(ctx context.Context, input *dto.CreateCollectionInput) (*models.Collection, error) {
	if err := validation.Field("collection.name", input.Body.Name); err != nil {
		return nil, err
	}

	today := models.DateStamp(time.Now())
	c := &models.Collection{
		Name:         strings.TrimSpace(input.Body.Name),
		Color:        models.DefaultColor,
		Description:  input.Body.Description,
		Created:      today,
		LastModified: today,
	}
	if input.Body.Items != nil {
		c.Items = *input.Body.Items
	}
	if input.Body.Shared != nil {
		c.Shared = *input.Body.Shared
	}
	if input.Body.Color != "" {
		c.Color = input.Body.Color
	}
	if input.Body.Created != "" {
		c.Created = input.Body.Created
	}
	if input.Body.LastModified != "" {
		c.LastModified = input.Body.LastModified
	}

	if err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// Update applies the supplied partial set and re-stamps lastModified.
// Applying the same payload twice yields the same field values apart from
// the stamp.
func (s *Service) Update(ctx context.Context, rawID string, input *dto.UpdateCollectionInput) (*models.Collection, error) {
	id, err := primitive.ObjectIDFromHex(rawID)
	if err != nil {
		return nil, ErrInvalidID
	}

	updates := bson.M{"lastModified": models.DateStamp(time.Now())}
	if input.Body.Name != nil {
		if err := validation.Field("collection.name", *input.Body.Name); err != nil {
			return nil, err
		}
		updates["name"] = strings.TrimSpace(*input.Body.Name)
	}
	if input.Body.Items != nil {
		updates["items"] = *input.Body.Items
	}
	if input.Body.Shared != nil {
		updates["shared"] = *input.Body.Shared
	}
	if input.Body.Color != nil {
		updates["color"] = *input.Body.Color
	}
	if input.Body.Description != nil {
		updates["description"] = *input.Body.Description
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
