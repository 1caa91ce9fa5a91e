package services

import (
	"context"

	"astro-atlas/internal/favorites/dto"
	"astro-atlas/internal/favorites/models"
	"astro-atlas/pkg/category"
	"astro-atlas/pkg/validation"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Service handles business logic for favorites
type Service struct {
	repo *Repository
}

func NewService(db *mongo.Database) *Service {
	return &Service{repo: NewRepository(db)}
}

func (s *Service) List(ctx context.Context) ([]models.Favorite, error) {
	return s.repo.List(ctx)
}

func (s *Service) Create(ctx context.Context, input *dto.CreateFavoriteInput) (*models.Favorite, error) {
	if err := validation.Field("favorite.name", input.Body.Name); err != nil {
		return nil, err
	}
	if err := validation.Field("favorite.image", input.Body.Image); err != nil {
		return nil, err
	}
	cat, err := category.Parse(input.Body.Type)
	if err != nil {
		return nil, &validation.Error{Key: "favorite.type", Message: err.Error()}
	}

	f := &models.Favorite{
		Name:        input.Body.Name,
		Category:    cat,
		Description: input.Body.Description,
		Distance:    input.Body.Distance,
		Mass:        input.Body.Mass,
		Image:       input.Body.Image,
		Discovered:  input.Body.Discovered,
	}
	if input.Body.Views != nil {
		f.Views = *input.Body.Views
	}

	if err := s.repo.Create(ctx, f); err != nil {
		return nil, err
	}
	return f, nil
}

func (s *Service) Update(ctx context.Context, rawID string, input *dto.UpdateFavoriteInput) (*models.Favorite, error) {
	id, err := primitive.ObjectIDFromHex(rawID)
	if err != nil {
		return nil, ErrInvalidID
	}

	updates := bson.M{}
	if input.Body.Name != nil {
		if err := validation.Field("favorite.name", *input.Body.Name); err != nil {
			return nil, err
		}
		updates["name"] = *input.Body.Name
	}
	if input.Body.Type != nil {
		cat, err := category.Parse(*input.Body.Type)
		if err != nil {
			return nil, &validation.Error{Key: "favorite.type", Message: err.Error()}
		}
		updates["type"] = cat
	}
	if input.Body.Description != nil {
		updates["description"] = *input.Body.Description
	}
	if input.Body.Distance != nil {
		updates["distance"] = *input.Body.Distance
	}
	if input.Body.Mass != nil {
		updates["mass"] = *input.Body.Mass
	}
	if input.Body.Image != nil {
		if err := validation.Field("favorite.image", *input.Body.Image); err != nil {
			return nil, err
		}
		updates["image"] = *input.Body.Image
	}
	if input.Body.Views != nil {
		updates["views"] = *input.Body.Views
	}
	if input.Body.Discovered != nil {
		updates["discovered"] = *input.Body.Discovered
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
