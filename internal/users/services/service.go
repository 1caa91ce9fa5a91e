package services

import (
	"context"

	"astro-atlas/internal/users/dto"
	"astro-atlas/internal/users/models"
	"astro-atlas/pkg/validation"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Service handles business logic for users
type Service struct {
	repo *Repository
}

func NewService(db *mongo.Database) *Service {
	return &Service{repo: NewRepository(db)}
}

// InitializeModule declares the unique email index.
func (s *Service) InitializeModule(ctx context.Context) error {
	return s.repo.CreateIndexes(ctx)
}

func (s *Service) List(ctx context.Context) ([]models.User, error) {
	return s.repo.List(ctx)
}

func (s *Service) Create(ctx context.Context, input *dto.CreateUserInput) (*models.User, error) {
	if err := validation.Field("user.name", input.Body.Name); err != nil {
		return nil, err
	}
	if err := validation.Field("user.email", input.Body.Email); err != nil {
		return nil, err
	}

	u := &models.User{
		Name:          input.Body.Name,
		Email:         input.Body.Email,
		Password:      input.Body.Password,
		Location:      input.Body.Location,
		Language:      input.Body.Language,
		Bio:           input.Body.Bio,
		DarkMode:      input.Body.DarkMode,
		Notifications: input.Body.Notifications,
		Privacy:       input.Body.Privacy,
		Level:         input.Body.Level,
		Achievements:  input.Body.Achievements,
		MemberSince:   input.Body.MemberSince,
		IsActive:      true,
	}

	if err := s.repo.Create(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

// Ban removes a user account by identifier, returning the removed record.
func (s *Service) Ban(ctx context.Context, rawID string) (*models.User, error) {
	id, err := primitive.ObjectIDFromHex(rawID)
	if err != nil {
		return nil, ErrInvalidID
	}
	return s.repo.Delete(ctx, id)
}
