package services

import (
	"context"
	"fmt"

	"astro-atlas/internal/admin/dto"
	anservices "astro-atlas/internal/analytics/services"
	objmodels "astro-atlas/internal/objects/models"
	objservices "astro-atlas/internal/objects/services"
	usermodels "astro-atlas/internal/users/models"
	userservices "astro-atlas/internal/users/services"
)

// Service implements moderation operations. It composes the user and catalog
// services rather than touching collections directly, and records every
// action in the activity log.
type Service struct {
	users     *userservices.Service
	objects   *objservices.Service
	analytics *anservices.Service
}

func NewService(users *userservices.Service, objects *objservices.Service, analytics *anservices.Service) *Service {
	return &Service{
		users:     users,
		objects:   objects,
		analytics: analytics,
	}
}

// BanUser removes a user account and logs the action.
func (s *Service) BanUser(ctx context.Context, rawID string) (*usermodels.User, error) {
	user, err := s.users.Ban(ctx, rawID)
	if err != nil {
		return nil, err
	}

	s.analytics.RecordActivity(ctx, &user.ID, "user_banned", fmt.Sprintf("Removed user %s", user.Email))
	return user, nil
}

// SubmitObject creates a catalog object through the moderation path, which
// requires a fuller description than the public create route.
func (s *Service) SubmitObject(ctx context.Context, input *dto.SubmitObjectInput) (*objmodels.CelestialObject, error) {
	created, err := s.objects.Create(ctx, input, "admin.object.description")
	if err != nil {
		return nil, err
	}

	s.analytics.RecordActivity(ctx, nil, "object_submitted", fmt.Sprintf("Added %s to the catalog", created.Name))
	return created, nil
}
