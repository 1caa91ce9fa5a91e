package routes

import (
	"context"
	"errors"
	"net/http"

	"astro-atlas/internal/admin/dto"
	"astro-atlas/internal/admin/services"
	userservices "astro-atlas/internal/users/services"
	"astro-atlas/pkg/validation"

	"github.com/danielgtaylor/huma/v2"
)

// Module represents the admin routes module.
type Module struct {
	service *services.Service
}

func NewModule(service *services.Service) *Module {
	return &Module{service: service}
}

// RegisterRoutes registers the moderation operations on the shared API.
func (m *Module) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "ban-user",
		Method:      http.MethodDelete,
		Path:        "/admin/ban/{userId}",
		Summary:     "Remove a user account",
		Tags:        []string{"Admin"},
	}, m.banHandler)

	huma.Register(api, huma.Operation{
		OperationID:   "admin-create-object",
		Method:        http.MethodPost,
		Path:          "/admin/objects",
		Summary:       "Submit a celestial object to the catalog",
		Tags:          []string{"Admin"},
		DefaultStatus: http.StatusCreated,
	}, m.submitObjectHandler)
}

func (m *Module) banHandler(ctx context.Context, input *dto.BanUserInput) (*dto.BanUserOutput, error) {
	user, err := m.service.BanUser(ctx, input.UserID)
	switch {
	case err == nil:
		return &dto.BanUserOutput{Body: dto.BanUserBody{
			Message: "User banned/removed",
			User:    *user,
		}}, nil
	case errors.Is(err, userservices.ErrInvalidID):
		return nil, huma.Error400BadRequest("Invalid user identifier")
	case errors.Is(err, userservices.ErrNotFound):
		return nil, huma.Error404NotFound("User not found")
	default:
		return nil, huma.Error500InternalServerError("Failed to remove user", err)
	}
}

func (m *Module) submitObjectHandler(ctx context.Context, input *dto.SubmitObjectInput) (*dto.SubmitObjectOutput, error) {
	created, err := m.service.SubmitObject(ctx, input)
	if err != nil {
		var verr *validation.Error
		if errors.As(err, &verr) {
			return nil, huma.Error400BadRequest(verr.Message)
		}
		return nil, huma.Error500InternalServerError("Failed to create celestial object", err)
	}
	return &dto.SubmitObjectOutput{Body: *created}, nil
}
