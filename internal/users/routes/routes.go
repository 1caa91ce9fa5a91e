package routes

import (
	"context"
	"errors"
	"net/http"

	"astro-atlas/internal/users/dto"
	"astro-atlas/internal/users/services"
	"astro-atlas/pkg/validation"

	"github.com/danielgtaylor/huma/v2"
)

// Module represents the users routes module. Only list and create are
// exposed here; account removal happens through the admin ban route.
type Module struct {
	service *services.Service
}

func NewModule(service *services.Service) *Module {
	return &Module{service: service}
}

// RegisterRoutes registers the user operations on the shared API.
func (m *Module) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-users",
		Method:      http.MethodGet,
		Path:        "/users",
		Summary:     "List all users",
		Tags:        []string{"Users"},
	}, m.listHandler)

	huma.Register(api, huma.Operation{
		OperationID:   "create-user",
		Method:        http.MethodPost,
		Path:          "/users",
		Summary:       "Create a user",
		Tags:          []string{"Users"},
		DefaultStatus: http.StatusCreated,
	}, m.createHandler)
}

func (m *Module) listHandler(ctx context.Context, input *dto.GetUsersInput) (*dto.ListUsersOutput, error) {
	users, err := m.service.List(ctx)
	if err != nil {
		return nil, huma.Error500InternalServerError("Server error while fetching users", err)
	}
	return &dto.ListUsersOutput{Body: users}, nil
}

func (m *Module) createHandler(ctx context.Context, input *dto.CreateUserInput) (*dto.UserOutput, error) {
	created, err := m.service.Create(ctx, input)
	if err != nil {
		var verr *validation.Error
		switch {
		case errors.As(err, &verr):
			return nil, huma.Error400BadRequest(verr.Message)
		case errors.Is(err, services.ErrDuplicateEmail):
			return nil, huma.Error409Conflict("Email already registered")
		default:
			return nil, huma.Error500InternalServerError("Failed to create user", err)
		}
	}
	return &dto.UserOutput{Body: *created}, nil
}
