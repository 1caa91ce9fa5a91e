package routes

import (
	"context"
	"errors"
	"net/http"

	"astro-atlas/internal/favorites/dto"
	"astro-atlas/internal/favorites/services"
	"astro-atlas/pkg/validation"

	"github.com/danielgtaylor/huma/v2"
)

// Module represents the favorites routes module
type Module struct {
	service *services.Service
}

func NewModule(service *services.Service) *Module {
	return &Module{service: service}
}

// RegisterRoutes registers the favorites operations on the shared API.
func (m *Module) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-favorites",
		Method:      http.MethodGet,
		Path:        "/favorites",
		Summary:     "List all favorites",
		Tags:        []string{"Favorites"},
	}, m.listHandler)

	huma.Register(api, huma.Operation{
		OperationID:   "create-favorite",
		Method:        http.MethodPost,
		Path:          "/favorites",
		Summary:       "Create a favorite",
		Tags:          []string{"Favorites"},
		DefaultStatus: http.StatusCreated,
	}, m.createHandler)

	huma.Register(api, huma.Operation{
		OperationID: "update-favorite",
		Method:      http.MethodPut,
		Path:        "/favorites/{id}",
		Summary:     "Update a favorite by id",
		Tags:        []string{"Favorites"},
	}, m.updateHandler)

	huma.Register(api, huma.Operation{
		OperationID:   "delete-favorite",
		Method:        http.MethodDelete,
		Path:          "/favorites/{id}",
		Summary:       "Delete a favorite by id",
		Tags:          []string{"Favorites"},
		DefaultStatus: http.StatusNoContent,
	}, m.deleteHandler)
}

func (m *Module) listHandler(ctx context.Context, input *dto.GetFavoritesInput) (*dto.ListFavoritesOutput, error) {
	favorites, err := m.service.List(ctx)
	if err != nil {
		return nil, huma.Error500InternalServerError("Server error while fetching favorites", err)
	}
	return &dto.ListFavoritesOutput{Body: favorites}, nil
}

func (m *Module) createHandler(ctx context.Context, input *dto.CreateFavoriteInput) (*dto.FavoriteOutput, error) {
	created, err := m.service.Create(ctx, input)
	if err != nil {
		var verr *validation.Error
		if errors.As(err, &verr) {
			return nil, huma.Error400BadRequest(verr.Message)
		}
		return nil, huma.Error500InternalServerError("Failed to create favorite", err)
	}
	return &dto.FavoriteOutput{Body: *created}, nil
}

func (m *Module) updateHandler(ctx context.Context, input *dto.UpdateFavoriteInput) (*dto.FavoriteOutput, error) {
	updated, err := m.service.Update(ctx, input.ID, input)
	if err != nil {
		var verr *validation.Error
		switch {
		case errors.As(err, &verr):
			return nil, huma.Error400BadRequest(verr.Message)
		case errors.Is(err, services.ErrInvalidID):
			return nil, huma.Error400BadRequest("Invalid favorite identifier")
		case errors.Is(err, services.ErrNotFound):
			return nil, huma.Error404NotFound("Favorite not found")
		default:
			return nil, huma.Error500InternalServerError("Failed to update favorite", err)
		}
	}
	return &dto.FavoriteOutput{Body: *updated}, nil
}

func (m *Module) deleteHandler(ctx context.Context, input *dto.DeleteFavoriteInput) (*dto.DeleteFavoriteOutput, error) {
	err := m.service.Delete(ctx, input.ID)
	switch {
	case err == nil:
		return &dto.DeleteFavoriteOutput{}, nil
	case errors.Is(err, services.ErrInvalidID):
		return nil, huma.Error400BadRequest("Invalid favorite identifier")
	case errors.Is(err, services.ErrNotFound):
		return nil, huma.Error404NotFound("Favorite not found")
	default:
		return nil, huma.Error500InternalServerError("Failed to delete favorite", err)
	}
}
