package routes

import (
	"context"
	"errors"
	"net/http"

	"astro-atlas/internal/collections/dto"
	"astro-atlas/internal/collections/services"
	"astro-atlas/pkg/validation"

	"github.com/danielgtaylor/huma/v2"
)

// Module represents the collections routes module
type Module struct {
	service *services.Service
}

func NewModule(service *services.Service) *Module {
	return &Module{service: service}
}

// RegisterRoutes registers the collections operations on the shared API.
func (m *Module) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-collections",
		Method:      http.MethodGet,
		Path:        "/collections",
		Summary:     "List all collections",
		Tags:        []string{"Collections"},
	}, m.listHandler)

	huma.Register(api, huma.Operation{
		OperationID:   "create-collection",
		Method:        http.MethodPost,
		Path:          "/collections",
		Summary:       "Create a collection",
		Tags:          []string{"Collections"},
		DefaultStatus: http.StatusCreated,
	}, m.createHandler)

	huma.Register(api, huma.Operation{
		OperationID: "update-collection",
		Method:      http.MethodPut,
		Path:        "/collections/{id}",
		Summary:     "Update a collection by id",
		Tags:        []string{"Collections"},
	}, m.updateHandler)

	huma.Register(api, huma.Operation{
		OperationID:   "delete-collection",
		Method:        http.MethodDelete,
		Path:          "/collections/{id}",
		Summary:       "Delete a collection by id",
		Tags:          []string{"Collections"},
		DefaultStatus: http.StatusNoContent,
	}, m.deleteHandler)
}

func (m *Module) listHandler(ctx context.Context, input *dto.GetCollectionsInput) (*dto.ListCollectionsOutput, error) {
	collections, err := m.service.List(ctx)
	if err != nil {
		return nil, huma.Error500InternalServerError("Server error while fetching collections", err)
	}
	return &dto.ListCollectionsOutput{Body: collections}, nil
}

func (m *Module) createHandler(ctx context.Context, input *dto.CreateCollectionInput) (*dto.CollectionOutput, error) {
	created, err := m.service.Create(ctx, input)
	if err != nil {
		var verr *validation.Error
		if errors.As(err, &verr) {
			return nil, huma.Error400BadRequest(verr.Message)
		}
		return nil, huma.Error500InternalServerError("Failed to create collection", err)
	}
	return &dto.CollectionOutput{Body: *created}, nil
}

func (m *Module) updateHandler(ctx context.Context, input *dto.UpdateCollectionInput) (*dto.CollectionOutput, error) {
	updated, err := m.service.Update(ctx, input.ID, input)
	if err != nil {
		var verr *validation.Error
		switch {
		case errors.As(err, &verr):
			return nil, huma.Error400BadRequest(verr.Message)
		case errors.Is(err, services.ErrInvalidID):
			return nil, huma.Error400BadRequest("Invalid collection identifier")
		case errors.Is(err, services.ErrNotFound):
			return nil, huma.Error404NotFound("Collection not found")
		default:
			return nil, huma.Error500InternalServerError("Failed to update collection", err)
		}
	}
	return &dto.CollectionOutput{Body: *updated}, nil
}

func (m *Module) deleteHandler(ctx context.Context, input *dto.DeleteCollectionInput) (*dto.DeleteCollectionOutput, error) {
	err := m.service.Delete(ctx, input.ID)
	switch {
	case err == nil:
		return &dto.DeleteCollectionOutput{}, nil
	case errors.Is(err, services.ErrInvalidID):
		return nil, huma.Error400BadRequest("Invalid collection identifier")
	case errors.Is(err, services.ErrNotFound):
		return nil, huma.Error404NotFound("Collection not found")
	default:
		return nil, huma.Error500InternalServerError("Failed to delete collection", err)
	}
}
