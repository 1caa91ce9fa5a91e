package routes

import (
	"context"
	"errors"
	"net/http"

	"astro-atlas/internal/objects/dto"
	"astro-atlas/internal/objects/services"
	"astro-atlas/pkg/validation"

	"github.com/danielgtaylor/huma/v2"
)

// Module represents the catalog routes module. The catalog is served at
// /celestialobjects with a legacy alias at /objects carrying the same list
// and create operations.
type Module struct {
	service *services.Service
}

func NewModule(service *services.Service) *Module {
	return &Module{service: service}
}

// RegisterRoutes registers the catalog operations on the shared API.
func (m *Module) RegisterRoutes(api huma.API) {
	for _, base := range []struct {
		prefix string
		idTag  string
	}{
		{prefix: "/celestialobjects", idTag: "celestialobjects"},
		{prefix: "/objects", idTag: "objects"},
	} {
		huma.Register(api, huma.Operation{
			OperationID: "list-" + base.idTag,
			Method:      http.MethodGet,
			Path:        base.prefix,
			Summary:     "List all celestial objects",
			Tags:        []string{"Celestial Objects"},
		}, m.listHandler)

		huma.Register(api, huma.Operation{
			OperationID:   "create-" + base.idTag,
			Method:        http.MethodPost,
			Path:          base.prefix,
			Summary:       "Create a celestial object",
			Tags:          []string{"Celestial Objects"},
			DefaultStatus: http.StatusCreated,
		}, m.createHandler)
	}

	huma.Register(api, huma.Operation{
		OperationID: "get-celestialobject",
		Method:      http.MethodGet,
		Path:        "/celestialobjects/{id}",
		Summary:     "Get a celestial object by id",
		Tags:        []string{"Celestial Objects"},
	}, m.getHandler)

	huma.Register(api, huma.Operation{
		OperationID: "update-celestialobject",
		Method:      http.MethodPut,
		Path:        "/celestialobjects/{id}",
		Summary:     "Update a celestial object by id",
		Tags:        []string{"Celestial Objects"},
	}, m.updateHandler)

	huma.Register(api, huma.Operation{
		OperationID:   "delete-celestialobject",
		Method:        http.MethodDelete,
		Path:          "/celestialobjects/{id}",
		Summary:       "Delete a celestial object by id",
		Tags:          []string{"Celestial Objects"},
		DefaultStatus: http.StatusNoContent,
	}, m.deleteHandler)
}

func (m *Module) listHandler(ctx context.Context, input *dto.GetObjectsInput) (*dto.ListObjectsOutput, error) {
	objects, err := m.service.List(ctx)
	if err != nil {
		return nil, huma.Error500InternalServerError("Server error while fetching celestial objects", err)
	}
	return &dto.ListObjectsOutput{Body: objects}, nil
}

func (m *Module) getHandler(ctx context.Context, input *dto.GetObjectInput) (*dto.ObjectOutput, error) {
	obj, err := m.service.Get(ctx, input.ID)
	switch {
	case err == nil:
		return &dto.ObjectOutput{Body: *obj}, nil
	case errors.Is(err, services.ErrInvalidID):
		return nil, huma.Error400BadRequest("Invalid object identifier")
	case errors.Is(err, services.ErrNotFound):
		return nil, huma.Error404NotFound("Celestial object not found")
	default:
		return nil, huma.Error500InternalServerError("Failed to get celestial object", err)
	}
}

func (m *Module) createHandler(ctx context.Context, input *dto.CreateObjectInput) (*dto.ObjectOutput, error) {
	created, err := m.service.Create(ctx, input, "")
	if err != nil {
		var verr *validation.Error
		if errors.As(err, &verr) {
			return nil, huma.Error400BadRequest(verr.Message)
		}
		return nil, huma.Error500InternalServerError("Failed to create celestial object", err)
	}
	return &dto.ObjectOutput{Body: *created}, nil
}

func (m *Module) updateHandler(ctx context.Context, input *dto.UpdateObjectInput) (*dto.ObjectOutput, error) {
	updated, err := m.service.Update(ctx, input.ID, input)
	if err != nil {
		var verr *validation.Error
		switch {
		case errors.As(err, &verr):
			return nil, huma.Error400BadRequest(verr.Message)
		case errors.Is(err, services.ErrInvalidID):
			return nil, huma.Error400BadRequest("Invalid object identifier")
		case errors.Is(err, services.ErrNotFound):
			return nil, huma.Error404NotFound("Celestial object not found")
		default:
			return nil, huma.Error500InternalServerError("Failed to update celestial object", err)
		}
	}
	return &dto.ObjectOutput{Body: *updated}, nil
}

func (m *Module) deleteHandler(ctx context.Context, input *dto.DeleteObjectInput) (*dto.DeleteObjectOutput, error) {
	err := m.service.Delete(ctx, input.ID)
	switch {
	case err == nil:
		return &dto.DeleteObjectOutput{}, nil
	case errors.Is(err, services.ErrInvalidID):
		return nil, huma.Error400BadRequest("Invalid object identifier")
	case errors.Is(err, services.ErrNotFound):
		return nil, huma.Error404NotFound("Celestial object not found")
	default:
		return nil, huma.Error500InternalServerError("Failed to delete celestial object", err)
	}
}
