package dto

import "astro-atlas/internal/objects/models"

// CreateObjectInput carries the body of POST /celestialobjects. The catalog
// form requires a fuller description than favorites do (20 characters when
// provided); the admin submission route enforces its own, stricter minimum.
type CreateObjectInput struct {
	Body struct {
		Name          string             `json:"name" required:"true" doc:"Object name, at least 3 characters"`
		Type          string             `json:"type" required:"true" doc:"Object category (planet, star, galaxy, nebula, comet, moon, asteroid)"`
		Distance      float64            `json:"distance" required:"true" doc:"Distance in category-appropriate units"`
		Description   string             `json:"description,omitempty" doc:"Description, at least 20 characters when provided"`
		ImageURL      string             `json:"imageUrl,omitempty" doc:"Image URL"`
		Mass          string             `json:"mass,omitempty" doc:"Mass as a display string"`
		DiscoveryDate string             `json:"discoveryDate,omitempty" doc:"Discovery date as RFC 3339 or YYYY-MM-DD"`
		Attributes    *models.Attributes `json:"attributes,omitempty" doc:"Category-specific attributes"`
	}
}

// UpdateObjectInput carries a partial field set for PUT /celestialobjects/{id}.
type UpdateObjectInput struct {
	ID   string `path:"id" doc:"Object identifier"`
	Body struct {
		Name          *string            `json:"name,omitempty" doc:"Object name, at least 3 characters"`
		Type          *string            `json:"type,omitempty" doc:"Object category"`
		Distance      *float64           `json:"distance,omitempty" doc:"Distance in category-appropriate units"`
		Description   *string            `json:"description,omitempty" doc:"Description, at least 20 characters when provided"`
		ImageURL      *string            `json:"imageUrl,omitempty" doc:"Image URL"`
		Mass          *string            `json:"mass,omitempty" doc:"Mass as a display string"`
		DiscoveryDate *string            `json:"discoveryDate,omitempty" doc:"Discovery date as RFC 3339 or YYYY-MM-DD"`
		Attributes    *models.Attributes `json:"attributes,omitempty" doc:"Category-specific attributes"`
	}
}

// GetObjectsInput is the (empty) input for GET /celestialobjects.
type GetObjectsInput struct{}

// GetObjectInput identifies the object for GET /celestialobjects/{id}.
type GetObjectInput struct {
	ID string `path:"id" doc:"Object identifier"`
}

// DeleteObjectInput identifies the object for DELETE /celestialobjects/{id}.
type DeleteObjectInput struct {
	ID string `path:"id" doc:"Object identifier"`
}
