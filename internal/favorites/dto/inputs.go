package dto

// CreateFavoriteInput carries the body of POST /favorites. The category must
// belong to the closed set; casing is normalized on parse.
type CreateFavoriteInput struct {
	Body struct {
		Name        string   `json:"name" required:"true" doc:"Object name"`
		Type        string   `json:"type" required:"true" doc:"Object category (planet, star, galaxy, nebula, comet, moon, asteroid)"`
		Description string   `json:"description,omitempty" doc:"Free-form description"`
		Distance    *float64 `json:"distance,omitempty" doc:"Distance in category-appropriate units"`
		Mass        string   `json:"mass,omitempty" doc:"Mass as a display string"`
		Image       string   `json:"image" required:"true" doc:"Image URL"`
		Views       *int     `json:"views,omitempty" minimum:"0" doc:"View counter"`
		Discovered  string   `json:"discovered,omitempty" doc:"Discovery date or note"`
	}
}

// UpdateFavoriteInput carries a partial field set for PUT /favorites/{id}.
type UpdateFavoriteInput struct {
	ID   string `path:"id" doc:"Favorite identifier"`
	Body struct {
		Name        *string  `json:"name,omitempty" doc:"Object name"`
		Type        *string  `json:"type,omitempty" doc:"Object category"`
		Description *string  `json:"description,omitempty" doc:"Free-form description"`
		Distance    *float64 `json:"distance,omitempty" doc:"Distance in category-appropriate units"`
		Mass        *string  `json:"mass,omitempty" doc:"Mass as a display string"`
		Image       *string  `json:"image,omitempty" doc:"Image URL"`
		Views       *int     `json:"views,omitempty" minimum:"0" doc:"View counter"`
		Discovered  *string  `json:"discovered,omitempty" doc:"Discovery date or note"`
	}
}

// GetFavoritesInput is the (empty) input for GET /favorites.
type GetFavoritesInput struct{}

// DeleteFavoriteInput identifies the favorite for DELETE /favorites/{id}.
type DeleteFavoriteInput struct {
	ID string `path:"id" doc:"Favorite identifier"`
}
