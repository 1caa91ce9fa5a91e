package dto

// CreateCollectionInput carries the body of POST /collections. Name length
// is checked in the service against the shared rule set so the error message
// matches the client-side check exactly.
type CreateCollectionInput struct {
	Body struct {
		Name         string `json:"name" required:"true" doc:"Collection name, at least 3 characters after trimming"`
		Items        *int   `json:"items,omitempty" minimum:"0" doc:"Manually maintained item count"`
		Shared       *bool  `json:"shared,omitempty" doc:"Whether the collection is shared"`
		Color        string `json:"color,omitempty" doc:"Color tag for display"`
		Description  string `json:"description,omitempty" doc:"Free-form description"`
		Created      string `json:"created,omitempty" doc:"Creation date as YYYY-MM-DD"`
		LastModified string `json:"lastModified,omitempty" doc:"Last-modified date as YYYY-MM-DD"`
	}
}

// UpdateCollectionInput carries a partial field set for PUT /collections/{id}.
// lastModified is always re-stamped server-side.
type UpdateCollectionInput struct {
	ID   string `path:"id" doc:"Collection identifier"`
	Body struct {
		Name        *string `json:"name,omitempty" doc:"Collection name, at least 3 characters after trimming"`
		Items       *int    `json:"items,omitempty" minimum:"0" doc:"Manually maintained item count"`
		Shared      *bool   `json:"shared,omitempty" doc:"Whether the collection is shared"`
		Color       *string `json:"color,omitempty" doc:"Color tag for display"`
		Description *string `json:"description,omitempty" doc:"Free-form description"`
	}
}

// GetCollectionsInput is the (empty) input for GET /collections.
type GetCollectionsInput struct{}

// DeleteCollectionInput identifies the collection for DELETE /collections/{id}.
type DeleteCollectionInput struct {
	ID string `path:"id" doc:"Collection identifier"`
}
