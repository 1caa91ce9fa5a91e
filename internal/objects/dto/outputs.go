package dto

import "astro-atlas/internal/objects/models"

// ListObjectsOutput returns the raw array the API has always produced.
type ListObjectsOutput struct {
	Body []models.CelestialObject
}

// ObjectOutput wraps a single catalog document.
type ObjectOutput struct {
	Body models.CelestialObject
}

// DeleteObjectOutput is an empty 204 response.
type DeleteObjectOutput struct{}
