package dto

import "astro-atlas/internal/collections/models"

// ListCollectionsOutput returns the raw array the API has always produced.
type ListCollectionsOutput struct {
	Body []models.Collection
}

// CollectionOutput wraps a single collection document.
type CollectionOutput struct {
	Body models.Collection
}

// DeleteCollectionOutput is an empty 204 response.
type DeleteCollectionOutput struct{}
