package dto

import "astro-atlas/internal/favorites/models"

// ListFavoritesOutput returns the raw array the API has always produced.
type ListFavoritesOutput struct {
	Body []models.Favorite
}

// FavoriteOutput wraps a single favorite document.
type FavoriteOutput struct {
	Body models.Favorite
}

// DeleteFavoriteOutput is an empty 204 response.
type DeleteFavoriteOutput struct{}
