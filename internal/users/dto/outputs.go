package dto

import "astro-atlas/internal/users/models"

// ListUsersOutput returns the raw array the API has always produced.
type ListUsersOutput struct {
	Body []models.User
}

// UserOutput wraps a single user document.
type UserOutput struct {
	Body models.User
}
