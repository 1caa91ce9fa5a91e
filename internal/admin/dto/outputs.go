package dto

import (
	objmodels "astro-atlas/internal/objects/models"
	usermodels "astro-atlas/internal/users/models"
)

// BanUserBody is the response body for a successful ban. It echoes the
// removed user so callers can offer an undo.
type BanUserBody struct {
	Message string          `json:"message" doc:"Confirmation message"`
	User    usermodels.User `json:"user" doc:"The removed user record"`
}

// BanUserOutput wraps the ban response.
type BanUserOutput struct {
	Body BanUserBody
}

// SubmitObjectOutput wraps the created catalog object.
type SubmitObjectOutput struct {
	Body objmodels.CelestialObject
}
