package dto

import objdto "astro-atlas/internal/objects/dto"

// BanUserInput identifies the user for DELETE /admin/ban/{userId}.
type BanUserInput struct {
	UserID string `path:"userId" doc:"User identifier"`
}

// SubmitObjectInput carries the body of POST /admin/objects. The payload
// matches the public catalog create; only the description minimum differs.
type SubmitObjectInput = objdto.CreateObjectInput
