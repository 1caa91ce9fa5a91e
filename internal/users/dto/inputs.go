package dto

// CreateUserInput carries the body of POST /users. Email uniqueness is
// enforced by the store's unique index; the handler translates the
// duplicate-key failure into a readable conflict.
type CreateUserInput struct {
	Body struct {
		Name          string `json:"name" required:"true" doc:"Display name"`
		Email         string `json:"email" required:"true" doc:"Email address, unique across users"`
		Password      string `json:"password,omitempty" doc:"Opaque password string"`
		Location      string `json:"location,omitempty" doc:"Free-form location"`
		Language      string `json:"language,omitempty" doc:"Preferred language code"`
		Bio           string `json:"bio,omitempty" doc:"Profile bio"`
		DarkMode      string `json:"darkMode,omitempty" doc:"Theme preference"`
		Notifications string `json:"notifications,omitempty" doc:"Notification level"`
		Privacy       string `json:"privacy,omitempty" doc:"Privacy level"`
		Level         int    `json:"level,omitempty" minimum:"0" doc:"Gamification level"`
		Achievements  int    `json:"achievements,omitempty" minimum:"0" doc:"Achievement count"`
		MemberSince   string `json:"memberSince,omitempty" doc:"Member-since display string"`
	}
}

// GetUsersInput is the (empty) input for GET /users.
type GetUsersInput struct{}
