package client

// Wire types for the AstroAtlas API. These mirror the server's JSON shapes
// without importing its internal packages, so external programs can consume
// the client directly.

// User is an identity record as returned by the API. Passwords are never
// present in responses.
type User struct {
	ID            string `json:"_id,omitempty"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	Location      string `json:"location,omitempty"`
	Language      string `json:"language,omitempty"`
	Bio           string `json:"bio,omitempty"`
	DarkMode      string `json:"darkMode,omitempty"`
	Notifications string `json:"notifications,omitempty"`
	Privacy       string `json:"privacy,omitempty"`
	Level         int    `json:"level"`
	Achievements  int    `json:"achievements"`
	MemberSince   string `json:"memberSince,omitempty"`
	IsActive      bool   `json:"isActive"`
}

// Favorite is a saved celestial object.
type Favorite struct {
	ID          string   `json:"_id,omitempty"`
	Name        string   `json:"name"`
	Type        string   `json:"type"`
	Distance    *float64 `json:"distance,omitempty"`
	Mass        string   `json:"mass,omitempty"`
	Description string   `json:"description,omitempty"`
	Image       string   `json:"image"`
	Views       int      `json:"views"`
	Discovered  string   `json:"discovered,omitempty"`
}

// Collection is a named grouping of favorites.
type Collection struct {
	ID           string `json:"_id,omitempty"`
	Name         string `json:"name"`
	Description  string `json:"description,omitempty"`
	Items        int    `json:"items"`
	Shared       bool   `json:"shared"`
	Color        string `json:"color,omitempty"`
	Created      string `json:"created,omitempty"`
	LastModified string `json:"lastModified,omitempty"`
}

// CelestialObject is a catalog entry.
type CelestialObject struct {
	ID            string  `json:"_id,omitempty"`
	Name          string  `json:"name"`
	Type          string  `json:"type"`
	Distance      float64 `json:"distance"`
	Description   string  `json:"description,omitempty"`
	ImageURL      string  `json:"imageUrl,omitempty"`
	Mass          string  `json:"mass,omitempty"`
	DiscoveryDate string  `json:"discoveryDate,omitempty"`
}
