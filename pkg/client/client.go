package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"astro-atlas/pkg/config"
	"astro-atlas/pkg/validation"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// Client is a typed client for the AstroAtlas API. Mutations publish
// invalidations to the shared entity store so every subscribed surface sees
// the change without refetching on its own.
type Client struct {
	httpClient *http.Client
	baseURL    string
	userAgent  string
	store      *Store
}

// APIError is a non-2xx response decoded into its message.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Message)
}

// NewClient creates a client for the API served at baseURL (for example
// "http://localhost:5000").
func NewClient(baseURL string) *Client {
	var transport http.RoundTripper = http.DefaultTransport

	// Only add OpenTelemetry instrumentation if telemetry is enabled
	if config.GetBoolEnv("ENABLE_TELEMETRY", false) {
		transport = otelhttp.NewTransport(http.DefaultTransport,
			otelhttp.WithSpanNameFormatter(func(operation string, r *http.Request) string {
				return fmt.Sprintf("HTTP %s %s", r.Method, r.URL.Host)
			}),
		)
	}

	return &Client{
		httpClient: &http.Client{
			Timeout:   30 * time.Second,
			Transport: transport,
		},
		baseURL:   strings.TrimRight(baseURL, "/") + "/api",
		userAgent: "astro-atlas/1.0.0",
		store:     NewStore(),
	}
}

// Store returns the shared entity store.
func (c *Client) Store() *Store {
	return c.store
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &APIError{StatusCode: resp.StatusCode, Message: errorMessage(data, resp.StatusCode)}
	}

	if out != nil && len(data) > 0 {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("failed to parse response: %w", err)
		}
	}
	return nil
}

// errorMessage extracts a human-readable message from an error body. The API
// emits RFC 7807 problem documents; the fallback 404 handler emits {message}.
func errorMessage(data []byte, statusCode int) string {
	var body struct {
		Detail  string `json:"detail"`
		Title   string `json:"title"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(data, &body); err == nil {
		switch {
		case body.Detail != "":
			return body.Detail
		case body.Message != "":
			return body.Message
		case body.Title != "":
			return body.Title
		}
	}
	return http.StatusText(statusCode)
}

// ListUsers fetches all users.
func (c *Client) ListUsers(ctx context.Context) ([]User, error) {
	users := []User{}
	if err := c.do(ctx, http.MethodGet, "/users", nil, &users); err != nil {
		return nil, err
	}
	c.store.Set(EntityUsers, users)
	return users, nil
}

// CreateUser registers a new user. Name and email are checked against the
// shared rule set before the request is sent.
func (c *Client) CreateUser(ctx context.Context, user User) (*User, error) {
	if err := validation.Field("user.name", user.Name); err != nil {
		return nil, err
	}
	if err := validation.Field("user.email", user.Email); err != nil {
		return nil, err
	}

	var created User
	if err := c.do(ctx, http.MethodPost, "/users", user, &created); err != nil {
		return nil, err
	}
	c.store.Invalidate(EntityUsers)
	return &created, nil
}

// ListFavorites fetches all favorites.
func (c *Client) ListFavorites(ctx context.Context) ([]Favorite, error) {
	favorites := []Favorite{}
	if err := c.do(ctx, http.MethodGet, "/favorites", nil, &favorites); err != nil {
		return nil, err
	}
	c.store.Set(EntityFavorites, favorites)
	return favorites, nil
}

// CreateFavorite saves a celestial object. Name and image are checked
// against the shared rule set before the request is sent.
func (c *Client) CreateFavorite(ctx context.Context, favorite Favorite) (*Favorite, error) {
	if err := validation.Field("favorite.name", favorite.Name); err != nil {
		return nil, err
	}
	if err := validation.Field("favorite.image", favorite.Image); err != nil {
		return nil, err
	}

	var created Favorite
	if err := c.do(ctx, http.MethodPost, "/favorites", favorite, &created); err != nil {
		return nil, err
	}
	c.store.Invalidate(EntityFavorites)
	return &created, nil
}

// UpdateFavorite applies a partial update to a favorite.
func (c *Client) UpdateFavorite(ctx context.Context, id string, fields map[string]any) (*Favorite, error) {
	var updated Favorite
	if err := c.do(ctx, http.MethodPut, "/favorites/"+id, fields, &updated); err != nil {
		return nil, err
	}
	c.store.Invalidate(EntityFavorites)
	return &updated, nil
}

// DeleteFavorite removes a favorite by id.
func (c *Client) DeleteFavorite(ctx context.Context, id string) error {
	if err := c.do(ctx, http.MethodDelete, "/favorites/"+id, nil, nil); err != nil {
		return err
	}
	c.store.Invalidate(EntityFavorites)
	return nil
}

// ListCollections fetches all collections.
func (c *Client) ListCollections(ctx context.Context) ([]Collection, error) {
	collections := []Collection{}
	if err := c.do(ctx, http.MethodGet, "/collections", nil, &collections); err != nil {
		return nil, err
	}
	c.store.Set(EntityCollections, collections)
	return collections, nil
}

// CreateCollection creates a named grouping. The name is checked against the
// shared rule set before the request is sent.
func (c *Client) CreateCollection(ctx context.Context, collection Collection) (*Collection, error) {
	if err := validation.Field("collection.name", collection.Name); err != nil {
		return nil, err
	}

	var created Collection
	if err := c.do(ctx, http.MethodPost, "/collections", collection, &created); err != nil {
		return nil, err
	}
	c.store.Invalidate(EntityCollections)
	return &created, nil
}

// UpdateCollection applies a partial update to a collection.
func (c *Client) UpdateCollection(ctx context.Context, id string, fields map[string]any) (*Collection, error) {
	var updated Collection
	if err := c.do(ctx, http.MethodPut, "/collections/"+id, fields, &updated); err != nil {
		return nil, err
	}
	c.store.Invalidate(EntityCollections)
	return &updated, nil
}

// DeleteCollection removes a collection by id.
func (c *Client) DeleteCollection(ctx context.Context, id string) error {
	if err := c.do(ctx, http.MethodDelete, "/collections/"+id, nil, nil); err != nil {
		return err
	}
	c.store.Invalidate(EntityCollections)
	return nil
}

// ListObjects fetches the full catalog.
func (c *Client) ListObjects(ctx context.Context) ([]CelestialObject, error) {
	objects := []CelestialObject{}
	if err := c.do(ctx, http.MethodGet, "/celestialobjects", nil, &objects); err != nil {
		return nil, err
	}
	c.store.Set(EntityObjects, objects)
	return objects, nil
}

// GetObject fetches one catalog entry by id.
func (c *Client) GetObject(ctx context.Context, id string) (*CelestialObject, error) {
	var obj CelestialObject
	if err := c.do(ctx, http.MethodGet, "/celestialobjects/"+id, nil, &obj); err != nil {
		return nil, err
	}
	return &obj, nil
}

// CreateObject adds a catalog entry.
func (c *Client) CreateObject(ctx context.Context, object CelestialObject) (*CelestialObject, error) {
	if err := validation.Field("object.name", object.Name); err != nil {
		return nil, err
	}

	var created CelestialObject
	if err := c.do(ctx, http.MethodPost, "/celestialobjects", object, &created); err != nil {
		return nil, err
	}
	c.store.Invalidate(EntityObjects)
	return &created, nil
}

// DeleteObject removes a catalog entry by id.
func (c *Client) DeleteObject(ctx context.Context, id string) error {
	if err := c.do(ctx, http.MethodDelete, "/celestialobjects/"+id, nil, nil); err != nil {
		return err
	}
	c.store.Invalidate(EntityObjects)
	return nil
}
