// Package keycloak provisions identities through the Keycloak admin REST
// API. User rows reference Keycloak identities, so creating a user first
// creates (or finds) the identity there.
package keycloak

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Provisioner manages identities in the external identity provider.
type Provisioner interface {
	// CreateUser creates the identity and returns its ID.
	CreateUser(ctx context.Context, username, email, firstName, lastName string) (uuid.UUID, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	DeleteUser(ctx context.Context, id uuid.UUID) error
}

// Config holds Keycloak admin credentials.
type Config struct {
	BaseURL       string
	Realm         string
	AdminUsername string
	AdminPassword string
	ClientID      string
	ClientSecret  string
}

// Client talks to the Keycloak admin REST API.
type Client struct {
	cfg        Config
	httpClient *http.Client
}

func NewClient(cfg Config) *Client {
	return &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *Client) adminToken(ctx context.Context) (string, error) {
	form := url.Values{}
	form.Set("grant_type", "password")
	form.Set("client_id", c.cfg.ClientID)
	form.Set("username", c.cfg.AdminUsername)
	form.Set("password", c.cfg.AdminPassword)
	if c.cfg.ClientSecret != "" {
		form.Set("client_secret", c.cfg.ClientSecret)
	}

	tokenURL := c.endpoint("realms", c.cfg.Realm, "protocol", "openid-connect", "token")
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, tokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("keycloak token request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("keycloak token request returned %d: %s", resp.StatusCode, body)
	}

	var payload struct {
		AccessToken string `json:"access_token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", fmt.Errorf("keycloak token decode failed: %w", err)
	}
	return payload.AccessToken, nil
}

func (c *Client) endpoint(parts ...string) string {
	return strings.TrimSuffix(c.cfg.BaseURL, "/") + "/" + path.Join(parts...)
}

func (c *Client) do(ctx context.Context, method, endpoint string, body any) (*http.Response, error) {
	token, err := c.adminToken(ctx)
	if err != nil {
		return nil, err
	}

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+token)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return c.httpClient.Do(req)
}

// CreateUser creates an enabled identity in the realm. Keycloak returns the
// new ID in the Location header.
func (c *Client) CreateUser(ctx context.Context, username, email, firstName, lastName string) (uuid.UUID, error) {
	payload := map[string]any{
		"username":  username,
		"email":     email,
		"firstName": firstName,
		"lastName":  lastName,
		"enabled":   true,
	}

	resp, err := c.do(ctx, http.MethodPost, c.endpoint("admin", "realms", c.cfg.Realm, "users"), payload)
	if err != nil {
		return uuid.Nil, fmt.Errorf("keycloak create user failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		body, _ := io.ReadAll(resp.Body)
		return uuid.Nil, fmt.Errorf("keycloak create user returned %d: %s", resp.StatusCode, body)
	}

	location := resp.Header.Get("Location")
	id, err := uuid.Parse(path.Base(location))
	if err != nil {
		return uuid.Nil, fmt.Errorf("keycloak returned unparseable user location %q", location)
	}
	return id, nil
}

// EmailExists checks for an exact email match in the realm.
func (c *Client) EmailExists(ctx context.Context, email string) (bool, error) {
	endpoint := c.endpoint("admin", "realms", c.cfg.Realm, "users") + "?exact=true&email=" + url.QueryEscape(email)
	resp, err := c.do(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return false, fmt.Errorf("keycloak user lookup failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return false, fmt.Errorf("keycloak user lookup returned %d: %s", resp.StatusCode, body)
	}

	var users []json.RawMessage
	if err := json.NewDecoder(resp.Body).Decode(&users); err != nil {
		return false, fmt.Errorf("keycloak user lookup decode failed: %w", err)
	}
	return len(users) > 0, nil
}

// DeleteUser removes the identity. A missing identity is not an error.
func (c *Client) DeleteUser(ctx context.Context, id uuid.UUID) error {
	resp, err := c.do(ctx, http.MethodDelete, c.endpoint("admin", "realms", c.cfg.Realm, "users", id.String()), nil)
	if err != nil {
		return fmt.Errorf("keycloak delete user failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusNoContent && resp.StatusCode != http.StatusNotFound {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("keycloak delete user returned %d: %s", resp.StatusCode, body)
	}
	return nil
}

// NoopProvisioner generates local IDs when Keycloak is not configured, so
// development environments work without an identity provider.
type NoopProvisioner struct{}

func NewNoopProvisioner() *NoopProvisioner {
	return &NoopProvisioner{}
}

func (NoopProvisioner) CreateUser(ctx context.Context, username, email, firstName, lastName string) (uuid.UUID, error) {
	return uuid.New(), nil
}

func (NoopProvisioner) EmailExists(ctx context.Context, email string) (bool, error) {
	return false, nil
}

func (NoopProvisioner) DeleteUser(ctx context.Context, id uuid.UUID) error {
	return nil
}
