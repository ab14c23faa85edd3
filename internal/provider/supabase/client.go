// Package supabase wraps the two Supabase surfaces this service consumes: the
// auth admin API for identity management and the PostgREST interface for row
// inserts. Both authenticate with the service-role key.
package supabase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"foodbridge/pkg/platform/sentinel"
)

// Client issues authenticated requests against one Supabase project. One
// instance is shared by all request handlers; it holds no per-request state.
type Client struct {
	baseURL    string
	serviceKey string
	http       *http.Client
}

func New(baseURL, serviceKey string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		serviceKey: serviceKey,
		http:       &http.Client{Timeout: timeout},
	}
}

// CreateUser creates a confirmed-email identity via the auth admin API and
// returns the opaque user id.
func (c *Client) CreateUser(ctx context.Context, email, password string) (string, error) {
	body, err := json.Marshal(map[string]any{
		"email":         email,
		"password":      password,
		"email_confirm": true,
	})
	if err != nil {
		return "", fmt.Errorf("encode create user request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/auth/v1/admin/users", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build create user request: %w", err)
	}
	c.setHeaders(req)

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("create user call: %w: %w", sentinel.ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", upstreamError("create user", resp)
	}

	var out struct {
		ID string `json:"id"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("decode create user response: %w", err)
	}
	if out.ID == "" {
		return "", fmt.Errorf("create user response missing id")
	}
	return out.ID, nil
}

// DeleteUser removes an identity. Used as the compensating action when
// profile persistence fails after the identity was created.
func (c *Client) DeleteUser(ctx context.Context, id string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, c.baseURL+"/auth/v1/admin/users/"+id, nil)
	if err != nil {
		return fmt.Errorf("build delete user request: %w", err)
	}
	c.setHeaders(req)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("delete user call: %w: %w", sentinel.ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNoContent {
		return upstreamError("delete user", resp)
	}
	return nil
}

// Insert writes one row to a PostgREST table. Success is signaled by 201;
// Prefer: return=representation asks for the inserted row back, though the
// body is not consumed beyond error reporting.
func (c *Client) Insert(ctx context.Context, table string, row any) error {
	body, err := json.Marshal(row)
	if err != nil {
		return fmt.Errorf("encode %s row: %w", table, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/rest/v1/"+table, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build %s insert request: %w", table, err)
	}
	c.setHeaders(req)
	req.Header.Set("Prefer", "return=representation")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s insert call: %w: %w", table, sentinel.ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		return upstreamError(table+" insert", resp)
	}
	return nil
}

func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("apikey", c.serviceKey)
	req.Header.Set("Authorization", "Bearer "+c.serviceKey)
	req.Header.Set("Content-Type", "application/json")
}

func upstreamError(op string, resp *http.Response) error {
	detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
	return fmt.Errorf("%s returned %d: %s: %w", op, resp.StatusCode, detail, statusSentinel(resp.StatusCode))
}

func statusSentinel(status int) error {
	switch {
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return sentinel.ErrUnauthorized
	case status == http.StatusNotFound:
		return sentinel.ErrNotFound
	case status == http.StatusConflict || status == http.StatusUnprocessableEntity:
		return sentinel.ErrConflict
	default:
		return sentinel.ErrUnavailable
	}
}
