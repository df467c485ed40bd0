// Package web is the session-authenticated, server-rendered front end.
// It owns login, the session cookie and the access guard, and talks to
// the API tier over HTTP with a short-lived service token.
package web

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/nilepm/pm-suite/internal/utils"
)

// Client calls the API tier. Each request carries a freshly signed
// service token so a leaked token is only useful for a couple of minutes.
type Client struct {
	baseURL string
	secret  string
	http    *http.Client
}

const serviceTokenTTL = 2 * time.Minute

func NewClient(baseURL, secret string) *Client {
	return &Client{
		baseURL: baseURL,
		secret:  secret,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

// Send issues a request with an optional JSON payload and returns the
// response status and body. Non-2xx statuses are not errors here; the
// caller decides how to surface them.
func (c *Client) Send(ctx context.Context, method, path string, payload any) (int, []byte, error) {
	var body io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return 0, nil, err
		}
		body = bytes.NewReader(b)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return 0, nil, err
	}
	tok, err := utils.NewServiceToken(c.secret, "web", serviceTokenTTL)
	if err != nil {
		return 0, nil, err
	}
	req.Header.Set("Authorization", "Bearer "+tok)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, nil, err
	}
	return resp.StatusCode, data, nil
}

// GetJSON fetches path and decodes a 200 response into out.
func (c *Client) GetJSON(ctx context.Context, path string, out any) error {
	status, data, err := c.Send(ctx, http.MethodGet, path, nil)
	if err != nil {
		return err
	}
	if status != http.StatusOK {
		return fmt.Errorf("api: GET %s returned %d", path, status)
	}
	return json.Unmarshal(data, out)
}
