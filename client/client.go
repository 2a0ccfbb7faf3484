package client

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"

	"go.uber.org/zap"
)

const refreshPath = "/v1/auth/refresh-token"

// Client wraps an HTTP client with bearer-token injection against the
// upstream API. On a 401 it refreshes the token pair exactly once per refresh
// cycle and replays requests that failed meanwhile (see refresh.go).
type Client struct {
	baseURL string
	httpc   *http.Client
	store   TokenStore
	logger  *zap.Logger

	refresh refreshGroup
}

// New builds a client for the given API base URL and token store. httpc may
// be nil, in which case http.DefaultClient is used; callers wanting timeouts
// on the refresh call should impose them there.
func New(baseURL string, store TokenStore, httpc *http.Client, logger *zap.Logger) *Client {
	if httpc == nil {
		httpc = http.DefaultClient
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   httpc,
		store:   store,
		logger:  logger,
	}
}

// Store exposes the session token store, for login and logout flows.
func (c *Client) Store() TokenStore {
	return c.store
}

// isAuthPath reports whether the path belongs to the login or refresh
// endpoints. A 401 there never triggers a refresh; it propagates directly.
func isAuthPath(path string) bool {
	return strings.Contains(path, "/auth/login") || strings.Contains(path, "/auth/refresh-token")
}

// Do sends one request with the stored access token attached. A 401 on a
// non-auth endpoint triggers (or joins) a token refresh, after which the
// request is replayed at most once with the new token. The request body, if
// any, is supplied as bytes so the replay can rebuild it.
func (c *Client) Do(ctx context.Context, method, path string, query url.Values, body []byte, contentType string) (*http.Response, error) {
	pair, err := c.store.Get(ctx)
	if err != nil {
		return nil, err
	}

	resp, err := c.send(ctx, method, path, query, body, contentType, pair.AccessToken)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusUnauthorized || isAuthPath(path) {
		return resp, nil
	}

	// 401 on a protected endpoint: this request either becomes the refresher
	// or joins the wait queue. Either way it is retried exactly once.
	resp.Body.Close()
	token, err := c.refreshAccess(ctx)
	if err != nil {
		return nil, err
	}
	return c.send(ctx, method, path, query, body, contentType, token)
}

func (c *Client) send(ctx context.Context, method, path string, query url.Values, body []byte, contentType, token string) (*http.Response, error) {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return nil, err
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return c.httpc.Do(req)
}

// GetJSON performs a GET and decodes the JSON response into out.
func (c *Client) GetJSON(ctx context.Context, path string, query url.Values, out any) error {
	return c.doJSON(ctx, http.MethodGet, path, query, nil, out)
}

// PostJSON performs a POST with a JSON body and decodes the response into out.
func (c *Client) PostJSON(ctx context.Context, path string, in, out any) error {
	body, err := json.Marshal(in)
	if err != nil {
		return err
	}
	return c.doJSON(ctx, http.MethodPost, path, nil, body, out)
}

// PatchJSON performs a PATCH with a JSON body and decodes the response into out.
func (c *Client) PatchJSON(ctx context.Context, path string, in, out any) error {
	body, err := json.Marshal(in)
	if err != nil {
		return err
	}
	return c.doJSON(ctx, http.MethodPatch, path, nil, body, out)
}

// Delete performs a DELETE and decodes the response into out when non-nil.
func (c *Client) Delete(ctx context.Context, path string, out any) error {
	return c.doJSON(ctx, http.MethodDelete, path, nil, nil, out)
}

func (c *Client) doJSON(ctx context.Context, method, path string, query url.Values, body []byte, out any) error {
	contentType := ""
	if body != nil {
		contentType = "application/json"
	}
	resp, err := c.Do(ctx, method, path, query, body, contentType)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeAPIError(resp)
	}
	if out == nil {
		io.Copy(io.Discard, resp.Body)
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func decodeAPIError(resp *http.Response) error {
	apiErr := &APIError{StatusCode: resp.StatusCode}
	var payload struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err == nil {
		if payload.Error != "" {
			apiErr.Message = payload.Error
		} else {
			apiErr.Message = payload.Message
		}
	}
	if apiErr.Message == "" {
		apiErr.Message = http.StatusText(resp.StatusCode)
	}
	return apiErr
}
