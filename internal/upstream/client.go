// Package upstream is the HTTP client for the backend REST API that owns all
// booking data. This service never persists domain entities itself; every
// read and mutation here goes through this client.
package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"tourdesk/internal/domain"
)

type Client struct {
	BaseURL    string
	Token      string
	HTTPClient *http.Client
}

func NewClient(baseURL, token string) *Client {
	return &Client{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		Token:      token,
		HTTPClient: &http.Client{Timeout: 15 * time.Second},
	}
}

func (c *Client) httpClient() *http.Client {
	if c.HTTPClient != nil {
		return c.HTTPClient
	}
	return http.DefaultClient
}

// listEnvelope matches the backend's nested list shape: {"data":{"data":[...]}}.
type listEnvelope[T any] struct {
	Data struct {
		Data []T `json:"data"`
	} `json:"data"`
}

// objectEnvelope matches single-object responses: {"data":{...}}.
type objectEnvelope[T any] struct {
	Data T `json:"data"`
}

func (c *Client) do(ctx context.Context, op, method, path string, query url.Values, body, out any) error {
	u := c.BaseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return domain.InternalError{Msg: "encode " + op + " payload", Err: err}
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return domain.UpstreamError{Op: op, Err: err}
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.Token)
	}

	resp, err := c.httpClient().Do(req)
	if err != nil {
		return domain.UpstreamError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return domain.NotFoundError{Resource: op}
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return domain.UpstreamError{Op: op, Status: resp.StatusCode,
			Err: fmt.Errorf("%s %s: %s", method, path, resp.Status)}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return domain.UpstreamError{Op: op, Err: err}
	}
	return nil
}

func getList[T any](ctx context.Context, c *Client, op, path string, query url.Values) ([]T, error) {
	var env listEnvelope[T]
	if err := c.do(ctx, op, http.MethodGet, path, query, nil, &env); err != nil {
		return nil, err
	}
	if env.Data.Data == nil {
		return []T{}, nil
	}
	return env.Data.Data, nil
}

func getObject[T any](ctx context.Context, c *Client, op, path string) (T, error) {
	var env objectEnvelope[T]
	if err := c.do(ctx, op, http.MethodGet, path, nil, nil, &env); err != nil {
		var zero T
		return zero, err
	}
	return env.Data, nil
}
