// Package client is the Go SDK for the wellness backend. Client wraps
// the HTTP surface; Session mirrors the signed-in user's entries the
// way the mobile app's context provider does.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/wellnessio/wellness-backend/internal/model"
)

// Client talks to a running wellness service.
type Client struct {
	http *resty.Client
}

// Option mutates a Client during construction.
type Option func(*Client)

// WithTimeout overrides the default request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.http.SetTimeout(d) }
}

// New constructs a Client for the service at baseURL.
func New(baseURL string, opts ...Option) *Client {
	if baseURL == "" {
		panic("baseURL cannot be empty")
	}
	c := &Client{
		http: resty.New().
			SetBaseURL(baseURL).
			SetHeader("Content-Type", "application/json").
			SetTimeout(30 * time.Second),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// apiError lifts the server's error envelope back into the shared
// sentinel errors so callers can use errors.Is.
func apiError(resp *resty.Response) error {
	var body struct {
		Message string `json:"message"`
	}
	_ = json.Unmarshal(resp.Body(), &body)
	msg := body.Message
	if msg == "" {
		msg = resp.Status()
	}
	switch resp.StatusCode() {
	case http.StatusBadRequest:
		return fmt.Errorf("%w: %s", model.ErrValidation, msg)
	case http.StatusForbidden:
		return fmt.Errorf("%w: %s", model.ErrForbidden, msg)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", model.ErrNotFound, msg)
	default:
		return fmt.Errorf("unexpected status %d: %s", resp.StatusCode(), msg)
	}
}

// Entries lists all entries owned by userID, newest first.
func (c *Client) Entries(ctx context.Context, userID string) ([]model.Entry, error) {
	var out []model.Entry
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParam("userId", userID).
		SetResult(&out).
		Get("/entries")
	if err != nil {
		return nil, err
	}
	if resp.StatusCode() != http.StatusOK {
		return nil, apiError(resp)
	}
	return out, nil
}

// CreateEntry posts a new entry and returns the server-assigned record.
func (c *Client) CreateEntry(ctx context.Context, req model.CreateEntryRequest) (*model.Entry, error) {
	var out model.Entry
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(&out).
		Post("/entries")
	if err != nil {
		return nil, err
	}
	if resp.StatusCode() != http.StatusCreated {
		return nil, apiError(resp)
	}
	return &out, nil
}

// UpdateEntry applies a partial update to an existing entry.
func (c *Client) UpdateEntry(ctx context.Context, entryID string, req model.UpdateEntryRequest) (*model.Entry, error) {
	var out model.Entry
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(&out).
		Put("/entries/" + entryID)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode() != http.StatusOK {
		return nil, apiError(resp)
	}
	return &out, nil
}

// DeleteEntry removes an entry owned by userID.
func (c *Client) DeleteEntry(ctx context.Context, entryID, userID string) error {
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParam("userId", userID).
		Delete("/entries/" + entryID)
	if err != nil {
		return err
	}
	if resp.StatusCode() != http.StatusNoContent {
		return apiError(resp)
	}
	return nil
}

// Quote fetches a quote via the service's proxy.
func (c *Client) Quote(ctx context.Context) (*model.Quote, error) {
	var out model.Quote
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&out).
		Get("/quote")
	if err != nil {
		return nil, err
	}
	if resp.StatusCode() != http.StatusOK {
		return nil, apiError(resp)
	}
	return &out, nil
}
