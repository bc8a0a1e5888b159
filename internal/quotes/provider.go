// Package quotes fetches a random inspirational quote from an external
// provider. Pure pass-through: no retries, no caching.
package quotes

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/wellnessio/wellness-backend/internal/model"
)

// DefaultURL is the upstream used when none is configured.
const DefaultURL = "https://dummyjson.com/quotes/random"

// Provider calls the upstream quote API.
type Provider struct {
	client *resty.Client
	url    string
}

// NewProvider creates a Provider for the given upstream URL. An empty
// url falls back to DefaultURL; a zero timeout means no client timeout.
func NewProvider(url string, timeout time.Duration) *Provider {
	if url == "" {
		url = DefaultURL
	}
	c := resty.New().
		SetHeader("Accept", "application/json").
		SetTimeout(timeout)
	return &Provider{client: c, url: url}
}

// Random fetches one quote and validates its shape: both quote and
// author must be present. The upstream payload is returned verbatim.
func (p *Provider) Random(ctx context.Context) (*model.Quote, error) {
	resp, err := p.client.R().SetContext(ctx).Get(p.url)
	if err != nil {
		return nil, fmt.Errorf("quote upstream: %w", err)
	}
	if resp.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("quote upstream status %d: %s", resp.StatusCode(), resp.String())
	}
	var q model.Quote
	if err := json.Unmarshal(resp.Body(), &q); err != nil {
		return nil, fmt.Errorf("quote upstream decode: %w", err)
	}
	if q.Quote == "" || q.Author == "" {
		return nil, fmt.Errorf("quote upstream returned unexpected shape")
	}
	return &q, nil
}
