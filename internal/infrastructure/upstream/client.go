// Package upstream implements the bill-fetch collaborator against the
// remote billing API that owns persistence.
package upstream

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/jumjum/admin-api/internal/config"
	"github.com/jumjum/admin-api/internal/domain/entity"
	"github.com/jumjum/admin-api/internal/domain/repository"
)

// envelope is the upstream wire format: {success, data, error}.
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

// Client is an HTTP implementation of repository.BillRepository.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

var _ repository.BillRepository = (*Client)(nil)

// NewClient creates a billing API client from upstream configuration.
func NewClient(cfg *config.UpstreamConfig) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:  cfg.APIKey,
		http:    &http.Client{Timeout: cfg.Timeout},
	}
}

// FetchAll returns the most recent bills, capped at limit.
func (c *Client) FetchAll(ctx context.Context, limit int) ([]entity.Bill, error) {
	query := url.Values{}
	if limit > 0 {
		query.Set("limit", strconv.Itoa(limit))
	}
	return c.getBills(ctx, "/billing", query)
}

// FetchToday returns bills created on the current calendar day.
func (c *Client) FetchToday(ctx context.Context) ([]entity.Bill, error) {
	return c.getBills(ctx, "/billing/today", nil)
}

// FetchByDateRange returns bills within the inclusive calendar-day
// interval; the range predicate runs on the upstream side.
func (c *Client) FetchByDateRange(ctx context.Context, start, end time.Time) ([]entity.Bill, error) {
	query := url.Values{}
	query.Set("start", start.Format("2006-01-02"))
	query.Set("end", end.Format("2006-01-02"))
	return c.getBills(ctx, "/billing/range", query)
}

func (c *Client) getBills(ctx context.Context, path string, query url.Values) ([]entity.Bill, error) {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("upstream: build request %s: %w", path, err)
	}
	req.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("upstream: %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("upstream: %s: unexpected status %d", path, resp.StatusCode)
	}

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, fmt.Errorf("upstream: %s: decode response: %w", path, err)
	}
	if !env.Success {
		return nil, fmt.Errorf("upstream: %s: %s", path, env.Error)
	}

	var bills []entity.Bill
	if len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, &bills); err != nil {
			return nil, fmt.Errorf("upstream: %s: decode bills: %w", path, err)
		}
	}
	return bills, nil
}
