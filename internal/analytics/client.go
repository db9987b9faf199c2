// Oceanus - Vessel and Commodity Movement Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/oceanus

package analytics

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/goccy/go-json"
	gobreaker "github.com/sony/gobreaker/v2"
	"golang.org/x/time/rate"

	"github.com/tomtom215/oceanus/internal/cache"
	"github.com/tomtom215/oceanus/internal/config"
	"github.com/tomtom215/oceanus/internal/logging"
	"github.com/tomtom215/oceanus/internal/metrics"
	"github.com/tomtom215/oceanus/internal/models"
)

// maxErrorBodySize bounds how much of an error response is kept.
const maxErrorBodySize = 64 * 1024

// readBodyForError reads at most maxErrorBodySize bytes of r for an error
// message, marking truncation.
func readBodyForError(r io.Reader) []byte {
	body, err := io.ReadAll(io.LimitReader(r, maxErrorBodySize))
	if err != nil {
		return []byte("(failed to read response body)")
	}
	if len(body) == maxErrorBodySize {
		return append(body, []byte("\n... (truncated)")...)
	}
	return body
}

// StatusError is a non-200 response from the analytics server.
type StatusError struct {
	Endpoint   string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s request failed with status %d: %s", e.Endpoint, e.StatusCode, e.Body)
}

// Client calls the analytics server over HTTP. It is safe for concurrent use.
type Client struct {
	baseURL string
	http    *http.Client
	limiter *rate.Limiter
	breaker *gobreaker.CircuitBreaker[[]byte]
	cache   *cache.LRU[[]byte]
}

// NewClient creates a client for cfg.URL.
func NewClient(cfg *config.AnalyticsConfig) *Client {
	limit := rate.Inf
	if cfg.RequestsPerSecond > 0 {
		limit = rate.Limit(cfg.RequestsPerSecond)
	}
	burst := cfg.Burst
	if burst < 1 {
		burst = 1
	}

	c := &Client{
		baseURL: strings.TrimRight(cfg.URL, "/"),
		http:    &http.Client{Timeout: cfg.Timeout},
		limiter: rate.NewLimiter(limit, burst),
		breaker: newBreaker(cfg),
	}
	if cfg.CacheSize > 0 {
		c.cache = cache.NewLRU[[]byte](cfg.CacheSize, cfg.CacheTTL)
	}
	return c
}

// Get fetches {base}/{api} and decodes the JSON response into out.
func (c *Client) Get(ctx context.Context, api string, out interface{}) error {
	body, err := c.do(ctx, http.MethodGet, api, nil)
	if err != nil {
		return err
	}
	return decode(api, body, out)
}

// Post sends param as JSON to {base}/{api} and decodes the response into out.
func (c *Client) Post(ctx context.Context, api string, param, out interface{}) error {
	payload, err := json.Marshal(param)
	if err != nil {
		return fmt.Errorf("failed to encode %s request: %w", api, err)
	}
	body, err := c.do(ctx, http.MethodPost, api, payload)
	if err != nil {
		return err
	}
	return decode(api, body, out)
}

// GetVesselTSNE requests the t-SNE projection of the queried vessels.
func (c *Client) GetVesselTSNE(ctx context.Context, query models.AnalyticsQuery) ([]models.TSNEPoint, error) {
	var points []models.TSNEPoint
	if err := c.cachedPost(ctx, EndpointVesselTSNE, query, &points); err != nil {
		return nil, err
	}
	return points, nil
}

// GetAggregateVesselMovements requests the aggregated movement timeline.
func (c *Client) GetAggregateVesselMovements(ctx context.Context, query models.AnalyticsQuery) ([]models.AggregateSegment, error) {
	var segments []models.AggregateSegment
	if err := c.cachedPost(ctx, EndpointAggregateMovements, query, &segments); err != nil {
		return nil, err
	}
	return segments, nil
}

// cachedPost is Post with response memoization keyed by endpoint and the
// query with its id lists sorted.
func (c *Client) cachedPost(ctx context.Context, api string, query models.AnalyticsQuery, out interface{}) error {
	if c.cache == nil {
		return c.Post(ctx, api, query, out)
	}

	key, err := cacheKey(api, query)
	if err != nil {
		return err
	}
	if body, ok := c.cache.Get(key); ok {
		metrics.RecordAnalyticsCache(true)
		return decode(api, body, out)
	}
	metrics.RecordAnalyticsCache(false)

	payload, err := json.Marshal(query)
	if err != nil {
		return fmt.Errorf("failed to encode %s request: %w", api, err)
	}
	body, err := c.do(ctx, http.MethodPost, api, payload)
	if err != nil {
		return err
	}
	if err := decode(api, body, out); err != nil {
		return err
	}
	c.cache.Add(key, body)
	return nil
}

func cacheKey(api string, query models.AnalyticsQuery) (string, error) {
	canonical := query
	canonical.VesselIDs = sortedCopy(query.VesselIDs)
	canonical.LocationIDs = sortedCopy(query.LocationIDs)
	b, err := json.Marshal(canonical)
	if err != nil {
		return "", fmt.Errorf("failed to encode %s cache key: %w", api, err)
	}
	return api + ":" + string(b), nil
}

func sortedCopy(ids []string) []string {
	out := append([]string(nil), ids...)
	sort.Strings(out)
	return out
}

// do performs one request through the limiter and the breaker and returns
// the body of a 200 response.
func (c *Client) do(ctx context.Context, method, api string, payload []byte) ([]byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("%s request not sent: %w", api, err)
	}

	start := time.Now()
	statusCode := 0
	body, err := c.breaker.Execute(func() ([]byte, error) {
		var reqBody io.Reader = http.NoBody
		if payload != nil {
			reqBody = bytes.NewReader(payload)
		}
		req, err := http.NewRequestWithContext(ctx, method, c.baseURL+"/"+api, reqBody)
		if err != nil {
			return nil, fmt.Errorf("failed to create %s request: %w", api, err)
		}
		req.Header.Set("Accept", "application/json")
		if payload != nil {
			req.Header.Set("Content-Type", "application/json")
		}

		resp, err := c.http.Do(req)
		if err != nil {
			return nil, fmt.Errorf("%s request failed: %w", api, err)
		}
		defer resp.Body.Close()
		statusCode = resp.StatusCode

		if resp.StatusCode != http.StatusOK {
			return nil, &StatusError{
				Endpoint:   api,
				StatusCode: resp.StatusCode,
				Body:       string(readBodyForError(resp.Body)),
			}
		}
		b, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s response: %w", api, err)
		}
		return b, nil
	})

	duration := time.Since(start)
	metrics.RecordAnalyticsRequest(api, statusCode, duration, err)
	recordBreakerResult(err)

	if err != nil {
		logging.Ctx(ctx).Warn().
			Str("endpoint", api).
			Int("status", statusCode).
			Dur("duration", duration).
			Err(err).
			Msg("Analytics request failed")
		return nil, err
	}
	logging.Ctx(ctx).Debug().
		Str("endpoint", api).
		Dur("duration", duration).
		Int("bytes", len(body)).
		Msg("Analytics request completed")
	return body, nil
}

func decode(api string, body []byte, out interface{}) error {
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to decode %s response: %w", api, err)
	}
	return nil
}
