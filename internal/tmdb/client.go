// Copyright (c) 2026 MovieFinder. All rights reserved.
// Author: yaron.avidan.dev@gmail.com

/*
Package tmdb wraps outbound HTTP calls to The Movie Database catalog API:
genre list, paginated discovery, and per-movie detail with embedded credits.

Every call attaches the API key, is paced to stay under the safe request-rate
ceiling, and runs under a shared retry policy: transient failures back off
exponentially, HTTP 429 waits out the server-specified Retry-After without
consuming the attempt budget, and other client errors are permanent.

Callers treat a returned error as "skip this item", never as a reason to
abort a run.
*/
package tmdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"golang.org/x/time/rate"

	"github.com/yaronav/moviefinder/internal/platform/retry"
)

const (
	// requestTimeout bounds a single HTTP exchange.
	requestTimeout = 10 * time.Second

	// requestSpacing keeps the client at 4 requests/second.
	requestSpacing = 250 * time.Millisecond

	// maxAttempts and initialBackoff define the transient-failure budget:
	// three tries with 2s, 4s between them.
	maxAttempts    = 3
	initialBackoff = 2 * time.Second

	// defaultRateLimitWait applies when a 429 carries no Retry-After header.
	defaultRateLimitWait = 60 * time.Second
)

// StatusError is a non-2xx response from the catalog.
type StatusError struct {
	StatusCode int
	Endpoint   string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("tmdb: %s returned status %d", e.Endpoint, e.StatusCode)
}

// Client is the catalog API client. Construct it with [NewClient].
type Client struct {
	httpClient    *http.Client
	baseURL       string
	apiKey        string
	limiter       *rate.Limiter
	policy        retry.Policy
	rateLimitWait time.Duration
	logger        *slog.Logger
}

// Option customizes a [Client]; used mainly by tests.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) { c.httpClient = httpClient }
}

// WithPolicy replaces the retry policy.
func WithPolicy(policy retry.Policy) Option {
	return func(c *Client) { c.policy = policy }
}

// WithRequestSpacing replaces the inter-request pacing interval.
func WithRequestSpacing(spacing time.Duration) Option {
	return func(c *Client) { c.limiter = rate.NewLimiter(rate.Every(spacing), 1) }
}

// WithRateLimitWait replaces the default wait for 429s without Retry-After.
func WithRateLimitWait(wait time.Duration) Option {
	return func(c *Client) { c.rateLimitWait = wait }
}

// NewClient builds a catalog client against baseURL using apiKey.
func NewClient(baseURL, apiKey string, logger *slog.Logger, opts ...Option) *Client {
	c := &Client{
		httpClient:    &http.Client{Timeout: requestTimeout},
		baseURL:       baseURL,
		apiKey:        apiKey,
		limiter:       rate.NewLimiter(rate.Every(requestSpacing), 1),
		rateLimitWait: defaultRateLimitWait,
		logger:        logger,
	}
	c.policy = retry.Policy{
		MaxAttempts:     maxAttempts,
		InitialInterval: initialBackoff,
		Multiplier:      2,
		Retryable:       retryable,
		Notify: func(err error, next time.Duration) {
			logger.Warn("catalog request failed, backing off",
				slog.Any("error", err),
				slog.Duration("wait", next),
			)
		},
	}

	for _, opt := range opts {
		opt(c)
	}
	return c
}

// retryable classifies transport errors and 5xx responses as transient.
// Anything else (4xx, malformed bodies, dead contexts) is permanent.
func retryable(err error) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}

	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return statusErr.StatusCode >= http.StatusInternalServerError
	}

	var urlErr *url.Error
	return errors.As(err, &urlErr)
}

// ListGenres fetches the full genre list.
func (c *Client) ListGenres(ctx context.Context) ([]Genre, error) {
	var list GenreList
	if err := c.get(ctx, "genre/movie/list", nil, &list); err != nil {
		return nil, err
	}
	return list.Genres, nil
}

// DiscoverPage fetches one page of popularity-sorted movie discovery.
func (c *Client) DiscoverPage(ctx context.Context, page int) (*DiscoverPage, error) {
	params := url.Values{}
	params.Set("sort_by", "popularity.desc")
	params.Set("page", strconv.Itoa(page))
	params.Set("include_adult", "false")
	params.Set("language", "en-US")

	var result DiscoverPage
	if err := c.get(ctx, "discover/movie", params, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// MovieDetail fetches one movie's detail with credits appended, so cast and
// crew arrive in the same round-trip.
func (c *Client) MovieDetail(ctx context.Context, movieID int) (*MovieDetail, error) {
	params := url.Values{}
	params.Set("append_to_response", "credits")

	var detail MovieDetail
	if err := c.get(ctx, fmt.Sprintf("movie/%d", movieID), params, &detail); err != nil {
		return nil, err
	}
	return &detail, nil
}

// get performs one GET under the retry policy, decoding the JSON body into
// target on success.
func (c *Client) get(ctx context.Context, endpoint string, params url.Values, target any) error {
	return c.policy.Do(ctx, func(ctx context.Context) error {
		// Pace every attempt, successful or not, to stay under the ceiling.
		if err := c.limiter.Wait(ctx); err != nil {
			return err
		}

		query := url.Values{}
		for key, values := range params {
			query[key] = values
		}
		query.Set("api_key", c.apiKey)

		requestURL := fmt.Sprintf("%s/%s?%s", c.baseURL, endpoint, query.Encode())
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
		if err != nil {
			return fmt.Errorf("tmdb: build request: %w", err)
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return err
		}
		defer resp.Body.Close()

		switch {
		case resp.StatusCode == http.StatusTooManyRequests:
			return &retry.RateLimitError{RetryAfter: retryAfterFrom(resp, c.rateLimitWait)}
		case resp.StatusCode != http.StatusOK:
			return &StatusError{StatusCode: resp.StatusCode, Endpoint: endpoint}
		}

		if err := json.NewDecoder(resp.Body).Decode(target); err != nil {
			return fmt.Errorf("tmdb: decode %s response: %w", endpoint, err)
		}
		return nil
	})
}

// retryAfterFrom reads the Retry-After header in seconds, falling back to
// fallback when the header is absent or unparseable.
func retryAfterFrom(resp *http.Response, fallback time.Duration) time.Duration {
	header := resp.Header.Get("Retry-After")
	if header == "" {
		return fallback
	}
	seconds, err := strconv.Atoi(header)
	if err != nil || seconds < 0 {
		return fallback
	}
	return time.Duration(seconds) * time.Second
}
