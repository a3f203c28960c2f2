// Package bestbuy provides a client for the Best Buy product catalog API:
// products, categories, stores, reviews, store availability, open-box
// listings, recommendations and warranties.
//
// Responses are returned as generically decoded JSON documents so that the
// full, evolving API schema passes through untouched. Callers pick between
// plain maps and order-preserving mappings at construction time.
package bestbuy

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/bestbuyapis/bestbuy-go/internal/metrics"
)

const (
	defaultV1URL   = "https://api.bestbuy.com/v1"
	defaultBetaURL = "https://api.bestbuy.com/beta"
	defaultRootURL = "https://api.bestbuy.com"

	// APIKeyEnv is the environment variable read by WithAPIKeyFromEnv.
	APIKeyEnv = "BBY_API_KEY"
)

// Params holds caller-supplied query parameters (pagination, sorting,
// attribute selection). They are passed through to the API verbatim.
type Params map[string]string

type apiHost int

const (
	hostV1 apiHost = iota
	hostBeta
	hostRoot
)

// Client is a Best Buy API client. It is immutable after New and safe for
// concurrent use; each call is an independent, synchronous GET.
type Client struct {
	apiKey      string
	debug       bool
	associative bool
	userAgent   string
	log         *slog.Logger
	hc          *http.Client
	limiter     *RateLimiter

	v1URL   string
	betaURL string
	rootURL string
}

// Option configures the Client.
type Option func(*Client)

// WithAPIKey sets the API key. Later options win, so an explicit key
// overrides one resolved from the environment.
func WithAPIKey(key string) Option {
	return func(c *Client) {
		if key != "" {
			c.apiKey = key
		}
	}
}

// WithAPIKeyFromEnv resolves the API key from the BBY_API_KEY environment
// variable. The lookup happens once, at construction.
func WithAPIKeyFromEnv() Option {
	return func(c *Client) {
		if key := os.Getenv(APIKeyEnv); key != "" {
			c.apiKey = key
		}
	}
}

// WithDebug enables per-request diagnostics on the configured logger.
func WithDebug(debug bool) Option {
	return func(c *Client) {
		c.debug = debug
	}
}

// WithAssociative selects order-preserving *OrderedMap decoding of JSON
// objects instead of map[string]any.
func WithAssociative(associative bool) Option {
	return func(c *Client) {
		c.associative = associative
	}
}

// WithLogger sets the logging sink for debug diagnostics.
func WithLogger(log *slog.Logger) Option {
	return func(c *Client) {
		c.log = log
	}
}

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.hc = hc
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		c.userAgent = ua
	}
}

// WithRateLimiter injects a rate limiter that enforces the per-second and
// daily call quotas of the API key. When set, every request goes through
// Wait() before dispatch.
func WithRateLimiter(r *RateLimiter) Option {
	return func(c *Client) {
		c.limiter = r
	}
}

// WithV1URL overrides the v1 API base URL.
func WithV1URL(u string) Option {
	return func(c *Client) {
		c.v1URL = u
	}
}

// WithBetaURL overrides the beta API base URL.
func WithBetaURL(u string) Option {
	return func(c *Client) {
		c.betaURL = u
	}
}

// WithRootURL overrides the bare host URL used for version checks.
func WithRootURL(u string) Option {
	return func(c *Client) {
		c.rootURL = u
	}
}

// New creates a Best Buy API client. Without a WithAPIKey or
// WithAPIKeyFromEnv option every request fails with ErrMissingAPIKey.
func New(opts ...Option) *Client {
	c := &Client{
		userAgent: "bestbuy-go/" + Version,
		hc:        &http.Client{Timeout: 30 * time.Second},
		v1URL:     defaultV1URL,
		betaURL:   defaultBetaURL,
		rootURL:   defaultRootURL,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) base(host apiHost) string {
	switch host {
	case hostBeta:
		return c.betaURL
	case hostRoot:
		return c.rootURL
	default:
		return c.v1URL
	}
}

// call builds the URL for one endpoint invocation, dispatches it and
// decodes the response.
func (c *Client) call(ctx context.Context, host apiHost, path string, params Params) (any, error) {
	u, err := buildURL(c.base(host), path, params, c.apiKey)
	if err != nil {
		return nil, err
	}
	body, err := c.do(ctx, u)
	if err != nil {
		return nil, err
	}
	return decode(body, c.associative, false), nil
}

// do performs a single GET and returns the full response body. Redirects
// are followed, non-2xx statuses fail, and no attempt is retried. One
// informational log event is emitted per successful call and one error
// event per failed call when debug logging is on.
func (c *Client) do(ctx context.Context, u string) ([]byte, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			if errors.Is(err, ErrDailyLimitReached) {
				metrics.DailyLimitHits.Inc()
			}
			return nil, fmt.Errorf("rate limit: %w", err)
		}
		metrics.DailyUsage.Set(float64(c.limiter.DailyCount()))
	}
	metrics.APICallsTotal.Inc()

	start := time.Now()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("creating HTTP request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.hc.Do(req)
	if err != nil {
		return nil, c.fail(&ServiceError{URL: u, Err: err}, start)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, c.fail(&ServiceError{URL: u, StatusCode: resp.StatusCode, Err: err}, start)
	}

	metrics.RequestDuration.Observe(time.Since(start).Seconds())

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, c.fail(&ServiceError{
			URL:        u,
			StatusCode: resp.StatusCode,
			Body:       string(body),
		}, start)
	}

	if c.debug && c.log != nil {
		c.log.Info("request complete",
			"url", u,
			"status", resp.StatusCode,
			"duration", time.Since(start),
		)
	}

	return body, nil
}

// fail records a transport failure on the logging sink before the error is
// surfaced to the caller. The full diagnostic (underlying error text and
// response body) goes to the log; the returned error stays terse.
func (c *Client) fail(serr *ServiceError, start time.Time) error {
	metrics.APIErrorsTotal.Inc()

	if c.debug && c.log != nil {
		attrs := []any{
			"url", serr.URL,
			"duration", time.Since(start),
		}
		if serr.StatusCode != 0 {
			attrs = append(attrs, "status", serr.StatusCode)
		}
		if serr.Err != nil {
			attrs = append(attrs, "error", serr.Err)
		}
		if serr.Body != "" {
			attrs = append(attrs, "body", serr.Body)
		}
		c.log.Error("request failed", attrs...)
	}

	return serr
}
