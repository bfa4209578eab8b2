// Package mediawiki implements a link source on top of the MediaWiki Action API.
package mediawiki

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/sethvargo/go-retry"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"

	"github.com/persistorai/wikipath/internal/metrics"
)

// DefaultEndpoint is the English Wikipedia Action API.
const DefaultEndpoint = "https://en.wikipedia.org/w/api.php"

// maxResponseBytes caps how much of a response body is read.
const maxResponseBytes = 16 << 20

// Client talks to one MediaWiki Action API endpoint.
type Client struct {
	endpoint   string
	userAgent  string
	httpClient *http.Client
	limiter    *rate.Limiter
	maxRetries uint64
	retryBase  time.Duration
	log        *logrus.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithTimeout sets the HTTP client timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.httpClient.Timeout = d }
}

// WithUserAgent sets the User-Agent header sent with every request.
func WithUserAgent(ua string) Option {
	return func(c *Client) { c.userAgent = ua }
}

// WithRateLimit throttles outgoing requests to rps with the given burst.
// A non-positive rps disables throttling.
func WithRateLimit(rps float64, burst int) Option {
	return func(c *Client) {
		if rps <= 0 {
			c.limiter = rate.NewLimiter(rate.Inf, 0)
			return
		}
		if burst < 1 {
			burst = 1
		}
		c.limiter = rate.NewLimiter(rate.Limit(rps), burst)
	}
}

// WithRetries sets how often a retryable failure is retried and the base of
// the exponential backoff between attempts.
func WithRetries(maxRetries int, base time.Duration) Option {
	return func(c *Client) {
		if maxRetries < 0 {
			maxRetries = 0
		}
		c.maxRetries = uint64(maxRetries)
		if base > 0 {
			c.retryBase = base
		}
	}
}

// WithLogger sets the logger used for retry diagnostics.
func WithLogger(log *logrus.Logger) Option {
	return func(c *Client) { c.log = log }
}

// New creates a Client for the given api.php URL.
func New(endpoint string, opts ...Option) *Client {
	c := &Client{
		endpoint:   endpoint,
		userAgent:  "wikipath/dev",
		httpClient: &http.Client{Timeout: 30 * time.Second},
		limiter:    rate.NewLimiter(rate.Limit(10), 5),
		maxRetries: 3,
		retryBase:  500 * time.Millisecond,
		log:        logrus.StandardLogger(),
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// query runs one action=query request, retrying transient failures.
func (c *Client) query(ctx context.Context, op string, params url.Values, result any) error {
	params.Set("action", "query")
	params.Set("format", "json")
	params.Set("formatversion", "2")

	b := retry.NewExponential(c.retryBase)
	b = retry.WithJitterPercent(10, b)
	b = retry.WithMaxRetries(c.maxRetries, b)

	attempt := 0

	return retry.Do(ctx, b, func(ctx context.Context) error {
		if attempt > 0 {
			metrics.UpstreamRetries.Inc()
			c.log.WithFields(logrus.Fields{
				"op":      op,
				"attempt": attempt + 1,
			}).Debug("retrying mediawiki request")
		}
		attempt++

		err := c.do(ctx, op, params, result)
		if err != nil && IsRetryable(err) {
			return retry.RetryableError(err)
		}
		return err
	})
}

// do executes a single GET request and decodes the JSON response.
func (c *Client) do(ctx context.Context, op string, params url.Values, result any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limit wait: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint+"?"+params.Encode(), http.NoBody)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		metrics.UpstreamRequests.WithLabelValues(op, "transport_error").Inc()
		return &transportError{err: err}
	}
	defer resp.Body.Close()

	metrics.UpstreamRequests.WithLabelValues(op, strconv.Itoa(resp.StatusCode)).Inc()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return &transportError{err: fmt.Errorf("read response: %w", err)}
	}

	if resp.StatusCode >= 400 {
		return parseHTTPError(resp.StatusCode, body)
	}

	var envelope struct {
		Error *APIError `json:"error"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	if envelope.Error != nil {
		return envelope.Error
	}

	if err := json.Unmarshal(body, result); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}

	return nil
}
