package nws

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"net/http"
	"time"

	"github.com/sony/gobreaker"

	"github.com/coastalwx/marine-forecast-etl/internal/domain"
)

var (
	errRateLimited = errors.New("rate limited")
	errServerError = errors.New("server error")
	errUnexpected  = errors.New("unexpected status code")
	errCircuitOpen = errors.New("circuit breaker open")
)

type backoffConfig struct {
	maxRetries      int
	initialInterval time.Duration
	maxInterval     time.Duration
}

// Client fetches coastal waters forecast bulletins from the NWS product pages.
// A single circuit breaker is shared across zones since they hit the same host.
type Client struct {
	httpClient *http.Client
	breaker    *gobreaker.CircuitBreaker
	backoff    backoffConfig
	logger     *slog.Logger
}

// NewClient creates a bulletin client with retries and a circuit breaker.
func NewClient(timeout time.Duration, maxRetries int, logger *slog.Logger) *Client {
	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "nws",
		MaxRequests: 3,
		Interval:    1 * time.Minute,
		Timeout:     2 * time.Minute,
	})

	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		breaker:    cb,
		backoff: backoffConfig{
			maxRetries:      maxRetries,
			initialInterval: 500 * time.Millisecond,
			maxInterval:     5 * time.Second,
		},
		logger: logger,
	}
}

// FetchBulletin retrieves the product page for a zone and strips its HTML
// wrapper, returning the plain bulletin text.
func (c *Client) FetchBulletin(ctx context.Context, zone domain.Zone) (string, error) {
	resp, err := c.doRequest(ctx, zone.SourceURL)
	if err != nil {
		return "", fmt.Errorf("fetch %s bulletin: %w", zone.ID, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read %s bulletin: %w", zone.ID, err)
	}

	return domain.StripHTML(string(body)), nil
}

// doRequest executes the GET with exponential backoff. Rate limits and 5xx
// responses count as failures toward the breaker; an open breaker fails the
// whole fetch immediately.
func (c *Client) doRequest(ctx context.Context, url string) (*http.Response, error) {
	var attempt int
	var lastErr error

	for {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return nil, fmt.Errorf("create request: %w", err)
		}

		result, err := c.breaker.Execute(func() (interface{}, error) {
			resp, execErr := c.httpClient.Do(req)
			if execErr != nil {
				return nil, execErr
			}

			if resp.StatusCode == http.StatusTooManyRequests {
				resp.Body.Close()
				return nil, errRateLimited
			}
			if resp.StatusCode >= 500 {
				resp.Body.Close()
				return nil, errServerError
			}
			if resp.StatusCode != http.StatusOK {
				resp.Body.Close()
				return nil, fmt.Errorf("%w: %d", errUnexpected, resp.StatusCode)
			}

			return resp, nil
		})
		if err == nil {
			return result.(*http.Response), nil
		}

		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return nil, fmt.Errorf("%w: %v", errCircuitOpen, err)
		}

		lastErr = err
		if attempt >= c.backoff.maxRetries {
			return nil, lastErr
		}

		delay := c.backoff.initialInterval * time.Duration(math.Pow(2, float64(attempt)))
		if delay > c.backoff.maxInterval {
			delay = c.backoff.maxInterval
		}

		c.logger.Debug("retrying bulletin fetch", "url", url, "attempt", attempt+1, "delay", delay, "error", err)

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}

		attempt++
	}
}
