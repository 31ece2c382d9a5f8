package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/sony/gobreaker"
)

const userAgent = "WeatherTerminal/1.0 (github.com/ngmaloney/weather-terminal)"

// Client performs JSON GET requests and classifies their failures
type Client struct {
	httpClient *http.Client
	breaker    *gobreaker.CircuitBreaker
	userAgent  string
}

// NewClient creates a client named after the endpoint it talks to
func NewClient(name string, timeout time.Duration) *Client {
	return NewClientWithHTTPClient(name, &http.Client{Timeout: timeout})
}

// NewClientWithHTTPClient creates a client with a custom HTTP client
func NewClientWithHTTPClient(name string, httpClient *http.Client) *Client {
	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        name,
		MaxRequests: 1,
		Interval:    time.Minute,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.Printf("circuit breaker %s: %s -> %s", name, from, to)
		},
	})

	return &Client{
		httpClient: httpClient,
		breaker:    cb,
		userAgent:  userAgent,
	}
}

// GetJSON issues a GET to reqURL and decodes the JSON body into out.
// op names the lookup step in returned errors.
func (c *Client) GetJSON(ctx context.Context, op, reqURL string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return &Error{Kind: KindTransport, Op: op, Message: "creating request", Err: err}
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	// Only transport errors and 5xx responses count against the breaker.
	result, err := c.breaker.Execute(func() (interface{}, error) {
		resp, err := c.httpClient.Do(req)
		if err != nil {
			return nil, &Error{Kind: KindTransport, Op: op, Err: err}
		}
		if resp.StatusCode >= 500 {
			defer resp.Body.Close()
			body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
			return nil, &Error{Kind: KindHTTPStatus, Op: op, StatusCode: resp.StatusCode, Message: string(body)}
		}
		return resp, nil
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return &Error{Kind: KindTransport, Op: op, Message: "service temporarily unavailable", Err: err}
		}
		var apiErr *Error
		if errors.As(err, &apiErr) {
			return apiErr
		}
		return &Error{Kind: KindTransport, Op: op, Err: err}
	}

	resp, ok := result.(*http.Response)
	if !ok {
		return &Error{Kind: KindTransport, Op: op, Message: fmt.Sprintf("unexpected result type %T", result)}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return &Error{Kind: KindHTTPStatus, Op: op, StatusCode: resp.StatusCode, Message: string(body)}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &Error{Kind: KindParse, Op: op, Message: "decoding response", Err: err}
	}

	return nil
}
