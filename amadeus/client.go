// Package amadeus is a thin client for the Amadeus self-service travel APIs.
// The service relays its responses verbatim, so calls return raw JSON.
package amadeus

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sony/gobreaker"
	"golang.org/x/time/rate"
)

const DefaultBaseURL = "https://test.api.amadeus.com"

// APIError carries a non-2xx provider response so the route layer can relay
// it as-is.
type APIError struct {
	Status int
	Body   []byte
}

func (e *APIError) Error() string {
	return fmt.Sprintf("amadeus: status %d: %s", e.Status, strings.TrimSpace(string(e.Body)))
}

type Client struct {
	base   string
	id     string
	secret string
	hc     *http.Client
	rl     *rate.Limiter
	cb     *gobreaker.CircuitBreaker

	mu       sync.Mutex
	token    string
	tokenExp time.Time
}

func New(base, id, secret string, logger *logrus.Logger) (*Client, error) {
	if id == "" || secret == "" {
		return nil, fmt.Errorf("amadeus credentials are required")
	}
	if base == "" {
		base = DefaultBaseURL
	}
	return &Client{
		base:   strings.TrimRight(base, "/"),
		id:     id,
		secret: secret,
		hc:     &http.Client{Timeout: 20 * time.Second},
		rl:     rate.NewLimiter(rate.Limit(5), 5),
		cb: gobreaker.NewCircuitBreaker(gobreaker.Settings{
			Name:        "amadeus",
			MaxRequests: 1,
			Timeout:     10 * time.Second,
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				return counts.ConsecutiveFailures > 2
			},
			OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
				logger.Warnf("circuit breaker %q changed from %q to %q", name, from, to)
			},
			IsSuccessful: func(err error) bool {
				if err == nil {
					return true
				}
				// Provider 4xx responses are relayed, not provider outages.
				var apiErr *APIError
				return errors.As(err, &apiErr) && apiErr.Status >= 400 && apiErr.Status < 500
			},
		}),
	}, nil
}

// Locations looks up cities and airports matching keyword.
func (c *Client) Locations(ctx context.Context, keyword string) (json.RawMessage, error) {
	params := url.Values{}
	params.Set("keyword", keyword)
	params.Set("subType", "CITY,AIRPORT")
	return c.get(ctx, "/v1/reference-data/locations", params)
}

// FlightOffers searches one-adult flight offers for the given route and date
// (YYYY-MM-DD).
func (c *Client) FlightOffers(ctx context.Context, origin, destination, date string) (json.RawMessage, error) {
	params := url.Values{}
	params.Set("originLocationCode", origin)
	params.Set("destinationLocationCode", destination)
	params.Set("departureDate", date)
	params.Set("adults", "1")
	return c.get(ctx, "/v2/shopping/flight-offers", params)
}

func (c *Client) get(ctx context.Context, path string, params url.Values) (json.RawMessage, error) {
	if err := c.rl.Wait(ctx); err != nil {
		return nil, err
	}

	body, err := c.cb.Execute(func() (interface{}, error) {
		token, err := c.accessToken(ctx)
		if err != nil {
			return nil, err
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.base+path+"?"+params.Encode(), nil)
		if err != nil {
			return nil, err
		}
		req.Header.Set("Authorization", "Bearer "+token)
		req.Header.Set("Accept", "application/json")

		resp, err := c.hc.Do(req)
		if err != nil {
			return nil, err
		}
		defer resp.Body.Close()

		payload, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
		if err != nil {
			return nil, err
		}
		if resp.StatusCode != http.StatusOK {
			return nil, &APIError{Status: resp.StatusCode, Body: payload}
		}
		return payload, nil
	})
	if err != nil {
		return nil, err
	}
	return json.RawMessage(body.([]byte)), nil
}

// accessToken returns a cached OAuth2 client-credentials token, refreshing it
// shortly before expiry.
func (c *Client) accessToken(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.token != "" && time.Now().Before(c.tokenExp) {
		return c.token, nil
	}

	form := url.Values{}
	form.Set("grant_type", "client_credentials")
	form.Set("client_id", c.id)
	form.Set("client_secret", c.secret)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.base+"/v1/security/oauth2/token", strings.NewReader(form.Encode()))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.hc.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return "", &APIError{Status: resp.StatusCode, Body: payload}
	}

	var tok struct {
		AccessToken string `json:"access_token"`
		ExpiresIn   int    `json:"expires_in"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&tok); err != nil {
		return "", err
	}
	if tok.AccessToken == "" {
		return "", fmt.Errorf("amadeus: empty access token")
	}

	c.token = tok.AccessToken
	c.tokenExp = time.Now().Add(time.Duration(tok.ExpiresIn)*time.Second - 30*time.Second)
	return c.token, nil
}
