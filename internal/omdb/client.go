// Package omdb is a client for the public OMDb movie API.
package omdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/sony/gobreaker"
	"golang.org/x/time/rate"
)

const defaultBaseURL = "http://www.omdbapi.com/"

// ErrLookupFailed covers every OMDb failure uniformly: transport errors,
// malformed payloads and "not found" responses alike.
var ErrLookupFailed = errors.New("omdb lookup failed")

// Movie is the subset of an OMDb record the tools render.
type Movie struct {
	Title    string `json:"Title"`
	Year     string `json:"Year"`
	Genre    string `json:"Genre"`
	Director string `json:"Director"`
	Actors   string `json:"Actors"`
	Plot     string `json:"Plot"`
	Rating   string `json:"imdbRating"`
}

// SearchHit is one result of a keyword search.
type SearchHit struct {
	Title string `json:"Title"`
	Year  string `json:"Year"`
}

type payload struct {
	Movie
	Response string      `json:"Response"`
	Error    string      `json:"Error"`
	Search   []SearchHit `json:"Search"`
}

// Client calls OMDb with a request rate limit and a circuit breaker so a
// flapping upstream cannot stall every turn.
type Client struct {
	httpClient *http.Client
	apiKey     string
	baseURL    string
	limiter    *rate.Limiter
	breaker    *gobreaker.CircuitBreaker
}

// NewClient builds a Client for the given API key.
func NewClient(apiKey string) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 15 * time.Second},
		apiKey:     apiKey,
		baseURL:    defaultBaseURL,
		limiter:    rate.NewLimiter(rate.Every(time.Second), 3),
		breaker: gobreaker.NewCircuitBreaker(gobreaker.Settings{
			Name:    "omdb",
			Timeout: 30 * time.Second,
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				return counts.ConsecutiveFailures >= 3
			},
		}),
	}
}

// Lookup fetches a single movie by title.
func (c *Client) Lookup(ctx context.Context, title string, fullPlot bool) (*Movie, error) {
	params := url.Values{"t": {title}}
	if fullPlot {
		params.Set("plot", "full")
	}
	data, err := c.get(ctx, params)
	if err != nil {
		return nil, err
	}
	return &data.Movie, nil
}

// Search fetches movies matching a keyword.
func (c *Client) Search(ctx context.Context, keyword string) ([]SearchHit, error) {
	data, err := c.get(ctx, url.Values{"s": {keyword}})
	if err != nil {
		return nil, err
	}
	if len(data.Search) == 0 {
		return nil, fmt.Errorf("%w: empty search result", ErrLookupFailed)
	}
	return data.Search, nil
}

func (c *Client) get(ctx context.Context, params url.Values) (*payload, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLookupFailed, err)
	}

	params.Set("apikey", c.apiKey)
	result, err := c.breaker.Execute(func() (any, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
		if err != nil {
			return nil, err
		}
		resp, err := c.httpClient.Do(req)
		if err != nil {
			return nil, err
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
		}
		var data payload
		if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
			return nil, err
		}
		if data.Response == "False" {
			return nil, fmt.Errorf("omdb: %s", data.Error)
		}
		return &data, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLookupFailed, err)
	}
	return result.(*payload), nil
}
