package steamgrid

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const (
	defaultBaseURL     = "https://www.steamgriddb.com/api/v2"
	defaultHTTPTimeout = 15 * time.Second
	boxArtDimensions   = "600x900"
)

type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Config controls how the client reaches the SteamGridDB API.
type Config struct {
	BaseURL    string
	APIKey     string
	HTTPClient *http.Client
}

type searchResult struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type grid struct {
	ID  int    `json:"id"`
	URL string `json:"url"`
}

type envelope[T any] struct {
	Success bool     `json:"success"`
	Data    []T      `json:"data"`
	Errors  []string `json:"errors"`
}

// Client talks to SteamGridDB.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient httpDoer
}

func NewClient(cfg Config) *Client {
	c := &Client{
		baseURL:    strings.TrimSuffix(cfg.BaseURL, "/"),
		apiKey:     cfg.APIKey,
		httpClient: cfg.HTTPClient,
	}
	if c.baseURL == "" {
		c.baseURL = defaultBaseURL
	}
	if cfg.HTTPClient == nil {
		c.httpClient = &http.Client{Timeout: defaultHTTPTimeout}
	}
	return c
}

// Enabled reports whether an API key is configured; SteamGridDB rejects anonymous calls.
func (c *Client) Enabled() bool {
	return c.apiKey != ""
}

// Autocomplete returns SteamGridDB games whose name matches term.
func (c *Client) Autocomplete(ctx context.Context, term string) ([]searchResult, error) {
	var payload envelope[searchResult]
	if err := c.get(ctx, "/search/autocomplete/"+url.PathEscape(term), nil, &payload); err != nil {
		return nil, err
	}
	return payload.Data, nil
}

// Grids returns portrait box art for a SteamGridDB game id.
func (c *Client) Grids(ctx context.Context, gameID int) ([]grid, error) {
	q := url.Values{}
	q.Set("dimensions", boxArtDimensions)
	var payload envelope[grid]
	if err := c.get(ctx, "/grids/game/"+strconv.Itoa(gameID), q, &payload); err != nil {
		return nil, err
	}
	return payload.Data, nil
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	// SteamGridDB answers 404 for searches without hits.
	if resp.StatusCode == http.StatusNotFound {
		return nil
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("steamgriddb: unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
