package rawg

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"gamevault/backend/internal/cache"

	"github.com/zeromicro/go-zero/core/logx"
)

// ErrNotFound is returned when RAWG has no game with the requested id.
var ErrNotFound = errors.New("rawg: game not found")

// Config controls how the client reaches the RAWG API.
type Config struct {
	BaseURL    string
	APIKey     string
	HTTPClient *http.Client
	// Cache holds raw responses; nil disables caching.
	Cache    cache.Cache
	CacheTTL time.Duration
}

// Client talks to the RAWG video game database.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient httpDoer
	cache      cache.Cache
	cacheTTL   time.Duration
}

func NewClient(cfg Config) *Client {
	return &Client{
		baseURL:    normalizeBaseURL(cfg.BaseURL),
		apiKey:     cfg.APIKey,
		httpClient: resolveHTTPClient(cfg.HTTPClient),
		cache:      cfg.Cache,
		cacheTTL:   resolveCacheTTL(cfg.CacheTTL),
	}
}

// GetGame fetches the full record of one game.
func (c *Client) GetGame(ctx context.Context, id int) (*gameDetail, error) {
	var detail gameDetail
	if err := c.get(ctx, "/games/"+strconv.Itoa(id), nil, &detail); err != nil {
		return nil, err
	}
	return &detail, nil
}

// Search looks games up by title, restricted to the given release year when year > 0.
func (c *Client) Search(ctx context.Context, title string, year int) ([]gameSummary, error) {
	q := url.Values{}
	q.Set("search", title)
	q.Set("search_precise", "true")
	q.Set("page_size", strconv.Itoa(searchPageSize))
	if year > 0 {
		q.Set("dates", fmt.Sprintf("%d-01-01,%d-12-31", year, year))
	}

	var payload searchResponse
	if err := c.get(ctx, "/games", q, &payload); err != nil {
		return nil, err
	}
	return payload.Results, nil
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	if query == nil {
		query = url.Values{}
	}
	// The key is built before the API key is added so secrets never land in the cache.
	cacheKey := cacheKeyPrefix + path + "?" + query.Encode()

	if c.cache != nil {
		if body, ok, err := c.cache.Get(ctx, cacheKey); err != nil {
			logx.WithContext(ctx).Errorw("rawg cache read failed", logx.Field("key", cacheKey), logx.Field("error", err.Error()))
		} else if ok {
			return json.Unmarshal(body, out)
		}
	}

	if c.apiKey != "" {
		query.Set("key", c.apiKey)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+query.Encode(), nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return ErrNotFound
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("rawg: unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, out); err != nil {
		return err
	}

	if c.cache != nil {
		if err := c.cache.Set(ctx, cacheKey, body, c.cacheTTL); err != nil {
			logx.WithContext(ctx).Errorw("rawg cache write failed", logx.Field("key", cacheKey), logx.Field("error", err.Error()))
		}
	}
	return nil
}
