package rawg

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"gamevault/backend/internal/cache"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetGameSendsKeyAndUsesCache(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		assert.Equal(t, "/games/3498", r.URL.Path)
		assert.Equal(t, "secret", r.URL.Query().Get("key"))
		_, _ = w.Write([]byte(`{"id":3498,"name":"Grand Theft Auto V","released":"2013-09-17"}`))
	}))
	defer srv.Close()

	mem := cache.NewMemory()
	c := NewClient(Config{BaseURL: srv.URL + "/", APIKey: "secret", Cache: mem})
	ctx := context.Background()

	first, err := c.GetGame(ctx, 3498)
	require.NoError(t, err)
	assert.Equal(t, "Grand Theft Auto V", first.Name)

	second, err := c.GetGame(ctx, 3498)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.EqualValues(t, 1, hits.Load())

	cached, ok, err := mem.Get(ctx, "rawg:/games/3498?")
	require.NoError(t, err)
	require.True(t, ok)
	assert.NotContains(t, string(cached), "secret")
}

func TestGetGameMapsStatusCodes(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/games/1" {
			http.NotFound(w, r)
			return
		}
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte("slow down"))
	}))
	defer srv.Close()

	c := NewClient(Config{BaseURL: srv.URL})
	_, err := c.GetGame(context.Background(), 1)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = c.GetGame(context.Background(), 2)
	assert.EqualError(t, err, "rawg: unexpected status 429: slow down")
}

func TestSearchRestrictsToYear(t *testing.T) {
	var dates []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/games", r.URL.Path)
		assert.Equal(t, "Portal", r.URL.Query().Get("search"))
		dates = append(dates, r.URL.Query().Get("dates"))
		_, _ = w.Write([]byte(`{"count":1,"results":[{"id":4200,"name":"Portal 2","released":"2011-04-18"}]}`))
	}))
	defer srv.Close()

	c := NewClient(Config{BaseURL: srv.URL})
	results, err := c.Search(context.Background(), "Portal", 2011)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, 4200, results[0].ID)

	_, err = c.Search(context.Background(), "Portal", 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"2011-01-01,2011-12-31", ""}, dates)
}
