package rawg

import "time"

const (
	defaultBaseURL     = "https://api.rawg.io/api"
	defaultHTTPTimeout = 15 * time.Second
	defaultCacheTTL    = 24 * time.Hour
	searchPageSize     = 10
	releasedLayout     = "2006-01-02"
	cacheKeyPrefix     = "rawg:"
)
