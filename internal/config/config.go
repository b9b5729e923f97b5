package config

import (
	"time"

	"github.com/spf13/viper"
	"github.com/zeromicro/go-zero/core/logx"
)

// Config holds the application configuration.
type Config struct {
	DatabaseURL string `mapstructure:"DATABASE_URL"`
	JWTSecret   string `mapstructure:"JWT_SECRET"`
	ServerAddr  string `mapstructure:"SERVER_ADDR"`
	LogLevel    string `mapstructure:"LOG_LEVEL"`

	RawgAPIURL    string        `mapstructure:"RAWG_API_URL"`
	RawgAPIKey    string        `mapstructure:"RAWG_API_KEY"`
	RawgCacheDays int           `mapstructure:"RAWG_CACHE_DAYS"`
	RawgCacheTTL  time.Duration `mapstructure:"RAWG_CACHE_TTL"`
	RedisURL      string        `mapstructure:"REDIS_URL"`

	SteamGridDBAPIURL string `mapstructure:"STEAMGRIDDB_API_URL"`
	SteamGridDBAPIKey string `mapstructure:"STEAMGRIDDB_API_KEY"`

	ImageBucketURL string `mapstructure:"IMAGE_BUCKET_URL"`
	ImageMaxBytes  int64  `mapstructure:"IMAGE_MAX_BYTES"`
}

var AppConfig *Config

var defaults = map[string]any{
	"SERVER_ADDR":         ":8080",
	"LOG_LEVEL":           "info",
	"RAWG_API_URL":        "https://api.rawg.io/api",
	"RAWG_CACHE_DAYS":     30,
	"RAWG_CACHE_TTL":      "24h",
	"STEAMGRIDDB_API_URL": "https://www.steamgriddb.com/api/v2",
	"IMAGE_BUCKET_URL":    "file:///var/lib/gamevault/images",
	"IMAGE_MAX_BYTES":     10 << 20,
}

// Load reads the .env file found in dir (if any) and overlays environment variables.
func Load(dir string) (*Config, error) {
	v := viper.New()
	v.AddConfigPath(dir)
	v.SetConfigName(".env")
	v.SetConfigType("env")

	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	// AutomaticEnv only resolves keys viper already knows about.
	for _, key := range []string{"DATABASE_URL", "JWT_SECRET", "RAWG_API_KEY", "REDIS_URL", "STEAMGRIDDB_API_KEY"} {
		v.SetDefault(key, "")
	}
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		logx.Info("Warning: .env file not found, loading from environment variables")
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadConfig loads the configuration from a .env file and environment variables.
func LoadConfig() {
	cfg, err := Load(".")
	if err != nil {
		logx.Must(err)
	}
	AppConfig = cfg
}
