package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gamevault/backend/internal/cache"
	"gamevault/backend/internal/config"
	"gamevault/backend/internal/database"
	"gamevault/backend/internal/handler"
	"gamevault/backend/internal/hub"
	"gamevault/backend/internal/providers/rawg"
	"gamevault/backend/internal/providers/steamgrid"
	"gamevault/backend/internal/repository"
	"gamevault/backend/internal/service"
	"gamevault/backend/pkg/jwt"

	"github.com/gin-gonic/gin"
	"github.com/zeromicro/go-zero/core/logx"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"gocloud.dev/blob"

	// Bucket drivers selectable through IMAGE_BUCKET_URL.
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/memblob"
	_ "gocloud.dev/blob/s3blob"

	// Swagger imports
	_ "gamevault/backend/docs" // Registers the swagger document served at /swagger
)

func init() {
	config.LoadConfig()
}

// @title           GameVault API
// @version         1.0
// @description     Game library records with RAWG metadata and SteamGridDB box art.
// @host            localhost:8080
// @BasePath        /api/v1
// @securityDefinitions.apiKey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := config.AppConfig
	logx.MustSetup(logx.LogConf{
		ServiceName: "gamevault",
		Mode:        "console",
		Encoding:    "json",
		Level:       cfg.LogLevel,
	})
	if cfg.JWTSecret == "" {
		logx.Must(errors.New("JWT_SECRET must be set"))
	}
	if cfg.LogLevel != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Connect to the database
	db := database.Connect(cfg.DatabaseURL)

	bucket, err := blob.OpenBucket(ctx, cfg.ImageBucketURL)
	if err != nil {
		logx.Must(err)
	}
	defer bucket.Close()

	// Outbound calls to RAWG, SteamGridDB and image hosts share one traced transport.
	outbound := &http.Client{
		Timeout:   30 * time.Second,
		Transport: otelhttp.NewTransport(http.DefaultTransport),
	}

	gameRepo := repository.NewGameRepository(db)
	images := service.NewImageService(repository.NewImageRepository(db), bucket, service.ImageConfig{
		MaxBytes:   cfg.ImageMaxBytes,
		HTTPClient: outbound,
	})

	rawgClient := rawg.NewClient(rawg.Config{
		BaseURL:    cfg.RawgAPIURL,
		APIKey:     cfg.RawgAPIKey,
		HTTPClient: outbound,
		Cache:      responseCache(ctx, cfg.RedisURL),
		CacheTTL:   cfg.RawgCacheTTL,
	})
	metadata := rawg.NewProvider(rawgClient, gameRepo, repository.NewMetadataRepository(db), images, cfg.RawgCacheDays)

	boxArt := steamgrid.NewResolver(steamgrid.NewClient(steamgrid.Config{
		BaseURL:    cfg.SteamGridDBAPIURL,
		APIKey:     cfg.SteamGridDBAPIKey,
		HTTPClient: outbound,
	}), images, gameRepo)

	events := hub.New()
	games := service.NewGameService(gameRepo, metadata, boxArt, images, service.WithNotifier(events))

	router := handler.NewRouter(handler.Deps{
		DB:        db,
		JWTSecret: cfg.JWTSecret,
		TokenTTL:  jwt.DefaultTTL,
		Games:     games,
		Images:    images,
		Events:    events,
	})

	srv := &http.Server{
		Addr:              cfg.ServerAddr,
		Handler:           otelhttp.NewHandler(router, "gamevault-http"),
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		logx.Infof("Server is running on %s, swagger UI at /swagger/index.html", cfg.ServerAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logx.Errorf("server stopped: %v", err)
			stop()
		}
	}()

	<-ctx.Done()
	logx.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logx.Errorf("shutdown: %v", err)
	}
}

// responseCache keeps RAWG responses in Redis when configured, in memory otherwise.
func responseCache(ctx context.Context, redisURL string) cache.Cache {
	if redisURL == "" {
		return cache.NewMemory()
	}
	client, err := cache.OpenRedis(ctx, redisURL)
	if err != nil {
		logx.Errorf("redis unavailable, caching RAWG responses in memory: %v", err)
		return cache.NewMemory()
	}
	return cache.NewRedis(client, "gamevault:")
}
