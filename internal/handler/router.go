package handler

import (
	"net/http"
	"time"

	"gamevault/backend/internal/auth"
	"gamevault/backend/internal/hub"
	"gamevault/backend/internal/models"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/zeromicro/go-zero/core/logx"
	"gorm.io/gorm"
)

// Deps is everything the HTTP layer is built from.
type Deps struct {
	DB        *gorm.DB
	JWTSecret string
	TokenTTL  time.Duration
	Games     GameService
	Images    ImageOpener
	Events    *hub.Hub
}

// NewRouter wires every route onto a fresh engine.
func NewRouter(d Deps) *gin.Engine {
	router := gin.New()
	router.Use(requestLogger(), gin.Recovery())

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	users := NewUserHandler(d.DB, d.JWTSecret, d.TokenTTL)
	games := NewGameHandler(d.Games)
	images := NewImageHandler(d.Images)
	events := NewEventHandler(d.Events)
	metadata := NewMetadataHandler(d.DB)

	requireAuth := auth.AuthMiddleware(d.JWTSecret)
	requireEditor := auth.RequireRole(d.DB, models.RoleEditor)

	apiV1 := router.Group("/api/v1")
	{
		authRoutes := apiV1.Group("/auth")
		{
			authRoutes.POST("/register", users.RegisterUser)
			authRoutes.POST("/login", users.LoginUser)
		}

		userRoutes := apiV1.Group("/users")
		userRoutes.Use(requireAuth)
		{
			userRoutes.GET("/me", users.GetMe)
		}

		gameRoutes := apiV1.Group("/games")
		gameRoutes.Use(requireAuth)
		{
			gameRoutes.GET("", games.GetGames)
			gameRoutes.GET("/random", games.GetRandomGame) // Must be before /:id
			gameRoutes.GET("/events", events.StreamGameEvents)
			gameRoutes.GET("/:id", games.GetGameByID)
			gameRoutes.PUT("/:id", requireEditor, games.UpdateGame)
			gameRoutes.DELETE("/:id", requireEditor, games.DeleteGame)
			gameRoutes.POST("/:id/restore", requireEditor, games.RestoreGame)
		}

		apiV1.GET("/images/:id", requireAuth, images.GetImage)
		apiV1.GET("/metadata/:kind", requireAuth, metadata.ListEntities)
	}

	return router
}

func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logx.WithContext(c.Request.Context()).Infow("request",
			logx.Field("method", c.Request.Method),
			logx.Field("path", c.Request.URL.Path),
			logx.Field("status", c.Writer.Status()),
			logx.Field("duration", time.Since(start)),
		)
	}
}
