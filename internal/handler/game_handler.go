package handler

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"gamevault/backend/internal/models"
	"gamevault/backend/internal/service"

	"github.com/gin-gonic/gin"
)

// GameService is what the game endpoints need from the service layer.
type GameService interface {
	FindByIDOrFail(ctx context.Context, id uint, opts service.FindOptions) (*models.Game, error)
	GetAll(ctx context.Context) ([]*models.Game, error)
	GetRandom(ctx context.Context) (*models.Game, error)
	Update(ctx context.Context, id uint, patch service.UpdateGameInput) (*models.Game, error)
	Delete(ctx context.Context, g *models.Game) (*models.Game, error)
	Restore(ctx context.Context, id uint) (*models.Game, error)
}

// region --- DTOs ---

// UpdateGameInput is a partial update. Omitted fields are left alone.
type UpdateGameInput struct {
	RawgID            *int  `json:"rawg_id" example:"3498"`
	BoxImageID        *uint `json:"box_image_id" example:"12"`
	BackgroundImageID *uint `json:"background_image_id" example:"13"`
}

// EntityResponse is a developer, publisher, genre, store or tag.
type EntityResponse struct {
	ID     uint   `json:"id"`
	RawgID int    `json:"rawg_id"`
	Name   string `json:"name"`
}

// ProgressResponse is one user's progress in a game.
type ProgressResponse struct {
	UserID        uint       `json:"user_id"`
	Username      string     `json:"username,omitempty"`
	MinutesPlayed int        `json:"minutes_played"`
	State         string     `json:"state"`
	LastPlayedAt  *time.Time `json:"last_played_at,omitempty"`
}

type GameResponse struct {
	ID                uint               `json:"id"`
	FilePath          string             `json:"file_path"`
	Title             string             `json:"title"`
	ReleaseDate       *time.Time         `json:"release_date,omitempty"`
	EarlyAccess       bool               `json:"early_access"`
	Version           string             `json:"version,omitempty"`
	Size              int64              `json:"size"`
	RawgID            *int               `json:"rawg_id,omitempty"`
	RawgTitle         string             `json:"rawg_title,omitempty"`
	RawgReleaseDate   *time.Time         `json:"rawg_release_date,omitempty"`
	CacheDate         *time.Time         `json:"cache_date,omitempty"`
	Description       string             `json:"description,omitempty"`
	WebsiteURL        string             `json:"website_url,omitempty"`
	MetacriticRating  *int               `json:"metacritic_rating,omitempty"`
	AveragePlaytime   *int               `json:"average_playtime,omitempty"`
	BoxImageID        *uint              `json:"box_image_id,omitempty"`
	BackgroundImageID *uint              `json:"background_image_id,omitempty"`
	DeletedAt         *time.Time         `json:"deleted_at,omitempty"`
	Developers        []EntityResponse   `json:"developers,omitempty"`
	Publishers        []EntityResponse   `json:"publishers,omitempty"`
	Genres            []EntityResponse   `json:"genres,omitempty"`
	Stores            []EntityResponse   `json:"stores,omitempty"`
	Tags              []EntityResponse   `json:"tags,omitempty"`
	Progresses        []ProgressResponse `json:"progresses,omitempty"`
}

// PaginatedGameResponse defines the structure for a paginated list of games.
type PaginatedGameResponse struct {
	Data []GameResponse `json:"data"`
	Meta PaginationMeta `json:"meta"`
}

type namedEntity interface {
	GetID() uint
	GetRawgID() int
	GetName() string
}

func entityResponses[T namedEntity](items []T) []EntityResponse {
	var out []EntityResponse
	for _, item := range items {
		out = append(out, newEntityResponse(item))
	}
	return out
}

func newEntityResponse(e namedEntity) EntityResponse {
	return EntityResponse{ID: e.GetID(), RawgID: e.GetRawgID(), Name: e.GetName()}
}

func newGameResponse(g *models.Game) GameResponse {
	resp := GameResponse{
		ID:                g.ID,
		FilePath:          g.FilePath,
		Title:             g.Title,
		ReleaseDate:       g.ReleaseDate,
		EarlyAccess:       g.EarlyAccess,
		Version:           g.Version,
		Size:              g.Size,
		RawgID:            g.RawgID,
		RawgTitle:         g.RawgTitle,
		RawgReleaseDate:   g.RawgReleaseDate,
		CacheDate:         g.CacheDate,
		Description:       g.Description,
		WebsiteURL:        g.WebsiteURL,
		MetacriticRating:  g.MetacriticRating,
		AveragePlaytime:   g.AveragePlaytime,
		BoxImageID:        g.BoxImageID,
		BackgroundImageID: g.BackgroundImageID,
		Developers:        entityResponses(g.Developers),
		Publishers:        entityResponses(g.Publishers),
		Genres:            entityResponses(g.Genres),
		Stores:            entityResponses(g.Stores),
		Tags:              entityResponses(g.Tags),
	}
	if g.IsDeleted() {
		deletedAt := g.DeletedAt.Time
		resp.DeletedAt = &deletedAt
	}
	for _, p := range g.Progresses {
		pr := ProgressResponse{
			UserID:        p.UserID,
			MinutesPlayed: p.MinutesPlayed,
			State:         string(p.State),
			LastPlayedAt:  p.LastPlayedAt,
		}
		if p.User != nil {
			pr.Username = p.User.Username
		}
		resp.Progresses = append(resp.Progresses, pr)
	}
	return resp
}

// endregion

// GameHandler serves the game endpoints.
type GameHandler struct {
	games GameService
}

func NewGameHandler(games GameService) *GameHandler {
	return &GameHandler{games: games}
}

// GetGames godoc
// @Summary      List games
// @Description  Lists active games ordered by id, without relations.
// @Tags         games
// @Produce      json
// @Security     BearerAuth
// @Param        page  query     int     false  "Page number" default(1)
// @Param        limit query     int     false  "Items per page" default(20)
// @Success      200   {object}  PaginatedGameResponse
// @Failure      401   {object}  ErrorResponse
// @Failure      500   {object}  ErrorResponse
// @Router       /games [get]
func (h *GameHandler) GetGames(c *gin.Context) {
	games, err := h.games.GetAll(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	page, limit := pageParams(c)
	response := make([]GameResponse, 0, len(games))
	for _, g := range games {
		response = append(response, newGameResponse(g))
	}
	c.JSON(http.StatusOK, pageOf(response, page, limit))
}

// GetRandomGame godoc
// @Summary      Get a random game
// @Description  Picks any game, soft-deleted ones included, with all relations.
// @Tags         games
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  GameResponse
// @Failure      404  {object}  ErrorResponse "Library is empty"
// @Router       /games/random [get]
func (h *GameHandler) GetRandomGame(c *gin.Context) {
	g, err := h.games.GetRandom(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, newGameResponse(g))
}

// GetGameByID godoc
// @Summary      Get a game
// @Description  Retrieves a game by id.
// @Tags         games
// @Produce      json
// @Security     BearerAuth
// @Param        id         path   int   true   "Game ID"
// @Param        relations  query  bool  false  "Load relations" default(false)
// @Param        deleted    query  bool  false  "Include soft-deleted games" default(true)
// @Success      200  {object}  GameResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /games/{id} [get]
func (h *GameHandler) GetGameByID(c *gin.Context) {
	id, ok := parseID(c, "game")
	if !ok {
		return
	}

	opts := service.DefaultFindOptions()
	if v, err := strconv.ParseBool(c.Query("relations")); err == nil {
		opts.LoadRelations = v
	}
	if v, err := strconv.ParseBool(c.Query("deleted")); err == nil {
		opts.LoadDeletedEntities = v
	}

	g, err := h.games.FindByIDOrFail(c.Request.Context(), id, opts)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, newGameResponse(g))
}

// UpdateGame godoc
// @Summary      Update a game
// @Description  Remaps the game to another RAWG id and/or overrides its images.
// @Tags         games
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id     path  int              true  "Game ID"
// @Param        input  body  UpdateGameInput  true  "Fields to change"
// @Success      200  {object}  GameResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      403  {object}  ErrorResponse "Editor access required"
// @Failure      404  {object}  ErrorResponse "Game or image not found"
// @Router       /games/{id} [put]
func (h *GameHandler) UpdateGame(c *gin.Context) {
	id, ok := parseID(c, "game")
	if !ok {
		return
	}

	var input UpdateGameInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if input.RawgID != nil && *input.RawgID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "rawg_id must be positive"})
		return
	}

	g, err := h.games.Update(c.Request.Context(), id, service.UpdateGameInput{
		RawgID:            input.RawgID,
		BoxImageID:        input.BoxImageID,
		BackgroundImageID: input.BackgroundImageID,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, newGameResponse(g))
}

// DeleteGame godoc
// @Summary      Delete a game
// @Description  Soft-deletes a game. It can be restored later.
// @Tags         games
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Game ID"
// @Success      200  {object}  GameResponse
// @Failure      403  {object}  ErrorResponse "Editor access required"
// @Failure      404  {object}  ErrorResponse
// @Router       /games/{id} [delete]
func (h *GameHandler) DeleteGame(c *gin.Context) {
	id, ok := parseID(c, "game")
	if !ok {
		return
	}

	ctx := c.Request.Context()
	g, err := h.games.FindByIDOrFail(ctx, id, service.FindOptions{})
	if err != nil {
		respondError(c, err)
		return
	}
	deleted, err := h.games.Delete(ctx, g)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, newGameResponse(deleted))
}

// RestoreGame godoc
// @Summary      Restore a game
// @Description  Clears the soft-delete mark of a game.
// @Tags         games
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Game ID"
// @Success      200  {object}  GameResponse
// @Failure      403  {object}  ErrorResponse "Editor access required"
// @Failure      404  {object}  ErrorResponse
// @Router       /games/{id}/restore [post]
func (h *GameHandler) RestoreGame(c *gin.Context) {
	id, ok := parseID(c, "game")
	if !ok {
		return
	}

	g, err := h.games.Restore(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, newGameResponse(g))
}
