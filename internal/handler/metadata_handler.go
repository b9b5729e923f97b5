package handler

import (
	"net/http"
	"strings"

	"gamevault/backend/internal/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// PaginatedEntityResponse defines the structure for a paginated list of metadata entities.
type PaginatedEntityResponse struct {
	Data []EntityResponse `json:"data"`
	Meta PaginationMeta   `json:"meta"`
}

// MetadataHandler lists the entities games are linked to.
type MetadataHandler struct {
	db *gorm.DB
}

func NewMetadataHandler(db *gorm.DB) *MetadataHandler {
	return &MetadataHandler{db: db}
}

// ListEntities godoc
// @Summary      List metadata entities
// @Description  Lists developers, publishers, genres, stores or tags, optionally filtered by name.
// @Tags         metadata
// @Produce      json
// @Security     BearerAuth
// @Param        kind  path      string  true   "Entity kind"  Enums(developers, publishers, genres, stores, tags)
// @Param        q     query     string  false  "Name filter"
// @Param        page  query     int     false  "Page number" default(1)
// @Param        limit query     int     false  "Items per page" default(20)
// @Success      200   {object}  PaginatedEntityResponse
// @Failure      404   {object}  ErrorResponse "Unknown kind"
// @Router       /metadata/{kind} [get]
func (h *MetadataHandler) ListEntities(c *gin.Context) {
	page, limit := pageParams(c)
	query := h.db.WithContext(c.Request.Context())
	if q := strings.TrimSpace(c.Query("q")); q != "" {
		query = query.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(q)+"%")
	}

	var (
		resp PaginatedResponse[EntityResponse]
		err  error
	)
	switch c.Param("kind") {
	case "developers":
		resp, err = listEntities[models.Developer](query, page, limit)
	case "publishers":
		resp, err = listEntities[models.Publisher](query, page, limit)
	case "genres":
		resp, err = listEntities[models.Genre](query, page, limit)
	case "stores":
		resp, err = listEntities[models.Store](query, page, limit)
	case "tags":
		resp, err = listEntities[models.Tag](query, page, limit)
	default:
		c.JSON(http.StatusNotFound, gin.H{"error": "Unknown metadata kind"})
		return
	}
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func listEntities[T any, PT interface {
	*T
	namedEntity
}](db *gorm.DB, page, limit int) (PaginatedResponse[EntityResponse], error) {
	result, err := Paginate[T](db, page, limit)
	if err != nil {
		return PaginatedResponse[EntityResponse]{}, err
	}

	items := make([]EntityResponse, 0, len(result.Data))
	for i := range result.Data {
		items = append(items, newEntityResponse(PT(&result.Data[i])))
	}
	return PaginatedResponse[EntityResponse]{Data: items, Meta: result.Meta}, nil
}
