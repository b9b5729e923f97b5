package handler

import (
	"context"
	"io"
	"net/http"
	"strconv"

	"gamevault/backend/internal/models"

	"github.com/gin-gonic/gin"
)

// ImageOpener streams stored images.
type ImageOpener interface {
	Open(ctx context.Context, id uint) (*models.Image, io.ReadCloser, error)
}

type ImageHandler struct {
	images ImageOpener
}

func NewImageHandler(images ImageOpener) *ImageHandler {
	return &ImageHandler{images: images}
}

// GetImage godoc
// @Summary      Get an image
// @Description  Streams the bytes of a cached image.
// @Tags         images
// @Produce      image/png,image/jpeg,image/webp
// @Security     BearerAuth
// @Param        id   path  int  true  "Image ID"
// @Success      200  {file}    binary
// @Failure      404  {object}  ErrorResponse
// @Router       /images/{id} [get]
func (h *ImageHandler) GetImage(c *gin.Context) {
	id, ok := parseID(c, "image")
	if !ok {
		return
	}

	img, body, err := h.images.Open(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	defer body.Close()

	c.DataFromReader(http.StatusOK, img.Size, img.MediaType, body, map[string]string{
		"Cache-Control": "public, max-age=86400",
		"ETag":          strconv.Quote(img.Path),
	})
}
