package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"
	"time"

	"gamevault/backend/internal/models"

	"github.com/google/uuid"
	"github.com/zeromicro/go-zero/core/logx"
	"gocloud.dev/blob"
	"gorm.io/gorm"
)

const (
	defaultImageMaxBytes   = 10 << 20
	defaultDownloadTimeout = 30 * time.Second
)

var extensions = map[string]string{
	"image/png":  ".png",
	"image/jpeg": ".jpg",
	"image/webp": ".webp",
	"image/gif":  ".gif",
	"image/bmp":  ".bmp",
}

type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// ImageStore is the persistence the image service needs.
type ImageStore interface {
	FindByID(ctx context.Context, id uint) (*models.Image, error)
	FindBySource(ctx context.Context, source string) (*models.Image, error)
	Create(ctx context.Context, img *models.Image) error
}

// ImageConfig tunes downloads. Zero values fall back to defaults.
type ImageConfig struct {
	MaxBytes   int64
	HTTPClient *http.Client
}

// ImageService caches remote pictures in a blob bucket and tracks them as Image rows.
type ImageService struct {
	store    ImageStore
	bucket   *blob.Bucket
	client   httpDoer
	maxBytes int64
}

func NewImageService(store ImageStore, bucket *blob.Bucket, cfg ImageConfig) *ImageService {
	s := &ImageService{
		store:    store,
		bucket:   bucket,
		client:   cfg.HTTPClient,
		maxBytes: cfg.MaxBytes,
	}
	if cfg.HTTPClient == nil {
		s.client = &http.Client{Timeout: defaultDownloadTimeout}
	}
	if s.maxBytes <= 0 {
		s.maxBytes = defaultImageMaxBytes
	}
	return s
}

// FindByIDOrFail returns the image or an error wrapping ErrImageNotFound.
func (s *ImageService) FindByIDOrFail(ctx context.Context, id uint) (*models.Image, error) {
	img, err := s.store.FindByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: no image with id %d: %w", ErrImageNotFound, id, err)
	}
	if err != nil {
		return nil, err
	}
	return img, nil
}

// Download fetches source into the bucket. A source downloaded before is not fetched again.
func (s *ImageService) Download(ctx context.Context, source string) (*models.Image, error) {
	existing, err := s.store.FindBySource(ctx, source)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, source, nil)
	if err != nil {
		return nil, err
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("image download: unexpected status %d from %s", resp.StatusCode, source)
	}

	mediaType, _, err := mime.ParseMediaType(resp.Header.Get("Content-Type"))
	if err != nil || !strings.HasPrefix(mediaType, "image/") {
		return nil, fmt.Errorf("%w: %q from %s", ErrUnsupportedMediaType, resp.Header.Get("Content-Type"), source)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, s.maxBytes+1))
	if err != nil {
		return nil, err
	}
	if int64(len(data)) > s.maxBytes {
		return nil, fmt.Errorf("%w: %s is larger than %d bytes", ErrImageTooLarge, source, s.maxBytes)
	}

	key := uuid.NewString() + extensions[mediaType]
	if err := s.bucket.WriteAll(ctx, key, data, &blob.WriterOptions{ContentType: mediaType}); err != nil {
		return nil, err
	}

	img := &models.Image{
		Source:    source,
		Path:      key,
		MediaType: mediaType,
		Size:      int64(len(data)),
	}
	if err := s.store.Create(ctx, img); err != nil {
		_ = s.bucket.Delete(ctx, key)
		return nil, err
	}

	logx.WithContext(ctx).Infow("image downloaded",
		logx.Field("image_id", img.ID),
		logx.Field("source", source),
		logx.Field("bytes", img.Size),
	)
	return img, nil
}

// Open returns the stored bytes of an image. The caller closes the reader.
func (s *ImageService) Open(ctx context.Context, id uint) (*models.Image, io.ReadCloser, error) {
	img, err := s.FindByIDOrFail(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	r, err := s.bucket.NewReader(ctx, img.Path, nil)
	if err != nil {
		return nil, nil, err
	}
	return img, r, nil
}
