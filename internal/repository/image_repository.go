package repository

import (
	"context"
	"errors"

	"gamevault/backend/internal/models"

	"gorm.io/gorm"
)

// ImageRepository provides GORM-based persistence for cached images.
type ImageRepository struct {
	db *gorm.DB
}

func NewImageRepository(db *gorm.DB) *ImageRepository {
	return &ImageRepository{db: db}
}

// FindByID returns the image or gorm.ErrRecordNotFound.
func (r *ImageRepository) FindByID(ctx context.Context, id uint) (*models.Image, error) {
	var img models.Image
	if err := r.db.WithContext(ctx).First(&img, id).Error; err != nil {
		return nil, err
	}
	return &img, nil
}

// FindBySource returns the image downloaded from source, or nil when there is none.
func (r *ImageRepository) FindBySource(ctx context.Context, source string) (*models.Image, error) {
	var img models.Image
	err := r.db.WithContext(ctx).Where("source = ?", source).First(&img).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &img, nil
}

func (r *ImageRepository) Create(ctx context.Context, img *models.Image) error {
	return r.db.WithContext(ctx).Create(img).Error
}
