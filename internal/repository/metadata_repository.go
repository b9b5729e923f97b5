package repository

import (
	"context"

	"gamevault/backend/internal/models"

	"gorm.io/gorm"
)

type rawgKeyed interface {
	GetRawgID() int
}

// MetadataRepository persists the lookup entities (developers, publishers,
// genres, stores, tags) a game is linked to.
type MetadataRepository struct {
	db *gorm.DB
}

func NewMetadataRepository(db *gorm.DB) *MetadataRepository {
	return &MetadataRepository{db: db}
}

// ResolveRelations swaps every relation entity of g for its stored row,
// creating rows for provider ids seen for the first time.
func (r *MetadataRepository) ResolveRelations(ctx context.Context, g *models.Game) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := firstOrCreateAll(tx, g.Developers); err != nil {
			return err
		}
		if err := firstOrCreateAll(tx, g.Publishers); err != nil {
			return err
		}
		if err := firstOrCreateAll(tx, g.Genres); err != nil {
			return err
		}
		if err := firstOrCreateAll(tx, g.Stores); err != nil {
			return err
		}
		return firstOrCreateAll(tx, g.Tags)
	})
}

func firstOrCreateAll[T rawgKeyed](tx *gorm.DB, items []T) error {
	for _, item := range items {
		if err := tx.Where("rawg_id = ?", item.GetRawgID()).FirstOrCreate(item).Error; err != nil {
			return err
		}
	}
	return nil
}
