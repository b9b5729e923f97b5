package repository

import (
	"context"
	"errors"
	"time"

	"gamevault/backend/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var errEmptyCriteria = errors.New("game criteria must set at least one field")

// gameRelations lists everything expanded by a relation-loading lookup.
var gameRelations = []string{
	"Developers",
	"Publishers",
	"Genres",
	"Stores",
	"Tags",
	"Progresses.User",
	"BoxImage",
	"BackgroundImage",
}

// FindOptions controls which rows a lookup may return and how much of them is loaded.
type FindOptions struct {
	IncludeDeleted bool
	LoadRelations  bool
}

// Criteria selects games by exact match. Zero-valued fields are not part of the match.
type Criteria struct {
	FilePath    string
	Title       string
	ReleaseDate *time.Time
}

// GameRepository provides GORM-based persistence for games.
type GameRepository struct {
	db *gorm.DB
}

// NewGameRepository creates a new game repository
func NewGameRepository(db *gorm.DB) *GameRepository {
	return &GameRepository{db: db}
}

func (r *GameRepository) query(ctx context.Context, opts FindOptions) *gorm.DB {
	tx := r.db.WithContext(ctx)
	if opts.IncludeDeleted {
		tx = tx.Unscoped()
	}
	if opts.LoadRelations {
		for _, relation := range gameRelations {
			tx = tx.Preload(relation)
		}
	}
	return tx
}

// FindByID returns the game with the given primary key or gorm.ErrRecordNotFound.
func (r *GameRepository) FindByID(ctx context.Context, id uint, opts FindOptions) (*models.Game, error) {
	var g models.Game
	if err := r.query(ctx, opts).First(&g, id).Error; err != nil {
		return nil, err
	}
	return &g, nil
}

// FindOneOrFail returns the first game matching c or gorm.ErrRecordNotFound.
func (r *GameRepository) FindOneOrFail(ctx context.Context, c Criteria, opts FindOptions) (*models.Game, error) {
	tx := r.query(ctx, opts)
	matched := false
	if c.FilePath != "" {
		tx = tx.Where("file_path = ?", c.FilePath)
		matched = true
	}
	if c.Title != "" {
		tx = tx.Where("title = ?", c.Title)
		matched = true
	}
	if c.ReleaseDate != nil {
		tx = tx.Where("release_date = ?", *c.ReleaseDate)
		matched = true
	}
	if !matched {
		return nil, errEmptyCriteria
	}

	var g models.Game
	if err := tx.First(&g).Error; err != nil {
		return nil, err
	}
	return &g, nil
}

// FindOne is FindOneOrFail with a miss reported as (nil, nil).
func (r *GameRepository) FindOne(ctx context.Context, c Criteria, opts FindOptions) (*models.Game, error) {
	g, err := r.FindOneOrFail(ctx, c, opts)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return g, err
}

// FindAll returns every active game without relations.
func (r *GameRepository) FindAll(ctx context.Context) ([]*models.Game, error) {
	var games []*models.Game
	if err := r.db.WithContext(ctx).Order("id").Find(&games).Error; err != nil {
		return nil, err
	}
	return games, nil
}

// Save inserts or updates g. Relation sets are replaced only when their slice is
// non-nil; a nil slice means "not loaded" and leaves the stored links alone.
// Progresses are never written here.
func (r *GameRepository) Save(ctx context.Context, g *models.Game) (*models.Game, error) {
	if g.BoxImage != nil {
		g.BoxImageID = &g.BoxImage.ID
	}
	if g.BackgroundImage != nil {
		g.BackgroundImageID = &g.BackgroundImage.ID
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Unscoped so that saving a soft-deleted game keeps addressing its row.
		if err := tx.Unscoped().Omit(clause.Associations).Save(g).Error; err != nil {
			return err
		}
		if err := replaceSet(tx, g, "Developers", g.Developers); err != nil {
			return err
		}
		if err := replaceSet(tx, g, "Publishers", g.Publishers); err != nil {
			return err
		}
		if err := replaceSet(tx, g, "Genres", g.Genres); err != nil {
			return err
		}
		if err := replaceSet(tx, g, "Stores", g.Stores); err != nil {
			return err
		}
		return replaceSet(tx, g, "Tags", g.Tags)
	})
	if err != nil {
		return nil, err
	}
	return g, nil
}

func replaceSet[T any](tx *gorm.DB, g *models.Game, name string, set []*T) error {
	if set == nil {
		return nil
	}
	association := tx.Unscoped().Model(g).Association(name)
	if len(set) == 0 {
		return association.Clear()
	}
	return association.Replace(set)
}

// SoftDelete marks g as deleted and returns it carrying the tombstone.
func (r *GameRepository) SoftDelete(ctx context.Context, g *models.Game) (*models.Game, error) {
	result := r.db.WithContext(ctx).Delete(&models.Game{}, g.ID)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}

	var stored models.Game
	if err := r.db.WithContext(ctx).Unscoped().Select("deleted_at", "updated_at").First(&stored, g.ID).Error; err != nil {
		return nil, err
	}
	g.DeletedAt = stored.DeletedAt
	return g, nil
}

// Recover clears the tombstone of the game with the given id.
func (r *GameRepository) Recover(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Unscoped().Model(&models.Game{}).
		Where("id = ?", id).
		Update("deleted_at", nil)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// RandomID picks the id of one game, soft-deleted ones included.
func (r *GameRepository) RandomID(ctx context.Context) (uint, error) {
	var ids []uint
	err := r.db.WithContext(ctx).Unscoped().Model(&models.Game{}).
		Order("RANDOM()").
		Limit(1).
		Pluck("id", &ids).Error
	if err != nil {
		return 0, err
	}
	if len(ids) == 0 {
		return 0, gorm.ErrRecordNotFound
	}
	return ids[0], nil
}
