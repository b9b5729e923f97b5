package service

import (
	"context"
	"errors"
	"fmt"

	"gamevault/backend/internal/models"
	"gamevault/backend/internal/repository"

	"github.com/zeromicro/go-zero/core/logx"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"
)

var tracer = otel.Tracer("gamevault/backend/internal/service")

// GameStore is the persistence the game service needs.
type GameStore interface {
	FindByID(ctx context.Context, id uint, opts repository.FindOptions) (*models.Game, error)
	FindOne(ctx context.Context, c repository.Criteria, opts repository.FindOptions) (*models.Game, error)
	FindAll(ctx context.Context) ([]*models.Game, error)
	Save(ctx context.Context, g *models.Game) (*models.Game, error)
	SoftDelete(ctx context.Context, g *models.Game) (*models.Game, error)
	Recover(ctx context.Context, id uint) error
	RandomID(ctx context.Context) (uint, error)
}

// MetadataProvider refreshes the external metadata of a batch of games.
// The result has the same length and order as the input.
type MetadataProvider interface {
	Refresh(ctx context.Context, games []*models.Game) ([]*models.Game, error)
}

// BoxArtResolver makes sure a game has a cover image.
type BoxArtResolver interface {
	Resolve(ctx context.Context, g *models.Game) (*models.Game, error)
}

// ImageLookup resolves image ids, failing with ErrImageNotFound.
type ImageLookup interface {
	FindByIDOrFail(ctx context.Context, id uint) (*models.Image, error)
}

// FindOptions controls a lookup by id.
type FindOptions struct {
	LoadDeletedEntities bool
	LoadRelations       bool
}

// DefaultFindOptions includes soft-deleted games and loads no relations.
func DefaultFindOptions() FindOptions {
	return FindOptions{LoadDeletedEntities: true, LoadRelations: false}
}

// Notifier receives a message whenever a game changes through the service.
type Notifier interface {
	Publish(ctx context.Context, kind string, gameID uint)
}

const (
	EventGameUpdated  = "game.updated"
	EventGameDeleted  = "game.deleted"
	EventGameRestored = "game.restored"
)

type nopNotifier struct{}

func (nopNotifier) Publish(context.Context, string, uint) {}

// Option customises a GameService.
type Option func(*GameService)

// WithNotifier publishes change events to n.
func WithNotifier(n Notifier) Option {
	return func(s *GameService) {
		s.notifier = n
	}
}

// UpdateGameInput is a partial update. Nil fields are left alone.
type UpdateGameInput struct {
	RawgID            *int
	BoxImageID        *uint
	BackgroundImageID *uint
}

// GameService is the entry point for everything that reads or changes games.
type GameService struct {
	store    GameStore
	metadata MetadataProvider
	boxArt   BoxArtResolver
	images   ImageLookup
	notifier Notifier
}

func NewGameService(store GameStore, metadata MetadataProvider, boxArt BoxArtResolver, images ImageLookup, opts ...Option) *GameService {
	s := &GameService{
		store:    store,
		metadata: metadata,
		boxArt:   boxArt,
		images:   images,
		notifier: nopNotifier{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func startSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	return tracer.Start(ctx, "GameService."+name, trace.WithAttributes(attrs...))
}

// FindByIDOrFail looks a game up by primary key.
func (s *GameService) FindByIDOrFail(ctx context.Context, id uint, opts FindOptions) (*models.Game, error) {
	ctx, span := startSpan(ctx, "FindByIDOrFail", attribute.Int64("game.id", int64(id)))
	defer span.End()

	g, err := s.store.FindByID(ctx, id, repository.FindOptions{
		IncludeDeleted: opts.LoadDeletedEntities,
		LoadRelations:  opts.LoadRelations,
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: no game with id %d: %w", ErrGameNotFound, id, err)
	}
	if err != nil {
		return nil, err
	}
	return g, nil
}

// CheckExistence tells whether an indexed candidate is already stored and how.
// A match by file path wins over a match by title and release date.
func (s *GameService) CheckExistence(ctx context.Context, candidate *models.Game) (ExistenceState, *models.Game, error) {
	ctx, span := startSpan(ctx, "CheckExistence")
	defer span.End()

	if candidate == nil || candidate.FilePath == "" || (candidate.Title == "" && candidate.ReleaseDate == nil) {
		logx.WithContext(ctx).Errorw("duplicate check on game without identity", logx.Field("candidate", candidate))
		return DoesNotExist, nil, ErrInsufficientIdentity
	}

	opts := repository.FindOptions{IncludeDeleted: true}
	existing, err := s.store.FindOne(ctx, repository.Criteria{FilePath: candidate.FilePath}, opts)
	if err != nil {
		return DoesNotExist, nil, err
	}
	if existing == nil && candidate.Title != "" {
		existing, err = s.store.FindOne(ctx, repository.Criteria{
			Title:       candidate.Title,
			ReleaseDate: candidate.ReleaseDate,
		}, opts)
		if err != nil {
			return DoesNotExist, nil, err
		}
	}

	if existing == nil {
		return DoesNotExist, nil, nil
	}
	if existing.IsDeleted() {
		return ExistsButDeleted, existing, nil
	}

	diffs := differences(existing, candidate)
	if len(diffs) > 0 {
		logger := logx.WithContext(ctx)
		for _, d := range diffs {
			logger.Debugw("indexed game differs from stored game",
				logx.Field("game_id", existing.ID),
				logx.Field("field", d.Field),
				logx.Field("stored", d.Stored),
				logx.Field("indexed", d.Candidate),
			)
		}
		return ExistsButAltered, existing, nil
	}
	return Exists, existing, nil
}

// GetAll returns every active game without relations.
func (s *GameService) GetAll(ctx context.Context) ([]*models.Game, error) {
	ctx, span := startSpan(ctx, "GetAll")
	defer span.End()
	return s.store.FindAll(ctx)
}

// GetRandom returns one random game with all relations loaded.
func (s *GameService) GetRandom(ctx context.Context) (*models.Game, error) {
	ctx, span := startSpan(ctx, "GetRandom")
	defer span.End()

	// Pick the id first so only one row gets its relations expanded.
	id, err := s.store.RandomID(ctx)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: library is empty: %w", ErrGameNotFound, err)
	}
	if err != nil {
		return nil, err
	}
	return s.FindByIDOrFail(ctx, id, FindOptions{LoadDeletedEntities: true, LoadRelations: true})
}

// Remap points g at another provider id, drops everything derived from the old
// one and enriches it again. The three steps are not atomic: if refresh or box
// art fails, the cleared game stays persisted.
func (s *GameService) Remap(ctx context.Context, g *models.Game, rawgID int) (*models.Game, error) {
	ctx, span := startSpan(ctx, "Remap",
		attribute.Int64("game.id", int64(g.ID)),
		attribute.Int("game.rawg_id", rawgID),
	)
	defer span.End()

	logx.WithContext(ctx).Infow("remapping game",
		logx.Field("game_id", g.ID),
		logx.Field("old_rawg_id", g.RawgID),
		logx.Field("new_rawg_id", rawgID),
	)

	g.RawgID = &rawgID
	g.RawgTitle = ""
	g.RawgReleaseDate = nil
	g.CacheDate = nil
	g.Description = ""
	g.BoxImage = nil
	g.BoxImageID = nil
	g.BackgroundImage = nil
	g.BackgroundImageID = nil
	g.WebsiteURL = ""
	g.MetacriticRating = nil
	g.AveragePlaytime = nil
	g.Developers = []*models.Developer{}
	g.Publishers = []*models.Publisher{}
	g.Genres = []*models.Genre{}
	g.Stores = []*models.Store{}
	g.Tags = []*models.Tag{}

	saved, err := s.store.Save(ctx, g)
	if err != nil {
		return nil, err
	}

	refreshed, err := s.metadata.Refresh(ctx, []*models.Game{saved})
	if err != nil {
		return nil, err
	}
	if len(refreshed) != 1 {
		return nil, fmt.Errorf("metadata refresh returned %d games for 1", len(refreshed))
	}

	return s.boxArt.Resolve(ctx, refreshed[0])
}

// Save persists g and returns it as stored.
func (s *GameService) Save(ctx context.Context, g *models.Game) (*models.Game, error) {
	ctx, span := startSpan(ctx, "Save")
	defer span.End()
	return s.store.Save(ctx, g)
}

// Delete soft-deletes g.
func (s *GameService) Delete(ctx context.Context, g *models.Game) (*models.Game, error) {
	ctx, span := startSpan(ctx, "Delete", attribute.Int64("game.id", int64(g.ID)))
	defer span.End()

	deleted, err := s.store.SoftDelete(ctx, g)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: no game with id %d: %w", ErrGameNotFound, g.ID, err)
	}
	if err != nil {
		return nil, err
	}
	logx.WithContext(ctx).Infow("game deleted", logx.Field("game_id", g.ID))
	s.notifier.Publish(ctx, EventGameDeleted, g.ID)
	return deleted, nil
}

// Update applies a partial update. A remap runs before the image overrides so
// that images set in the same request survive the remap clearing them.
func (s *GameService) Update(ctx context.Context, id uint, patch UpdateGameInput) (*models.Game, error) {
	ctx, span := startSpan(ctx, "Update", attribute.Int64("game.id", int64(id)))
	defer span.End()

	g, err := s.FindByIDOrFail(ctx, id, FindOptions{LoadDeletedEntities: true, LoadRelations: true})
	if err != nil {
		return nil, err
	}

	if patch.RawgID != nil {
		if g, err = s.Remap(ctx, g, *patch.RawgID); err != nil {
			return nil, err
		}
	}

	if patch.BoxImageID != nil {
		img, err := s.images.FindByIDOrFail(ctx, *patch.BoxImageID)
		if err != nil {
			return nil, err
		}
		g.BoxImage = img
		g.BoxImageID = &img.ID
	}

	if patch.BackgroundImageID != nil {
		img, err := s.images.FindByIDOrFail(ctx, *patch.BackgroundImageID)
		if err != nil {
			return nil, err
		}
		g.BackgroundImage = img
		g.BackgroundImageID = &img.ID
	}

	saved, err := s.store.Save(ctx, g)
	if err != nil {
		return nil, err
	}
	s.notifier.Publish(ctx, EventGameUpdated, saved.ID)
	return saved, nil
}

// Restore clears the tombstone of a soft-deleted game.
func (s *GameService) Restore(ctx context.Context, id uint) (*models.Game, error) {
	ctx, span := startSpan(ctx, "Restore", attribute.Int64("game.id", int64(id)))
	defer span.End()

	if err := s.store.Recover(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: no game with id %d: %w", ErrGameNotFound, id, err)
		}
		return nil, err
	}
	logx.WithContext(ctx).Infow("game restored", logx.Field("game_id", id))
	s.notifier.Publish(ctx, EventGameRestored, id)
	return s.FindByIDOrFail(ctx, id, DefaultFindOptions())
}
