package rawg

import (
	"context"
	"errors"
	"time"

	"gamevault/backend/internal/models"

	"github.com/zeromicro/go-zero/core/logx"
)

// GameSaver persists a refreshed game.
type GameSaver interface {
	Save(ctx context.Context, g *models.Game) (*models.Game, error)
}

// RelationResolver swaps relation entities for their stored rows.
type RelationResolver interface {
	ResolveRelations(ctx context.Context, g *models.Game) error
}

// ImageDownloader caches a remote picture and returns its record.
type ImageDownloader interface {
	Download(ctx context.Context, source string) (*models.Image, error)
}

// Provider refreshes game metadata from RAWG.
type Provider struct {
	client    *Client
	saver     GameSaver
	relations RelationResolver
	images    ImageDownloader
	cacheFor  time.Duration
	now       func() time.Time
}

// NewProvider builds a provider. Metadata younger than cacheDays is not refreshed.
func NewProvider(client *Client, saver GameSaver, relations RelationResolver, images ImageDownloader, cacheDays int) *Provider {
	return &Provider{
		client:    client,
		saver:     saver,
		relations: relations,
		images:    images,
		cacheFor:  time.Duration(cacheDays) * 24 * time.Hour,
		now:       time.Now,
	}
}

// Refresh updates every game whose cached metadata is missing or stale.
// The result keeps the order of games; games RAWG does not know are returned unchanged.
func (p *Provider) Refresh(ctx context.Context, games []*models.Game) ([]*models.Game, error) {
	out := make([]*models.Game, len(games))
	for i, g := range games {
		refreshed, err := p.refresh(ctx, g)
		if err != nil {
			return nil, err
		}
		out[i] = refreshed
	}
	return out, nil
}

func (p *Provider) isFresh(g *models.Game) bool {
	if g.RawgID == nil || g.CacheDate == nil {
		return false
	}
	return p.now().Sub(*g.CacheDate) < p.cacheFor
}

func (p *Provider) refresh(ctx context.Context, g *models.Game) (*models.Game, error) {
	logger := logx.WithContext(ctx)
	if p.isFresh(g) {
		return g, nil
	}

	var rawgID int
	if g.RawgID != nil {
		rawgID = *g.RawgID
	} else {
		matched, err := p.match(ctx, g)
		if err != nil {
			return nil, err
		}
		if matched == 0 {
			logger.Infow("no rawg match for game", logx.Field("game_id", g.ID), logx.Field("title", g.Title))
			return g, nil
		}
		rawgID = matched
	}

	detail, err := p.client.GetGame(ctx, rawgID)
	if errors.Is(err, ErrNotFound) {
		logger.Infow("rawg id unknown to rawg", logx.Field("game_id", g.ID), logx.Field("rawg_id", rawgID))
		return g, nil
	}
	if err != nil {
		return nil, err
	}

	applyDetail(g, detail)

	if detail.BackgroundImage != "" && g.BackgroundImage == nil && g.BackgroundImageID == nil {
		img, err := p.images.Download(ctx, detail.BackgroundImage)
		if err != nil {
			logger.Errorw("background image download failed",
				logx.Field("game_id", g.ID),
				logx.Field("source", detail.BackgroundImage),
				logx.Field("error", err.Error()),
			)
		} else {
			g.BackgroundImage = img
			g.BackgroundImageID = &img.ID
		}
	}

	if err := p.relations.ResolveRelations(ctx, g); err != nil {
		return nil, err
	}

	now := p.now()
	g.CacheDate = &now
	logger.Infow("game metadata refreshed", logx.Field("game_id", g.ID), logx.Field("rawg_id", rawgID))
	return p.saver.Save(ctx, g)
}

// match searches RAWG for g by title, narrowing to the release year when known.
// Zero means no match.
func (p *Provider) match(ctx context.Context, g *models.Game) (int, error) {
	if g.Title == "" {
		return 0, nil
	}
	year := 0
	if g.ReleaseDate != nil {
		year = g.ReleaseDate.Year()
	}

	results, err := p.client.Search(ctx, g.Title, year)
	if err != nil {
		return 0, err
	}
	if len(results) == 0 && year > 0 {
		if results, err = p.client.Search(ctx, g.Title, 0); err != nil {
			return 0, err
		}
	}
	if len(results) == 0 {
		return 0, nil
	}
	return results[0].ID, nil
}
