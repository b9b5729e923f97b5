package steamgrid

import (
	"context"

	"gamevault/backend/internal/models"

	"github.com/zeromicro/go-zero/core/logx"
)

// GameSaver persists a game after its box art changed.
type GameSaver interface {
	Save(ctx context.Context, g *models.Game) (*models.Game, error)
}

// ImageDownloader caches a remote picture and returns its record.
type ImageDownloader interface {
	Download(ctx context.Context, source string) (*models.Image, error)
}

// Resolver fills in missing box art from SteamGridDB.
type Resolver struct {
	client *Client
	images ImageDownloader
	saver  GameSaver
}

func NewResolver(client *Client, images ImageDownloader, saver GameSaver) *Resolver {
	return &Resolver{client: client, images: images, saver: saver}
}

// Resolve returns g with a box image, looking one up when it has none.
// Games SteamGridDB cannot match are returned unchanged.
func (r *Resolver) Resolve(ctx context.Context, g *models.Game) (*models.Game, error) {
	logger := logx.WithContext(ctx)
	if g.BoxImage != nil || g.BoxImageID != nil {
		return g, nil
	}
	if !r.client.Enabled() {
		logger.Debugw("box art lookup skipped, no steamgriddb api key", logx.Field("game_id", g.ID))
		return g, nil
	}
	title := g.MetadataTitle()
	if title == "" {
		return g, nil
	}

	matches, err := r.client.Autocomplete(ctx, title)
	if err != nil {
		return nil, err
	}
	if len(matches) == 0 {
		logger.Infow("no steamgriddb match for game", logx.Field("game_id", g.ID), logx.Field("title", title))
		return g, nil
	}

	grids, err := r.client.Grids(ctx, matches[0].ID)
	if err != nil {
		return nil, err
	}
	if len(grids) == 0 {
		logger.Infow("steamgriddb has no box art for game",
			logx.Field("game_id", g.ID),
			logx.Field("steamgriddb_id", matches[0].ID),
		)
		return g, nil
	}

	img, err := r.images.Download(ctx, grids[0].URL)
	if err != nil {
		return nil, err
	}
	g.BoxImage = img
	g.BoxImageID = &img.ID
	logger.Infow("box art resolved", logx.Field("game_id", g.ID), logx.Field("image_id", img.ID))
	return r.saver.Save(ctx, g)
}
