package rawg

import (
	"time"

	"gamevault/backend/internal/models"
)

// applyDetail copies provider metadata onto g. Relation sets are replaced.
func applyDetail(g *models.Game, d *gameDetail) {
	id := d.ID
	g.RawgID = &id
	g.RawgTitle = d.Name
	g.RawgReleaseDate = parseReleased(d.Released)
	g.Description = d.DescriptionRaw
	g.WebsiteURL = d.Website
	g.MetacriticRating = d.Metacritic
	g.AveragePlaytime = d.Playtime

	g.Developers = make([]*models.Developer, 0, len(d.Developers))
	for _, e := range d.Developers {
		g.Developers = append(g.Developers, &models.Developer{RawgEntity: entity(e)})
	}
	g.Publishers = make([]*models.Publisher, 0, len(d.Publishers))
	for _, e := range d.Publishers {
		g.Publishers = append(g.Publishers, &models.Publisher{RawgEntity: entity(e)})
	}
	g.Genres = make([]*models.Genre, 0, len(d.Genres))
	for _, e := range d.Genres {
		g.Genres = append(g.Genres, &models.Genre{RawgEntity: entity(e)})
	}
	g.Stores = make([]*models.Store, 0, len(d.Stores))
	for _, link := range d.Stores {
		g.Stores = append(g.Stores, &models.Store{RawgEntity: entity(link.Store)})
	}
	g.Tags = make([]*models.Tag, 0, len(d.Tags))
	for _, e := range d.Tags {
		g.Tags = append(g.Tags, &models.Tag{RawgEntity: entity(e)})
	}
}

func entity(e namedEntity) models.RawgEntity {
	return models.RawgEntity{RawgID: e.ID, Name: e.Name}
}

func parseReleased(raw string) *time.Time {
	if raw == "" {
		return nil
	}
	t, err := time.Parse(releasedLayout, raw)
	if err != nil {
		return nil
	}
	return &t
}
