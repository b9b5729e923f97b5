package models

import (
	"time"

	"gorm.io/gorm"
)

// Game represents one item of the library together with its cached metadata.
type Game struct {
	gorm.Model

	// Provenance, as indexed from the file system.
	FilePath    string     `gorm:"size:1024;index"`
	Title       string     `gorm:"size:255;index"`
	ReleaseDate *time.Time `gorm:"index"`
	EarlyAccess bool       `gorm:"not null;default:false"`
	Version     string     `gorm:"size:255"`
	Size        int64      `gorm:"not null;default:0"`

	// External metadata, filled by the metadata provider.
	RawgID           *int   `gorm:"index"`
	RawgTitle        string `gorm:"size:255"`
	RawgReleaseDate  *time.Time
	CacheDate        *time.Time
	Description      string `gorm:"type:text"`
	WebsiteURL       string `gorm:"size:512"`
	MetacriticRating *int
	AveragePlaytime  *int

	BoxImageID        *uint
	BoxImage          *Image `gorm:"foreignKey:BoxImageID"`
	BackgroundImageID *uint
	BackgroundImage   *Image `gorm:"foreignKey:BackgroundImageID"`

	Developers []*Developer `gorm:"many2many:game_developers;"`
	Publishers []*Publisher `gorm:"many2many:game_publishers;"`
	Genres     []*Genre     `gorm:"many2many:game_genres;"`
	Stores     []*Store     `gorm:"many2many:game_stores;"`
	Tags       []*Tag       `gorm:"many2many:game_tags;"`

	Progresses []*Progress `gorm:"foreignKey:GameID"`
}

// IsDeleted reports whether the game carries a soft-delete tombstone.
func (g *Game) IsDeleted() bool {
	return g.DeletedAt.Valid
}

// MetadataTitle returns the provider title when known, the indexed title otherwise.
func (g *Game) MetadataTitle() string {
	if g.RawgTitle != "" {
		return g.RawgTitle
	}
	return g.Title
}
