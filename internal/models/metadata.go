package models

import "gorm.io/gorm"

// RawgEntity is the shared shape of the lookup entities a game is linked to.
// RawgID is the identifier the metadata provider uses for the entity.
type RawgEntity struct {
	gorm.Model
	RawgID int    `gorm:"uniqueIndex;not null"`
	Name   string `gorm:"size:255;not null"`
}

// GetRawgID returns the provider identifier of the entity.
func (e RawgEntity) GetRawgID() int { return e.RawgID }

func (e RawgEntity) GetID() uint     { return e.ID }
func (e RawgEntity) GetName() string { return e.Name }

// Developer represents a studio that developed a game.
type Developer struct {
	RawgEntity
}

// Publisher represents a company that published a game.
type Publisher struct {
	RawgEntity
}

// Genre represents a game genre (e.g., "RPG", "Shooter").
type Genre struct {
	RawgEntity
}

// Store represents a storefront a game is sold on (e.g., "Steam").
type Store struct {
	RawgEntity
}

// Tag represents a game tag (e.g., "Singleplayer", "Co-op").
type Tag struct {
	RawgEntity
}
