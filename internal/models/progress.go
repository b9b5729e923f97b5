package models

import (
	"time"

	"gorm.io/gorm"
)

type ProgressState string

const (
	ProgressUnplayed  ProgressState = "UNPLAYED"
	ProgressPlaying   ProgressState = "PLAYING"
	ProgressCompleted ProgressState = "COMPLETED"
	ProgressAbandoned ProgressState = "ABANDONED_TEMPORARY"
	ProgressInfinite  ProgressState = "INFINITE"
)

// Progress tracks how far a user got in a game.
type Progress struct {
	gorm.Model
	UserID        uint          `gorm:"not null;index"`
	GameID        uint          `gorm:"not null;index"`
	MinutesPlayed int           `gorm:"not null;default:0"`
	State         ProgressState `gorm:"size:50;not null;default:'UNPLAYED'"`
	LastPlayedAt  *time.Time

	User *User `gorm:"foreignKey:UserID"`
}
