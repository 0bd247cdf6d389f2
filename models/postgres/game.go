package postgres

import (
	"errors"

	"gorm.io/gorm"
)

/*
 * 'Game' contains the blueprint definition of a catalog game. It contains
 * a reference to GameType and is referenced by Event.
 */
type Game struct {
	ID         uint   `gorm:"primaryKey"`
	Name       string `gorm:"size:50;not null"`
	GameTypeID uint   `gorm:"not null;index:idx_games_game_type"`
	MaxPlayers int    `gorm:"not null"`
	MinPlayers int    `gorm:"not null"`
	Difficulty string `gorm:"size:50"`

	// Relationships
	GameType GameType `gorm:"foreignKey:GameTypeID;constraint:OnDelete:CASCADE"`
	Events   []Event  `gorm:"foreignKey:GameID"`
}

// GORM hook to ensure the player range is coherent
func (g *Game) BeforeSave(tx *gorm.DB) error {
	if g.MinPlayers > g.MaxPlayers {
		return errors.New("min_players cannot exceed max_players")
	}
	if g.MinPlayers < 1 {
		return errors.New("min_players must be at least 1")
	}
	return nil
}
