package postgres

/*
 * 'GameType' is the catalog category a Game belongs to (strategy,
 * deck-builder, party game...). Referenced by many Games.
 */
type GameType struct {
	ID    uint   `gorm:"primaryKey"`
	Label string `gorm:"size:50;not null;uniqueIndex"`

	// Relationship with the games of this type
	Games []Game `gorm:"foreignKey:GameTypeID"`
}
