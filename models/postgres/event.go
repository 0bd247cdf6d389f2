package postgres

import (
	"time"
)

/*
 * 'Event' defines a scheduled meetup tied to one Game, owned by a host
 * Gamer. It contains references to Game and Gamer.
 *
 * The per-viewer 'joined' flag and the attendee count are NOT stored
 * here: they are derived per request by the events controller and only
 * exist on the response DTO.
 */
type Event struct {
	ID        uint      `gorm:"primaryKey"`
	GameID    uint      `gorm:"not null;index:idx_events_game"`
	EventTime time.Time `gorm:"not null"`
	Location  string    `gorm:"size:50"`
	Name      string    `gorm:"size:50;not null"`
	HostID    uint      `gorm:"not null;index:idx_events_host"`

	// Relationships
	Game Game  `gorm:"foreignKey:GameID;constraint:OnDelete:CASCADE"`
	Host Gamer `gorm:"foreignKey:HostID"`
	// Relationship with the gamers attending the event
	Attendees []*EventAttendee `gorm:"foreignKey:EventID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}
