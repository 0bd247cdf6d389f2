package postgres

import (
	"time"
)

/*
 * 'EventAttendee' represents one gamer's registration to one event.
 * The composite primary key is the uniqueness guarantee: under
 * concurrent duplicate signups the second insert fails at the storage
 * layer instead of racing past the existence check.
 */
type EventAttendee struct {
	EventID   uint      `gorm:"primaryKey;not null"`
	GamerID   uint      `gorm:"primaryKey;not null;index:idx_event_attendees_gamer"`
	CreatedAt time.Time `gorm:"default:CURRENT_TIMESTAMP"`

	// Relationships
	Event Event `gorm:"foreignKey:EventID;constraint:OnDelete:CASCADE"`
	Gamer Gamer `gorm:"foreignKey:GamerID;constraint:OnDelete:CASCADE"`
}
