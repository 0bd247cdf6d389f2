package postgres

import (
	"gorm.io/datatypes"
)

/*
 * 'Gamer' defines the structure for a user's gaming profile. It is
 * referenced in Event (as host) and EventAttendee
 */
type Gamer struct {
	ID          uint           `gorm:"primaryKey"`
	UserEmail   string         `gorm:"size:100;not null;uniqueIndex"`
	Bio         string         `gorm:"size:255"`
	Preferences datatypes.JSON `gorm:"default:'{}'"`

	// NOTE: no back-reference to User here, it was creating a circular
	// dependency between Gamer and User
	HostedEvents []Event         `gorm:"foreignKey:HostID"`
	Attendances  []EventAttendee `gorm:"foreignKey:GamerID"`
}
