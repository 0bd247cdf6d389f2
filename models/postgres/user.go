package postgres

import (
	"time"
)

/*
 * 'User' contains the blueprint definition of a platform identity.
 * It contains a reference to Gamer (1:1)
 */
type User struct {
	Email        string    `gorm:"primaryKey;size:100;not null"`
	Username     string    `gorm:"size:50;not null;uniqueIndex"`
	PasswordHash string    `gorm:"size:255;not null"`
	FirstName    string    `gorm:"size:50"`
	LastName     string    `gorm:"size:50"`
	MemberSince  time.Time `gorm:"default:CURRENT_TIMESTAMP"`

	// Relationship with the gamer profile
	Gamer Gamer `gorm:"foreignKey:UserEmail;constraint:OnDelete:CASCADE"`
}
