package utils

import (
	"LevelUp/models/postgres"
	"fmt"

	"gorm.io/gorm"
)

// Function to check if an event exists, loading its game and host
func CheckEventExists(db *gorm.DB, eventID uint) (*postgres.Event, error) {
	var event postgres.Event
	result := db.Preload("Game").Preload("Host").Where("id = ?", eventID).First(&event)

	if result.Error != nil {
		if result.Error == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("event not found")
		}
		return nil, result.Error
	}

	return &event, nil
}

// IsAttending reports whether the gamer currently has a signup row for
// the event.
func IsAttending(db *gorm.DB, eventID uint, gamerID uint) (bool, error) {
	var count int64
	err := db.Model(&postgres.EventAttendee{}).
		Where("event_id = ? AND gamer_id = ?", eventID, gamerID).
		Count(&count).Error

	if err != nil {
		return false, err
	}

	return count > 0, nil
}

// CountAttendees returns the number of signup rows for the event.
func CountAttendees(db *gorm.DB, eventID uint) (int64, error) {
	var count int64
	err := db.Model(&postgres.EventAttendee{}).
		Where("event_id = ?", eventID).
		Count(&count).Error

	if err != nil {
		return 0, err
	}

	return count, nil
}

// GamerByEmail resolves the authenticated email to its identity record
// and gamer profile.
func GamerByEmail(db *gorm.DB, email string) (*postgres.User, *postgres.Gamer, error) {
	var user postgres.User
	if err := db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, nil, err
	}

	var gamer postgres.Gamer
	if err := db.Where("user_email = ?", user.Email).First(&gamer).Error; err != nil {
		return nil, nil, err
	}

	return &user, &gamer, nil
}
