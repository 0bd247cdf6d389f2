package controllers

import (
	models "LevelUp/models/postgres"
	"LevelUp/utils"
	"time"

	"gorm.io/gorm"
)

// Response DTOs. The per-viewer 'joined' flag and the attendee count
// are derived here per request and never written back to the models.

type GameResponse struct {
	ID         uint   `json:"id"`
	Name       string `json:"name"`
	GameType   uint   `json:"game_type"`
	MaxPlayers int    `json:"max_players"`
	MinPlayers int    `json:"min_players"`
	Difficulty string `json:"difficulty"`
}

type HostUserResponse struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
}

type HostResponse struct {
	User HostUserResponse `json:"user"`
}

type EventResponse struct {
	ID                uint         `json:"id"`
	Game              GameResponse `json:"game"`
	EventTime         time.Time    `json:"event_time"`
	Location          string       `json:"location"`
	Name              string       `json:"name"`
	Host              HostResponse `json:"host"`
	Joined            bool         `json:"joined"`
	NumberOfAttendees int64        `json:"number_of_attendees"`
}

func serializeGame(game *models.Game) GameResponse {
	return GameResponse{
		ID:         game.ID,
		Name:       game.Name,
		GameType:   game.GameTypeID,
		MaxPlayers: game.MaxPlayers,
		MinPlayers: game.MinPlayers,
		Difficulty: game.Difficulty,
	}
}

// serializeEvent builds the event DTO for one viewer. The event must
// arrive with Game and Host preloaded.
func serializeEvent(db *gorm.DB, event *models.Event, viewer *models.Gamer) (EventResponse, error) {
	count, err := utils.CountAttendees(db, event.ID)
	if err != nil {
		return EventResponse{}, err
	}

	joined, err := utils.IsAttending(db, event.ID, viewer.ID)
	if err != nil {
		return EventResponse{}, err
	}

	var hostUser models.User
	if err := db.Where("email = ?", event.Host.UserEmail).First(&hostUser).Error; err != nil {
		return EventResponse{}, err
	}

	return EventResponse{
		ID:        event.ID,
		Game:      serializeGame(&event.Game),
		EventTime: event.EventTime,
		Location:  event.Location,
		Name:      event.Name,
		Host: HostResponse{
			User: HostUserResponse{
				FirstName: hostUser.FirstName,
				LastName:  hostUser.LastName,
				Email:     hostUser.Email,
			},
		},
		Joined:            joined,
		NumberOfAttendees: count,
	}, nil
}
