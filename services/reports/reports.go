package reports

import (
	"time"
)

// EventRow is one flat row of the report join: one (event, attendee)
// pair across Event, EventAttendee, Gamer, User and Game.
type EventRow struct {
	UserID    uint
	FullName  string
	EventID   uint
	EventTime time.Time
	Location  string
	EventName string
	GameName  string
}

// AttendedEvent is one event inside a user's report entry.
type AttendedEvent struct {
	ID        uint      `json:"id"`
	EventTime time.Time `json:"event_time"`
	Location  string    `json:"location"`
	Name      string    `json:"name"`
	GameName  string    `json:"game_name"`
}

// UserEvents is the report entry for one attending user.
type UserEvents struct {
	ID       uint            `json:"id"`
	FullName string          `json:"full_name"`
	Events   []AttendedEvent `json:"events"`
}

// EventsByUser groups flat join rows by user, keyed on the first
// appearance order of each UserID. Events land in each user's list in
// row order. A user with no rows gets no entry.
func EventsByUser(rows []EventRow) []UserEvents {
	byUser := make(map[uint]int, len(rows))
	result := make([]UserEvents, 0, len(rows))

	for _, row := range rows {
		event := AttendedEvent{
			ID:        row.EventID,
			EventTime: row.EventTime,
			Location:  row.Location,
			Name:      row.EventName,
			GameName:  row.GameName,
		}

		if idx, seen := byUser[row.UserID]; seen {
			result[idx].Events = append(result[idx].Events, event)
		} else {
			byUser[row.UserID] = len(result)
			result = append(result, UserEvents{
				ID:       row.UserID,
				FullName: row.FullName,
				Events:   []AttendedEvent{event},
			})
		}
	}

	return result
}
