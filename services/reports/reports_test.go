package reports_test

import (
	"testing"
	"time"

	"LevelUp/services/reports"

	"github.com/stretchr/testify/assert"
)

func TestEventsByUserGroupsByFirstAppearance(t *testing.T) {
	when := time.Date(2026, 3, 14, 19, 0, 0, 0, time.UTC)

	rows := []reports.EventRow{
		{UserID: 1, FullName: "Molly Ringwald", EventID: 5, EventTime: when, Location: "Nashville", EventName: "Friday night gaming", GameName: "Fortress America"},
		{UserID: 1, FullName: "Molly Ringwald", EventID: 6, EventTime: when.Add(24 * time.Hour), Location: "Memphis", EventName: "Saturday rematch", GameName: "Dune"},
		{UserID: 2, FullName: "Emile Bravo", EventID: 5, EventTime: when, Location: "Nashville", EventName: "Friday night gaming", GameName: "Fortress America"},
	}

	result := reports.EventsByUser(rows)

	assert.Len(t, result, 2)

	assert.Equal(t, uint(1), result[0].ID)
	assert.Equal(t, "Molly Ringwald", result[0].FullName)
	assert.Len(t, result[0].Events, 2)
	assert.Equal(t, uint(5), result[0].Events[0].ID)
	assert.Equal(t, uint(6), result[0].Events[1].ID)
	assert.Equal(t, "Dune", result[0].Events[1].GameName)

	assert.Equal(t, uint(2), result[1].ID)
	assert.Len(t, result[1].Events, 1)
	assert.Equal(t, "Friday night gaming", result[1].Events[0].Name)
}

func TestEventsByUserKeepsRowOrderWithinUser(t *testing.T) {
	rows := []reports.EventRow{
		{UserID: 7, FullName: "A B", EventID: 3},
		{UserID: 9, FullName: "C D", EventID: 1},
		{UserID: 7, FullName: "A B", EventID: 2},
		{UserID: 7, FullName: "A B", EventID: 1},
	}

	result := reports.EventsByUser(rows)

	assert.Len(t, result, 2)
	assert.Equal(t, uint(7), result[0].ID)
	assert.Equal(t, []uint{3, 2, 1}, []uint{
		result[0].Events[0].ID,
		result[0].Events[1].ID,
		result[0].Events[2].ID,
	})
	assert.Equal(t, uint(9), result[1].ID)
}

func TestEventsByUserEmptyInput(t *testing.T) {
	result := reports.EventsByUser(nil)
	assert.Empty(t, result)
	assert.NotNil(t, result)
}
