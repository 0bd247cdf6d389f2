package controllers_test

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"LevelUp/controllers"
	models "LevelUp/models/postgres"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateGameValidation(t *testing.T) {
	r, db := setupServer(t)
	token := registerAndLogin(t, r, "curator@example.com", "curator", "Cora", "Curator")

	gameType := models.GameType{Label: "Party"}
	require.NoError(t, db.Create(&gameType).Error)

	t.Run("rejects min above max", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPost, "/games", token, gin.H{
			"name":       "Broken",
			"gameTypeId": gameType.ID,
			"maxPlayers": 2,
			"minPlayers": 5,
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("rejects unknown game type", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPost, "/games", token, gin.H{
			"name":       "Orphan",
			"gameTypeId": 9999,
			"maxPlayers": 4,
			"minPlayers": 2,
		})
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("requires authentication", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPost, "/games", "", gin.H{
			"name":       "Anonymous",
			"gameTypeId": gameType.ID,
			"maxPlayers": 4,
			"minPlayers": 2,
		})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestEventLifecycle(t *testing.T) {
	r, db := setupServer(t)
	hostToken := registerAndLogin(t, r, "host@example.com", "host", "Holly", "Host")
	otherToken := registerAndLogin(t, r, "other@example.com", "other", "Oscar", "Other")

	_, gameID := seedCatalog(t, r, db, hostToken, 2, 4)
	eventTime := time.Now().Add(72 * time.Hour).UTC().Truncate(time.Second)

	var eventID uint

	t.Run("create", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPost, "/events", hostToken, gin.H{
			"name":      "Friday night gaming",
			"location":  "Nashville",
			"eventTime": eventTime.Format(time.RFC3339),
			"gameId":    gameID,
		})
		require.Equal(t, http.StatusOK, w.Code)

		var resp controllers.EventResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "Friday night gaming", resp.Name)
		assert.Equal(t, gameID, resp.Game.ID)
		assert.Equal(t, "host@example.com", resp.Host.User.Email)
		assert.Equal(t, "Holly", resp.Host.User.FirstName)
		assert.False(t, resp.Joined)
		assert.Equal(t, int64(0), resp.NumberOfAttendees)
		eventID = resp.ID
	})

	t.Run("create with unknown game", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPost, "/events", hostToken, gin.H{
			"name":      "Ghost event",
			"location":  "Nowhere",
			"eventTime": eventTime.Format(time.RFC3339),
			"gameId":    9999,
		})
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("create with missing fields", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPost, "/events", hostToken, gin.H{
			"location": "Nashville",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("retrieve", func(t *testing.T) {
		w := doJSON(t, r, http.MethodGet, eventPath(eventID), hostToken, nil)
		require.Equal(t, http.StatusOK, w.Code)

		var resp controllers.EventResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, eventID, resp.ID)
		assert.Equal(t, "Nashville", resp.Location)
	})

	t.Run("retrieve unknown", func(t *testing.T) {
		w := doJSON(t, r, http.MethodGet, "/events/9999", hostToken, nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("update by non-host is forbidden", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPut, eventPath(eventID), otherToken, gin.H{
			"event_time": eventTime.Format(time.RFC3339),
			"location":   "Hijacked",
			"gameId":     gameID,
		})
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("update by host", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPut, eventPath(eventID), hostToken, gin.H{
			"event_time": eventTime.Add(time.Hour).Format(time.RFC3339),
			"location":   "Memphis",
			"gameId":     gameID,
		})
		require.Equal(t, http.StatusNoContent, w.Code)

		var event models.Event
		require.NoError(t, db.First(&event, eventID).Error)
		assert.Equal(t, "Memphis", event.Location)
		// Host is preserved, not reassigned
		var host models.Gamer
		require.NoError(t, db.First(&host, event.HostID).Error)
		assert.Equal(t, "host@example.com", host.UserEmail)
	})

	t.Run("update unknown event", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPut, "/events/9999", hostToken, gin.H{
			"event_time": eventTime.Format(time.RFC3339),
			"location":   "Nowhere",
			"gameId":     gameID,
		})
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("delete", func(t *testing.T) {
		w := doJSON(t, r, http.MethodDelete, eventPath(eventID), hostToken, nil)
		require.Equal(t, http.StatusNoContent, w.Code)

		w = doJSON(t, r, http.MethodGet, eventPath(eventID), hostToken, nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("delete unknown", func(t *testing.T) {
		w := doJSON(t, r, http.MethodDelete, "/events/9999", hostToken, nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
