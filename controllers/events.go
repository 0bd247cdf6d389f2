package controllers

import (
	"LevelUp/middleware"
	models "LevelUp/models/postgres"
	"LevelUp/services/redis"
	"LevelUp/services/socket_io"
	"LevelUp/utils"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type createEventRequest struct {
	Name      string    `json:"name" binding:"required"`
	Location  string    `json:"location" binding:"required"`
	EventTime time.Time `json:"eventTime" binding:"required"`
	GameID    uint      `json:"gameId" binding:"required"`
}

type updateEventRequest struct {
	Name      string    `json:"name"`
	EventTime time.Time `json:"event_time" binding:"required"`
	Location  string    `json:"location" binding:"required"`
	GameID    uint      `json:"gameId" binding:"required"`
}

// requestingGamer resolves the authenticated email to its user and
// gamer rows, answering 401 itself when that fails.
func requestingGamer(c *gin.Context, db *gorm.DB) (*models.User, *models.Gamer, bool) {
	user, gamer, err := utils.GamerByEmail(db, middleware.Email(c))
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found: invalid email"})
		return nil, nil, false
	}
	return user, gamer, true
}

// eventIDParam parses the :id path segment, answering 400 on garbage.
func eventIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid event id"})
		return 0, false
	}
	return uint(id), true
}

// @Summary Create an event
// @Description Creates an event for a game, hosted by the requesting gamer
// @Tags events
// @Accept json
// @Produce json
// @Param event body createEventRequest true "Event fields"
// @Success 200 {object} EventResponse
// @Failure 400 {object} object{error=string}
// @Failure 404 {object} object{error=string}
// @Router /events [post]
// @Security ApiKeyAuth
func CreateEvent(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, gamer, ok := requestingGamer(c, db)
		if !ok {
			return
		}

		var req createEventRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Missing or malformed event fields"})
			return
		}

		var game models.Game
		if err := db.Where("id = ?", req.GameID).First(&game).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Game does not exist."})
			return
		}

		event := models.Event{
			GameID:    game.ID,
			EventTime: req.EventTime,
			Location:  req.Location,
			Name:      req.Name,
			HostID:    gamer.ID,
		}
		if err := db.Create(&event).Error; err != nil {
			logrus.WithError(err).Error("Error creating event")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error creating event"})
			return
		}

		event.Game = game
		event.Host = *gamer
		event.Host.UserEmail = user.Email

		resp, err := serializeEvent(db, &event, gamer)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error serializing event"})
			return
		}
		c.JSON(http.StatusOK, resp)
	}
}

// @Summary Retrieve an event
// @Description Returns one event with the viewer's joined flag and the attendee count
// @Tags events
// @Produce json
// @Param id path int true "Event id"
// @Success 200 {object} EventResponse
// @Failure 404 {object} object{error=string}
// @Router /events/{id} [get]
// @Security ApiKeyAuth
func GetEvent(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		_, gamer, ok := requestingGamer(c, db)
		if !ok {
			return
		}

		eventID, ok := eventIDParam(c)
		if !ok {
			return
		}

		event, err := utils.CheckEventExists(db, eventID)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Event does not exist."})
			return
		}

		resp, err := serializeEvent(db, event, gamer)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error serializing event"})
			return
		}
		c.JSON(http.StatusOK, resp)
	}
}

// @Summary List events
// @Description Returns all events, optionally filtered to one game, each annotated with joined and number_of_attendees
// @Tags events
// @Produce json
// @Param gameId query int false "Filter by game id"
// @Success 200 {array} EventResponse
// @Failure 500 {object} object{error=string}
// @Router /events [get]
// @Security ApiKeyAuth
func ListEvents(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		_, gamer, ok := requestingGamer(c, db)
		if !ok {
			return
		}

		query := db.Preload("Game").Preload("Host").Order("id")
		if gameID := c.Query("gameId"); gameID != "" {
			id, err := strconv.ParseUint(gameID, 10, 32)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid gameId filter"})
				return
			}
			query = query.Where("game_id = ?", id)
		}

		var events []models.Event
		if err := query.Find(&events).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching events"})
			return
		}

		resp := make([]EventResponse, 0, len(events))
		for i := range events {
			serialized, err := serializeEvent(db, &events[i], gamer)
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Error serializing events"})
				return
			}
			resp = append(resp, serialized)
		}

		c.JSON(http.StatusOK, resp)
	}
}

// @Summary Update an event
// @Description Replaces game, time, location and optionally name. Only the host may update; the host is never reassigned.
// @Tags events
// @Accept json
// @Param id path int true "Event id"
// @Param event body updateEventRequest true "Event fields"
// @Success 204
// @Failure 400 {object} object{error=string}
// @Failure 403 {object} object{error=string}
// @Failure 404 {object} object{error=string}
// @Router /events/{id} [put]
// @Security ApiKeyAuth
func UpdateEvent(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		_, gamer, ok := requestingGamer(c, db)
		if !ok {
			return
		}

		eventID, ok := eventIDParam(c)
		if !ok {
			return
		}

		event, err := utils.CheckEventExists(db, eventID)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Event does not exist."})
			return
		}

		if event.HostID != gamer.ID {
			c.JSON(http.StatusForbidden, gin.H{"error": "Only the host can update this event."})
			return
		}

		var req updateEventRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Missing or malformed event fields"})
			return
		}

		var game models.Game
		if err := db.Where("id = ?", req.GameID).First(&game).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Game does not exist."})
			return
		}

		event.GameID = game.ID
		event.EventTime = req.EventTime
		event.Location = req.Location
		if req.Name != "" {
			event.Name = req.Name
		}

		if err := db.Save(event).Error; err != nil {
			logrus.WithError(err).Error("Error updating event")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error updating event"})
			return
		}

		c.Status(http.StatusNoContent)
	}
}

// @Summary Delete an event
// @Description Removes the event and all its signups
// @Tags events
// @Param id path int true "Event id"
// @Success 204
// @Failure 404 {object} object{error=string}
// @Failure 500 {object} object{error=string}
// @Router /events/{id} [delete]
// @Security ApiKeyAuth
func DeleteEvent(db *gorm.DB, redisClient *redis.RedisClient, sio *socket_io.EventGateway) gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, _, ok := requestingGamer(c, db); !ok {
			return
		}

		eventID, ok := eventIDParam(c)
		if !ok {
			return
		}

		event, err := utils.CheckEventExists(db, eventID)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Event does not exist."})
			return
		}

		// Attendee rows go in the same transaction; the FK cascade is a
		// schema-level backstop, not something the handler leans on.
		err = db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Where("event_id = ?", event.ID).Delete(&models.EventAttendee{}).Error; err != nil {
				return err
			}
			return tx.Delete(event).Error
		})
		if err != nil {
			logrus.WithError(err).Error("Error deleting event")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error deleting event"})
			return
		}

		if redisClient != nil {
			if err := redisClient.InvalidateUserEventsReport(); err != nil {
				logrus.WithError(err).Warn("Error invalidating report cache")
			}
		}
		sio.NotifyEventCancelled(event.ID)

		c.Status(http.StatusNoContent)
	}
}
