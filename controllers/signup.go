package controllers

import (
	models "LevelUp/models/postgres"
	"LevelUp/services/redis"
	"LevelUp/services/socket_io"
	"LevelUp/utils"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

/*
 * Signup state machine per (event, gamer) pair:
 *
 *   NotRegistered --POST signup--> Registered   (201)
 *   Registered    --POST signup--> Registered   (422, no row written)
 *   Registered    --DELETE signup--> NotRegistered (204)
 *   NotRegistered --DELETE signup--> NotRegistered (404, no mutation)
 *
 * The composite primary key on event_attendees backs the uniqueness
 * invariant when two duplicate signups race past the existence check.
 */

// @Summary Sign up for an event
// @Description Registers the requesting gamer as an attendee of the event
// @Tags signup
// @Produce json
// @Param id path int true "Event id"
// @Success 201 {object} object{}
// @Failure 404 {object} object{error=string}
// @Failure 422 {object} object{error=string}
// @Router /events/{id}/signup [post]
// @Security ApiKeyAuth
func EventSignup(db *gorm.DB, redisClient *redis.RedisClient, sio *socket_io.EventGateway) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, gamer, ok := requestingGamer(c, db)
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

		attending, err := utils.IsAttending(db, event.ID, gamer.ID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error checking registration"})
			return
		}
		if attending {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Gamer already signed up this event."})
			return
		}

		registration := models.EventAttendee{
			EventID: event.ID,
			GamerID: gamer.ID,
		}
		if err := db.Create(&registration).Error; err != nil {
			// A concurrent duplicate request can slip between the check
			// and the insert; the primary key rejects it here.
			if attending, checkErr := utils.IsAttending(db, event.ID, gamer.ID); checkErr == nil && attending {
				c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Gamer already signed up this event."})
				return
			}
			logrus.WithError(err).Error("Error creating signup")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error signing up for event"})
			return
		}

		if redisClient != nil {
			if err := redisClient.InvalidateUserEventsReport(); err != nil {
				logrus.WithError(err).Warn("Error invalidating report cache")
			}
		}

		if count, err := utils.CountAttendees(db, event.ID); err == nil {
			sio.NotifyAttendeeJoined(event.ID, user.Username, count)
		}

		c.JSON(http.StatusCreated, gin.H{})
	}
}

// @Summary Cancel an event signup
// @Description Removes the requesting gamer's registration for the event
// @Tags signup
// @Produce json
// @Param id path int true "Event id"
// @Success 204
// @Failure 404 {object} object{error=string}
// @Router /events/{id}/signup [delete]
// @Security ApiKeyAuth
func EventCancel(db *gorm.DB, redisClient *redis.RedisClient, sio *socket_io.EventGateway) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, gamer, ok := requestingGamer(c, db)
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

		result := db.Where("event_id = ? AND gamer_id = ?", event.ID, gamer.ID).
			Delete(&models.EventAttendee{})
		if result.Error != nil {
			logrus.WithError(result.Error).Error("Error deleting signup")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error cancelling signup"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Not currently registered for event."})
			return
		}

		if redisClient != nil {
			if err := redisClient.InvalidateUserEventsReport(); err != nil {
				logrus.WithError(err).Warn("Error invalidating report cache")
			}
		}

		if count, err := utils.CountAttendees(db, event.ID); err == nil {
			sio.NotifyAttendeeLeft(event.ID, user.Username, count)
		}

		c.Status(http.StatusNoContent)
	}
}
