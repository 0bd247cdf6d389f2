package controllers

import (
	"LevelUp/services/redis"
	"LevelUp/services/reports"
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// One row per (event, attendee) pair. The string concatenation works on
// both postgres and sqlite.
const userEventsQuery = `
SELECT
    gr.id AS user_id,
    (u.first_name || ' ' || u.last_name) AS full_name,
    e.id AS event_id,
    e.event_time,
    e.location,
    e.name AS event_name,
    g.name AS game_name
FROM events e
JOIN event_attendees ea ON ea.event_id = e.id
JOIN gamers gr ON ea.gamer_id = gr.id
JOIN users u ON gr.user_email = u.email
JOIN games g ON g.id = e.game_id
ORDER BY ea.created_at, e.id`

// @Summary Events grouped by attending user
// @Description Read-only projection: every attending user with the events they signed up for, in signup order
// @Tags reports
// @Produce json
// @Success 200 {array} reports.UserEvents
// @Failure 500 {object} object{error=string}
// @Router /reports/userevents [get]
// @Security ApiKeyAuth
func UserEventsReport(db *gorm.DB, redisClient *redis.RedisClient) gin.HandlerFunc {
	return func(c *gin.Context) {
		if redisClient != nil {
			if cached, err := redisClient.GetUserEventsReport(); err == nil && cached != nil {
				c.Data(http.StatusOK, "application/json; charset=utf-8", cached)
				return
			}
		}

		var rows []reports.EventRow
		if err := db.Raw(userEventsQuery).Scan(&rows).Error; err != nil {
			logrus.WithError(err).Error("Error running report query")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error building report"})
			return
		}

		report := reports.EventsByUser(rows)

		payload, err := json.Marshal(report)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error building report"})
			return
		}

		if redisClient != nil {
			if err := redisClient.SaveUserEventsReport(payload); err != nil {
				logrus.WithError(err).Warn("Error caching report")
			}
		}

		c.Data(http.StatusOK, "application/json; charset=utf-8", payload)
	}
}
