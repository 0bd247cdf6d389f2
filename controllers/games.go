package controllers

import (
	models "LevelUp/models/postgres"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type createGameRequest struct {
	Name       string `json:"name" binding:"required"`
	GameTypeID uint   `json:"gameTypeId" binding:"required"`
	MaxPlayers int    `json:"maxPlayers" binding:"required"`
	MinPlayers int    `json:"minPlayers" binding:"required"`
	Difficulty string `json:"difficulty"`
}

// @Summary List game types
// @Description Returns the catalog categories
// @Tags games
// @Produce json
// @Success 200 {array} object{id=integer,label=string}
// @Router /gametypes [get]
func ListGameTypes(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var gameTypes []models.GameType
		if err := db.Order("id").Find(&gameTypes).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching game types"})
			return
		}

		resp := make([]gin.H, len(gameTypes))
		for i, gt := range gameTypes {
			resp[i] = gin.H{"id": gt.ID, "label": gt.Label}
		}
		c.JSON(http.StatusOK, resp)
	}
}

// @Summary List games
// @Description Returns the game catalog
// @Tags games
// @Produce json
// @Success 200 {array} GameResponse
// @Router /games [get]
func ListGames(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var games []models.Game
		if err := db.Order("id").Find(&games).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching games"})
			return
		}

		resp := make([]GameResponse, len(games))
		for i := range games {
			resp[i] = serializeGame(&games[i])
		}
		c.JSON(http.StatusOK, resp)
	}
}

// @Summary Retrieve a game
// @Description Returns one catalog game
// @Tags games
// @Produce json
// @Param id path int true "Game id"
// @Success 200 {object} GameResponse
// @Failure 404 {object} object{error=string}
// @Router /games/{id} [get]
func GetGame(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid game id"})
			return
		}

		var game models.Game
		if err := db.Where("id = ?", id).First(&game).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Game does not exist."})
			return
		}

		c.JSON(http.StatusOK, serializeGame(&game))
	}
}

// @Summary Add a game to the catalog
// @Description Creates a catalog game. The player range must satisfy min_players <= max_players.
// @Tags games
// @Accept json
// @Produce json
// @Param game body createGameRequest true "Game fields"
// @Success 201 {object} GameResponse
// @Failure 400 {object} object{error=string}
// @Failure 404 {object} object{error=string}
// @Router /games [post]
// @Security ApiKeyAuth
func CreateGame(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req createGameRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Missing or malformed game fields"})
			return
		}

		if req.MinPlayers > req.MaxPlayers || req.MinPlayers < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "min_players must be between 1 and max_players"})
			return
		}

		var gameType models.GameType
		if err := db.Where("id = ?", req.GameTypeID).First(&gameType).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Game type does not exist."})
			return
		}

		game := models.Game{
			Name:       req.Name,
			GameTypeID: gameType.ID,
			MaxPlayers: req.MaxPlayers,
			MinPlayers: req.MinPlayers,
			Difficulty: req.Difficulty,
		}
		if err := db.Create(&game).Error; err != nil {
			logrus.WithError(err).Error("Error creating game")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error creating game"})
			return
		}

		c.JSON(http.StatusCreated, serializeGame(&game))
	}
}
