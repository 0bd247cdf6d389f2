package routes

import (
	"LevelUp/controllers"
	"LevelUp/middleware"
	"LevelUp/services/redis"
	"LevelUp/services/socket_io"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// SetupRoutes configures all API routes
func SetupRoutes(router *gin.Engine, db *gorm.DB, redisClient *redis.RedisClient, sio *socket_io.EventGateway) {
	// Swagger route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := router.Group("/")

	api.GET("/ping", controllers.Ping)

	api.POST("/signup", controllers.SignUp(db))
	api.POST("/login", controllers.Login(db))

	// Game catalog is public to browse, authenticated to extend
	api.GET("/gametypes", controllers.ListGameTypes(db))
	api.GET("/games", controllers.ListGames(db))
	api.GET("/games/:id", controllers.GetGame(db))
	api.POST("/games", middleware.AuthRequired, controllers.CreateGame(db))

	authentication := api.Group("/auth")
	authentication.Use(middleware.AuthRequired)
	{
		authentication.DELETE("/logout", controllers.Logout)
		authentication.GET("/me", controllers.Me(db))
	}

	events := api.Group("/events")
	events.Use(middleware.AuthRequired)
	{
		events.POST("", controllers.CreateEvent(db))
		events.GET("", controllers.ListEvents(db))
		events.GET("/:id", controllers.GetEvent(db))
		events.PUT("/:id", controllers.UpdateEvent(db))
		events.DELETE("/:id", controllers.DeleteEvent(db, redisClient, sio))

		events.POST("/:id/signup", controllers.EventSignup(db, redisClient, sio))
		events.DELETE("/:id/signup", controllers.EventCancel(db, redisClient, sio))
	}

	reports := api.Group("/reports")
	reports.Use(middleware.AuthRequired)
	{
		reports.GET("/userevents", controllers.UserEventsReport(db, redisClient))
	}
}
