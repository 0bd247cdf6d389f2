package main

import (
	"LevelUp/config"
	pgconfig "LevelUp/config/postgres"
	_ "LevelUp/config/swagger"
	"LevelUp/middleware"
	"LevelUp/routes"
	"LevelUp/services/redis"
	"LevelUp/services/socket_io"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/sirupsen/logrus"
)

// @title LevelUp API
// @version 1.0
// @description Gin-Gonic server for the "LevelUp" event-management API
// @BasePath /
func main() {
	godotenv.Load()
	logrus.Info("Setting up server...")

	if os.Getenv("PROD") == "true" {
		gin.SetMode(gin.ReleaseMode)
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}

	gormDB, err := pgconfig.ConnectGORM()
	if err != nil {
		logrus.WithError(err).Fatal("Error connecting to PostgreSQL")
	}

	// Only migrate in development or during deployment
	if os.Getenv("MIGRATE_POSTGRES") == "true" {
		if err := pgconfig.MigrateDatabase(gormDB); err != nil {
			logrus.WithError(err).Warn("Database migration failed")
		}
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		logrus.WithError(err).Fatal("Error reading GORM PostgreSQL instance")
	}
	defer sqlDB.Close()

	redisClient, err := config.Connect_redis()
	if err != nil {
		logrus.WithError(err).Fatal("Error connecting to Redis")
	}
	defer redis.CloseRedis(redisClient)

	r := gin.Default()

	middleware.SetUpMiddleware(r)

	sio := socket_io.NewEventGateway()
	sio.Start(r, gormDB)

	routes.SetupRoutes(r, gormDB, redisClient, sio)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	if os.Getenv("USE_HTTPS") == "true" {
		certFile := os.Getenv("CERT_FILE")
		keyFile := os.Getenv("KEY_FILE")
		if err := r.RunTLS(":"+port, certFile, keyFile); err != nil {
			logrus.WithError(err).Fatal("Error starting server")
		}
	} else {
		if err := r.Run(":" + port); err != nil {
			logrus.WithError(err).Fatal("Error starting server")
		}
	}
}
