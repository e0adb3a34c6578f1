package main

import (
	"log"

	"github.com/gin-gonic/gin"
	moderncSqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/Ramonpr/pelada-stat/config"
	"github.com/Ramonpr/pelada-stat/handlers"
	"github.com/Ramonpr/pelada-stat/models"

	_ "modernc.org/sqlite"
)

func InitDB(path string) *gorm.DB {
	db, err := gorm.Open(moderncSqlite.New(moderncSqlite.Config{
		DSN:        path,
		DriverName: "sqlite",
	}), &gorm.Config{})

	if err != nil {
		log.Fatal("failed to connect database: ", err)
	}

	// Ensure SQLite enforces foreign keys
	db.Exec("PRAGMA foreign_keys = ON;")

	db.AutoMigrate(&models.Player{}, &models.Match{}, &models.Statistic{})

	return db
}

func main() {
	cfg := config.Load()

	db := InitDB(cfg.DatabasePath)

	r := gin.Default()

	// Load HTML templates
	r.LoadHTMLGlob("templates/*")

	// Serve static assets (CSS)
	r.Static("/static", "static")

	// Match day: view and record stats for one date (defaults to today)
	r.GET("/", handlers.MatchDay(db))
	r.POST("/", handlers.SaveMatchDay(db))

	// Roster
	r.GET("/players", handlers.ListPlayers(db))
	r.POST("/players", handlers.CreatePlayer(db))

	// JSON API
	r.GET("/api/players", handlers.GetPlayersJSON(db))
	r.POST("/api/players", handlers.CreatePlayerJSON(db))
	r.GET("/api/ranking", handlers.GetRankingJSON(db))

	r.Run(":" + cfg.Port)
}
