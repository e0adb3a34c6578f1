package handlers

import (
	"net/http"

	"github.com/Ramonpr/pelada-stat/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func ListPlayers(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var players []models.Player
		if err := db.Order("name").Find(&players).Error; err != nil {
			c.String(http.StatusInternalServerError, "Database error")
			return
		}
		c.HTML(http.StatusOK, "players.html", gin.H{
			"Title":   "Players",
			"Players": players,
		})
	}
}

// CreatePlayer registers a new player from the roster form. An empty
// name is silently ignored; the goalkeeper flag is presence-based
// (unchecked checkboxes don't post a value).
func CreatePlayer(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		name := c.PostForm("name")
		_, goalkeeper := c.GetPostForm("goalkeeper")

		if name != "" {
			player := models.Player{Name: name, Goalkeeper: goalkeeper}
			if err := db.Create(&player).Error; err != nil {
				c.String(http.StatusInternalServerError, "Database error")
				return
			}
		}

		c.Redirect(http.StatusSeeOther, "/players")
	}
}

func GetPlayersJSON(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var players []models.Player
		if err := db.Order("name").Find(&players).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, players)
	}
}

func CreatePlayerJSON(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var player models.Player
		if err := c.ShouldBindJSON(&player); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		if player.Name == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Name is required"})
			return
		}

		if err := db.Create(&player).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusCreated, player)
	}
}
