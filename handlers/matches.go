package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/Ramonpr/pelada-stat/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const dateLayout = "2006-01-02"

// resolveMatch returns the single match for the given YYYY-MM-DD date,
// creating it on first sight. An empty date means today.
func resolveMatch(db *gorm.DB, dateStr string) (models.Match, error) {
	if dateStr == "" {
		dateStr = time.Now().Format(dateLayout)
	} else if _, err := time.Parse(dateLayout, dateStr); err != nil {
		return models.Match{}, err
	}

	var match models.Match
	if err := db.Where(models.Match{Date: dateStr}).FirstOrCreate(&match).Error; err != nil {
		return models.Match{}, err
	}
	return match, nil
}

// formInt reads a counter from the form. Anything that doesn't parse
// (empty field, "abc") counts as 0 instead of failing the submission.
func formInt(c *gin.Context, field string) int {
	n, err := strconv.Atoi(c.PostForm(field))
	if err != nil {
		return 0
	}
	return n
}

func MatchDay(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		match, err := resolveMatch(db, c.Query("date"))
		if err != nil {
			c.String(http.StatusBadRequest, "Invalid date")
			return
		}

		var players []models.Player
		if err := db.Order("name").Find(&players).Error; err != nil {
			c.String(http.StatusInternalServerError, "Database error")
			return
		}

		var goalkeepers, fieldPlayers []models.Player
		for _, p := range players {
			if p.Goalkeeper {
				goalkeepers = append(goalkeepers, p)
			} else {
				fieldPlayers = append(fieldPlayers, p)
			}
		}

		// This day's stats, keyed by player; players with no record yet
		// just fall back to the zero value in the template.
		var stats []models.Statistic
		db.Where("match_id = ?", match.ID).Find(&stats)
		statByPlayer := make(map[uint]models.Statistic, len(stats))
		for _, s := range stats {
			statByPlayer[s.PlayerID] = s
		}

		ranking, err := BuildRanking(db)
		if err != nil {
			c.String(http.StatusInternalServerError, "Database error")
			return
		}

		c.HTML(http.StatusOK, "index.html", gin.H{
			"Title":        "Match day",
			"Match":        match,
			"Goalkeepers":  goalkeepers,
			"FieldPlayers": fieldPlayers,
			"Stats":        statByPlayer,
			"Ranking":      ranking,
		})
	}
}

// SaveMatchDay upserts one Statistic per roster player for the match.
// The form carries every player's counters under a p<id>_ prefix, so a
// save always overwrites the whole day, zeros included.
func SaveMatchDay(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		match, err := resolveMatch(db, c.Query("date"))
		if err != nil {
			c.String(http.StatusBadRequest, "Invalid date")
			return
		}

		var players []models.Player
		if err := db.Find(&players).Error; err != nil {
			c.String(http.StatusInternalServerError, "Database error")
			return
		}

		for _, p := range players {
			prefix := fmt.Sprintf("p%d_", p.ID)

			var stat models.Statistic
			err := db.Where("match_id = ? AND player_id = ?", match.ID, p.ID).First(&stat).Error
			if errors.Is(err, gorm.ErrRecordNotFound) {
				stat = models.Statistic{MatchID: match.ID, PlayerID: p.ID}
			} else if err != nil {
				c.String(http.StatusInternalServerError, "Database error")
				return
			}

			stat.Goals = formInt(c, prefix+"goals")
			stat.Assists = formInt(c, prefix+"assists")
			stat.Wins = formInt(c, prefix+"wins")
			stat.Draws = formInt(c, prefix+"draws")
			stat.CleanSheets = formInt(c, prefix+"clean_sheets")

			if err := db.Save(&stat).Error; err != nil {
				c.String(http.StatusInternalServerError, "Database error")
				return
			}
		}

		c.Redirect(http.StatusSeeOther, "/?date="+match.Date)
	}
}
