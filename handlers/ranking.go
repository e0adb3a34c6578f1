package handlers

import (
	"net/http"
	"sort"

	"github.com/Ramonpr/pelada-stat/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// RankingEntry is one player's totals across every recorded match.
type RankingEntry struct {
	Player      models.Player `json:"player"`
	Goals       int           `json:"goals"`
	Assists     int           `json:"assists"`
	Wins        int           `json:"wins"`
	Draws       int           `json:"draws"`
	CleanSheets int           `json:"clean_sheets"`
	Points      int           `json:"points"`
}

// BuildRanking folds all statistics into per-player totals, sorted by
// points descending. Ties keep name order (players are loaded sorted).
func BuildRanking(db *gorm.DB) ([]RankingEntry, error) {
	var players []models.Player
	if err := db.Order("name").Find(&players).Error; err != nil {
		return nil, err
	}

	entries := make([]RankingEntry, 0, len(players))
	for _, p := range players {
		var stats []models.Statistic
		if err := db.Where("player_id = ?", p.ID).Find(&stats).Error; err != nil {
			return nil, err
		}

		entry := RankingEntry{Player: p}
		for i := range stats {
			s := &stats[i]
			entry.Goals += s.Goals
			entry.Assists += s.Assists
			entry.Wins += s.Wins
			entry.Draws += s.Draws
			entry.CleanSheets += s.CleanSheets
			entry.Points += s.Points(p.Goalkeeper)
		}
		entries = append(entries, entry)
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Points > entries[j].Points
	})
	return entries, nil
}

func GetRankingJSON(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		ranking, err := BuildRanking(db)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, ranking)
	}
}
