package models

import "gorm.io/gorm"

type Player struct {
	gorm.Model
	Name       string `form:"name" json:"name"`
	Goalkeeper bool   `form:"goalkeeper" json:"goalkeeper"`
}

// Match is one pelada day. Date is stored as YYYY-MM-DD; at most one match per date.
type Match struct {
	gorm.Model
	Date string `form:"date" json:"date" gorm:"uniqueIndex"`
}

type Statistic struct {
	gorm.Model
	MatchID  uint `form:"match_id" json:"match_id" gorm:"uniqueIndex:idx_match_player"`
	PlayerID uint `form:"player_id" json:"player_id" gorm:"uniqueIndex:idx_match_player"`

	Goals   int `form:"goals" json:"goals"`
	Assists int `form:"assists" json:"assists"`
	Wins    int `form:"wins" json:"wins"`
	Draws   int `form:"draws" json:"draws"`

	// CleanSheets only means anything for goalkeepers
	CleanSheets int `form:"clean_sheets" json:"clean_sheets"`
}

// Points computes the match points for this record.
//
// Field players: goal, assist and win are worth 2, a draw is worth 1.
// Goalkeepers: clean sheet, win, assist and goal are worth 2 each,
// draws are not counted (intentional asymmetry, kept as the group plays it).
func (s *Statistic) Points(goalkeeper bool) int {
	if goalkeeper {
		return 2 * (s.CleanSheets + s.Wins + s.Assists + s.Goals)
	}
	return 2*s.Goals + 2*s.Assists + 2*s.Wins + s.Draws
}
