package models

// Player represents a registered league player
type Player struct {
	ID       int     `json:"player_id"`
	Name     string  `json:"name"`
	Handicap float64 `json:"handicap"`
}
