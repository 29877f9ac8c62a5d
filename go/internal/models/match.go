package models

import "time"

// MatchStatus represents the lifecycle status of a match
type MatchStatus string

const (
	MatchStatusScheduled MatchStatus = "Scheduled"
	MatchStatusCancelled MatchStatus = "Cancelled"
	MatchStatusCompleted MatchStatus = "Completed"
)

// Match represents a game scheduled at a facility, optionally within a league
type Match struct {
	ID         int         `json:"game_id"`
	LeagueID   *int        `json:"league_id,omitempty"`
	FacilityID int         `json:"facility_id"`
	DateTime   time.Time   `json:"date_time"`
	Status     MatchStatus `json:"status"`
	GameType   string      `json:"game_type"`
}

// TeamScore is one team's recorded score in a completed match
type TeamScore struct {
	TeamID   int    `json:"team_id"`
	TeamName string `json:"team_name"`
	Score    int    `json:"score"`
}

// MatchResult is the verify-read snapshot returned after recording a result
type MatchResult struct {
	Match        Match     `json:"match"`
	LeagueName   *string   `json:"league_name,omitempty"`
	FacilityName string    `json:"facility_name"`
	Team1        TeamScore `json:"team1"`
	Team2        TeamScore `json:"team2"`
	Winner       string    `json:"winner"`
}
