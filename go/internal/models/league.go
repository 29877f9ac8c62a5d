package models

import "time"

// LeagueStatus represents the lifecycle status of a league
type LeagueStatus string

const (
	LeagueStatusSettingUp LeagueStatus = "Setting Up"
	LeagueStatusInSeason  LeagueStatus = "In Season"
	LeagueStatusPlayoffs  LeagueStatus = "Playoffs"
	LeagueStatusPaused    LeagueStatus = "Paused"
	LeagueStatusCompleted LeagueStatus = "Completed"
)

// LeagueFormat represents how league play is structured
type LeagueFormat string

const (
	LeagueFormatRoundRobin  LeagueFormat = "Round Robin"
	LeagueFormatElimination LeagueFormat = "Elimination"
	LeagueFormatRRE         LeagueFormat = "RR-E"
)

// League represents a league hosted at a facility
type League struct {
	ID         int          `json:"league_id"`
	Name       string       `json:"name"`
	City       string       `json:"city"`
	State      string       `json:"state"`
	Zip        string       `json:"zip"`
	SkillLevel string       `json:"skill_level"`
	Status     LeagueStatus `json:"status"`
	StartDate  time.Time    `json:"start_date"`
	EndDate    time.Time    `json:"end_date"`
	MaxTeams   int          `json:"max_teams"`
	Format     LeagueFormat `json:"format"`
}

// StatusTransition records a league status change applied by a command
type StatusTransition struct {
	From LeagueStatus `json:"from"`
	To   LeagueStatus `json:"to"`
}

// Standing is one row of a league's final standings
type Standing struct {
	TeamID     int    `json:"team_id"`
	TeamName   string `json:"team_name"`
	TotalScore int    `json:"total_score"`
}
