package models

import "time"

// Position represents the role a player holds on a team
type Position string

const (
	PositionMember  Position = "Member"
	PositionCaptain Position = "Captain"
)

// NormalizePosition maps unknown or empty position values to Member.
func NormalizePosition(p string) Position {
	if Position(p) == PositionCaptain {
		return PositionCaptain
	}
	return PositionMember
}

// Membership links a player to a team
type Membership struct {
	ID       int       `json:"membership_id"`
	PlayerID int       `json:"player_id"`
	TeamID   int       `json:"team_id"`
	JoinDate time.Time `json:"join_date"`
	Position Position  `json:"position"`
}
