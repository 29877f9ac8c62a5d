// Package commands implements the transactional command layer: a registry of
// business operations, each executed atomically against the store.
package commands

import "github.com/bluey22/tee-time/go/internal/models"

// Kind identifies a registered command.
type Kind string

const (
	KindJoinTeam              Kind = "JOIN_TEAM"
	KindCancelMembership      Kind = "CANCEL_MEMBERSHIP"
	KindCancelMatch           Kind = "CANCEL_MATCH"
	KindCancelFacilityMatches Kind = "CANCEL_FACILITY_MATCHES"
	KindCreateFacilityLeague  Kind = "CREATE_FACILITY_LEAGUE"
	KindUpdateMatchResult     Kind = "UPDATE_MATCH_RESULT"
	KindUpdateLeagueStatus    Kind = "UPDATE_LEAGUE_STATUS"
)

// JoinTeamParams adds a player to a team.
// JoinDate defaults to today and Position to Member when absent or invalid.
type JoinTeamParams struct {
	PlayerID int
	TeamID   int
	JoinDate string // YYYY-MM-DD, optional
	Position string // "Member" or "Captain", optional
}

// CancelMembershipParams removes a player's membership.
type CancelMembershipParams struct {
	PlayerID     int
	MembershipID int
}

// CancelMatchParams cancels one scheduled match at a facility.
// Reason is caller metadata echoed back in the result; it is not persisted.
type CancelMatchParams struct {
	FacilityID int
	MatchID    int
	Reason     string
}

// CancelFacilityMatchesParams bulk-cancels every scheduled match at a facility.
type CancelFacilityMatchesParams struct {
	FacilityID int
	Reason     string
}

// CreateFacilityLeagueParams creates a league at a facility and registers
// every team based there. StartDate defaults to today when blank or
// unparseable; EndDate is mandatory.
type CreateFacilityLeagueParams struct {
	FacilityID int
	Name       string
	SkillLevel string
	StartDate  string // YYYY-MM-DD, optional
	EndDate    string // YYYY-MM-DD, required
	MaxTeams   int
	Format     string
}

// UpdateMatchResultParams records both teams' scores and completes the match.
type UpdateMatchResultParams struct {
	MatchID    int
	Team1ID    int
	Team1Score int
	Team2ID    int
	Team2Score int
}

// UpdateLeagueStatusParams advances a league to its next lifecycle status.
type UpdateLeagueStatusParams struct {
	LeagueID int
}

// Result carries the affected-entity snapshots and reporting rows a command
// produced. Which fields are set depends on the command kind.
type Result struct {
	Team             *models.Team
	Teams            []models.Team
	Facility         *models.Facility
	Membership       *models.Membership
	Match            *models.Match
	MatchResult      *models.MatchResult
	League           *models.League
	Transition       *models.StatusTransition
	Standings        []models.Standing
	Reason           string
	CancelledMatches int64
}
