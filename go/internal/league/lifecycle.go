// Package league implements league data access, the lifecycle state machine
// governing status transitions, and final-standings aggregation.
package league

import (
	"github.com/bluey22/tee-time/go/internal/apperrors"
	"github.com/bluey22/tee-time/go/internal/models"
)

// transitions maps each league status to the status that follows it.
// Completed has no successor.
var transitions = map[models.LeagueStatus]models.LeagueStatus{
	models.LeagueStatusSettingUp: models.LeagueStatusInSeason,
	models.LeagueStatusInSeason:  models.LeagueStatusPlayoffs,
	models.LeagueStatusPlayoffs:  models.LeagueStatusCompleted,
	models.LeagueStatusPaused:    models.LeagueStatusInSeason,
}

// NextStatus returns the status that follows current. The Setting Up ->
// In Season transition is guarded: every team slot must be filled before the
// season starts. Completed is terminal.
func NextStatus(current models.LeagueStatus, joinedTeams, maxTeams int) (models.LeagueStatus, error) {
	if current == models.LeagueStatusCompleted {
		return "", apperrors.E(apperrors.KindInvalidState, "league.NextStatus",
			"league is already Completed; no further transition")
	}

	next, ok := transitions[current]
	if !ok {
		return "", apperrors.E(apperrors.KindInvalidState, "league.NextStatus",
			"unknown status: %s", current)
	}

	if current == models.LeagueStatusSettingUp && joinedTeams < maxTeams {
		return "", apperrors.E(apperrors.KindInvalidState, "league.NextStatus",
			"cannot move to In Season: %d of %d teams have joined", joinedTeams, maxTeams)
	}

	return next, nil
}
