package match

import (
	"github.com/bluey22/tee-time/go/internal/apperrors"
	"github.com/bluey22/tee-time/go/internal/models"
)

// CheckCancellable validates that a match in the given status may be
// cancelled. Completed results are immutable; only a Scheduled match may
// transition to Cancelled.
func CheckCancellable(matchID int, status models.MatchStatus) error {
	switch status {
	case models.MatchStatusScheduled:
		return nil
	case models.MatchStatusCompleted:
		return apperrors.E(apperrors.KindInvalidState, "match.CheckCancellable",
			"cannot cancel: match %d has already been completed", matchID)
	case models.MatchStatusCancelled:
		return apperrors.E(apperrors.KindInvalidState, "match.CheckCancellable",
			"match %d is already cancelled", matchID)
	default:
		return apperrors.E(apperrors.KindInvalidState, "match.CheckCancellable",
			"match %d has unknown status %q", matchID, status)
	}
}

// CheckRecordable validates that a result may be recorded for a match in the
// given status.
func CheckRecordable(matchID int, status models.MatchStatus) error {
	if status != models.MatchStatusScheduled {
		return apperrors.E(apperrors.KindInvalidState, "match.CheckRecordable",
			"match %d is %s, results can only be recorded for a Scheduled match", matchID, status)
	}
	return nil
}

// Winner names the team with the strictly higher score, or "Tie" when equal.
func Winner(team1, team2 models.TeamScore) string {
	switch {
	case team1.Score > team2.Score:
		return team1.TeamName
	case team2.Score > team1.Score:
		return team2.TeamName
	default:
		return "Tie"
	}
}
