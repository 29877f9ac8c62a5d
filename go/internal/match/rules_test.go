package match

import (
	"testing"

	"github.com/bluey22/tee-time/go/internal/apperrors"
	"github.com/bluey22/tee-time/go/internal/models"
)

func TestCheckCancellable(t *testing.T) {
	tests := []struct {
		name     string
		status   models.MatchStatus
		wantKind apperrors.Kind
	}{
		{name: "scheduled match is cancellable", status: models.MatchStatusScheduled},
		{name: "completed match is immutable", status: models.MatchStatusCompleted, wantKind: apperrors.KindInvalidState},
		{name: "already cancelled match is rejected", status: models.MatchStatusCancelled, wantKind: apperrors.KindInvalidState},
		{name: "unknown status is rejected", status: models.MatchStatus("Delayed"), wantKind: apperrors.KindInvalidState},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckCancellable(42, tt.status)
			if tt.wantKind == "" {
				if err != nil {
					t.Fatalf("expected no error, got %v", err)
				}
				return
			}
			if !apperrors.IsKind(err, tt.wantKind) {
				t.Fatalf("expected kind %s, got %v", tt.wantKind, err)
			}
		})
	}
}

func TestCheckRecordable(t *testing.T) {
	if err := CheckRecordable(7, models.MatchStatusScheduled); err != nil {
		t.Fatalf("scheduled match should accept results: %v", err)
	}
	for _, status := range []models.MatchStatus{models.MatchStatusCancelled, models.MatchStatusCompleted} {
		if err := CheckRecordable(7, status); !apperrors.IsKind(err, apperrors.KindInvalidState) {
			t.Fatalf("status %s: expected InvalidState, got %v", status, err)
		}
	}
}

func TestWinner(t *testing.T) {
	tests := []struct {
		name   string
		team1  models.TeamScore
		team2  models.TeamScore
		winner string
	}{
		{
			name:   "higher first score",
			team1:  models.TeamScore{TeamName: "Drive Dynasty", Score: 5},
			team2:  models.TeamScore{TeamName: "Fairway Five", Score: 3},
			winner: "Drive Dynasty",
		},
		{
			name:   "higher second score",
			team1:  models.TeamScore{TeamName: "Drive Dynasty", Score: 2},
			team2:  models.TeamScore{TeamName: "Fairway Five", Score: 3},
			winner: "Fairway Five",
		},
		{
			name:   "equal scores tie",
			team1:  models.TeamScore{TeamName: "Drive Dynasty", Score: 4},
			team2:  models.TeamScore{TeamName: "Fairway Five", Score: 4},
			winner: "Tie",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Winner(tt.team1, tt.team2); got != tt.winner {
				t.Fatalf("expected winner %q, got %q", tt.winner, got)
			}
		})
	}
}
