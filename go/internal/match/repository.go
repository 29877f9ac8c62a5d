// Package match implements match (game) data access and the precondition
// rules guarding match cancellation and result recording.
package match

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/bluey22/tee-time/go/internal/apperrors"
	"github.com/bluey22/tee-time/go/internal/models"
	"github.com/bluey22/tee-time/go/internal/sqlutil"
)

// Repository implements match data access operations
type Repository struct {
	db sqlutil.DBTX
}

// NewRepository creates a new match repository bound to db.
func NewRepository(db sqlutil.DBTX) *Repository {
	return &Repository{db: db}
}

// GetStatus reads the current status of a match at a facility.
func (r *Repository) GetStatus(ctx context.Context, facilityID, matchID int) (models.MatchStatus, error) {
	const query = `SELECT status FROM game WHERE game_id = $1 AND facility_id = $2`
	var status models.MatchStatus
	err := r.db.QueryRow(ctx, query, matchID, facilityID).Scan(&status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", apperrors.E(apperrors.KindNotFound, "match.GetStatus",
				"no match found for facility %d with match ID %d", facilityID, matchID)
		}
		return "", fmt.Errorf("failed to get match status: %w", err)
	}
	return status, nil
}

// Get retrieves a match snapshot by ID.
func (r *Repository) Get(ctx context.Context, matchID int) (*models.Match, error) {
	const query = `
		SELECT game_id, league_id, facility_id, date_time, status, COALESCE(game_type, '')
		FROM game
		WHERE game_id = $1
	`
	var m models.Match
	err := r.db.QueryRow(ctx, query, matchID).Scan(
		&m.ID,
		&m.LeagueID,
		&m.FacilityID,
		&m.DateTime,
		&m.Status,
		&m.GameType,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.E(apperrors.KindNotFound, "match.Get", "match %d not found", matchID)
		}
		return nil, fmt.Errorf("failed to get match: %w", err)
	}
	return &m, nil
}

// CancelScheduled flips a Scheduled match to Cancelled. The status predicate
// makes the write race-safe: a concurrent cancellation shows up as zero rows
// affected instead of a lost update.
func (r *Repository) CancelScheduled(ctx context.Context, facilityID, matchID int) (int64, error) {
	const query = `
		UPDATE game
		SET status = 'Cancelled'
		WHERE facility_id = $1 AND game_id = $2 AND status = 'Scheduled'
	`
	tag, err := r.db.Exec(ctx, query, facilityID, matchID)
	if err != nil {
		return 0, fmt.Errorf("failed to cancel match: %w", err)
	}
	return tag.RowsAffected(), nil
}

// CancelAllScheduled flips every Scheduled match at the facility to Cancelled
// and returns how many were cancelled.
func (r *Repository) CancelAllScheduled(ctx context.Context, facilityID int) (int64, error) {
	const query = `
		UPDATE game
		SET status = 'Cancelled'
		WHERE facility_id = $1 AND status = 'Scheduled'
	`
	tag, err := r.db.Exec(ctx, query, facilityID)
	if err != nil {
		return 0, fmt.Errorf("failed to cancel facility matches: %w", err)
	}
	return tag.RowsAffected(), nil
}

// InsertScore records one team's score for a match.
func (r *Repository) InsertScore(ctx context.Context, matchID, teamID, score int) error {
	const query = `INSERT INTO game_team (game_id, team_id, score) VALUES ($1, $2, $3)`
	if _, err := r.db.Exec(ctx, query, matchID, teamID, score); err != nil {
		return fmt.Errorf("failed to insert score: %w", err)
	}
	return nil
}

// CompleteScheduled flips a Scheduled match to Completed, conditionally on its
// current status, and returns the number of rows affected.
func (r *Repository) CompleteScheduled(ctx context.Context, matchID int) (int64, error) {
	const query = `
		UPDATE game
		SET status = 'Completed'
		WHERE game_id = $1 AND status = 'Scheduled'
	`
	tag, err := r.db.Exec(ctx, query, matchID)
	if err != nil {
		return 0, fmt.Errorf("failed to complete match: %w", err)
	}
	return tag.RowsAffected(), nil
}

// ResultSummary is the verify-read after recording a result: the match row
// joined with its league, facility and both team scores.
func (r *Repository) ResultSummary(ctx context.Context, matchID, team1ID, team2ID int) (*models.MatchResult, error) {
	const query = `
		SELECT g.game_id, g.league_id, g.facility_id, g.date_time, g.status, COALESCE(g.game_type, ''),
		       l.name AS league_name, f.name AS facility_name,
		       t1.team_id, t1.name, gt1.score,
		       t2.team_id, t2.name, gt2.score
		FROM game g
		LEFT JOIN league l ON l.league_id = g.league_id
		JOIN facility f ON f.facility_id = g.facility_id
		JOIN game_team gt1 ON gt1.game_id = g.game_id AND gt1.team_id = $2
		JOIN team t1 ON t1.team_id = gt1.team_id
		JOIN game_team gt2 ON gt2.game_id = g.game_id AND gt2.team_id = $3
		JOIN team t2 ON t2.team_id = gt2.team_id
		WHERE g.game_id = $1
	`
	var res models.MatchResult
	err := r.db.QueryRow(ctx, query, matchID, team1ID, team2ID).Scan(
		&res.Match.ID,
		&res.Match.LeagueID,
		&res.Match.FacilityID,
		&res.Match.DateTime,
		&res.Match.Status,
		&res.Match.GameType,
		&res.LeagueName,
		&res.FacilityName,
		&res.Team1.TeamID,
		&res.Team1.TeamName,
		&res.Team1.Score,
		&res.Team2.TeamID,
		&res.Team2.TeamName,
		&res.Team2.Score,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.E(apperrors.KindNotFound, "match.ResultSummary",
				"match %d result not found", matchID)
		}
		return nil, fmt.Errorf("failed to read match result: %w", err)
	}
	res.Winner = Winner(res.Team1, res.Team2)
	return &res, nil
}
