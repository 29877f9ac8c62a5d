// Package membership implements player/team membership data access: the
// join-team insert and the cancel-membership delete plus their lookups.
package membership

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/bluey22/tee-time/go/internal/apperrors"
	"github.com/bluey22/tee-time/go/internal/models"
	"github.com/bluey22/tee-time/go/internal/sqlutil"
)

// pgUniqueViolation is the Postgres error code for a unique constraint breach.
const pgUniqueViolation = "23505"

// Repository implements membership data access operations
type Repository struct {
	db sqlutil.DBTX
}

// NewRepository creates a new membership repository bound to db.
func NewRepository(db sqlutil.DBTX) *Repository {
	return &Repository{db: db}
}

// PlayerExists reports whether the player row exists.
func (r *Repository) PlayerExists(ctx context.Context, playerID int) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM player WHERE player_id = $1)`
	var exists bool
	if err := r.db.QueryRow(ctx, query, playerID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check player: %w", err)
	}
	return exists, nil
}

// TeamWithFacility retrieves a team snapshot joined with its home facility name.
func (r *Repository) TeamWithFacility(ctx context.Context, teamID int) (*models.Team, error) {
	const query = `
		SELECT t.team_id, t.name, t.creation_date, t.home_facility_id, f.name AS facility_name
		FROM team t
		JOIN facility f ON f.facility_id = t.home_facility_id
		WHERE t.team_id = $1
	`
	var t models.Team
	err := r.db.QueryRow(ctx, query, teamID).Scan(
		&t.ID,
		&t.Name,
		&t.CreationDate,
		&t.HomeFacilityID,
		&t.FacilityName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.E(apperrors.KindNotFound, "membership.TeamWithFacility", "team %d not found", teamID)
		}
		return nil, fmt.Errorf("failed to get team: %w", err)
	}
	return &t, nil
}

// Insert creates a membership row and returns its generated ID.
// A duplicate (player, team) pair surfaces as a DatabaseError.
func (r *Repository) Insert(ctx context.Context, m models.Membership) (int, error) {
	const query = `
		INSERT INTO membership (player_id, team_id, join_date, position)
		VALUES ($1, $2, $3, $4)
		RETURNING membership_id
	`
	var id int
	err := r.db.QueryRow(ctx, query, m.PlayerID, m.TeamID, m.JoinDate, m.Position).Scan(&id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return 0, apperrors.Wrap(apperrors.KindDatabaseError, "membership.Insert",
				fmt.Sprintf("player %d already belongs to team %d", m.PlayerID, m.TeamID), err)
		}
		return 0, fmt.Errorf("failed to insert membership: %w", err)
	}
	return id, nil
}

// FacilityForMembership retrieves the home facility of the team the membership
// belongs to, scoped to the owning player.
func (r *Repository) FacilityForMembership(ctx context.Context, playerID, membershipID int) (*models.Facility, error) {
	const query = `
		SELECT f.facility_id, f.name,
		       COALESCE(f.address, ''), COALESCE(f.city, ''), COALESCE(f.state, ''), COALESCE(f.zip, ''),
		       f.phone, f.website
		FROM membership m
		JOIN team t ON t.team_id = m.team_id
		JOIN facility f ON f.facility_id = t.home_facility_id
		WHERE m.membership_id = $1 AND m.player_id = $2
	`
	var f models.Facility
	err := r.db.QueryRow(ctx, query, membershipID, playerID).Scan(
		&f.ID,
		&f.Name,
		&f.Address,
		&f.City,
		&f.State,
		&f.Zip,
		&f.Phone,
		&f.Website,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.E(apperrors.KindNotFound, "membership.FacilityForMembership",
				"membership %d for player %d not found", membershipID, playerID)
		}
		return nil, fmt.Errorf("failed to get membership facility: %w", err)
	}
	return &f, nil
}

// Delete removes the membership row and returns the number of rows affected.
func (r *Repository) Delete(ctx context.Context, playerID, membershipID int) (int64, error) {
	const query = `DELETE FROM membership WHERE membership_id = $1 AND player_id = $2`
	tag, err := r.db.Exec(ctx, query, membershipID, playerID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete membership: %w", err)
	}
	return tag.RowsAffected(), nil
}
