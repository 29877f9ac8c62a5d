package league

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/bluey22/tee-time/go/internal/apperrors"
	"github.com/bluey22/tee-time/go/internal/models"
	"github.com/bluey22/tee-time/go/internal/sqlutil"
)

// Repository implements league data access operations
type Repository struct {
	db sqlutil.DBTX
}

// NewRepository creates a new league repository bound to db.
func NewRepository(db sqlutil.DBTX) *Repository {
	return &Repository{db: db}
}

// Get retrieves a league by ID.
func (r *Repository) Get(ctx context.Context, id int) (*models.League, error) {
	const query = `
		SELECT league_id, name,
		       COALESCE(city, ''), COALESCE(state, ''), COALESCE(zip, ''), COALESCE(skill_level, ''),
		       status, start_date, end_date, max_teams, COALESCE(format, '')
		FROM league
		WHERE league_id = $1
	`
	var l models.League
	err := r.db.QueryRow(ctx, query, id).Scan(
		&l.ID,
		&l.Name,
		&l.City,
		&l.State,
		&l.Zip,
		&l.SkillLevel,
		&l.Status,
		&l.StartDate,
		&l.EndDate,
		&l.MaxTeams,
		&l.Format,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.E(apperrors.KindNotFound, "league.Get", "league %d not found", id)
		}
		return nil, fmt.Errorf("failed to get league: %w", err)
	}
	return &l, nil
}

// CountTeams returns how many teams have registered to the league.
func (r *Repository) CountTeams(ctx context.Context, leagueID int) (int, error) {
	const query = `SELECT COUNT(*) FROM league_team WHERE league_id = $1`
	var count int
	if err := r.db.QueryRow(ctx, query, leagueID).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count league teams: %w", err)
	}
	return count, nil
}

// SetStatus updates only the status of a league.
func (r *Repository) SetStatus(ctx context.Context, leagueID int, status models.LeagueStatus) error {
	const query = `UPDATE league SET status = $1 WHERE league_id = $2`
	if _, err := r.db.Exec(ctx, query, status, leagueID); err != nil {
		return fmt.Errorf("failed to update league status: %w", err)
	}
	return nil
}

// CreateLeagueRequest represents the data needed to create a new league
type CreateLeagueRequest struct {
	Name       string
	City       string
	State      string
	Zip        string
	SkillLevel string
	StartDate  time.Time
	EndDate    time.Time
	MaxTeams   int
	Format     models.LeagueFormat
}

// Create inserts a new league in Setting Up status and returns its ID.
func (r *Repository) Create(ctx context.Context, req CreateLeagueRequest) (int, error) {
	const query = `
		INSERT INTO league (name, city, state, zip, skill_level, status, start_date, end_date, max_teams, format)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING league_id
	`
	var id int
	err := r.db.QueryRow(ctx, query,
		req.Name,
		req.City,
		req.State,
		req.Zip,
		req.SkillLevel,
		models.LeagueStatusSettingUp,
		req.StartDate,
		req.EndDate,
		req.MaxTeams,
		req.Format,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to create league: %w", err)
	}
	return id, nil
}

// RegisterFacilityTeams bulk-registers every team whose home facility matches
// facilityID and returns the registered team snapshots.
func (r *Repository) RegisterFacilityTeams(ctx context.Context, leagueID, facilityID int) ([]models.Team, error) {
	const insert = `
		INSERT INTO league_team (league_id, team_id)
		SELECT $1, t.team_id FROM team t WHERE t.home_facility_id = $2
	`
	if _, err := r.db.Exec(ctx, insert, leagueID, facilityID); err != nil {
		return nil, fmt.Errorf("failed to register facility teams: %w", err)
	}

	const query = `
		SELECT t.team_id, t.name, t.creation_date, t.home_facility_id, f.name AS facility_name
		FROM league_team lt
		JOIN team t ON t.team_id = lt.team_id
		JOIN facility f ON f.facility_id = t.home_facility_id
		WHERE lt.league_id = $1
		ORDER BY t.team_id
	`
	rows, err := r.db.Query(ctx, query, leagueID)
	if err != nil {
		return nil, fmt.Errorf("failed to list registered teams: %w", err)
	}
	defer rows.Close()

	var teams []models.Team
	for rows.Next() {
		var t models.Team
		if err := rows.Scan(&t.ID, &t.Name, &t.CreationDate, &t.HomeFacilityID, &t.FacilityName); err != nil {
			return nil, fmt.Errorf("failed to scan registered team: %w", err)
		}
		teams = append(teams, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list registered teams: %w", err)
	}
	return teams, nil
}

// TeamTotals sums each registered team's scores across the league's Completed
// matches. Teams with no completed matches total 0 via the outer join.
// Rows come back unordered; callers rank them with SortStandings.
func (r *Repository) TeamTotals(ctx context.Context, leagueID int) ([]models.Standing, error) {
	const query = `
		SELECT t.team_id, t.name AS team_name, COALESCE(SUM(gt.score), 0) AS total_score
		FROM league_team lt
		JOIN team t ON lt.team_id = t.team_id
		LEFT JOIN game_team gt
		  ON gt.team_id = t.team_id
		 AND gt.game_id IN (
		     SELECT game_id FROM game
		     WHERE league_id = $1 AND status = 'Completed'
		 )
		WHERE lt.league_id = $1
		GROUP BY t.team_id, t.name
	`
	rows, err := r.db.Query(ctx, query, leagueID)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate standings: %w", err)
	}
	defer rows.Close()

	var standings []models.Standing
	for rows.Next() {
		var s models.Standing
		if err := rows.Scan(&s.TeamID, &s.TeamName, &s.TotalScore); err != nil {
			return nil, fmt.Errorf("failed to scan standing: %w", err)
		}
		standings = append(standings, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to aggregate standings: %w", err)
	}
	return standings, nil
}
