package commands

import (
	"context"

	"github.com/bluey22/tee-time/go/internal/facility"
	"github.com/bluey22/tee-time/go/internal/league"
	"github.com/bluey22/tee-time/go/internal/match"
	"github.com/bluey22/tee-time/go/internal/membership"
	"github.com/bluey22/tee-time/go/internal/models"
	"github.com/bluey22/tee-time/go/internal/sqlutil"
)

// MembershipStore defines what the executor needs from the membership repository
type MembershipStore interface {
	PlayerExists(ctx context.Context, playerID int) (bool, error)
	TeamWithFacility(ctx context.Context, teamID int) (*models.Team, error)
	Insert(ctx context.Context, m models.Membership) (int, error)
	FacilityForMembership(ctx context.Context, playerID, membershipID int) (*models.Facility, error)
	Delete(ctx context.Context, playerID, membershipID int) (int64, error)
}

// MatchStore defines what the executor needs from the match repository
type MatchStore interface {
	GetStatus(ctx context.Context, facilityID, matchID int) (models.MatchStatus, error)
	Get(ctx context.Context, matchID int) (*models.Match, error)
	CancelScheduled(ctx context.Context, facilityID, matchID int) (int64, error)
	CancelAllScheduled(ctx context.Context, facilityID int) (int64, error)
	InsertScore(ctx context.Context, matchID, teamID, score int) error
	CompleteScheduled(ctx context.Context, matchID int) (int64, error)
	ResultSummary(ctx context.Context, matchID, team1ID, team2ID int) (*models.MatchResult, error)
}

// LeagueStore defines what the executor needs from the league repository
type LeagueStore interface {
	Get(ctx context.Context, id int) (*models.League, error)
	CountTeams(ctx context.Context, leagueID int) (int, error)
	SetStatus(ctx context.Context, leagueID int, status models.LeagueStatus) error
	Create(ctx context.Context, req league.CreateLeagueRequest) (int, error)
	RegisterFacilityTeams(ctx context.Context, leagueID, facilityID int) ([]models.Team, error)
	TeamTotals(ctx context.Context, leagueID int) ([]models.Standing, error)
}

// FacilityStore defines what the executor needs from the facility repository
type FacilityStore interface {
	Get(ctx context.Context, id int) (*models.Facility, error)
}

// Stores bundles the repositories a command runs against, all bound to the
// same transaction.
type Stores struct {
	Memberships MembershipStore
	Matches     MatchStore
	Leagues     LeagueStore
	Facilities  FacilityStore
}

// StoreFactory binds repositories to a transaction.
type StoreFactory func(tx sqlutil.DBTX) Stores

// NewStoreFactory returns the production factory over the real repositories.
func NewStoreFactory() StoreFactory {
	return func(tx sqlutil.DBTX) Stores {
		return Stores{
			Memberships: membership.NewRepository(tx),
			Matches:     match.NewRepository(tx),
			Leagues:     league.NewRepository(tx),
			Facilities:  facility.NewRepository(tx),
		}
	}
}
