package commands

import (
	"context"
	"time"

	"github.com/bluey22/tee-time/go/internal/apperrors"
	"github.com/bluey22/tee-time/go/internal/league"
	"github.com/bluey22/tee-time/go/internal/match"
	"github.com/bluey22/tee-time/go/internal/models"
)

// joinTeam adds a player to a team and returns the team snapshot.
func (e *Executor) joinTeam(ctx context.Context, st Stores, params any) (*Result, error) {
	p, err := paramsAs[JoinTeamParams]("commands.JoinTeam", params)
	if err != nil {
		return nil, err
	}

	exists, err := st.Memberships.PlayerExists(ctx, p.PlayerID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperrors.E(apperrors.KindNotFound, "commands.JoinTeam", "player %d not found", p.PlayerID)
	}

	team, err := st.Memberships.TeamWithFacility(ctx, p.TeamID)
	if err != nil {
		return nil, err
	}

	m := models.Membership{
		PlayerID: p.PlayerID,
		TeamID:   p.TeamID,
		JoinDate: parseDateOrDefault(p.JoinDate, e.clock.Now()),
		Position: models.NormalizePosition(p.Position),
	}
	m.ID, err = st.Memberships.Insert(ctx, m)
	if err != nil {
		return nil, err
	}

	return &Result{Team: team, Membership: &m}, nil
}

// cancelMembership removes a membership and returns the home facility of the
// team it belonged to.
func (e *Executor) cancelMembership(ctx context.Context, st Stores, params any) (*Result, error) {
	p, err := paramsAs[CancelMembershipParams]("commands.CancelMembership", params)
	if err != nil {
		return nil, err
	}

	fac, err := st.Memberships.FacilityForMembership(ctx, p.PlayerID, p.MembershipID)
	if err != nil {
		return nil, err
	}

	affected, err := st.Memberships.Delete(ctx, p.PlayerID, p.MembershipID)
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, apperrors.E(apperrors.KindNoOp, "commands.CancelMembership",
			"membership %d was already removed", p.MembershipID)
	}

	return &Result{Facility: fac}, nil
}

// cancelMatch cancels one scheduled match after checking its current status.
func (e *Executor) cancelMatch(ctx context.Context, st Stores, params any) (*Result, error) {
	p, err := paramsAs[CancelMatchParams]("commands.CancelMatch", params)
	if err != nil {
		return nil, err
	}

	status, err := st.Matches.GetStatus(ctx, p.FacilityID, p.MatchID)
	if err != nil {
		return nil, err
	}
	if err := match.CheckCancellable(p.MatchID, status); err != nil {
		return nil, err
	}

	affected, err := st.Matches.CancelScheduled(ctx, p.FacilityID, p.MatchID)
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		// status was Scheduled a moment ago; a racing cancellation got there first
		return nil, apperrors.E(apperrors.KindNoOp, "commands.CancelMatch",
			"no scheduled match to cancel (status=%s)", status)
	}

	cancelled, err := st.Matches.Get(ctx, p.MatchID)
	if err != nil {
		return nil, err
	}

	return &Result{Match: cancelled, Reason: p.Reason}, nil
}

// cancelFacilityMatches bulk-cancels every scheduled match at a facility.
func (e *Executor) cancelFacilityMatches(ctx context.Context, st Stores, params any) (*Result, error) {
	p, err := paramsAs[CancelFacilityMatchesParams]("commands.CancelFacilityMatches", params)
	if err != nil {
		return nil, err
	}

	fac, err := st.Facilities.Get(ctx, p.FacilityID)
	if err != nil {
		return nil, err
	}

	affected, err := st.Matches.CancelAllScheduled(ctx, p.FacilityID)
	if err != nil {
		return nil, err
	}

	return &Result{Facility: fac, Reason: p.Reason, CancelledMatches: affected}, nil
}

// createFacilityLeague creates a league at a facility and registers every
// team based there.
func (e *Executor) createFacilityLeague(ctx context.Context, st Stores, params any) (*Result, error) {
	p, err := paramsAs[CreateFacilityLeagueParams]("commands.CreateFacilityLeague", params)
	if err != nil {
		return nil, err
	}

	if p.Name == "" {
		return nil, apperrors.E(apperrors.KindInvalidInput, "commands.CreateFacilityLeague", "league name is required")
	}
	if p.MaxTeams <= 0 {
		return nil, apperrors.E(apperrors.KindInvalidInput, "commands.CreateFacilityLeague",
			"max teams must be positive, got %d", p.MaxTeams)
	}
	endDate, err := time.Parse(dateLayout, p.EndDate)
	if err != nil {
		return nil, apperrors.E(apperrors.KindInvalidInput, "commands.CreateFacilityLeague",
			"end date %q is not a valid YYYY-MM-DD date", p.EndDate)
	}

	fac, err := st.Facilities.Get(ctx, p.FacilityID)
	if err != nil {
		return nil, err
	}

	leagueID, err := st.Leagues.Create(ctx, league.CreateLeagueRequest{
		Name:       p.Name,
		City:       fac.City,
		State:      fac.State,
		Zip:        fac.Zip,
		SkillLevel: p.SkillLevel,
		StartDate:  parseDateOrDefault(p.StartDate, e.clock.Now()),
		EndDate:    endDate,
		MaxTeams:   p.MaxTeams,
		Format:     models.LeagueFormat(p.Format),
	})
	if err != nil {
		return nil, err
	}

	teams, err := st.Leagues.RegisterFacilityTeams(ctx, leagueID, p.FacilityID)
	if err != nil {
		return nil, err
	}

	created, err := st.Leagues.Get(ctx, leagueID)
	if err != nil {
		return nil, err
	}

	return &Result{League: created, Teams: teams}, nil
}

// updateMatchResult records both scores and completes the match.
func (e *Executor) updateMatchResult(ctx context.Context, st Stores, params any) (*Result, error) {
	p, err := paramsAs[UpdateMatchResultParams]("commands.UpdateMatchResult", params)
	if err != nil {
		return nil, err
	}
	if p.Team1ID == p.Team2ID {
		return nil, apperrors.E(apperrors.KindInvalidInput, "commands.UpdateMatchResult",
			"a match needs two distinct teams, got %d twice", p.Team1ID)
	}

	m, err := st.Matches.Get(ctx, p.MatchID)
	if err != nil {
		return nil, err
	}
	if err := match.CheckRecordable(p.MatchID, m.Status); err != nil {
		return nil, err
	}

	if err := st.Matches.InsertScore(ctx, p.MatchID, p.Team1ID, p.Team1Score); err != nil {
		return nil, err
	}
	if err := st.Matches.InsertScore(ctx, p.MatchID, p.Team2ID, p.Team2Score); err != nil {
		return nil, err
	}

	affected, err := st.Matches.CompleteScheduled(ctx, p.MatchID)
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, apperrors.E(apperrors.KindNoOp, "commands.UpdateMatchResult",
			"match %d was no longer Scheduled when completing it", p.MatchID)
	}

	summary, err := st.Matches.ResultSummary(ctx, p.MatchID, p.Team1ID, p.Team2ID)
	if err != nil {
		return nil, err
	}

	return &Result{MatchResult: summary}, nil
}

// updateLeagueStatus advances a league through its lifecycle, computing final
// standings when it completes.
func (e *Executor) updateLeagueStatus(ctx context.Context, st Stores, params any) (*Result, error) {
	p, err := paramsAs[UpdateLeagueStatusParams]("commands.UpdateLeagueStatus", params)
	if err != nil {
		return nil, err
	}

	current, err := st.Leagues.Get(ctx, p.LeagueID)
	if err != nil {
		return nil, err
	}

	joined := 0
	if current.Status == models.LeagueStatusSettingUp {
		joined, err = st.Leagues.CountTeams(ctx, p.LeagueID)
		if err != nil {
			return nil, err
		}
	}

	next, err := league.NextStatus(current.Status, joined, current.MaxTeams)
	if err != nil {
		return nil, err
	}

	if err := st.Leagues.SetStatus(ctx, p.LeagueID, next); err != nil {
		return nil, err
	}

	updated, err := st.Leagues.Get(ctx, p.LeagueID)
	if err != nil {
		return nil, err
	}

	res := &Result{
		League:     updated,
		Transition: &models.StatusTransition{From: current.Status, To: next},
	}

	if next == models.LeagueStatusCompleted {
		standings, err := st.Leagues.TeamTotals(ctx, p.LeagueID)
		if err != nil {
			return nil, err
		}
		league.SortStandings(standings)
		res.Standings = standings
	}

	return res, nil
}
