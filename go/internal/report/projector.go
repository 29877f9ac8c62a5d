// Package report shapes command results into caller-facing sections of
// labeled fields and tables. Presentation only; no business logic lives here.
package report

import (
	"fmt"
	"strconv"

	"github.com/bluey22/tee-time/go/internal/commands"
	"github.com/bluey22/tee-time/go/internal/models"
)

const (
	dateLayout     = "2006-01-02"
	dateTimeLayout = "2006-01-02 15:04"
)

// Field is one labeled value in a report section.
type Field struct {
	Label string
	Value string
}

// Table is a columnar block of report rows.
type Table struct {
	Columns []string
	Rows    [][]string
}

// Section is one titled block of a command report.
type Section struct {
	Title  string
	Fields []Field
	Table  *Table
}

// Project maps a command result into its report sections.
func Project(kind commands.Kind, res *commands.Result) []Section {
	if res == nil {
		return nil
	}
	switch kind {
	case commands.KindJoinTeam:
		return projectJoinTeam(res)
	case commands.KindCancelMembership:
		return []Section{facilitySection(res.Facility)}
	case commands.KindCancelMatch:
		return projectCancelMatch(res)
	case commands.KindCancelFacilityMatches:
		return projectCancelFacilityMatches(res)
	case commands.KindCreateFacilityLeague:
		return projectCreateLeague(res)
	case commands.KindUpdateMatchResult:
		return projectMatchResult(res)
	case commands.KindUpdateLeagueStatus:
		return projectLeagueStatus(res)
	default:
		return nil
	}
}

func projectJoinTeam(res *commands.Result) []Section {
	s := Section{
		Title: "Team Details",
		Fields: []Field{
			{"Team ID", strconv.Itoa(res.Team.ID)},
			{"Team Name", res.Team.Name},
			{"Creation Date", res.Team.CreationDate.Format(dateLayout)},
			{"Home Facility ID", strconv.Itoa(res.Team.HomeFacilityID)},
			{"Facility Name", res.Team.FacilityName},
		},
	}
	if res.Membership != nil {
		s.Fields = append(s.Fields,
			Field{"Membership ID", strconv.Itoa(res.Membership.ID)},
			Field{"Join Date", res.Membership.JoinDate.Format(dateLayout)},
			Field{"Position", string(res.Membership.Position)},
		)
	}
	return []Section{s}
}

func projectCancelMatch(res *commands.Result) []Section {
	return []Section{{
		Title: "Cancelled Match Details",
		Fields: []Field{
			{"Match ID", strconv.Itoa(res.Match.ID)},
			{"League ID", intOrNA(res.Match.LeagueID)},
			{"Facility ID", strconv.Itoa(res.Match.FacilityID)},
			{"Date/Time", res.Match.DateTime.Format(dateTimeLayout)},
			{"Status", string(res.Match.Status)},
			{"Game Type", res.Match.GameType},
			{"Reason", res.Reason},
		},
	}}
}

func projectCancelFacilityMatches(res *commands.Result) []Section {
	s := facilitySection(res.Facility)
	s.Fields = append(s.Fields,
		Field{"Reason", res.Reason},
		Field{"Matches Cancelled", strconv.FormatInt(res.CancelledMatches, 10)},
	)
	return []Section{s}
}

func projectCreateLeague(res *commands.Result) []Section {
	table := &Table{
		Columns: []string{"Team ID", "Name", "Creation Date", "Facility"},
	}
	for _, t := range res.Teams {
		table.Rows = append(table.Rows, []string{
			strconv.Itoa(t.ID),
			t.Name,
			t.CreationDate.Format(dateLayout),
			t.FacilityName,
		})
	}
	return []Section{
		leagueSection("League Created", res.League),
		{Title: "Teams Registered to the New League", Table: table},
	}
}

func projectMatchResult(res *commands.Result) []Section {
	r := res.MatchResult
	return []Section{
		{
			Title: "Match Results Successfully Updated",
			Fields: []Field{
				{"Game ID", strconv.Itoa(r.Match.ID)},
				{"League", strOrNA(r.LeagueName)},
				{"Facility", r.FacilityName},
				{"Date/Time", r.Match.DateTime.Format(dateTimeLayout)},
				{"Status", string(r.Match.Status)},
				{"Game Type", r.Match.GameType},
			},
		},
		{
			Title: "Results Summary",
			Fields: []Field{
				{r.Team1.TeamName, strconv.Itoa(r.Team1.Score)},
				{r.Team2.TeamName, strconv.Itoa(r.Team2.Score)},
				{"Winner", r.Winner},
			},
		},
	}
}

func projectLeagueStatus(res *commands.Result) []Section {
	s := leagueSection("League Updated", res.League)
	if res.Transition != nil {
		s.Fields = append(s.Fields, Field{
			"Transition",
			fmt.Sprintf("%s -> %s", res.Transition.From, res.Transition.To),
		})
	}
	sections := []Section{s}

	if res.Standings != nil {
		table := &Table{Columns: []string{"Team ID", "Team Name", "Total Points"}}
		for _, row := range res.Standings {
			table.Rows = append(table.Rows, []string{
				strconv.Itoa(row.TeamID),
				row.TeamName,
				strconv.Itoa(row.TotalScore),
			})
		}
		sections = append(sections, Section{Title: "Final Standings (Total Points)", Table: table})
	}
	return sections
}

func facilitySection(f *models.Facility) Section {
	return Section{
		Title: "Facility Details",
		Fields: []Field{
			{"Facility ID", strconv.Itoa(f.ID)},
			{"Facility Name", f.Name},
			{"Address", f.Address},
			{"City", f.City},
			{"State", f.State},
			{"ZIP", f.Zip},
			{"Phone", strOrNA(f.Phone)},
			{"Website", strOrNA(f.Website)},
		},
	}
}

func leagueSection(title string, l *models.League) Section {
	return Section{
		Title: title,
		Fields: []Field{
			{"League ID", strconv.Itoa(l.ID)},
			{"Name", l.Name},
			{"Location", fmt.Sprintf("%s, %s %s", l.City, l.State, l.Zip)},
			{"Skill Level", l.SkillLevel},
			{"Status", string(l.Status)},
			{"Start Date", l.StartDate.Format(dateLayout)},
			{"End Date", l.EndDate.Format(dateLayout)},
			{"Max Teams", strconv.Itoa(l.MaxTeams)},
		},
	}
}

func strOrNA(s *string) string {
	if s == nil || *s == "" {
		return "N/A"
	}
	return *s
}

func intOrNA(i *int) string {
	if i == nil {
		return "N/A"
	}
	return strconv.Itoa(*i)
}
