package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/bluey22/tee-time/go/internal/commands"
	"github.com/bluey22/tee-time/go/internal/report"
)

type menu struct {
	exec *commands.Executor
	in   *bufio.Scanner
	out  io.Writer
}

func runMenu(ctx context.Context, exec *commands.Executor, in io.Reader, out io.Writer) {
	m := &menu{exec: exec, in: bufio.NewScanner(in), out: out}
	fmt.Fprintln(out, "Welcome to the Tee-Time database! Please navigate by following the instructions below.")

	for {
		fmt.Fprintln(out, "--------- Menu ---------")
		fmt.Fprintln(out, "1. Join a Team")
		fmt.Fprintln(out, "2. Cancel a membership")
		fmt.Fprintln(out, "3. Cancel a match at a Facility")
		fmt.Fprintln(out, "4. Cancel all matches at a Facility")
		fmt.Fprintln(out, "5. Create a Home League at a Facility (Adds all home teams)")
		fmt.Fprintln(out, "6. Update match results")
		fmt.Fprintln(out, "7. Update League Status")
		fmt.Fprintln(out, "0. Quit")
		choice, ok := m.readInt("Enter your choice (input a number 0 through 7): ")
		if !ok {
			return
		}

		switch choice {
		case 0:
			return
		case 1:
			m.joinTeam(ctx)
		case 2:
			m.cancelMembership(ctx)
		case 3:
			m.cancelMatch(ctx)
		case 4:
			m.cancelFacilityMatches(ctx)
		case 5:
			m.createFacilityLeague(ctx)
		case 6:
			m.updateMatchResult(ctx)
		case 7:
			m.updateLeagueStatus(ctx)
		default:
			fmt.Fprintln(m.out, "Invalid choice. Please try again.")
		}
	}
}

func (m *menu) joinTeam(ctx context.Context) {
	playerID, ok := m.readInt("Enter the player id: ")
	if !ok {
		return
	}
	teamID, ok := m.readInt("Enter the team id: ")
	if !ok {
		return
	}
	joinDate, ok := m.readLine("Enter a join date (YYYY-MM-DD) or leave empty for today: ")
	if !ok {
		return
	}
	position, ok := m.readLine(`Enter position ("Captain" or leave empty for "Member"): `)
	if !ok {
		return
	}

	m.run(ctx, commands.KindJoinTeam, commands.JoinTeamParams{
		PlayerID: playerID,
		TeamID:   teamID,
		JoinDate: joinDate,
		Position: position,
	})
}

func (m *menu) cancelMembership(ctx context.Context) {
	playerID, ok := m.readInt("Enter the player id: ")
	if !ok {
		return
	}
	membershipID, ok := m.readInt("Enter the membership id: ")
	if !ok {
		return
	}

	m.run(ctx, commands.KindCancelMembership, commands.CancelMembershipParams{
		PlayerID:     playerID,
		MembershipID: membershipID,
	})
}

func (m *menu) cancelMatch(ctx context.Context) {
	facilityID, ok := m.readInt("Enter the facility id: ")
	if !ok {
		return
	}
	matchID, ok := m.readInt("Enter the match id: ")
	if !ok {
		return
	}
	reason, ok := m.readLine("Enter reason for cancellation: ")
	if !ok {
		return
	}

	m.run(ctx, commands.KindCancelMatch, commands.CancelMatchParams{
		FacilityID: facilityID,
		MatchID:    matchID,
		Reason:     reason,
	})
}

func (m *menu) cancelFacilityMatches(ctx context.Context) {
	facilityID, ok := m.readInt("Enter the facility id: ")
	if !ok {
		return
	}
	reason, ok := m.readLine("Enter reason for cancellation: ")
	if !ok {
		return
	}

	m.run(ctx, commands.KindCancelFacilityMatches, commands.CancelFacilityMatchesParams{
		FacilityID: facilityID,
		Reason:     reason,
	})
}

func (m *menu) createFacilityLeague(ctx context.Context) {
	facilityID, ok := m.readInt("Enter the facility ID: ")
	if !ok {
		return
	}
	name, ok := m.readLine("Enter the league name: ")
	if !ok {
		return
	}
	skill, ok := m.readLine("Enter skill level (Complete Beginner, Beginner, Intermediate, Advanced, Professional): ")
	if !ok {
		return
	}
	startDate, ok := m.readLine("Enter start date (YYYY-MM-DD) (Leave Empty for Today): ")
	if !ok {
		return
	}
	endDate, ok := m.readLine("Enter end date (YYYY-MM-DD): ")
	if !ok {
		return
	}
	maxTeams, ok := m.readInt("Enter maximum number of teams: ")
	if !ok {
		return
	}
	format, ok := m.readLine("Enter league format (Round Robin, Elimination, RR-E): ")
	if !ok {
		return
	}

	m.run(ctx, commands.KindCreateFacilityLeague, commands.CreateFacilityLeagueParams{
		FacilityID: facilityID,
		Name:       name,
		SkillLevel: skill,
		StartDate:  startDate,
		EndDate:    endDate,
		MaxTeams:   maxTeams,
		Format:     format,
	})
}

func (m *menu) updateMatchResult(ctx context.Context) {
	matchID, ok := m.readInt("Enter the game ID: ")
	if !ok {
		return
	}
	team1ID, ok := m.readInt("Enter the first team ID: ")
	if !ok {
		return
	}
	team1Score, ok := m.readInt("Enter the first team's score: ")
	if !ok {
		return
	}
	team2ID, ok := m.readInt("Enter the second team ID: ")
	if !ok {
		return
	}
	team2Score, ok := m.readInt("Enter the second team's score: ")
	if !ok {
		return
	}

	m.run(ctx, commands.KindUpdateMatchResult, commands.UpdateMatchResultParams{
		MatchID:    matchID,
		Team1ID:    team1ID,
		Team1Score: team1Score,
		Team2ID:    team2ID,
		Team2Score: team2Score,
	})
}

func (m *menu) updateLeagueStatus(ctx context.Context) {
	leagueID, ok := m.readInt("Enter League ID: ")
	if !ok {
		return
	}

	m.run(ctx, commands.KindUpdateLeagueStatus, commands.UpdateLeagueStatusParams{
		LeagueID: leagueID,
	})
}

// run executes a command and renders its report or error.
func (m *menu) run(ctx context.Context, kind commands.Kind, params any) {
	res, err := m.exec.Execute(ctx, kind, params)
	if err != nil {
		fmt.Fprintf(m.out, "\nOperation failed: %v\n\n", err)
		return
	}
	renderSections(m.out, report.Project(kind, res))
}

func renderSections(out io.Writer, sections []report.Section) {
	for _, s := range sections {
		fmt.Fprintf(out, "\n=== %s ===\n", s.Title)
		for _, f := range s.Fields {
			fmt.Fprintf(out, "%-20s %s\n", f.Label+":", f.Value)
		}
		if s.Table != nil {
			for _, col := range s.Table.Columns {
				fmt.Fprintf(out, "%-30s", col)
			}
			fmt.Fprintln(out)
			for range s.Table.Columns {
				fmt.Fprint(out, strings.Repeat("-", 30))
			}
			fmt.Fprintln(out)
			for _, row := range s.Table.Rows {
				for _, cell := range row {
					fmt.Fprintf(out, "%-30s", cell)
				}
				fmt.Fprintln(out)
			}
		}
	}
	fmt.Fprintln(out)
}

func (m *menu) readLine(prompt string) (string, bool) {
	fmt.Fprint(m.out, prompt)
	if !m.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(m.in.Text()), true
}

func (m *menu) readInt(prompt string) (int, bool) {
	for {
		line, ok := m.readLine(prompt)
		if !ok {
			return 0, false
		}
		n, err := strconv.Atoi(line)
		if err != nil {
			fmt.Fprintln(m.out, "Please enter a whole number.")
			continue
		}
		return n, true
	}
}
