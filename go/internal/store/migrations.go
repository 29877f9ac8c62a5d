package store

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// RunMigrations creates the tee-time schema if it does not exist.
func RunMigrations(ctx context.Context, pool *pgxpool.Pool) error {
	migrations := []string{
		`CREATE TABLE IF NOT EXISTS facility (
			facility_id SERIAL PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			address VARCHAR(255),
			city VARCHAR(100),
			state VARCHAR(2),
			zip VARCHAR(10),
			phone VARCHAR(20),
			website VARCHAR(255)
		)`,
		`CREATE TABLE IF NOT EXISTS player (
			player_id SERIAL PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			handicap NUMERIC(4,1) NOT NULL DEFAULT 0
		)`,
		`CREATE TABLE IF NOT EXISTS team (
			team_id SERIAL PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			creation_date DATE NOT NULL DEFAULT CURRENT_DATE,
			home_facility_id INT NOT NULL REFERENCES facility(facility_id)
		)`,
		`CREATE TABLE IF NOT EXISTS membership (
			membership_id SERIAL PRIMARY KEY,
			player_id INT NOT NULL REFERENCES player(player_id),
			team_id INT NOT NULL REFERENCES team(team_id),
			join_date DATE NOT NULL DEFAULT CURRENT_DATE,
			position VARCHAR(20) NOT NULL DEFAULT 'Member',
			UNIQUE (player_id, team_id)
		)`,
		`CREATE TABLE IF NOT EXISTS league (
			league_id SERIAL PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			city VARCHAR(100),
			state VARCHAR(2),
			zip VARCHAR(10),
			skill_level VARCHAR(50),
			status VARCHAR(20) NOT NULL DEFAULT 'Setting Up',
			start_date DATE NOT NULL,
			end_date DATE NOT NULL,
			max_teams INT NOT NULL,
			format VARCHAR(20)
		)`,
		`CREATE TABLE IF NOT EXISTS league_team (
			league_id INT NOT NULL REFERENCES league(league_id),
			team_id INT NOT NULL REFERENCES team(team_id),
			PRIMARY KEY (league_id, team_id)
		)`,
		`CREATE TABLE IF NOT EXISTS game (
			game_id SERIAL PRIMARY KEY,
			league_id INT REFERENCES league(league_id),
			facility_id INT NOT NULL REFERENCES facility(facility_id),
			date_time TIMESTAMP NOT NULL,
			status VARCHAR(20) NOT NULL DEFAULT 'Scheduled',
			game_type VARCHAR(50)
		)`,
		`CREATE TABLE IF NOT EXISTS game_team (
			game_id INT NOT NULL REFERENCES game(game_id),
			team_id INT NOT NULL REFERENCES team(team_id),
			score INT NOT NULL,
			PRIMARY KEY (game_id, team_id)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_game_facility_status ON game(facility_id, status)`,
		`CREATE INDEX IF NOT EXISTS idx_league_team_league ON league_team(league_id)`,
	}

	for _, migration := range migrations {
		if _, err := pool.Exec(ctx, migration); err != nil {
			return fmt.Errorf("executing migration: %w", err)
		}
	}
	return nil
}
