package main

import (
	"context"
	"os"

	"github.com/joho/godotenv"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/bluey22/tee-time/go/internal/commands"
	"github.com/bluey22/tee-time/go/internal/dbconfig"
	"github.com/bluey22/tee-time/go/internal/sqlutil"
	"github.com/bluey22/tee-time/go/internal/store"
)

func main() {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Warn().Err(err).Msg("could not load .env file")
	}

	// Setup logging
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	cfg := dbconfig.NewConfigFromEnv()
	if path := os.Getenv("TEETIME_CONFIG"); path != "" {
		var err error
		cfg, err = cfg.LoadFile(path)
		if err != nil {
			log.Fatal().Err(err).Str("path", path).Msg("failed to load config file")
		}
	}

	ctx := context.Background()
	pool, err := store.Connect(ctx, cfg, log.Logger)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer pool.Close()

	if err := store.RunMigrations(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("failed to run migrations")
	}

	executor := commands.NewExecutor(
		sqlutil.NewPoolRunner(pool),
		commands.NewStoreFactory(),
		clockwork.NewRealClock(),
		log.Logger,
	)

	runMenu(ctx, executor, os.Stdin, os.Stdout)
}
