// Command seed loads the default category and concept catalog into the
// database. It is safe to run repeatedly.
package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/finanzas-app/finanzas-backend/internal/config"
	"github.com/finanzas-app/finanzas-backend/internal/repository/postgres"
	"github.com/finanzas-app/finanzas-backend/internal/service"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	migrateFirst := flag.Bool("migrate", false, "apply schema migrations before seeding")
	timeout := flag.Duration("timeout", time.Minute, "overall timeout")
	flag.Parse()

	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	if os.Getenv("ENV") != "production" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	dbCfg := config.LoadDatabase()
	if err := dbCfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("Invalid database configuration")
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	pool, err := postgres.NewPool(ctx, dbCfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}
	defer pool.Close()

	if *migrateFirst || dbCfg.MigrateOnStart {
		if err := postgres.RunMigrations(pool); err != nil {
			log.Fatal().Err(err).Msg("Failed to run migrations")
		}
		log.Info().Msg("Migrations applied")
	}

	seedService := service.NewSeedService(
		postgres.NewCategoryRepository(pool),
		postgres.NewConceptRepository(pool),
	)

	result, err := seedService.Seed(ctx, 0)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to seed reference catalog")
	}

	log.Info().
		Int("categories", result.Categories).
		Int("concepts", result.Concepts).
		Msg("Seed complete")
}
