package main

import (
	"context"
	"directory/internal/config"
	"directory/internal/seed"
	"directory/pkg/logger"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// seedCommand constructs the 'seed' subcommand that loads the configured
// countries and persons JSON files into the database.
func seedCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Loads seed countries and persons into the database",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()

			countriesFile, err := os.Open(cfg.Seed.CountriesFile)
			if err != nil {
				logger.Fatal(ctx, "could not open countries file", zap.Error(err))
			}
			defer countriesFile.Close()

			personsFile, err := os.Open(cfg.Seed.PersonsFile)
			if err != nil {
				logger.Fatal(ctx, "could not open persons file", zap.Error(err))
			}
			defer personsFile.Close()

			countries, persons, closeStrg := getServices(ctx, cfg)
			defer closeStrg()

			res, err := seed.Load(ctx, countries, persons, countriesFile, personsFile)
			if err != nil {
				logger.Fatal(ctx, "could not seed database", zap.Error(err))
			}

			logger.Info(ctx, "database seeded",
				zap.Int("countries", res.Countries),
				zap.Int("persons", res.Persons))
		},
	}

	return cmd
}
