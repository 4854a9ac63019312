package main

import (
	"context"
	"directory/internal/config"
	"directory/internal/person"
	"directory/pkg/logger"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// exportCommand constructs the 'export' subcommand that writes every person
// as CSV to a file or, by default, to stdout.
func exportCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Exports persons as CSV",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()
			output, _ := cmd.Flags().GetString("output")

			_, persons, closeStrg := getServices(ctx, cfg)
			err := exportPersons(ctx, persons, output, cmd.OutOrStdout())
			closeStrg()
			if err != nil {
				logger.Fatal(ctx, "could not export persons", zap.Error(err))
			}
		},
	}

	cmd.Flags().StringP("output", "o", "", "Output file path (defaults to stdout)")

	return cmd
}

// exportPersons writes the CSV export to the file at output, or to stdout when
// output is empty. The file is closed before returning and its close error is
// reported.
func exportPersons(ctx context.Context, persons person.Service, output string, stdout io.Writer) error {
	if output == "" {
		return persons.ExportPersonsCSV(ctx, stdout)
	}

	f, err := os.Create(output)
	if err != nil {
		return fmt.Errorf("could not create output file: %w", err)
	}

	err = persons.ExportPersonsCSV(ctx, f)
	if cerr := f.Close(); cerr != nil {
		err = errors.Join(err, fmt.Errorf("could not close output file: %w", cerr))
	}

	return err
}
