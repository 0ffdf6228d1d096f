package main

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"wordquiz/internal/database"
	"wordquiz/internal/importer"

	"github.com/spf13/cobra"
)

func newMigrateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply database migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := database.Migrate(a.db, a.logger); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "migrations applied")
			return nil
		},
	}
}

func newSeedCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Insert the starter words into an empty word table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			inserted, err := a.wordService().SeedStarterWords(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "seeded %d words\n", inserted)
			return nil
		},
	}
}

func newImportCmd(a *app) *cobra.Command {
	var opts importer.Options

	cmd := &cobra.Command{
		Use:   "import <file.csv|file.xlsx>",
		Short: "Upsert word pairs from columns A and B of a CSV or Excel file",
		Args: cobra.MatchAll(cobra.ExactArgs(1), func(cmd *cobra.Command, args []string) error {
			switch strings.ToLower(filepath.Ext(args[0])) {
			case ".csv", ".xlsx", ".xlsm":
				return nil
			default:
				return fmt.Errorf("%w: %s", importer.ErrUnsupportedFormat, args[0])
			}
		}),
		RunE: func(cmd *cobra.Command, args []string) error {
			pairs, err := importer.ReadPairs(args[0], opts)
			if err != nil {
				return err
			}

			result, err := a.wordService().ImportWords(cmd.Context(), pairs)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "upserted %d, skipped %d\n", result.Upserted, result.Skipped)
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.Sheet, "sheet", "", "Excel sheet to read (default: first sheet)")
	cmd.Flags().BoolVar(&opts.SkipHeader, "skip-header", false, "ignore the first row")
	return cmd
}

func newStatsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "stats <user-id>",
		Short: "Print a user's learning progress",
		Args: cobra.MatchAll(cobra.ExactArgs(1), func(cmd *cobra.Command, args []string) error {
			_, err := parseUserID(args[0])
			return err
		}),
		RunE: func(cmd *cobra.Command, args []string) error {
			userID, _ := parseUserID(args[0])

			stats, err := a.statsService().Stats(cmd.Context(), userID)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "total: %d\nlearned: %d\nprogress: %d%%\n",
				stats.Total, stats.Learned, stats.Percent)
			return nil
		},
	}
}

func parseUserID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid user id %q", s)
	}
	return id, nil
}
