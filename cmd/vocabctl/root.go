package main

import (
	"fmt"

	"wordquiz/internal/config"
	"wordquiz/internal/database"
	"wordquiz/internal/logger"
	"wordquiz/internal/repository/postgres"
	"wordquiz/internal/service"

	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// app holds what every subcommand needs once the database is reachable
type app struct {
	cfg    *config.Config
	logger *zap.Logger
	db     *sqlx.DB
}

func (a *app) wordService() *service.WordService {
	return service.NewWordService(
		postgres.NewWordRepo(a.db),
		postgres.NewVocabularyRepo(a.db),
		a.logger,
		a.cfg.Quiz.PageSize,
	)
}

func (a *app) statsService() *service.StatsService {
	return service.NewStatsService(postgres.NewVocabularyRepo(a.db), a.logger)
}

func newRootCmd() *cobra.Command {
	a := &app{}
	var retries int

	root := &cobra.Command{
		Use:           "vocabctl",
		Short:         "Administer the vocabulary bot database",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			log, err := logger.New(cfg.Env)
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}

			opts := database.DefaultConnectOptions()
			opts.MaxRetries = retries
			db, err := database.Connect(cfg.DSN(), opts, log)
			if err != nil {
				return err
			}

			a.cfg, a.logger, a.db = cfg, log, db
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
			if a.db != nil {
				return a.db.Close()
			}
			return nil
		},
	}

	root.PersistentFlags().IntVar(&retries, "retries", 3, "database connection attempts")

	root.AddCommand(
		newMigrateCmd(a),
		newSeedCmd(a),
		newImportCmd(a),
		newStatsCmd(a),
	)
	return root
}
