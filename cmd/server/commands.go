package main

import (
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/padsala/padsala-api/internal/config"
	"github.com/padsala/padsala-api/internal/platform/logger"
	"github.com/padsala/padsala-api/internal/platform/postgres"
	"github.com/spf13/cobra"
)

// dbPingTimeout bounds the startup connectivity check.
const dbPingTimeout = 5 * time.Second

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "padsala-server",
		Short:         "Padsala study planner API",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().String("config", "", "path to a config file (default: ./config.yaml or $HOME/.padsala/config.yaml)")

	root.AddCommand(newServeCmd(), newMigrateCmd())
	return root
}

// loadConfig reads configuration and installs the JSON logger.
func loadConfig(cmd *cobra.Command) (*config.Config, *slog.Logger, error) {
	path, _ := cmd.Flags().GetString("config")

	var (
		cfg *config.Config
		err error
	)
	if path != "" {
		cfg, err = config.LoadFile(path)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	log, err := logger.Setup(cfg.Server)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to set up logger: %w", err)
	}
	log.Info("configuration loaded",
		slog.Int("port", cfg.Server.Port),
		slog.String("log_level", cfg.Server.LogLevel),
		slog.String("llm_provider", cfg.LLM.Provider),
		slog.Bool("llm_enabled", cfg.LLM.Enabled()))
	return cfg, log, nil
}

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			cfg, log, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			db, err := postgres.Open(ctx, cfg.Database.URL, postgres.DefaultPoolConfig(), dbPingTimeout)
			if err != nil {
				return err
			}
			log.Info("database connection established")

			app, err := newApplication(ctx, cfg, log, db)
			if err != nil {
				_ = db.Close()
				return fmt.Errorf("failed to initialize application: %w", err)
			}
			return app.Run(ctx)
		},
	}
}

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "migrate <command>",
		Short:     "Apply or inspect database migrations",
		Long:      fmt.Sprintf("Runs a goose migration command against the configured database.\nCommands: %v", postgres.MigrationCommands),
		Args:      cobra.ExactArgs(1),
		ValidArgs: postgres.MigrationCommands,
		RunE: func(cmd *cobra.Command, args []string) error {
			command := args[0]
			if !slices.Contains(postgres.MigrationCommands, command) {
				return fmt.Errorf("unknown migration command %q (expected one of %v)", command, postgres.MigrationCommands)
			}

			ctx := cmd.Context()
			cfg, log, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			db, err := postgres.Open(ctx, cfg.Database.URL, postgres.DefaultPoolConfig(), dbPingTimeout)
			if err != nil {
				return err
			}
			defer func() {
				if cerr := db.Close(); cerr != nil {
					log.Error("failed to close database connection", slog.String("error", cerr.Error()))
				}
			}()

			return postgres.Migrate(ctx, db, command, log)
		},
	}
}
