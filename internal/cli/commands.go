// Package cli implements the staylog operator commands.
package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"

	"github.com/pkordes/staylog/internal/config"
	"github.com/pkordes/staylog/internal/repo"
	"github.com/pkordes/staylog/internal/service"
)

// userFlag is shared by every command that reads or writes a timeline.
var userFlag string

// New returns the root command with every subcommand attached.
func New() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "staylog",
		Short: "Operate a staylog database from the command line.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
	cmd.PersistentFlags().StringVarP(&userFlag, "user", "u", "", "user ID whose timeline to use")

	AddCommands(cmd)
	return cmd
}

// AddCommands attaches the subcommands to topLevel.
func AddCommands(topLevel *cobra.Command) {
	addMigrate(topLevel)
	addToken(topLevel)
	addSummary(topLevel)
	addCalendar(topLevel)
	addSet(topLevel)
	addImport(topLevel)
	addExport(topLevel)
}

// env is an open connection to the store plus the service built on it.
type env struct {
	cfg     config.Config
	pool    *pgxpool.Pool
	entries *service.EntryService
}

func (e *env) Close() { e.pool.Close() }

// openEnv connects to DATABASE_URL and builds an EntryService configured the
// same way as the API server. Logs go to stderr as text.
func openEnv(ctx context.Context) (*env, error) {
	cfg, err := config.Read()
	if err != nil {
		return nil, err
	}
	if cfg.DatabaseURL == "" {
		return nil, errors.New("DATABASE_URL is not set")
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		level = slog.LevelInfo
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	entries := service.NewEntryService(repo.NewEntryRepo(pool), logger, service.Options{
		Policy:          cfg.OverlapPolicy,
		Threshold:       cfg.ResidencyThreshold,
		DefaultLocation: cfg.DefaultLocation,
	})
	return &env{cfg: cfg, pool: pool, entries: entries}, nil
}

// requireUser returns the --user value or an error naming the flag.
func requireUser() (string, error) {
	if userFlag == "" {
		return "", errors.New("--user is required")
	}
	return userFlag, nil
}
