package cli

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	_ "github.com/jackc/pgx/v5/stdlib" // registers "pgx" driver for database/sql
	"github.com/pressly/goose/v3"
	"github.com/spf13/cobra"

	"github.com/pkordes/staylog/internal/config"
	"github.com/pkordes/staylog/migrations"
)

func addMigrate(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply, roll back or list the embedded schema migrations.",
		Example: `
staylog migrate up
staylog migrate down
staylog migrate status
`,
	}

	run := func(fn func(ctx context.Context, p *goose.Provider, w io.Writer) error) func(*cobra.Command, []string) error {
		return func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			ctx := cmd.Context()
			p, db, err := openProvider()
			if err != nil {
				return err
			}
			defer db.Close()
			return fn(ctx, p, cmd.OutOrStdout())
		}
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "up",
			Short: "Apply every pending migration.",
			Args:  cobra.NoArgs,
			RunE: run(func(ctx context.Context, p *goose.Provider, w io.Writer) error {
				results, err := p.Up(ctx)
				if err != nil {
					return fmt.Errorf("migrate up: %w", err)
				}
				renderMigrations(w, results)
				return nil
			}),
		},
		&cobra.Command{
			Use:   "down",
			Short: "Roll back the most recent migration.",
			Args:  cobra.NoArgs,
			RunE: run(func(ctx context.Context, p *goose.Provider, w io.Writer) error {
				res, err := p.Down(ctx)
				if err != nil {
					if errors.Is(err, goose.ErrNoNextVersion) {
						_, _ = fmt.Fprintln(w, "nothing to roll back")
						return nil
					}
					return fmt.Errorf("migrate down: %w", err)
				}
				renderMigrations(w, []*goose.MigrationResult{res})
				return nil
			}),
		},
		&cobra.Command{
			Use:   "status",
			Short: "List every migration and whether it is applied.",
			Args:  cobra.NoArgs,
			RunE: run(func(ctx context.Context, p *goose.Provider, w io.Writer) error {
				statuses, err := p.Status(ctx)
				if err != nil {
					return fmt.Errorf("migrate status: %w", err)
				}
				tbl := uitable.New()
				tbl.Separator = "  "
				bold := color.New(color.Bold)
				tbl.AddRow(bold.Sprint("VERSION"), bold.Sprint("STATE"), bold.Sprint("FILE"))
				for _, s := range statuses {
					tbl.AddRow(s.Source.Version, string(s.State), s.Source.Path)
				}
				_, _ = fmt.Fprintln(w, tbl)
				return nil
			}),
		},
	)
	topLevel.AddCommand(cmd)
}

// openProvider opens DATABASE_URL through database/sql, which goose requires.
// Callers close the returned *sql.DB.
func openProvider() (*goose.Provider, *sql.DB, error) {
	cfg, err := config.Read()
	if err != nil {
		return nil, nil, err
	}
	if cfg.DatabaseURL == "" {
		return nil, nil, errors.New("DATABASE_URL is not set")
	}
	db, err := sql.Open("pgx", cfg.DatabaseURL)
	if err != nil {
		return nil, nil, fmt.Errorf("open database: %w", err)
	}
	p, err := goose.NewProvider(goose.DialectPostgres, db, migrations.FS)
	if err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("create goose provider: %w", err)
	}
	return p, db, nil
}

func renderMigrations(w io.Writer, results []*goose.MigrationResult) {
	if len(results) == 0 {
		_, _ = fmt.Fprintln(w, "database is up to date")
		return
	}
	tbl := uitable.New()
	tbl.Separator = "  "
	for _, r := range results {
		tbl.AddRow(r.Direction, r.Source.Version, r.Source.Path, r.Duration.Round(time.Millisecond))
	}
	_, _ = fmt.Fprintln(w, tbl)
}
