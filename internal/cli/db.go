package cli

import (
	"fmt"

	"kanban/internal/auth"
	"kanban/internal/config"
	"kanban/internal/migrations"
	"kanban/internal/repository"
	"kanban/internal/seed"
	"kanban/internal/server"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// newDBCmd groups maintenance tasks that talk to Postgres directly. They read
// the same environment as the server.
func newDBCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "db",
		Short: "Database maintenance (uses the server's DB_* environment)",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "migrate",
		Short: "Apply pending schema migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			version, err := migrations.Up(cfg.MigrateURL())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Schema at version %d\n", version)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "seed",
		Short: "Replace every board with the demo board",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			db, err := server.OpenDB(cfg)
			if err != nil {
				return err
			}
			fixture, err := seed.Demo()
			if err != nil {
				return err
			}
			board, err := seed.Apply(cmd.Context(), db, fixture)
			if err != nil {
				return fmt.Errorf("seed: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Seeded %q (%s)\n", board.Title, board.ID)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "populate-access-codes",
		Short: "Give every board without an access code a new one",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			log, err := server.NewLogger(cfg.LogLevel, cfg.IsProduction())
			if err != nil {
				return err
			}
			defer log.Sync()

			db, err := server.OpenDB(cfg)
			if err != nil {
				return err
			}
			n, err := seed.PopulateAccessCodes(cmd.Context(), repository.NewBoardRepository(db), log)
			if err != nil {
				log.Error("populate access codes", zap.Int("updated", n), zap.Error(err))
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated %d boards\n", n)
			return nil
		},
	})

	return cmd
}

func newAdminCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "admin",
		Short: "Admin configuration helpers",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "hash-password <password>",
		Short: "Print a bcrypt hash for ADMIN_PASSWORD_HASH",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			hash, err := auth.HashPassword(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), hash)
			return nil
		},
	})

	return cmd
}
