package cli

import (
	"fmt"
	"strconv"

	"github.com/SscSPs/property_management_app/internal/app"
	"github.com/SscSPs/property_management_app/pkg/database"
	"github.com/spf13/cobra"
)

func migrateCmd(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage the database schema",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "up",
			Short: "Apply all pending migrations",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return withMigrator(cmd, e, func(m *database.Migrator) error {
					return m.Up()
				})
			},
		},
		&cobra.Command{
			Use:   "down [steps]",
			Short: "Roll back the given number of migrations, or all of them",
			Args:  cobra.MaximumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				steps := 0
				if len(args) == 1 {
					n, err := strconv.Atoi(args[0])
					if err != nil || n <= 0 {
						return fmt.Errorf("steps must be a positive integer, got %q", args[0])
					}
					steps = n
				}
				return withMigrator(cmd, e, func(m *database.Migrator) error {
					if err := m.Down(steps); err != nil {
						return err
					}
					fmt.Fprintln(cmd.OutOrStdout(), "Rolled back.")
					return nil
				})
			},
		},
		&cobra.Command{
			Use:   "version",
			Short: "Print the current schema version",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return withMigrator(cmd, e, func(m *database.Migrator) error {
					v, dirty, err := m.Version()
					if err != nil {
						return err
					}
					fmt.Fprintf(cmd.OutOrStdout(), "version %d (dirty: %t)\n", v, dirty)
					return nil
				})
			},
		},
		&cobra.Command{
			Use:   "force <version>",
			Short: "Set the schema version without running migrations",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				v, err := strconv.Atoi(args[0])
				if err != nil {
					return fmt.Errorf("invalid version %q: %w", args[0], err)
				}
				return withMigrator(cmd, e, func(m *database.Migrator) error {
					return m.Force(v)
				})
			},
		},
	)
	return cmd
}

func withMigrator(cmd *cobra.Command, e *env, fn func(*database.Migrator) error) error {
	db, err := app.OpenDatabase(cmd.Context(), e.cfg, e.logger)
	if err != nil {
		return err
	}
	defer db.Close()

	m, err := db.Migrator()
	if err != nil {
		return err
	}
	return fn(m)
}
