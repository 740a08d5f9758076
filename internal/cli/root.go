// Package cli implements the pmactl administration commands.
package cli

import (
	"log/slog"

	"github.com/SscSPs/property_management_app/internal/middleware"
	"github.com/SscSPs/property_management_app/internal/platform/config"
	"github.com/spf13/cobra"
)

// env is loaded once before any subcommand runs.
type env struct {
	cfg    *config.Config
	logger *slog.Logger
}

// NewRootCmd builds the pmactl command tree.
func NewRootCmd() *cobra.Command {
	e := &env{}
	rootCmd := &cobra.Command{
		Use:           "pmactl",
		Short:         "Property management administration tool",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig()
			if err != nil {
				return err
			}
			e.cfg = cfg
			e.logger = middleware.NewLogger(cfg.LogLevel)
			return nil
		},
	}

	rootCmd.AddCommand(
		migrateCmd(e),
		bootstrapCmd(e),
		reportCmd(e),
	)
	return rootCmd
}
