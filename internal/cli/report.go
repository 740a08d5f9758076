package cli

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/SscSPs/property_management_app/internal/app"
	"github.com/SscSPs/property_management_app/internal/core/domain"
	"github.com/SscSPs/property_management_app/internal/dto"
	"github.com/SscSPs/property_management_app/internal/middleware"
	"github.com/SscSPs/property_management_app/internal/utils/export"
	"github.com/spf13/cobra"
)

func reportCmd(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Generate reports without the HTTP server",
	}
	cmd.AddCommand(profitabilityCmd(e))
	return cmd
}

func profitabilityCmd(e *env) *cobra.Command {
	var (
		email         string
		start, end    string
		buildingIDs   []string
		confirmedOnly bool
		xlsxPath      string
	)
	cmd := &cobra.Command{
		Use:   "profitability",
		Short: "Print the profitability report as JSON, as seen by the given user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			startYM, err := domain.ParseYearMonth(start)
			if err != nil {
				return err
			}
			endYM, err := domain.ParseYearMonth(end)
			if err != nil {
				return err
			}

			a, err := app.Bootstrap(cmd.Context(), e.cfg, e.logger)
			if err != nil {
				return err
			}
			defer a.Close()

			user, err := a.DB.Repositories().UserRepo.FindUserByEmail(cmd.Context(), email)
			if err != nil {
				return fmt.Errorf("user %s: %w", email, err)
			}
			ctx := middleware.WithUserID(cmd.Context(), user.UserID)
			ctx = middleware.WithLogger(ctx, e.logger.With(slog.String("user_id", user.UserID)))
			report, err := a.Services.Reporting.GetProfitabilityReport(ctx, user.UserID, buildingIDs, startYM, endYM, confirmedOnly)
			if err != nil {
				return err
			}

			if xlsxPath != "" {
				return writeXLSX(xlsxPath, report)
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(dto.ToProfitabilityReportResponse(report))
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "email of the user whose company is reported")
	cmd.Flags().StringVar(&start, "start", "", "first month (YYYY-MM)")
	cmd.Flags().StringVar(&end, "end", "", "last month (YYYY-MM)")
	cmd.Flags().StringSliceVar(&buildingIDs, "building", nil, "building ID to include; repeatable, default all")
	cmd.Flags().BoolVar(&confirmedOnly, "confirmed-only", false, "count only confirmed rent payments")
	cmd.Flags().StringVar(&xlsxPath, "xlsx", "", "write an Excel workbook to this path instead of printing JSON")
	for _, f := range []string{"email", "start", "end"} {
		_ = cmd.MarkFlagRequired(f)
	}
	return cmd
}

func writeXLSX(path string, report *domain.ProfitabilityReport) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := export.WriteProfitabilityXLSX(f, report); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
