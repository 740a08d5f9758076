package cli

import (
	"fmt"

	"github.com/SscSPs/property_management_app/internal/app"
	"github.com/SscSPs/property_management_app/internal/dto"
	"github.com/spf13/cobra"
)

func bootstrapCmd(e *env) *cobra.Command {
	var req dto.RegisterCompanyRequest
	cmd := &cobra.Command{
		Use:   "bootstrap",
		Short: "Create a company and its first admin user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(req.Password) < 8 {
				return fmt.Errorf("password must be at least 8 characters")
			}
			a, err := app.Bootstrap(cmd.Context(), e.cfg, e.logger)
			if err != nil {
				return err
			}
			defer a.Close()

			resp, err := a.Services.Auth.RegisterCompany(cmd.Context(), req)
			if err != nil {
				return err
			}
			company, err := a.Services.Company.GetCompany(cmd.Context(), resp.User.UserID)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created company %q (%s)\nAdmin: %s\nAccess code: %s\n",
				company.Name, company.CompanyID, resp.User.Email, company.AccessCode)
			return nil
		},
	}
	cmd.Flags().StringVar(&req.CompanyName, "company", "", "company name")
	cmd.Flags().StringVar(&req.Email, "email", "", "admin email")
	cmd.Flags().StringVar(&req.Name, "name", "", "admin display name")
	cmd.Flags().StringVar(&req.Password, "password", "", "admin password")
	for _, f := range []string{"company", "email", "name", "password"} {
		_ = cmd.MarkFlagRequired(f)
	}
	return cmd
}
