package main

import (
	"github.com/spf13/cobra"
)

func reportsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reports",
		Short: "Generate backend reports",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.requireAuth()
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "monthly",
		Short: "Generate the monthly activity report",
		RunE: func(cmd *cobra.Command, args []string) error {
			report, err := a.reports.GenerateMonthly(cmd.Context())
			if err != nil {
				return err
			}
			success("%s", report.Message)
			info("Report written to %s", report.ReportFile)
			return nil
		},
	})

	return cmd
}
