package main

import (
	"github.com/spf13/cobra"
)

func dashboardCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Show the lot overview",
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return a.requireAuth()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			snap := a.dashboard.Load(cmd.Context())

			// Each half reports on its own; one failing never hides the other.
			if snap.VehiclesErr != nil {
				fail("vehicles: %s", snap.VehiclesErr)
			} else {
				info("Registered vehicles: %d", snap.RegisteredCount())
			}

			if snap.RegistersErr != nil {
				fail("registers: %s", snap.RegistersErr)
			} else {
				info("Vehicles in lot:     %d", snap.ActiveCount())
				info("Total minutes:       %d", snap.TotalMinutes())
			}
			return nil
		},
	}
}
