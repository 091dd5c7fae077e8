package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jrsteele09/parkctl/internal/utils"
	"github.com/jrsteele09/parkctl/registers"
	"github.com/jrsteele09/parkctl/vehicles"
)

func registersCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "registers",
		Short: "Manage the entry/exit log",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.requireAuth()
		},
	}

	cmd.AddCommand(
		registersListCmd(a),
		registersEntryCmd(a),
		registersExitCmd(a),
	)

	return cmd
}

func registersListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List entry/exit records",
		RunE: func(cmd *cobra.Command, args []string) error {
			list, err := a.registers.List(cmd.Context())
			if err != nil {
				return err
			}

			fmt.Printf("%-6s %-12s %-22s %-22s %s\n", "ID", "PLATE", "ENTRY", "EXIT", "MINUTES")
			for _, r := range list {
				exit := utils.Value(r.ExitDate)
				if r.Active() {
					exit = "(in lot)"
				}
				fmt.Printf("%-6d %-12s %-22s %-22s %d\n", r.ID, r.Vehicle.ID, r.EntryDate, exit, r.Minutes)
			}
			info("%d record(s)", len(list))
			return nil
		},
	}
}

func registersEntryCmd(a *app) *cobra.Command {
	var vehicleType string

	cmd := &cobra.Command{
		Use:   "entry <plate>",
		Short: "Log a vehicle entering the lot",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t := vehicles.Type(vehicleType)
			if !t.Valid() {
				return fmt.Errorf("unknown vehicle type %q (OFICIAL, RESIDENT or NON_RESIDENT)", vehicleType)
			}

			record, err := a.registers.Entry(cmd.Context(), registers.EntryRequest{ID: args[0], Type: t})
			if err != nil {
				return err
			}
			success("Entry #%d logged for %s at %s", record.ID, record.Vehicle.ID, record.EntryDate)
			return nil
		},
	}

	cmd.Flags().StringVarP(&vehicleType, "type", "t", string(vehicles.TypeNonResident), "vehicle type")
	return cmd
}

func registersExitCmd(a *app) *cobra.Command {
	var vehicleType string

	cmd := &cobra.Command{
		Use:   "exit <plate>",
		Short: "Log a vehicle leaving the lot",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t := vehicles.Type(vehicleType)
			if !t.Valid() {
				return fmt.Errorf("unknown vehicle type %q (OFICIAL, RESIDENT or NON_RESIDENT)", vehicleType)
			}

			record, err := a.registers.Exit(cmd.Context(), vehicles.Vehicle{ID: args[0], Type: t})
			if err != nil {
				return err
			}
			success("Exit logged for %s after %d minute(s)", record.Vehicle.ID, record.Minutes)
			return nil
		},
	}

	cmd.Flags().StringVarP(&vehicleType, "type", "t", string(vehicles.TypeNonResident), "vehicle type")
	return cmd
}
