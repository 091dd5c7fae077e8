package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jrsteele09/parkctl/vehicles"
)

func vehiclesCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vehicles",
		Short: "Manage the vehicle registry",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.requireAuth()
		},
	}

	cmd.AddCommand(
		vehiclesListCmd(a),
		vehiclesAddCmd(a),
		vehiclesUpdateCmd(a),
		vehiclesRemoveCmd(a),
		vehiclesPayCmd(a),
		vehiclesStartsMonthCmd(a),
	)

	return cmd
}

func vehiclesListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List registered vehicles",
		RunE: func(cmd *cobra.Command, args []string) error {
			list, err := a.vehicles.List(cmd.Context())
			if err != nil {
				return err
			}

			fmt.Printf("%-12s %s\n", "PLATE", "TYPE")
			for _, v := range list {
				fmt.Printf("%-12s %s\n", v.ID, v.Type)
			}
			info("%d vehicle(s)", len(list))
			return nil
		},
	}
}

func vehiclesAddCmd(a *app) *cobra.Command {
	var vehicleType string

	cmd := &cobra.Command{
		Use:   "add <plate>",
		Short: "Register a vehicle",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t := vehicles.Type(vehicleType)
			if !t.Valid() {
				return fmt.Errorf("unknown vehicle type %q (OFICIAL, RESIDENT or NON_RESIDENT)", vehicleType)
			}

			created, err := a.vehicles.Create(cmd.Context(), vehicles.Vehicle{ID: args[0], Type: t})
			if err != nil {
				return err
			}
			success("Registered %s as %s", created.ID, created.Type)
			return nil
		},
	}

	cmd.Flags().StringVarP(&vehicleType, "type", "t", string(vehicles.TypeNonResident), "vehicle type")
	return cmd
}

func vehiclesUpdateCmd(a *app) *cobra.Command {
	var vehicleType string

	cmd := &cobra.Command{
		Use:   "update <plate>",
		Short: "Change a vehicle's type",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t := vehicles.Type(vehicleType)
			if !t.Valid() {
				return fmt.Errorf("unknown vehicle type %q (OFICIAL, RESIDENT or NON_RESIDENT)", vehicleType)
			}

			updated, err := a.vehicles.Update(cmd.Context(), args[0], t)
			if err != nil {
				return err
			}
			success("Updated %s to %s", updated.ID, updated.Type)
			return nil
		},
	}

	cmd.Flags().StringVarP(&vehicleType, "type", "t", "", "new vehicle type")
	_ = cmd.MarkFlagRequired("type")
	return cmd
}

func vehiclesRemoveCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <plate>",
		Short: "Remove a vehicle from the registry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.vehicles.Delete(cmd.Context(), args[0]); err != nil {
				return err
			}
			success("Removed %s", args[0])
			return nil
		},
	}
}

func vehiclesPayCmd(a *app) *cobra.Command {
	var vehicleType string

	cmd := &cobra.Command{
		Use:   "pay <plate>",
		Short: "Calculate what a vehicle owes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t := vehicles.Type(vehicleType)
			if !t.Valid() {
				return fmt.Errorf("unknown vehicle type %q (OFICIAL, RESIDENT or NON_RESIDENT)", vehicleType)
			}

			price, err := a.vehicles.CalculatePayment(cmd.Context(), vehicles.Vehicle{ID: args[0], Type: t})
			if err != nil {
				return err
			}
			success("%s owes $%.2f", args[0], price)
			return nil
		},
	}

	cmd.Flags().StringVarP(&vehicleType, "type", "t", string(vehicles.TypeNonResident), "vehicle type")
	return cmd
}

func vehiclesStartsMonthCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "starts-month",
		Short: "Begin a new billing month",
		RunE: func(cmd *cobra.Command, args []string) error {
			reset, err := a.vehicles.StartsMonth(cmd.Context())
			if err != nil {
				return err
			}
			success("%s (%d record(s) dropped)", reset.Message, reset.DeletedCount)
			return nil
		},
	}
}
