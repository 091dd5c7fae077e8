package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// payCmd drives the payment-by-link flow. It is deliberately public: a payer
// following a link has no session, so nothing here goes through the guard or
// carries a bearer token.
func payCmd(a *app) *cobra.Command {
	var createIntent bool

	cmd := &cobra.Command{
		Use:   "pay <register-id>",
		Short: "Show (and open) a payment for a finished stay",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			details, err := a.publicPay.Details(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			info("Vehicle:  %s (%s)", details.Plate, details.VehicleType)
			info("Entry:    %s", details.EntryDate)
			info("Exit:     %s", details.ExitDate)
			info("Duration: %s", formatMinutes(details.Minutes))
			info("Amount:   $%.2f", details.Amount)

			if !createIntent {
				info("Run again with --create-intent to open the payment.")
				return nil
			}

			intent, err := a.publicPay.CreateIntent(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			success("Payment %s opened", intent.PaymentIntentID)
			info("Client secret: %s", intent.ClientSecret)
			if a.cfg.StripePublishableKey != "" {
				info("Confirm the card with publishable key %s", a.cfg.StripePublishableKey)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&createIntent, "create-intent", false, "open the payment with the card processor")
	return cmd
}

func formatMinutes(minutes int) string {
	return fmt.Sprintf("%dh %dm", minutes/60, minutes%60)
}
