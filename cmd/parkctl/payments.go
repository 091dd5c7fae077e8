package main

import (
	"github.com/spf13/cobra"

	"github.com/jrsteele09/parkctl/payments"
)

func paymentsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "payments",
		Short: "Open payments with the card processor",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.requireAuth()
		},
	}

	cmd.AddCommand(paymentsIntentCmd(a))
	return cmd
}

func paymentsIntentCmd(a *app) *cobra.Command {
	var amount int64
	var currency, description string

	cmd := &cobra.Command{
		Use:   "intent",
		Short: "Create a payment intent on behalf of a customer",
		RunE: func(cmd *cobra.Command, args []string) error {
			intent, err := a.payments.CreateIntent(cmd.Context(), payments.IntentRequest{
				Amount:      amount,
				Currency:    currency,
				Description: description,
			})
			if err != nil {
				return err
			}

			success("Payment %s opened", intent.PaymentIntentID)
			info("Client secret: %s", intent.ClientSecret)
			return nil
		},
	}

	cmd.Flags().Int64Var(&amount, "amount", 0, "amount in the currency's minor unit")
	cmd.Flags().StringVar(&currency, "currency", "USD", "three-letter currency code")
	cmd.Flags().StringVar(&description, "description", "", "statement description")
	_ = cmd.MarkFlagRequired("amount")

	return cmd
}
