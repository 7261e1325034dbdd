// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	httpclient "github.com/canonical/property-service/client/http"
	"github.com/canonical/property-service/internal/types"
	"github.com/canonical/property-service/pkg/rent"
)

var rentCmd = &cobra.Command{
	Use:   "rent",
	Short: "Inspect and pay rent",
}

var rentListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the caller's rent obligations",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newAPIClient(cmd.Context())
		if err != nil {
			return err
		}

		var list []*types.RentStatement
		resp, err := c.client.ListRent(cmd.Context())
		if err := handleResponse(resp, err, &list); err != nil {
			return err
		}

		return render(cmd, list, func(w io.Writer) {
			fmt.Fprintf(w, "ID\tPROPERTY\tAMOUNT\tDUE\tSTATUS\tLANDLORD\n")
			for _, s := range list {
				status := string(s.Status)
				if s.Overdue {
					status += " (overdue)"
				}
				fmt.Fprintf(w, "%s\t%s\t%.2f\t%s\t%s\t%s\n", s.ID, s.PropertyTitle, s.Amount, s.DueDate.Format("2006-01-02"), status, s.Landlord.Name)
			}
		})
	},
}

var rentPayCmd = &cobra.Command{
	Use:   "pay <obligation-id>",
	Short: "Pay a pending rent obligation",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		method, _ := cmd.Flags().GetString("method")

		c, err := newAPIClient(cmd.Context())
		if err != nil {
			return err
		}

		o := new(types.RentObligation)
		resp, err := c.client.PayRent(cmd.Context(), args[0], httpclient.PayRentRequest{Method: optional(method)})
		if err := handleResponse(resp, err, o); err != nil {
			return err
		}

		return render(cmd, o, func(w io.Writer) {
			fmt.Fprintf(w, "ID\tAMOUNT\tSTATUS\tTRANSACTION\n")
			fmt.Fprintf(w, "%s\t%.2f\t%s\t%s\n", o.ID, o.Amount, o.Status, o.TransactionID)
		})
	},
}

func init() {
	rentPayCmd.Flags().String("method", rent.DefaultPaymentMethod, "credit_card, debit_card or bank_transfer")

	rentCmd.AddCommand(rentListCmd, rentPayCmd)
	rootCmd.AddCommand(rentCmd)
}
