// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	httpclient "github.com/canonical/property-service/client/http"
	"github.com/canonical/property-service/internal/types"
	"github.com/canonical/property-service/pkg/applications"
)

var applicationCmd = &cobra.Command{
	Use:   "application",
	Short: "Submit and review rental applications",
}

var applicationSubmitCmd = &cobra.Command{
	Use:   "submit <property-id>",
	Short: "Apply to rent a property",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		message, _ := cmd.Flags().GetString("message")

		c, err := newAPIClient(cmd.Context())
		if err != nil {
			return err
		}

		a := new(types.Application)
		req := httpclient.SubmitApplicationRequest{PropertyId: args[0], Message: optional(message)}
		resp, err := c.client.SubmitApplication(cmd.Context(), req)
		if err := handleResponse(resp, err, a); err != nil {
			return err
		}

		return render(cmd, a, func(w io.Writer) {
			fmt.Fprintf(w, "ID\tPROPERTY\tSTATUS\n")
			fmt.Fprintf(w, "%s\t%s\t%s\n", a.ID, a.PropertyID, a.Status)
		})
	},
}

var applicationListCmd = &cobra.Command{
	Use:   "list",
	Short: "List applications, landlords see the ones for their properties",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		propertyID, _ := cmd.Flags().GetString("property-id")

		c, err := newAPIClient(cmd.Context())
		if err != nil {
			return err
		}

		var list []*types.Application
		params := &httpclient.ListApplicationsParams{PropertyId: optional(propertyID)}
		resp, err := c.client.ListApplications(cmd.Context(), params)
		if err := handleResponse(resp, err, &list); err != nil {
			return err
		}

		return render(cmd, list, func(w io.Writer) {
			fmt.Fprintf(w, "ID\tPROPERTY\tTENANT\tSTATUS\tSUBMITTED\n")
			for _, a := range list {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", a.ID, a.PropertyID, a.TenantID, a.Status, a.CreatedAt.Format("2006-01-02"))
			}
		})
	},
}

var applicationReviewCmd = &cobra.Command{
	Use:   "review <application-id>",
	Short: "Approve or reject a pending application",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		decision, _ := cmd.Flags().GetString("decision")

		c, err := newAPIClient(cmd.Context())
		if err != nil {
			return err
		}

		result := new(applications.ReviewResult)
		req := httpclient.ReviewApplicationRequest{Decision: decision}
		resp, err := c.client.ReviewApplication(cmd.Context(), args[0], req)
		if err := handleResponse(resp, err, result); err != nil {
			return err
		}

		return render(cmd, result, func(w io.Writer) {
			fmt.Fprintf(w, "Application:\t%s\n", result.Application.ID)
			fmt.Fprintf(w, "Status:\t%s\n", result.Application.Status)
			fmt.Fprintf(w, "Outcome:\t%s\n", result.Outcome)
			if result.RentObligation != nil {
				fmt.Fprintf(w, "First rent due:\t%s (%.2f)\n", result.RentObligation.DueDate.Format("2006-01-02"), result.RentObligation.Amount)
			}
			if result.MissingLedgerEntry {
				fmt.Fprintf(w, "Warning:\tno rent obligation was recorded, create it manually\n")
			}
		})
	},
}

func init() {
	applicationSubmitCmd.Flags().String("message", "", "Message to the landlord")

	applicationListCmd.Flags().String("property-id", "", "Only list applications for this property (landlords)")

	applicationReviewCmd.Flags().String("decision", "", "approved or rejected")
	_ = applicationReviewCmd.MarkFlagRequired("decision")

	applicationCmd.AddCommand(applicationSubmitCmd, applicationListCmd, applicationReviewCmd)
	rootCmd.AddCommand(applicationCmd)
}
