// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	httpclient "github.com/canonical/property-service/client/http"
	"github.com/canonical/property-service/internal/types"
)

var maintenanceCmd = &cobra.Command{
	Use:   "maintenance",
	Short: "Raise and track maintenance requests",
}

var maintenanceSubmitCmd = &cobra.Command{
	Use:   "submit <property-id>",
	Short: "Report an issue with the rented property",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		title, _ := cmd.Flags().GetString("title")
		description, _ := cmd.Flags().GetString("description")
		category, _ := cmd.Flags().GetString("category")
		priority, _ := cmd.Flags().GetString("priority")

		c, err := newAPIClient(cmd.Context())
		if err != nil {
			return err
		}

		req := httpclient.SubmitMaintenanceRequest{
			PropertyId:  args[0],
			Title:       title,
			Description: optional(description),
			Category:    optional(category),
			Priority:    optional(priority),
		}

		m := new(types.MaintenanceRequest)
		resp, err := c.client.SubmitMaintenanceRequest(cmd.Context(), req)
		if err := handleResponse(resp, err, m); err != nil {
			return err
		}

		return render(cmd, m, func(w io.Writer) {
			fmt.Fprintf(w, "ID\tPROPERTY\tPRIORITY\tSTATUS\n")
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", m.ID, m.PropertyID, m.Priority, m.Status)
		})
	},
}

var maintenanceListCmd = &cobra.Command{
	Use:   "list",
	Short: "List maintenance requests, landlords see the ones for their properties",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		propertyID, _ := cmd.Flags().GetString("property-id")

		c, err := newAPIClient(cmd.Context())
		if err != nil {
			return err
		}

		var list []*types.MaintenanceRequest
		params := &httpclient.ListMaintenanceRequestsParams{PropertyId: optional(propertyID)}
		resp, err := c.client.ListMaintenanceRequests(cmd.Context(), params)
		if err := handleResponse(resp, err, &list); err != nil {
			return err
		}

		return render(cmd, list, func(w io.Writer) {
			fmt.Fprintf(w, "ID\tPROPERTY\tTITLE\tPRIORITY\tSTATUS\n")
			for _, m := range list {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", m.ID, m.PropertyID, m.Title, m.Priority, m.Status)
			}
		})
	},
}

var maintenanceUpdateCmd = &cobra.Command{
	Use:   "update <request-id>",
	Short: "Move a maintenance request along",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		status, _ := cmd.Flags().GetString("status")

		c, err := newAPIClient(cmd.Context())
		if err != nil {
			return err
		}

		m := new(types.MaintenanceRequest)
		resp, err := c.client.UpdateMaintenanceStatus(cmd.Context(), args[0], httpclient.MaintenanceStatusRequest{Status: status})
		if err := handleResponse(resp, err, m); err != nil {
			return err
		}

		return render(cmd, m, func(w io.Writer) {
			fmt.Fprintf(w, "ID\tSTATUS\n")
			fmt.Fprintf(w, "%s\t%s\n", m.ID, m.Status)
		})
	},
}

func init() {
	maintenanceSubmitCmd.Flags().String("title", "", "Short description of the issue")
	maintenanceSubmitCmd.Flags().String("description", "", "Details")
	maintenanceSubmitCmd.Flags().String("category", "", "plumbing, electrical, hvac, appliances or other")
	maintenanceSubmitCmd.Flags().String("priority", "", "low, medium or high")
	_ = maintenanceSubmitCmd.MarkFlagRequired("title")

	maintenanceListCmd.Flags().String("property-id", "", "Only list requests for this property (landlords)")

	maintenanceUpdateCmd.Flags().String("status", "", "pending, in_progress or completed")
	_ = maintenanceUpdateCmd.MarkFlagRequired("status")

	maintenanceCmd.AddCommand(maintenanceSubmitCmd, maintenanceListCmd, maintenanceUpdateCmd)
	rootCmd.AddCommand(maintenanceCmd)
}
