// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	httpclient "github.com/canonical/property-service/client/http"
	"github.com/canonical/property-service/internal/types"
	"github.com/canonical/property-service/pkg/properties"
)

var propertyCmd = &cobra.Command{
	Use:   "property",
	Short: "Manage properties",
}

var propertyCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "List a new property",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		title, _ := cmd.Flags().GetString("title")
		address, _ := cmd.Flags().GetString("address")
		description, _ := cmd.Flags().GetString("description")
		rent, _ := cmd.Flags().GetFloat64("rent")
		status, _ := cmd.Flags().GetString("status")

		c, err := newAPIClient(cmd.Context())
		if err != nil {
			return err
		}

		req := httpclient.CreatePropertyRequest{
			Title:       title,
			Address:     address,
			Description: optional(description),
			Rent:        &rent,
			Status:      optional(status),
		}

		p := new(types.Property)
		resp, err := c.client.CreateProperty(cmd.Context(), req)
		if err := handleResponse(resp, err, p); err != nil {
			return err
		}

		return render(cmd, p, func(w io.Writer) {
			fmt.Fprintf(w, "ID\tDISPLAY ID\tTITLE\tSTATUS\n")
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", p.ID, p.DisplayID, p.Title, p.Status)
		})
	},
}

var propertyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the properties visible to the caller",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		page, _ := cmd.Flags().GetInt64("page")
		size, _ := cmd.Flags().GetInt64("size")

		c, err := newAPIClient(cmd.Context())
		if err != nil {
			return err
		}

		var list []*types.Property
		params := &httpclient.ListPropertiesParams{Page: optional(page), Size: optional(size)}
		resp, err := c.client.ListProperties(cmd.Context(), params)
		if err := handleResponse(resp, err, &list); err != nil {
			return err
		}

		return render(cmd, list, func(w io.Writer) {
			fmt.Fprintf(w, "ID\tDISPLAY ID\tTITLE\tRENT\tSTATUS\n")
			for _, p := range list {
				fmt.Fprintf(w, "%s\t%s\t%s\t%.2f\t%s\n", p.ID, p.DisplayID, p.Title, p.Rent, p.Status)
			}
		})
	},
}

var propertyDeleteCmd = &cobra.Command{
	Use:   "delete <property-id>",
	Short: "Delete a vacant property",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newAPIClient(cmd.Context())
		if err != nil {
			return err
		}

		resp, err := c.client.DeleteProperty(cmd.Context(), args[0])
		if err := handleResponse(resp, err, nil); err != nil {
			return err
		}

		cmd.Printf("Deleted property %s\n", args[0])
		return nil
	},
}

var propertyRemoveTenantCmd = &cobra.Command{
	Use:   "remove-tenant <property-id>",
	Short: "Unbind the tenant of a property",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newAPIClient(cmd.Context())
		if err != nil {
			return err
		}

		p := new(types.Property)
		resp, err := c.client.RemovePropertyTenant(cmd.Context(), args[0])
		if err := handleResponse(resp, err, p); err != nil {
			return err
		}

		return render(cmd, p, func(w io.Writer) {
			fmt.Fprintf(w, "ID\tSTATUS\n")
			fmt.Fprintf(w, "%s\t%s\n", p.ID, p.Status)
		})
	},
}

var propertyVerifyCmd = &cobra.Command{
	Use:   "verify <display-id>",
	Short: "Look up a property by its public display id",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newAPIClient(cmd.Context())
		if err != nil {
			return err
		}

		v := new(properties.Verification)
		resp, err := c.client.VerifyProperty(cmd.Context(), args[0])
		if err := handleResponse(resp, err, v); err != nil {
			return err
		}

		return render(cmd, v, func(w io.Writer) {
			fmt.Fprintf(w, "Display ID:\t%s\n", v.DisplayID)
			fmt.Fprintf(w, "Status:\t%s\n", v.Status)
			fmt.Fprintf(w, "Title:\t%s\n", v.Title)
			fmt.Fprintf(w, "Address:\t%s\n", v.Address)
			fmt.Fprintf(w, "Rent:\t%.2f\n", v.Rent)
			fmt.Fprintf(w, "Landlord:\t%s <%s>\n", v.Landlord.Name, v.Landlord.Email)
		})
	},
}

var propertyUpdateCmd = &cobra.Command{
	Use:   "update <property-id>",
	Short: "Change the listing details of a property",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		req := httpclient.UpdatePropertyRequest{}
		flags := cmd.Flags()

		if flags.Changed("title") {
			v, _ := flags.GetString("title")
			req.Title = &v
		}
		if flags.Changed("address") {
			v, _ := flags.GetString("address")
			req.Address = &v
		}
		if flags.Changed("description") {
			v, _ := flags.GetString("description")
			req.Description = &v
		}
		if flags.Changed("rent") {
			v, _ := flags.GetFloat64("rent")
			req.Rent = &v
		}
		if flags.Changed("status") {
			v, _ := flags.GetString("status")
			req.Status = &v
		}

		c, err := newAPIClient(cmd.Context())
		if err != nil {
			return err
		}

		p := new(types.Property)
		resp, err := c.client.UpdateProperty(cmd.Context(), args[0], req)
		if err := handleResponse(resp, err, p); err != nil {
			return err
		}

		return render(cmd, p, func(w io.Writer) {
			fmt.Fprintf(w, "ID\tTITLE\tRENT\tSTATUS\n")
			fmt.Fprintf(w, "%s\t%s\t%.2f\t%s\n", p.ID, p.Title, p.Rent, p.Status)
		})
	},
}

var propertySummaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Show portfolio counts and monthly income",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newAPIClient(cmd.Context())
		if err != nil {
			return err
		}

		sum := new(properties.Summary)
		resp, err := c.client.GetPropertySummary(cmd.Context())
		if err := handleResponse(resp, err, sum); err != nil {
			return err
		}

		return render(cmd, sum, func(w io.Writer) {
			fmt.Fprintf(w, "Total:\t%d\n", sum.Total)
			fmt.Fprintf(w, "Available:\t%d\n", sum.Available)
			fmt.Fprintf(w, "Occupied:\t%d\n", sum.Occupied)
			fmt.Fprintf(w, "Maintenance:\t%d\n", sum.Maintenance)
			fmt.Fprintf(w, "Monthly income:\t%.2f\n", sum.MonthlyIncome)
		})
	},
}

func init() {
	propertyCreateCmd.Flags().String("title", "", "Property title")
	propertyCreateCmd.Flags().String("address", "", "Property address")
	propertyCreateCmd.Flags().String("description", "", "Property description")
	propertyCreateCmd.Flags().Float64("rent", 0, "Monthly rent")
	propertyCreateCmd.Flags().String("status", string(types.PropertyAvailable), "Initial status (available or maintenance)")
	_ = propertyCreateCmd.MarkFlagRequired("title")
	_ = propertyCreateCmd.MarkFlagRequired("address")

	propertyListCmd.Flags().Int64("page", 0, "Page number, starting at 1")
	propertyListCmd.Flags().Int64("size", 0, "Page size")

	propertyUpdateCmd.Flags().String("title", "", "Property title")
	propertyUpdateCmd.Flags().String("address", "", "Property address")
	propertyUpdateCmd.Flags().String("description", "", "Property description")
	propertyUpdateCmd.Flags().Float64("rent", 0, "Monthly rent")
	propertyUpdateCmd.Flags().String("status", "", "available or maintenance")

	propertyCmd.AddCommand(
		propertyCreateCmd,
		propertyListCmd,
		propertyUpdateCmd,
		propertySummaryCmd,
		propertyDeleteCmd,
		propertyRemoveTenantCmd,
		propertyVerifyCmd,
	)
	rootCmd.AddCommand(propertyCmd)
}
