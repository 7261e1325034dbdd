// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"context"
	"os"

	"github.com/spf13/cobra"
)

var (
	apiURL       string
	token        string
	issuer       string
	clientID     string
	clientSecret string
	scopes       []string
	outputFormat string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "app",
	Short: "Property Service",
	Long:  `Property Service CLI for running the server and managing properties, applications and rent.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.ExecuteContext(context.Background())
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&apiURL, "api-url", "http://localhost:8080", "Property service base URL")
	rootCmd.PersistentFlags().StringVar(&token, "token", "", "Bearer token, takes precedence over client credentials")
	rootCmd.PersistentFlags().StringVar(&issuer, "issuer", "", "OIDC issuer used to discover the token endpoint")
	rootCmd.PersistentFlags().StringVar(&clientID, "client-id", "", "OAuth2 client id for the client credentials flow")
	rootCmd.PersistentFlags().StringVar(&clientSecret, "client-secret", "", "OAuth2 client secret for the client credentials flow")
	rootCmd.PersistentFlags().StringSliceVar(&scopes, "scopes", nil, "Scopes requested with client credentials")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "output", "o", "text", "Output format (text or json)")
}
