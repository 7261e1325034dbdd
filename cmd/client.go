// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"

	httpclient "github.com/canonical/property-service/client/http"
	"github.com/canonical/property-service/pkg/authentication"
)

// apiClient drives the generated /api/v0 client
type apiClient struct {
	client *httpclient.Client
}

// newAPIClient picks the credentials in order: an explicit token, client
// credentials against the issuer's token endpoint, none
func newAPIClient(ctx context.Context) (*apiClient, error) {
	doer := http.DefaultClient

	switch {
	case token != "":
		doer = oauth2.NewClient(ctx, oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token, TokenType: "Bearer"}))
	case clientID != "":
		if issuer == "" {
			return nil, fmt.Errorf("--issuer is required with --client-id")
		}

		provider, err := authentication.NewProvider(ctx, issuer)
		if err != nil {
			return nil, fmt.Errorf("failed to discover issuer: %w", err)
		}

		cfg := clientcredentials.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			TokenURL:     provider.Endpoint().TokenURL,
			Scopes:       scopes,
		}
		doer = cfg.Client(ctx)
	}

	client, err := httpclient.NewClient(
		strings.TrimSuffix(apiURL, "/"),
		httpclient.WithHTTPClient(doer),
		httpclient.WithRequestEditorFn(func(ctx context.Context, req *http.Request) error {
			req.Header.Set("Accept", "application/json")
			return nil
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create http client: %w", err)
	}

	return &apiClient{client: client}, nil
}

// handleResponse unwraps the response envelope into out, error bodies become
// errors carrying the server message
func handleResponse(resp *http.Response, err error, out any) error {
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		e := httpclient.ErrorResponse{Status: resp.StatusCode}
		if err := json.NewDecoder(resp.Body).Decode(&e); err != nil || e.Message == "" {
			e.Message = http.StatusText(resp.StatusCode)
		}
		return fmt.Errorf("%s %s: %d %s", resp.Request.Method, resp.Request.URL.Path, e.Status, e.Message)
	}

	if out == nil {
		return nil
	}

	envelope := httpclient.Envelope{Data: out}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}

// optional returns nil for the zero value so the generated client omits it
func optional[T comparable](v T) *T {
	var zero T
	if v == zero {
		return nil
	}
	return &v
}

// render prints v as JSON when asked to, otherwise hands a tab writer to text
func render(cmd *cobra.Command, v any, text func(w io.Writer)) error {
	if outputFormat == "json" {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	text(w)
	return w.Flush()
}
