package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/jonathan/mission-reporter/internal/templates"
)

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Verify template resolution works offline and online",
	Long: `Checks that the embedded fallback template decodes into a valid archive and,
when a base URL is configured, that the default template asset can be fetched.
Exits non-zero only if the embedded fallback itself is unusable.`,
	RunE: runVerify,
}

var verifyAssetBaseURL string

func init() {
	verifyCmd.Flags().StringVar(&verifyAssetBaseURL, "asset-base-url", "", "Base URL serving the default template asset (optional, defaults to ASSET_BASE_URL env var)")
	rootCmd.AddCommand(verifyCmd)
}

func runVerify(_ *cobra.Command, _ []string) error {
	baseURL := verifyAssetBaseURL
	if baseURL == "" {
		baseURL = os.Getenv("ASSET_BASE_URL")
	}

	// NewResolver decodes and opens the embedded fallback.
	resolver, err := templates.NewResolver(baseURL, nil)
	if err != nil {
		return fmt.Errorf("embedded fallback template is unusable: %w", err)
	}
	_, _ = fmt.Fprintf(os.Stdout, "Embedded fallback: OK (%d bytes)\n", len(resolver.Embedded()))

	if baseURL == "" {
		_, _ = fmt.Fprintln(os.Stdout, "Default asset: skipped (no base URL configured)")
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	size, err := resolver.CheckDefaultAsset(ctx)
	if err != nil {
		_, _ = fmt.Fprintf(os.Stdout, "Default asset: unavailable (%v), renders will use the embedded fallback\n", err)
		return nil
	}
	_, _ = fmt.Fprintf(os.Stdout, "Default asset: OK (%d bytes from %s)\n", size, baseURL)
	return nil
}
