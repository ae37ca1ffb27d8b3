// Package main provides the entry point for the Mission Reporter CLI and HTTP API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "mission_agent",
	Short: "Mission Reporter document pipeline",
	Long:  "Mission Reporter renders field mission records into formatted report documents, individually or as date-ranged batch archives, online or fully offline.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
