package main

import (
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/marketplace/core/cmd/api/commands"
)

// @title Marketplace API
// @version 1.0
// @description Minimal marketplace REST API: products, orders, health.

// @host localhost:8080
// @BasePath /api

func main() {
	rootCmd := &cobra.Command{
		Use:   "marketplace",
		Short: "Marketplace API Server",
		Long:  `Marketplace is a minimal REST API for product listings and orders, persisted to a single JSON document on disk.`,
	}

	// Add commands
	rootCmd.AddCommand(commands.NewServeCommand())
	rootCmd.AddCommand(commands.NewSeedCommand())
	rootCmd.AddCommand(commands.NewVersionCommand())

	// Execute root command
	if err := rootCmd.Execute(); err != nil {
		log.Printf("Command execution failed: %v", err)
		os.Exit(1)
	}
}
