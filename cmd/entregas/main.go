package main

import (
	"os"

	"github.com/spf13/cobra"

	"entregas/internal/interfaces/cli/migrate"
	"entregas/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "entregas",
		Short: "Entregas - benefit delivery tracking service",
		Long:  `Entregas tracks welfare benefit deliveries to workers: benefit and period catalogs, delivery lifecycle, audit log and reporting.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
