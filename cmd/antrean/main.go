package main

import (
	"os"

	"github.com/spf13/cobra"

	"antrean/internal/interfaces/cli/migrate"
	"antrean/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "antrean",
		Short: "Antrean - hospital outpatient queue manager",
		Long:  `Antrean manages outpatient registration queues: patients book doctor visit-time slots and receive specialization-prefixed queue numbers.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
