package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"roomstayAdmin/internal/commands"
)

func main() {
	_ = godotenv.Load()

	rootCmd := &cobra.Command{
		Use:   `adminctl`,
		Short: `Maintenance tools for the room rental admin backend`,
	}

	rootCmd.AddCommand(
		commands.SeedCmd(),
		commands.UnseedCmd(),
		commands.FixStatusCmd(),
		commands.PruneCredentialsCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
