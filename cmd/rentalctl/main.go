package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func main() {
	_ = godotenv.Load()

	rootCmd := &cobra.Command{
		Use:   "rentalctl",
		Short: "Operator tasks for the rental manager",
	}

	rootCmd.AddCommand(
		migrateCmd(),
		reconcileCmd(),
		roomCmd(),
		reportCmd(),
		tokenCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
