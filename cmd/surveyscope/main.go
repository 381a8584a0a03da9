// Package main provides the surveyscope CLI entry point.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	var configPath string

	rootCmd := &cobra.Command{
		Use:   "surveyscope",
		Short: "Take, validate and score banded surveys",
		Long: `Surveyscope runs questionnaires whose total score is mapped to an outcome
band. Survey documents are validated so that the bands cover every
achievable total score exactly once.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config file (default: search for .surveyscope/config.yaml)")

	rootCmd.AddCommand(
		newTakeCmd(&configPath),
		newScoreCmd(&configPath),
		newValidateCmd(&configPath),
		newResolveCmd(&configPath),
		newHistoryCmd(&configPath),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
