package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/surveyscope/surveyscope/pkg/surface"
)

func newValidateCmd(configPath *string) *cobra.Command {
	var surveyPath string

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check that a survey's bands partition its achievable scores",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := setup(*configPath)
			if err != nil {
				return err
			}
			s, err := e.loadSurvey(surveyPath)
			if err != nil {
				return err
			}
			surface.RenderSurveySummary(os.Stdout, s)
			fmt.Fprintln(os.Stdout, "OK")
			return nil
		},
	}

	cmd.Flags().StringVar(&surveyPath, "survey", "", "Path to survey document (default: survey.path from config)")

	return cmd
}
