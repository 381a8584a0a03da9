package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/surveyscope/surveyscope/pkg/survey"
)

func newResolveCmd(configPath *string) *cobra.Command {
	var (
		surveyPath string
		score      float64
	)

	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Print the band a total score falls in",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := setup(*configPath)
			if err != nil {
				return err
			}
			s, err := e.loadSurvey(surveyPath)
			if err != nil {
				return err
			}
			band, err := s.Resolve(score)
			if err != nil {
				return err
			}
			fmt.Fprintf(os.Stdout, "%s %s\n", band.Msg, band)
			e.logger.Debug("score resolved", "score", survey.FormatNumber(score), "band", band.Msg)
			return nil
		},
	}

	cmd.Flags().StringVar(&surveyPath, "survey", "", "Path to survey document (default: survey.path from config)")
	cmd.Flags().Float64Var(&score, "score", 0, "Total score to resolve (inf and -inf accepted)")
	_ = cmd.MarkFlagRequired("score")

	return cmd
}
