package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/surveyscope/surveyscope/pkg/respondent"
)

func newScoreCmd(configPath *string) *cobra.Command {
	var (
		surveyPath string
		answers    string
		name       string
		save       bool
		outputFmt  string
	)

	cmd := &cobra.Command{
		Use:   "score",
		Short: "Score a list of response indices without prompting",
		Long:  `Scores one 0-based response index per question, e.g. --answers 0,2,1, and prints the outcome.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScore(cmd.Context(), *configPath, scoreOpts{
				surveyPath: surveyPath,
				answers:    answers,
				name:       name,
				save:       save,
				outputFmt:  outputFmt,
			})
		},
	}

	cmd.Flags().StringVar(&surveyPath, "survey", "", "Path to survey document (default: survey.path from config)")
	cmd.Flags().StringVar(&answers, "answers", "", "Comma separated 0-based response indices (required)")
	cmd.Flags().StringVar(&name, "name", "", "Respondent name")
	cmd.Flags().BoolVar(&save, "save", false, "Store the submission and record the outcome")
	cmd.Flags().StringVar(&outputFmt, "output", "", "Output format: text, json or markdown (default: output.format from config)")
	_ = cmd.MarkFlagRequired("answers")

	return cmd
}

type scoreOpts struct {
	surveyPath string
	answers    string
	name       string
	save       bool
	outputFmt  string
}

func runScore(ctx context.Context, configPath string, opts scoreOpts) error {
	choices, err := parseAnswers(opts.answers)
	if err != nil {
		return err
	}
	e, err := setup(configPath)
	if err != nil {
		return err
	}
	s, err := e.loadSurvey(opts.surveyPath)
	if err != nil {
		return err
	}
	sub, err := respondent.NewSubmission(respondent.Respondent{Name: opts.name}, s, choices)
	if err != nil {
		return err
	}
	return e.finish(ctx, sub, opts.outputFmt, opts.save)
}
