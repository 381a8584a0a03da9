package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/surveyscope/surveyscope/internal/prompt"
	"github.com/surveyscope/surveyscope/pkg/respondent"
)

func newTakeCmd(configPath *string) *cobra.Command {
	var (
		opts takeOpts
		age  int
	)

	cmd := &cobra.Command{
		Use:   "take",
		Short: "Answer a survey interactively",
		Long:  `Shows every question with numbered responses, reads a choice per question and prints the resulting band.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("age") {
				opts.respondent.Age = &age
			}
			opts.zeroBasedSet = cmd.Flags().Changed("zero-based")
			return runTake(cmd.Context(), *configPath, opts)
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.surveyPath, "survey", "", "Path to survey document (default: survey.path from config)")
	f.BoolVar(&opts.zeroBased, "zero-based", false, "Number responses from 0 instead of 1")
	f.StringVar(&opts.sep, "sep", "", "Separator between index and text (default: survey.separator from config)")
	f.StringVar(&opts.respondent.Name, "name", "", "Respondent name")
	f.IntVar(&age, "age", 0, "Respondent age")
	f.StringVar(&opts.respondent.Email, "email", "", "Respondent email")
	f.StringVar(&opts.respondent.Address, "address", "", "Respondent address")
	f.StringVar(&opts.respondent.Telephone, "telephone", "", "Respondent telephone")
	f.BoolVar(&opts.save, "save", false, "Store the submission and record the outcome")
	f.StringVar(&opts.output, "output", "", "Output format: text, json or markdown (default: output.format from config)")

	return cmd
}

type takeOpts struct {
	surveyPath   string
	zeroBased    bool
	zeroBasedSet bool
	sep          string
	respondent   respondent.Respondent
	save         bool
	output       string
}

func runTake(ctx context.Context, configPath string, opts takeOpts) error {
	e, err := setup(configPath)
	if err != nil {
		return err
	}
	s, err := e.loadSurvey(opts.surveyPath)
	if err != nil {
		return err
	}

	oneBased := e.cfg.Survey.OneBasedIndex
	if opts.zeroBasedSet {
		oneBased = !opts.zeroBased
	}
	p := &prompt.Prompter{
		In:       os.Stdin,
		Out:      os.Stdout,
		OneBased: oneBased,
		Sep:      firstNonEmpty(opts.sep, e.cfg.Survey.Separator),
		Logger:   e.logger,
	}
	if s.Title() != "" {
		fmt.Fprintln(os.Stdout, s.Title())
		fmt.Fprintln(os.Stdout)
	}

	choices, err := p.Run(ctx, s)
	if err != nil {
		return err
	}
	sub, err := respondent.NewSubmission(opts.respondent, s, choices)
	if err != nil {
		return err
	}
	fmt.Fprintln(os.Stdout)
	return e.finish(ctx, sub, opts.output, opts.save)
}
