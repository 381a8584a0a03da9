package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/surveyscope/surveyscope/pkg/survey"
)

func newHistoryCmd(configPath *string) *cobra.Command {
	var (
		surveyID string
		limit    int
	)

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recorded outcomes",
		Long:  `Lists outcomes recorded with --save, newest first. With --survey-id, also prints how many outcomes fell in each band.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHistory(cmd.Context(), *configPath, surveyID, limit)
		},
	}

	cmd.Flags().StringVar(&surveyID, "survey-id", "", "Only list outcomes of this survey")
	cmd.Flags().IntVar(&limit, "limit", 20, "Maximum number of outcomes to list (0 for all)")

	return cmd
}

func runHistory(ctx context.Context, configPath, surveyID string, limit int) error {
	e, err := setup(configPath)
	if err != nil {
		return err
	}
	svc, closeDB, err := e.openResults(ctx)
	if err != nil {
		return err
	}
	if svc == nil {
		return fmt.Errorf("results database is disabled (results.driver: none)")
	}
	defer closeDB()

	rows, err := svc.List(ctx, surveyID, limit)
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		fmt.Fprintln(os.Stdout, "No recorded outcomes.")
		return nil
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "SUBMITTED\tSURVEY\tRESPONDENT\tSCORE\tBAND")
	for _, r := range rows {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
			r.SubmittedAt.Format("2006-01-02 15:04"), r.SurveyID, firstNonEmpty(r.Respondent, "-"),
			survey.FormatNumber(r.Score), r.Band)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	if surveyID == "" {
		return nil
	}
	counts, err := svc.BandCounts(ctx, surveyID)
	if err != nil {
		return err
	}
	fmt.Fprintln(os.Stdout)
	fmt.Fprintln(os.Stdout, "Bands:")
	for _, c := range counts {
		fmt.Fprintf(os.Stdout, "  %-20s %d\n", c.Band, c.Count)
	}
	return nil
}
