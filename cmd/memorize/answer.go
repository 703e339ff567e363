package main

import (
	"github.com/spf13/cobra"
)

func newAnswerCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "answer <value>...",
		Short: "Submit an answer for the current question",
		Long: `Submit one or more option keys (or true/false for judge questions)
as the answer to the current question. Multi-answer questions are graded
in order, so submit the values in the expected sequence.`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDeps(func(d *Deps) error {
				outcome, q, err := loadCurrent(cmd.Context(), d)
				if err != nil {
					return err
				}

				graded, err := d.Answers.Handle(cmd.Context(), outcome.Result.ResolvedURL, outcome.Progress.Current(), q, args, 0)
				if err != nil {
					return err
				}

				printAnswer(q, graded)
				return nil
			})
		},
	}
}
