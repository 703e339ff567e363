package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newExplainCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "explain",
		Short: "Explain the current question with an LLM",
		Long: `Ask the configured OpenAI model to explain the current question and
its correct answer. Explanations are cached in the local store, so each
question is only sent to the model once per source.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDeps(func(d *Deps) error {
				explain, err := d.newExplainHandler()
				if err != nil {
					return err
				}

				outcome, q, err := loadCurrent(cmd.Context(), d)
				if err != nil {
					return err
				}

				response, fromCache, err := explain.Handle(cmd.Context(), outcome.Result.ResolvedURL, outcome.Progress.Current(), q)
				if err != nil {
					return err
				}

				if fromCache {
					fmt.Println("(cached explanation)")
				}
				fmt.Println(response)
				return nil
			})
		},
	}
}
