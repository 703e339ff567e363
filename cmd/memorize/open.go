package main

import (
	"github.com/spf13/cobra"
)

func newOpenCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "open <url>",
		Short: "Load a question source and show the current question",
		Long: `Load a question source by URL, relative to the configured base URL.
The list is fetched from the network when a newer version exists and
served from the local cache otherwise. The source becomes the default
for subsequent commands.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDeps(func(d *Deps) error {
				outcome, err := d.Loader.Handle(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				d.rememberURL(outcome.Result.ResolvedURL)
				printOutcome(outcome)
				return nil
			})
		},
	}
}
