package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newHistoryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "history",
		Short: "List recorded answers",
		Long: `List recorded answers, oldest first. With --url only the answers for
that source are shown; otherwise the full history across all sources.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDeps(func(d *Deps) error {
				entries, err := d.History.List(cmd.Context(), globalURL)
				if err != nil {
					return err
				}
				if len(entries) == 0 {
					fmt.Println("No answers recorded yet.")
					return nil
				}
				for _, e := range entries {
					verdict := "wrong"
					if e.Right {
						verdict = "right"
					}
					fmt.Printf("%s  %-5s  question %d  [%s]  %s\n",
						e.Date.Format("2006-01-02 15:04"), verdict, e.QuestID+1,
						strings.Join(e.Selected, ", "), e.URL)
				}
				return nil
			})
		},
	}
}

func newStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show answer statistics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDeps(func(d *Deps) error {
				stats, err := d.History.Stats(cmd.Context(), globalURL)
				if err != nil {
					return err
				}
				fmt.Printf("Answered: %d\n", stats.Total)
				fmt.Printf("Right:    %d\n", stats.Right)
				fmt.Printf("Wrong:    %d\n", stats.Wrong)
				if stats.Total > 0 {
					fmt.Printf("Accuracy: %.1f%%\n", stats.Accuracy()*100)
				}
				return nil
			})
		},
	}
}

func newActivityCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "activity",
		Short: "Show recent activity log entries",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDeps(func(d *Deps) error {
				entries, err := d.Store.ListActivity(cmd.Context(), limit)
				if err != nil {
					return err
				}
				if len(entries) == 0 {
					fmt.Println("No activity recorded yet.")
					return nil
				}
				for _, e := range entries {
					fmt.Printf("%s  %-10s  %s  %s\n",
						e.CreatedAt.Format("2006-01-02 15:04:05"), e.Action, e.URL, e.Details)
				}
				return nil
			})
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "Maximum number of entries to show")
	return cmd
}
