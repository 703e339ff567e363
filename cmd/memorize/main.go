// Package main provides the entry point for the memorize CLI application.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

var (
	version   = "0.1.0-dev"
	globalURL string
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	rootCmd := &cobra.Command{
		Use:     "memorize",
		Short:   "A quiz runner that caches question sources for offline study",
		Version: version,
	}

	rootCmd.PersistentFlags().StringVarP(&globalURL, "url", "u", "", "Question source URL (defaults to the last opened source)")

	rootCmd.AddCommand(
		newInitCmd(),
		newOpenCmd(),
		newNextCmd(),
		newPrevCmd(),
		newGotoCmd(),
		newRandomCmd(),
		newResetCmd(),
		newAnswerCmd(),
		newHistoryCmd(),
		newStatsCmd(),
		newActivityCmd(),
		newCacheCmd(),
		newEncodeCmd(),
		newValidateCmd(),
		newExplainCmd(),
	)

	return rootCmd.ExecuteContext(ctx)
}
