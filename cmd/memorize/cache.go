package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

func newCacheCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Inspect and maintain the local question source cache",
	}

	cmd.AddCommand(newCacheStatsCmd(), newCacheCleanCmd(), newCachePreloadCmd())
	return cmd
}

func newCacheStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show cache size and age information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDeps(func(d *Deps) error {
				stats, err := d.Manager.Stats(cmd.Context())
				if err != nil {
					return err
				}
				fmt.Printf("Cached sources: %d\n", stats.TotalFiles)
				fmt.Printf("Total size:     %d bytes\n", stats.TotalSize)
				if stats.TotalFiles > 0 {
					fmt.Printf("Oldest:         %s\n", stats.OldestFile.Format(time.RFC3339))
					fmt.Printf("Newest:         %s\n", stats.NewestFile.Format(time.RFC3339))
				}
				return nil
			})
		},
	}
}

func newCacheCleanCmd() *cobra.Command {
	var maxAge time.Duration

	cmd := &cobra.Command{
		Use:   "clean",
		Short: "Remove cached sources older than the given age",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDeps(func(d *Deps) error {
				removed, err := d.Manager.Clean(cmd.Context(), maxAge)
				if err != nil {
					return err
				}
				fmt.Printf("Removed %d cached source(s)\n", removed)
				return nil
			})
		},
	}

	cmd.Flags().DurationVar(&maxAge, "max-age", 7*24*time.Hour, "Remove entries older than this duration")
	return cmd
}

func newCachePreloadCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "preload <url>...",
		Short: "Fetch sources ahead of time so they are available offline",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDeps(func(d *Deps) error {
				d.Manager.Preload(cmd.Context(), args)
				fmt.Printf("Preloaded %d source(s)\n", len(args))
				return nil
			})
		},
	}
}
