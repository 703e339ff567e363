package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/goodluck-cu/a-tool-of-memorize/internal/infrastructure/config"
	"github.com/goodluck-cu/a-tool-of-memorize/internal/infrastructure/store/sqlite"
)

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Initialize memorize in the current directory",
		Long: `Create the .memorize directory with a default configuration file and
an empty local store. Safe to rerun only if the config file was removed.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cwd, err := os.Getwd()
			if err != nil {
				return fmt.Errorf("getting working directory: %w", err)
			}

			if err := config.WriteDefault(cwd); err != nil {
				return err
			}

			cfg, err := config.Load(cwd)
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}

			dbPath := cfg.DatabasePath(cwd)
			if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
				return fmt.Errorf("creating data directory: %w", err)
			}

			repo, err := sqlite.NewRepository(config.StoreConfig{Path: dbPath})
			if err != nil {
				return fmt.Errorf("opening store: %w", err)
			}
			defer repo.Close()

			if err := repo.EnsureSchema(context.Background()); err != nil {
				return fmt.Errorf("ensuring store schema: %w", err)
			}

			fmt.Printf("Initialized memorize in %s\n", filepath.Join(cwd, config.DefaultConfigDir))
			return nil
		},
	}
}
