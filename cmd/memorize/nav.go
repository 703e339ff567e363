package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/goodluck-cu/a-tool-of-memorize/internal/application/handlers"
	"github.com/goodluck-cu/a-tool-of-memorize/internal/domain/entities"
	"github.com/goodluck-cu/a-tool-of-memorize/internal/domain/services"
)

// runNav loads the active source, applies a position change and prints
// the question at the new position. A failed checkpoint write downgrades
// to a warning so navigation keeps working offline-degraded.
func runNav(ctx context.Context, d *Deps, move func(ctx context.Context, p *services.Progress) error) error {
	url, err := d.resolveURL()
	if err != nil {
		return err
	}

	outcome, err := d.Loader.Handle(ctx, url)
	if err != nil {
		return err
	}
	d.rememberURL(outcome.Result.ResolvedURL)

	if err := move(ctx, outcome.Progress); err != nil {
		var storeErr *entities.StoreError
		if !errors.As(err, &storeErr) {
			return err
		}
		fmt.Fprintf(os.Stderr, "warning: %v\n", err)
	}

	printOutcome(outcome)
	return nil
}

func newNavCmd(use, short string, move func(ctx context.Context, p *services.Progress) error) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDeps(func(d *Deps) error {
				return runNav(cmd.Context(), d, move)
			})
		},
	}
}

func newNextCmd() *cobra.Command {
	return newNavCmd("next", "Advance to the next question", func(ctx context.Context, p *services.Progress) error {
		return p.Next(ctx)
	})
}

func newPrevCmd() *cobra.Command {
	return newNavCmd("prev", "Go back to the previous question", func(ctx context.Context, p *services.Progress) error {
		return p.Previous(ctx)
	})
}

func newRandomCmd() *cobra.Command {
	return newNavCmd("random", "Jump to a random question", func(ctx context.Context, p *services.Progress) error {
		return p.Random(ctx)
	})
}

func newResetCmd() *cobra.Command {
	return newNavCmd("reset", "Return to the first question", func(ctx context.Context, p *services.Progress) error {
		return p.Reset(ctx)
	})
}

func newGotoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "goto <number>",
		Short: "Jump to a question by its one-based number",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			number, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("parsing question number %q: %w", args[0], err)
			}
			return withDeps(func(d *Deps) error {
				return runNav(cmd.Context(), d, func(ctx context.Context, p *services.Progress) error {
					return p.Goto(ctx, number-1)
				})
			})
		},
	}
}

// loadCurrent resolves the active source and returns its load outcome
// together with the question at the current position.
func loadCurrent(ctx context.Context, d *Deps) (*handlers.LoadOutcome, *entities.Question, error) {
	url, err := d.resolveURL()
	if err != nil {
		return nil, nil, err
	}
	outcome, err := d.Loader.Handle(ctx, url)
	if err != nil {
		return nil, nil, err
	}
	d.rememberURL(outcome.Result.ResolvedURL)

	q := outcome.CurrentQuestion()
	if q == nil {
		return nil, nil, fmt.Errorf("source %s has no questions", outcome.Result.ResolvedURL)
	}
	return outcome, q, nil
}
