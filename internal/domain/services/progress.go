// Package services contains the domain services: progress tracking and
// answer recording.
package services

import (
	"context"
	"log"
	"math/rand"

	"github.com/goodluck-cu/a-tool-of-memorize/internal/domain/entities"
	"github.com/goodluck-cu/a-tool-of-memorize/internal/domain/ports"
)

// Progress tracks the current position within one source's question
// list and persists a checkpoint on every change. Navigation past
// either end is a no-op. A failed checkpoint write leaves the in-memory
// position advanced and is reported as a StoreError, which callers
// treat as a warning rather than a fatal failure.
type Progress struct {
	store   ports.Store
	url     string
	total   int
	current int

	// randIntN can be swapped in tests for deterministic jumps.
	randIntN func(n int) int
}

// ResolveProgress loads the checkpoint for a source, creating and
// persisting one at position zero when none exists. A persisted
// position outside [0, total) is clamped. Read failures degrade to
// "no checkpoint"; write failures are warnings. Neither is fatal, so a
// freshly loaded question list is always usable.
func ResolveProgress(ctx context.Context, store ports.Store, url string, total int) (*Progress, error) {
	p := &Progress{
		store:    store,
		url:      url,
		total:    total,
		randIntN: rand.Intn,
	}

	cp, err := store.GetCheckpoint(ctx, url)
	if err != nil {
		log.Printf("warning: reading checkpoint for %s: %v", url, err)
		cp = nil
	}

	if cp == nil {
		if err := p.persist(ctx); err != nil {
			log.Printf("warning: %v", err)
		}
		return p, nil
	}

	p.current = clamp(cp.Current, total)
	return p, nil
}

func clamp(index, total int) int {
	if total <= 0 || index < 0 {
		return 0
	}
	if index >= total {
		return total - 1
	}
	return index
}

// URL returns the source this progress belongs to.
func (p *Progress) URL() string { return p.url }

// Current returns the zero-based current question index.
func (p *Progress) Current() int { return p.current }

// Total returns the number of questions in the source.
func (p *Progress) Total() int { return p.total }

// HasNext reports whether a later question exists.
func (p *Progress) HasNext() bool { return p.current < p.total-1 }

// HasPrevious reports whether an earlier question exists.
func (p *Progress) HasPrevious() bool { return p.current > 0 }

// Next advances to the following question. At the last question it is
// a no-op.
func (p *Progress) Next(ctx context.Context) error {
	if !p.HasNext() {
		return nil
	}
	p.current++
	return p.persist(ctx)
}

// Previous moves back one question. At the first question it is a
// no-op.
func (p *Progress) Previous(ctx context.Context) error {
	if !p.HasPrevious() {
		return nil
	}
	p.current--
	return p.persist(ctx)
}

// Goto jumps to the given index. Indexes outside [0, total) are a
// no-op.
func (p *Progress) Goto(ctx context.Context, index int) error {
	if index < 0 || index >= p.total {
		return nil
	}
	p.current = index
	return p.persist(ctx)
}

// Random jumps to a uniformly chosen question.
func (p *Progress) Random(ctx context.Context) error {
	if p.total <= 0 {
		return nil
	}
	return p.Goto(ctx, p.randIntN(p.total))
}

// Reset returns to the first question.
func (p *Progress) Reset(ctx context.Context) error {
	p.current = 0
	return p.persist(ctx)
}

func (p *Progress) persist(ctx context.Context) error {
	cp := &entities.ProgressCheckpoint{URL: p.url, Current: p.current}
	if err := p.store.PutCheckpoint(ctx, cp); err != nil {
		return &entities.StoreError{Op: "saving checkpoint", Err: err}
	}
	return nil
}
