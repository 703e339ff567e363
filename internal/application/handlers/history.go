package handlers

import (
	"context"
	"fmt"

	"github.com/goodluck-cu/a-tool-of-memorize/internal/domain/entities"
	"github.com/goodluck-cu/a-tool-of-memorize/internal/domain/ports"
)

// HistoryHandler reads the answer history.
type HistoryHandler struct {
	store ports.Store
}

// NewHistoryHandler creates a new history handler.
func NewHistoryHandler(store ports.Store) *HistoryHandler {
	return &HistoryHandler{store: store}
}

// List returns history entries in insertion order, filtered to one
// source when url is non-empty.
func (h *HistoryHandler) List(ctx context.Context, url string) ([]entities.AnswerHistoryEntry, error) {
	entries, err := h.store.ListAnswerHistory(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("listing answer history: %w", err)
	}
	return entries, nil
}

// HistoryStats summarizes graded submissions.
type HistoryStats struct {
	Total int
	Right int
	Wrong int
}

// Accuracy returns the fraction of correct submissions, or zero when
// nothing has been answered.
func (s *HistoryStats) Accuracy() float64 {
	if s.Total == 0 {
		return 0
	}
	return float64(s.Right) / float64(s.Total)
}

// Stats aggregates right/wrong counts, filtered to one source when url
// is non-empty.
func (h *HistoryHandler) Stats(ctx context.Context, url string) (*HistoryStats, error) {
	entries, err := h.store.ListAnswerHistory(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("listing answer history: %w", err)
	}

	stats := &HistoryStats{Total: len(entries)}
	for _, e := range entries {
		if e.Right {
			stats.Right++
		} else {
			stats.Wrong++
		}
	}
	return stats, nil
}
