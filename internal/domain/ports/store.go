// Package ports defines the interfaces between the domain and its
// infrastructure implementations.
package ports

import (
	"context"
	"time"

	"github.com/goodluck-cu/a-tool-of-memorize/internal/domain/entities"
)

// Store defines the durable, key-addressed persistence contract. It
// holds three independent collections (cached source documents, progress
// checkpoints, answer history) plus two supporting ones (activity log,
// explanation cache). Lookups of absent keys return (nil, nil), never an
// error. Each Put/Add is atomic: it fully completes or fully fails with
// no partial write visible to subsequent reads.
type Store interface {
	// EnsureSchema creates the collections if they don't exist. It is
	// idempotent and never destroys existing data.
	EnsureSchema(ctx context.Context) error

	// Close closes the underlying connection.
	Close() error

	// Cached document operations

	// GetCachedDocument returns the cached copy for a canonical URL, or
	// nil if none is stored.
	GetCachedDocument(ctx context.Context, url string) (*entities.CachedDocument, error)

	// PutCachedDocument stores or overwrites the cached copy for the
	// document's URL.
	PutCachedDocument(ctx context.Context, doc *entities.CachedDocument) error

	// ListCachedDocuments returns every cached document.
	ListCachedDocuments(ctx context.Context) ([]entities.CachedDocument, error)

	// DeleteCachedDocumentsBefore removes cached documents whose
	// last-modified time is older than cutoff, returning how many were
	// removed.
	DeleteCachedDocumentsBefore(ctx context.Context, cutoff time.Time) (int64, error)

	// Progress checkpoint operations

	// GetCheckpoint returns the checkpoint for a URL, or nil if none.
	GetCheckpoint(ctx context.Context, url string) (*entities.ProgressCheckpoint, error)

	// PutCheckpoint stores or overwrites the checkpoint for its URL.
	PutCheckpoint(ctx context.Context, cp *entities.ProgressCheckpoint) error

	// Answer history operations

	// AddAnswerHistory appends an entry and returns its assigned
	// sequence number.
	AddAnswerHistory(ctx context.Context, entry *entities.AnswerHistoryEntry) (int64, error)

	// ListAnswerHistory returns history entries in insertion order,
	// filtered to one source when url is non-empty.
	ListAnswerHistory(ctx context.Context, url string) ([]entities.AnswerHistoryEntry, error)

	// Activity log operations

	// LogActivity appends an activity entry.
	LogActivity(ctx context.Context, entry *entities.ActivityEntry) error

	// ListActivity returns the most recent activity entries, newest
	// first, up to limit.
	ListActivity(ctx context.Context, limit int) ([]entities.ActivityEntry, error)

	// Explanation cache operations

	// GetExplanation returns the cached explanation for one question of
	// one source, or nil if none.
	GetExplanation(ctx context.Context, url string, questID int) (*entities.Explanation, error)

	// PutExplanation stores or overwrites a cached explanation.
	PutExplanation(ctx context.Context, exp *entities.Explanation) error
}
