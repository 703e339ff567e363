// Package mocks provides hand-written mock implementations of the
// domain ports for testing.
package mocks

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/goodluck-cu/a-tool-of-memorize/internal/domain/entities"
)

// Store is a mock implementation of ports.Store backed by maps.
// Err fails every operation; the per-operation error fields fail only
// their operation, so tests can break one path at a time.
type Store struct {
	Docs         map[string]*entities.CachedDocument
	Checkpoints  map[string]*entities.ProgressCheckpoint
	History      []entities.AnswerHistoryEntry
	Activity     []entities.ActivityEntry
	Explanations map[string]*entities.Explanation

	Err           error
	GetDocErr     error
	PutDocErr     error
	PutCheckErr   error
	AddHistoryErr error

	PutDocCalls   int
	PutCheckCalls int
}

// NewStore creates a new mock Store.
func NewStore() *Store {
	return &Store{
		Docs:         make(map[string]*entities.CachedDocument),
		Checkpoints:  make(map[string]*entities.ProgressCheckpoint),
		Explanations: make(map[string]*entities.Explanation),
	}
}

// EnsureSchema creates the collections if they don't exist.
func (m *Store) EnsureSchema(_ context.Context) error {
	return m.Err
}

// Close closes the underlying connection.
func (m *Store) Close() error {
	return nil
}

// GetCachedDocument returns the cached copy for a canonical URL.
func (m *Store) GetCachedDocument(_ context.Context, url string) (*entities.CachedDocument, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	if m.GetDocErr != nil {
		return nil, m.GetDocErr
	}
	return m.Docs[url], nil
}

// PutCachedDocument stores or overwrites the cached copy.
func (m *Store) PutCachedDocument(_ context.Context, doc *entities.CachedDocument) error {
	m.PutDocCalls++
	if m.Err != nil {
		return m.Err
	}
	if m.PutDocErr != nil {
		return m.PutDocErr
	}
	docCopy := *doc
	m.Docs[doc.URL] = &docCopy
	return nil
}

// ListCachedDocuments returns every cached document.
func (m *Store) ListCachedDocuments(_ context.Context) ([]entities.CachedDocument, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	result := make([]entities.CachedDocument, 0, len(m.Docs))
	for _, d := range m.Docs {
		result = append(result, *d)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].URL < result[j].URL })
	return result, nil
}

// DeleteCachedDocumentsBefore removes cached documents older than cutoff.
func (m *Store) DeleteCachedDocumentsBefore(_ context.Context, cutoff time.Time) (int64, error) {
	if m.Err != nil {
		return 0, m.Err
	}
	var removed int64
	for url, d := range m.Docs {
		if d.LastModified.Before(cutoff) {
			delete(m.Docs, url)
			removed++
		}
	}
	return removed, nil
}

// GetCheckpoint returns the checkpoint for a URL.
func (m *Store) GetCheckpoint(_ context.Context, url string) (*entities.ProgressCheckpoint, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Checkpoints[url], nil
}

// PutCheckpoint stores or overwrites the checkpoint.
func (m *Store) PutCheckpoint(_ context.Context, cp *entities.ProgressCheckpoint) error {
	m.PutCheckCalls++
	if m.Err != nil {
		return m.Err
	}
	if m.PutCheckErr != nil {
		return m.PutCheckErr
	}
	cpCopy := *cp
	m.Checkpoints[cp.URL] = &cpCopy
	return nil
}

// AddAnswerHistory appends an entry and returns its sequence number.
func (m *Store) AddAnswerHistory(_ context.Context, entry *entities.AnswerHistoryEntry) (int64, error) {
	if m.Err != nil {
		return 0, m.Err
	}
	if m.AddHistoryErr != nil {
		return 0, m.AddHistoryErr
	}
	entryCopy := *entry
	entryCopy.ID = int64(len(m.History) + 1)
	m.History = append(m.History, entryCopy)
	return entryCopy.ID, nil
}

// ListAnswerHistory returns history entries in insertion order.
func (m *Store) ListAnswerHistory(_ context.Context, url string) ([]entities.AnswerHistoryEntry, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	result := make([]entities.AnswerHistoryEntry, 0, len(m.History))
	for _, e := range m.History {
		if url == "" || e.URL == url {
			result = append(result, e)
		}
	}
	return result, nil
}

// LogActivity appends an activity entry.
func (m *Store) LogActivity(_ context.Context, entry *entities.ActivityEntry) error {
	if m.Err != nil {
		return m.Err
	}
	entryCopy := *entry
	entryCopy.ID = int64(len(m.Activity) + 1)
	m.Activity = append(m.Activity, entryCopy)
	return nil
}

// ListActivity returns the most recent activity entries, newest first.
func (m *Store) ListActivity(_ context.Context, limit int) ([]entities.ActivityEntry, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	result := make([]entities.ActivityEntry, 0, limit)
	for i := len(m.Activity) - 1; i >= 0 && len(result) < limit; i-- {
		result = append(result, m.Activity[i])
	}
	return result, nil
}

// GetExplanation returns the cached explanation for one question.
func (m *Store) GetExplanation(_ context.Context, url string, questID int) (*entities.Explanation, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Explanations[explanationKey(url, questID)], nil
}

// PutExplanation stores or overwrites a cached explanation.
func (m *Store) PutExplanation(_ context.Context, exp *entities.Explanation) error {
	if m.Err != nil {
		return m.Err
	}
	expCopy := *exp
	m.Explanations[explanationKey(exp.URL, exp.QuestID)] = &expCopy
	return nil
}

func explanationKey(url string, questID int) string {
	return fmt.Sprintf("%s#%d", url, questID)
}
