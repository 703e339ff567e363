package fetch

import (
	"context"
	"fmt"
	"log"
	"net/url"
	"time"

	"github.com/goodluck-cu/a-tool-of-memorize/internal/domain/entities"
	"github.com/goodluck-cu/a-tool-of-memorize/internal/domain/ports"
	"github.com/goodluck-cu/a-tool-of-memorize/internal/infrastructure/serialization"
)

// timeNow returns the current time (can be mocked in tests).
var timeNow = time.Now

// Manager orchestrates network fetch, store lookup, freshness
// comparison, store update and network-failure fallback for question
// sources.
type Manager struct {
	store   ports.Store
	fetcher Fetcher
	base    *url.URL
}

// NewManager creates a cache manager. baseURL, when non-empty, resolves
// relative source URLs; it must itself be absolute.
func NewManager(store ports.Store, fetcher Fetcher, baseURL string) (*Manager, error) {
	m := &Manager{store: store, fetcher: fetcher}

	if baseURL != "" {
		base, err := url.Parse(baseURL)
		if err != nil {
			return nil, fmt.Errorf("parsing base URL: %w", err)
		}
		if !base.IsAbs() {
			return nil, fmt.Errorf("base URL %q is not absolute", baseURL)
		}
		m.base = base
	}

	return m, nil
}

// Resolve canonicalizes a raw source URL. The canonical form is the
// cache and progress key for all subsequent operations.
func (m *Manager) Resolve(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("parsing source URL: %w", err)
	}
	if m.base != nil {
		u = m.base.ResolveReference(u)
	}
	if !u.IsAbs() {
		return "", fmt.Errorf("source URL %q is not absolute and no base URL is configured", raw)
	}
	return u.String(), nil
}

// FetchQuestions loads the question list for a source URL.
//
// The stored copy is consulted before the network fetch so the
// freshness decision always sees it. A failed fetch serves the stored
// copy when one exists and propagates the network error otherwise. On
// fetch success the stored copy wins when its timestamp is not older
// than the fetched one; a response without modification metadata is
// timestamped with the fetch time, which deliberately favors freshness
// over cache reuse for such sources. Store write failures degrade to a
// warning: they never discard freshly decoded data.
func (m *Manager) FetchQuestions(ctx context.Context, rawURL string) (*entities.LoadResult, error) {
	resolved, err := m.Resolve(rawURL)
	if err != nil {
		return nil, err
	}

	cached, err := m.store.GetCachedDocument(ctx, resolved)
	if err != nil {
		// A failed read is treated as a cache miss.
		log.Printf("warning: reading cached copy of %s: %v", resolved, err)
		cached = nil
	}

	doc, fetchErr := m.fetcher.Fetch(ctx, resolved)
	if fetchErr != nil {
		if cached == nil {
			return nil, fetchErr
		}
		questions, err := serialization.Decode(cached.Content)
		if err != nil {
			return nil, err
		}
		log.Printf("warning: fetching %s failed, serving cached copy: %v", resolved, fetchErr)
		return &entities.LoadResult{ResolvedURL: resolved, Questions: questions, ServedFromCache: true}, nil
	}

	newTimestamp := doc.LastModified
	hasMetadata := !newTimestamp.IsZero()
	if !hasMetadata {
		newTimestamp = timeNow()
	}

	if cached != nil && hasMetadata && !cached.LastModified.Before(newTimestamp) {
		// Stored copy is still fresh; serve it without rewriting.
		questions, err := serialization.Decode(cached.Content)
		if err != nil {
			return nil, err
		}
		return &entities.LoadResult{ResolvedURL: resolved, Questions: questions, ServedFromCache: true}, nil
	}

	questions, err := serialization.Decode(doc.Body)
	if err != nil {
		return nil, err
	}

	newDoc := &entities.CachedDocument{
		URL:          resolved,
		LastModified: newTimestamp,
		Content:      doc.Body,
	}
	if err := m.store.PutCachedDocument(ctx, newDoc); err != nil {
		log.Printf("warning: caching %s: %v", resolved, err)
	}

	return &entities.LoadResult{ResolvedURL: resolved, Questions: questions, ServedFromCache: false}, nil
}

// Preload fetches each URL so its freshest copy is cached, warning and
// continuing on individual failures.
func (m *Manager) Preload(ctx context.Context, urls []string) {
	for _, u := range urls {
		if _, err := m.FetchQuestions(ctx, u); err != nil {
			log.Printf("warning: preloading %s: %v", u, err)
		}
	}
}

// CacheStats summarizes the cached document collection.
type CacheStats struct {
	TotalFiles int
	TotalSize  int64
	OldestFile time.Time
	NewestFile time.Time
}

// Stats reports size and age information for the cached documents.
func (m *Manager) Stats(ctx context.Context) (*CacheStats, error) {
	docs, err := m.store.ListCachedDocuments(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing cached documents: %w", err)
	}

	stats := &CacheStats{TotalFiles: len(docs)}
	for _, d := range docs {
		stats.TotalSize += int64(len(d.Content))
		if stats.OldestFile.IsZero() || d.LastModified.Before(stats.OldestFile) {
			stats.OldestFile = d.LastModified
		}
		if d.LastModified.After(stats.NewestFile) {
			stats.NewestFile = d.LastModified
		}
	}
	return stats, nil
}

// Clean removes cached documents older than maxAge and returns how many
// were removed.
func (m *Manager) Clean(ctx context.Context, maxAge time.Duration) (int64, error) {
	cutoff := timeNow().Add(-maxAge)
	removed, err := m.store.DeleteCachedDocumentsBefore(ctx, cutoff)
	if err != nil {
		return 0, fmt.Errorf("cleaning cache: %w", err)
	}
	return removed, nil
}
