package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goodluck-cu/a-tool-of-memorize/internal/domain/entities"
	"github.com/goodluck-cu/a-tool-of-memorize/internal/infrastructure/config"
)

const testURL = "https://example.com/questions.json"

// setupTestRepo creates an in-memory SQLite repository for testing.
func setupTestRepo(t *testing.T) *Repository {
	t.Helper()
	repo, err := NewRepository(config.StoreConfig{Path: ":memory:"})
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })

	err = repo.EnsureSchema(context.Background())
	require.NoError(t, err)

	return repo
}

func TestNewRepository(t *testing.T) {
	t.Run("success with memory database", func(t *testing.T) {
		repo, err := NewRepository(config.StoreConfig{Path: ":memory:"})
		require.NoError(t, err)
		defer repo.Close()
		assert.NotNil(t, repo)
	})

	t.Run("error with empty path", func(t *testing.T) {
		_, err := NewRepository(config.StoreConfig{Path: ""})
		require.Error(t, err)
	})
}

func TestRepository_EnsureSchema(t *testing.T) {
	repo := setupTestRepo(t)

	tables := []string{"cached_documents", "checkpoints", "answer_history", "activity_log", "explanations"}
	for _, table := range tables {
		var count int
		err := repo.db.QueryRow(`SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name=?`, table).Scan(&count)
		require.NoError(t, err)
		assert.Equal(t, 1, count, "table %s should exist", table)
	}
}

func TestRepository_EnsureSchema_Idempotent(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()

	doc := &entities.CachedDocument{URL: testURL, LastModified: time.Now().UTC(), Content: "[]"}
	require.NoError(t, repo.PutCachedDocument(ctx, doc))

	// Re-running schema creation must not destroy existing data.
	require.NoError(t, repo.EnsureSchema(ctx))

	found, err := repo.GetCachedDocument(ctx, testURL)
	require.NoError(t, err)
	require.NotNil(t, found)
}

func TestRepository_CachedDocuments(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()

	t.Run("absent key returns nil", func(t *testing.T) {
		doc, err := repo.GetCachedDocument(ctx, "https://example.com/missing.json")
		require.NoError(t, err)
		assert.Nil(t, doc)
	})

	t.Run("put and get", func(t *testing.T) {
		modified := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
		doc := &entities.CachedDocument{URL: testURL, LastModified: modified, Content: `[{"quest":"Q"}]`}
		require.NoError(t, repo.PutCachedDocument(ctx, doc))

		found, err := repo.GetCachedDocument(ctx, testURL)
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, testURL, found.URL)
		assert.Equal(t, `[{"quest":"Q"}]`, found.Content)
		assert.True(t, found.LastModified.Equal(modified))
	})

	t.Run("put overwrites", func(t *testing.T) {
		newer := time.Date(2024, 4, 1, 12, 0, 0, 0, time.UTC)
		doc := &entities.CachedDocument{URL: testURL, LastModified: newer, Content: "[]"}
		require.NoError(t, repo.PutCachedDocument(ctx, doc))

		found, err := repo.GetCachedDocument(ctx, testURL)
		require.NoError(t, err)
		assert.Equal(t, "[]", found.Content)
		assert.True(t, found.LastModified.Equal(newer))
	})
}

func TestRepository_DeleteCachedDocumentsBefore(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()

	cutoff := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	old := &entities.CachedDocument{URL: "https://example.com/old.json", LastModified: cutoff.Add(-time.Hour), Content: "[]"}
	recent := &entities.CachedDocument{URL: "https://example.com/new.json", LastModified: cutoff.Add(time.Hour), Content: "[]"}
	require.NoError(t, repo.PutCachedDocument(ctx, old))
	require.NoError(t, repo.PutCachedDocument(ctx, recent))

	removed, err := repo.DeleteCachedDocumentsBefore(ctx, cutoff)
	require.NoError(t, err)
	assert.Equal(t, int64(1), removed)

	docs, err := repo.ListCachedDocuments(ctx)
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, "https://example.com/new.json", docs[0].URL)
}

func TestRepository_Checkpoints(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()

	cp, err := repo.GetCheckpoint(ctx, testURL)
	require.NoError(t, err)
	assert.Nil(t, cp)

	require.NoError(t, repo.PutCheckpoint(ctx, &entities.ProgressCheckpoint{URL: testURL, Current: 3}))

	cp, err = repo.GetCheckpoint(ctx, testURL)
	require.NoError(t, err)
	require.NotNil(t, cp)
	assert.Equal(t, 3, cp.Current)

	require.NoError(t, repo.PutCheckpoint(ctx, &entities.ProgressCheckpoint{URL: testURL, Current: 7}))

	cp, err = repo.GetCheckpoint(ctx, testURL)
	require.NoError(t, err)
	assert.Equal(t, 7, cp.Current)
}

func TestRepository_AnswerHistory(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()

	date := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	first, err := repo.AddAnswerHistory(ctx, &entities.AnswerHistoryEntry{
		QuestID:  0,
		URL:      testURL,
		Date:     date,
		Selected: []string{"a", "b"},
		Right:    true,
	})
	require.NoError(t, err)

	second, err := repo.AddAnswerHistory(ctx, &entities.AnswerHistoryEntry{
		QuestID:  1,
		URL:      testURL,
		Date:     date.Add(time.Minute),
		Selected: []string{"false"},
		Right:    false,
	})
	require.NoError(t, err)
	assert.Greater(t, second, first, "sequence numbers are monotonic")

	_, err = repo.AddAnswerHistory(ctx, &entities.AnswerHistoryEntry{
		QuestID:  0,
		URL:      "https://other.org/q.json",
		Date:     date,
		Selected: []string{"c"},
		Right:    true,
	})
	require.NoError(t, err)

	t.Run("filtered by url", func(t *testing.T) {
		entries, err := repo.ListAnswerHistory(ctx, testURL)
		require.NoError(t, err)
		require.Len(t, entries, 2)
		assert.Equal(t, []string{"a", "b"}, entries[0].Selected)
		assert.True(t, entries[0].Right)
		assert.Equal(t, 1, entries[1].QuestID)
		assert.False(t, entries[1].Right)
	})

	t.Run("all entries in insertion order", func(t *testing.T) {
		entries, err := repo.ListAnswerHistory(ctx, "")
		require.NoError(t, err)
		require.Len(t, entries, 3)
		for i := 1; i < len(entries); i++ {
			assert.Greater(t, entries[i].ID, entries[i-1].ID)
		}
	})
}

func TestRepository_ActivityLog(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()

	for _, action := range []string{entities.ActionOpen, entities.ActionAnswer, entities.ActionCacheHit} {
		err := repo.LogActivity(ctx, &entities.ActivityEntry{
			SessionID: "session-1",
			Action:    action,
			URL:       testURL,
		})
		require.NoError(t, err)
	}

	entries, err := repo.ListActivity(ctx, 2)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, entities.ActionCacheHit, entries[0].Action, "newest first")
	assert.Equal(t, entities.ActionAnswer, entries[1].Action)
	assert.False(t, entries[0].CreatedAt.IsZero())
}

func TestRepository_Explanations(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()

	exp, err := repo.GetExplanation(ctx, testURL, 0)
	require.NoError(t, err)
	assert.Nil(t, exp)

	require.NoError(t, repo.PutExplanation(ctx, &entities.Explanation{
		URL:      testURL,
		QuestID:  0,
		Response: "because",
	}))

	exp, err = repo.GetExplanation(ctx, testURL, 0)
	require.NoError(t, err)
	require.NotNil(t, exp)
	assert.Equal(t, "because", exp.Response)

	require.NoError(t, repo.PutExplanation(ctx, &entities.Explanation{
		URL:      testURL,
		QuestID:  0,
		Response: "updated",
	}))

	exp, err = repo.GetExplanation(ctx, testURL, 0)
	require.NoError(t, err)
	assert.Equal(t, "updated", exp.Response)
}
