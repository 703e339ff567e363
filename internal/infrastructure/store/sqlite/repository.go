// Package sqlite provides a SQLite implementation of the Store interface.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/goodluck-cu/a-tool-of-memorize/internal/domain/entities"
	"github.com/goodluck-cu/a-tool-of-memorize/internal/infrastructure/config"
)

// timeNow returns the current time (can be mocked in tests).
var timeNow = time.Now

// Repository implements ports.Store using SQLite.
type Repository struct {
	db   *sql.DB
	path string
}

// NewRepository creates a new SQLite repository.
func NewRepository(cfg config.StoreConfig) (*Repository, error) {
	if cfg.Path == "" {
		return nil, errors.New("sqlite path is required")
	}

	db, err := sql.Open("sqlite", cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite database: %w", err)
	}

	// Enable WAL mode for better concurrent read/write performance
	if _, err := db.Exec("PRAGMA journal_mode = WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling WAL mode: %w", err)
	}

	// Set busy timeout to avoid "database is locked" errors
	if _, err := db.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		db.Close()
		return nil, fmt.Errorf("setting busy timeout: %w", err)
	}

	return &Repository{
		db:   db,
		path: cfg.Path,
	}, nil
}

// Close closes the database connection.
func (r *Repository) Close() error {
	return r.db.Close()
}

// Path returns the database file path.
func (r *Repository) Path() string {
	return r.path
}

// EnsureSchema creates the database schema if it doesn't exist.
func (r *Repository) EnsureSchema(ctx context.Context) error {
	schema := `
	-- Cached question source documents, one row per canonical URL
	CREATE TABLE IF NOT EXISTS cached_documents (
		url TEXT PRIMARY KEY,
		last_modified TIMESTAMP NOT NULL,
		content TEXT NOT NULL
	);

	-- Progress checkpoints, one row per canonical URL
	CREATE TABLE IF NOT EXISTS checkpoints (
		url TEXT PRIMARY KEY,
		current_index INTEGER NOT NULL
	);

	-- Append-only answer history (insertion order = history order)
	CREATE TABLE IF NOT EXISTS answer_history (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		quest_id INTEGER NOT NULL,
		url TEXT NOT NULL,
		date TIMESTAMP NOT NULL,
		selected TEXT NOT NULL,
		correct INTEGER NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_answer_history_url ON answer_history(url);

	-- Best-effort activity log
	CREATE TABLE IF NOT EXISTS activity_log (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		session_id TEXT NOT NULL,
		action TEXT NOT NULL,
		url TEXT,
		details TEXT,
		created_at TIMESTAMP NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_activity_log_action ON activity_log(action);

	-- Cached LLM explanations, one row per (source, question)
	CREATE TABLE IF NOT EXISTS explanations (
		url TEXT NOT NULL,
		quest_id INTEGER NOT NULL,
		response TEXT NOT NULL,
		created_at TIMESTAMP NOT NULL,
		PRIMARY KEY (url, quest_id)
	);
	`

	_, err := r.db.ExecContext(ctx, schema)
	if err != nil {
		return fmt.Errorf("creating schema: %w", err)
	}
	return nil
}

// GetCachedDocument returns the cached copy for a canonical URL, or nil
// if none is stored.
func (r *Repository) GetCachedDocument(ctx context.Context, url string) (*entities.CachedDocument, error) {
	query := `
		SELECT url, last_modified, content
		FROM cached_documents
		WHERE url = ?
	`
	row := r.db.QueryRowContext(ctx, query, url)

	var doc entities.CachedDocument
	err := row.Scan(&doc.URL, &doc.LastModified, &doc.Content)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("scanning cached document: %w", err)
	}
	return &doc, nil
}

// PutCachedDocument stores or overwrites the cached copy for the
// document's URL.
func (r *Repository) PutCachedDocument(ctx context.Context, doc *entities.CachedDocument) error {
	query := `
		INSERT INTO cached_documents (url, last_modified, content)
		VALUES (?, ?, ?)
		ON CONFLICT(url) DO UPDATE SET
			last_modified = excluded.last_modified,
			content = excluded.content
	`
	_, err := r.db.ExecContext(ctx, query, doc.URL, doc.LastModified, doc.Content)
	if err != nil {
		return fmt.Errorf("saving cached document: %w", err)
	}
	return nil
}

// ListCachedDocuments returns every cached document, oldest first.
func (r *Repository) ListCachedDocuments(ctx context.Context) ([]entities.CachedDocument, error) {
	query := `
		SELECT url, last_modified, content
		FROM cached_documents
		ORDER BY last_modified ASC
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying cached documents: %w", err)
	}
	defer rows.Close()

	var result []entities.CachedDocument
	for rows.Next() {
		var doc entities.CachedDocument
		if err := rows.Scan(&doc.URL, &doc.LastModified, &doc.Content); err != nil {
			return nil, fmt.Errorf("scanning cached document: %w", err)
		}
		result = append(result, doc)
	}
	return result, rows.Err()
}

// DeleteCachedDocumentsBefore removes cached documents whose
// last-modified time is older than cutoff.
func (r *Repository) DeleteCachedDocumentsBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	res, err := r.db.ExecContext(ctx, "DELETE FROM cached_documents WHERE last_modified < ?", cutoff)
	if err != nil {
		return 0, fmt.Errorf("deleting cached documents: %w", err)
	}
	removed, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("counting deleted documents: %w", err)
	}
	return removed, nil
}

// GetCheckpoint returns the checkpoint for a URL, or nil if none.
func (r *Repository) GetCheckpoint(ctx context.Context, url string) (*entities.ProgressCheckpoint, error) {
	row := r.db.QueryRowContext(ctx, "SELECT url, current_index FROM checkpoints WHERE url = ?", url)

	var cp entities.ProgressCheckpoint
	err := row.Scan(&cp.URL, &cp.Current)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("scanning checkpoint: %w", err)
	}
	return &cp, nil
}

// PutCheckpoint stores or overwrites the checkpoint for its URL.
func (r *Repository) PutCheckpoint(ctx context.Context, cp *entities.ProgressCheckpoint) error {
	query := `
		INSERT INTO checkpoints (url, current_index)
		VALUES (?, ?)
		ON CONFLICT(url) DO UPDATE SET
			current_index = excluded.current_index
	`
	_, err := r.db.ExecContext(ctx, query, cp.URL, cp.Current)
	if err != nil {
		return fmt.Errorf("saving checkpoint: %w", err)
	}
	return nil
}

// AddAnswerHistory appends an entry and returns its assigned sequence
// number.
func (r *Repository) AddAnswerHistory(ctx context.Context, entry *entities.AnswerHistoryEntry) (int64, error) {
	selected, err := json.Marshal(entry.Selected)
	if err != nil {
		return 0, fmt.Errorf("marshaling selected values: %w", err)
	}

	query := `
		INSERT INTO answer_history (quest_id, url, date, selected, correct)
		VALUES (?, ?, ?, ?, ?)
	`
	res, err := r.db.ExecContext(ctx, query,
		entry.QuestID,
		entry.URL,
		entry.Date,
		string(selected),
		entry.Right,
	)
	if err != nil {
		return 0, fmt.Errorf("adding answer history: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("reading assigned history id: %w", err)
	}
	return id, nil
}

// ListAnswerHistory returns history entries in insertion order, filtered
// to one source when url is non-empty.
func (r *Repository) ListAnswerHistory(ctx context.Context, url string) ([]entities.AnswerHistoryEntry, error) {
	query := `
		SELECT id, quest_id, url, date, selected, correct
		FROM answer_history
	`
	args := []any{}
	if url != "" {
		query += " WHERE url = ?"
		args = append(args, url)
	}
	query += " ORDER BY id ASC"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying answer history: %w", err)
	}
	defer rows.Close()

	var result []entities.AnswerHistoryEntry
	for rows.Next() {
		var entry entities.AnswerHistoryEntry
		var selected string
		if err := rows.Scan(
			&entry.ID,
			&entry.QuestID,
			&entry.URL,
			&entry.Date,
			&selected,
			&entry.Right,
		); err != nil {
			return nil, fmt.Errorf("scanning answer history: %w", err)
		}
		if err := json.Unmarshal([]byte(selected), &entry.Selected); err != nil {
			return nil, fmt.Errorf("unmarshaling selected values: %w", err)
		}
		result = append(result, entry)
	}
	return result, rows.Err()
}

// LogActivity appends an activity entry.
func (r *Repository) LogActivity(ctx context.Context, entry *entities.ActivityEntry) error {
	createdAt := entry.CreatedAt
	if createdAt.IsZero() {
		createdAt = timeNow()
	}

	query := `
		INSERT INTO activity_log (session_id, action, url, details, created_at)
		VALUES (?, ?, ?, ?, ?)
	`
	_, err := r.db.ExecContext(ctx, query,
		entry.SessionID,
		entry.Action,
		entry.URL,
		entry.Details,
		createdAt,
	)
	if err != nil {
		return fmt.Errorf("logging activity: %w", err)
	}
	return nil
}

// ListActivity returns the most recent activity entries, newest first.
func (r *Repository) ListActivity(ctx context.Context, limit int) ([]entities.ActivityEntry, error) {
	query := `
		SELECT id, session_id, action, url, details, created_at
		FROM activity_log
		ORDER BY id DESC
		LIMIT ?
	`
	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("querying activity log: %w", err)
	}
	defer rows.Close()

	var result []entities.ActivityEntry
	for rows.Next() {
		var entry entities.ActivityEntry
		if err := rows.Scan(
			&entry.ID,
			&entry.SessionID,
			&entry.Action,
			&entry.URL,
			&entry.Details,
			&entry.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scanning activity entry: %w", err)
		}
		result = append(result, entry)
	}
	return result, rows.Err()
}

// GetExplanation returns the cached explanation for one question of one
// source, or nil if none.
func (r *Repository) GetExplanation(ctx context.Context, url string, questID int) (*entities.Explanation, error) {
	query := `
		SELECT url, quest_id, response, created_at
		FROM explanations
		WHERE url = ? AND quest_id = ?
	`
	row := r.db.QueryRowContext(ctx, query, url, questID)

	var exp entities.Explanation
	err := row.Scan(&exp.URL, &exp.QuestID, &exp.Response, &exp.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("scanning explanation: %w", err)
	}
	return &exp, nil
}

// PutExplanation stores or overwrites a cached explanation.
func (r *Repository) PutExplanation(ctx context.Context, exp *entities.Explanation) error {
	createdAt := exp.CreatedAt
	if createdAt.IsZero() {
		createdAt = timeNow()
	}

	query := `
		INSERT INTO explanations (url, quest_id, response, created_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(url, quest_id) DO UPDATE SET
			response = excluded.response,
			created_at = excluded.created_at
	`
	_, err := r.db.ExecContext(ctx, query, exp.URL, exp.QuestID, exp.Response, createdAt)
	if err != nil {
		return fmt.Errorf("saving explanation: %w", err)
	}
	return nil
}
