package entities

import "time"

// CachedDocument is a durably stored copy of a fetched question source,
// keyed by the fully resolved source URL. Content is the raw response
// body exactly as received, before any decoding.
type CachedDocument struct {
	URL          string    `json:"url"`
	LastModified time.Time `json:"last_modified"`
	Content      string    `json:"content"`
}

// ProgressCheckpoint is the persisted current-question index for a
// source URL.
type ProgressCheckpoint struct {
	URL     string `json:"url"`
	Current int    `json:"current"`
}

// AnswerHistoryEntry is one graded submission. Entries are append-only
// and keyed by a store-assigned monotonic sequence number; insertion
// order is history order.
type AnswerHistoryEntry struct {
	ID       int64     `json:"id"`
	QuestID  int       `json:"quest_id"`
	URL      string    `json:"url"`
	Date     time.Time `json:"date"`
	Selected []string  `json:"selected"`
	Right    bool      `json:"right"`
}

// ActivityEntry is a best-effort log of user-visible actions (opens,
// cache hits, submissions). Writing it must never fail a foreground
// operation.
type ActivityEntry struct {
	ID        int64     `json:"id"`
	SessionID string    `json:"session_id"`
	Action    string    `json:"action"`
	URL       string    `json:"url,omitempty"`
	Details   string    `json:"details,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// Activity log actions.
const (
	ActionOpen     = "open"
	ActionCacheHit = "cache_hit"
	ActionAnswer   = "answer"
	ActionExplain  = "explain"
)

// LoadResult is what the presentation layer receives after a question
// source is loaded: the canonical source identity, the decoded question
// list, and whether the data came from the durable cache rather than
// the network.
type LoadResult struct {
	ResolvedURL     string
	Questions       []Question
	ServedFromCache bool
}

// Explanation is a cached LLM response for one question of one source.
type Explanation struct {
	URL       string    `json:"url"`
	QuestID   int       `json:"quest_id"`
	Response  string    `json:"response"`
	CreatedAt time.Time `json:"created_at"`
}
