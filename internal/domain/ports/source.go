package ports

import (
	"context"

	"github.com/goodluck-cu/a-tool-of-memorize/internal/domain/entities"
)

// QuestionSource loads question lists by URL, transparently arbitrating
// between the network and the durable cache.
type QuestionSource interface {
	// Resolve canonicalizes a raw source URL into the form used as the
	// cache and progress key.
	Resolve(raw string) (string, error)

	// FetchQuestions loads the question list for a source URL, serving
	// the cached copy when it is still fresh or the network is
	// unavailable.
	FetchQuestions(ctx context.Context, rawURL string) (*entities.LoadResult, error)
}
