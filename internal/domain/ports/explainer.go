package ports

import (
	"context"

	"github.com/goodluck-cu/a-tool-of-memorize/internal/domain/entities"
)

// Explainer produces a prose explanation of a question's correct answer.
type Explainer interface {
	// Explain returns an explanation for the given question.
	Explain(ctx context.Context, question *entities.Question) (string, error)
}
