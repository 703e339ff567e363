package mocks

import (
	"context"

	"github.com/goodluck-cu/a-tool-of-memorize/internal/domain/entities"
)

// Explainer is a mock implementation of ports.Explainer.
type Explainer struct {
	Response string
	Err      error
	Calls    int
}

// Explain returns an explanation for the given question.
func (m *Explainer) Explain(_ context.Context, _ *entities.Question) (string, error) {
	m.Calls++
	if m.Err != nil {
		return "", m.Err
	}
	return m.Response, nil
}
