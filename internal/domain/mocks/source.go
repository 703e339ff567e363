package mocks

import (
	"context"

	"github.com/goodluck-cu/a-tool-of-memorize/internal/domain/entities"
)

// QuestionSource is a mock implementation of ports.QuestionSource.
type QuestionSource struct {
	Result *entities.LoadResult
	Err    error
	Calls  int
}

// Resolve canonicalizes a raw source URL.
func (m *QuestionSource) Resolve(raw string) (string, error) {
	if m.Err != nil {
		return "", m.Err
	}
	return raw, nil
}

// FetchQuestions loads the question list for a source URL.
func (m *QuestionSource) FetchQuestions(_ context.Context, _ string) (*entities.LoadResult, error) {
	m.Calls++
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Result, nil
}
