package handlers

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goodluck-cu/a-tool-of-memorize/internal/domain/entities"
	"github.com/goodluck-cu/a-tool-of-memorize/internal/domain/mocks"
)

const testURL = "https://example.com/questions.json"

func testQuestions() []entities.Question {
	return []entities.Question{
		{Quest: "Q1", Type: entities.TypeJudge, Answer: entities.BoolAnswer(true)},
		{Quest: "Q2", Type: entities.TypeJudge, Answer: entities.BoolAnswer(false)},
		{Quest: "Q3", Type: entities.TypeSelect, Answer: entities.SingleAnswer("a"), Sels: map[string]string{"a": "one"}},
	}
}

func TestLoadHandler_Handle(t *testing.T) {
	store := mocks.NewStore()
	source := &mocks.QuestionSource{Result: &entities.LoadResult{
		ResolvedURL: testURL,
		Questions:   testQuestions(),
	}}

	handler := NewLoadHandler(source, store, "session-1")
	outcome, err := handler.Handle(context.Background(), testURL)
	require.NoError(t, err)

	assert.Equal(t, testURL, outcome.Result.ResolvedURL)
	assert.Equal(t, 0, outcome.Progress.Current())
	assert.Equal(t, 3, outcome.Progress.Total())
	require.NotNil(t, outcome.CurrentQuestion())
	assert.Equal(t, "Q1", outcome.CurrentQuestion().Quest)

	// A checkpoint was created and the open was logged.
	assert.Contains(t, store.Checkpoints, testURL)
	require.Len(t, store.Activity, 1)
	assert.Equal(t, entities.ActionOpen, store.Activity[0].Action)
	assert.Equal(t, "session-1", store.Activity[0].SessionID)
}

func TestLoadHandler_ResumesExistingCheckpoint(t *testing.T) {
	store := mocks.NewStore()
	store.Checkpoints[testURL] = &entities.ProgressCheckpoint{URL: testURL, Current: 2}
	source := &mocks.QuestionSource{Result: &entities.LoadResult{
		ResolvedURL: testURL,
		Questions:   testQuestions(),
	}}

	handler := NewLoadHandler(source, store, "session-1")
	outcome, err := handler.Handle(context.Background(), testURL)
	require.NoError(t, err)

	assert.Equal(t, 2, outcome.Progress.Current())
	assert.Equal(t, "Q3", outcome.CurrentQuestion().Quest)
}

func TestLoadHandler_CacheHitLogged(t *testing.T) {
	store := mocks.NewStore()
	source := &mocks.QuestionSource{Result: &entities.LoadResult{
		ResolvedURL:     testURL,
		Questions:       testQuestions(),
		ServedFromCache: true,
	}}

	handler := NewLoadHandler(source, store, "session-1")
	_, err := handler.Handle(context.Background(), testURL)
	require.NoError(t, err)

	require.Len(t, store.Activity, 1)
	assert.Equal(t, entities.ActionCacheHit, store.Activity[0].Action)
}

func TestLoadHandler_FetchFailurePropagates(t *testing.T) {
	store := mocks.NewStore()
	source := &mocks.QuestionSource{Err: &entities.NetworkError{URL: testURL, Err: errors.New("down")}}

	handler := NewLoadHandler(source, store, "session-1")
	_, err := handler.Handle(context.Background(), testURL)
	require.Error(t, err)

	var netErr *entities.NetworkError
	assert.True(t, errors.As(err, &netErr))
}

func TestLoadOutcome_EmptySource(t *testing.T) {
	store := mocks.NewStore()
	source := &mocks.QuestionSource{Result: &entities.LoadResult{ResolvedURL: testURL}}

	handler := NewLoadHandler(source, store, "session-1")
	outcome, err := handler.Handle(context.Background(), testURL)
	require.NoError(t, err)

	assert.Nil(t, outcome.CurrentQuestion())
	assert.False(t, outcome.Progress.HasNext())
}
