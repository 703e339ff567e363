package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goodluck-cu/a-tool-of-memorize/internal/domain/entities"
	"github.com/goodluck-cu/a-tool-of-memorize/internal/domain/mocks"
)

func multiSelectQuestion() *entities.Question {
	return &entities.Question{
		Quest:  "Pick a then b.",
		Type:   entities.TypeSelect,
		Answer: entities.MultiAnswer("a", "b"),
		Sels:   map[string]string{"a": "first", "b": "second", "c": "third"},
	}
}

func TestSubmit_Grading(t *testing.T) {
	tests := []struct {
		name     string
		question *entities.Question
		selected []string
		want     bool
	}{
		{
			name:     "exact order is correct",
			question: multiSelectQuestion(),
			selected: []string{"a", "b"},
			want:     true,
		},
		{
			name:     "right values wrong order is incorrect",
			question: multiSelectQuestion(),
			selected: []string{"b", "a"},
			want:     false,
		},
		{
			name:     "shorter selection is incorrect",
			question: multiSelectQuestion(),
			selected: []string{"b"},
			want:     false,
		},
		{
			name: "scalar answer wraps to one element",
			question: &entities.Question{
				Quest:  "Pick one.",
				Type:   entities.TypeSelect,
				Answer: entities.SingleAnswer("c"),
				Sels:   map[string]string{"c": "third"},
			},
			selected: []string{"c"},
			want:     true,
		},
		{
			name: "judge verdict",
			question: &entities.Question{
				Quest:  "True or false.",
				Type:   entities.TypeJudge,
				Answer: entities.BoolAnswer(true),
			},
			selected: []string{"true"},
			want:     true,
		},
		{
			name: "judge wrong verdict",
			question: &entities.Question{
				Quest:  "True or false.",
				Type:   entities.TypeJudge,
				Answer: entities.BoolAnswer(false),
			},
			selected: []string{"true"},
			want:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := mocks.NewStore()
			recorder := NewRecorder(store)

			result, err := recorder.Submit(context.Background(), 0, testURL, tt.question, tt.selected, time.Second)
			require.NoError(t, err)
			assert.Equal(t, tt.want, result.IsCorrect)
			assert.Equal(t, tt.selected, result.SelectedAnswers)
		})
	}
}

func TestSubmit_EmptySelectionRejected(t *testing.T) {
	store := mocks.NewStore()
	recorder := NewRecorder(store)

	_, err := recorder.Submit(context.Background(), 0, testURL, multiSelectQuestion(), nil, 0)
	require.ErrorIs(t, err, entities.ErrEmptySelection)
	assert.Empty(t, store.History, "rejected submissions are not recorded")
}

func TestSubmit_RecordsHistory(t *testing.T) {
	restore := timeNow
	defer func() { timeNow = restore }()
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	timeNow = func() time.Time { return now }

	store := mocks.NewStore()
	recorder := NewRecorder(store)

	_, err := recorder.Submit(context.Background(), 3, testURL, multiSelectQuestion(), []string{"b", "a"}, 0)
	require.NoError(t, err)

	require.Len(t, store.History, 1)
	entry := store.History[0]
	assert.Equal(t, 3, entry.QuestID)
	assert.Equal(t, testURL, entry.URL)
	assert.Equal(t, now, entry.Date)
	assert.Equal(t, []string{"b", "a"}, entry.Selected)
	assert.False(t, entry.Right, "incorrect submissions are recorded too")
}

func TestSubmit_HistoryWriteFailureStillGrades(t *testing.T) {
	store := mocks.NewStore()
	store.AddHistoryErr = errors.New("disk full")
	recorder := NewRecorder(store)

	result, err := recorder.Submit(context.Background(), 0, testURL, multiSelectQuestion(), []string{"a", "b"}, 0)
	require.NoError(t, err)
	assert.True(t, result.IsCorrect)
}

func TestIsOptionCorrect(t *testing.T) {
	q := multiSelectQuestion()

	assert.True(t, IsOptionCorrect(q, "a"))
	assert.True(t, IsOptionCorrect(q, "b"))
	assert.False(t, IsOptionCorrect(q, "c"))
}
