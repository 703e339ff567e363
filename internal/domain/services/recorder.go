package services

import (
	"context"
	"log"
	"time"

	"github.com/goodluck-cu/a-tool-of-memorize/internal/domain/entities"
	"github.com/goodluck-cu/a-tool-of-memorize/internal/domain/ports"
)

// timeNow returns the current time (can be mocked in tests).
var timeNow = time.Now

// Recorder grades submitted answers and appends them to the answer
// history.
type Recorder struct {
	store ports.Store
}

// NewRecorder creates a new Recorder.
func NewRecorder(store ports.Store) *Recorder {
	return &Recorder{store: store}
}

// Submit grades a selection against a question and records the outcome.
//
// The correct answer is normalized to an ordered sequence and the
// submission is correct only when both sequences match element by
// element in order: right values in the wrong order grade wrong. An
// empty selection returns ErrEmptySelection and records nothing. A
// history write failure is a warning; the graded result is returned
// regardless.
func (r *Recorder) Submit(ctx context.Context, questionIndex int, url string, question *entities.Question, selected []string, timeSpent time.Duration) (*entities.AnswerResult, error) {
	if len(selected) == 0 {
		return nil, entities.ErrEmptySelection
	}

	correct := question.Answer.Normalized()
	result := &entities.AnswerResult{
		IsCorrect:       gradeSelection(selected, correct),
		SelectedAnswers: selected,
		CorrectAnswers:  correct,
		TimeSpent:       timeSpent,
	}

	entry := &entities.AnswerHistoryEntry{
		QuestID:  questionIndex,
		URL:      url,
		Date:     timeNow(),
		Selected: selected,
		Right:    result.IsCorrect,
	}
	if _, err := r.store.AddAnswerHistory(ctx, entry); err != nil {
		log.Printf("warning: recording answer for %s question %d: %v", url, questionIndex, err)
	}

	return result, nil
}

// gradeSelection applies strict positional equality.
func gradeSelection(selected, correct []string) bool {
	if len(selected) != len(correct) {
		return false
	}
	for i := range selected {
		if selected[i] != correct[i] {
			return false
		}
	}
	return true
}

// IsOptionCorrect reports whether a single displayed option belongs to
// the correct answer set. This is the per-item marking used by the
// presentation layer and is deliberately membership-based, unlike the
// positional rule that grades the submission as a whole.
func IsOptionCorrect(question *entities.Question, value string) bool {
	for _, v := range question.Answer.Normalized() {
		if v == value {
			return true
		}
	}
	return false
}
