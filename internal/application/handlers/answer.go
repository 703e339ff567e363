package handlers

import (
	"context"
	"fmt"
	"log"
	"sort"
	"time"

	"github.com/goodluck-cu/a-tool-of-memorize/internal/domain/entities"
	"github.com/goodluck-cu/a-tool-of-memorize/internal/domain/ports"
	"github.com/goodluck-cu/a-tool-of-memorize/internal/domain/services"
)

// AnswerHandler grades submissions and exposes per-option marks for
// display.
type AnswerHandler struct {
	recorder  *services.Recorder
	store     ports.Store
	sessionID string
}

// NewAnswerHandler creates a new answer handler.
func NewAnswerHandler(recorder *services.Recorder, store ports.Store, sessionID string) *AnswerHandler {
	return &AnswerHandler{
		recorder:  recorder,
		store:     store,
		sessionID: sessionID,
	}
}

// OptionMark tells the presentation layer whether one displayed option
// belongs to the correct answer set.
type OptionMark struct {
	Key   string
	Text  string
	Right bool
}

// AnswerOutcome is a graded submission plus the display marks for every
// option of the question.
type AnswerOutcome struct {
	Result *entities.AnswerResult
	Marks  []OptionMark
}

// Handle grades the selected values against the question at
// questionIndex and records the submission.
func (h *AnswerHandler) Handle(ctx context.Context, url string, questionIndex int, question *entities.Question, selected []string, timeSpent time.Duration) (*AnswerOutcome, error) {
	result, err := h.recorder.Submit(ctx, questionIndex, url, question, selected, timeSpent)
	if err != nil {
		return nil, err
	}

	entry := &entities.ActivityEntry{
		SessionID: h.sessionID,
		Action:    entities.ActionAnswer,
		URL:       url,
		Details:   fmt.Sprintf("question %d correct=%t", questionIndex, result.IsCorrect),
	}
	if err := h.store.LogActivity(ctx, entry); err != nil {
		log.Printf("warning: logging activity: %v", err)
	}

	return &AnswerOutcome{
		Result: result,
		Marks:  OptionMarks(question),
	}, nil
}

// OptionMarks computes the display marks for a question: every select
// option, or the two judge verdicts. Marking is set membership, not the
// positional rule that grades the submission as a whole.
func OptionMarks(question *entities.Question) []OptionMark {
	if question.Type == entities.TypeJudge {
		return []OptionMark{
			{Key: "true", Text: "true", Right: services.IsOptionCorrect(question, "true")},
			{Key: "false", Text: "false", Right: services.IsOptionCorrect(question, "false")},
		}
	}

	keys := make([]string, 0, len(question.Sels))
	for k := range question.Sels {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	marks := make([]OptionMark, 0, len(keys))
	for _, k := range keys {
		marks = append(marks, OptionMark{
			Key:   k,
			Text:  question.Sels[k],
			Right: services.IsOptionCorrect(question, k),
		})
	}
	return marks
}
