package handlers

import (
	"context"
	"fmt"
	"log"

	"github.com/goodluck-cu/a-tool-of-memorize/internal/domain/entities"
	"github.com/goodluck-cu/a-tool-of-memorize/internal/domain/ports"
)

// ExplainHandler produces explanations for questions, caching responses
// in the store so a question is only ever sent to the LLM once.
type ExplainHandler struct {
	explainer ports.Explainer
	store     ports.Store
	sessionID string
}

// NewExplainHandler creates a new explain handler.
func NewExplainHandler(explainer ports.Explainer, store ports.Store, sessionID string) *ExplainHandler {
	return &ExplainHandler{
		explainer: explainer,
		store:     store,
		sessionID: sessionID,
	}
}

// Handle returns an explanation for the question at questionIndex,
// serving the cached response when one exists. fromCache reports which
// path was taken.
func (h *ExplainHandler) Handle(ctx context.Context, url string, questionIndex int, question *entities.Question) (response string, fromCache bool, err error) {
	cached, err := h.store.GetExplanation(ctx, url, questionIndex)
	if err != nil {
		log.Printf("warning: reading cached explanation: %v", err)
		cached = nil
	}
	if cached != nil {
		return cached.Response, true, nil
	}

	response, err = h.explainer.Explain(ctx, question)
	if err != nil {
		return "", false, fmt.Errorf("explaining question: %w", err)
	}

	exp := &entities.Explanation{
		URL:      url,
		QuestID:  questionIndex,
		Response: response,
	}
	if err := h.store.PutExplanation(ctx, exp); err != nil {
		log.Printf("warning: caching explanation: %v", err)
	}

	entry := &entities.ActivityEntry{
		SessionID: h.sessionID,
		Action:    entities.ActionExplain,
		URL:       url,
		Details:   fmt.Sprintf("question %d", questionIndex),
	}
	if err := h.store.LogActivity(ctx, entry); err != nil {
		log.Printf("warning: logging activity: %v", err)
	}

	return response, false, nil
}
