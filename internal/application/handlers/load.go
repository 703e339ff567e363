// Package handlers wires the domain services into the operations the
// interface layer invokes.
package handlers

import (
	"context"
	"fmt"
	"log"

	"github.com/goodluck-cu/a-tool-of-memorize/internal/domain/entities"
	"github.com/goodluck-cu/a-tool-of-memorize/internal/domain/ports"
	"github.com/goodluck-cu/a-tool-of-memorize/internal/domain/services"
)

// LoadHandler loads a question source and resolves its progress.
type LoadHandler struct {
	source    ports.QuestionSource
	store     ports.Store
	sessionID string
}

// NewLoadHandler creates a new load handler. sessionID tags activity
// log entries written on behalf of this process.
func NewLoadHandler(source ports.QuestionSource, store ports.Store, sessionID string) *LoadHandler {
	return &LoadHandler{
		source:    source,
		store:     store,
		sessionID: sessionID,
	}
}

// LoadOutcome is a loaded source plus its resolved progress position.
type LoadOutcome struct {
	Result   *entities.LoadResult
	Progress *services.Progress
}

// CurrentQuestion returns the question at the resolved position, or nil
// for an empty source.
func (o *LoadOutcome) CurrentQuestion() *entities.Question {
	idx := o.Progress.Current()
	if idx < 0 || idx >= len(o.Result.Questions) {
		return nil
	}
	return &o.Result.Questions[idx]
}

// Handle fetches the question list for a URL (cache-aware) and loads or
// creates the progress checkpoint for it.
func (h *LoadHandler) Handle(ctx context.Context, url string) (*LoadOutcome, error) {
	result, err := h.source.FetchQuestions(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("loading questions: %w", err)
	}

	progress, err := services.ResolveProgress(ctx, h.store, result.ResolvedURL, len(result.Questions))
	if err != nil {
		return nil, fmt.Errorf("resolving progress: %w", err)
	}

	h.logActivity(ctx, result)

	return &LoadOutcome{Result: result, Progress: progress}, nil
}

func (h *LoadHandler) logActivity(ctx context.Context, result *entities.LoadResult) {
	action := entities.ActionOpen
	if result.ServedFromCache {
		action = entities.ActionCacheHit
	}
	entry := &entities.ActivityEntry{
		SessionID: h.sessionID,
		Action:    action,
		URL:       result.ResolvedURL,
		Details:   fmt.Sprintf("%d questions", len(result.Questions)),
	}
	if err := h.store.LogActivity(ctx, entry); err != nil {
		log.Printf("warning: logging activity: %v", err)
	}
}
