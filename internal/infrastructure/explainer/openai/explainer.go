// Package openai provides an Explainer implementation using OpenAI.
package openai

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/sashabaranov/go-openai"

	"github.com/goodluck-cu/a-tool-of-memorize/internal/domain/entities"
	"github.com/goodluck-cu/a-tool-of-memorize/internal/infrastructure/config"
)

const explainPrompt = `You are a concise tutor. Given a quiz question, its options and its
correct answer, explain in a few sentences why the correct answer is
right. If supplementary knowledge text is provided, build on it. Answer
in the language of the question. Return plain text only.`

// Explainer implements the Explainer interface using OpenAI.
type Explainer struct {
	client *openai.Client
	model  string
}

// NewExplainer creates a new OpenAI explainer.
func NewExplainer(cfg config.OpenAIConfig) (*Explainer, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("OpenAI API key is required")
	}

	model := "gpt-4o-mini"
	if cfg.Model != "" {
		model = cfg.Model
	}

	return &Explainer{
		client: openai.NewClient(cfg.APIKey),
		model:  model,
	}, nil
}

// Explain returns an explanation for the given question.
func (e *Explainer) Explain(ctx context.Context, question *entities.Question) (string, error) {
	resp, err := e.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: e.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: explainPrompt,
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: formatQuestion(question),
			},
		},
		Temperature: 0.3,
	})
	if err != nil {
		return "", fmt.Errorf("calling OpenAI: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", errors.New("no response from OpenAI")
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

// formatQuestion renders a question as the user message for the LLM.
func formatQuestion(q *entities.Question) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Question: %s\n", q.Quest)

	if len(q.Sels) > 0 {
		keys := make([]string, 0, len(q.Sels))
		for k := range q.Sels {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		b.WriteString("Options:\n")
		for _, k := range keys {
			fmt.Fprintf(&b, "  %s: %s\n", k, q.Sels[k])
		}
	}

	fmt.Fprintf(&b, "Correct answer: %s\n", strings.Join(q.Answer.Normalized(), ", "))

	if q.Knowledge != "" {
		fmt.Fprintf(&b, "Knowledge: %s\n", q.Knowledge)
	}

	return b.String()
}
