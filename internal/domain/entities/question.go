// Package entities contains core domain data structures.
package entities

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"
)

// QuestionType represents the category of a question.
type QuestionType string

// Known question types. Anything else in a source document is rejected
// during validation.
const (
	TypeSelect  QuestionType = "select"
	TypeJudge   QuestionType = "judge"
	TypeUnknown QuestionType = "unknown"
)

// IsValid reports whether t is one of the recognized question types.
func (t QuestionType) IsValid() bool {
	switch t {
	case TypeSelect, TypeJudge, TypeUnknown:
		return true
	}
	return false
}

// AnswerKind discriminates the wire shape of a question's answer.
type AnswerKind int

const (
	// AnswerSingle is a single option key encoded as a JSON string.
	AnswerSingle AnswerKind = iota
	// AnswerMulti is an ordered list of option keys encoded as a JSON array.
	AnswerMulti
	// AnswerBool is a judge verdict encoded as a JSON boolean.
	AnswerBool
)

// Answer holds a question's correct answer in any of its three wire
// shapes: a single option key, an ordered list of option keys, or a
// boolean judge verdict.
type Answer struct {
	Kind    AnswerKind
	Values  []string // AnswerSingle (exactly one element) or AnswerMulti
	Verdict bool     // AnswerBool
}

// SingleAnswer builds a single-key answer.
func SingleAnswer(value string) Answer {
	return Answer{Kind: AnswerSingle, Values: []string{value}}
}

// MultiAnswer builds an ordered multi-key answer.
func MultiAnswer(values ...string) Answer {
	return Answer{Kind: AnswerMulti, Values: values}
}

// BoolAnswer builds a judge-verdict answer.
func BoolAnswer(verdict bool) Answer {
	return Answer{Kind: AnswerBool, Verdict: verdict}
}

// Normalized returns the answer as an ordered sequence of values.
// Scalars wrap into a one-element sequence; judge verdicts render as
// "true" or "false". This is the form used for grading.
func (a Answer) Normalized() []string {
	switch a.Kind {
	case AnswerBool:
		return []string{strconv.FormatBool(a.Verdict)}
	default:
		return a.Values
	}
}

// MarshalJSON encodes the answer in its original wire shape.
func (a Answer) MarshalJSON() ([]byte, error) {
	switch a.Kind {
	case AnswerSingle:
		if len(a.Values) != 1 {
			return nil, fmt.Errorf("single answer must hold exactly one value, got %d", len(a.Values))
		}
		return json.Marshal(a.Values[0])
	case AnswerMulti:
		if a.Values == nil {
			return json.Marshal([]string{})
		}
		return json.Marshal(a.Values)
	case AnswerBool:
		return json.Marshal(a.Verdict)
	}
	return nil, fmt.Errorf("unknown answer kind %d", a.Kind)
}

// UnmarshalJSON decodes any of the three wire shapes, preserving which
// shape was seen so the answer round-trips unchanged.
func (a *Answer) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*a = SingleAnswer(s)
		return nil
	}

	var values []string
	if err := json.Unmarshal(data, &values); err == nil {
		if values == nil {
			values = []string{}
		}
		*a = Answer{Kind: AnswerMulti, Values: values}
		return nil
	}

	var verdict bool
	if err := json.Unmarshal(data, &verdict); err == nil {
		*a = BoolAnswer(verdict)
		return nil
	}

	return fmt.Errorf("answer must be a string, an array of strings, or a boolean")
}

// Question represents a single quiz item as it appears in a source
// document. Identity is positional: a question is addressed by its index
// within the source list and carries no intrinsic ID.
type Question struct {
	Quest     string            `json:"quest"`
	Type      QuestionType      `json:"type"`
	Answer    Answer            `json:"answer"`
	Sels      map[string]string `json:"sels,omitempty"`
	Knowledge string            `json:"knowledge,omitempty"`
}

// Validate checks the structural invariants of a single question: a
// non-empty prompt, a recognized type, an answer shape matching the type,
// and, for select questions, an options mapping that contains every
// answer value as a key.
func (q *Question) Validate() error {
	if q.Quest == "" {
		return fmt.Errorf("question prompt is empty")
	}
	if !q.Type.IsValid() {
		return fmt.Errorf("unrecognized question type %q", q.Type)
	}

	switch q.Type {
	case TypeSelect:
		if q.Answer.Kind == AnswerBool {
			return fmt.Errorf("select question cannot have a boolean answer")
		}
		if q.Sels == nil {
			return fmt.Errorf("select question requires an options mapping")
		}
		for _, v := range q.Answer.Values {
			if _, ok := q.Sels[v]; !ok {
				return fmt.Errorf("answer value %q is not an option key", v)
			}
		}
	case TypeJudge:
		if q.Answer.Kind != AnswerBool {
			return fmt.Errorf("judge question requires a boolean answer")
		}
	}

	return nil
}

// AnswerResult is returned to the presentation layer after a submission
// is graded.
type AnswerResult struct {
	IsCorrect       bool
	SelectedAnswers []string
	CorrectAnswers  []string
	TimeSpent       time.Duration
}
