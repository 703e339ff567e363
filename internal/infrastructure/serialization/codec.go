// Package serialization decodes and encodes question source documents.
//
// Sources are distributed either as a plain JSON array of questions or
// as that same array Base64-encoded, with no out-of-band format marker.
// Detection is by trial: direct parse first, Base64 fallback second.
// The ordering is the deterministic tie-break for the rare document
// that happens to be valid under both readings.
package serialization

import (
	"encoding/base64"
	"encoding/json"
	"strings"

	"github.com/goodluck-cu/a-tool-of-memorize/internal/domain/entities"
)

// Decode parses a raw source document into questions. It first attempts
// a direct JSON parse; if that fails it Base64-decodes the text and
// parses the result. When both attempts fail it returns a DecodeError
// carrying the direct-parse failure.
func Decode(raw string) ([]entities.Question, error) {
	var questions []entities.Question

	directErr := json.Unmarshal([]byte(raw), &questions)
	if directErr == nil {
		return questions, nil
	}

	decoded, err := base64.StdEncoding.DecodeString(strings.TrimSpace(raw))
	if err != nil {
		return nil, &entities.DecodeError{Err: directErr}
	}
	if err := json.Unmarshal(decoded, &questions); err != nil {
		return nil, &entities.DecodeError{Err: directErr}
	}

	return questions, nil
}

// Encode serializes questions as an indented JSON array, the plain form
// of a source document.
func Encode(questions []entities.Question) (string, error) {
	data, err := json.MarshalIndent(questions, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// EncodeBase64 serializes questions as a Base64-wrapped JSON array, the
// obfuscated form of a source document.
func EncodeBase64(questions []entities.Question) (string, error) {
	plain, err := Encode(questions)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString([]byte(plain)), nil
}

// Validate reports whether every question in the sequence satisfies the
// structural invariants (string prompt, recognized type, answer shape
// matching the type, options mapping present for select questions).
func Validate(questions []entities.Question) bool {
	for i := range questions {
		if err := questions[i].Validate(); err != nil {
			return false
		}
	}
	return true
}

// Normalize trims prompt and knowledge text and guarantees a non-nil
// options mapping for select questions.
func Normalize(questions []entities.Question) []entities.Question {
	result := make([]entities.Question, len(questions))
	for i, q := range questions {
		q.Quest = strings.TrimSpace(q.Quest)
		q.Knowledge = strings.TrimSpace(q.Knowledge)
		if q.Type == entities.TypeSelect && q.Sels == nil {
			q.Sels = map[string]string{}
		}
		result[i] = q
	}
	return result
}
