package entities

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuestionType_IsValid(t *testing.T) {
	assert.True(t, TypeSelect.IsValid())
	assert.True(t, TypeJudge.IsValid())
	assert.True(t, TypeUnknown.IsValid())
	assert.False(t, QuestionType("essay").IsValid())
	assert.False(t, QuestionType("").IsValid())
}

func TestAnswer_Normalized(t *testing.T) {
	assert.Equal(t, []string{"a"}, SingleAnswer("a").Normalized())
	assert.Equal(t, []string{"a", "b"}, MultiAnswer("a", "b").Normalized())
	assert.Equal(t, []string{"true"}, BoolAnswer(true).Normalized())
	assert.Equal(t, []string{"false"}, BoolAnswer(false).Normalized())
}

func TestAnswer_JSONRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		wire string
		want Answer
	}{
		{
			name: "single key",
			wire: `"a"`,
			want: SingleAnswer("a"),
		},
		{
			name: "ordered list",
			wire: `["b","a"]`,
			want: MultiAnswer("b", "a"),
		},
		{
			name: "empty list",
			wire: `[]`,
			want: Answer{Kind: AnswerMulti, Values: []string{}},
		},
		{
			name: "verdict true",
			wire: `true`,
			want: BoolAnswer(true),
		},
		{
			name: "verdict false",
			wire: `false`,
			want: BoolAnswer(false),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got Answer
			require.NoError(t, json.Unmarshal([]byte(tt.wire), &got))
			assert.Equal(t, tt.want, got)

			// The original wire shape is preserved on the way back out.
			data, err := json.Marshal(got)
			require.NoError(t, err)
			assert.JSONEq(t, tt.wire, string(data))
		})
	}
}

func TestAnswer_UnmarshalRejectsOtherShapes(t *testing.T) {
	var a Answer
	assert.Error(t, json.Unmarshal([]byte(`42`), &a))
	assert.Error(t, json.Unmarshal([]byte(`{"a":1}`), &a))
	assert.Error(t, json.Unmarshal([]byte(`[1,2]`), &a))
}

func TestQuestion_Validate(t *testing.T) {
	tests := []struct {
		name     string
		question Question
		wantErr  string
	}{
		{
			name: "valid select",
			question: Question{
				Quest:  "Pick a.",
				Type:   TypeSelect,
				Answer: SingleAnswer("a"),
				Sels:   map[string]string{"a": "first", "b": "second"},
			},
		},
		{
			name: "valid multi select",
			question: Question{
				Quest:  "Pick both.",
				Type:   TypeSelect,
				Answer: MultiAnswer("a", "b"),
				Sels:   map[string]string{"a": "first", "b": "second"},
			},
		},
		{
			name: "valid judge",
			question: Question{
				Quest:  "True?",
				Type:   TypeJudge,
				Answer: BoolAnswer(true),
			},
		},
		{
			name: "valid unknown",
			question: Question{
				Quest:  "Open question.",
				Type:   TypeUnknown,
				Answer: SingleAnswer(""),
			},
		},
		{
			name:     "empty prompt",
			question: Question{Type: TypeJudge, Answer: BoolAnswer(true)},
			wantErr:  "prompt is empty",
		},
		{
			name:     "bad type",
			question: Question{Quest: "Q", Type: "essay", Answer: SingleAnswer("a")},
			wantErr:  "unrecognized question type",
		},
		{
			name: "select without options",
			question: Question{
				Quest:  "Pick a.",
				Type:   TypeSelect,
				Answer: SingleAnswer("a"),
			},
			wantErr: "requires an options mapping",
		},
		{
			name: "select answer not an option",
			question: Question{
				Quest:  "Pick z.",
				Type:   TypeSelect,
				Answer: SingleAnswer("z"),
				Sels:   map[string]string{"a": "first"},
			},
			wantErr: "not an option key",
		},
		{
			name: "select with boolean answer",
			question: Question{
				Quest:  "Pick.",
				Type:   TypeSelect,
				Answer: BoolAnswer(true),
				Sels:   map[string]string{"a": "first"},
			},
			wantErr: "cannot have a boolean answer",
		},
		{
			name: "judge with key answer",
			question: Question{
				Quest:  "True?",
				Type:   TypeJudge,
				Answer: SingleAnswer("a"),
			},
			wantErr: "requires a boolean answer",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.question.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
