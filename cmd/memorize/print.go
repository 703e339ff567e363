package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/goodluck-cu/a-tool-of-memorize/internal/application/handlers"
	"github.com/goodluck-cu/a-tool-of-memorize/internal/domain/entities"
)

func questionLabel(q *entities.Question) string {
	switch q.Type {
	case entities.TypeJudge:
		return "judge"
	case entities.TypeSelect:
		if q.Answer.Kind == entities.AnswerMulti {
			return "multiple choice"
		}
		return "single choice"
	default:
		return "no answer on record"
	}
}

// printOutcome renders the current question of a loaded source.
func printOutcome(o *handlers.LoadOutcome) {
	if o.Result.ServedFromCache {
		fmt.Println("(served from cache)")
	}

	q := o.CurrentQuestion()
	if q == nil {
		fmt.Println("This source has no questions.")
		return
	}

	fmt.Printf("[%d/%d] %s\n", o.Progress.Current()+1, o.Progress.Total(), q.Quest)
	fmt.Printf("      (%s)\n", questionLabel(q))

	switch q.Type {
	case entities.TypeJudge:
		fmt.Println("  true")
		fmt.Println("  false")
	default:
		keys := make([]string, 0, len(q.Sels))
		for k := range q.Sels {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Printf("  %s. %s\n", k, q.Sels[k])
		}
	}
}

// printAnswer renders a graded submission with per-option marks.
func printAnswer(q *entities.Question, outcome *handlers.AnswerOutcome) {
	if outcome.Result.IsCorrect {
		fmt.Println("Correct!")
	} else {
		fmt.Printf("Wrong. Correct answer: %s\n", strings.Join(outcome.Result.CorrectAnswers, ", "))
	}

	for _, m := range outcome.Marks {
		mark := " "
		if m.Right {
			mark = "*"
		}
		if m.Key == m.Text {
			fmt.Printf("  %s %s\n", mark, m.Text)
		} else {
			fmt.Printf("  %s %s. %s\n", mark, m.Key, m.Text)
		}
	}

	if q.Knowledge != "" {
		fmt.Printf("\n%s\n", q.Knowledge)
	}
}
