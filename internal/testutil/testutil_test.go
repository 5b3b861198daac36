package testutil

import (
	"testing"
	"time"

	"github.com/HerbHall/bigoref/pkg/models"
)

func TestLogger_NotNil(t *testing.T) {
	if Logger() == nil {
		t.Fatal("expected non-nil logger")
	}
}

func TestObservedLogger_Records(t *testing.T) {
	l, logs := ObservedLogger()
	l.Info("hello")
	if logs.Len() != 1 {
		t.Fatalf("recorded %d entries, want 1", logs.Len())
	}
	if got := logs.All()[0].Message; got != "hello" {
		t.Errorf("message = %q, want %q", got, "hello")
	}
}

func TestClock_Advance(t *testing.T) {
	c := NewClock()
	start := c.Now()
	c.Advance(time.Minute)
	if got := c.Now().Sub(start); got != time.Minute {
		t.Errorf("advanced %v, want 1m", got)
	}
}

func TestNewQuestion_Defaults(t *testing.T) {
	q := NewQuestion()
	if q.ID != 1 || q.Topic != models.TopicArray || q.Difficulty != models.DifficultyEasy {
		t.Errorf("unexpected defaults: %+v", q)
	}
	for _, lang := range models.DefaultLanguages() {
		if _, ok := q.Solution(lang); !ok {
			t.Errorf("default question missing %s solution", lang)
		}
	}
}

func TestNewQuestion_Options(t *testing.T) {
	q := NewQuestion(
		WithID(9),
		WithTitle("Word Ladder"),
		WithTopic(models.TopicGraph),
		WithDifficulty(models.DifficultyHard),
		WithComplexity("O(n²)", "O(1)"),
		WithoutSolution(models.LanguageJava),
	)
	if q.ID != 9 || q.Title != "Word Ladder" || q.Topic != models.TopicGraph || q.Difficulty != models.DifficultyHard {
		t.Errorf("options not applied: %+v", q)
	}
	if q.Time != "O(n²)" || q.Space != "O(1)" {
		t.Errorf("complexity = %q/%q", q.Time, q.Space)
	}
	if _, ok := q.Solution(models.LanguageJava); ok {
		t.Error("java solution should be removed")
	}
	if _, ok := q.Solution(models.LanguageCPP); !ok {
		t.Error("cpp solution should remain")
	}
}

func TestNewQuestions_UniqueIDs(t *testing.T) {
	qs := NewQuestions(4)
	seen := map[int]bool{}
	for _, q := range qs {
		if seen[q.ID] {
			t.Fatalf("duplicate id %d", q.ID)
		}
		seen[q.ID] = true
	}
	if len(seen) != 4 {
		t.Errorf("got %d ids, want 4", len(seen))
	}
}
