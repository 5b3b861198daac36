package catalog

import (
	"fmt"
	"strings"

	"github.com/HerbHall/bigoref/pkg/complexity"
	"github.com/HerbHall/bigoref/pkg/models"
)

// Predicate is an extra condition a question must satisfy.
type Predicate func(q models.InterviewQuestion) bool

// Filter returns the questions matching state and every extra predicate,
// in input order. The result is never nil.
func Filter(entries []models.InterviewQuestion, state models.FilterState, extra ...Predicate) []models.InterviewQuestion {
	state = state.Normalize()
	search := strings.ToLower(state.Search)

	result := make([]models.InterviewQuestion, 0, len(entries))
	for i := range entries {
		q := &entries[i]
		if state.Topic != models.All && string(q.Topic) != state.Topic {
			continue
		}
		if state.Difficulty != models.All && string(q.Difficulty) != state.Difficulty {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(q.Title), search) {
			continue
		}
		if !matchesAll(*q, extra) {
			continue
		}
		result = append(result, *q)
	}
	return result
}

func matchesAll(q models.InterviewQuestion, preds []Predicate) bool {
	for _, p := range preds {
		if !p(q) {
			return false
		}
	}
	return true
}

// FilterByName returns the entries whose name contains search,
// case-insensitively, in input order. The result is never nil.
func FilterByName[T models.Named](entries []T, search string) []T {
	search = strings.ToLower(search)
	result := make([]T, 0, len(entries))
	for _, e := range entries {
		if search == "" || strings.Contains(strings.ToLower(e.EntryName()), search) {
			result = append(result, e)
		}
	}
	return result
}

// MaxRating keeps questions whose time and space complexity both rate
// no worse than limit.
func MaxRating(limit complexity.Rating) Predicate {
	return func(q models.InterviewQuestion) bool {
		return !complexity.Classify(q.Time).Worse(limit) && !complexity.Classify(q.Space).Worse(limit)
	}
}

// ValidateState checks that the topic and difficulty of state are "All" or
// enumerated values. Filter itself never fails; this is for input edges.
func ValidateState(state models.FilterState) error {
	state = state.Normalize()
	if state.Topic != models.All && !models.Topic(state.Topic).Valid() {
		return fmt.Errorf("unknown topic %q", state.Topic)
	}
	if state.Difficulty != models.All && !models.Difficulty(state.Difficulty).Valid() {
		return fmt.Errorf("unknown difficulty %q", state.Difficulty)
	}
	return nil
}
