// Package catalog holds the immutable reference dataset: sorting and
// searching algorithms, data structures and interview questions.
package catalog

import (
	"fmt"
	"maps"

	"github.com/HerbHall/bigoref/pkg/models"
)

// Source is the raw dataset a Catalog is built from.
type Source struct {
	Sorting    []models.AlgorithmEntry
	Searching  []models.AlgorithmEntry
	Structures []models.DataStructureEntry
	Questions  []models.InterviewQuestion
}

// Option configures catalog construction.
type Option func(*options)

type options struct {
	languages []models.Language
}

// WithLanguages sets the solution languages every question must provide.
func WithLanguages(langs ...models.Language) Option {
	return func(o *options) {
		o.languages = append([]models.Language(nil), langs...)
	}
}

// Catalog is a validated, read-only dataset. It is safe for concurrent use;
// every accessor returns a copy.
type Catalog struct {
	sorting    []models.AlgorithmEntry
	searching  []models.AlgorithmEntry
	structures []models.DataStructureEntry
	questions  []models.InterviewQuestion
	byID       map[int]int
	languages  []models.Language
}

// New validates src and returns a Catalog holding a private copy of it.
// Any invariant violation returns a *ConfigurationError.
func New(src Source, opts ...Option) (*Catalog, error) {
	o := options{languages: models.DefaultLanguages()}
	for _, opt := range opts {
		opt(&o)
	}
	if len(o.languages) == 0 {
		return nil, &ConfigurationError{Kind: KindNoLanguages, Detail: "at least one solution language is required"}
	}

	if err := validateAlgorithms("sorting", src.Sorting); err != nil {
		return nil, err
	}
	if err := validateAlgorithms("searching", src.Searching); err != nil {
		return nil, err
	}
	for i := range src.Structures {
		if src.Structures[i].Name == "" {
			return nil, &ConfigurationError{
				Kind:   KindMissingField,
				Source: "structures",
				Detail: fmt.Sprintf("entry %d has no name", i),
			}
		}
	}

	byID := make(map[int]int, len(src.Questions))
	for i := range src.Questions {
		if err := validateQuestion(&src.Questions[i], byID, o.languages); err != nil {
			return nil, err
		}
		byID[src.Questions[i].ID] = i
	}

	c := &Catalog{
		sorting:    cloneAlgorithms(src.Sorting),
		searching:  cloneAlgorithms(src.Searching),
		structures: append([]models.DataStructureEntry{}, src.Structures...),
		questions:  make([]models.InterviewQuestion, len(src.Questions)),
		byID:       byID,
		languages:  o.languages,
	}
	for i := range src.Questions {
		c.questions[i] = cloneQuestion(src.Questions[i])
	}
	return c, nil
}

func validateAlgorithms(source string, entries []models.AlgorithmEntry) error {
	for i := range entries {
		if entries[i].Name == "" {
			return &ConfigurationError{
				Kind:   KindMissingField,
				Source: source,
				Detail: fmt.Sprintf("entry %d has no name", i),
			}
		}
	}
	return nil
}

func validateQuestion(q *models.InterviewQuestion, seen map[int]int, langs []models.Language) error {
	if q.ID <= 0 {
		return &ConfigurationError{
			Kind:       KindInvalidID,
			Source:     "questions",
			QuestionID: q.ID,
			Detail:     fmt.Sprintf("id %d must be positive (title %q)", q.ID, q.Title),
		}
	}
	if _, dup := seen[q.ID]; dup {
		return &ConfigurationError{
			Kind:       KindDuplicateID,
			Source:     "questions",
			QuestionID: q.ID,
			Detail:     fmt.Sprintf("id %d is used more than once", q.ID),
		}
	}
	if q.Title == "" {
		return &ConfigurationError{Kind: KindMissingField, Source: "questions", QuestionID: q.ID, Detail: "title is empty"}
	}
	if !q.Topic.Valid() {
		return &ConfigurationError{
			Kind:       KindUnknownTopic,
			Source:     "questions",
			QuestionID: q.ID,
			Detail:     fmt.Sprintf("topic %q is not enumerated", q.Topic),
		}
	}
	if !q.Difficulty.Valid() {
		return &ConfigurationError{
			Kind:       KindUnknownDifficulty,
			Source:     "questions",
			QuestionID: q.ID,
			Detail:     fmt.Sprintf("difficulty %q is not Easy, Medium or Hard", q.Difficulty),
		}
	}
	for _, lang := range langs {
		if _, ok := q.Solution(lang); !ok {
			return &ConfigurationError{
				Kind:       KindMissingSolution,
				Source:     "questions",
				QuestionID: q.ID,
				Detail:     fmt.Sprintf("no %s solution", lang),
			}
		}
	}
	return nil
}

// Sorting returns the sorting algorithms in authored order.
func (c *Catalog) Sorting() []models.AlgorithmEntry { return cloneAlgorithms(c.sorting) }

// Searching returns the searching algorithms in authored order.
func (c *Catalog) Searching() []models.AlgorithmEntry { return cloneAlgorithms(c.searching) }

// Structures returns the data structures in authored order.
func (c *Catalog) Structures() []models.DataStructureEntry {
	return append([]models.DataStructureEntry{}, c.structures...)
}

// Questions returns every interview question in authored order.
func (c *Catalog) Questions() []models.InterviewQuestion {
	out := make([]models.InterviewQuestion, len(c.questions))
	for i := range c.questions {
		out[i] = cloneQuestion(c.questions[i])
	}
	return out
}

// Question returns the question with the given id.
func (c *Catalog) Question(id int) (models.InterviewQuestion, bool) {
	i, ok := c.byID[id]
	if !ok {
		return models.InterviewQuestion{}, false
	}
	return cloneQuestion(c.questions[i]), true
}

// Languages returns the solution languages every question provides.
func (c *Catalog) Languages() []models.Language {
	return append([]models.Language(nil), c.languages...)
}

// Topics returns the selectable topic filters, "All" first.
func (c *Catalog) Topics() []string {
	topics := models.Topics()
	out := make([]string, 0, len(topics)+1)
	out = append(out, models.All)
	for _, t := range topics {
		out = append(out, string(t))
	}
	return out
}

func cloneQuestion(q models.InterviewQuestion) models.InterviewQuestion {
	q.Solutions = maps.Clone(q.Solutions)
	return q
}

func cloneAlgorithms(in []models.AlgorithmEntry) []models.AlgorithmEntry {
	out := make([]models.AlgorithmEntry, len(in))
	for i, a := range in {
		if a.Stable != nil {
			stable := *a.Stable
			a.Stable = &stable
		}
		out[i] = a
	}
	return out
}
