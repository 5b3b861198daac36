package testutil

import (
	"fmt"

	"github.com/HerbHall/bigoref/pkg/models"
)

// NewQuestion returns a valid InterviewQuestion with C++ and Java solutions.
// Override individual fields with options.
func NewQuestion(opts ...func(*models.InterviewQuestion)) models.InterviewQuestion {
	q := models.InterviewQuestion{
		ID:         1,
		Title:      "Two Sum",
		Topic:      models.TopicArray,
		Difficulty: models.DifficultyEasy,
		Logic:      "Hash map of complements.",
		Time:       "O(n)",
		Space:      "O(n)",
		Tip:        "Store value to index.",
		Solutions: map[models.Language]string{
			models.LanguageCPP:  "return {};",
			models.LanguageJava: "return new int[0];",
		},
	}
	for _, opt := range opts {
		opt(&q)
	}
	return q
}

// WithID sets the question id.
func WithID(id int) func(*models.InterviewQuestion) {
	return func(q *models.InterviewQuestion) { q.ID = id }
}

// WithTitle sets the question title.
func WithTitle(title string) func(*models.InterviewQuestion) {
	return func(q *models.InterviewQuestion) { q.Title = title }
}

// WithTopic sets the question topic.
func WithTopic(t models.Topic) func(*models.InterviewQuestion) {
	return func(q *models.InterviewQuestion) { q.Topic = t }
}

// WithDifficulty sets the question difficulty.
func WithDifficulty(d models.Difficulty) func(*models.InterviewQuestion) {
	return func(q *models.InterviewQuestion) { q.Difficulty = d }
}

// WithComplexity sets the time and space notations.
func WithComplexity(time, space string) func(*models.InterviewQuestion) {
	return func(q *models.InterviewQuestion) {
		q.Time = time
		q.Space = space
	}
}

// WithoutSolution removes the solution for lang.
func WithoutSolution(lang models.Language) func(*models.InterviewQuestion) {
	return func(q *models.InterviewQuestion) {
		sols := make(map[models.Language]string, len(q.Solutions))
		for k, v := range q.Solutions {
			if k != lang {
				sols[k] = v
			}
		}
		q.Solutions = sols
	}
}

// NewQuestions returns n valid questions with ids 1..n and titles "Question i".
func NewQuestions(n int) []models.InterviewQuestion {
	out := make([]models.InterviewQuestion, n)
	for i := range out {
		out[i] = NewQuestion(WithID(i+1), WithTitle(fmt.Sprintf("Question %d", i+1)))
	}
	return out
}

// NewAlgorithm returns an AlgorithmEntry with linear costs.
func NewAlgorithm(name string) models.AlgorithmEntry {
	return models.AlgorithmEntry{
		Name:    name,
		Best:    "O(1)",
		Average: "O(n)",
		Worst:   "O(n)",
		Space:   "O(1)",
		Note:    name + " fixture",
	}
}
