package models

// Topic groups interview questions. The set is closed; see Topics.
type Topic string

const (
	TopicArray        Topic = "Array"
	TopicString       Topic = "String"
	TopicLinkedList   Topic = "Linked List"
	TopicTree         Topic = "Tree"
	TopicGraph        Topic = "Graph"
	TopicDP           Topic = "DP"
	TopicStackQueue   Topic = "Stack/Queue"
	TopicBinarySearch Topic = "Binary Search"
	TopicGreedy       Topic = "Greedy"
	TopicMath         Topic = "Math"
)

// topicOrder is the display order of topics.
var topicOrder = []Topic{
	TopicArray,
	TopicString,
	TopicLinkedList,
	TopicTree,
	TopicGraph,
	TopicDP,
	TopicStackQueue,
	TopicBinarySearch,
	TopicGreedy,
	TopicMath,
}

// Topics returns every known topic in display order.
func Topics() []Topic {
	out := make([]Topic, len(topicOrder))
	copy(out, topicOrder)
	return out
}

// Valid reports whether t is one of the enumerated topics.
func (t Topic) Valid() bool {
	for _, known := range topicOrder {
		if t == known {
			return true
		}
	}
	return false
}

// Difficulty is the interview difficulty of a question.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "Easy"
	DifficultyMedium Difficulty = "Medium"
	DifficultyHard   Difficulty = "Hard"
)

// Difficulties returns every difficulty from easiest to hardest.
func Difficulties() []Difficulty {
	return []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard}
}

// Valid reports whether d is Easy, Medium or Hard.
func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}

// Language is a solution language tag such as "cpp" or "java".
type Language string

const (
	LanguageCPP  Language = "cpp"
	LanguageJava Language = "java"
)

// DefaultLanguages are the solution languages every question must carry
// unless the catalog is configured otherwise.
func DefaultLanguages() []Language {
	return []Language{LanguageCPP, LanguageJava}
}

// InterviewQuestion is a solved interview problem.
type InterviewQuestion struct {
	ID         int                 `json:"id" yaml:"id"`
	Title      string              `json:"title" yaml:"title"`
	Topic      Topic               `json:"topic" yaml:"topic"`
	Difficulty Difficulty          `json:"difficulty" yaml:"difficulty"`
	Logic      string              `json:"logic" yaml:"logic"`
	Time       string              `json:"time" yaml:"time"`
	Space      string              `json:"space" yaml:"space"`
	Tip        string              `json:"tip" yaml:"tip"`
	Solutions  map[Language]string `json:"solutions" yaml:"solutions"`
}

// Solution returns the source for lang and whether it is present.
func (q InterviewQuestion) Solution(lang Language) (string, bool) {
	src, ok := q.Solutions[lang]
	return src, ok && src != ""
}

// All matches every topic or difficulty in a FilterState.
const All = "All"

// FilterState is the user's current narrowing of the question catalog.
// It is passed by value on every query and never stored.
type FilterState struct {
	Topic      string `json:"topic"`
	Difficulty string `json:"difficulty"`
	Search     string `json:"search"`
}

// Normalize returns a copy with empty Topic or Difficulty replaced by All.
func (s FilterState) Normalize() FilterState {
	if s.Topic == "" {
		s.Topic = All
	}
	if s.Difficulty == "" {
		s.Difficulty = All
	}
	return s
}

// Unfiltered reports whether s matches every question.
func (s FilterState) Unfiltered() bool {
	n := s.Normalize()
	return n.Topic == All && n.Difficulty == All && n.Search == ""
}
