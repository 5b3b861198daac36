package catalog

import (
	"errors"
	"fmt"
)

// ErrConfiguration matches every *ConfigurationError via errors.Is.
var ErrConfiguration = errors.New("catalog configuration error")

// ErrorKind names the catalog invariant that was violated.
type ErrorKind string

const (
	KindRead              ErrorKind = "read"
	KindDecode            ErrorKind = "decode"
	KindSchema            ErrorKind = "schema"
	KindNoLanguages       ErrorKind = "no_languages"
	KindMissingField      ErrorKind = "missing_field"
	KindInvalidID         ErrorKind = "invalid_id"
	KindDuplicateID       ErrorKind = "duplicate_id"
	KindUnknownTopic      ErrorKind = "unknown_topic"
	KindUnknownDifficulty ErrorKind = "unknown_difficulty"
	KindMissingSolution   ErrorKind = "missing_solution"
)

// ConfigurationError reports a catalog that cannot be served safely.
// It is returned while the catalog is constructed and is fatal at startup.
type ConfigurationError struct {
	Kind ErrorKind
	// Source is the dataset the problem came from, e.g. "questions.yaml".
	Source string
	// QuestionID is set for question-level problems.
	QuestionID int
	Detail     string
	Err        error
}

func (e *ConfigurationError) Error() string {
	msg := "catalog: " + string(e.Kind)
	if e.Source != "" {
		msg += " in " + e.Source
	}
	if e.QuestionID != 0 {
		msg += fmt.Sprintf(" (question %d)", e.QuestionID)
	}
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	return msg
}

// Unwrap returns the underlying read or decode error, if any.
func (e *ConfigurationError) Unwrap() error { return e.Err }

// Is reports whether target is ErrConfiguration.
func (e *ConfigurationError) Is(target error) bool { return target == ErrConfiguration }
