// Package catalog provides the filter engine and HTTP API over the
// embedded reference catalog.
package catalog

import (
	"github.com/HerbHall/bigoref/internal/metrics"
	pkgcatalog "github.com/HerbHall/bigoref/pkg/catalog"
	"github.com/HerbHall/bigoref/pkg/complexity"
	"github.com/HerbHall/bigoref/pkg/models"
)

// Catalog names used in metrics and the CLI.
const (
	CatalogQuestions  = "questions"
	CatalogSorting    = "sorting"
	CatalogSearching  = "searching"
	CatalogStructures = "structures"
)

// Result is a filtered slice of entries with its count.
type Result[T any] struct {
	Count   int `json:"count"`
	Entries []T `json:"entries"`
}

func newResult[T any](entries []T) Result[T] {
	if entries == nil {
		entries = []T{}
	}
	return Result[T]{Count: len(entries), Entries: entries}
}

// Engine answers filter queries against a catalog.
type Engine struct {
	cat     *pkgcatalog.Catalog
	metrics *metrics.Metrics
}

// NewEngine creates an engine backed by cat. m may be nil.
func NewEngine(cat *pkgcatalog.Catalog, m *metrics.Metrics) *Engine {
	return &Engine{cat: cat, metrics: m}
}

// Catalog returns the backing catalog.
func (e *Engine) Catalog() *pkgcatalog.Catalog {
	return e.cat
}

// Questions returns the questions matching state and extra, in authored order.
func (e *Engine) Questions(state models.FilterState, extra ...Predicate) Result[models.InterviewQuestion] {
	entries := e.cat.Questions()
	if !state.Unfiltered() || len(extra) > 0 {
		entries = Filter(entries, state, extra...)
	}
	res := newResult(entries)
	e.metrics.ObserveFilter(CatalogQuestions, res.Count)
	return res
}

// Question returns a single question by id.
func (e *Engine) Question(id int) (models.InterviewQuestion, bool) {
	return e.cat.Question(id)
}

// Sorting returns the sorting algorithms whose name contains search.
func (e *Engine) Sorting(search string) Result[models.AlgorithmEntry] {
	res := newResult(FilterByName(e.cat.Sorting(), search))
	e.metrics.ObserveFilter(CatalogSorting, res.Count)
	return res
}

// Searching returns the searching algorithms whose name contains search.
func (e *Engine) Searching(search string) Result[models.AlgorithmEntry] {
	res := newResult(FilterByName(e.cat.Searching(), search))
	e.metrics.ObserveFilter(CatalogSearching, res.Count)
	return res
}

// Structures returns the data structures whose name contains search.
func (e *Engine) Structures(search string) Result[models.DataStructureEntry] {
	res := newResult(FilterByName(e.cat.Structures(), search))
	e.metrics.ObserveFilter(CatalogStructures, res.Count)
	return res
}

// Rate classifies a notation and records it.
func (e *Engine) Rate(notation string) complexity.Rating {
	r := complexity.Classify(notation)
	e.metrics.ObserveClassification(r)
	return r
}
