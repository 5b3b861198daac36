package catalog

import (
	"testing"

	promtest "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HerbHall/bigoref/internal/metrics"
	pkgcatalog "github.com/HerbHall/bigoref/pkg/catalog"
	"github.com/HerbHall/bigoref/pkg/complexity"
	"github.com/HerbHall/bigoref/pkg/models"
)

func newTestEngine(t *testing.T, m *metrics.Metrics) *Engine {
	t.Helper()
	cat, err := pkgcatalog.Load()
	require.NoError(t, err)
	return NewEngine(cat, m)
}

func TestEngine_Questions_All(t *testing.T) {
	engine := newTestEngine(t, nil)

	res := engine.Questions(models.FilterState{Topic: models.All, Difficulty: models.All})
	assert.Equal(t, 50, res.Count)
	assert.Len(t, res.Entries, 50)
	assert.Equal(t, engine.Catalog().Questions(), res.Entries)
}

func TestEngine_Questions_TreeTopic(t *testing.T) {
	engine := newTestEngine(t, nil)

	res := engine.Questions(models.FilterState{Topic: "Tree", Difficulty: models.All})

	// The authored dataset has six Tree questions in the tree block (19-24)
	// plus "Kth Smallest Element in BST" (44), added later in the file.
	assert.Equal(t, []int{19, 20, 21, 22, 23, 24, 44}, ids(res.Entries))
	assert.Equal(t, len(res.Entries), res.Count)
	for _, q := range res.Entries {
		assert.Equal(t, models.TopicTree, q.Topic)
	}
}

func TestEngine_Questions_Combined(t *testing.T) {
	engine := newTestEngine(t, nil)

	res := engine.Questions(models.FilterState{Topic: "Array", Difficulty: "Hard"})
	require.Equal(t, 1, res.Count)
	assert.Equal(t, "Trapping Rain Water", res.Entries[0].Title)

	res = engine.Questions(models.FilterState{Search: "SUM"})
	assert.Equal(t, []int{1, 7, 24, 43}, ids(res.Entries))

	res = engine.Questions(models.FilterState{Search: "no such question"})
	assert.Equal(t, 0, res.Count)
	assert.NotNil(t, res.Entries)
}

func TestEngine_Questions_Monotonic(t *testing.T) {
	engine := newTestEngine(t, nil)
	all := engine.Questions(models.FilterState{}).Count

	for _, topic := range engine.Catalog().Topics() {
		for _, d := range []string{"All", "Easy", "Medium", "Hard"} {
			n := engine.Questions(models.FilterState{Topic: topic, Difficulty: d}).Count
			assert.LessOrEqual(t, n, all, "topic=%s difficulty=%s", topic, d)
		}
	}
}

func TestEngine_Questions_UnfilteredReturnsCatalogOrder(t *testing.T) {
	m := metrics.New()
	engine := newTestEngine(t, m)

	res := engine.Questions(models.FilterState{})
	assert.Equal(t, engine.Catalog().Questions(), res.Entries)

	// Extra predicates still apply when the state itself is unfiltered.
	limited := engine.Questions(models.FilterState{}, MaxRating(complexity.Excellent))
	assert.Less(t, limited.Count, res.Count)
	for _, q := range limited.Entries {
		assert.Equal(t, complexity.Excellent, complexity.Classify(q.Time), "question %d", q.ID)
	}

	n, err := promtest.GatherAndCount(m.Registry(), "bigoref_filter_queries_total")
	require.NoError(t, err)
	assert.Equal(t, 1, n, "unfiltered queries are still counted")
}

func TestEngine_AlgorithmSearch(t *testing.T) {
	engine := newTestEngine(t, nil)

	assert.Equal(t, 12, engine.Sorting("").Count)
	assert.Equal(t, 10, engine.Searching("").Count)
	assert.Equal(t, 10, engine.Structures("").Count)

	res := engine.Searching("search")
	assert.Equal(t, 7, res.Count, "DFS, BFS and Hash Lookup lack the word")

	tree := engine.Structures("TREE")
	names := make([]string, 0, tree.Count)
	for _, d := range tree.Entries {
		names = append(names, d.Name)
	}
	assert.Equal(t, []string{"Binary Tree", "AVL Tree", "Red-Black Tree"}, names)
}

func TestEngine_RecordsMetrics(t *testing.T) {
	m := metrics.New()
	engine := newTestEngine(t, m)

	engine.Questions(models.FilterState{Topic: "Tree"})
	engine.Sorting("sort")
	engine.Rate("O(1)")

	out, err := m.Registry().Gather()
	require.NoError(t, err)

	found := map[string]bool{}
	for _, mf := range out {
		found[mf.GetName()] = true
	}
	assert.True(t, found["bigoref_filter_queries_total"])
	assert.True(t, found["bigoref_filter_results"])
	assert.True(t, found["bigoref_classifications_total"])

	n, err := promtest.GatherAndCount(m.Registry(), "bigoref_classifications_total")
	require.NoError(t, err)
	assert.Equal(t, 1, n, "only the excellent series was touched")
}

func TestEngine_RateAnnotations(t *testing.T) {
	engine := newTestEngine(t, nil)

	sorting := engine.RateAlgorithms(engine.Sorting("Quicksort").Entries)
	require.Len(t, sorting, 1)
	assert.Equal(t, AlgorithmRatings{
		Best:    complexity.Fair,
		Average: complexity.Fair,
		Worst:   complexity.Bad,
		Space:   complexity.Excellent,
		Overall: complexity.Bad,
	}, sorting[0].Ratings)

	hash := engine.RateStructures(engine.Structures("Hash Table").Entries)
	require.Len(t, hash, 1)
	assert.Equal(t, complexity.Fair, hash[0].Ratings.Average.Access, "N/A rates fair")
	assert.Equal(t, complexity.Excellent, hash[0].Ratings.Average.Search)
	assert.Equal(t, complexity.Good, hash[0].Ratings.Worst.Search)
	assert.Equal(t, complexity.Fair, hash[0].Ratings.Overall, "N/A access rates fair")

	trie := engine.RateStructures(engine.Structures("Trie").Entries)
	require.Len(t, trie, 1)
	assert.Equal(t, complexity.Good, trie[0].Ratings.Overall, "O(n·k) space outranks O(k) operations")

	q, ok := engine.Question(7)
	require.True(t, ok)
	rated := engine.RateQuestions([]models.InterviewQuestion{q})
	assert.Equal(t, complexity.Bad, rated[0].TimeRating)
	assert.Equal(t, complexity.Excellent, rated[0].SpaceRating)
	assert.Equal(t, models.DifficultyMedium.Color(), rated[0].DifficultyColor)
}
