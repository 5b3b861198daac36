package catalog_test

import (
	"errors"
	"io/fs"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HerbHall/bigoref/pkg/catalog"
	"github.com/HerbHall/bigoref/pkg/models"
)

func TestLoad_EmbeddedDataset(t *testing.T) {
	cat, err := catalog.Load()
	require.NoError(t, err)

	assert.Len(t, cat.Sorting(), 12)
	assert.Len(t, cat.Searching(), 10)
	assert.Len(t, cat.Structures(), 10)

	questions := cat.Questions()
	require.Len(t, questions, 50)
	for i, q := range questions {
		assert.Equal(t, i+1, q.ID, "questions are authored in id order")
		assert.True(t, q.Topic.Valid(), "question %d topic %q", q.ID, q.Topic)
		assert.True(t, q.Difficulty.Valid(), "question %d difficulty %q", q.ID, q.Difficulty)
		for _, lang := range models.DefaultLanguages() {
			_, ok := q.Solution(lang)
			assert.True(t, ok, "question %d missing %s", q.ID, lang)
		}
	}
}

func TestLoad_EmbeddedSpotChecks(t *testing.T) {
	cat, err := catalog.Load()
	require.NoError(t, err)

	q, ok := cat.Question(1)
	require.True(t, ok)
	assert.Equal(t, "Two Sum", q.Title)
	assert.Equal(t, models.TopicArray, q.Topic)
	assert.Equal(t, "O(n)", q.Time)
	assert.Contains(t, q.Solutions[models.LanguageCPP], "unordered_map<int,int> mp;")

	sorting := cat.Sorting()
	assert.Equal(t, "Quicksort", sorting[0].Name)
	require.NotNil(t, sorting[0].Stable)
	assert.False(t, *sorting[0].Stable)
	assert.Empty(t, sorting[0].Requirement)

	searching := cat.Searching()
	assert.Equal(t, "Linear Search", searching[0].Name)
	assert.Nil(t, searching[0].Stable)
	assert.Equal(t, "None", searching[0].Requirement)

	structures := cat.Structures()
	assert.Equal(t, "Hash Table", structures[4].Name)
	assert.Equal(t, "N/A", structures[4].Average.Access)
	assert.Equal(t, "O(n·k)", structures[9].Space)
}

func TestLoad_UnsupportedLanguage(t *testing.T) {
	_, err := catalog.Load(catalog.WithLanguages(models.LanguageCPP, "go"))
	require.Error(t, err)

	var cfgErr *catalog.ConfigurationError
	require.True(t, errors.As(err, &cfgErr))
	assert.Equal(t, catalog.KindMissingSolution, cfgErr.Kind)
	assert.Equal(t, 1, cfgErr.QuestionID)
}

const validAlgorithms = `algorithms:
  - name: "Linear Search"
    best: "O(1)"
    average: "O(n)"
    worst: "O(n)"
    space: "O(1)"
    note: "scan"
`

const validStructures = `structures:
  - name: "Array"
    average: {access: "O(1)", search: "O(n)", insert: "O(n)", delete: "O(n)"}
    worst: {access: "O(1)", search: "O(n)", insert: "O(n)", delete: "O(n)"}
    space: "O(n)"
`

const validQuestions = `questions:
  - id: 1
    title: "Two Sum"
    topic: "Array"
    difficulty: Easy
    logic: "hash map"
    time: "O(n)"
    space: "O(n)"
    tip: "complements"
    solutions:
      cpp: "return {};"
      java: "return null;"
`

func datasetFS(overrides map[string]string) fstest.MapFS {
	files := map[string]string{
		catalog.SortingFile:    validAlgorithms,
		catalog.SearchingFile:  validAlgorithms,
		catalog.StructuresFile: validStructures,
		catalog.QuestionsFile:  validQuestions,
	}
	for k, v := range overrides {
		files[k] = v
	}
	fsys := fstest.MapFS{}
	for name, body := range files {
		fsys[name] = &fstest.MapFile{Data: []byte(body)}
	}
	return fsys
}

func TestLoadFS_Valid(t *testing.T) {
	cat, err := catalog.LoadFS(datasetFS(nil))
	require.NoError(t, err)
	assert.Len(t, cat.Questions(), 1)
	assert.Len(t, cat.Structures(), 1)
}

func TestLoadFS_SchemaViolations(t *testing.T) {
	tests := []struct {
		name string
		file string
		body string
	}{
		{
			name: "id is a string",
			file: catalog.QuestionsFile,
			body: `questions:
  - id: "one"
    title: "Two Sum"
    topic: "Array"
    difficulty: Easy
    logic: ""
    time: "O(n)"
    space: "O(n)"
    tip: ""
    solutions: {cpp: "x", java: "y"}
`,
		},
		{
			name: "missing solutions",
			file: catalog.QuestionsFile,
			body: `questions:
  - id: 1
    title: "Two Sum"
    topic: "Array"
    difficulty: Easy
    logic: ""
    time: "O(n)"
    space: "O(n)"
    tip: ""
`,
		},
		{
			name: "unknown algorithm field",
			file: catalog.SortingFile,
			body: `algorithms:
  - {name: "X", best: "O(1)", average: "O(1)", worst: "O(1)", space: "O(1)", note: "", colour: "red"}
`,
		},
		{
			name: "structure missing worst costs",
			file: catalog.StructuresFile,
			body: `structures:
  - name: "Array"
    average: {access: "O(1)", search: "O(n)", insert: "O(n)", delete: "O(n)"}
    space: "O(n)"
`,
		},
		{
			name: "empty document",
			file: catalog.SearchingFile,
			body: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := catalog.LoadFS(datasetFS(map[string]string{tt.file: tt.body}))
			cfgErr := requireConfigError(t, err, catalog.KindSchema)
			assert.Equal(t, tt.file, cfgErr.Source)
		})
	}
}

func TestLoadFS_MalformedYAML(t *testing.T) {
	_, err := catalog.LoadFS(datasetFS(map[string]string{catalog.QuestionsFile: "questions: [unterminated"}))
	requireConfigError(t, err, catalog.KindDecode)
}

func TestLoadFS_MissingFile(t *testing.T) {
	fsys := datasetFS(nil)
	delete(fsys, catalog.StructuresFile)

	_, err := catalog.LoadFS(fsys)
	cfgErr := requireConfigError(t, err, catalog.KindRead)
	assert.True(t, errors.Is(err, fs.ErrNotExist))
	assert.Equal(t, catalog.StructuresFile, cfgErr.Source)
}

func TestLoadFS_SemanticViolationAfterSchema(t *testing.T) {
	body := `questions:
  - id: 4
    title: "Clone Graph"
    topic: "Graphs"
    difficulty: Medium
    logic: ""
    time: "O(V+E)"
    space: "O(V)"
    tip: ""
    solutions: {cpp: "x", java: "y"}
`
	_, err := catalog.LoadFS(datasetFS(map[string]string{catalog.QuestionsFile: body}))
	cfgErr := requireConfigError(t, err, catalog.KindUnknownTopic)
	assert.Equal(t, 4, cfgErr.QuestionID)
}
