package catalog

import (
	"embed"
	"fmt"
	"io/fs"

	"gopkg.in/yaml.v3"

	"github.com/HerbHall/bigoref/pkg/models"
)

//go:embed data/*.yaml
var dataFS embed.FS

// Dataset file names, relative to the root of the FS passed to LoadFS.
const (
	SortingFile    = "sorting.yaml"
	SearchingFile  = "searching.yaml"
	StructuresFile = "structures.yaml"
	QuestionsFile  = "questions.yaml"
)

type algorithmFile struct {
	Algorithms []models.AlgorithmEntry `yaml:"algorithms"`
}

type structureFile struct {
	Structures []models.DataStructureEntry `yaml:"structures"`
}

type questionFile struct {
	Questions []models.InterviewQuestion `yaml:"questions"`
}

// Load builds the catalog from the embedded dataset.
func Load(opts ...Option) (*Catalog, error) {
	sub, err := fs.Sub(dataFS, "data")
	if err != nil {
		return nil, fmt.Errorf("catalog: embedded data: %w", err)
	}
	return LoadFS(sub, opts...)
}

// LoadFS builds the catalog from the four dataset files in fsys. Each file is
// checked against its JSON schema before decoding.
func LoadFS(fsys fs.FS, opts ...Option) (*Catalog, error) {
	var (
		sorting, searching algorithmFile
		structures         structureFile
		questions          questionFile
	)

	docs := []struct {
		name   string
		schema string
		out    any
	}{
		{SortingFile, algorithmsSchema, &sorting},
		{SearchingFile, algorithmsSchema, &searching},
		{StructuresFile, structuresSchema, &structures},
		{QuestionsFile, questionsSchema, &questions},
	}
	for _, d := range docs {
		if err := readDocument(fsys, d.name, d.schema, d.out); err != nil {
			return nil, err
		}
	}

	return New(Source{
		Sorting:    sorting.Algorithms,
		Searching:  searching.Algorithms,
		Structures: structures.Structures,
		Questions:  questions.Questions,
	}, opts...)
}

func readDocument(fsys fs.FS, name, schema string, out any) error {
	raw, err := fs.ReadFile(fsys, name)
	if err != nil {
		return &ConfigurationError{Kind: KindRead, Source: name, Detail: err.Error(), Err: err}
	}

	var doc any
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return &ConfigurationError{Kind: KindDecode, Source: name, Detail: err.Error(), Err: err}
	}
	if err := validateSchema(name, schema, doc); err != nil {
		return err
	}

	if err := yaml.Unmarshal(raw, out); err != nil {
		return &ConfigurationError{Kind: KindDecode, Source: name, Detail: err.Error(), Err: err}
	}
	return nil
}
