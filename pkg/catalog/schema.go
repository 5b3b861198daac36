package catalog

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

var (
	//go:embed schema/algorithms.json
	algorithmsSchema string
	//go:embed schema/structures.json
	structuresSchema string
	//go:embed schema/questions.json
	questionsSchema string
)

// validateSchema checks a decoded YAML document against a JSON schema.
func validateSchema(name, schema string, doc any) error {
	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(schema),
		gojsonschema.NewGoLoader(doc),
	)
	if err != nil {
		return &ConfigurationError{Kind: KindSchema, Source: name, Detail: err.Error(), Err: err}
	}
	if result.Valid() {
		return nil
	}

	msgs := make([]string, 0, len(result.Errors()))
	for _, e := range result.Errors() {
		msgs = append(msgs, e.String())
	}
	return &ConfigurationError{
		Kind:   KindSchema,
		Source: name,
		Detail: fmt.Sprintf("%d violation(s): %s", len(msgs), strings.Join(msgs, "; ")),
	}
}
