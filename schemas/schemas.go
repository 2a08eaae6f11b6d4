// Package schemas provides JSON Schema validation for the structured records
// crossing the command boundary. The schema documents are embedded so the
// binary validates payloads regardless of working directory.
package schemas

import (
	"embed"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed *.schema.json
var schemaFS embed.FS

// Schema names accepted by Validate.
const (
	JobRequirements = "job_requirements"
	CVAnalysis      = "cv_analysis"
	MatchingScore   = "matching_score"
)

// FieldError represents a single validation error at a specific field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError represents a schema validation failure with field paths.
type ValidationError struct {
	Schema string
	Errors []FieldError
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "document does not match schema %s:\n", ve.Schema)
	for i, err := range ve.Errors {
		fmt.Fprintf(&sb, "  %d. %s: %s\n", i+1, err.Field, err.Message)
	}
	return sb.String()
}

// SchemaLoadError represents errors loading or parsing the schema itself.
type SchemaLoadError struct {
	Schema string
	Cause  error
}

func (e *SchemaLoadError) Error() string {
	return fmt.Sprintf("failed to load schema %s: %v", e.Schema, e.Cause)
}

func (e *SchemaLoadError) Unwrap() error {
	return e.Cause
}

// Validate checks a JSON document against the named embedded schema.
// Returns nil when the document conforms, a *ValidationError when it does
// not, and a *SchemaLoadError when the schema itself cannot be used.
func Validate(name string, document []byte) error {
	content, err := schemaFS.ReadFile(name + ".schema.json")
	if err != nil {
		return &SchemaLoadError{Schema: name, Cause: err}
	}

	schemaLoader := gojsonschema.NewBytesLoader(content)
	documentLoader := gojsonschema.NewBytesLoader(document)

	outcome, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return &SchemaLoadError{Schema: name, Cause: err}
	}

	if outcome.Valid() {
		return nil
	}

	validationErr := &ValidationError{
		Schema: name,
		Errors: make([]FieldError, 0, len(outcome.Errors())),
	}
	for _, desc := range outcome.Errors() {
		field := desc.Field()
		if field == "" {
			field = "(root)"
		}
		validationErr.Errors = append(validationErr.Errors, FieldError{
			Field:   field,
			Message: desc.Description(),
		})
	}
	return validationErr
}
