package questionbank

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"github.com/jonathan/interview-navigator/internal/types"
)

// ValidationError carries per-field schema violations for a bank payload.
type ValidationError struct {
	Errors []FieldError
}

// FieldError is a single violation at a specific field path.
type FieldError struct {
	Field   string
	Message string
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString("question bank validation failed:\n")
	for i, err := range ve.Errors {
		sb.WriteString(fmt.Sprintf("  %d. %s: %s\n", i+1, err.Field, err.Message))
	}
	return sb.String()
}

// ValidateCanonical checks a normalized bank against the embedded JSON Schema.
// Used as a safety check on generator output and by the validate command.
func ValidateCanonical(bank *types.QuestionBank) error {
	doc, err := json.Marshal(bank)
	if err != nil {
		return fmt.Errorf("failed to marshal bank for validation: %w", err)
	}
	return ValidateJSONString(string(doc))
}

// ValidateJSONString validates canonical question bank JSON against the
// embedded schema.
func ValidateJSONString(jsonContent string) error {
	schemaLoader := gojsonschema.NewStringLoader(bankSchema)
	documentLoader := gojsonschema.NewStringLoader(jsonContent)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return fmt.Errorf("schema validation failed during load: %w", err)
	}

	if result.Valid() {
		return nil
	}

	validationErr := &ValidationError{
		Errors: make([]FieldError, 0, len(result.Errors())),
	}
	for _, desc := range result.Errors() {
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
