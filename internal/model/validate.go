package model

import (
	_ "embed"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed portfolio.schema.json
var schemaJSON []byte

// ErrSchemaViolation is returned when a document does not match
// portfolio.schema.json.
var ErrSchemaViolation = errors.New("schema validation failed")

var compiledSchema = sync.OnceValues(func() (*gojsonschema.Schema, error) {
	return gojsonschema.NewSchema(gojsonschema.NewBytesLoader(schemaJSON))
})

// SchemaJSON returns the raw JSON schema for the canonical record.
func SchemaJSON() []byte {
	out := make([]byte, len(schemaJSON))
	copy(out, schemaJSON)
	return out
}

// ValidateMap validates a generic document against portfolio.schema.json.
// It only checks shape; field-level rules live in the usecase validator.
func ValidateMap(m map[string]interface{}) error {
	return validateLoader(gojsonschema.NewGoLoader(m))
}

// ValidatePortfolio checks an already-typed record against the schema.
func ValidatePortfolio(p *Portfolio) error {
	if p == nil {
		return fmt.Errorf("%w: nil portfolio", ErrSchemaViolation)
	}
	return validateLoader(gojsonschema.NewGoLoader(p))
}

func validateLoader(doc gojsonschema.JSONLoader) error {
	schema, err := compiledSchema()
	if err != nil {
		return fmt.Errorf("load schema: %w", err)
	}
	res, err := schema.Validate(doc)
	if err != nil {
		return err
	}
	if res.Valid() {
		return nil
	}
	msgs := make([]string, 0, len(res.Errors()))
	for _, e := range res.Errors() {
		msgs = append(msgs, e.String())
	}
	return fmt.Errorf("%w: %s", ErrSchemaViolation, strings.Join(msgs, "; "))
}
