package content

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

//go:embed catalog.schema.json
var catalogSchemaJSON []byte

const catalogSchemaURL = "schema://edgeai/catalog.json"

var compileSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	var def any
	if err := json.Unmarshal(catalogSchemaJSON, &def); err != nil {
		return nil, fmt.Errorf("parse catalog schema: %w", err)
	}

	c := jsonschema.NewCompiler()
	if err := c.AddResource(catalogSchemaURL, def); err != nil {
		return nil, fmt.Errorf("add resource: %w", err)
	}
	return c.Compile(catalogSchemaURL)
})

// validateSchema checks a decoded YAML document against the catalog schema.
// The document is round-tripped through JSON so that the validator sees
// plain JSON values.
func validateSchema(doc any) error {
	schema, err := compileSchema()
	if err != nil {
		return fmt.Errorf("compile catalog schema: %w", err)
	}

	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("catalog is not representable as JSON: %w", err)
	}
	var inst any
	if err := json.Unmarshal(raw, &inst); err != nil {
		return fmt.Errorf("catalog is not representable as JSON: %w", err)
	}

	if err := schema.Validate(inst); err != nil {
		return fmt.Errorf("catalog schema validation failed: %w", err)
	}
	return nil
}
