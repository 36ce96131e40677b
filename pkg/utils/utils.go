package utils

import (
	"encoding/json"

	"github.com/invopop/jsonschema"
)

// GetSchemaFromConfig reflects config into an indented JSON schema. A non-empty
// title is set on the root schema. Definitions are inlined so editors can
// resolve the schema without following references.
func GetSchemaFromConfig(config any, title string) (string, error) {
	reflector := jsonschema.Reflector{DoNotReference: true}

	schema := reflector.Reflect(config)
	if title != "" {
		schema.Title = title
	}

	jsonSchemaBytes, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return "", err
	}

	return string(jsonSchemaBytes), nil
}
