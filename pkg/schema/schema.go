// Package schema validates model output against a JSON schema definition and
// renders the schema into prompts for providers without native support.
package schema

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai/jsonschema"
)

const (
	jsonModePrefix = "JSON schema:"
	jsonModeSuffix = "You MUST answer with a JSON object that matches the JSON schema above."
)

// Marshal returns the compact JSON encoding of def.
func Marshal(def jsonschema.Definition) (string, error) {
	b, err := json.Marshal(&def)
	if err != nil {
		return "", fmt.Errorf("marshaling schema: %w", err)
	}
	return string(b), nil
}

// Inject appends the schema and answering instructions to a system prompt.
// An empty system prompt yields just the schema block.
func Inject(system string, def jsonschema.Definition) (string, error) {
	encoded, err := Marshal(def)
	if err != nil {
		return "", err
	}

	var lines []string
	if system != "" {
		lines = append(lines, system, "")
	}
	lines = append(lines, jsonModePrefix, encoded, jsonModeSuffix)

	return strings.Join(lines, "\n"), nil
}
