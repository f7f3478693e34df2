package demo

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/sashabaranov/go-openai/jsonschema"

	"github.com/dskvich/ai-core-examples/pkg/domain"
	"github.com/dskvich/ai-core-examples/pkg/output"
)

const (
	CharactersModel  = "gpt-4-turbo"
	CharactersPrompt = "Generate 3 character descriptions for a fantasy role playing game."
)

type ObjectGenerator interface {
	GenerateObject(ctx context.Context, req domain.ObjectRequest) (domain.ObjectResult, error)
}

type Character struct {
	Name        string `json:"name"`
	Class       string `json:"class"`
	Description string `json:"description"`
}

type Characters struct {
	Characters []Character `json:"characters"`
}

func CharactersSchema() jsonschema.Definition {
	return jsonschema.Definition{
		Type: jsonschema.Object,
		Properties: map[string]jsonschema.Definition{
			"characters": {
				Type: jsonschema.Array,
				Items: &jsonschema.Definition{
					Type: jsonschema.Object,
					Properties: map[string]jsonschema.Definition{
						"name": {Type: jsonschema.String},
						"class": {
							Type:        jsonschema.String,
							Description: "Character class, e.g. warrior, mage, or thief.",
						},
						"description": {Type: jsonschema.String},
					},
					Required: []string{"name", "class", "description"},
				},
			},
		},
		Required: []string{"characters"},
	}
}

func CharactersRequest() domain.ObjectRequest {
	return domain.ObjectRequest{
		Model:  CharactersModel,
		Prompt: CharactersPrompt,
		Schema: CharactersSchema(),
		Mode:   domain.ModeJSON,
	}
}

// GenerateCharacters asks for fantasy RPG characters and writes them to w
// as indented JSON. Nothing is written when the request fails.
func GenerateCharacters(ctx context.Context, gen ObjectGenerator, w io.Writer) error {
	req := CharactersRequest()

	slog.InfoContext(ctx, "Generating characters", "model", req.Model, "mode", req.Mode)

	res, err := gen.GenerateObject(ctx, req)
	if err != nil {
		return fmt.Errorf("generating characters: %w", err)
	}

	var characters Characters
	if err := res.Decode(&characters); err != nil {
		return fmt.Errorf("decoding characters: %w", err)
	}

	writer := output.JSONWriter{}
	return writer.Write(w, characters)
}
