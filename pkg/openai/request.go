package openai

import (
	"fmt"
	"math"

	goopenai "github.com/sashabaranov/go-openai"

	"github.com/dskvich/ai-core-examples/pkg/domain"
	"github.com/dskvich/ai-core-examples/pkg/schema"
)

const (
	defaultToolName        = "json"
	defaultToolDescription = "Respond with a JSON object."
	defaultSchemaName      = "response"
)

func buildObjectRequest(req domain.ObjectRequest, mode domain.Mode) (goopenai.ChatCompletionRequest, error) {
	if err := domain.ValidatePrompt(req.Prompt, req.Messages); err != nil {
		return goopenai.ChatCompletionRequest{}, err
	}

	system := req.System
	if mode == domain.ModeJSON {
		injected, err := schema.Inject(req.System, req.Schema)
		if err != nil {
			return goopenai.ChatCompletionRequest{}, err
		}
		system = injected
	}

	messages, err := convertMessages(system, req.Prompt, req.Messages)
	if err != nil {
		return goopenai.ChatCompletionRequest{}, err
	}

	chatReq := goopenai.ChatCompletionRequest{
		Model:     req.Model,
		Messages:  messages,
		MaxTokens: req.MaxTokens,
	}
	applySettings(&chatReq, req.Settings)

	def := req.Schema
	switch mode {
	case domain.ModeJSON:
		chatReq.ResponseFormat = &goopenai.ChatCompletionResponseFormat{
			Type: goopenai.ChatCompletionResponseFormatTypeJSONObject,
		}
	case domain.ModeGrammar:
		chatReq.ResponseFormat = &goopenai.ChatCompletionResponseFormat{
			Type: goopenai.ChatCompletionResponseFormatTypeJSONSchema,
			JSONSchema: &goopenai.ChatCompletionResponseFormatJSONSchema{
				Name:        valueOr(req.SchemaName, defaultSchemaName),
				Description: req.SchemaDescription,
				Schema:      &def,
			},
		}
	case domain.ModeTool:
		name := valueOr(req.SchemaName, defaultToolName)
		chatReq.Tools = []goopenai.Tool{{
			Type: goopenai.ToolTypeFunction,
			Function: &goopenai.FunctionDefinition{
				Name:        name,
				Description: valueOr(req.SchemaDescription, defaultToolDescription),
				Parameters:  &def,
			},
		}}
		chatReq.ToolChoice = goopenai.ToolChoice{
			Type:     goopenai.ToolTypeFunction,
			Function: goopenai.ToolFunction{Name: name},
		}
	default:
		return goopenai.ChatCompletionRequest{}, fmt.Errorf("%w: %q", domain.ErrUnsupportedMode, mode)
	}

	return chatReq, nil
}

// applySettings copies the generation knobs onto chatReq. The SDK omits a
// zero temperature from the payload, which the API reads as its default of 1,
// so an explicit zero is sent as the smallest positive float32 instead.
func applySettings(chatReq *goopenai.ChatCompletionRequest, s domain.Settings) {
	if s.Temperature == nil {
		return
	}
	chatReq.Temperature = *s.Temperature
	if chatReq.Temperature == 0 {
		chatReq.Temperature = math.SmallestNonzeroFloat32
	}
}

// extractObject returns the raw JSON the model produced for the given mode.
func extractObject(msg goopenai.ChatCompletionMessage, mode domain.Mode) (string, error) {
	if mode == domain.ModeTool {
		if len(msg.ToolCalls) == 0 || msg.ToolCalls[0].Function.Arguments == "" {
			return "", fmt.Errorf("%w: model did not call the %s tool", domain.ErrNoObjectGenerated, defaultToolName)
		}
		return msg.ToolCalls[0].Function.Arguments, nil
	}

	if msg.Content == "" {
		return "", fmt.Errorf("%w: empty response content", domain.ErrNoObjectGenerated)
	}
	return msg.Content, nil
}

func valueOr(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
