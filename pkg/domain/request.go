package domain

import (
	"encoding/json"
	"fmt"

	"github.com/sashabaranov/go-openai/jsonschema"
)

// Mode selects how a structured object is requested from the model.
type Mode string

const (
	// ModeAuto lets the provider pick its preferred mode.
	ModeAuto Mode = "auto"
	// ModeJSON asks for a JSON object response and injects the schema into the system prompt.
	ModeJSON Mode = "json"
	// ModeTool forces a single function call whose parameters are the schema.
	ModeTool Mode = "tool"
	// ModeGrammar uses the provider's native schema constrained decoding.
	ModeGrammar Mode = "grammar"
)

func (m Mode) IsValid() bool {
	switch m {
	case ModeAuto, ModeJSON, ModeTool, ModeGrammar:
		return true
	default:
		return false
	}
}

// Settings are the generation knobs shared by text and object requests.
type Settings struct {
	// MaxTokens caps the generated output. Zero leaves the provider default.
	MaxTokens int
	// Temperature is left to the provider when nil. A pointer to 0 asks
	// for deterministic sampling.
	Temperature *float32
	System      string
}

// ValidatePrompt checks that exactly one of prompt or messages is set.
func ValidatePrompt(prompt string, messages []Message) error {
	switch {
	case prompt == "" && len(messages) == 0:
		return fmt.Errorf("%w: prompt or messages must be defined", ErrInvalidPrompt)
	case prompt != "" && len(messages) > 0:
		return fmt.Errorf("%w: prompt and messages cannot be defined at the same time", ErrInvalidPrompt)
	}
	for i, msg := range messages {
		if len(msg.Parts) == 0 {
			return fmt.Errorf("%w: message %d has no content parts", ErrInvalidPrompt, i)
		}
	}
	return nil
}

type ObjectRequest struct {
	Model             string
	Prompt            string
	Messages          []Message
	Schema            jsonschema.Definition
	SchemaName        string
	SchemaDescription string
	Mode              Mode
	Settings
}

type TextRequest struct {
	Model    string
	Prompt   string
	Messages []Message
	Settings
}

type FinishReason string

const (
	FinishReasonStop          FinishReason = "stop"
	FinishReasonLength        FinishReason = "length"
	FinishReasonContentFilter FinishReason = "content-filter"
	FinishReasonToolCalls     FinishReason = "tool-calls"
	FinishReasonOther         FinishReason = "other"
)

type Usage struct {
	PromptTokens     int
	CompletionTokens int
	TotalTokens      int
}

type ObjectResult struct {
	// Object is the validated JSON with undeclared properties removed.
	Object       json.RawMessage
	FinishReason FinishReason
	Usage        Usage
}

// Decode unmarshals the validated object into v.
func (r ObjectResult) Decode(v any) error {
	if len(r.Object) == 0 {
		return ErrNoObjectGenerated
	}
	if err := json.Unmarshal(r.Object, v); err != nil {
		return fmt.Errorf("decoding object: %w", err)
	}
	return nil
}

type TextResult struct {
	Text         string
	FinishReason FinishReason
	Usage        Usage
}
