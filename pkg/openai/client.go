package openai

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	goopenai "github.com/sashabaranov/go-openai"

	"github.com/dskvich/ai-core-examples/pkg/domain"
	"github.com/dskvich/ai-core-examples/pkg/schema"
)

type Config struct {
	APIKey       string
	BaseURL      string
	Organization string
	HTTPClient   *http.Client
}

type client struct {
	api *goopenai.Client
}

// NewClient builds a chat completions client. An empty API key is accepted;
// the provider rejects the first request instead.
func NewClient(cfg Config) *client {
	apiCfg := goopenai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		apiCfg.BaseURL = cfg.BaseURL
	}
	apiCfg.OrgID = cfg.Organization
	if cfg.HTTPClient != nil {
		apiCfg.HTTPClient = cfg.HTTPClient
	}

	return &client{api: goopenai.NewClientWithConfig(apiCfg)}
}

// GenerateObject issues one chat completion asking for output matching
// req.Schema and returns the validated object.
func (c *client) GenerateObject(ctx context.Context, req domain.ObjectRequest) (domain.ObjectResult, error) {
	const op = "generate object"

	mode := req.Mode
	if !mode.IsValid() && mode != "" {
		return domain.ObjectResult{}, &domain.GenerationError{
			Kind: domain.ErrorKindInvalidRequest,
			Op:   op,
			Err:  fmt.Errorf("%w: %q", domain.ErrUnsupportedMode, mode),
		}
	}
	if mode == "" || mode == domain.ModeAuto {
		mode = domain.ModeTool
	}

	chatReq, err := buildObjectRequest(req, mode)
	if err != nil {
		return domain.ObjectResult{}, &domain.GenerationError{Kind: domain.ErrorKindInvalidRequest, Op: op, Err: err}
	}

	slog.DebugContext(ctx, "Calling OpenAI for object generation", "model", req.Model, "mode", mode, "messagesCount", len(chatReq.Messages))

	resp, err := c.api.CreateChatCompletion(ctx, chatReq)
	if err != nil {
		return domain.ObjectResult{}, classifyError(op, err)
	}
	if len(resp.Choices) == 0 {
		return domain.ObjectResult{}, &domain.GenerationError{Kind: domain.ErrorKindProvider, Op: op, Err: domain.ErrNoObjectGenerated}
	}

	choice := resp.Choices[0]
	raw, err := extractObject(choice.Message, mode)
	if err != nil {
		return domain.ObjectResult{}, &domain.GenerationError{Kind: domain.ErrorKindValidation, Op: op, Err: err}
	}

	object, err := schema.Validate(req.Schema, []byte(raw))
	if err != nil {
		return domain.ObjectResult{}, &domain.GenerationError{Kind: domain.ErrorKindValidation, Op: op, Err: err}
	}

	result := domain.ObjectResult{
		Object:       object,
		FinishReason: mapFinishReason(choice.FinishReason),
		Usage:        mapUsage(resp.Usage),
	}

	slog.InfoContext(ctx, "Object generated", "model", resp.Model, "finishReason", result.FinishReason, "totalTokens", result.Usage.TotalTokens)

	return result, nil
}

// GenerateText issues one chat completion and returns the generated text.
func (c *client) GenerateText(ctx context.Context, req domain.TextRequest) (domain.TextResult, error) {
	const op = "generate text"

	if err := domain.ValidatePrompt(req.Prompt, req.Messages); err != nil {
		return domain.TextResult{}, &domain.GenerationError{Kind: domain.ErrorKindInvalidRequest, Op: op, Err: err}
	}

	messages, err := convertMessages(req.System, req.Prompt, req.Messages)
	if err != nil {
		return domain.TextResult{}, &domain.GenerationError{Kind: domain.ErrorKindInvalidRequest, Op: op, Err: err}
	}

	chatReq := goopenai.ChatCompletionRequest{
		Model:     req.Model,
		Messages:  messages,
		MaxTokens: req.MaxTokens,
	}
	applySettings(&chatReq, req.Settings)

	slog.DebugContext(ctx, "Calling OpenAI for text generation", "model", req.Model, "maxTokens", req.MaxTokens, "messagesCount", len(messages))

	resp, err := c.api.CreateChatCompletion(ctx, chatReq)
	if err != nil {
		return domain.TextResult{}, classifyError(op, err)
	}
	if len(resp.Choices) == 0 {
		return domain.TextResult{}, &domain.GenerationError{Kind: domain.ErrorKindProvider, Op: op, Err: domain.ErrNoTextGenerated}
	}

	choice := resp.Choices[0]
	result := domain.TextResult{
		Text:         choice.Message.Content,
		FinishReason: mapFinishReason(choice.FinishReason),
		Usage:        mapUsage(resp.Usage),
	}

	slog.InfoContext(ctx, "Text generated", "model", resp.Model, "finishReason", result.FinishReason, "totalTokens", result.Usage.TotalTokens)

	return result, nil
}
