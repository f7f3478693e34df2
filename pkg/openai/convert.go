package openai

import (
	"fmt"
	"strings"

	goopenai "github.com/sashabaranov/go-openai"

	"github.com/dskvich/ai-core-examples/pkg/domain"
)

// convertMessages maps the system prompt, the plain prompt and the message
// list to chat completion messages, preserving part order.
func convertMessages(system, prompt string, messages []domain.Message) ([]goopenai.ChatCompletionMessage, error) {
	out := make([]goopenai.ChatCompletionMessage, 0, len(messages)+2)

	if system != "" {
		out = append(out, goopenai.ChatCompletionMessage{Role: goopenai.ChatMessageRoleSystem, Content: system})
	}
	if prompt != "" {
		out = append(out, goopenai.ChatCompletionMessage{Role: goopenai.ChatMessageRoleUser, Content: prompt})
	}

	for i, msg := range messages {
		converted, err := convertMessage(msg)
		if err != nil {
			return nil, fmt.Errorf("converting message %d: %w", i, err)
		}
		out = append(out, converted)
	}

	return out, nil
}

func convertMessage(msg domain.Message) (goopenai.ChatCompletionMessage, error) {
	switch msg.Role {
	case domain.MessageRoleUser:
		parts := make([]goopenai.ChatMessagePart, 0, len(msg.Parts))
		for _, p := range msg.Parts {
			part, err := convertPart(p)
			if err != nil {
				return goopenai.ChatCompletionMessage{}, err
			}
			parts = append(parts, part)
		}
		return goopenai.ChatCompletionMessage{Role: goopenai.ChatMessageRoleUser, MultiContent: parts}, nil
	case domain.MessageRoleSystem, domain.MessageRoleAssistant:
		text, err := joinText(msg.Parts)
		if err != nil {
			return goopenai.ChatCompletionMessage{}, fmt.Errorf("%s message: %w", msg.Role, err)
		}
		return goopenai.ChatCompletionMessage{Role: string(msg.Role), Content: text}, nil
	default:
		return goopenai.ChatCompletionMessage{}, fmt.Errorf("unsupported role %q", msg.Role)
	}
}

func convertPart(p domain.ContentPart) (goopenai.ChatMessagePart, error) {
	switch p.Type {
	case domain.ContentPartTypeText:
		return goopenai.ChatMessagePart{Type: goopenai.ChatMessagePartTypeText, Text: p.Text}, nil
	case domain.ContentPartTypeImage:
		ref, err := p.ImageReference()
		if err != nil {
			return goopenai.ChatMessagePart{}, err
		}
		return goopenai.ChatMessagePart{
			Type:     goopenai.ChatMessagePartTypeImageURL,
			ImageURL: &goopenai.ChatMessageImageURL{URL: ref},
		}, nil
	default:
		return goopenai.ChatMessagePart{}, fmt.Errorf("unsupported content part type %q", p.Type)
	}
}

func joinText(parts []domain.ContentPart) (string, error) {
	var sb strings.Builder
	for _, p := range parts {
		if p.Type != domain.ContentPartTypeText {
			return "", fmt.Errorf("only text parts are allowed, got %q", p.Type)
		}
		sb.WriteString(p.Text)
	}
	return sb.String(), nil
}
