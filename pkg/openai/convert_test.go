package openai

import (
	"testing"

	goopenai "github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dskvich/ai-core-examples/pkg/domain"
)

func TestConvertMessages(t *testing.T) {
	messages, err := convertMessages("Be brief.", "", []domain.Message{
		{Role: domain.MessageRoleAssistant, Parts: []domain.ContentPart{domain.TextPart("Hello, "), domain.TextPart("traveller.")}},
		domain.UserMessage(domain.TextPart("Who are you?")),
	})
	require.NoError(t, err)
	require.Len(t, messages, 3)

	assert.Equal(t, goopenai.ChatCompletionMessage{Role: goopenai.ChatMessageRoleSystem, Content: "Be brief."}, messages[0])
	assert.Equal(t, goopenai.ChatCompletionMessage{Role: goopenai.ChatMessageRoleAssistant, Content: "Hello, traveller."}, messages[1])
	assert.Equal(t, []goopenai.ChatMessagePart{{Type: goopenai.ChatMessagePartTypeText, Text: "Who are you?"}}, messages[2].MultiContent)
}

func TestConvertMessagesRejectsInvalidParts(t *testing.T) {
	_, err := convertMessages("", "", []domain.Message{
		{Role: domain.MessageRoleSystem, Parts: []domain.ContentPart{domain.ImageDataPart([]byte("x"), "")}},
	})
	assert.ErrorContains(t, err, "only text parts are allowed")

	_, err = convertMessages("", "", []domain.Message{
		{Role: "tool", Parts: []domain.ContentPart{domain.TextPart("x")}},
	})
	assert.ErrorContains(t, err, `unsupported role "tool"`)

	_, err = convertMessages("", "", []domain.Message{
		domain.UserMessage(domain.ContentPart{Type: "audio"}),
	})
	assert.ErrorContains(t, err, `unsupported content part type "audio"`)
}
