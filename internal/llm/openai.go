package llm

import (
	"context"
	"errors"
	"fmt"

	"github.com/openai/openai-go"
)

var errNoChoices = errors.New("no response choices returned")

// openAIChat runs a chat completion against any OpenAI compatible endpoint.
func openAIChat(ctx context.Context, client openai.Client, model string, messages []Message) (string, error) {
	resp, err := client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model:    model,
		Messages: toOpenAIMessages(messages),
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", errNoChoices
	}
	return resp.Choices[0].Message.Content, nil
}

func toOpenAIMessages(messages []Message) []openai.ChatCompletionMessageParamUnion {
	result := make([]openai.ChatCompletionMessageParamUnion, len(messages))
	for i, msg := range messages {
		switch msg.Role {
		case RoleSystem:
			result[i] = openai.SystemMessage(msg.Content)
		case RoleAssistant:
			result[i] = openai.AssistantMessage(msg.Content)
		default:
			result[i] = openai.UserMessage(msg.Content)
		}
	}
	return result
}

// openAIChatJSON is openAIChat followed by JSON decoding of the reply.
func openAIChatJSON(ctx context.Context, client openai.Client, model string, messages []Message, result any) error {
	content, err := openAIChat(ctx, client, model, messages)
	if err != nil {
		return fmt.Errorf("chat completion: %w", err)
	}
	return decodeJSON(content, result)
}
