package llm

import (
	"context"
	"fmt"
	"strings"
)

const (
	ProviderNone     = "none"
	ProviderCopilot  = "copilot"
	ProviderOllama   = "ollama"
	ProviderLMStudio = "lmstudio"
)

// NewClient creates an LLM client based on provider configuration.
// It returns ErrDisabled for the "none" provider.
func NewClient(ctx context.Context, provider, model, baseURL string) (Client, error) {
	switch strings.ToLower(strings.TrimSpace(provider)) {
	case "", ProviderNone, "off":
		return nil, ErrDisabled
	case ProviderCopilot:
		return NewCopilotClient(ctx, model)
	case ProviderOllama:
		return NewOllamaClient(model, baseURL)
	case ProviderLMStudio, "lm-studio", "llmstudio":
		return NewLMStudioClient(model, baseURL)
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", provider)
	}
}
