package factory

import (
	"fmt"
	"time"

	"hr-chatbot-be/pkg/llm"
	"hr-chatbot-be/pkg/llm/anthropic"
	"hr-chatbot-be/pkg/llm/ollama"
)

// NewLLMProvider builds the configured provider. requestTimeout bounds each
// HTTP call; a non-positive value falls back to the provider default.
func NewLLMProvider(providerType, modelName, apiKey, baseURL string, requestTimeout time.Duration) (llm.LLMProvider, error) {
	switch providerType {
	case "anthropic":
		if apiKey == "" {
			return nil, fmt.Errorf("anthropic provider requires an api key")
		}
		return anthropic.NewAnthropicProvider(apiKey, modelName, requestTimeout), nil
	case "ollama":
		if baseURL == "" {
			baseURL = "http://localhost:11434" // Default
		}
		return ollama.NewOllamaProvider(baseURL, modelName, requestTimeout), nil
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", providerType)
	}
}
