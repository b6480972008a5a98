package factory

import (
	"testing"
	"time"

	"hr-chatbot-be/pkg/llm/anthropic"
	"hr-chatbot-be/pkg/llm/ollama"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLLMProviderAppliesRequestTimeout(t *testing.T) {
	p, err := NewLLMProvider("anthropic", "claude-3-5-haiku-latest", "test-key", "", 30*time.Second)
	require.NoError(t, err)

	provider, ok := p.(*anthropic.AnthropicProvider)
	require.True(t, ok)
	assert.Equal(t, 30*time.Second, provider.Client.Timeout)
}

func TestNewLLMProviderDefaultsRequestTimeout(t *testing.T) {
	p, err := NewLLMProvider("ollama", "llama3", "", "http://localhost:11434", 0)
	require.NoError(t, err)

	provider, ok := p.(*ollama.OllamaProvider)
	require.True(t, ok)
	assert.Equal(t, 120*time.Second, provider.Client.Timeout)
}

func TestNewLLMProviderRejectsUnknownType(t *testing.T) {
	_, err := NewLLMProvider("openai", "gpt-4o", "", "", time.Minute)
	assert.Error(t, err)
}

func TestNewLLMProviderRequiresAnthropicKey(t *testing.T) {
	_, err := NewLLMProvider("anthropic", "claude-3-5-haiku-latest", "", "", time.Minute)
	assert.Error(t, err)
}
