package factory

import (
	"fmt"
	"time"

	"ai-triage-be/pkg/llm"
	"ai-triage-be/pkg/llm/groq"
	"ai-triage-be/pkg/llm/ollama"
)

// NewLLMProvider builds the remote-tier provider named in config.
func NewLLMProvider(providerType, modelName, baseURL, apiKey string, timeout time.Duration) (llm.LLMProvider, error) {
	switch providerType {
	case "groq":
		return groq.NewGroqProvider(baseURL, apiKey, modelName, timeout), nil
	case "ollama":
		if baseURL == "" {
			baseURL = "http://localhost:11434" // Default
		}
		return ollama.NewOllamaProvider(baseURL, modelName, timeout), nil
	case "none", "":
		return nil, nil
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", providerType)
	}
}
