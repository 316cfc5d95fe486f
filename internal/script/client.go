// Package script turns object names into Blender Python scripts by
// prompting a generative-text API, one synchronous call per name.
package script

import (
	"context"
	"time"
)

// LLMClient is the minimal capability the generation pipeline needs from
// a provider: one name-derived prompt in, one text out. Failures are
// returned as-is and are fatal to the run; no provider retries.
type LLMClient interface {
	Complete(ctx context.Context, prompt string) (string, error)
	CompleteWithSystem(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

// AnthropicConfig holds configuration for the Anthropic client.
type AnthropicConfig struct {
	APIKey  string
	BaseURL string
	Model   string
	Timeout time.Duration
}

// OpenAIConfig holds configuration for the OpenAI client.
type OpenAIConfig struct {
	APIKey  string
	BaseURL string
	Model   string
	Timeout time.Duration
}

// GeminiConfig holds configuration for the Gemini client.
type GeminiConfig struct {
	APIKey  string
	Model   string
	Timeout time.Duration
}
