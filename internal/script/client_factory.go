package script

import (
	"fmt"

	"blendgen/internal/config"

	"go.uber.org/zap"
)

// NewClient builds the LLMClient named by the configuration. The
// provider's base URL and model are taken from the config when set,
// otherwise the provider defaults apply.
func NewClient(cfg *config.Config, logger *zap.Logger) (LLMClient, error) {
	llm := cfg.LLM
	switch llm.Provider {
	case "anthropic":
		ac := DefaultAnthropicConfig(llm.APIKey)
		if llm.BaseURL != "" {
			ac.BaseURL = llm.BaseURL
		}
		if llm.Model != "" {
			ac.Model = llm.Model
		}
		ac.Timeout = llm.ParsedTimeout()
		return NewAnthropicClientWithConfig(ac, logger), nil
	case "openai":
		oc := DefaultOpenAIConfig(llm.APIKey)
		if llm.BaseURL != "" {
			oc.BaseURL = llm.BaseURL
		}
		if llm.Model != "" {
			oc.Model = llm.Model
		}
		oc.Timeout = llm.ParsedTimeout()
		return NewOpenAIClientWithConfig(oc, logger), nil
	case "gemini":
		gc := DefaultGeminiConfig(llm.APIKey)
		if llm.Model != "" {
			gc.Model = llm.Model
		}
		gc.Timeout = llm.ParsedTimeout()
		return NewGeminiClientWithConfig(gc, logger)
	default:
		return nil, fmt.Errorf("unknown llm provider %q", llm.Provider)
	}
}
