// Package config holds the unified blendgen configuration: defaults,
// YAML load/save, environment overrides, and validation.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all blendgen configuration.
type Config struct {
	// Core settings
	Name    string `yaml:"name"`
	Version string `yaml:"version"`

	// LLM configuration for the script-generation pipeline
	LLM LLMConfig `yaml:"llm"`

	// Pipeline artifact paths
	Artifacts ArtifactsConfig `yaml:"artifacts"`

	// Name generation settings
	Generation GenerationConfig `yaml:"generation"`

	// SQLite record store
	Store StoreConfig `yaml:"store"`
}

// LLMConfig configures the generation client.
type LLMConfig struct {
	Provider string `yaml:"provider"` // anthropic, openai, gemini
	APIKey   string `yaml:"api_key"`
	Model    string `yaml:"model"`
	BaseURL  string `yaml:"base_url"`
	Timeout  string `yaml:"timeout"`
}

// ArtifactsConfig names the files the pipelines read and write.
type ArtifactsConfig struct {
	NamesPath    string `yaml:"names_path"`
	ResultsPath  string `yaml:"results_path"`
	EntitiesPath string `yaml:"entities_path"`
}

// GenerationConfig controls the name combinator and filter.
type GenerationConfig struct {
	MaterialLimit int  `yaml:"material_limit"`
	SizeLimit     int  `yaml:"size_limit"`
	StyleLimit    int  `yaml:"style_limit"`
	ColorLimit    int  `yaml:"color_limit"`
	Filter        bool `yaml:"filter"`
}

// StoreConfig configures the SQLite record store.
type StoreConfig struct {
	DatabasePath string `yaml:"database_path"`
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() *Config {
	return &Config{
		Name:    "blendgen",
		Version: "1.0.0",
		LLM: LLMConfig{
			Provider: "anthropic",
			Model:    "claude-sonnet-4-5-20250514",
			Timeout:  "2m",
		},
		Artifacts: ArtifactsConfig{
			NamesPath:    "objects.txt",
			ResultsPath:  "generated_scripts.json",
			EntitiesPath: "entities.json",
		},
		Generation: GenerationConfig{
			MaterialLimit: 50,
			SizeLimit:     40,
			StyleLimit:    30,
			ColorLimit:    25,
			Filter:        false,
		},
		Store: StoreConfig{
			DatabasePath: "generated_models.db",
		},
	}
}

// Load reads configuration from path, applying defaults for missing
// fields and environment overrides on top. A missing file yields the
// defaults plus overrides, not an error.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg.applyEnvOverrides()
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.applyEnvOverrides()
	return cfg, nil
}

// Save writes the configuration as YAML, creating parent directories.
func (c *Config) Save(path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create config directory: %w", err)
		}
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// applyEnvOverrides lets environment variables win over file values.
// Provider keys follow the usual names; BLENDGEN_* settings override
// paths and model.
func (c *Config) applyEnvOverrides() {
	switch c.LLM.Provider {
	case "anthropic":
		if v := os.Getenv("ANTHROPIC_API_KEY"); v != "" {
			c.LLM.APIKey = v
		}
	case "openai":
		if v := os.Getenv("OPENAI_API_KEY"); v != "" {
			c.LLM.APIKey = v
		}
	case "gemini":
		if v := os.Getenv("GEMINI_API_KEY"); v != "" {
			c.LLM.APIKey = v
		}
	}
	if v := os.Getenv("BLENDGEN_MODEL"); v != "" {
		c.LLM.Model = v
	}
	if v := os.Getenv("BLENDGEN_NAMES_PATH"); v != "" {
		c.Artifacts.NamesPath = v
	}
	if v := os.Getenv("BLENDGEN_DB_PATH"); v != "" {
		c.Store.DatabasePath = v
	}
}

// ParsedTimeout parses the LLM timeout, falling back to two minutes.
func (c *LLMConfig) ParsedTimeout() time.Duration {
	d, err := time.ParseDuration(c.Timeout)
	if err != nil || d <= 0 {
		return 2 * time.Minute
	}
	return d
}

// Validate checks settings needed before any pipeline runs. The API key
// is only required by the script-generation pipeline, so it is checked
// separately via ValidateLLM.
func (c *Config) Validate() error {
	if c.Artifacts.NamesPath == "" {
		return fmt.Errorf("artifacts.names_path must not be empty")
	}
	if c.Generation.MaterialLimit < -1 || c.Generation.SizeLimit < -1 ||
		c.Generation.StyleLimit < -1 || c.Generation.ColorLimit < -1 {
		return fmt.Errorf("generation limits must be -1, 0, or positive")
	}
	return nil
}

// ValidateLLM checks the settings the script-generation pipeline needs.
func (c *Config) ValidateLLM() error {
	switch c.LLM.Provider {
	case "anthropic", "openai", "gemini":
	default:
		return fmt.Errorf("unknown llm provider %q", c.LLM.Provider)
	}
	if c.LLM.APIKey == "" {
		return fmt.Errorf("llm.api_key not set (set %s_API_KEY or edit the config file)", providerEnvPrefix(c.LLM.Provider))
	}
	if c.LLM.Model == "" {
		return fmt.Errorf("llm.model must not be empty")
	}
	return nil
}

func providerEnvPrefix(provider string) string {
	switch provider {
	case "openai":
		return "OPENAI"
	case "gemini":
		return "GEMINI"
	default:
		return "ANTHROPIC"
	}
}
