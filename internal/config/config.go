package config

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

// Mode selects how the model gateway behaves. It is resolved exactly once
// at startup and treated as read-only afterwards.
type Mode string

const (
	ModeLive Mode = "live"
	ModeMock Mode = "mock"
)

type Config struct {
	Server ServerConfig
	LLM    LLMConfig
}

type ServerConfig struct {
	Port         string        `envconfig:"SERVER_PORT" default:"8000"`
	Host         string        `envconfig:"SERVER_HOST" default:"0.0.0.0"`
	ReadTimeout  time.Duration `envconfig:"SERVER_READ_TIMEOUT" default:"30s"`
	WriteTimeout time.Duration `envconfig:"SERVER_WRITE_TIMEOUT" default:"60s"`
}

type LLMConfig struct {
	Provider       string `envconfig:"LLM_PROVIDER" default:"gemini"`
	GeminiAPIKey   string `envconfig:"GEMINI_API_KEY"`
	GeminiModel    string `envconfig:"GEMINI_MODEL" default:"gemini-pro"`
	GeminiEndpoint string `envconfig:"GEMINI_ENDPOINT" default:"https://generativelanguage.googleapis.com"`
	OpenAIAPIKey   string `envconfig:"OPENAI_API_KEY"`
	OpenAIModel    string `envconfig:"OPENAI_MODEL" default:"gpt-4o-mini"`
	OpenAIEndpoint string `envconfig:"OPENAI_ENDPOINT" default:"https://api.openai.com/v1"`
	SecretsFile    string `envconfig:"SECRETS_FILE" default:"secrets.yaml"`

	// Mode is derived from the resolved credentials, not read from the
	// environment.
	Mode Mode `ignored:"true"`
}

// secretsFile mirrors the optional local secret store. Values found here
// take priority over environment variables.
type secretsFile struct {
	GeminiAPIKey string `yaml:"gemini_api_key"`
	OpenAIAPIKey string `yaml:"openai_api_key"`
}

func LoadConfig() (*Config, error) {
	// .env is a local development convenience; absence is not an error.
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}

	switch cfg.LLM.Provider {
	case "gemini", "openai":
	default:
		return nil, fmt.Errorf("unknown LLM provider %q", cfg.LLM.Provider)
	}

	if err := cfg.LLM.resolveCredentials(); err != nil {
		return nil, err
	}

	cfg.LLM.Mode = ModeLive
	if cfg.LLM.APIKey() == "" {
		cfg.LLM.Mode = ModeMock
	}

	slog.Info("configuration loaded", "provider", cfg.LLM.Provider, "mode", cfg.LLM.Mode)
	return &cfg, nil
}

// resolveCredentials overlays the secrets file on top of the environment.
// A missing secrets file is fine; a malformed one is not.
func (c *LLMConfig) resolveCredentials() error {
	data, err := os.ReadFile(c.SecretsFile)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("reading secrets file %s: %w", c.SecretsFile, err)
	}

	var secrets secretsFile
	if err := yaml.Unmarshal(data, &secrets); err != nil {
		return fmt.Errorf("parsing secrets file %s: %w", c.SecretsFile, err)
	}

	if secrets.GeminiAPIKey != "" {
		c.GeminiAPIKey = secrets.GeminiAPIKey
	}
	if secrets.OpenAIAPIKey != "" {
		c.OpenAIAPIKey = secrets.OpenAIAPIKey
	}
	return nil
}

// APIKey returns the credential for the selected provider.
func (c *LLMConfig) APIKey() string {
	if c.Provider == "openai" {
		return c.OpenAIAPIKey
	}
	return c.GeminiAPIKey
}

// Model returns the model identifier for the selected provider.
func (c *LLMConfig) Model() string {
	if c.Provider == "openai" {
		return c.OpenAIModel
	}
	return c.GeminiModel
}
