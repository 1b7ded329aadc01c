package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

const (
	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"
)

type Config struct {
	Port           string   `envconfig:"PORT" default:"5000"`
	AllowedOrigins []string `envconfig:"ALLOWED_ORIGIN" default:"*"`
	Provider       string   `envconfig:"LLM_PROVIDER" default:"openai"`
	// OpenAI
	OpenAIAPIKey  string `envconfig:"OPENAI_API_KEY"`
	OpenAIBaseURL string `envconfig:"OPENAI_BASE_URL"`
	Model         string `envconfig:"OPENAI_MODEL" default:"gpt-4o-mini"`
	// Gemini
	GeminiAPIKey string `envconfig:"GEMINI_API_KEY"`
	GeminiModel  string `envconfig:"GEMINI_MODEL" default:"gemini-2.0-flash"`
	// Optional YAML file replacing the built-in prompt catalog
	PromptsFile string        `envconfig:"PROMPTS_FILE"`
	LLMTimeout  time.Duration `envconfig:"LLM_TIMEOUT" default:"60s"`
	LogLevel    string        `envconfig:"LOG_LEVEL" default:"info"`
	LogFormat   string        `envconfig:"LOG_FORMAT" default:"json"`
}

// Load reads an optional .env file and then the process environment.
func Load() (Config, error) {
	_ = godotenv.Load()
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to read environment: %w", err)
	}
	cfg.Provider = strings.ToLower(strings.TrimSpace(cfg.Provider))
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	switch c.Provider {
	case ProviderOpenAI, ProviderGemini:
	default:
		return fmt.Errorf("unsupported LLM_PROVIDER %q (want %q or %q)", c.Provider, ProviderOpenAI, ProviderGemini)
	}
	if strings.TrimSpace(c.Port) == "" {
		return fmt.Errorf("PORT must not be empty")
	}
	return nil
}

// APIKey returns the key of the selected provider.
func (c Config) APIKey() string {
	if c.Provider == ProviderGemini {
		return c.GeminiAPIKey
	}
	return c.OpenAIAPIKey
}

func (c Config) Addr() string { return ":" + c.Port }
