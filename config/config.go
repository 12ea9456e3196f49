package config

import (
	"fmt"
	"log"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
// Mapstructure tags map environment variables and config file keys.
type Config struct {
	// Server Configuration
	ServerAddress string `mapstructure:"SERVER_ADDRESS"` // e.g., ":8080"
	AppEnv        string `mapstructure:"APP_ENV"`        // "production" switches gin to release mode

	// LLM Provider Configuration
	LLMProvider    string `mapstructure:"LLM_PROVIDER"` // preferred provider: gemini, openai, claude, groq, ollama
	OpenAIKey      string `mapstructure:"OPENAI_API_KEY"`
	OpenAIModel    string `mapstructure:"OPENAI_MODEL"`
	GroqKey        string `mapstructure:"GROQ_API_KEY"`
	GroqModel      string `mapstructure:"GROQ_MODEL"`
	GoogleAPIKey   string `mapstructure:"GOOGLE_API_KEY"`
	GeminiModel    string `mapstructure:"GEMINI_MODEL"`
	AnthropicKey   string `mapstructure:"ANTHROPIC_API_KEY"`
	AnthropicModel string `mapstructure:"ANTHROPIC_MODEL"`
	OllamaBaseURL  string `mapstructure:"OLLAMA_BASE_URL"`
	OllamaModel    string `mapstructure:"OLLAMA_MODEL"`

	// Image Source Configuration
	HFToken           string `mapstructure:"HF_TOKEN"`            // Hugging Face inference API token
	UnsplashAccessKey string `mapstructure:"UNSPLASH_ACCESS_KEY"` // Unsplash API access key

	// Design Catalog Configuration
	StylePresetsPath     string `mapstructure:"STYLE_PRESETS_PATH"`     // optional JSON catalog override
	ComponentLibraryPath string `mapstructure:"COMPONENT_LIBRARY_PATH"` // optional JSON catalog override

	// Session Configuration
	SessionTTL time.Duration `mapstructure:"SESSION_TTL"` // idle expiry for update-loop sessions
}

// LoadConfig reads configuration from file and environment variables.
func LoadConfig(path string) (config Config, err error) {
	viper.AddConfigPath(path)
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	viper.SetDefault("SERVER_ADDRESS", ":8080")
	viper.SetDefault("OPENAI_MODEL", "gpt-4o-mini")
	viper.SetDefault("GROQ_MODEL", "llama-3.1-70b-versatile")
	viper.SetDefault("GEMINI_MODEL", "gemini-2.5-flash")
	viper.SetDefault("ANTHROPIC_MODEL", "claude-3-5-sonnet-20241022")
	viper.SetDefault("OLLAMA_MODEL", "mistral")
	viper.SetDefault("SESSION_TTL", time.Hour)

	viper.AutomaticEnv()

	// Unmarshal only walks keys viper already knows about, so env-only keys
	// (API keys have no sensible default) must be bound explicitly.
	for _, key := range []string{
		"SERVER_ADDRESS", "APP_ENV",
		"LLM_PROVIDER",
		"OPENAI_API_KEY", "OPENAI_MODEL",
		"GROQ_API_KEY", "GROQ_MODEL",
		"GOOGLE_API_KEY", "GEMINI_MODEL",
		"ANTHROPIC_API_KEY", "ANTHROPIC_MODEL",
		"OLLAMA_BASE_URL", "OLLAMA_MODEL",
		"HF_TOKEN", "UNSPLASH_ACCESS_KEY",
		"STYLE_PRESETS_PATH", "COMPONENT_LIBRARY_PATH",
		"SESSION_TTL",
	} {
		if err := viper.BindEnv(key); err != nil {
			return Config{}, fmt.Errorf("binding env key %s: %w", key, err)
		}
	}

	err = viper.ReadInConfig()
	if err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Println("Config file ('config.yaml') not found in specified path, relying solely on environment variables.")
		} else {
			return Config{}, fmt.Errorf("error reading config file: %w", err)
		}
	} else {
		log.Printf("Using configuration file: %s", viper.ConfigFileUsed())
	}

	err = viper.Unmarshal(&config)
	if err != nil {
		return Config{}, fmt.Errorf("unable to decode config into struct: %w", err)
	}

	if config.OpenAIKey == "" && config.GroqKey == "" && config.GoogleAPIKey == "" && config.AnthropicKey == "" {
		log.Println("WARN: no hosted LLM provider key is set; only the local Ollama provider will be usable.")
	}
	if config.HFToken == "" && config.UnsplashAccessKey == "" {
		log.Println("WARN: no image source key is set; generated pages will use placeholder images.")
	}

	return
}
