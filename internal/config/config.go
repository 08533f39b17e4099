package config

import (
	"fmt"
	"log"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	Server  ServerConfig
	LLM     LLMConfig
	PhonePe PhonePeConfig
	Upload  UploadConfig
}

type ServerConfig struct {
	Port string `env:"PORT" envDefault:"8080"`
	Env  string `env:"ENV" envDefault:"development"`
}

type LLMConfig struct {
	Provider     string `env:"LLM_PROVIDER" envDefault:"openrouter"`
	APIKey       string `env:"LLM_API_KEY"`
	BaseURL      string `env:"LLM_BASE_URL" envDefault:"https://openrouter.ai/api/v1"`
	Model        string `env:"LLM_MODEL" envDefault:"deepseek/deepseek-chat"`
	GeminiAPIKey string `env:"GEMINI_API_KEY"`
}

type PhonePeConfig struct {
	MerchantID  string `env:"PHONEPE_MERCHANT_ID"`
	SaltKey     string `env:"PHONEPE_SALT_KEY"`
	SaltIndex   string `env:"PHONEPE_SALT_INDEX" envDefault:"1"`
	BaseURL     string `env:"PHONEPE_BASE_URL" envDefault:"https://api-preprod.phonepe.com/apis/pg-sandbox"`
	RedirectURL string `env:"PHONEPE_REDIRECT_URL"`
	CallbackURL string `env:"PHONEPE_CALLBACK_URL"`
}

type UploadConfig struct {
	MaxFileSize int64 `env:"MAX_FILE_SIZE" envDefault:"5242880"`
}

// Load reads the .env file if present and parses the environment into a Config.
// A missing LLM credential is deliberately not an error here: the review
// endpoint degrades to a fallback message at call time instead of refusing to
// start.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found. Using environment values.")
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	return cfg, nil
}
