package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	env "github.com/Netflix/go-env"
	"github.com/joho/godotenv"
	"github.com/samber/lo"
)

// Secrets holds credentials that never live in config.yaml.
type Secrets struct {
	BotToken     string `env:"BOT_TOKEN,required=true"`
	GeminiToken  string `env:"GEMINI_TOKEN,required=true"`
	OpenAIAPIKey string `env:"OPENAI_API_KEY"`
}

// LoadSecrets loads envFile when present and reads secrets from the environment.
func LoadSecrets(envFile string) (*Secrets, error) {
	if envFile != "" {
		// Missing .env is fine, the variables may come from the process environment.
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", envFile, err)
		}
	}

	var s Secrets
	if _, err := env.UnmarshalFromEnviron(&s); err != nil {
		return nil, fmt.Errorf("read environment: %w", err)
	}

	return &s, nil
}

// GeminiKeys splits GEMINI_TOKEN on commas.
func (s *Secrets) GeminiKeys() []string {
	keys := lo.Map(strings.Split(s.GeminiToken, ","), func(k string, _ int) string {
		return strings.TrimSpace(k)
	})
	return lo.Uniq(lo.Compact(keys))
}

// Check verifies that the secrets required by cfg are present.
func (s *Secrets) Check(cfg *Config) error {
	if strings.TrimSpace(s.BotToken) == "" {
		return errors.New("BOT_TOKEN is required")
	}
	if len(s.GeminiKeys()) == 0 {
		return errors.New("GEMINI_TOKEN is required")
	}
	if cfg.Whisper.Backend == WhisperOpenAI && strings.TrimSpace(s.OpenAIAPIKey) == "" {
		return errors.New("OPENAI_API_KEY is required for whisper.backend=openai")
	}
	return nil
}
