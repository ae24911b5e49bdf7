package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSecrets(t *testing.T) {
	t.Setenv("BOT_TOKEN", "123:abc")
	t.Setenv("GEMINI_TOKEN", "key-1, key-2,,key-1")
	t.Setenv("OPENAI_API_KEY", "")

	s, err := LoadSecrets("")
	require.NoError(t, err)
	assert.Equal(t, "123:abc", s.BotToken)
	assert.Equal(t, []string{"key-1", "key-2"}, s.GeminiKeys())
}

func TestLoadSecretsFromEnvFile(t *testing.T) {
	// godotenv never overrides variables that are already set.
	t.Setenv("BOT_TOKEN", "")
	t.Setenv("GEMINI_TOKEN", "")
	os.Unsetenv("BOT_TOKEN")
	os.Unsetenv("GEMINI_TOKEN")

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("BOT_TOKEN=from-file\nGEMINI_TOKEN=gem\n"), 0644))

	s, err := LoadSecrets(path)
	require.NoError(t, err)
	assert.Equal(t, "from-file", s.BotToken)
	assert.Equal(t, []string{"gem"}, s.GeminiKeys())
}

func TestLoadSecretsEnvFileErrors(t *testing.T) {
	t.Setenv("BOT_TOKEN", "123:abc")
	t.Setenv("GEMINI_TOKEN", "gem")

	missing := filepath.Join(t.TempDir(), "absent.env")
	s, err := LoadSecrets(missing)
	require.NoError(t, err)
	assert.Equal(t, "123:abc", s.BotToken)

	malformed := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(malformed, []byte("BOT_TOKEN=\"unterminated\n"), 0644))
	_, err = LoadSecrets(malformed)
	require.Error(t, err)
	assert.Contains(t, err.Error(), malformed)
}

func TestLoadSecretsMissing(t *testing.T) {
	t.Setenv("BOT_TOKEN", "")
	os.Unsetenv("BOT_TOKEN")
	t.Setenv("GEMINI_TOKEN", "gem")

	_, err := LoadSecrets("")
	require.Error(t, err)
}

func TestSecretsCheck(t *testing.T) {
	local := &Config{Whisper: WhisperConfig{Backend: WhisperLocal}}
	remote := &Config{Whisper: WhisperConfig{Backend: WhisperOpenAI}}

	tests := []struct {
		description string
		secrets     Secrets
		cfg         *Config
		wantErr     bool
	}{
		{"Should accept bot and gemini tokens", Secrets{BotToken: "b", GeminiToken: "g"}, local, false},
		{"Should reject blank gemini token list", Secrets{BotToken: "b", GeminiToken: " , "}, local, true},
		{"Should reject blank bot token", Secrets{BotToken: " ", GeminiToken: "g"}, local, true},
		{"Should require openai key for openai backend", Secrets{BotToken: "b", GeminiToken: "g"}, remote, true},
		{"Should accept openai key for openai backend", Secrets{BotToken: "b", GeminiToken: "g", OpenAIAPIKey: "o"}, remote, false},
	}

	for _, tt := range tests {
		t.Run(tt.description, func(t *testing.T) {
			err := tt.secrets.Check(tt.cfg)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
