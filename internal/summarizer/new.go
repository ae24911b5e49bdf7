package summarizer

import (
	"context"
	"sync"

	"github.com/nguyentantai21042004/yt-summary-bot/internal/config"
	"github.com/nguyentantai21042004/yt-summary-bot/internal/logger"
	"google.golang.org/genai"
)

type implSummarizer struct {
	apiKeys []string
	logger  logger.Logger
	model   string

	mu         sync.Mutex
	currentKey int
	clients    map[string]*genai.Client

	// generate sends one prompt with one key; swapped out in tests.
	generate func(ctx context.Context, apiKey, prompt string) (string, error)
}

// New creates a Summarizer that rotates through the supplied Gemini API keys.
func New(cfg config.GeminiConfig, apiKeys []string, log logger.Logger) Summarizer {
	s := &implSummarizer{
		apiKeys: apiKeys,
		logger:  log,
		model:   cfg.Model,
		clients: make(map[string]*genai.Client),
	}
	s.generate = s.callGemini
	return s
}
