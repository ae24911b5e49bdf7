package transcriber

import (
	"context"
	"fmt"
	"sync"

	"github.com/nguyentantai21042004/yt-summary-bot/internal/config"
	openai "github.com/sashabaranov/go-openai"
)

// openAIEngine sends audio to the OpenAI transcription endpoint.
type openAIEngine struct {
	cfg    config.WhisperConfig
	apiKey string

	once   sync.Once
	client *openai.Client
}

func newOpenAIEngine(cfg config.WhisperConfig, apiKey string) *openAIEngine {
	return &openAIEngine{
		cfg:    cfg,
		apiKey: apiKey,
	}
}

func (e *openAIEngine) audioFormat() string {
	return formatMP3
}

func (e *openAIEngine) getClient() *openai.Client {
	e.once.Do(func() {
		clientCfg := openai.DefaultConfig(e.apiKey)
		if e.cfg.OpenAIBaseURL != "" {
			clientCfg.BaseURL = e.cfg.OpenAIBaseURL
		}
		e.client = openai.NewClientWithConfig(clientCfg)
	})
	return e.client
}

func (e *openAIEngine) transcribe(ctx context.Context, audioPath string) (string, error) {
	req := openai.AudioRequest{
		Model:    e.cfg.OpenAIModel,
		FilePath: audioPath,
		Prompt:   e.cfg.Prompt,
	}
	if e.cfg.Language != "" && e.cfg.Language != "auto" {
		req.Language = e.cfg.Language
	}

	resp, err := e.getClient().CreateTranscription(ctx, req)
	if err != nil {
		return "", fmt.Errorf("openai transcription: %w", err)
	}

	return resp.Text, nil
}
