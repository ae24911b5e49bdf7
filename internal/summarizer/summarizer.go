package summarizer

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

// ErrEmptyResponse is returned when Gemini answers without text.
var ErrEmptyResponse = errors.New("empty response from Gemini")

// Summarize detects the transcript language and asks Gemini for an HTML outline in it.
func (s *implSummarizer) Summarize(ctx context.Context, transcript string) (Summary, error) {
	language := detectLanguage(transcript)
	s.logger.Info(ctx, "Summarizing %d characters, language: %s", len(transcript), language)

	text, err := s.callWithRotation(ctx, buildPrompt(transcript, language))
	if err != nil {
		return Summary{}, err
	}

	text = stripFences(text)
	if text == "" {
		return Summary{}, ErrEmptyResponse
	}

	return Summary{Text: text, Language: language}, nil
}

// callWithRotation tries each API key once, moving on after 429 / quota errors.
func (s *implSummarizer) callWithRotation(ctx context.Context, prompt string) (string, error) {
	if len(s.apiKeys) == 0 {
		return "", errors.New("no Gemini API keys configured")
	}

	var lastErr error
	for range len(s.apiKeys) {
		idx, key := s.current()

		text, err := s.generate(ctx, key, prompt)
		if err == nil {
			return text, nil
		}

		if !isRateLimited(err) {
			return "", fmt.Errorf("generate content: %w", err)
		}

		s.logger.Warn(ctx, "Key %d rate limited, rotating...", idx+1)
		s.rotateKey(idx)
		lastErr = err
	}

	return "", fmt.Errorf("all API keys exhausted: %w", lastErr)
}

// callGemini sends the prompt to Gemini and returns the concatenated text parts.
func (s *implSummarizer) callGemini(ctx context.Context, apiKey, prompt string) (string, error) {
	client, err := s.client(ctx, apiKey)
	if err != nil {
		return "", err
	}

	result, err := client.Models.GenerateContent(ctx, s.model, genai.Text(prompt), nil)
	if err != nil {
		return "", err
	}

	if result != nil && len(result.Candidates) > 0 && result.Candidates[0].Content != nil {
		var text strings.Builder
		for _, part := range result.Candidates[0].Content.Parts {
			if part.Text != "" {
				text.WriteString(part.Text)
			}
		}
		return text.String(), nil
	}

	return "", ErrEmptyResponse
}

// client returns the cached client for apiKey, creating it on first use.
func (s *implSummarizer) client(ctx context.Context, apiKey string) (*genai.Client, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if c, ok := s.clients[apiKey]; ok {
		return c, nil
	}

	c, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create client: %w", err)
	}

	s.clients[apiKey] = c
	return c, nil
}

func (s *implSummarizer) current() (int, string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.currentKey, s.apiKeys[s.currentKey]
}

// rotateKey advances past idx unless another request already did.
func (s *implSummarizer) rotateKey(idx int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.currentKey == idx {
		s.currentKey = (s.currentKey + 1) % len(s.apiKeys)
	}
}

func isRateLimited(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "429") || strings.Contains(msg, "quota") || strings.Contains(msg, "RESOURCE_EXHAUSTED")
}
