package summarizer

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/nguyentantai21042004/yt-summary-bot/internal/config"
	"github.com/nguyentantai21042004/yt-summary-bot/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const englishTranscript = "Today we are going to talk about how the weather affects the economy of small towns, " +
	"and why farmers have to plan their work around the seasons and the rain."

func newTestSummarizer(keys []string, generate func(ctx context.Context, apiKey, prompt string) (string, error)) *implSummarizer {
	s := New(config.GeminiConfig{Model: "gemini-2.5-flash"}, keys, logger.New("debug", "text")).(*implSummarizer)
	s.generate = generate
	return s
}

func TestSummarize(t *testing.T) {
	var gotPrompt string
	s := newTestSummarizer([]string{"k1"}, func(_ context.Context, apiKey, prompt string) (string, error) {
		assert.Equal(t, "k1", apiKey)
		gotPrompt = prompt
		return "```html\n<b>Weather</b> and money\n```", nil
	})

	summary, err := s.Summarize(context.Background(), englishTranscript)
	require.NoError(t, err)
	assert.Equal(t, "<b>Weather</b> and money", summary.Text)
	assert.Equal(t, "English", summary.Language)

	assert.Contains(t, gotPrompt, "Ensure the summary is in English.")
	assert.Contains(t, gotPrompt, englishTranscript)
	for _, tag := range []string{"<b>", "<i>", "<u>", "<a>", "<code>", "<pre>", "<tg-spoiler>"} {
		assert.Contains(t, gotPrompt, tag)
	}
}

func TestSummarize_RotatesOnRateLimit(t *testing.T) {
	var used []string
	s := newTestSummarizer([]string{"k1", "k2", "k3"}, func(_ context.Context, apiKey, _ string) (string, error) {
		used = append(used, apiKey)
		if apiKey == "k3" {
			return "<b>ok</b>", nil
		}
		return "", errors.New("Error 429, Message: RESOURCE_EXHAUSTED")
	})

	summary, err := s.Summarize(context.Background(), englishTranscript)
	require.NoError(t, err)
	assert.Equal(t, "<b>ok</b>", summary.Text)
	assert.Equal(t, []string{"k1", "k2", "k3"}, used)

	// The working key stays selected for the next request.
	_, err = s.Summarize(context.Background(), englishTranscript)
	require.NoError(t, err)
	assert.Equal(t, "k3", used[len(used)-1])
}

func TestSummarize_AllKeysExhausted(t *testing.T) {
	calls := 0
	s := newTestSummarizer([]string{"k1", "k2"}, func(context.Context, string, string) (string, error) {
		calls++
		return "", errors.New("quota exceeded")
	})

	_, err := s.Summarize(context.Background(), englishTranscript)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "all API keys exhausted")
	assert.Equal(t, 2, calls)
}

func TestSummarize_NonRetryableError(t *testing.T) {
	calls := 0
	s := newTestSummarizer([]string{"k1", "k2"}, func(context.Context, string, string) (string, error) {
		calls++
		return "", errors.New("Error 400, Message: API key not valid")
	})

	_, err := s.Summarize(context.Background(), englishTranscript)
	require.Error(t, err)
	assert.Equal(t, 1, calls)
}

func TestSummarize_EmptyAnswer(t *testing.T) {
	s := newTestSummarizer([]string{"k1"}, func(context.Context, string, string) (string, error) {
		return "```\n```", nil
	})

	_, err := s.Summarize(context.Background(), englishTranscript)
	assert.ErrorIs(t, err, ErrEmptyResponse)
}

func TestSummarize_NoKeys(t *testing.T) {
	s := newTestSummarizer(nil, func(context.Context, string, string) (string, error) {
		t.Fatal("generate must not be called without keys")
		return "", nil
	})

	_, err := s.Summarize(context.Background(), englishTranscript)
	assert.Error(t, err)
}

func TestDetectLanguage(t *testing.T) {
	assert.Equal(t, "English", detectLanguage(englishTranscript))
	assert.Equal(t, "Ukrainian", detectLanguage("Сьогодні ми поговоримо про те, як погода впливає на економіку невеликих міст, і чому фермери мають планувати свою роботу з урахуванням пір року та дощів."))
	assert.Equal(t, fallbackLanguage, detectLanguage(""))
}

func TestStripFences(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"<b>plain</b>", "<b>plain</b>"},
		{"```html\n<b>x</b>\n```", "<b>x</b>"},
		{"```\n<i>y</i>```", "<i>y</i>"},
		{"  text with ``` inside  ", "text with ``` inside"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, stripFences(tt.in), tt.in)
	}
}

func TestBuildPrompt(t *testing.T) {
	p := buildPrompt("hello", "German")
	assert.True(t, strings.HasSuffix(p, "---\nhello\n---"))
	assert.Contains(t, p, "Ensure the summary is in German.")
}
