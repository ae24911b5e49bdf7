package transcriber

import (
	"context"
	"errors"

	"github.com/nguyentantai21042004/yt-summary-bot/internal/config"
	"github.com/nguyentantai21042004/yt-summary-bot/internal/logger"
	"github.com/nguyentantai21042004/yt-summary-bot/pkg/executor"
)

// ErrEmptyTranscript is returned when speech recognition produced no text.
var ErrEmptyTranscript = errors.New("empty transcript")

// engine is a speech-recognition backend. It is created once and shared by every request.
type engine interface {
	// audioFormat is the container ffmpeg should produce for this engine.
	audioFormat() string
	transcribe(ctx context.Context, audioPath string) (string, error)
}

type implTranscriber struct {
	ffmpeg   config.FFmpegConfig
	executor executor.Executor
	logger   logger.Logger
	engine   engine
}

// New creates a Transcriber for the backend selected in cfg.Whisper.
// openAIKey is only used by the openai backend.
func New(cfg *config.Config, openAIKey string, exec executor.Executor, log logger.Logger) Transcriber {
	var e engine
	switch cfg.Whisper.Backend {
	case config.WhisperOpenAI:
		e = newOpenAIEngine(cfg.Whisper, openAIKey)
	default:
		e = newWhisperEngine(cfg.Whisper, exec, log)
	}

	return &implTranscriber{
		ffmpeg:   cfg.FFmpeg,
		executor: exec,
		logger:   log,
		engine:   e,
	}
}
