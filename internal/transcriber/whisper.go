package transcriber

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"github.com/nguyentantai21042004/yt-summary-bot/internal/config"
	"github.com/nguyentantai21042004/yt-summary-bot/internal/logger"
	"github.com/nguyentantai21042004/yt-summary-bot/pkg/executor"
)

// whisperEngine runs the whisper.cpp command line tool.
type whisperEngine struct {
	cfg      config.WhisperConfig
	executor executor.Executor
	logger   logger.Logger

	once      sync.Once
	modelPath string
	initErr   error
}

func newWhisperEngine(cfg config.WhisperConfig, exec executor.Executor, log logger.Logger) *whisperEngine {
	return &whisperEngine{
		cfg:      cfg,
		executor: exec,
		logger:   log,
	}
}

func (w *whisperEngine) audioFormat() string {
	return formatWAV
}

// init checks the model file once; the result is reused by every later call.
func (w *whisperEngine) init(ctx context.Context) error {
	w.once.Do(func() {
		path, err := filepath.Abs(w.cfg.ModelPath)
		if err != nil {
			w.initErr = fmt.Errorf("whisper model %s: %w", w.cfg.ModelPath, err)
			return
		}
		if _, err := os.Stat(path); err != nil {
			w.initErr = fmt.Errorf("whisper model %s: %w", w.cfg.ModelPath, err)
			return
		}
		w.modelPath = path
		w.logger.Info(ctx, "Whisper model ready: %s", path)
	})
	return w.initErr
}

func (w *whisperEngine) transcribe(ctx context.Context, audioPath string) (string, error) {
	if err := w.init(ctx); err != nil {
		return "", err
	}

	// whisper runs inside the request's scratch directory, so every path it gets is absolute
	audioPath, err := filepath.Abs(audioPath)
	if err != nil {
		return "", fmt.Errorf("resolve audio path: %w", err)
	}
	workDir := filepath.Dir(audioPath)

	// Whisper appends .txt to the output prefix
	outputPrefix := strings.TrimSuffix(audioPath, filepath.Ext(audioPath))

	w.logger.Info(ctx, "Starting transcription with %d threads: %s", w.cfg.Threads, audioPath)

	// -m: Model path
	// -f: Input audio file
	// -otxt: Plain text output
	// -l: Spoken language, "auto" lets whisper detect it
	// -t: Number of threads
	// -np: No progress prints on stdout
	args := []string{
		"-m", w.modelPath,
		"-f", audioPath,
		"-otxt",
		"-l", w.cfg.Language,
		"-t", strconv.Itoa(w.cfg.Threads),
		"-np",
		"--output-file", outputPrefix,
	}
	if w.cfg.Prompt != "" {
		args = append(args, "--prompt", w.cfg.Prompt)
	}

	if _, err := w.executor.ExecuteInDir(ctx, workDir, w.cfg.BinaryPath, args...); err != nil {
		return "", fmt.Errorf("whisper: %w", err)
	}

	txtPath := outputPrefix + ".txt"
	defer os.Remove(txtPath)

	data, err := os.ReadFile(txtPath)
	if err != nil {
		return "", fmt.Errorf("read transcript: %w", err)
	}

	return joinLines(string(data)), nil
}

// joinLines merges whisper's per-segment lines into running text.
func joinLines(s string) string {
	fields := strings.FieldsFunc(s, func(r rune) bool { return r == '\n' || r == '\r' })
	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		if f = strings.TrimSpace(f); f != "" {
			parts = append(parts, f)
		}
	}
	return strings.Join(parts, " ")
}
