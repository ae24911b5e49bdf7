package transcriber

import (
	"context"
	"fmt"
	"os"
	"strings"
)

// Transcribe normalises the audio with ffmpeg, then runs the speech-recognition engine.
func (t *implTranscriber) Transcribe(ctx context.Context, mediaPath string) (string, error) {
	audioPath, err := t.extractAudio(ctx, mediaPath, t.engine.audioFormat())
	if err != nil {
		return "", fmt.Errorf("extract audio: %w", err)
	}
	defer t.cleanupTempFile(ctx, audioPath)

	text, err := t.engine.transcribe(ctx, audioPath)
	if err != nil {
		return "", fmt.Errorf("transcribe: %w", err)
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return "", ErrEmptyTranscript
	}

	t.logger.Info(ctx, "Transcribed video successfully (%d characters)", len(text))
	t.logger.Debug(ctx, "Transcript: %s", text)
	return text, nil
}

// cleanupTempFile removes a temporary file, logs warning if fails
func (t *implTranscriber) cleanupTempFile(ctx context.Context, filePath string) {
	if err := os.Remove(filePath); err != nil && !os.IsNotExist(err) {
		t.logger.Warn(ctx, "Failed to cleanup temp file %s: %v", filePath, err)
	} else {
		t.logger.Debug(ctx, "Cleaned up temp file: %s", filePath)
	}
}
