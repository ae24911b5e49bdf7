package transcriber

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
)

const (
	formatWAV = "wav"
	formatMP3 = "mp3"
)

// extractAudio converts the downloaded stream to 16kHz mono audio.
// WAV feeds whisper.cpp directly; MP3 keeps uploads under the API size limit.
func (t *implTranscriber) extractAudio(ctx context.Context, mediaPath, format string) (string, error) {
	audioPath := strings.TrimSuffix(mediaPath, filepath.Ext(mediaPath)) + "_16k." + format

	t.logger.Info(ctx, "Extracting audio: %s", mediaPath)

	// -vn: No video
	// -ar 16000: Sample rate 16kHz (optimal for Whisper)
	// -ac 1: Mono channel
	args := []string{
		"-i", mediaPath,
		"-vn",
		"-ar", "16000",
		"-ac", "1",
	}

	switch format {
	case formatMP3:
		args = append(args, "-c:a", "libmp3lame", "-b:a", t.ffmpeg.Bitrate)
	default:
		args = append(args, "-c:a", "pcm_s16le")
	}

	args = append(args,
		"-threads", "0",
		"-y",
		audioPath,
	)

	if _, err := t.executor.Execute(ctx, t.ffmpeg.BinaryPath, args...); err != nil {
		return "", fmt.Errorf("ffmpeg extract audio: %w", err)
	}

	t.logger.Debug(ctx, "Audio extracted: %s", audioPath)
	return audioPath, nil
}
