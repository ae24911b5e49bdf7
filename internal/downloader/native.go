package downloader

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/kkdai/youtube/v2"
)

// nativeFetcher downloads without external binaries.
type nativeFetcher struct {
	client *youtube.Client
}

func (f *nativeFetcher) fetch(ctx context.Context, url, dir string) (string, error) {
	video, err := f.client.GetVideoContext(ctx, url)
	if err != nil {
		return "", fmt.Errorf("get video: %w", err)
	}

	format := bestAudio(video.Formats)
	if format == nil {
		return "", fmt.Errorf("no audio formats available for %s", video.ID)
	}

	stream, _, err := f.client.GetStreamContext(ctx, video, format)
	if err != nil {
		return "", fmt.Errorf("start stream: %w", err)
	}
	defer stream.Close()

	path := filepath.Join(dir, safeTitle(video.Title, video.ID)+"."+extension(format.MimeType))

	file, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create output file: %w", err)
	}

	if _, err := io.Copy(file, stream); err != nil {
		file.Close()
		os.Remove(path)
		return "", fmt.Errorf("copy stream: %w", err)
	}

	if err := file.Close(); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("close output file: %w", err)
	}

	return path, nil
}

// bestAudio picks the audio-only format with the highest bitrate,
// falling back to any format that carries audio.
func bestAudio(formats youtube.FormatList) *youtube.Format {
	var best, fallback *youtube.Format
	for i := range formats {
		f := &formats[i]
		if f.AudioChannels == 0 {
			continue
		}
		if f.Width != 0 || f.Height != 0 {
			if fallback == nil || f.Bitrate > fallback.Bitrate {
				fallback = f
			}
			continue
		}
		if best == nil || f.Bitrate > best.Bitrate {
			best = f
		}
	}

	if best != nil {
		return best
	}
	return fallback
}

// extension maps a format MIME type such as `audio/webm; codecs="opus"` to a file extension.
func extension(mimeType string) string {
	media, _, _ := strings.Cut(mimeType, ";")
	kind, sub, ok := strings.Cut(strings.TrimSpace(media), "/")
	if !ok || sub == "" {
		return "bin"
	}
	if kind == "audio" && sub == "mp4" {
		return "m4a"
	}
	return sub
}

// safeTitle turns a video title into a file name that stays inside its directory.
func safeTitle(title, fallback string) string {
	cleaned := strings.Map(func(r rune) rune {
		switch {
		case r == '/' || r == '\\' || r == ':' || r == '*' || r == '?' || r == '"' || r == '<' || r == '>' || r == '|':
			return '_'
		case r < 0x20 || r == 0x7f:
			return -1
		}
		return r
	}, title)

	cleaned = strings.Trim(strings.TrimSpace(cleaned), ".")
	if cleaned == "" {
		return fallback
	}
	return cleaned
}
