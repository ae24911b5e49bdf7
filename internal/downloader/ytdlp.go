package downloader

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/nguyentantai21042004/yt-summary-bot/pkg/executor"
)

// ytdlpFetcher shells out to yt-dlp.
type ytdlpFetcher struct {
	executor   executor.Executor
	binaryPath string
	format     string
}

func (f *ytdlpFetcher) fetch(ctx context.Context, url, dir string) (string, error) {
	// --print after_move:filepath makes yt-dlp report the final file name
	// on stdout once the download has completed.
	args := []string{
		"--format", f.format,
		"--no-playlist",
		"--no-progress",
		"--no-warnings",
		"--output", filepath.Join(dir, "%(title)s.%(ext)s"),
		"--print", "after_move:filepath",
		url,
	}

	out, err := f.executor.Execute(ctx, f.binaryPath, args...)
	if err != nil {
		return "", fmt.Errorf("yt-dlp: %w", err)
	}

	path := lastLine(out)
	if path == "" {
		return "", fmt.Errorf("yt-dlp: no output file reported")
	}

	return path, nil
}

func lastLine(s string) string {
	lines := strings.Split(strings.TrimSpace(s), "\n")
	return strings.TrimSpace(lines[len(lines)-1])
}
