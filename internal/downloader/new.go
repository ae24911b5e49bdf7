package downloader

import (
	"context"
	"errors"

	"github.com/kkdai/youtube/v2"
	"github.com/nguyentantai21042004/yt-summary-bot/internal/config"
	"github.com/nguyentantai21042004/yt-summary-bot/internal/logger"
	"github.com/nguyentantai21042004/yt-summary-bot/pkg/executor"
)

// ErrDownloadFailed hides the backend error from callers; the cause is logged.
var ErrDownloadFailed = errors.New("video download failed")

// fetcher is a download backend.
type fetcher interface {
	fetch(ctx context.Context, url, dir string) (string, error)
}

type implDownloader struct {
	backend fetcher
	logger  logger.Logger
}

// New creates a Downloader for the backend selected in cfg.
func New(cfg config.DownloaderConfig, exec executor.Executor, log logger.Logger) Downloader {
	var backend fetcher
	switch cfg.Backend {
	case config.DownloaderNative:
		backend = &nativeFetcher{client: &youtube.Client{}}
	default:
		backend = &ytdlpFetcher{
			executor:   exec,
			binaryPath: cfg.BinaryPath,
			format:     cfg.Format,
		}
	}

	return &implDownloader{
		backend: backend,
		logger:  log,
	}
}
