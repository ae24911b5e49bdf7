package watcher

import (
	"context"

	"github.com/nguyentantai21042004/yt-summary-bot/internal/config"
)

// Watcher monitors the config file and applies changes while the bot runs.
type Watcher interface {
	Start(ctx context.Context) error
	Stop() error
}

// ReloadFunc applies a freshly loaded and validated configuration.
type ReloadFunc func(ctx context.Context, cfg *config.Config) error
