package watcher

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/nguyentantai21042004/yt-summary-bot/internal/logger"
)

// settleDelay lets editors finish writing before the file is read.
const settleDelay = 200 * time.Millisecond

// New creates a Watcher for configPath. The parent directory is watched so
// editors that replace the file by renaming are picked up too.
func New(configPath string, onReload ReloadFunc, log logger.Logger) (Watcher, error) {
	path, err := filepath.Abs(configPath)
	if err != nil {
		return nil, fmt.Errorf("resolve config path: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	if err := watcher.Add(filepath.Dir(path)); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("add watch path: %w", err)
	}

	return &implWatcher{
		configPath: path,
		onReload:   onReload,
		logger:     log,
		watcher:    watcher,
		delay:      settleDelay,
	}, nil
}
