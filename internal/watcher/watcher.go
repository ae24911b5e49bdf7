package watcher

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/nguyentantai21042004/yt-summary-bot/internal/config"
	"github.com/nguyentantai21042004/yt-summary-bot/internal/logger"
)

type implWatcher struct {
	configPath string
	onReload   ReloadFunc
	logger     logger.Logger
	watcher    *fsnotify.Watcher
	delay      time.Duration
}

// Start reloads the config every time the file is written or recreated.
// A config that fails to load is logged and the running one stays active.
func (w *implWatcher) Start(ctx context.Context) error {
	w.logger.Info(ctx, "Config watcher started. Monitoring: %s", w.configPath)

	// Several events usually arrive for one save; they are folded into one reload.
	var pending <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			w.logger.Info(ctx, "Config watcher stopped")
			return ctx.Err()

		case event, ok := <-w.watcher.Events:
			if !ok {
				return fmt.Errorf("watcher events channel closed")
			}

			if filepath.Clean(event.Name) != w.configPath {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				w.logger.Debug(ctx, "Ignoring %s on %s", event.Op, event.Name)
				continue
			}

			pending = time.After(w.delay)

		case <-pending:
			pending = nil
			w.reload(ctx)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return fmt.Errorf("watcher errors channel closed")
			}
			w.logger.Error(ctx, "Watcher error: %v", err)
		}
	}
}

// Stop closes the file watcher
func (w *implWatcher) Stop() error {
	return w.watcher.Close()
}

func (w *implWatcher) reload(ctx context.Context) {
	cfg, err := config.Load(w.configPath)
	if err != nil {
		w.logger.Error(ctx, "Config reload failed, keeping current config: %v", err)
		return
	}

	if err := w.onReload(ctx, cfg); err != nil {
		w.logger.Error(ctx, "Failed to apply reloaded config: %v", err)
		return
	}

	w.logger.Info(ctx, "Config reloaded from %s", w.configPath)
}

// ApplyLogLevel is the ReloadFunc used by the bot: it switches the running
// logger to the new logging.level.
func ApplyLogLevel(log logger.Logger) ReloadFunc {
	return func(ctx context.Context, cfg *config.Config) error {
		log.SetLevel(cfg.Logging.Level)
		log.Info(ctx, "Log level set to %s", cfg.Logging.Level)
		return nil
	}
}
