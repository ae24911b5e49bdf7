package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/nguyentantai21042004/yt-summary-bot/internal/bot"
	"github.com/nguyentantai21042004/yt-summary-bot/internal/config"
	"github.com/nguyentantai21042004/yt-summary-bot/internal/downloader"
	"github.com/nguyentantai21042004/yt-summary-bot/internal/logger"
	"github.com/nguyentantai21042004/yt-summary-bot/internal/processor"
	"github.com/nguyentantai21042004/yt-summary-bot/internal/summarizer"
	"github.com/nguyentantai21042004/yt-summary-bot/internal/transcriber"
	"github.com/nguyentantai21042004/yt-summary-bot/internal/watcher"
	"github.com/nguyentantai21042004/yt-summary-bot/pkg/executor"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to the YAML config file")
	envFile := flag.String("env", ".env", "path to the .env file with secrets")
	flag.Parse()

	ctx := context.Background()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	secrets, err := config.LoadSecrets(*envFile)
	if err == nil {
		err = secrets.Check(cfg)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load secrets: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	log.Info(ctx, "YouTube summary bot starting")
	log.Info(ctx, "Downloader: %s, transcriber: %s, model: %s", cfg.Downloader.Backend, cfg.Whisper.Backend, cfg.Gemini.Model)
	log.Info(ctx, "Max concurrent videos: %d", cfg.Performance.MaxConcurrent)

	if err := os.MkdirAll(cfg.Paths.Downloads, 0755); err != nil {
		log.Error(ctx, "Failed to create downloads directory: %v", err)
		os.Exit(1)
	}

	// Initialize dependencies
	exec := executor.New()
	proc := processor.New(
		cfg,
		downloader.New(cfg.Downloader, exec, log),
		transcriber.New(cfg, secrets.OpenAIAPIKey, exec, log),
		summarizer.New(cfg.Gemini, secrets.GeminiKeys(), log),
		log,
	)

	b, err := bot.New(secrets.BotToken, cfg, proc, log)
	if err != nil {
		log.Error(ctx, "Failed to start bot: %v", err)
		os.Exit(1)
	}

	w, err := watcher.New(*configPath, watcher.ApplyLogLevel(log), log)
	if err != nil {
		log.Error(ctx, "Failed to create config watcher: %v", err)
		os.Exit(1)
	}
	defer w.Stop()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Setup graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	errChan := make(chan error, 2)
	botDone := make(chan struct{})
	go func() {
		defer close(botDone)
		if err := b.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
			errChan <- fmt.Errorf("bot: %w", err)
		}
	}()
	go func() {
		if err := w.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
			errChan <- fmt.Errorf("config watcher: %w", err)
		}
	}()

	log.Info(ctx, "Bot is ready. Press Ctrl+C to stop")

	// Wait for shutdown signal or error
	select {
	case <-sigChan:
		log.Info(ctx, "Shutdown signal received")
	case err := <-errChan:
		log.Error(ctx, "Stopping after error: %v", err)
	}

	// Graceful shutdown
	log.Info(ctx, "Shutting down gracefully...")
	cancel()
	<-botDone

	log.Info(ctx, "Bot stopped")
}
