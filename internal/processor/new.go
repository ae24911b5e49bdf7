package processor

import (
	"time"

	"github.com/nguyentantai21042004/yt-summary-bot/internal/config"
	"github.com/nguyentantai21042004/yt-summary-bot/internal/downloader"
	"github.com/nguyentantai21042004/yt-summary-bot/internal/logger"
	"github.com/nguyentantai21042004/yt-summary-bot/internal/sanitizer"
	"github.com/nguyentantai21042004/yt-summary-bot/internal/summarizer"
	"github.com/nguyentantai21042004/yt-summary-bot/internal/transcriber"
)

type implProcessor struct {
	downloadsDir string
	timeout      time.Duration

	downloader  downloader.Downloader
	transcriber transcriber.Transcriber
	summarizer  summarizer.Summarizer
	sanitize    func(string) (string, error)
	logger      logger.Logger

	slots *admission
}

// New creates a new Processor instance
func New(
	cfg *config.Config,
	dl downloader.Downloader,
	tr transcriber.Transcriber,
	sm summarizer.Summarizer,
	log logger.Logger,
) Processor {
	return &implProcessor{
		downloadsDir: cfg.Paths.Downloads,
		timeout:      cfg.Performance.RequestTimeout,
		downloader:   dl,
		transcriber:  tr,
		summarizer:   sm,
		sanitize:     sanitizer.Sanitize,
		logger:       log,
		slots:        newAdmission(cfg.Performance.MaxConcurrent),
	}
}
