package processor

import (
	"context"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/nguyentantai21042004/yt-summary-bot/internal/apperr"
	"github.com/nguyentantai21042004/yt-summary-bot/internal/logger"
	"github.com/nguyentantai21042004/yt-summary-bot/internal/summarizer"
)

// Process orchestrates the entire video processing pipeline.
// Downloaded media lives in a per-request directory that is always removed before returning.
func (p *implProcessor) Process(ctx context.Context, videoURL string) (*Result, error) {
	requestID := logger.RequestID(ctx)
	if requestID == "" {
		requestID = uuid.NewString()
		ctx = logger.WithRequestID(ctx, requestID)
	}

	if p.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}

	if p.slots.busy() {
		p.logger.Info(ctx, "All processing slots busy, %d request(s) already waiting", p.slots.queued())
	}
	if err := p.slots.acquire(ctx); err != nil {
		return nil, apperr.New(apperr.Internal, "acquire slot", err)
	}
	defer p.slots.release()

	startTime := time.Now()
	scratchDir := filepath.Join(p.downloadsDir, requestID)
	defer p.cleanup(ctx, scratchDir)

	p.logger.Info(ctx, "Starting video processing: %s", videoURL)

	// Step 1: Download audio
	p.enter(ctx, StageDownloading)
	mediaPath, err := p.downloader.Download(ctx, videoURL, scratchDir)
	if err != nil {
		return nil, apperr.New(apperr.DownloadFailed, StageDownloading.String(), err)
	}

	// Step 2: Speech to text
	p.enter(ctx, StageTranscribing)
	transcript, err := p.transcriber.Transcribe(ctx, mediaPath)
	if err != nil {
		return nil, apperr.New(apperr.TranscriptionFailed, StageTranscribing.String(), err)
	}

	// Step 3: LLM outline
	p.enter(ctx, StageSummarizing)
	summary, err := p.summarizer.Summarize(ctx, transcript)
	if err != nil {
		return nil, apperr.New(apperr.SummarizationFailed, StageSummarizing.String(), err)
	}

	// Step 4: Keep only tags Telegram can render
	p.enter(ctx, StageSanitizing)
	clean, err := p.sanitize(summary.Text)
	if err != nil {
		return nil, apperr.New(apperr.Internal, StageSanitizing.String(), err)
	}
	if strings.TrimSpace(clean) == "" {
		return nil, apperr.New(apperr.SummarizationFailed, StageSanitizing.String(), summarizer.ErrEmptyResponse)
	}

	p.logger.Info(ctx, "Processing completed in %s", time.Since(startTime).Round(time.Millisecond))

	return &Result{
		VideoURL:   videoURL,
		Title:      strings.TrimSuffix(filepath.Base(mediaPath), filepath.Ext(mediaPath)),
		Transcript: transcript,
		Summary:    clean,
		Language:   summary.Language,
	}, nil
}

func (p *implProcessor) enter(ctx context.Context, stage Stage) {
	p.logger.Debug(ctx, "Stage: %s", stage)
}
