package bot

import (
	"context"
	"fmt"
	"html"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/nguyentantai21042004/yt-summary-bot/internal/apperr"
	"github.com/nguyentantai21042004/yt-summary-bot/internal/document"
	"github.com/nguyentantai21042004/yt-summary-bot/internal/link"
	"github.com/nguyentantai21042004/yt-summary-bot/internal/logger"
	"github.com/nguyentantai21042004/yt-summary-bot/internal/processor"
)

const (
	greetingFormat = "Hello, <b>%s</b>!\njust send me a youtube link to summize all content from it"
	noticeText     = "Summarizing video...\nIt can take a <b>few</b> minutes. Please wait."
)

type handler struct {
	sender         Sender
	processor      processor.Processor
	logger         logger.Logger
	sendTranscript bool
}

func newHandler(sender Sender, proc processor.Processor, sendTranscript bool, log logger.Logger) *handler {
	return &handler{
		sender:         sender,
		processor:      proc,
		logger:         log,
		sendTranscript: sendTranscript,
	}
}

// Handle reacts to one incoming message. Failures end up in the log and, when
// the user should know, in a reply; nothing is returned to the caller.
func (h *handler) Handle(ctx context.Context, msg Message) {
	if logger.RequestID(ctx) == "" {
		ctx = logger.WithRequestID(ctx, uuid.NewString())
	}

	if isStartCommand(msg.Text) {
		h.reply(ctx, msg.ChatID, fmt.Sprintf(greetingFormat, html.EscapeString(msg.SenderName)))
		return
	}

	if !link.ContainsVideoDomain(msg.Text) {
		h.logger.Debug(ctx, "Ignoring message without a video link from chat %d", msg.ChatID)
		return
	}

	ref, err := link.Extract(msg.Text)
	if err != nil {
		h.logger.Warn(ctx, "Invalid video link from chat %d: %q", msg.ChatID, msg.Text)
		h.reply(ctx, msg.ChatID, apperr.UserMessage(apperr.InvalidInput))
		return
	}

	h.logger.Info(ctx, "Video %s requested by chat %d", ref.ID, msg.ChatID)
	h.reply(ctx, msg.ChatID, noticeText)

	result, err := h.processor.Process(ctx, ref.URL)
	if err != nil {
		kind := apperr.KindOf(err)
		h.logger.Error(ctx, "Processing %s failed (%s): %v", ref.URL, kind, err)
		h.reply(ctx, msg.ChatID, apperr.UserMessage(kind))
		return
	}

	h.reply(ctx, msg.ChatID, result.Summary)

	if h.sendTranscript {
		h.sendDocument(ctx, msg.ChatID, result)
	}
}

// reply sends text, split into chunks that fit into one message. Replies are
// sent even when ctx was canceled, so a user never waits on a dropped request.
func (h *handler) reply(ctx context.Context, chatID int64, text string) {
	ctx = context.WithoutCancel(ctx)
	if strings.TrimSpace(text) == "" {
		h.logger.Warn(ctx, "Skipping empty reply to chat %d", chatID)
		return
	}
	for _, chunk := range splitMessage(text, maxMessageLength) {
		if err := h.sender.Send(ctx, chatID, chunk); err != nil {
			h.logger.Error(ctx, "Failed to send message to chat %d: %v", chatID, err)
			return
		}
	}
}

func (h *handler) sendDocument(ctx context.Context, chatID int64, result *processor.Result) {
	dir, err := os.MkdirTemp("", "transcript-*")
	if err != nil {
		h.logger.Error(ctx, "Failed to create transcript directory: %v", err)
		return
	}
	defer os.RemoveAll(dir)

	path := filepath.Join(dir, "transcript.docx")
	if err := document.Write(path, result.Title, result.Summary, result.Transcript); err != nil {
		h.logger.Error(ctx, "Failed to write transcript document: %v", err)
		return
	}

	if err := h.sender.SendDocument(ctx, chatID, path, html.EscapeString(result.Title)); err != nil {
		h.logger.Error(ctx, "Failed to send transcript to chat %d: %v", chatID, err)
	}
}

// isStartCommand matches "/start" and "/start@botname", with or without a payload.
func isStartCommand(text string) bool {
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return false
	}
	cmd, _, _ := strings.Cut(fields[0], "@")
	return cmd == "/start"
}
