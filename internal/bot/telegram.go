package bot

import (
	"context"
	"fmt"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"golang.org/x/time/rate"
)

// Start long-polls for updates and handles each message on its own goroutine.
// It returns once ctx is canceled and in-flight messages are drained.
func (b *implBot) Start(ctx context.Context) error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = b.pollTimeout
	u.AllowedUpdates = []string{"message"}

	updates := b.api.GetUpdatesChan(u)
	b.logger.Info(ctx, "Authorized on account @%s, waiting for messages", b.api.Self.UserName)

	return b.serve(ctx, updates)
}

// serve dispatches updates until ctx is canceled. Handlers run on a context
// detached from ctx, so a shutdown lets requests that already started finish.
func (b *implBot) serve(ctx context.Context, updates tgbotapi.UpdatesChannel) error {
	handlerCtx, cancelHandlers := context.WithCancel(context.WithoutCancel(ctx))
	defer cancelHandlers()

	for {
		select {
		case <-ctx.Done():
			b.Stop()
			b.drain(ctx, cancelHandlers)
			b.logger.Info(ctx, "Bot stopped")
			return ctx.Err()

		case update, ok := <-updates:
			if !ok {
				b.drain(ctx, cancelHandlers)
				return fmt.Errorf("telegram updates channel closed")
			}

			msg, ok := toMessage(update)
			if !ok {
				continue
			}

			b.wg.Add(1)
			go func(msg Message) {
				defer b.wg.Done()
				b.handler.Handle(handlerCtx, msg)
			}(msg)
		}
	}
}

// drain waits for in-flight handlers. With a shutdown timeout set, handlers
// still running when it expires are canceled and waited for once more.
func (b *implBot) drain(ctx context.Context, cancelHandlers context.CancelFunc) {
	done := make(chan struct{})
	go func() {
		b.wg.Wait()
		close(done)
	}()

	b.logger.Info(ctx, "Waiting for ongoing requests to complete...")
	if b.shutdownTimeout <= 0 {
		<-done
		return
	}

	select {
	case <-done:
	case <-time.After(b.shutdownTimeout):
		b.logger.Warn(ctx, "Requests still running after %s, canceling them", b.shutdownTimeout)
		cancelHandlers()
		<-done
	}
}

// Stop stops polling. Safe to call more than once.
func (b *implBot) Stop() {
	b.stopOnce.Do(func() {
		if b.stopPolling != nil {
			b.stopPolling()
		}
	})
}

func toMessage(update tgbotapi.Update) (Message, bool) {
	m := update.Message
	if m == nil || m.Chat == nil || m.Text == "" {
		return Message{}, false
	}

	msg := Message{
		ChatID:    m.Chat.ID,
		MessageID: m.MessageID,
		Text:      m.Text,
	}
	if m.From != nil {
		msg.SenderName = strings.TrimSpace(m.From.FirstName + " " + m.From.LastName)
	}
	return msg, true
}

// telegramSender shares one limiter across chats to stay under the Bot API flood limits.
type telegramSender struct {
	api     *tgbotapi.BotAPI
	limiter *rate.Limiter
}

func (s *telegramSender) Send(ctx context.Context, chatID int64, text string) error {
	if err := s.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limit: %w", err)
	}

	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeHTML
	msg.DisableWebPagePreview = true

	if _, err := s.api.Send(msg); err != nil {
		return fmt.Errorf("send message: %w", err)
	}
	return nil
}

func (s *telegramSender) SendDocument(ctx context.Context, chatID int64, path, caption string) error {
	if err := s.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limit: %w", err)
	}

	doc := tgbotapi.NewDocument(chatID, tgbotapi.FilePath(path))
	doc.Caption = caption
	doc.ParseMode = tgbotapi.ModeHTML

	if _, err := s.api.Send(doc); err != nil {
		return fmt.Errorf("send document: %w", err)
	}
	return nil
}
