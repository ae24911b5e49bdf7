package bot

import (
	"fmt"
	"sync"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/nguyentantai21042004/yt-summary-bot/internal/config"
	"github.com/nguyentantai21042004/yt-summary-bot/internal/logger"
	"github.com/nguyentantai21042004/yt-summary-bot/internal/processor"
	"golang.org/x/time/rate"
)

// Telegram allows about 30 messages per second per bot.
const (
	sendInterval = time.Second / 30
	sendBurst    = 5
)

type implBot struct {
	api             *tgbotapi.BotAPI
	handler         *handler
	logger          logger.Logger
	pollTimeout     int
	shutdownTimeout time.Duration

	stopPolling func()
	wg          sync.WaitGroup
	stopOnce    sync.Once
}

// New authorizes against the Bot API with token and wires the message handler.
func New(token string, cfg *config.Config, proc processor.Processor, log logger.Logger) (Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("connect telegram: %w", err)
	}
	api.Debug = cfg.Telegram.Debug

	sender := &telegramSender{
		api:     api,
		limiter: rate.NewLimiter(rate.Every(sendInterval), sendBurst),
	}

	return &implBot{
		api:             api,
		handler:         newHandler(sender, proc, cfg.Output.SendTranscript, log),
		logger:          log,
		pollTimeout:     cfg.Telegram.PollTimeout,
		shutdownTimeout: cfg.Telegram.ShutdownTimeout,
		stopPolling:     api.StopReceivingUpdates,
	}, nil
}
