package bot

import "context"

//go:generate mockgen -destination=../mocks/sender_mock.go -package=mocks . Sender

// Bot receives chat updates until its context is canceled.
type Bot interface {
	Start(ctx context.Context) error
	Stop()
}

// Sender delivers replies to a chat. Text is sent in HTML parse mode.
type Sender interface {
	Send(ctx context.Context, chatID int64, text string) error
	SendDocument(ctx context.Context, chatID int64, path, caption string) error
}

// Message is an incoming chat message, independent of the transport.
type Message struct {
	ChatID     int64
	MessageID  int
	SenderName string
	Text       string
}
