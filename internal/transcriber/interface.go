package transcriber

import "context"

//go:generate mockgen -destination=../mocks/transcriber_mock.go -package=mocks . Transcriber

// Transcriber converts a downloaded media file into plain text.
type Transcriber interface {
	Transcribe(ctx context.Context, mediaPath string) (string, error)
}
