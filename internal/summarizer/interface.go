package summarizer

import "context"

//go:generate mockgen -destination=../mocks/summarizer_mock.go -package=mocks . Summarizer

// Summary is the model's answer for one transcript.
type Summary struct {
	Text     string
	Language string
}

// Summarizer turns a transcript into an HTML outline using an LLM.
type Summarizer interface {
	Summarize(ctx context.Context, transcript string) (Summary, error)
}
