package processor

import "context"

//go:generate mockgen -destination=mocks/processor_mock.go -package=mocks . Processor

// Result is everything one successful run produced.
type Result struct {
	VideoURL   string
	Title      string
	Transcript string
	Summary    string
	Language   string
}

// Processor runs the download → transcribe → summarize → sanitize pipeline for one video.
type Processor interface {
	Process(ctx context.Context, videoURL string) (*Result, error)
}
