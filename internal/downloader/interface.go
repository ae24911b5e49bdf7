package downloader

import "context"

//go:generate mockgen -destination=../mocks/downloader_mock.go -package=mocks . Downloader

// Downloader fetches the audio track of a video into a local directory.
type Downloader interface {
	// Download stores the best available audio stream of url inside dir
	// and returns the path of the resulting file.
	Download(ctx context.Context, url, dir string) (string, error)
}
