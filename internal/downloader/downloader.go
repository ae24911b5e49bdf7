package downloader

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

// Download ensures dir exists, then fetches the audio with the configured backend.
func (d *implDownloader) Download(ctx context.Context, url, dir string) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		d.logger.Error(ctx, "Failed to create download directory %s: %v", dir, err)
		return "", ErrDownloadFailed
	}

	d.logger.Info(ctx, "Downloading audio: %s", url)

	path, err := d.backend.fetch(ctx, url, dir)
	if err != nil {
		d.logger.Error(ctx, "An error occurred while downloading the video: %v", err)
		return "", ErrDownloadFailed
	}

	if _, err := os.Stat(path); err != nil {
		d.logger.Error(ctx, "Downloaded file is missing: %v", fmt.Errorf("stat %s: %w", path, err))
		return "", ErrDownloadFailed
	}

	mtype, err := mimetype.DetectFile(path)
	if err != nil {
		d.logger.Error(ctx, "Failed to sniff downloaded file: %v", err)
		return "", ErrDownloadFailed
	}
	if !isMedia(mtype) {
		d.logger.Error(ctx, "Downloaded file %s is %s, not audio or video", path, mtype.String())
		return "", ErrDownloadFailed
	}

	d.logger.Info(ctx, "Downloaded video successfully: %s (%s)", path, mtype.String())
	return path, nil
}

// isMedia reports whether mtype, or one of its parents, is an audio or video type.
func isMedia(mtype *mimetype.MIME) bool {
	for m := mtype; m != nil; m = m.Parent() {
		if strings.HasPrefix(m.String(), "audio/") || strings.HasPrefix(m.String(), "video/") {
			return true
		}
	}
	return false
}
