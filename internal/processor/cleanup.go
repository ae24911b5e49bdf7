package processor

import (
	"context"
	"os"
)

// cleanup removes the request's scratch directory and everything downloaded into it.
// Failures are logged, never returned.
func (p *implProcessor) cleanup(ctx context.Context, scratchDir string) {
	if _, err := os.Stat(scratchDir); os.IsNotExist(err) {
		p.logger.Debug(ctx, "Nothing to clean up in %s", scratchDir)
		return
	}

	if err := os.RemoveAll(scratchDir); err != nil {
		p.logger.Warn(ctx, "Failed to cleanup scratch directory %s: %v", scratchDir, err)
		return
	}

	p.logger.Info(ctx, "Deleted video files in %s", scratchDir)
}
