package session

import (
	"context"
	"log/slog"
	"time"
)

// RunPruner removes expired sessions every interval until ctx is done.
func RunPruner(ctx context.Context, repo Repository, interval time.Duration, logger *slog.Logger) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			if n := repo.Prune(now); n > 0 {
				logger.Info("pruned expired sessions", "count", n)
			}
		}
	}
}
