package app

import (
	"context"
	"fmt"
	"time"

	"github.com/dev-tams/sweepkit/internal/schedule"
)

const pollInterval = 500 * time.Millisecond

// RunScheduled sweeps every URI whenever spec matches the current UTC
// minute, until ctx is canceled. A failed sweep stops the daemon.
func RunScheduled(ctx context.Context, sw *Sweeper, spec schedule.Spec, uris []string, olderThan time.Duration, dryRun bool) error {
	sw.Log.Infof("daemon: started, sweeping %d path(s) on schedule", len(uris))

	lastMinute := time.Time{}

	for {
		select {
		case <-ctx.Done():
			sw.Log.Info("daemon: shutdown requested")
			return nil
		default:
		}

		now := time.Now().UTC()
		currentMinute := now.Truncate(time.Minute)
		if currentMinute.Equal(lastMinute) {
			sleepUntilNextPoll(ctx, pollInterval)
			continue
		}
		lastMinute = currentMinute

		if !spec.Matches(currentMinute) {
			continue
		}

		sw.Log.Debugf("daemon: sweep triggered at %s UTC", currentMinute.Format(time.RFC3339))
		for _, uri := range uris {
			if _, err := sw.Run(ctx, uri, olderThan, dryRun); err != nil {
				return fmt.Errorf("daemon sweep: %w", err)
			}
		}
	}
}

func sleepUntilNextPoll(ctx context.Context, d time.Duration) {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
	case <-t.C:
	}
}
