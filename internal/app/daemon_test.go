package app

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/dev-tams/sweepkit/internal/schedule"
)

func TestRunScheduledStopsOnCancel(t *testing.T) {
	spec, err := schedule.Parse("* * * * *")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	f := &fakeFolder{}
	var logBuf bytes.Buffer
	sw := newTestSweeper(f, time.Now(), &logBuf)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- RunScheduled(ctx, sw, spec, []string{"s3://bucket/tmp/"}, 30*day, true)
	}()

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("RunScheduled returned error on cancel: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatalf("RunScheduled did not stop after cancel")
	}
}
