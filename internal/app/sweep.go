package app

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/dev-tams/sweepkit/internal/storage"
)

// FolderSource hands out a storage backend for a URI; storage.Factory
// satisfies it.
type FolderSource interface {
	ForURI(ctx context.Context, uri string) (storage.Folder, error)
}

type Result struct {
	Scanned int
	Matched int
	Deleted int
}

// Sweeper deletes objects under a glob/prefix path whose last-modified
// time is older than a threshold.
type Sweeper struct {
	Log     *logrus.Logger
	Folders FolderSource

	// Out receives one bare URI per deletion candidate when Quiet is set,
	// so scripted callers get a clean list on stdout.
	Out   io.Writer
	Quiet bool

	// Now is overridable for tests; nil means time.Now.
	Now func() time.Time
}

// Run expands globPath, examines every object under each expanded path and
// deletes (or, in dry-run, only reports) the ones older than olderThan.
// The first storage error aborts the run.
func (s *Sweeper) Run(ctx context.Context, globPath string, olderThan time.Duration, dryRun bool) (Result, error) {
	var res Result

	now := time.Now
	if s.Now != nil {
		now = s.Now
	}

	folder, err := s.Folders.ForURI(ctx, globPath)
	if err != nil {
		return res, err
	}

	s.Log.Infof("Deleting all files in %s that are older than %s", globPath, formatElapsed(olderThan))

	paths, err := folder.Expand(ctx, globPath)
	if err != nil {
		return res, fmt.Errorf("expand %s: %w", globPath, err)
	}

	for _, p := range paths {
		objects, err := folder.List(ctx, p)
		if err != nil {
			return res, fmt.Errorf("list %s: %w", p, err)
		}

		for _, obj := range objects {
			res.Scanned++

			elapsed := now().Sub(obj.ModTime)
			if elapsed <= olderThan {
				continue
			}
			res.Matched++

			s.Log.Infof("Deleting %s; is %s old", obj.URI, formatElapsed(elapsed))
			if s.Quiet && s.Out != nil {
				fmt.Fprintln(s.Out, obj.URI)
			}

			if dryRun {
				continue
			}
			if err := folder.Delete(ctx, obj.URI); err != nil {
				return res, fmt.Errorf("delete %s: %w", obj.URI, err)
			}
			res.Deleted++
		}
	}

	return res, nil
}

// formatElapsed renders durations with a day component, e.g. "40d6h30m"
// or "45m0s" for sub-day values.
func formatElapsed(d time.Duration) string {
	d = d.Round(time.Second)
	days := int(d.Hours()) / 24
	if days == 0 {
		return d.String()
	}
	rem := d - time.Duration(days)*24*time.Hour
	if rem == 0 {
		return fmt.Sprintf("%dd", days)
	}
	return fmt.Sprintf("%dd%s", days, rem.String())
}
