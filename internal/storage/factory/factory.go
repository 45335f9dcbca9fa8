package factory

import (
	"context"
	"fmt"
	"strings"

	"github.com/dev-tams/sweepkit/internal/config"
	"github.com/dev-tams/sweepkit/internal/storage"
	"github.com/dev-tams/sweepkit/internal/storage/local"
	s3store "github.com/dev-tams/sweepkit/internal/storage/s3"
)

// SchemeOf extracts the scheme from a storage URI. Bare paths are treated
// as local files.
func SchemeOf(uri string) string {
	if i := strings.Index(uri, "://"); i > 0 {
		return uri[:i]
	}
	return "file"
}

// Factory builds backends on demand and caches them per scheme, so a run
// over many URIs sets up each client once.
type Factory struct {
	cfg   *config.Config
	cache map[string]storage.Folder
}

func NewFactory(cfg *config.Config) *Factory {
	return &Factory{cfg: cfg, cache: make(map[string]storage.Folder)}
}

func (f *Factory) ForURI(ctx context.Context, uri string) (storage.Folder, error) {
	scheme := SchemeOf(uri)
	if folder, ok := f.cache[scheme]; ok {
		return folder, nil
	}

	var (
		folder storage.Folder
		err    error
	)
	switch scheme {
	case "s3":
		folder, err = s3store.New(ctx, f.cfg.S3)
		if err != nil {
			return nil, fmt.Errorf("storage s3: %w", err)
		}
	case "file":
		folder = local.New()
	default:
		return nil, fmt.Errorf("storage: unknown scheme %q in %s", scheme, uri)
	}

	f.cache[scheme] = folder
	return folder, nil
}
