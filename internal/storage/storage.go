package storage

import (
	"context"
	"time"
)

type ObjectInfo struct {
	URI     string
	Size    int64
	ModTime time.Time
}

// Folder is the slice of a storage backend the sweeper needs: glob
// expansion, recursive listing and per-object deletion.
type Folder interface {
	Scheme() string
	// Expand resolves a glob/prefix pattern to concrete paths. A pattern
	// without glob metacharacters expands to itself.
	Expand(ctx context.Context, pattern string) ([]string, error)
	// List returns every object under path with its last-modified time.
	List(ctx context.Context, path string) ([]ObjectInfo, error)
	Delete(ctx context.Context, uri string) error
}
