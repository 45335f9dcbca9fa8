package local

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/dev-tams/sweepkit/internal/storage"
)

type Folder struct{}

func New() *Folder { return &Folder{} }

func (f *Folder) Scheme() string { return "file" }

// trimScheme accepts both file:// URIs and bare filesystem paths.
func trimScheme(uri string) string {
	return strings.TrimPrefix(uri, "file://")
}

func (f *Folder) Expand(_ context.Context, pattern string) ([]string, error) {
	p := trimScheme(pattern)
	if !strings.ContainsAny(p, "*?[") {
		return []string{p}, nil
	}

	matches, err := filepath.Glob(p)
	if err != nil {
		return nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	return matches, nil
}

func (f *Folder) List(_ context.Context, path string) ([]storage.ObjectInfo, error) {
	root := trimScheme(path)

	fi, err := os.Stat(root)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("stat %s: %w", root, err)
	}

	if !fi.IsDir() {
		return []storage.ObjectInfo{{URI: root, Size: fi.Size(), ModTime: fi.ModTime()}}, nil
	}

	var out []storage.ObjectInfo
	err = filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return fmt.Errorf("stat %s: %w", p, err)
		}
		out = append(out, storage.ObjectInfo{
			URI:     p,
			Size:    info.Size(),
			ModTime: info.ModTime(),
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk %s: %w", root, err)
	}
	return out, nil
}

func (f *Folder) Delete(_ context.Context, uri string) error {
	p := trimScheme(uri)
	if err := os.Remove(p); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("delete %s: %w", p, err)
	}
	return nil
}
