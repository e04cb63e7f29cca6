package sources

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/goliatone/go-newsfeed/pkg/interfaces"
)

// FSSource lists and reads documents from an fs.FS. Entry download URLs are
// slash-separated paths relative to the filesystem root.
type FSSource struct {
	fs fs.FS
}

var _ interfaces.Fetcher = (*FSSource)(nil)

// NewFSSource wraps filesystem.
func NewFSSource(filesystem fs.FS) *FSSource {
	return &FSSource{fs: filesystem}
}

// NewDirSource roots an FSSource at basePath on the local disk.
func NewDirSource(basePath string) (*FSSource, error) {
	if strings.TrimSpace(basePath) == "" {
		basePath = "."
	}
	info, err := os.Stat(basePath)
	if err != nil {
		return nil, fmt.Errorf("sources: stat base path %s: %w", basePath, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("sources: base path %s is not a directory", basePath)
	}
	return NewFSSource(os.DirFS(basePath)), nil
}

// ListDocuments returns the regular files directly inside location.Path,
// sorted by name. Sub-directories are not traversed.
func (s *FSSource) ListDocuments(ctx context.Context, location interfaces.Location) ([]interfaces.Entry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	dir := cleanRelative(location.Path)
	items, err := fs.ReadDir(s.fs, dir)
	if err != nil {
		return nil, fmt.Errorf("sources: read dir %s: %w", dir, err)
	}

	entries := make([]interfaces.Entry, 0, len(items))
	for _, item := range items {
		if item.IsDir() {
			continue
		}
		entries = append(entries, interfaces.Entry{
			Name:        item.Name(),
			DownloadURL: path.Join(dir, item.Name()),
		})
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Name < entries[j].Name
	})
	return entries, nil
}

// FetchContent reads the file referenced by downloadURL.
func (s *FSSource) FetchContent(ctx context.Context, downloadURL string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	rel := cleanRelative(downloadURL)
	data, err := fs.ReadFile(s.fs, rel)
	if err != nil {
		return "", fmt.Errorf("sources: read %s: %w", rel, err)
	}
	return string(data), nil
}

// cleanRelative normalises p into the unrooted, slash separated form fs.FS
// expects.
func cleanRelative(p string) string {
	p = filepath.ToSlash(strings.TrimSpace(p))
	p = strings.TrimPrefix(path.Clean("/"+p), "/")
	if p == "" {
		return "."
	}
	return p
}
