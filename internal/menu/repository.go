package menu

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// CatalogSource supplies the menu once per process.
type CatalogSource interface {
	Load(ctx context.Context) ([]MenuItem, error)
}

// ObjectFetcher reads a whole object from a bucket.
type ObjectFetcher interface {
	Download(ctx context.Context, key string) ([]byte, error)
}

// --------------------------------------------------
// Local file
// --------------------------------------------------

type FileSource struct {
	path string
}

func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

func (s *FileSource) Load(ctx context.Context) ([]MenuItem, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	return DecodeCatalog(filepath.Base(s.path), data)
}

// --------------------------------------------------
// Object storage (R2 / S3)
// --------------------------------------------------

type ObjectSource struct {
	fetcher ObjectFetcher
	key     string
}

func NewObjectSource(fetcher ObjectFetcher, key string) *ObjectSource {
	return &ObjectSource{fetcher: fetcher, key: key}
}

func (s *ObjectSource) Load(ctx context.Context) ([]MenuItem, error) {
	data, err := s.fetcher.Download(ctx, s.key)
	if err != nil {
		return nil, fmt.Errorf("download catalog %s: %w", s.key, err)
	}
	return DecodeCatalog(s.key, data)
}

// --------------------------------------------------
// Fixed list (tests, CLI)
// --------------------------------------------------

type StaticSource []MenuItem

func (s StaticSource) Load(ctx context.Context) ([]MenuItem, error) {
	return []MenuItem(s), nil
}
