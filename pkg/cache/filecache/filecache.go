// Package filecache provides a file-backed LocalCache implementation.
//
// Each key maps to one file inside the cache directory; writes go through a
// temporary file and an atomic rename so a crashed write never leaves a
// truncated snapshot behind.
package filecache

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"orgboard/pkg/orgboard"
)

// Cache stores serialized snapshots as files under one directory.
type Cache struct {
	dir string
}

// New creates the cache directory when missing and returns a cache rooted
// at dir.
func New(dir string) (*Cache, error) {
	trimmed := strings.TrimSpace(dir)
	if trimmed == "" {
		return nil, fmt.Errorf("new file cache: empty directory")
	}

	cleaned := filepath.Clean(trimmed)
	if err := os.MkdirAll(cleaned, 0o755); err != nil {
		return nil, fmt.Errorf("new file cache: create directory %s: %w", cleaned, err)
	}

	return &Cache{dir: cleaned}, nil
}

// Get returns the serialized value stored under key.
func (c *Cache) Get(key string) (string, bool, error) {
	if c == nil {
		return "", false, fmt.Errorf("file cache get: nil cache")
	}
	if strings.TrimSpace(key) == "" {
		return "", false, fmt.Errorf("file cache get: empty key")
	}

	data, err := os.ReadFile(c.pathFor(key))
	if errors.Is(err, os.ErrNotExist) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("file cache get %s: %w", key, err)
	}

	return string(data), true, nil
}

// Set stores the serialized value under key.
func (c *Cache) Set(key string, value string) error {
	if c == nil {
		return fmt.Errorf("file cache set: nil cache")
	}
	if strings.TrimSpace(key) == "" {
		return fmt.Errorf("file cache set: empty key")
	}

	temp, err := os.CreateTemp(c.dir, fileNameFor(key)+".tmp-*")
	if err != nil {
		return fmt.Errorf("file cache set %s: %w", key, err)
	}
	tempName := temp.Name()

	if _, err := temp.WriteString(value); err != nil {
		_ = temp.Close()
		_ = os.Remove(tempName)
		return fmt.Errorf("file cache set %s: %w", key, err)
	}
	if err := temp.Close(); err != nil {
		_ = os.Remove(tempName)
		return fmt.Errorf("file cache set %s: %w", key, err)
	}
	if err := os.Rename(tempName, c.pathFor(key)); err != nil {
		_ = os.Remove(tempName)
		return fmt.Errorf("file cache set %s: %w", key, err)
	}

	return nil
}

func (c *Cache) pathFor(key string) string {
	return filepath.Join(c.dir, fileNameFor(key))
}

// fileNameFor maps a cache key to a safe file name; characters outside
// [A-Za-z0-9._-] are percent-encoded.
func fileNameFor(key string) string {
	var builder strings.Builder
	for _, r := range key {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			builder.WriteRune(r)
		case r == '.', r == '_', r == '-':
			builder.WriteRune(r)
		default:
			fmt.Fprintf(&builder, "%%%04x", r)
		}
	}

	return builder.String()
}

var _ orgboard.LocalCache = (*Cache)(nil)
