package caching

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Cache stores fetched page bodies on disk, one file per target URL.
type Cache struct {
	dir string
	ttl time.Duration
	now func() time.Time
}

// New creates a Cache rooted at dir, creating the directory if needed.
// A ttl of zero makes every lookup a miss while still recording bodies.
func New(dir string, ttl time.Duration) (*Cache, error) {
	if dir == "" {
		return nil, fmt.Errorf("cache directory is required")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create cache directory: %w", err)
	}
	return &Cache{dir: dir, ttl: ttl, now: time.Now}, nil
}

func (c *Cache) path(targetURL string) string {
	sum := sha256.Sum256([]byte(targetURL))
	return filepath.Join(c.dir, hex.EncodeToString(sum[:])+".html")
}

// Get returns the cached body for targetURL when it is younger than the TTL.
func (c *Cache) Get(targetURL string) ([]byte, bool) {
	if c.ttl <= 0 {
		return nil, false
	}
	p := c.path(targetURL)
	info, err := os.Stat(p)
	if err != nil {
		return nil, false
	}
	if c.now().Sub(info.ModTime()) > c.ttl {
		return nil, false
	}
	data, err := os.ReadFile(p)
	if err != nil {
		return nil, false
	}
	return data, true
}

// Put records body for targetURL.
func (c *Cache) Put(targetURL string, body []byte) error {
	if err := os.WriteFile(c.path(targetURL), body, 0o644); err != nil {
		return fmt.Errorf("failed to write to cache: %w", err)
	}
	return nil
}
