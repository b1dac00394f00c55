// Package models defines data structures for configuration and extraction.
package models

import "time"

// ScanConfig holds runtime configuration for a scan.
// All values come from CLI flags or their environment fallbacks.
type ScanConfig struct {
	URL       string
	Filters   FilterSet
	UserAgent string
	Timeout   time.Duration

	CacheDir string
	MaxAge   time.Duration

	DBPath    string
	NoHistory bool

	OutputPath string
	Format     OutputFormat
	Info       bool
	NoColor    bool
	Quiet      bool
}
