package models

import "time"

// ScanReport is the outcome of scanning one page.
type ScanReport struct {
	URL        string        `json:"url" yaml:"url"`
	Filters    FilterSet     `json:"filters" yaml:"filters"`
	Results    ResultSet     `json:"results" yaml:"results"`
	FetchError string        `json:"fetch_error,omitempty" yaml:"fetch_error,omitempty"`
	StatusCode int           `json:"status_code,omitempty" yaml:"status_code,omitempty"`
	FromCache  bool          `json:"from_cache,omitempty" yaml:"from_cache,omitempty"`
	PageInfo   *PageInfo     `json:"page_info,omitempty" yaml:"page_info,omitempty"`
	ScanID     int64         `json:"scan_id,omitempty" yaml:"scan_id,omitempty"`
	Duration   time.Duration `json:"duration_ns" yaml:"duration"`
}

// Failed reports whether the page could not be fetched.
func (r *ScanReport) Failed() bool {
	return r.FetchError != ""
}
