package db

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/dtnitsch/html-link-parser/models"
)

// ErrScanNotFound is returned when a scan id does not exist.
var ErrScanNotFound = errors.New("scan not found")

// Scan is a recorded scan without its links.
type Scan struct {
	ScanID     int64
	URL        string
	Filters    models.FilterSet
	Status     string
	StatusCode int
	Error      string
	FromCache  bool
	LinkCount  int
	Duration   time.Duration
	CreatedAt  time.Time
}

// RecordScan stores a report and its links, returning the new scan id.
func (db *DB) RecordScan(r *models.ScanReport) (int64, error) {
	filters, err := json.Marshal(r.Filters)
	if err != nil {
		return 0, fmt.Errorf("failed to encode filters: %w", err)
	}

	status := "success"
	if r.Failed() {
		status = "failed"
	}

	tx, err := db.Begin()
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	res, err := tx.Exec(`
		INSERT INTO scans (url, filters, status, status_code, error, from_cache, link_count, duration_ms)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		r.URL, string(filters), status, r.StatusCode, r.FetchError, r.FromCache,
		r.Results.Total(), r.Duration.Milliseconds(),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to insert scan: %w", err)
	}
	scanID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get scan id: %w", err)
	}

	stmt, err := tx.Prepare(`INSERT INTO scan_links (scan_id, category, position, link) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return 0, fmt.Errorf("failed to prepare link insert: %w", err)
	}
	defer stmt.Close()

	for _, category := range models.Categories {
		for i, link := range r.Results.Category(category) {
			if _, err := stmt.Exec(scanID, category, i, link); err != nil {
				return 0, fmt.Errorf("failed to insert link: %w", err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit scan: %w", err)
	}
	return scanID, nil
}

const scanColumns = `scan_id, url, filters, status, status_code, COALESCE(error, ''), from_cache, link_count, duration_ms, created_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRow(row rowScanner) (*Scan, error) {
	var (
		s          Scan
		filters    string
		durationMS int64
	)
	if err := row.Scan(&s.ScanID, &s.URL, &filters, &s.Status, &s.StatusCode, &s.Error,
		&s.FromCache, &s.LinkCount, &durationMS, &s.CreatedAt); err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(filters), &s.Filters); err != nil {
		return nil, fmt.Errorf("failed to decode filters of scan %d: %w", s.ScanID, err)
	}
	s.Duration = time.Duration(durationMS) * time.Millisecond
	return &s, nil
}

// ListScans returns the most recent scans first. A non-positive limit returns all.
func (db *DB) ListScans(limit int) ([]Scan, error) {
	query := `SELECT ` + scanColumns + ` FROM scans ORDER BY scan_id DESC`
	var args []any
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query scans: %w", err)
	}
	defer rows.Close()

	var scans []Scan
	for rows.Next() {
		s, err := scanRow(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to read scan: %w", err)
		}
		scans = append(scans, *s)
	}
	return scans, rows.Err()
}

// GetScan returns one scan by id.
func (db *DB) GetScan(scanID int64) (*Scan, error) {
	row := db.QueryRow(`SELECT `+scanColumns+` FROM scans WHERE scan_id = ?`, scanID)
	s, err := scanRow(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %d", ErrScanNotFound, scanID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read scan %d: %w", scanID, err)
	}
	return s, nil
}

// GetScanLinks rebuilds the ResultSet recorded for a scan.
func (db *DB) GetScanLinks(scanID int64) (models.ResultSet, error) {
	var rs models.ResultSet

	rows, err := db.Query(`SELECT category, link FROM scan_links WHERE scan_id = ? ORDER BY category, position`, scanID)
	if err != nil {
		return rs, fmt.Errorf("failed to query links: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var category, link string
		if err := rows.Scan(&category, &link); err != nil {
			return rs, fmt.Errorf("failed to read link: %w", err)
		}
		switch category {
		case models.CategoryHref:
			rs.Href = append(rs.Href, link)
		case models.CategoryExtension:
			rs.Extension = append(rs.Extension, link)
		case models.CategoryAllFiles:
			rs.AllFiles = append(rs.AllFiles, link)
		case models.CategorySrc:
			rs.Src = append(rs.Src, link)
		}
	}
	return rs, rows.Err()
}
