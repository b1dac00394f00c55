package db

const schema = `
PRAGMA foreign_keys = ON;

-- One row per scan of a target page
CREATE TABLE IF NOT EXISTS scans (
    scan_id INTEGER PRIMARY KEY AUTOINCREMENT,
    url TEXT NOT NULL,
    filters TEXT NOT NULL,          -- JSON encoded FilterSet
    status TEXT NOT NULL,           -- success, failed
    status_code INTEGER DEFAULT 0,
    error TEXT,
    from_cache BOOLEAN DEFAULT 0,
    link_count INTEGER DEFAULT 0,
    duration_ms INTEGER DEFAULT 0,
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_scans_url ON scans(url);
CREATE INDEX IF NOT EXISTS idx_scans_created ON scans(created_at);

-- Links found by a scan, per category, in document order
CREATE TABLE IF NOT EXISTS scan_links (
    link_id INTEGER PRIMARY KEY AUTOINCREMENT,
    scan_id INTEGER NOT NULL,
    category TEXT NOT NULL,         -- href, extension, all_files, src
    position INTEGER NOT NULL,
    link TEXT NOT NULL,
    FOREIGN KEY (scan_id) REFERENCES scans(scan_id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_scan_links_scan ON scan_links(scan_id, category, position);
`
