package scan

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/dtnitsch/html-link-parser/models"
	"github.com/dtnitsch/html-link-parser/pkg/caching"
	"github.com/dtnitsch/html-link-parser/pkg/db"
	"github.com/dtnitsch/html-link-parser/pkg/detector"
	"github.com/dtnitsch/html-link-parser/pkg/extractor"
	"github.com/dtnitsch/html-link-parser/pkg/fetcher"
	"github.com/dtnitsch/html-link-parser/pkg/parser"
)

// PageFetcher retrieves the raw body of a page.
type PageFetcher interface {
	GetHtmlBytes(ctx context.Context, url string) ([]byte, error)
}

// Deps are the collaborators of a scan. Cache and DB are optional.
type Deps struct {
	Fetcher PageFetcher
	Parser  *parser.Parser
	Cache   *caching.Cache
	DB      *db.DB
	Logger  *slog.Logger
}

// Run scans cfg.URL. A page that cannot be fetched yields a report with
// FetchError set and every result sequence empty; Run itself never fails.
func Run(ctx context.Context, deps Deps, cfg *models.ScanConfig) *models.ScanReport {
	logger := deps.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	p := deps.Parser
	if p == nil {
		p = &parser.Parser{}
	}

	start := time.Now()
	report := &models.ScanReport{URL: cfg.URL, Filters: cfg.Filters}
	defer func() {
		report.Duration = time.Since(start)
		record(deps, logger, report)
	}()

	body, fromCache, err := load(ctx, deps, logger, cfg.URL)
	if err != nil {
		logger.Warn("failed to fetch page", "url", cfg.URL, "error", err)
		report.FetchError = err.Error()
		var fe *fetcher.FetchError
		if errors.As(err, &fe) {
			report.StatusCode = fe.StatusCode
		}
		return report
	}
	report.FromCache = fromCache

	doc, err := p.Parse(body)
	if err != nil {
		// treated like an unreadable page
		logger.Warn("failed to parse page", "url", cfg.URL, "error", err)
		report.FetchError = err.Error()
		return report
	}
	logger.Info("page parsed", "url", cfg.URL, "tags", doc.Len(), "from_cache", fromCache)

	report.Results = extractor.Extract(doc, cfg.Filters)
	if cfg.Info {
		report.PageInfo = detector.Analyze(cfg.URL, body)
	}
	return report
}

// load returns the page body, preferring a fresh cache entry.
func load(ctx context.Context, deps Deps, logger *slog.Logger, url string) ([]byte, bool, error) {
	if deps.Cache != nil {
		if body, ok := deps.Cache.Get(url); ok {
			logger.Info("cache hit", "url", url)
			return body, true, nil
		}
	}

	logger.Info("fetching page", "url", url)
	body, err := deps.Fetcher.GetHtmlBytes(ctx, url)
	if err != nil {
		return nil, false, err
	}

	if deps.Cache != nil {
		if err := deps.Cache.Put(url, body); err != nil {
			logger.Warn("failed to cache page", "url", url, "error", err)
		}
	}
	return body, false, nil
}

func record(deps Deps, logger *slog.Logger, report *models.ScanReport) {
	if deps.DB == nil {
		return
	}
	scanID, err := deps.DB.RecordScan(report)
	if err != nil {
		logger.Warn("failed to record scan", "url", report.URL, "error", err)
		return
	}
	report.ScanID = scanID
	logger.Info("scan recorded", "scan_id", scanID, "links", report.Results.Total())
}
