package scan

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/dtnitsch/html-link-parser/internal/common"
	"github.com/dtnitsch/html-link-parser/models"
	"github.com/dtnitsch/html-link-parser/pkg/caching"
	"github.com/dtnitsch/html-link-parser/pkg/db"
	"github.com/dtnitsch/html-link-parser/pkg/fetcher"
	"github.com/dtnitsch/html-link-parser/pkg/help"
	"github.com/dtnitsch/html-link-parser/pkg/parser"
	"github.com/dtnitsch/html-link-parser/pkg/report"
	"github.com/dtnitsch/html-link-parser/pkg/storage"
	"github.com/fatih/color"
	"github.com/urfave/cli/v2"
)

// Flags are the options of the root scan action.
func Flags() []cli.Flag {
	return []cli.Flag{
		&cli.BoolFlag{Name: "help", Aliases: []string{"h"}, Usage: "Help"},
		&cli.StringFlag{Name: "url", Aliases: []string{"u"}, Usage: "URL of the page to analyze"},
		&cli.StringSliceFlag{Name: "file-types", Aliases: []string{"f"}, Usage: "File types to consider (for example: .js .php .html)"},
		&cli.BoolFlag{Name: "href", Usage: "Include links from the 'href' attribute"},
		&cli.BoolFlag{Name: "all-files", Usage: "Include all files"},
		&cli.BoolFlag{Name: "src", Usage: "Include links from the 'src' attribute"},
		&cli.BoolFlag{Name: "info", Usage: "Show page title, site name and language"},
		&cli.StringFlag{Name: "format", Value: string(models.FormatText), Usage: "Output format: text, yaml or json"},
		&cli.StringFlag{Name: "output", Aliases: []string{"o"}, Usage: "Also write the report to a file"},
		&cli.StringFlag{Name: "user-agent", EnvVars: []string{"HTMLPARSE_USER_AGENT"}, Value: fetcher.DefaultUserAgent, Usage: "User-Agent header"},
		&cli.DurationFlag{Name: "timeout", EnvVars: []string{"HTMLPARSE_TIMEOUT"}, Value: fetcher.DefaultTimeout, Usage: "Request timeout"},
		&cli.StringFlag{Name: "cache-dir", EnvVars: []string{"HTMLPARSE_CACHE_DIR"}, Usage: "Cache fetched pages in this directory"},
		&cli.DurationFlag{Name: "max-age", EnvVars: []string{"HTMLPARSE_MAX_AGE"}, Value: time.Hour, Usage: "Reuse cached pages younger than this"},
		&cli.StringFlag{Name: "db", EnvVars: []string{"HTMLPARSE_DB"}, Usage: "Scan history database path"},
		&cli.BoolFlag{Name: "no-history", EnvVars: []string{"HTMLPARSE_NO_HISTORY"}, Usage: "Do not record this scan"},
		&cli.BoolFlag{Name: "no-color", Usage: "Disable colored output"},
		&cli.BoolFlag{Name: "quiet", Usage: "Only log errors"},
	}
}

// ConfigFromContext builds the scan configuration from parsed flags.
// Invalid or missing arguments are returned as *UsageError.
func ConfigFromContext(c *cli.Context) (*models.ScanConfig, error) {
	if !c.IsSet("url") {
		return nil, &UsageError{Err: errors.New("the following arguments are required: -u/--url")}
	}
	// scheme and host problems surface later as a fetch failure
	target := common.SanitizeURL(c.String("url"))
	format, err := models.ParseOutputFormat(c.String("format"))
	if err != nil {
		return nil, &UsageError{Err: err}
	}

	return &models.ScanConfig{
		URL: target,
		Filters: models.FilterSet{
			Href:       c.Bool("href"),
			AllFiles:   c.Bool("all-files"),
			Src:        c.Bool("src"),
			Extensions: c.StringSlice("file-types"),
		},
		UserAgent:  c.String("user-agent"),
		Timeout:    c.Duration("timeout"),
		CacheDir:   c.String("cache-dir"),
		MaxAge:     c.Duration("max-age"),
		DBPath:     c.String("db"),
		NoHistory:  c.Bool("no-history"),
		OutputPath: c.String("output"),
		Format:     format,
		Info:       c.Bool("info"),
		NoColor:    c.Bool("no-color"),
		Quiet:      c.Bool("quiet"),
	}, nil
}

// ScanAction is the root action: fetch one page and print its links.
func ScanAction(c *cli.Context) error {
	stdout, stderr := c.App.Writer, c.App.ErrWriter

	if c.Bool("help") {
		fmt.Fprint(stdout, help.Text(help.Options))
		return nil
	}

	cfg, err := ConfigFromContext(c)
	if err != nil {
		return err
	}
	if cfg.NoColor {
		color.NoColor = true
	}

	if !cfg.Filters.Active() {
		fmt.Fprint(stdout, help.NoFilterError())
		return ErrNoFilter
	}

	logLevel := slog.LevelInfo
	if cfg.Quiet {
		logLevel = slog.LevelError
	}
	logger := slog.New(slog.NewJSONHandler(stderr, &slog.HandlerOptions{Level: logLevel}))

	if cfg.Format == models.FormatText {
		fmt.Fprintln(stdout, help.Banner())
	}

	deps := Deps{
		Fetcher: fetcher.NewFetcher(fetcher.WithUserAgent(cfg.UserAgent), fetcher.WithTimeout(cfg.Timeout)),
		Parser:  &parser.Parser{},
		Logger:  logger,
	}

	if cfg.CacheDir != "" {
		cache, err := caching.New(cfg.CacheDir, cfg.MaxAge)
		if err != nil {
			logger.Warn("cache disabled", "error", err)
		} else {
			deps.Cache = cache
		}
	}

	if !cfg.NoHistory {
		database, err := db.Open(cfg.DBPath)
		if err != nil {
			logger.Warn("scan history disabled", "error", err)
		} else {
			defer database.Close()
			deps.DB = database
		}
	}

	logger.Info("starting scan", "url", cfg.URL, "href", cfg.Filters.Href, "all_files", cfg.Filters.AllFiles,
		"src", cfg.Filters.Src, "file_types", cfg.Filters.Extensions)
	rep := Run(c.Context, deps, cfg)

	if rep.Failed() {
		fmt.Fprint(stderr, help.FetchError(errors.New(rep.FetchError)))
	}

	if err := report.Write(stdout, rep, cfg.Format); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	if cfg.OutputPath != "" {
		if err := saveReport(cfg.OutputPath, rep, cfg.Format); err != nil {
			return err
		}
		logger.Info("report saved", "path", cfg.OutputPath)
	}
	return nil
}

// saveReport writes an uncolored rendering of rep to path.
func saveReport(path string, rep *models.ScanReport, format models.OutputFormat) error {
	prev := color.NoColor
	color.NoColor = true
	defer func() { color.NoColor = prev }()

	var buf bytes.Buffer
	if err := report.Write(&buf, rep, format); err != nil {
		return fmt.Errorf("failed to render report: %w", err)
	}
	s := &storage.Storage{}
	if err := s.SaveFile(path, buf.Bytes()); err != nil {
		return fmt.Errorf("failed to save report: %w", err)
	}
	return nil
}

// OnUsageError converts flag parsing failures into *UsageError.
func OnUsageError(_ *cli.Context, err error, _ bool) error {
	return &UsageError{Err: err}
}

// PrintError reports an action error the way the command line expects.
func PrintError(w io.Writer, err error) {
	var usage *UsageError
	switch {
	case err == nil, errors.Is(err, ErrNoFilter):
		// already reported by the action
	case errors.As(err, &usage):
		fmt.Fprint(w, help.UsageError(usage.Error()))
	default:
		fmt.Fprintf(w, "%s %v\n", help.ErrorIcon(), err)
	}
}
