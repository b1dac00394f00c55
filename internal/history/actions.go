package history

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/dtnitsch/html-link-parser/internal/scan"
	"github.com/dtnitsch/html-link-parser/models"
	dbpkg "github.com/dtnitsch/html-link-parser/pkg/db"
	"github.com/dtnitsch/html-link-parser/pkg/report"
	"github.com/urfave/cli/v2"
)

// ListAction prints recorded scans, newest first.
func ListAction(c *cli.Context) error {
	database, err := dbpkg.Open(c.String("db"))
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer database.Close()

	scans, err := database.ListScans(c.Int("limit"))
	if err != nil {
		return fmt.Errorf("failed to list scans: %w", err)
	}

	w := c.App.Writer
	if len(scans) == 0 {
		fmt.Fprintln(w, "No scans recorded")
		return nil
	}

	fmt.Fprintf(w, "%-6s %-20s %-8s %-6s %-30s %s\n", "ID", "Created", "Status", "Links", "Filters", "URL")
	fmt.Fprintln(w, strings.Repeat("-", 100))
	for _, s := range scans {
		fmt.Fprintf(w, "%-6d %-20s %-8s %-6d %-30s %s\n",
			s.ScanID,
			s.CreatedAt.Format("2006-01-02 15:04:05"),
			s.Status,
			s.LinkCount,
			describeFilters(s.Filters),
			s.URL,
		)
	}

	fmt.Fprintf(w, "\nTotal: %d scans\n", len(scans))
	fmt.Fprintf(w, "\nTip: Use 'html-link-parser history show <id>' to see the links\n")
	return nil
}

// ShowAction prints the links recorded for one scan.
func ShowAction(c *cli.Context) error {
	if c.NArg() != 1 {
		return &scan.UsageError{Err: errors.New("history show expects exactly one scan ID")}
	}
	scanID, err := strconv.ParseInt(c.Args().First(), 10, 64)
	if err != nil {
		return &scan.UsageError{Err: fmt.Errorf("invalid scan ID %q", c.Args().First())}
	}
	format, err := models.ParseOutputFormat(c.String("format"))
	if err != nil {
		return &scan.UsageError{Err: err}
	}

	database, err := dbpkg.Open(c.String("db"))
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer database.Close()

	s, err := database.GetScan(scanID)
	if err != nil {
		return err
	}
	links, err := database.GetScanLinks(scanID)
	if err != nil {
		return err
	}

	rep := &models.ScanReport{
		URL:        s.URL,
		Filters:    s.Filters,
		Results:    links,
		FetchError: s.Error,
		StatusCode: s.StatusCode,
		FromCache:  s.FromCache,
		ScanID:     s.ScanID,
		Duration:   s.Duration,
	}

	if format == models.FormatText {
		fmt.Fprintf(c.App.Writer, "Scan %d of %s at %s\n", s.ScanID, s.URL, s.CreatedAt.Format("2006-01-02 15:04:05"))
		if rep.Failed() {
			fmt.Fprintf(c.App.Writer, "Fetch failed: %s\n", rep.FetchError)
		}
		fmt.Fprintln(c.App.Writer)
	}
	return report.Write(c.App.Writer, rep, format)
}

// describeFilters renders a FilterSet the way it was typed on the command line.
func describeFilters(f models.FilterSet) string {
	var parts []string
	if f.Href {
		parts = append(parts, "--href")
	}
	if f.AllFiles {
		parts = append(parts, "--all-files")
	}
	if f.Src {
		parts = append(parts, "--src")
	}
	if f.ExtensionActive() {
		parts = append(parts, "-f "+strings.Join(f.Extensions, " "))
	}
	return strings.Join(parts, " ")
}
