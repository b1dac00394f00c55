// Package report renders a ScanReport as console text, YAML or JSON.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/dtnitsch/html-link-parser/models"
	"github.com/dtnitsch/html-link-parser/pkg/help"
	"github.com/fatih/color"
	"gopkg.in/yaml.v3"
)

// section describes one block of the text report.
type section struct {
	active bool
	header string
	empty  string
	links  []string
}

func sections(r *models.ScanReport) []section {
	f := r.Filters
	return []section{
		{
			active: f.Href,
			header: "Links found in the <href> attribute:",
			empty:  "No link found in the <href> attribute.",
			links:  r.Results.Href,
		},
		{
			active: f.ExtensionActive(),
			header: "Links for the specified file types: " + quoteList(f.Extensions),
			empty:  "None of the specified file types was found.",
			links:  r.Results.Extension,
		},
		{
			active: f.AllFiles,
			header: "All file links found:",
			empty:  "No file link was found.",
			links:  r.Results.AllFiles,
		},
		{
			active: f.Src,
			header: "Links found in the <src> attribute:",
			empty:  "No link found in the <src> attribute.",
			links:  r.Results.Src,
		},
	}
}

// quoteList renders exts as a bracketed, comma separated list of quoted
// strings, e.g. ['.js', '.php'].
func quoteList(exts []string) string {
	quoted := make([]string, len(exts))
	for i, ext := range exts {
		quoted[i] = quoteItem(ext)
	}
	return "[" + strings.Join(quoted, ", ") + "]"
}

// quoteItem single-quotes s, switching to double quotes when s holds a single
// quote but no double quote.
func quoteItem(s string) string {
	q := "'"
	if strings.Contains(s, "'") && !strings.Contains(s, `"`) {
		q = `"`
	}
	s = strings.ReplaceAll(s, `\`, `\\`)
	if q == "'" {
		s = strings.ReplaceAll(s, "'", `\'`)
	}
	return q + s + q
}

// WriteText prints the page info (when present) and every active section in
// href, extension, all-files, src order.
func WriteText(w io.Writer, r *models.ScanReport) error {
	bold := color.New(color.Bold)
	var b strings.Builder

	if info := r.PageInfo; info != nil {
		b.WriteString(help.Separator + "\n")
		b.WriteString(bold.Sprint("Page information:") + "\n")
		b.WriteString(help.Separator + "\n")
		writeField(&b, "Title", info.Title)
		writeField(&b, "Site", info.SiteName)
		writeField(&b, "Domain type", info.DomainType)
		if info.Language != "" {
			fmt.Fprintf(&b, "%-12s %s (%.2f)\n", "Language:", info.Language, info.LanguageConfidence)
		}
		writeField(&b, "Excerpt", info.Excerpt)
		b.WriteString("\n")
	}

	for _, s := range sections(r) {
		if !s.active {
			continue
		}
		b.WriteString(help.Separator + "\n")
		b.WriteString(bold.Sprint(s.header) + "\n")
		b.WriteString(help.Separator + "\n")
		if len(s.links) == 0 {
			b.WriteString(s.empty + "\n\n")
			continue
		}
		for _, link := range s.links {
			b.WriteString(link + "\n")
		}
		b.WriteString("\n")
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func writeField(b *strings.Builder, name, value string) {
	if value == "" {
		return
	}
	fmt.Fprintf(b, "%-12s %s\n", name+":", value)
}

// WriteYAML renders the whole report as YAML.
func WriteYAML(w io.Writer, r *models.ScanReport) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("failed to encode YAML: %w", err)
	}
	return enc.Close()
}

// WriteJSON renders the whole report as indented JSON.
func WriteJSON(w io.Writer, r *models.ScanReport) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}

// Write renders r in the requested format.
func Write(w io.Writer, r *models.ScanReport, format models.OutputFormat) error {
	switch format {
	case models.FormatYAML:
		return WriteYAML(w, r)
	case models.FormatJSON:
		return WriteJSON(w, r)
	default:
		return WriteText(w, r)
	}
}
