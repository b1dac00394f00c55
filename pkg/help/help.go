// Package help renders the banner, help screen and usage errors from the option table.
package help

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

const ProgramName = "html-link-parser"

// Separator frames each result section.
var Separator = strings.Repeat("-", 53)

const banner = `
╔═════════════════════════════════════════════════════╗
║ _   _ _____ __  __ _       ____                     ║
║| | | |_   _|  \/  | |     |  _ \ __ _ _ __ ___  ___ ║
║| |_| | | | | |\/| | |     | |_) / _` + "`" + ` | '__/ __|/ _ \║
║|  _  | | | | |  | | |___  |  __/ (_| | |  \__ \  __/║
║|_| |_| |_| |_|  |_|_____| |_|   \__,_|_|  |___/\___|║
╚═════════════════════════════════════════════════════╝
`

// Option describes one command line option for the help screen.
type Option struct {
	Short   string
	Long    string
	Meaning string
}

// Flags renders the option's spellings, e.g. "-u,--url".
func (o Option) Flags() string {
	var names []string
	if o.Short != "" {
		names = append(names, "-"+o.Short)
	}
	if o.Long != "" {
		names = append(names, "--"+o.Long)
	}
	return strings.Join(names, ",")
}

// Options is the table the help screen is built from, in display order.
var Options = []Option{
	{Short: "h", Long: "help", Meaning: "Help"},
	{Short: "u", Long: "url", Meaning: "URL of the page to analyze"},
	{Short: "f", Long: "file-types", Meaning: "File types to consider (for example: .js .php .html)"},
	{Long: "href", Meaning: "Include links from the 'href' attribute"},
	{Long: "all-files", Meaning: "Include all files"},
	{Long: "src", Meaning: "Include links from the 'src' attribute"},
	{Long: "info", Meaning: "Show page title, site name and language"},
	{Long: "format", Meaning: "Output format: text, yaml or json"},
	{Short: "o", Long: "output", Meaning: "Also write the report to a file"},
	{Long: "user-agent", Meaning: "User-Agent header sent with the request"},
	{Long: "timeout", Meaning: "Request timeout (for example: 10s)"},
	{Long: "cache-dir", Meaning: "Cache fetched pages in this directory"},
	{Long: "max-age", Meaning: "Reuse cached pages younger than this (for example: 1h)"},
	{Long: "db", Meaning: "Scan history database path"},
	{Long: "no-history", Meaning: "Do not record this scan"},
	{Long: "no-color", Meaning: "Disable colored output"},
	{Long: "quiet", Meaning: "Only log errors"},
}

// ErrorIcon prefixes error messages.
func ErrorIcon() string {
	return color.New(color.Bold, color.FgRed).Sprint("[-]")
}

// Banner returns the program banner.
func Banner() string {
	return color.GreenString(banner)
}

// Text builds the help screen from the option table.
func Text(options []Option) string {
	width := 0
	for _, o := range options {
		if n := len(o.Flags()); n > width {
			width = n
		}
	}
	width += 2

	var b strings.Builder
	b.WriteString("\nExtracts links from an HTML page.\n\n")
	b.WriteString(color.New(color.Bold).Sprintf("%-*s%s", width, "Option", "Meaning"))
	b.WriteString("\n")
	for _, o := range options {
		fmt.Fprintf(&b, "%-*s%s\n", width, o.Flags(), o.Meaning)
	}
	b.WriteString("\nCommands:\n")
	fmt.Fprintf(&b, "%-*s%s\n", width, "history", "List recorded scans")
	fmt.Fprintf(&b, "%-*s%s\n", width, "history show ID", "Print the links of a recorded scan")
	b.WriteString("\n")
	return b.String()
}

// UsageError formats an argument error with a usage example.
func UsageError(message string) string {
	return fmt.Sprintf("\n%s Example usage:\n%s -u <http://url> --href -f .js\n%s --help\n\n%s\n\n",
		ErrorIcon(), ProgramName, ProgramName, message)
}

// NoFilterError is printed when no extraction rule was selected.
func NoFilterError() string {
	return fmt.Sprintf("\n%s At least one of the scan arguments (-f, --href, --all-files, --src) must be supplied.\n\n", ErrorIcon())
}

// FetchError is printed when the target page could not be retrieved.
func FetchError(err error) string {
	return fmt.Sprintf("%s Error accessing the URL: %v\n", ErrorIcon(), err)
}
