// Package extractor classifies the href and src values of a parsed page
// into the four link categories.
package extractor

import (
	"strings"

	"github.com/dtnitsch/html-link-parser/models"
)

// resourceTags are the tags inspected by the all-files rule.
var resourceTags = map[string]struct{}{
	"script": {},
	"img":    {},
	"link":   {},
	"a":      {},
}

// Extract runs every rule enabled by filters over doc and returns the results.
// It never mutates doc.
func Extract(doc *models.Document, filters models.FilterSet) models.ResultSet {
	var rs models.ResultSet
	if doc.Len() == 0 {
		return rs
	}

	if filters.HrefActive() {
		rs.Href = HrefLinks(doc)
	}
	if filters.AllFiles {
		rs.AllFiles = AllFileLinks(doc)
	}
	if filters.ExtensionActive() {
		rs.Extension = ExtensionLinks(doc, filters.Extensions)
	}
	if filters.Src {
		rs.Src = SrcLinks(doc)
	}
	return rs
}

// HrefLinks returns the href of every <a>, skipping in-page anchors.
func HrefLinks(doc *models.Document) []string {
	var links []string
	for _, tag := range doc.Tags {
		if tag.Name != "a" {
			continue
		}
		if href, ok := tag.Attr("href"); ok && !isAnchor(href) {
			links = append(links, href)
		}
	}
	return links
}

// AllFileLinks returns src and non-anchor href values of script, img, link and a tags.
// A tag carrying both contributes its src first.
func AllFileLinks(doc *models.Document) []string {
	var links []string
	for _, tag := range doc.Tags {
		if _, ok := resourceTags[tag.Name]; !ok {
			continue
		}
		if src, ok := tag.Attr("src"); ok {
			links = append(links, src)
		}
		if href, ok := tag.Attr("href"); ok && !isAnchor(href) {
			links = append(links, href)
		}
	}
	return links
}

// ExtensionLinks returns src and href values of any tag ending with one of the suffixes.
// Matching is a literal, case-sensitive suffix test.
func ExtensionLinks(doc *models.Document, suffixes []string) []string {
	if len(suffixes) == 0 {
		return nil
	}
	var links []string
	for _, tag := range doc.Tags {
		for _, attr := range []string{"src", "href"} {
			if v, ok := tag.Attr(attr); ok && HasAnySuffix(v, suffixes) {
				links = append(links, v)
			}
		}
	}
	return links
}

// SrcLinks returns the src of every tag that has one.
func SrcLinks(doc *models.Document) []string {
	var links []string
	for _, tag := range doc.Tags {
		if src, ok := tag.Attr("src"); ok {
			links = append(links, src)
		}
	}
	return links
}

// HasAnySuffix reports whether value ends with at least one of suffixes.
func HasAnySuffix(value string, suffixes []string) bool {
	for _, s := range suffixes {
		if strings.HasSuffix(value, s) {
			return true
		}
	}
	return false
}

func isAnchor(href string) bool {
	return strings.HasPrefix(href, "#")
}
