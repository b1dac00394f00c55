// Package detector derives lightweight page metadata for the --info report.
package detector

import (
	"bytes"
	"net/url"
	"strings"
	"sync"

	"github.com/PuerkitoBio/goquery"
	"github.com/dtnitsch/html-link-parser/models"
	"github.com/go-shiori/go-readability"
	"github.com/pemistahl/lingua-go"
)

// minLanguageText is the shortest text handed to the language detector.
const minLanguageText = 20

var (
	languageOnce     sync.Once
	languageDetector lingua.LanguageDetector
)

// supportedLanguages bounds model loading to languages commonly seen on targets.
var supportedLanguages = []lingua.Language{
	lingua.English,
	lingua.Portuguese,
	lingua.Spanish,
	lingua.French,
	lingua.German,
	lingua.Italian,
	lingua.Dutch,
	lingua.Russian,
	lingua.Chinese,
	lingua.Japanese,
}

func detectorInstance() lingua.LanguageDetector {
	languageOnce.Do(func() {
		languageDetector = lingua.NewLanguageDetectorBuilder().
			FromLanguages(supportedLanguages...).
			Build()
	})
	return languageDetector
}

// Analyze extracts title, site name, excerpt, domain type and language from a page body.
// It never fails; fields it cannot determine are left empty.
func Analyze(rawURL string, body []byte) *models.PageInfo {
	info := &models.PageInfo{}

	parsedURL, err := url.Parse(rawURL)
	if err != nil {
		parsedURL = &url.URL{}
	}
	info.DomainType = detectDomainType(parsedURL)

	var text string
	rp := readability.NewParser()
	article, err := rp.Parse(bytes.NewReader(body), parsedURL)
	if err == nil {
		info.Title = normalizeSpace(article.Title)
		info.SiteName = normalizeSpace(article.SiteName)
		info.Excerpt = normalizeSpace(article.Excerpt)
		text = article.TextContent
	}

	if info.Title == "" || text == "" {
		if doc, derr := goquery.NewDocumentFromReader(bytes.NewReader(body)); derr == nil {
			if info.Title == "" {
				info.Title = normalizeSpace(doc.Find("title").First().Text())
			}
			if text == "" {
				text = doc.Find("body").Text()
			}
		}
	}

	info.Language, info.LanguageConfidence = detectLanguage(text)
	return info
}

// detectLanguage returns the ISO-639-1 code of text and the detector's confidence.
func detectLanguage(text string) (string, float64) {
	text = normalizeSpace(text)
	if len(text) < minLanguageText {
		return "", 0
	}
	d := detectorInstance()
	lang, ok := d.DetectLanguageOf(text)
	if !ok {
		return "", 0
	}
	return strings.ToLower(lang.IsoCode639_1().String()), d.ComputeLanguageConfidence(text, lang)
}

// detectDomainType classifies the target host
func detectDomainType(u *url.URL) string {
	host := strings.ToLower(u.Hostname())
	if host == "" {
		return ""
	}

	switch {
	case strings.HasSuffix(host, ".gov") || strings.HasSuffix(host, ".mil"):
		return "gov"
	case strings.HasSuffix(host, ".edu"):
		return "edu"
	case strings.HasPrefix(host, "m.") || strings.HasPrefix(host, "mobile."):
		return "mobile"
	case strings.HasPrefix(host, "api.") || strings.HasPrefix(u.Path, "/api/"):
		return "api"
	case strings.HasPrefix(host, "dev.") || strings.HasPrefix(host, "staging.") || strings.HasPrefix(host, "test."):
		return "non-production"
	}
	return "commercial"
}

func normalizeSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
