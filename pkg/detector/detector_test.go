package detector

import (
	"net/url"
	"testing"
)

const englishPage = `<html><head><title>Acme Widget Support Portal</title>
<meta property="og:site_name" content="Acme"></head>
<body><article><h1>Acme Widget Support Portal</h1>
<p>Welcome to the support portal. Here you can find documentation for every widget we ship,
download the latest firmware, and open a ticket with our engineering team when something
goes wrong. Our engineers read every report and usually answer within one business day.</p>
<p>Before opening a ticket, please check the frequently asked questions and make sure your
widget is running the most recent firmware release, because many problems are already fixed.</p>
</article></body></html>`

func TestAnalyze(t *testing.T) {
	info := Analyze("https://support.acme.example/help", []byte(englishPage))

	if info.Title != "Acme Widget Support Portal" {
		t.Errorf("Title = %q", info.Title)
	}
	if info.Language != "en" {
		t.Errorf("Language = %q, want %q", info.Language, "en")
	}
	if info.LanguageConfidence <= 0 {
		t.Errorf("LanguageConfidence = %v, want > 0", info.LanguageConfidence)
	}
	if info.DomainType != "commercial" {
		t.Errorf("DomainType = %q, want commercial", info.DomainType)
	}
}

func TestAnalyzeEmptyBody(t *testing.T) {
	info := Analyze("https://example.com", nil)
	if info == nil {
		t.Fatal("Analyze() returned nil")
	}
	if info.Language != "" {
		t.Errorf("Language = %q, want empty for an empty page", info.Language)
	}
}

func TestDetectDomainType(t *testing.T) {
	tests := []struct {
		url  string
		want string
	}{
		{"https://www.whitehouse.gov/", "gov"},
		{"https://mit.edu/", "edu"},
		{"https://m.example.com/", "mobile"},
		{"https://api.example.com/v1", "api"},
		{"https://example.com/api/users", "api"},
		{"https://staging.example.com/", "non-production"},
		{"https://example.com/", "commercial"},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			u, err := url.Parse(tt.url)
			if err != nil {
				t.Fatalf("url.Parse() error = %v", err)
			}
			if got := detectDomainType(u); got != tt.want {
				t.Errorf("detectDomainType() = %q, want %q", got, tt.want)
			}
		})
	}
}
