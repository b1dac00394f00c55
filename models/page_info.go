package models

// PageInfo is lightweight metadata about the scanned page.
type PageInfo struct {
	Title              string  `json:"title,omitempty" yaml:"title,omitempty"`
	SiteName           string  `json:"site_name,omitempty" yaml:"site_name,omitempty"`
	Excerpt            string  `json:"excerpt,omitempty" yaml:"excerpt,omitempty"`
	DomainType         string  `json:"domain_type,omitempty" yaml:"domain_type,omitempty"` // gov, edu, mobile, api, non-production, commercial
	Language           string  `json:"language,omitempty" yaml:"language,omitempty"`       // ISO-639-1
	LanguageConfidence float64 `json:"language_confidence,omitempty" yaml:"language_confidence,omitempty"`
}
