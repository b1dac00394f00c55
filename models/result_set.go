package models

// Link categories, also used as the category column of the history database.
const (
	CategoryHref      = "href"
	CategoryExtension = "extension"
	CategoryAllFiles  = "all_files"
	CategorySrc       = "src"
)

// Categories lists link categories in output order.
var Categories = []string{CategoryHref, CategoryExtension, CategoryAllFiles, CategorySrc}

// ResultSet holds the links found by each rule, in document order.
// A sequence stays empty when its rule did not run.
type ResultSet struct {
	Href      []string `json:"href" yaml:"href"`
	Extension []string `json:"extension" yaml:"extension"`
	AllFiles  []string `json:"all_files" yaml:"all_files"`
	Src       []string `json:"src" yaml:"src"`
}

// Category returns the sequence stored under the given category name.
func (r ResultSet) Category(name string) []string {
	switch name {
	case CategoryHref:
		return r.Href
	case CategoryExtension:
		return r.Extension
	case CategoryAllFiles:
		return r.AllFiles
	case CategorySrc:
		return r.Src
	}
	return nil
}

// Total counts links across all categories.
func (r ResultSet) Total() int {
	return len(r.Href) + len(r.Extension) + len(r.AllFiles) + len(r.Src)
}

// IsEmpty reports whether no category holds a link.
func (r ResultSet) IsEmpty() bool {
	return r.Total() == 0
}
