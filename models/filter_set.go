package models

// FilterSet selects which extraction rules run.
type FilterSet struct {
	Href       bool     `json:"href" yaml:"href"`
	AllFiles   bool     `json:"all_files" yaml:"all_files"`
	Src        bool     `json:"src" yaml:"src"`
	Extensions []string `json:"extensions,omitempty" yaml:"extensions,omitempty"`
}

// HrefActive reports whether the href rule runs. The all-files rule implies it.
func (f FilterSet) HrefActive() bool {
	return f.Href || f.AllFiles
}

// ExtensionActive reports whether at least one suffix was supplied.
func (f FilterSet) ExtensionActive() bool {
	return len(f.Extensions) > 0
}

// Active reports whether any rule would run.
func (f FilterSet) Active() bool {
	return f.Href || f.AllFiles || f.Src || f.ExtensionActive()
}
