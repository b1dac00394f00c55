package models

// Tag is a single parsed HTML element.
type Tag struct {
	Name  string            `json:"name"`
	Attrs map[string]string `json:"attrs,omitempty"`
}

// Attr returns the value of the named attribute and whether it was present.
func (t Tag) Attr(name string) (string, bool) {
	v, ok := t.Attrs[name]
	return v, ok
}

// Document holds every tag of a page in document order
// (depth-first, parents before children, siblings in source order).
type Document struct {
	Tags []Tag `json:"tags"`
}

// Len returns the number of tags, treating a nil document as empty.
func (d *Document) Len() int {
	if d == nil {
		return 0
	}
	return len(d.Tags)
}
