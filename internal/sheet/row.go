package sheet

import "strings"

// Row is one spreadsheet row beneath a detected header, keyed by column
// label. Labels are matched after trimming and lowercasing, since source
// files disagree on casing and stray whitespace.
type Row struct {
	labels []string
	cells  map[string]string
}

// NewRow builds a Row from label/value pairs. On duplicate labels the first
// value wins.
func NewRow(labels []string, values []string) Row {
	r := Row{cells: make(map[string]string, len(labels))}
	for i, label := range labels {
		key := normalizeLabel(label)
		if key == "" {
			continue
		}
		var v string
		if i < len(values) {
			v = strings.TrimSpace(values[i])
		}
		if _, dup := r.cells[key]; dup {
			continue
		}
		r.labels = append(r.labels, key)
		r.cells[key] = v
	}
	return r
}

// Get returns the trimmed cell value for a label, ignoring case and
// surrounding whitespace in the label itself.
func (r Row) Get(label string) string {
	return r.cells[normalizeLabel(label)]
}

// Has reports whether the row carries a column with this label, even when
// the cell itself is empty.
func (r Row) Has(label string) bool {
	_, ok := r.cells[normalizeLabel(label)]
	return ok
}

// First returns the first non-empty value among the given labels.
func (r Row) First(labels ...string) string {
	for _, label := range labels {
		if v := r.Get(label); v != "" {
			return v
		}
	}
	return ""
}

// HasLabelContaining reports whether any column label contains the given
// substring (case-insensitive).
func (r Row) HasLabelContaining(substr string) bool {
	needle := strings.ToLower(substr)
	for _, label := range r.labels {
		if strings.Contains(label, needle) {
			return true
		}
	}
	return false
}

// Set stores a value under a label, adding the column when absent. Used by
// the classifiers' column-rename step.
func (r *Row) Set(label, value string) {
	key := normalizeLabel(label)
	if key == "" {
		return
	}
	if _, ok := r.cells[key]; !ok {
		r.labels = append(r.labels, key)
	}
	r.cells[key] = value
}

// Clone returns an independent copy of the row.
func (r Row) Clone() Row {
	c := Row{
		labels: make([]string, len(r.labels)),
		cells:  make(map[string]string, len(r.cells)),
	}
	copy(c.labels, r.labels)
	for k, v := range r.cells {
		c.cells[k] = v
	}
	return c
}

// Empty reports whether every cell in the row is blank.
func (r Row) Empty() bool {
	for _, v := range r.cells {
		if v != "" {
			return false
		}
	}
	return true
}

func normalizeLabel(label string) string {
	return strings.ToLower(strings.TrimSpace(label))
}
