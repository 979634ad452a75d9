package domain

import (
	"sort"
	"strings"
)

// ExtensionFilter is an immutable set of normalized extensions.
// Entries are taken as given; callers are responsible for normalizing them.
type ExtensionFilter struct {
	set map[string]struct{}
}

// NewExtensionFilter builds a filter from already-normalized extensions
func NewExtensionFilter(extensions ...string) ExtensionFilter {
	set := make(map[string]struct{}, len(extensions))
	for _, ext := range extensions {
		set[ext] = struct{}{}
	}
	return ExtensionFilter{set: set}
}

// ParseExtensionFilter builds a filter from a comma-separated list such as
// "png,.JPG, txt". Unlike NewExtensionFilter it is meant for user input, so
// entries get a leading dot and are normalized.
func ParseExtensionFilter(list string) ExtensionFilter {
	var exts []string
	for _, part := range strings.Split(list, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if !strings.HasPrefix(part, ".") {
			part = "." + part
		}
		exts = append(exts, NormalizeExtension(part))
	}
	return NewExtensionFilter(exts...)
}

// IsEmpty reports whether the filter holds no extensions
func (f ExtensionFilter) IsEmpty() bool {
	return len(f.set) == 0
}

// Len returns the number of extensions in the filter
func (f ExtensionFilter) Len() int {
	return len(f.set)
}

// Allows reports whether ext passes the filter when an empty filter means
// "everything" (type aggregation)
func (f ExtensionFilter) Allows(ext string) bool {
	if f.IsEmpty() {
		return true
	}
	return f.Selects(ext)
}

// Selects reports strict membership: an empty filter selects nothing
// (time buckets, size distribution, scatter plots)
func (f ExtensionFilter) Selects(ext string) bool {
	_, ok := f.set[ext]
	return ok
}

// Extensions returns the members sorted alphabetically
func (f ExtensionFilter) Extensions() []string {
	exts := make([]string, 0, len(f.set))
	for ext := range f.set {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	return exts
}

// String renders the filter for display
func (f ExtensionFilter) String() string {
	if f.IsEmpty() {
		return "(all)"
	}
	return strings.Join(f.Extensions(), ", ")
}
