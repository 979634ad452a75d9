package domain

import "errors"

// Diagnostics collects the per-item problems met during a scan.
// Nothing in here aborts the walk.
type Diagnostics struct {
	Warnings []error
}

// Add records a warning
func (d *Diagnostics) Add(err error) {
	if err != nil {
		d.Warnings = append(d.Warnings, err)
	}
}

// Len returns the number of warnings
func (d Diagnostics) Len() int {
	return len(d.Warnings)
}

// SkippedFiles returns the paths of files that failed extraction
func (d Diagnostics) SkippedFiles() []string {
	var paths []string
	for _, w := range d.Warnings {
		var extErr *ExtractionError
		if errors.As(w, &extErr) {
			paths = append(paths, extErr.Path)
		}
	}
	return paths
}

// SkippedDirs returns the paths of directories that could not be read
func (d Diagnostics) SkippedDirs() []string {
	var paths []string
	for _, w := range d.Warnings {
		var travErr *TraversalError
		if errors.As(w, &travErr) {
			paths = append(paths, travErr.Path)
		}
	}
	return paths
}

// ScanResult is the outcome of walking one root
type ScanResult struct {
	Root        string
	Records     []FileRecord
	Diagnostics Diagnostics
}

// Count returns the number of records
func (r *ScanResult) Count() int {
	return len(r.Records)
}

// TotalSize returns the summed size of all records
func (r *ScanResult) TotalSize() int64 {
	var total int64
	for _, rec := range r.Records {
		total += rec.SizeBytes
	}
	return total
}

// ExtensionsSeen returns the distinct extensions in first-seen order,
// excluding files without an extension
func (r *ScanResult) ExtensionsSeen() []string {
	seen := make(map[string]bool)
	var exts []string
	for _, rec := range r.Records {
		if rec.Extension == "" || seen[rec.Extension] {
			continue
		}
		seen[rec.Extension] = true
		exts = append(exts, rec.Extension)
	}
	return exts
}
