package ports

import (
	"context"
	"io"

	"github.com/kamal-hamza/fsviz/internal/core/domain"
)

// OwnerResolver maps a numeric owner id to an account name.
// Implementations return an error when the id has no account.
type OwnerResolver interface {
	Resolve(uid uint32) (string, error)
}

// MetadataExtractor builds the record for a single file
type MetadataExtractor interface {
	// Extract stats path and returns a complete record, or an
	// *domain.ExtractionError when any attribute cannot be read
	Extract(path string) (domain.FileRecord, error)
}

// Walker enumerates every file below a root directory
type Walker interface {
	// Walk returns records in traversal order. Per-file and per-directory
	// problems land in the result's diagnostics; only an unusable root
	// yields an error (*domain.InputError).
	Walk(ctx context.Context, root string) (*domain.ScanResult, error)
}

// RecordEncoder writes flattened records in one export format
type RecordEncoder interface {
	// Encode writes rows to w. rows share a single header.
	Encode(w io.Writer, rows []domain.Row) error

	// Extension returns the file extension for the format, e.g. "csv"
	Extension() string
}

// ChartRenderer turns aggregated datasets into a visual document
type ChartRenderer interface {
	Render(w io.Writer, report *domain.Report) error
}
