package analysis

import (
	"time"

	"github.com/kamal-hamza/fsviz/internal/core/domain"
)

// newRecord builds a record the way the extractor would, deriving the
// extension from the name
func newRecord(name string, size int64, modified time.Time) domain.FileRecord {
	return domain.FileRecord{
		Name:       name,
		Extension:  domain.ExtensionOf(name),
		Path:       "/data/" + name,
		SizeBytes:  size,
		ModifiedAt: modified,
		AccessedAt: modified,
		CreatedAt:  modified,
		Owner:      "tester",
	}
}

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 12, 0, 0, 0, time.UTC)
}
