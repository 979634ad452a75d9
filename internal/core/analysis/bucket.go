package analysis

import (
	"time"

	"github.com/kamal-hamza/fsviz/internal/core/domain"
)

// BucketOptions configures a single bucketing pass
type BucketOptions struct {
	Field       domain.TimeField
	Granularity domain.Granularity
	// Location used to cut periods; nil means time.Local
	Location *time.Location
	// SplitByExtension keeps one series per type instead of a single total
	SplitByExtension bool
}

// Bucket tallies the selected records per period of one timestamp field.
// Only records whose extension is in filter are counted, so an empty filter
// produces an empty table.
func Bucket(records []domain.FileRecord, filter domain.ExtensionFilter, opts BucketOptions) domain.TimeBucketTable {
	counts := make(map[domain.BucketKey]int)
	kind := opts.Field.Kind()

	for _, rec := range records {
		if !filter.Selects(rec.Extension) {
			continue
		}
		key := domain.BucketKey{
			Kind:   kind,
			Period: opts.Granularity.Label(rec.Timestamp(opts.Field), opts.Location),
		}
		if opts.SplitByExtension {
			key.Extension = rec.Extension
		}
		counts[key]++
	}

	return domain.NewTimeBucketTable(counts)
}

// Trend buckets creation and modification times separately and merges them
// into one table, each entry tagged with its event kind, so both series
// share one time axis.
func Trend(records []domain.FileRecord, filter domain.ExtensionFilter, granularity domain.Granularity, loc *time.Location) domain.TimeBucketTable {
	created := Bucket(records, filter, BucketOptions{
		Field:       domain.TimeCreated,
		Granularity: granularity,
		Location:    loc,
	})
	modified := Bucket(records, filter, BucketOptions{
		Field:       domain.TimeModified,
		Granularity: granularity,
		Location:    loc,
	})
	return domain.Merge(created, modified)
}
