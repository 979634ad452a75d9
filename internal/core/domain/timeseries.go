package domain

import (
	"fmt"
	"sort"
	"time"
)

// TimeField selects which timestamp of a record is bucketed
type TimeField string

const (
	TimeModified TimeField = "modified"
	TimeAccessed TimeField = "accessed"
	TimeCreated  TimeField = "created"
)

// ParseTimeField validates a user supplied field name
func ParseTimeField(s string) (TimeField, error) {
	switch f := TimeField(s); f {
	case TimeModified, TimeAccessed, TimeCreated:
		return f, nil
	}
	return "", fmt.Errorf("unknown time field %q (valid: modified, accessed, created)", s)
}

// EventKind names the series a bucket belongs to
type EventKind string

const (
	EventModification EventKind = "File Modification"
	EventAccess       EventKind = "File Access"
	EventCreation     EventKind = "File Creation"
)

// Kind returns the event kind produced when bucketing this field
func (f TimeField) Kind() EventKind {
	switch f {
	case TimeAccessed:
		return EventAccess
	case TimeCreated:
		return EventCreation
	default:
		return EventModification
	}
}

// Granularity controls how coarse a period label is
type Granularity string

const (
	GranularityYear  Granularity = "year"
	GranularityMonth Granularity = "month"
	GranularityDay   Granularity = "day"
)

// ParseGranularity validates a user supplied granularity
func ParseGranularity(s string) (Granularity, error) {
	switch g := Granularity(s); g {
	case GranularityYear, GranularityMonth, GranularityDay:
		return g, nil
	}
	return "", fmt.Errorf("unknown granularity %q (valid: year, month, day)", s)
}

// Layout returns the time layout used for period labels
func (g Granularity) Layout() string {
	switch g {
	case GranularityYear:
		return "2006"
	case GranularityDay:
		return "2006-01-02"
	default:
		return "2006-01"
	}
}

// Label formats t as a period label in loc
func (g Granularity) Label(t time.Time, loc *time.Location) string {
	if loc == nil {
		loc = time.Local
	}
	return t.In(loc).Format(g.Layout())
}

// BucketKey identifies one cell of a TimeBucketTable.
// Extension is empty when buckets are not split by type.
type BucketKey struct {
	Kind      EventKind `json:"kind" yaml:"kind"`
	Extension string    `json:"extension" yaml:"extension"`
	Period    string    `json:"period" yaml:"period"`
}

// BucketCount is a key with its tally
type BucketCount struct {
	BucketKey `yaml:",inline"`
	Count     int `json:"count" yaml:"count"`
}

// TimeBucketTable tallies records per (kind, extension, period).
// Entries are ordered by kind, then period, then extension.
type TimeBucketTable struct {
	Entries []BucketCount `json:"entries" yaml:"entries"`
}

// NewTimeBucketTable builds an ordered table from raw tallies
func NewTimeBucketTable(counts map[BucketKey]int) TimeBucketTable {
	entries := make([]BucketCount, 0, len(counts))
	for k, c := range counts {
		entries = append(entries, BucketCount{BucketKey: k, Count: c})
	}
	sortBuckets(entries)
	return TimeBucketTable{Entries: entries}
}

func sortBuckets(entries []BucketCount) {
	sort.Slice(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if a.Kind != b.Kind {
			return a.Kind < b.Kind
		}
		if a.Period != b.Period {
			return a.Period < b.Period
		}
		return a.Extension < b.Extension
	})
}

// IsEmpty reports whether the table has no data
func (t TimeBucketTable) IsEmpty() bool {
	return len(t.Entries) == 0
}

// Count returns the tally for a key, zero when absent
func (t TimeBucketTable) Count(kind EventKind, ext, period string) int {
	for _, e := range t.Entries {
		if e.Kind == kind && e.Extension == ext && e.Period == period {
			return e.Count
		}
	}
	return 0
}

// Total returns the sum of all tallies
func (t TimeBucketTable) Total() int {
	total := 0
	for _, e := range t.Entries {
		total += e.Count
	}
	return total
}

// Periods returns every distinct period label in ascending order.
// All series share this axis.
func (t TimeBucketTable) Periods() []string {
	return t.distinct(func(e BucketCount) string { return e.Period })
}

// Extensions returns every distinct extension in ascending order
func (t TimeBucketTable) Extensions() []string {
	return t.distinct(func(e BucketCount) string { return e.Extension })
}

// Kinds returns every distinct event kind in ascending order
func (t TimeBucketTable) Kinds() []EventKind {
	names := t.distinct(func(e BucketCount) string { return string(e.Kind) })
	kinds := make([]EventKind, len(names))
	for i, n := range names {
		kinds[i] = EventKind(n)
	}
	return kinds
}

func (t TimeBucketTable) distinct(key func(BucketCount) string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, e := range t.Entries {
		k := key(e)
		if !seen[k] {
			seen[k] = true
			out = append(out, k)
		}
	}
	sort.Strings(out)
	return out
}

// Series returns the tallies of one (kind, extension) series aligned with
// Periods, filling gaps with zero
func (t TimeBucketTable) Series(kind EventKind, ext string) []int {
	periods := t.Periods()
	pos := make(map[string]int, len(periods))
	for i, p := range periods {
		pos[p] = i
	}
	series := make([]int, len(periods))
	for _, e := range t.Entries {
		if e.Kind == kind && e.Extension == ext {
			series[pos[e.Period]] += e.Count
		}
	}
	return series
}

// Merge combines tables, summing tallies that share a key
func Merge(tables ...TimeBucketTable) TimeBucketTable {
	counts := make(map[BucketKey]int)
	for _, t := range tables {
		for _, e := range t.Entries {
			counts[e.BucketKey] += e.Count
		}
	}
	return NewTimeBucketTable(counts)
}
