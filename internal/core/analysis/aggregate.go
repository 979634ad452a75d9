// Package analysis turns scanned records into the tables each chart view
// draws from. Every function is pure: filters come in as values and nothing
// is read from shared state.
package analysis

import (
	"sort"

	"github.com/kamal-hamza/fsviz/internal/core/domain"
)

// AggregateTypes counts records per extension.
// An empty filter counts every record. The result is ordered by count
// descending, ties keeping first-seen order.
func AggregateTypes(records []domain.FileRecord, filter domain.ExtensionFilter) domain.AggregationTable {
	counts := make(map[string]int)
	var order []string

	for _, rec := range records {
		if !filter.Allows(rec.Extension) {
			continue
		}
		if _, seen := counts[rec.Extension]; !seen {
			order = append(order, rec.Extension)
		}
		counts[rec.Extension]++
	}

	entries := make([]domain.TypeCount, len(order))
	for i, ext := range order {
		entries[i] = domain.TypeCount{Extension: ext, Count: counts[ext]}
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Count > entries[j].Count
	})

	return domain.AggregationTable{Entries: entries}
}

// Select returns the records whose extension is in filter.
// An empty filter selects nothing.
func Select(records []domain.FileRecord, filter domain.ExtensionFilter) []domain.FileRecord {
	var selected []domain.FileRecord
	for _, rec := range records {
		if filter.Selects(rec.Extension) {
			selected = append(selected, rec)
		}
	}
	return selected
}
