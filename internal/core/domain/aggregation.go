package domain

// TypeCount is one row of an AggregationTable
type TypeCount struct {
	Extension string `json:"extension" yaml:"extension"`
	Count     int    `json:"count" yaml:"count"`
}

// AggregationTable maps extensions to file counts.
// Entries are ordered by count descending; equal counts keep the order in
// which the extensions were first seen.
type AggregationTable struct {
	Entries []TypeCount `json:"entries" yaml:"entries"`
}

// Len returns the number of distinct extensions
func (t AggregationTable) Len() int {
	return len(t.Entries)
}

// IsEmpty reports whether the table has no data
func (t AggregationTable) IsEmpty() bool {
	return len(t.Entries) == 0
}

// Get returns the count for ext
func (t AggregationTable) Get(ext string) (int, bool) {
	for _, e := range t.Entries {
		if e.Extension == ext {
			return e.Count, true
		}
	}
	return 0, false
}

// Total returns the sum of all counts
func (t AggregationTable) Total() int {
	total := 0
	for _, e := range t.Entries {
		total += e.Count
	}
	return total
}

// Extensions returns the extensions in table order
func (t AggregationTable) Extensions() []string {
	exts := make([]string, len(t.Entries))
	for i, e := range t.Entries {
		exts[i] = e.Extension
	}
	return exts
}

// Counts returns the counts in table order
func (t AggregationTable) Counts() []int {
	counts := make([]int, len(t.Entries))
	for i, e := range t.Entries {
		counts[i] = e.Count
	}
	return counts
}

// Shares returns each entry's fraction of the total, in table order.
// An empty table yields an empty slice.
func (t AggregationTable) Shares() []float64 {
	total := t.Total()
	shares := make([]float64, len(t.Entries))
	if total == 0 {
		return shares
	}
	for i, e := range t.Entries {
		shares[i] = float64(e.Count) / float64(total)
	}
	return shares
}

// Top returns a table holding at most n leading entries
func (t AggregationTable) Top(n int) AggregationTable {
	if n <= 0 || n >= len(t.Entries) {
		return t
	}
	return AggregationTable{Entries: t.Entries[:n]}
}
