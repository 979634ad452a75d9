package domain

import "time"

// Report bundles every dataset the chart views need for one selection
type Report struct {
	Root        string    `json:"root" yaml:"root"`
	GeneratedAt time.Time `json:"generated_at" yaml:"generated_at"`
	Filter      []string  `json:"filter" yaml:"filter"`
	Files       int       `json:"files" yaml:"files"`

	// Types backs both the bar and the pie view
	Types AggregationTable `json:"types" yaml:"types"`

	AccessHistory TimeBucketTable  `json:"access_history" yaml:"access_history"`
	Trend         TimeBucketTable  `json:"trend" yaml:"trend"`
	Sizes         SizeDistribution `json:"sizes" yaml:"sizes"`

	SizeVsModified    ScatterPlot `json:"size_vs_modified" yaml:"size_vs_modified"`
	SizeVsCreated     ScatterPlot `json:"size_vs_created" yaml:"size_vs_created"`
	AccessedVsCreated ScatterPlot `json:"accessed_vs_created" yaml:"accessed_vs_created"`
}

// IsEmpty reports whether the report has nothing to draw
func (r *Report) IsEmpty() bool {
	return r.Types.IsEmpty()
}
