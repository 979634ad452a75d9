package domain

import "time"

// SizeHistogram is an equal-width histogram of file sizes.
// Edges has one more element than Counts. Densities integrate to one.
type SizeHistogram struct {
	Edges     []float64 `json:"edges" yaml:"edges"`
	Counts    []int     `json:"counts" yaml:"counts"`
	Densities []float64 `json:"densities" yaml:"densities"`
}

// DensityPoint is one sample of a kernel density estimate
type DensityPoint struct {
	X       float64 `json:"x" yaml:"x"`
	Density float64 `json:"density" yaml:"density"`
}

// SizeDistribution describes the sizes of the selected files
type SizeDistribution struct {
	Samples   int            `json:"samples" yaml:"samples"`
	Min       int64          `json:"min" yaml:"min"`
	Max       int64          `json:"max" yaml:"max"`
	Mean      float64        `json:"mean" yaml:"mean"`
	Median    float64        `json:"median" yaml:"median"`
	Histogram SizeHistogram  `json:"histogram" yaml:"histogram"`
	Density   []DensityPoint `json:"density" yaml:"density"`
}

// IsEmpty reports whether no sizes were sampled
func (d SizeDistribution) IsEmpty() bool {
	return d.Samples == 0
}

// Axis names a scatter plot axis
type Axis string

const (
	AxisSize     Axis = "size"
	AxisModified Axis = "modified"
	AxisAccessed Axis = "accessed"
	AxisCreated  Axis = "created"
)

// ScatterPoint is a single file plotted on two axes.
// Time axes are expressed in Unix milliseconds.
type ScatterPoint struct {
	Name string  `json:"name" yaml:"name"`
	X    float64 `json:"x" yaml:"x"`
	Y    float64 `json:"y" yaml:"y"`
}

// ScatterSeries groups the points of one extension
type ScatterSeries struct {
	Extension string         `json:"extension" yaml:"extension"`
	Points    []ScatterPoint `json:"points" yaml:"points"`
}

// ScatterPlot holds one series per extension in aggregation order
type ScatterPlot struct {
	X      Axis            `json:"x" yaml:"x"`
	Y      Axis            `json:"y" yaml:"y"`
	Series []ScatterSeries `json:"series" yaml:"series"`
}

// IsEmpty reports whether the plot has no points
func (p ScatterPlot) IsEmpty() bool {
	return len(p.Series) == 0
}

// AxisValue projects a record onto an axis
func AxisValue(r FileRecord, axis Axis) float64 {
	switch axis {
	case AxisSize:
		return float64(r.SizeBytes)
	case AxisAccessed:
		return unixMillis(r.AccessedAt)
	case AxisCreated:
		return unixMillis(r.CreatedAt)
	default:
		return unixMillis(r.ModifiedAt)
	}
}

// IsTime reports whether the axis holds timestamps
func (a Axis) IsTime() bool {
	return a != AxisSize
}

func unixMillis(t time.Time) float64 {
	return float64(t.UnixMilli())
}
