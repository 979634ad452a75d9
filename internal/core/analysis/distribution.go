package analysis

import (
	"math"
	"sort"

	"github.com/kamal-hamza/fsviz/internal/core/domain"
)

const (
	DefaultBins         = 20
	DefaultDensityGrid  = 200
	densityCutBandwidth = 3.0
)

// SizeDistribution summarizes the sizes of the selected records with an
// equal-width histogram and a Gaussian kernel density estimate.
// The filter is mandatory: an empty filter yields an empty distribution.
func SizeDistribution(records []domain.FileRecord, filter domain.ExtensionFilter, bins int) domain.SizeDistribution {
	selected := Select(records, filter)
	if len(selected) == 0 {
		return domain.SizeDistribution{}
	}
	if bins <= 0 {
		bins = DefaultBins
	}

	sizes := make([]float64, len(selected))
	for i, rec := range selected {
		sizes[i] = float64(rec.SizeBytes)
	}
	sort.Float64s(sizes)

	dist := domain.SizeDistribution{
		Samples: len(sizes),
		Min:     int64(sizes[0]),
		Max:     int64(sizes[len(sizes)-1]),
		Mean:    mean(sizes),
		Median:  median(sizes),
	}
	dist.Histogram = histogram(sizes, bins)
	dist.Density = gaussianKDE(sizes, DefaultDensityGrid)

	return dist
}

// histogram bins sorted values over [min, max]; the last bin is closed.
// A single distinct value is widened to [v-0.5, v+0.5].
func histogram(sorted []float64, bins int) domain.SizeHistogram {
	lo, hi := sorted[0], sorted[len(sorted)-1]
	if lo == hi {
		lo -= 0.5
		hi += 0.5
	}
	width := (hi - lo) / float64(bins)

	h := domain.SizeHistogram{
		Edges:     make([]float64, bins+1),
		Counts:    make([]int, bins),
		Densities: make([]float64, bins),
	}
	for i := range h.Edges {
		h.Edges[i] = lo + float64(i)*width
	}
	h.Edges[bins] = hi

	for _, v := range sorted {
		idx := int((v - lo) / width)
		if idx >= bins {
			idx = bins - 1
		}
		if idx < 0 {
			idx = 0
		}
		h.Counts[idx]++
	}

	n := float64(len(sorted))
	for i, c := range h.Counts {
		h.Densities[i] = float64(c) / (n * width)
	}
	return h
}

// gaussianKDE evaluates a kernel density estimate on an evenly spaced grid
// reaching three bandwidths past the data. Bandwidth follows Scott's rule.
// Fewer than two samples or zero variance give no estimate.
func gaussianKDE(sorted []float64, points int) []domain.DensityPoint {
	n := len(sorted)
	if n < 2 || points < 2 {
		return nil
	}
	sd := stddev(sorted)
	if sd == 0 {
		return nil
	}
	bw := sd * math.Pow(float64(n), -0.2)

	lo := sorted[0] - densityCutBandwidth*bw
	hi := sorted[n-1] + densityCutBandwidth*bw
	step := (hi - lo) / float64(points-1)
	norm := 1 / (float64(n) * bw * math.Sqrt(2*math.Pi))

	grid := make([]domain.DensityPoint, points)
	for i := range grid {
		x := lo + float64(i)*step
		sum := 0.0
		for _, v := range sorted {
			z := (x - v) / bw
			sum += math.Exp(-0.5 * z * z)
		}
		grid[i] = domain.DensityPoint{X: x, Density: sum * norm}
	}
	return grid
}

func mean(values []float64) float64 {
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

func median(sorted []float64) float64 {
	n := len(sorted)
	if n%2 == 1 {
		return sorted[n/2]
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2
}

// stddev is the sample standard deviation (n-1 denominator)
func stddev(values []float64) float64 {
	m := mean(values)
	sum := 0.0
	for _, v := range values {
		d := v - m
		sum += d * d
	}
	return math.Sqrt(sum / float64(len(values)-1))
}
