package analysis

import "github.com/kamal-hamza/fsviz/internal/core/domain"

// Scatter projects the selected records onto two axes, one series per
// extension. Series follow the type aggregation order of the selection.
// An empty filter yields an empty plot.
func Scatter(records []domain.FileRecord, filter domain.ExtensionFilter, x, y domain.Axis) domain.ScatterPlot {
	selected := Select(records, filter)
	plot := domain.ScatterPlot{X: x, Y: y}
	if len(selected) == 0 {
		return plot
	}

	byExt := make(map[string][]domain.ScatterPoint)
	for _, rec := range selected {
		byExt[rec.Extension] = append(byExt[rec.Extension], domain.ScatterPoint{
			Name: rec.Name,
			X:    domain.AxisValue(rec, x),
			Y:    domain.AxisValue(rec, y),
		})
	}

	order := AggregateTypes(selected, domain.NewExtensionFilter())
	for _, ext := range order.Extensions() {
		plot.Series = append(plot.Series, domain.ScatterSeries{
			Extension: ext,
			Points:    byExt[ext],
		})
	}
	return plot
}
