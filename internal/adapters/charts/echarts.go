package charts

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/kamal-hamza/fsviz/internal/core/domain"
	"github.com/kamal-hamza/fsviz/internal/core/ports"
)

const noDataSubtitle = "No data for the current selection"

// EChartsRenderer writes every view of a report into one HTML page
type EChartsRenderer struct {
	width  string
	height string
	theme  string
}

// NewEChartsRenderer creates a renderer drawing charts of the given pixel size
func NewEChartsRenderer(width, height int, theme string) *EChartsRenderer {
	return &EChartsRenderer{
		width:  fmt.Sprintf("%dpx", width),
		height: fmt.Sprintf("%dpx", height),
		theme:  theme,
	}
}

var _ ports.ChartRenderer = (*EChartsRenderer)(nil)

// Render writes the page. Views without data render as empty charts
// carrying a "no data" subtitle.
func (r *EChartsRenderer) Render(w io.Writer, report *domain.Report) error {
	page := components.NewPage()
	page.PageTitle = "File Metadata - " + report.Root
	page.SetLayout(components.PageFlexLayout)

	page.AddCharts(
		r.typeBar(report.Types),
		r.typePie(report.Types),
		r.historyArea(report.AccessHistory, report.Types),
		r.sizeHistogram(report.Sizes),
		r.trendLine(report.Trend),
		r.scatter("Scatterplot - File Sizes vs. Modification Dates", "Modification Date", "File Size (bytes)", report.SizeVsModified),
		r.scatter("Scatterplot - File Size vs. Time Created", "Time Created", "File Size (bytes)", report.SizeVsCreated),
		r.scatter("Scatterplot - Time Last Accessed vs. Time Created", "Time Created", "Time Last Accessed", report.AccessedVsCreated),
	)

	if err := page.Render(w); err != nil {
		return fmt.Errorf("failed to render charts: %w", err)
	}
	return nil
}

func (r *EChartsRenderer) init() charts.GlobalOpts {
	return charts.WithInitializationOpts(opts.Initialization{
		Width:  r.width,
		Height: r.height,
		Theme:  r.theme,
	})
}

func title(text string, empty bool) charts.GlobalOpts {
	t := opts.Title{Title: text}
	if empty {
		t.Subtitle = noDataSubtitle
	}
	return charts.WithTitleOpts(t)
}

func legend() charts.GlobalOpts {
	return charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true), Type: "scroll", Top: "bottom"})
}

func tooltip(trigger string) charts.GlobalOpts {
	return charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: trigger})
}

// typeBar draws one bar per extension, in table order
func (r *EChartsRenderer) typeBar(types domain.AggregationTable) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		r.init(),
		title("File Type Distribution", types.IsEmpty()),
		tooltip("item"),
		charts.WithXAxisOpts(opts.XAxis{Name: "File Type"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Count"}),
	)

	data := make([]opts.BarData, types.Len())
	for i, e := range types.Entries {
		data[i] = opts.BarData{Name: displayExt(e.Extension), Value: e.Count}
	}
	bar.SetXAxis(displayExts(types.Extensions())).AddSeries("Files", data)
	return bar
}

// typePie draws the same table as typeBar as proportions
func (r *EChartsRenderer) typePie(types domain.AggregationTable) *charts.Pie {
	pie := charts.NewPie()
	pie.SetGlobalOptions(
		r.init(),
		title("File Type Distribution", types.IsEmpty()),
		tooltip("item"),
		legend(),
	)

	data := make([]opts.PieData, types.Len())
	for i, e := range types.Entries {
		data[i] = opts.PieData{Name: displayExt(e.Extension), Value: e.Count}
	}
	pie.AddSeries("File Types", data,
		charts.WithLabelOpts(opts.Label{Show: opts.Bool(true), Formatter: "{b}: {d}%"}),
	)
	return pie
}

// historyArea stacks one area per extension over the history periods.
// Series follow the type table so colors match the bar and pie views.
// The event kind comes from the table itself so any configured time field
// plots; an empty table falls back to access.
func (r *EChartsRenderer) historyArea(history domain.TimeBucketTable, types domain.AggregationTable) *charts.Line {
	kind := domain.EventAccess
	if kinds := history.Kinds(); len(kinds) > 0 {
		kind = kinds[0]
	}
	event := strings.TrimPrefix(string(kind), "File ")

	line := charts.NewLine()
	line.SetGlobalOptions(
		r.init(),
		title(event+" Time Distribution by File Type", history.IsEmpty()),
		tooltip("axis"),
		legend(),
		charts.WithXAxisOpts(opts.XAxis{Name: event + " Time (Year-Month)", AxisLabel: &opts.AxisLabel{Rotate: 45}}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Count"}),
	)

	line.SetXAxis(history.Periods())
	present := make(map[string]bool)
	for _, ext := range history.Extensions() {
		present[ext] = true
	}
	for _, ext := range types.Extensions() {
		if !present[ext] {
			continue
		}
		line.AddSeries(displayExt(ext), lineData(history.Series(kind, ext)),
			charts.WithLineChartOpts(opts.LineChart{Stack: "total"}),
			charts.WithAreaStyleOpts(opts.AreaStyle{}),
		)
	}
	return line
}

// sizeHistogram overlays the density-normalized histogram with the KDE curve
// on a shared value axis
func (r *EChartsRenderer) sizeHistogram(dist domain.SizeDistribution) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		r.init(),
		title("File Size Distribution", dist.IsEmpty()),
		tooltip("axis"),
		legend(),
		charts.WithXAxisOpts(opts.XAxis{Name: "File Size (bytes)", Type: "value", Scale: opts.Bool(true)}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Density"}),
	)

	h := dist.Histogram
	bars := make([]opts.BarData, len(h.Counts))
	for i := range h.Counts {
		center := (h.Edges[i] + h.Edges[i+1]) / 2
		bars[i] = opts.BarData{
			Name:  binLabel(h.Edges[i], h.Edges[i+1]),
			Value: []float64{center, h.Densities[i]},
		}
	}
	bar.AddSeries("Histogram", bars)

	if len(dist.Density) > 0 {
		kde := charts.NewLine()
		points := make([]opts.LineData, len(dist.Density))
		for i, p := range dist.Density {
			points[i] = opts.LineData{Value: []float64{p.X, p.Density}}
		}
		kde.AddSeries("KDE", points, charts.WithLineChartOpts(opts.LineChart{Smooth: opts.Bool(true), ShowSymbol: opts.Bool(false)}))
		bar.Overlap(kde)
	}
	return bar
}

// binLabel names a histogram bin by its byte range. Sizes are never
// negative, so the lower edge is clamped at zero; narrow bins keep one
// decimal so neighbouring labels stay distinct.
func binLabel(lo, hi float64) string {
	lo = math.Max(lo, 0)
	hi = math.Max(hi, 0)
	if hi-lo < 1 {
		return fmt.Sprintf("%.1f-%.1f", lo, hi)
	}
	return fmt.Sprintf("%.0f-%.0f", lo, hi)
}

// trendLine plots creation and modification counts as two series sharing
// the same date axis
func (r *EChartsRenderer) trendLine(trend domain.TimeBucketTable) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		r.init(),
		title("Line Chart - File Creation and Modification Trends over Time", trend.IsEmpty()),
		tooltip("axis"),
		legend(),
		charts.WithXAxisOpts(opts.XAxis{Name: "Date", AxisLabel: &opts.AxisLabel{Rotate: 45}}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Count"}),
	)

	line.SetXAxis(trend.Periods())
	for _, kind := range trend.Kinds() {
		line.AddSeries(string(kind), lineData(trend.Series(kind, "")),
			charts.WithLineChartOpts(opts.LineChart{ShowSymbol: opts.Bool(true)}),
		)
	}
	return line
}

// scatter plots one series per extension. Time axes carry Unix milliseconds.
func (r *EChartsRenderer) scatter(name, xName, yName string, plot domain.ScatterPlot) *charts.Scatter {
	sc := charts.NewScatter()
	sc.SetGlobalOptions(
		r.init(),
		title(name, plot.IsEmpty()),
		tooltip("item"),
		legend(),
		charts.WithXAxisOpts(opts.XAxis{Name: xName, Type: axisType(plot.X), Scale: opts.Bool(true)}),
		charts.WithYAxisOpts(opts.YAxis{Name: yName, Type: axisType(plot.Y), Scale: opts.Bool(true)}),
	)

	for _, series := range plot.Series {
		data := make([]opts.ScatterData, len(series.Points))
		for i, p := range series.Points {
			data[i] = opts.ScatterData{Name: p.Name, Value: []float64{p.X, p.Y}}
		}
		sc.AddSeries(displayExt(series.Extension), data)
	}
	return sc
}

func axisType(axis domain.Axis) string {
	if axis.IsTime() {
		return "time"
	}
	return "value"
}

func lineData(series []int) []opts.LineData {
	data := make([]opts.LineData, len(series))
	for i, v := range series {
		data[i] = opts.LineData{Value: v}
	}
	return data
}

// displayExt labels files without an extension
func displayExt(ext string) string {
	if ext == "" {
		return "(none)"
	}
	return ext
}

func displayExts(exts []string) []string {
	out := make([]string, len(exts))
	for i, ext := range exts {
		out[i] = displayExt(ext)
	}
	return out
}
