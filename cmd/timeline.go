package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/kamal-hamza/fsviz/internal/core/analysis"
	"github.com/kamal-hamza/fsviz/internal/core/domain"
	"github.com/kamal-hamza/fsviz/pkg/ui"
)

var (
	timelineFilter      string
	timelineField       string
	timelineGranularity string
	timelineSplit       bool
	timelineTrend       bool
)

var timelineCmd = &cobra.Command{
	Use:     "timeline [directory]",
	Aliases: []string{"tl"},
	Short:   "Count files per period of a timestamp (alias: tl)",
	Long: `Group files by year, month or day of one of their timestamps.

--field picks the timestamp (modified, accessed, created). With --trend
creation and modification are counted side by side. --split breaks each
period down by file type.

Examples:
  fsviz timeline ~/Projects --field modified --granularity month
  fsviz timeline . --types .go --split
  fsviz timeline . --trend`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTimeline,
}

func init() {
	timelineCmd.Flags().StringVarP(&timelineFilter, "types", "t", "", "Comma separated extensions to include (default: all seen)")
	timelineCmd.Flags().StringVarP(&timelineField, "field", "f", "", "Timestamp to group by: modified, accessed, created")
	timelineCmd.Flags().StringVarP(&timelineGranularity, "granularity", "g", "", "Period size: year, month, day")
	timelineCmd.Flags().BoolVarP(&timelineSplit, "split", "s", false, "Break each period down by type")
	timelineCmd.Flags().BoolVar(&timelineTrend, "trend", false, "Show creation and modification side by side")
}

func runTimeline(cmd *cobra.Command, args []string) error {
	if timelineField == "" {
		timelineField = appConfig.HistoryField
	}
	if timelineGranularity == "" {
		timelineGranularity = appConfig.TimelineGranularity
	}

	field, err := domain.ParseTimeField(timelineField)
	if err != nil {
		return err
	}
	granularity, err := domain.ParseGranularity(timelineGranularity)
	if err != nil {
		return err
	}

	result, err := scanRoot(cmd.Context(), args)
	if err != nil {
		return err
	}

	filter := selectionFilter(result, timelineFilter)

	var table domain.TimeBucketTable
	if timelineTrend {
		table = analysis.Trend(result.Records, filter, granularity, location())
	} else {
		table = analysis.Bucket(result.Records, filter, analysis.BucketOptions{
			Field:            field,
			Granularity:      granularity,
			Location:         location(),
			SplitByExtension: timelineSplit,
		})
	}

	if table.IsEmpty() {
		fmt.Println(ui.FormatWarning("No data for the current selection"))
		return nil
	}

	fmt.Println()
	renderTimeline(table)
	return nil
}

// renderTimeline prints one column per series and a sparkline per series
func renderTimeline(table domain.TimeBucketTable) {
	type series struct {
		label  string
		counts []int
	}

	var all []series
	for _, kind := range table.Kinds() {
		for _, ext := range table.Extensions() {
			counts := table.Series(kind, ext)
			if sum(counts) == 0 {
				continue
			}
			label := string(kind)
			if ext != "" {
				label += " " + ext
			}
			all = append(all, series{label: label, counts: counts})
		}
	}

	columns := []ui.TableColumn{{Header: "PERIOD"}}
	for _, s := range all {
		columns = append(columns, ui.TableColumn{Header: s.label, Align: ui.AlignRight})
	}
	t := ui.NewTable(columns)
	for i, period := range table.Periods() {
		row := []string{period}
		for _, s := range all {
			row = append(row, strconv.Itoa(s.counts[i]))
		}
		t.AddRow(row)
	}
	fmt.Print(t.Render())
	fmt.Println()

	for _, s := range all {
		fmt.Printf("%-28s %s %s\n", s.label, ui.StyleAccent.Render(ui.Sparkline(s.counts)), ui.FormatMuted(strconv.Itoa(sum(s.counts))))
	}
}

func sum(values []int) int {
	total := 0
	for _, v := range values {
		total += v
	}
	return total
}
