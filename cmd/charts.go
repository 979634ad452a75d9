package cmd

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/kamal-hamza/fsviz/internal/core/domain"
	"github.com/kamal-hamza/fsviz/internal/core/services"
	"github.com/kamal-hamza/fsviz/pkg/ui"
)

var (
	chartsFilter string
	chartsOutput string
	chartsOpen   bool
	chartsSelect bool
)

var chartsCmd = &cobra.Command{
	Use:   "charts [directory]",
	Short: "Render every chart into one HTML page",
	Long: `Walk a directory and render the full set of charts as an HTML page:

  - file type counts (bar and pie)
  - access history by month, stacked by type
  - size histogram with a density curve
  - creation and modification trend
  - size vs modification, size vs creation, access vs creation

Reports are written to the fsviz data directory unless --output is given.

Examples:
  fsviz charts ~/Pictures --open
  fsviz charts . --types .png,.jpeg --output pictures.html
  fsviz charts . --select`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCharts,
}

func init() {
	chartsCmd.Flags().StringVarP(&chartsFilter, "types", "t", "", "Comma separated extensions to chart (default: all seen)")
	chartsCmd.Flags().StringVarP(&chartsOutput, "output", "o", "", "Write the page to this file")
	chartsCmd.Flags().BoolVar(&chartsOpen, "open", false, "Open the page in the browser")
	chartsCmd.Flags().BoolVarP(&chartsSelect, "select", "s", false, "Pick the types interactively")
}

func runCharts(cmd *cobra.Command, args []string) error {
	result, err := scanRoot(cmd.Context(), args)
	if err != nil {
		return err
	}

	filter := selectionFilter(result, chartsFilter)
	if chartsSelect {
		picked, ok, err := runExtensionSelector(result)
		if err != nil {
			return err
		}
		if !ok {
			fmt.Println(ui.FormatInfo("Operation cancelled."))
			return nil
		}
		filter = picked
	}

	path, report, err := renderReport(cmd.Context(), result, filter, chartsOutput)
	if err != nil {
		return err
	}

	fmt.Println(ui.FormatSuccess("Charts written to " + path))
	fmt.Println(ui.FormatMuted(fmt.Sprintf("  %d types, selection %s", report.Types.Len(), filter.String())))

	if chartsOpen || appConfig.OpenCharts {
		if err := OpenFile(path); err != nil {
			fmt.Println(ui.FormatWarning(err.Error()))
		}
	}
	return nil
}

// renderReport writes the chart page for a selection. An empty output
// path means a timestamped file in the reports directory.
func renderReport(ctx context.Context, result *domain.ScanResult, filter domain.ExtensionFilter, output string) (string, *domain.Report, error) {
	if output == "" {
		if err := appWorkspace.Initialize(); err != nil {
			return "", nil, err
		}
		output = appWorkspace.ReportPath(result.Root, time.Now())
	}

	field, err := domain.ParseTimeField(appConfig.HistoryField)
	if err != nil {
		return "", nil, err
	}
	granularity, err := domain.ParseGranularity(appConfig.TimelineGranularity)
	if err != nil {
		return "", nil, err
	}

	var report *domain.Report
	err = writeFile(output, func(w io.Writer) error {
		r, err := reportService.Render(ctx, w, services.ReportRequest{
			Result:           result,
			Filter:           filter,
			HistoryField:     field,
			TrendGranularity: granularity,
			Bins:             appConfig.HistogramBins,
			Location:         location(),
		})
		report = r
		return err
	})
	if err != nil {
		return "", nil, err
	}
	return output, report, nil
}
