package cmd

import (
	"fmt"
	"math"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/kamal-hamza/fsviz/internal/core/analysis"
	"github.com/kamal-hamza/fsviz/pkg/ui"
)

var (
	sizesFilter string
	sizesBins   int
)

var sizesCmd = &cobra.Command{
	Use:   "sizes [directory]",
	Short: "Show the file size distribution",
	Long: `Show summary statistics and an equal-width histogram of file sizes.

Examples:
  fsviz sizes ~/Downloads
  fsviz sizes . --types .mp4,.mov --bins 10`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSizes,
}

func init() {
	sizesCmd.Flags().StringVarP(&sizesFilter, "types", "t", "", "Comma separated extensions to include (default: all seen)")
	sizesCmd.Flags().IntVarP(&sizesBins, "bins", "b", 0, "Number of histogram bins")
}

func runSizes(cmd *cobra.Command, args []string) error {
	if sizesBins <= 0 {
		sizesBins = appConfig.HistogramBins
	}

	result, err := scanRoot(cmd.Context(), args)
	if err != nil {
		return err
	}

	filter := selectionFilter(result, sizesFilter)
	dist := analysis.SizeDistribution(result.Records, filter, sizesBins)
	if dist.IsEmpty() {
		fmt.Println(ui.FormatWarning("No data for the current selection"))
		return nil
	}

	fmt.Println()
	fmt.Println(ui.StyleHeader.Render("Size Distribution"))
	fmt.Println(ui.RenderKeyValue("Files", strconv.Itoa(dist.Samples)))
	fmt.Println(ui.RenderKeyValue("Smallest", ui.FormatBytes(dist.Min)))
	fmt.Println(ui.RenderKeyValue("Largest", ui.FormatBytes(dist.Max)))
	fmt.Println(ui.RenderKeyValue("Mean", ui.FormatBytes(int64(dist.Mean))))
	fmt.Println(ui.RenderKeyValue("Median", ui.FormatBytes(int64(dist.Median))))
	fmt.Println()

	h := dist.Histogram
	max := 0
	for _, c := range h.Counts {
		if c > max {
			max = c
		}
	}
	for i, c := range h.Counts {
		lo, hi := math.Max(h.Edges[i], 0), math.Max(h.Edges[i+1], 0)
		label := fmt.Sprintf("%s - %s", ui.FormatBytes(int64(lo)), ui.FormatBytes(int64(hi)))
		fmt.Printf("%-24s %s\n", label, ui.RenderBar("", c, max, ui.BarWidth))
	}
	return nil
}
