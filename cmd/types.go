package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kamal-hamza/fsviz/internal/core/analysis"
	"github.com/kamal-hamza/fsviz/internal/core/domain"
	"github.com/kamal-hamza/fsviz/pkg/ui"
)

var (
	typesFilter string
	typesTop    int
)

var typesCmd = &cobra.Command{
	Use:   "types [directory]",
	Short: "Count files by type",
	Long: `Count files by normalized extension, most common first.

.jpg and .jpeg are counted together. Without --types every type is counted.

Examples:
  fsviz types ~/Documents
  fsviz types . --types .png,.jpeg
  fsviz types . --top 5`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTypes,
}

func init() {
	typesCmd.Flags().StringVarP(&typesFilter, "types", "t", "", "Comma separated extensions to count")
	typesCmd.Flags().IntVarP(&typesTop, "top", "n", 0, "Show only the N most common types")
}

func runTypes(cmd *cobra.Command, args []string) error {
	result, err := scanRoot(cmd.Context(), args)
	if err != nil {
		return err
	}

	// An empty filter counts every type
	filter := domain.ParseExtensionFilter(typesFilter)
	table := analysis.AggregateTypes(result.Records, filter)
	if table.IsEmpty() {
		fmt.Println(ui.FormatWarning("No files match " + filter.String()))
		return nil
	}

	shown := table
	if typesTop > 0 {
		shown = table.Top(typesTop)
	}

	fmt.Println()
	t := ui.NewTable([]ui.TableColumn{
		{Header: "TYPE"},
		{Header: "COUNT"},
		{Header: "SHARE"},
	})
	shares := table.Shares()
	for i, e := range shown.Entries {
		t.AddTypeRow(displayExt(e.Extension), e.Count, shares[i])
	}
	fmt.Print(t.Render())
	fmt.Println()

	renderTypeBars(shown, table.Total())

	if shown.Len() < table.Len() {
		fmt.Println(ui.FormatMuted(fmt.Sprintf("  ... and %d more types", table.Len()-shown.Len())))
	}
	return nil
}
