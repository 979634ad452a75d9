package cmd

import (
	"fmt"
	"io"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/kamal-hamza/fsviz/internal/adapters/export"
	"github.com/kamal-hamza/fsviz/internal/core/analysis"
	"github.com/kamal-hamza/fsviz/internal/core/domain"
	"github.com/kamal-hamza/fsviz/internal/core/services"
	"github.com/kamal-hamza/fsviz/pkg/ui"
)

var scanExport bool

var scanCmd = &cobra.Command{
	Use:   "scan [directory]",
	Short: "Walk a directory and summarize its files",
	Long: `Walk a directory tree once and print a summary of what was found.

With --export the collected metadata is also written to the configured
export file (file_metadata.csv by default) in the current directory.

Examples:
  fsviz scan ~/Pictures
  fsviz scan . --export`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScan,
}

func init() {
	scanCmd.Flags().BoolVarP(&scanExport, "export", "e", false, "Write the metadata to the export file")
}

func runScan(cmd *cobra.Command, args []string) error {
	result, err := scanRoot(cmd.Context(), args)
	if err != nil {
		return err
	}

	if result.Count() == 0 {
		fmt.Println(ui.FormatWarning("No files found"))
		return nil
	}

	types := analysis.AggregateTypes(result.Records, domain.NewExtensionFilter())

	fmt.Println()
	fmt.Println(ui.StyleHeader.Render("Summary"))
	fmt.Println(ui.RenderKeyValue("Files", strconv.Itoa(result.Count())))
	fmt.Println(ui.RenderKeyValue("Total size", ui.FormatBytes(result.TotalSize())))
	fmt.Println(ui.RenderKeyValue("File types", strconv.Itoa(types.Len())))
	fmt.Println(ui.RenderKeyValue("Owners", strconv.Itoa(countOwners(result.Records))))
	fmt.Println()

	renderTypeBars(types.Top(appConfig.TopTypes), types.Total())

	if scanExport {
		path, rows, err := writeExport(result.Records, appConfig.ExportFormat, appConfig.ExportFilename)
		if err != nil {
			return err
		}
		fmt.Println()
		fmt.Println(ui.FormatSuccess(fmt.Sprintf("Exported %d rows to %s", rows, path)))
	}

	return nil
}

func countOwners(records []domain.FileRecord) int {
	owners := make(map[string]struct{})
	for _, r := range records {
		owners[r.Owner] = struct{}{}
	}
	return len(owners)
}

// renderTypeBars prints a horizontal bar per type, scaled to the largest
func renderTypeBars(types domain.AggregationTable, total int) {
	if types.IsEmpty() {
		return
	}

	fmt.Println(ui.StyleHeader.Render("Top Types"))
	max := types.Entries[0].Count
	for _, e := range types.Entries {
		share := float64(e.Count) / float64(total)
		fmt.Printf("%s %s\n",
			ui.RenderBar(ui.FormatExtension(displayExt(e.Extension)), e.Count, max, ui.BarWidth),
			ui.FormatMuted(ui.FormatPercent(share)),
		)
	}
}

// writeExport serializes records to filename, swapping its extension to
// match the format
func writeExport(records []domain.FileRecord, format, filename string) (string, int, error) {
	enc, err := export.ForFormat(format)
	if err != nil {
		return "", 0, err
	}

	if ext := "." + enc.Extension(); filepath.Ext(filename) != ext {
		filename = filename[:len(filename)-len(filepath.Ext(filename))] + ext
	}

	if len(records) == 0 {
		return "", 0, domain.ErrEmptyInput
	}

	var rows int
	err = writeFile(filename, func(w io.Writer) error {
		resp, err := exportService.Execute(w, services.ExportRequest{Records: records, Encoder: enc})
		if err != nil {
			return err
		}
		rows = resp.Rows
		return nil
	})
	if err != nil {
		return "", 0, err
	}

	abs, err := filepath.Abs(filename)
	if err != nil {
		abs = filename
	}
	return abs, rows, nil
}
