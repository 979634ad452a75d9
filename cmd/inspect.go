package cmd

import (
	"fmt"
	"strings"

	"github.com/ktr0731/go-fuzzyfinder"
	"github.com/spf13/cobra"

	"github.com/kamal-hamza/fsviz/internal/core/domain"
	"github.com/kamal-hamza/fsviz/pkg/ui"
)

var inspectCopy bool

var inspectCmd = &cobra.Command{
	Use:     "inspect [directory]",
	Aliases: []string{"find"},
	Short:   "Fuzzy find a file and show its metadata (alias: find)",
	Long: `Walk a directory, pick a file with the fuzzy finder and print every
metadata field collected for it.

Examples:
  fsviz inspect ~/Documents
  fsviz inspect . --copy`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInspect,
}

func init() {
	inspectCmd.Flags().BoolVarP(&inspectCopy, "copy", "c", false, "Copy the selected path to the clipboard")
}

func runInspect(cmd *cobra.Command, args []string) error {
	result, err := scanRoot(cmd.Context(), args)
	if err != nil {
		return err
	}
	if result.Count() == 0 {
		fmt.Println(ui.FormatWarning("No files found"))
		return nil
	}

	records := result.Records
	idx, err := fuzzyfinder.Find(
		records,
		func(i int) string {
			return relativePath(result.Root, records[i].Path)
		},
		fuzzyfinder.WithPreviewWindow(func(i, w, h int) string {
			if i == -1 {
				return ""
			}
			return metadataPreview(records[i])
		}),
	)
	if err != nil {
		// User cancelled (Ctrl+C or ESC)
		fmt.Println(ui.FormatInfo("Operation cancelled."))
		return nil
	}

	rec := records[idx]
	fmt.Println(ui.StyleHeader.Render(ui.IconFile + " " + rec.Name))
	for _, f := range rec.Fields() {
		fmt.Println(ui.RenderKeyValue(fmt.Sprintf("%-14s", f.Name), f.Value))
	}

	if inspectCopy {
		copyToClipboard(rec.Path, "path")
	}
	return nil
}

// metadataPreview renders a record for the finder's preview pane
func metadataPreview(rec domain.FileRecord) string {
	var b strings.Builder
	for _, f := range rec.Fields() {
		fmt.Fprintf(&b, "%-14s %s\n", f.Name+":", f.Value)
	}
	fmt.Fprintf(&b, "\n%-14s %s\n", "Size:", ui.FormatBytes(rec.SizeBytes))
	return b.String()
}
