package cmd

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/kamal-hamza/fsviz/internal/adapters/export"
	"github.com/kamal-hamza/fsviz/internal/core/services"
	"github.com/kamal-hamza/fsviz/pkg/ui"
)

var (
	exportFormat string
	exportOutput string
	exportStdout bool
	exportCopy   bool
)

var exportCmd = &cobra.Command{
	Use:   "export [directory]",
	Short: "Export file metadata as CSV, JSON or YAML",
	Long: `Walk a directory and write one row per file.

Columns: Filename, File Extension, Path, Size (bytes), Last Modified,
Last Accessed, Created, Owner. Timestamps are RFC 3339 in UTC.

Examples:
  fsviz export ~/Music
  fsviz export . --format json --output music.json
  fsviz export . --format yaml --stdout
  fsviz export . --copy`,
	Args: cobra.MaximumNArgs(1),
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "", "Output format: "+strings.Join(export.Formats(), ", "))
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Output file (default: configured export filename)")
	exportCmd.Flags().BoolVar(&exportStdout, "stdout", false, "Print to the terminal instead of a file")
	exportCmd.Flags().BoolVarP(&exportCopy, "copy", "c", false, "Copy the output path (or the output itself with --stdout) to the clipboard")
}

func runExport(cmd *cobra.Command, args []string) error {
	if exportFormat == "" {
		exportFormat = appConfig.ExportFormat
	}
	enc, err := export.ForFormat(exportFormat)
	if err != nil {
		return err
	}

	result, err := scanRoot(cmd.Context(), args)
	if err != nil {
		return err
	}
	if result.Count() == 0 {
		fmt.Println(ui.FormatWarning("No files found"))
		return nil
	}

	if exportStdout {
		var buf bytes.Buffer
		if _, err := exportService.Execute(&buf, services.ExportRequest{Records: result.Records, Encoder: enc}); err != nil {
			return err
		}
		fmt.Println(highlight(buf.String(), exportFormat))
		if exportCopy {
			copyToClipboard(buf.String(), "export")
		}
		return nil
	}

	filename := exportOutput
	if filename == "" {
		filename = appConfig.ExportFilename
	}

	path, rows, err := writeExport(result.Records, exportFormat, filename)
	if err != nil {
		return err
	}

	fmt.Println(ui.FormatSuccess(fmt.Sprintf("Exported %d rows to %s", rows, path)))
	if exportCopy {
		copyToClipboard(path, "path")
	}
	return nil
}

// copyToClipboard copies text, warning instead of failing when no
// clipboard is available
func copyToClipboard(text, what string) {
	if err := clipboard.WriteAll(text); err != nil {
		fmt.Println(ui.FormatWarning("Could not copy to clipboard: " + err.Error()))
		return
	}
	fmt.Println(ui.FormatInfo("Copied " + what + " to clipboard"))
}

// highlight colors serialized output for the terminal
func highlight(content, format string) string {
	lexer := lexers.Get(format)
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	style := styles.Get("monokai")
	if style == nil {
		style = styles.Fallback
	}

	formatter := formatters.TTY16m

	var buf strings.Builder
	iterator, err := lexer.Tokenise(nil, content)
	if err != nil {
		return content
	}
	if err := formatter.Format(&buf, style, iterator); err != nil {
		return content
	}
	return buf.String()
}
