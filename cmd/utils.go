package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/kamal-hamza/fsviz/internal/core/domain"
	"github.com/kamal-hamza/fsviz/internal/core/services"
	"github.com/kamal-hamza/fsviz/pkg/ui"
)

// rootArg returns the directory to scan: the first argument, else the
// configured default root
func rootArg(args []string) string {
	if len(args) > 0 && args[0] != "" {
		return args[0]
	}
	if appConfig != nil && appConfig.DefaultRoot != "" {
		return appConfig.DefaultRoot
	}
	return "."
}

// scanRoot walks the directory named by args and reports what was skipped
func scanRoot(ctx context.Context, args []string) (*domain.ScanResult, error) {
	root := rootArg(args)

	resp, err := scanService.Execute(ctx, services.ScanRequest{Root: root})
	if err != nil {
		return nil, err
	}

	result := resp.Result
	fmt.Println(ui.FormatInfo(fmt.Sprintf("Scanned %d files (%s) under %s in %s",
		result.Count(),
		ui.FormatBytes(result.TotalSize()),
		result.Root,
		resp.Duration.Round(time.Millisecond),
	)))
	printDiagnostics(result.Diagnostics)

	return result, nil
}

// writeFile creates path and fills it with write. The file is removed when
// write or the final close fails so no partial output is left behind.
func writeFile(path string, write func(io.Writer) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close %s: %w", path, cerr)
		}
		if err != nil {
			os.Remove(path)
		}
	}()

	return write(f)
}

// printDiagnostics prints a one-line summary of skipped items, and every
// item when --verbose is set
func printDiagnostics(diag domain.Diagnostics) {
	if diag.Len() == 0 {
		return
	}

	files, dirs := diag.SkippedFiles(), diag.SkippedDirs()
	fmt.Println(ui.FormatWarning(fmt.Sprintf("Skipped %d files and %d directories", len(files), len(dirs))))

	if !verbose {
		fmt.Println(ui.FormatMuted("  Run with --verbose to list them"))
		return
	}
	for _, w := range diag.Warnings {
		fmt.Println(ui.FormatMuted("  " + w.Error()))
	}
}

// selectionFilter turns a --types value into a filter. With no value every
// extension seen in the scan is selected, like the selector's default.
func selectionFilter(result *domain.ScanResult, types string) domain.ExtensionFilter {
	if strings.TrimSpace(types) != "" {
		return domain.ParseExtensionFilter(types)
	}
	return domain.NewExtensionFilter(result.ExtensionsSeen()...)
}

// displayExt renders the empty extension readably
func displayExt(ext string) string {
	if ext == "" {
		return "(none)"
	}
	return ext
}

// relativePath shortens a record path for display
func relativePath(root, path string) string {
	if rel, err := filepath.Rel(root, path); err == nil {
		return rel
	}
	return path
}

// GetPreferredEditor returns the editor command from config, env, or default
func GetPreferredEditor() string {
	if appConfig != nil && appConfig.Editor != "" {
		return appConfig.Editor
	}
	if env := os.Getenv("EDITOR"); env != "" {
		return env
	}
	return "vi"
}

// OpenFile opens a file with the OS default application
func OpenFile(path string) error {
	var cmd *exec.Cmd

	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", path)
	case "windows":
		cmd = exec.Command("cmd", "/c", "start", path)
	default:
		cmd = exec.Command("xdg-open", path)
	}

	// Start() detaches so fsviz can exit while the browser stays open
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to open '%s': %w", path, err)
	}

	return nil
}
