package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/kamal-hamza/fsviz/internal/adapters/charts"
	"github.com/kamal-hamza/fsviz/internal/adapters/filesystem"
	"github.com/kamal-hamza/fsviz/internal/core/services"
	"github.com/kamal-hamza/fsviz/pkg/config"
	"github.com/kamal-hamza/fsviz/pkg/ui"
	"github.com/kamal-hamza/fsviz/pkg/workspace"
)

var (
	// Global workspace and configuration
	appWorkspace *workspace.Workspace
	appConfig    *config.Config

	// Services
	scanService   *services.ScanService
	reportService *services.ReportService
	exportService *services.ExportService

	// Global flags
	verbose           bool
	allowUnknownOwner bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "fsviz",
	Short: "fsviz - Inventory and visualize file metadata",
	Long: ui.StyleTitle.Render("fsviz") + " - File Metadata Inventory\n\n" +
		"Walk a directory tree, collect per-file metadata and turn it into\n" +
		"type counts, time histories, size distributions and charts.",
	PersistentPreRunE: initializeApp,
	SilenceUsage:      true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// Commands receive a context cancelled on interrupt so long scans stop cleanly.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(scanCmd)
	rootCmd.AddCommand(typesCmd)
	rootCmd.AddCommand(timelineCmd)
	rootCmd.AddCommand(sizesCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(chartsCmd)
	rootCmd.AddCommand(browseCmd)
	rootCmd.AddCommand(selectCmd)
	rootCmd.AddCommand(inspectCmd)
	rootCmd.AddCommand(cleanCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "List every skipped file and directory")
	rootCmd.PersistentFlags().BoolVar(&allowUnknownOwner, "allow-unknown-owner", false, "Record files whose owner cannot be resolved as \"unknown\"")
}

// initializeApp initializes the application components
func initializeApp(cmd *cobra.Command, args []string) error {
	if cmd.Name() == "version" {
		return nil
	}

	ws, err := workspace.New()
	if err != nil {
		return fmt.Errorf("failed to initialize workspace: %w", err)
	}
	appWorkspace = ws

	cfg, err := config.Load(appWorkspace.ConfigPath)
	if err != nil {
		return err
	}
	appConfig = cfg

	if allowUnknownOwner {
		appConfig.AllowUnknownOwner = true
	}

	ui.SetTheme(appConfig.ColorTheme)

	// Adapters
	owners := filesystem.NewSystemOwnerResolver()
	extractor := filesystem.NewExtractor(owners, appConfig.AllowUnknownOwner)
	walker := filesystem.NewWalker(extractor)
	renderer := charts.NewEChartsRenderer(appConfig.ChartWidth, appConfig.ChartHeight, appConfig.ChartTheme)

	// Services
	scanService = services.NewScanService(walker)
	reportService = services.NewReportService(renderer)
	exportService = services.NewExportService()

	return nil
}

// location returns the zone time buckets are labelled in
func location() *time.Location {
	if appConfig != nil && appConfig.UseUTC {
		return time.UTC
	}
	return time.Local
}
