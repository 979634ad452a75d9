package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kamal-hamza/fsviz/pkg/ui"
)

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Remove generated chart reports",
	RunE: func(cmd *cobra.Command, args []string) error {
		removed, err := appWorkspace.CleanReports()
		if err != nil {
			return err
		}
		if removed == 0 {
			fmt.Println(ui.FormatInfo("No reports to remove"))
			return nil
		}
		fmt.Println(ui.FormatSuccess(fmt.Sprintf("Removed %d reports from %s", removed, appWorkspace.ReportsPath)))
		return nil
	},
}
