package cmd

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/kamal-hamza/fsviz/pkg/config"
	"github.com/kamal-hamza/fsviz/pkg/ui"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Edit the fsviz configuration file",
	Long: `Open the configuration file in your editor, creating it with the
default values first if it does not exist yet.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := appWorkspace.ConfigPath

		if _, err := os.Stat(path); os.IsNotExist(err) {
			if err := config.DefaultConfig().Save(path); err != nil {
				return err
			}
			fmt.Println(ui.FormatSuccess("Created default config at " + path))
		}

		fmt.Println(ui.FormatInfo("Opening config: " + path))

		c := exec.Command(GetPreferredEditor(), path)
		c.Stdin = os.Stdin
		c.Stdout = os.Stdout
		c.Stderr = os.Stderr
		return c.Run()
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := yaml.Marshal(appConfig)
		if err != nil {
			return fmt.Errorf("failed to marshal config: %w", err)
		}
		fmt.Println(ui.FormatMuted("# " + appWorkspace.ConfigPath))
		fmt.Print(highlight(string(data), "yaml"))
		return nil
	},
}

func init() {
	configCmd.AddCommand(configShowCmd)
}
