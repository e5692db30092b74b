package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage application settings",
	Long: `View and change settings stored in config.toml.

Keys:
  output.precision  significant digits in printed numbers (1-17)
  cache.enabled     memoise conversion factors (true/false)
  data.dir          directory holding the custom unit database`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runSettingsShow,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Change a setting",
	Args:  cobra.ExactArgs(2),
	RunE:  runSettingsSet,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Println()

	cmd.Println("[Output]")
	cmd.Printf("  Precision: %d\n", settings.Output.Precision)
	cmd.Println()

	cmd.Println("[Cache]")
	if settings.Cache.Enabled {
		cmd.Println("  Enabled: yes")
	} else {
		cmd.Println("  Enabled: no")
	}
	cmd.Println()

	cmd.Println("[Data]")
	if settings.Data.Dir != "" {
		cmd.Printf("  Dir: %s\n", settings.Data.Dir)
	} else {
		cmd.Println("  Dir: (default)")
	}

	return nil
}

func runSettingsSet(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	if err := settingsService.Set(args[0], args[1]); err != nil {
		return fmt.Errorf("failed to update setting: %w", err)
	}

	cmd.Printf("Set %s = %s\n", args[0], args[1])
	return nil
}
