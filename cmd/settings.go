package cmd

import (
	"github.com/spf13/cobra"
)

// settingsCmd represents the settings command.
var settingsCmd = newSettingsCmd()

func newSettingsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings [paths...]",
		Short: "Show the settings resolved for the first file",
		Long: `Show the settings that apply to the first file, in path order, found under
the given paths.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			discovery, err := newFilesArgs(cmd, args)
			if err != nil {
				return err
			}

			path, settings, err := workflow.ResolveSettings(discovery)
			if err != nil {
				return err
			}

			return ui.DisplaySettings(path, settings)
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(settingsCmd)
}
