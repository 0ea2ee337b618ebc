package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/lintel/internal/controller"
)

// noqaCmd represents the noqa command.
var noqaCmd = newNoqaCmd()

func newNoqaCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "noqa [paths...]",
		Short: "Add //noqa directives for every current diagnostic",
		Long: `Append a //noqa:CODES comment to each line that currently has diagnostics,
extending an existing directive when the line already carries one.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			discovery, err := newFilesArgs(cmd, args)
			if err != nil {
				return err
			}

			if err := ui.Start(); err != nil {
				return err
			}

			count := workflow.AddSuppressions(discovery)

			ui.Close()

			return ui.DisplayCount(controller.CountSuppressions, count)
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(noqaCmd)
}
