package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/lintel/internal/controller"
)

// formatCmd represents the format command.
var formatCmd = newFormatCmd()

func newFormatCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "format [paths...]",
		Short: "Rewrite Go files in gofmt style",
		RunE: func(cmd *cobra.Command, args []string) error {
			discovery, err := newFilesArgs(cmd, args)
			if err != nil {
				return err
			}

			if err := ui.Start(); err != nil {
				return err
			}

			count := workflow.AutoFormat(discovery)

			ui.Close()

			return ui.DisplayCount(controller.CountFormatted, count)
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(formatCmd)
}
