package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/lintel/internal/controller"
)

// filesCmd represents the files command.
var filesCmd = newFilesCmd()

func newFilesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "files [paths...]",
		Short: "List the files that would be checked",
		Long:  "List every file discovery selects under the given paths, sorted by path.",
		RunE: func(cmd *cobra.Command, args []string) error {
			discovery, err := newFilesArgs(cmd, args)
			if err != nil {
				return err
			}

			return ui.DisplayFiles(controller.RelativeFiles(controller.WorkingDir(), workflow.ListFiles(discovery)))
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(filesCmd)
}
