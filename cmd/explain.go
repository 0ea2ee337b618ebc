package cmd

import (
	"github.com/spf13/cobra"

	m "github.com/mouse-blink/lintel/internal/model"
)

// explainCmd represents the explain command.
var explainCmd = newExplainCmd()

func newExplainCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "explain CODE",
		Short: "Describe a check code",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			code, err := m.ParseCheckCode(args[0])
			if err != nil {
				return err
			}

			format, err := m.ParseSerializationFormat(formatFlag)
			if err != nil {
				return err
			}

			text, err := workflow.Explain(code, format)
			if err != nil {
				return err
			}

			return ui.DisplayExplanation(text)
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(explainCmd)
}
