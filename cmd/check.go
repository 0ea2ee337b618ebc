package cmd

import (
	"context"
	"errors"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/mouse-blink/lintel/internal/adapter"
	"github.com/mouse-blink/lintel/internal/controller"
	"github.com/mouse-blink/lintel/internal/domain"
	m "github.com/mouse-blink/lintel/internal/model"
)

const stdinPath = "-"

var fixFlag bool
var noCacheFlag bool
var exitZeroFlag bool
var showSourceFlag bool
var stdinFilenameFlag string
var watchFlag bool

// checkCmd represents the check command.
var checkCmd = newCheckCmd()

func newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [paths...]",
		Short: "Lint Go files and report diagnostics",
		Long: `Lint every Go file under the given paths and print the diagnostics.

Use "-" as the only path, or --stdin-filename, to lint source read from stdin.
The exit status is 1 when anything was reported, unless --exit-zero is set.`,
		RunE: runCheck,
	}

	addCheckFlags(cmd)

	return cmd
}

func addCheckFlags(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.BoolVar(&fixFlag, "fix", false, "apply fixes to the files in place")
	flags.BoolVar(&noCacheFlag, "no-cache", false, "do not reuse results of unchanged files")
	flags.BoolVar(&exitZeroFlag, "exit-zero", false, "exit with status 0 even when diagnostics are reported")
	flags.BoolVar(&showSourceFlag, "show-source", false, "show the offending source line for each diagnostic")
	flags.StringVar(&stdinFilenameFlag, "stdin-filename", "", "lint stdin, reporting it under this filename")
	flags.BoolVarP(&watchFlag, "watch", "w", false, "re-run when Go files or lintel.toml files change")
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	format, err := m.ParseSerializationFormat(formatFlag)
	if err != nil {
		return err
	}

	overrides := buildOverrides(cmd)

	defaults, err := loadDefaults(overrides)
	if err != nil {
		return err
	}

	autofix := autofixMode(format)

	if stdinFilenameFlag != "" || (len(args) == 1 && args[0] == stdinPath) {
		return checkStdin(defaults, autofix, format)
	}

	checkArgs := domain.CheckArgs{
		Files:     parsePaths(args),
		Defaults:  defaults,
		Overrides: overrides,
		Cache:     m.CachePolicyFromFlag(!noCacheFlag),
		Autofix:   autofix,
	}

	if watchFlag {
		return watch(cmd.Context(), checkArgs, format)
	}

	return check(checkArgs, format)
}

// autofixMode applies fixes with --fix and otherwise generates them only for
// formats that can carry them.
func autofixMode(format m.SerializationFormat) m.AutofixMode {
	switch {
	case fixFlag:
		return m.AutofixApply
	case format == m.FormatJSON:
		return m.AutofixGenerate
	default:
		return m.AutofixNone
	}
}

func check(args domain.CheckArgs, format m.SerializationFormat) error {
	if err := ui.Start(); err != nil {
		return err
	}

	diagnostics := workflow.Check(args)

	ui.Close()

	diagnostics = controller.RelativeDiagnostics(controller.WorkingDir(), diagnostics)

	if err := ui.DisplayDiagnostics(diagnostics, format); err != nil {
		return err
	}

	if len(diagnostics.Messages) > 0 && !exitZeroFlag {
		return ErrViolations
	}

	return nil
}

func checkStdin(settings *m.Settings, autofix m.AutofixMode, format m.SerializationFormat) error {
	filename := stdinFilenameFlag
	if filename == "" {
		filename = stdinPath
	}

	diagnostics, err := workflow.CheckStdin(domain.StdinArgs{
		Settings: settings,
		Filename: filename,
		Autofix:  autofix,
	})
	if err != nil {
		return err
	}

	if err := ui.DisplayDiagnostics(diagnostics, format); err != nil {
		return err
	}

	if len(diagnostics.Messages) > 0 && !exitZeroFlag {
		return ErrViolations
	}

	return nil
}

// watch runs check once, then again after every batch of relevant changes
// until interrupted. Violations never end the loop.
func watch(ctx context.Context, args domain.CheckArgs, format m.SerializationFormat) error {
	watcher, err := adapter.NewWatcher(args.Files, 0)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()

	run := func() {
		if err := check(args, format); err != nil && !errors.Is(err, ErrViolations) {
			logger.Error(err)
		}
	}

	logger.Info("Starting linter in watch mode")
	run()

	return watcher.Run(ctx, func(changed []m.Path) {
		logger.Info("File change detected", "files", len(changed))
		run()
	})
}
