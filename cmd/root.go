// Package cmd provides the root command and CLI setup for lintel.
package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/mouse-blink/lintel/internal/adapter"
	"github.com/mouse-blink/lintel/internal/config"
	"github.com/mouse-blink/lintel/internal/controller"
	"github.com/mouse-blink/lintel/internal/domain"
	m "github.com/mouse-blink/lintel/internal/model"
)

// ErrViolations is returned by check when diagnostics were reported.
var ErrViolations = errors.New("lint violations found")

var workflow domain.Workflow
var ui controller.UI
var logger = log.NewWithOptions(os.Stderr, log.Options{Prefix: "lintel"})

var configFlag string
var selectFlags []string
var extendSelectFlags []string
var ignoreFlags []string
var extendIgnoreFlags []string
var excludeFlags []string
var extendExcludeFlags []string
var lineLengthFlag int
var formatFlag string
var verboseFlag bool
var quietFlag bool
var jobsFlag int

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lintel [paths...]",
		Short: "Go source linter",
		Long: `Lintel checks Go sources for style and correctness problems, reports
them in several formats and can fix, suppress or reformat them.

Supports Go-style path patterns:
  - ./...          recursively scan current directory
  - ./pkg/...      recursively scan pkg directory
  - -              read a single file from stdin`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: setup,
		RunE:              runCheck,
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&configFlag, "config", "", "path to a lintel.toml used for the default settings")
	flags.StringSliceVar(&selectFlags, "select", nil, "check code prefixes to enable, replacing the configured set")
	flags.StringSliceVar(&extendSelectFlags, "extend-select", nil, "check code prefixes to enable in addition to the configured set")
	flags.StringSliceVar(&ignoreFlags, "ignore", nil, "check code prefixes to disable, replacing the configured set")
	flags.StringSliceVar(&extendIgnoreFlags, "extend-ignore", nil, "check code prefixes to disable in addition to the configured set")
	flags.StringSliceVar(&excludeFlags, "exclude", nil, "glob patterns to exclude, replacing the configured set")
	flags.StringSliceVar(&extendExcludeFlags, "extend-exclude", nil, "glob patterns to exclude in addition to the configured set")
	flags.IntVar(&lineLengthFlag, "line-length", 0, "maximum line length for E501")
	flags.StringVar(&formatFlag, "format", string(m.FormatText), "output format: text, grouped, json, junit or github")
	flags.BoolVarP(&verboseFlag, "verbose", "v", false, "enable debug logging")
	flags.BoolVarP(&quietFlag, "quiet", "q", false, "only log fatal errors")
	flags.IntVarP(&jobsFlag, "jobs", "j", 0, "number of files processed in parallel (0 uses every CPU)")

	addCheckFlags(cmd)

	return cmd
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		if !errors.Is(err, ErrViolations) {
			logger.Error(err)
		}

		os.Exit(1)
	}
}

// setup configures logging and builds the workflow and UI unless they were
// already provided.
func setup(cmd *cobra.Command, _ []string) error {
	logger = newLogger(cmd)

	if _, err := m.ParseSerializationFormat(formatFlag); err != nil {
		return err
	}

	if ui == nil {
		useTTY := !quietFlag && formatFlag == string(m.FormatText) && controller.IsTTY(cmd.ErrOrStderr())
		ui = controller.NewUI(cmd, useTTY)
	}

	if workflow == nil {
		fs := adapter.NewLocalSourceFSAdapter()
		parser := adapter.NewLocalGoFileAdapter()

		workflow = domain.NewWorkflow(
			fs,
			domain.NewChecker(fs, parser),
			domain.NewAnnotator(fs, parser),
			domain.NewFormatter(fs, parser),
			domain.NewExecutor(jobsFlag),
			logger,
			cmd.InOrStdin(),
			domain.WithObserver(ui),
		)
	}

	return nil
}

func newLogger(cmd *cobra.Command) *log.Logger {
	level := log.InfoLevel

	switch {
	case quietFlag:
		level = log.FatalLevel
	case verboseFlag:
		level = log.DebugLevel
	}

	return log.NewWithOptions(cmd.ErrOrStderr(), log.Options{Prefix: "lintel", Level: level})
}

func parsePaths(args []string) []m.Path {
	if len(args) == 0 {
		return []m.Path{"."}
	}

	paths := make([]m.Path, 0, len(args))
	for _, arg := range args {
		paths = append(paths, m.Path(arg))
	}

	return paths
}

// buildOverrides collects the settings flags that were set explicitly.
func buildOverrides(cmd *cobra.Command) m.Overrides {
	flags := cmd.Flags()

	changed := func(name string, values []string) []string {
		if !flags.Changed(name) {
			return nil
		}

		return append([]string{}, values...)
	}

	overrides := m.Overrides{
		Select:        changed("select", selectFlags),
		ExtendSelect:  changed("extend-select", extendSelectFlags),
		Ignore:        changed("ignore", ignoreFlags),
		ExtendIgnore:  changed("extend-ignore", extendIgnoreFlags),
		Exclude:       changed("exclude", excludeFlags),
		ExtendExclude: changed("extend-exclude", extendExcludeFlags),
	}

	if flags.Changed("line-length") {
		lineLength := lineLengthFlag
		overrides.LineLength = &lineLength
	}

	if flags.Changed("show-source") {
		showSource := showSourceFlag
		overrides.ShowSource = &showSource
	}

	return overrides
}

// loadDefaults resolves the settings used for files outside every
// configured scope: --config, else the nearest lintel.toml, else built-ins.
func loadDefaults(overrides m.Overrides) (*m.Settings, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("resolve working directory: %w", err)
	}

	cfg := config.Default()
	root := m.Path(cwd)

	path := m.Path(configFlag)
	if path == "" {
		if found, ok := config.Find(root); ok {
			path = found
		}
	}

	if path != "" {
		cfg, err = config.Load(path)
		if err != nil {
			return nil, err
		}

		abs, err := filepath.Abs(string(path))
		if err != nil {
			return nil, fmt.Errorf("resolve config path: %w", err)
		}

		root = m.Path(filepath.Dir(abs))
	}

	settings, err := cfg.Apply(overrides).Settings(root)
	if err != nil {
		return nil, fmt.Errorf("default settings: %w", err)
	}

	return settings, nil
}

// newFilesArgs builds the discovery inputs shared by every batch command.
func newFilesArgs(cmd *cobra.Command, args []string) (domain.FilesArgs, error) {
	overrides := buildOverrides(cmd)

	defaults, err := loadDefaults(overrides)
	if err != nil {
		return domain.FilesArgs{}, err
	}

	return domain.FilesArgs{
		Files:     parsePaths(args),
		Defaults:  defaults,
		Overrides: overrides,
	}, nil
}
