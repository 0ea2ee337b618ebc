// Package domain contains the lint workflows and the per-file operations
// they dispatch.
package domain

import (
	"errors"
	"fmt"
	"io"
	"slices"
	"time"

	"github.com/mouse-blink/lintel/internal/adapter"
	m "github.com/mouse-blink/lintel/internal/model"
)

// ErrNoFiles is returned when an introspection command finds nothing to report on.
var ErrNoFiles = errors.New("no files found under the given paths")

// CheckArgs are the inputs of Workflow.Check.
type CheckArgs struct {
	Files     []m.Path
	Defaults  *m.Settings
	Overrides m.Overrides
	Cache     m.CachePolicy
	Autofix   m.AutofixMode
}

// StdinArgs are the inputs of Workflow.CheckStdin.
type StdinArgs struct {
	Settings *m.Settings
	Filename string
	Autofix  m.AutofixMode
}

// FilesArgs are the inputs shared by the workflows that only need discovery.
type FilesArgs struct {
	Files     []m.Path
	Defaults  *m.Settings
	Overrides m.Overrides
}

// Workflow defines the lint operations exposed to the command line.
type Workflow interface {
	Check(args CheckArgs) m.Diagnostics
	CheckStdin(args StdinArgs) (m.Diagnostics, error)
	AddSuppressions(args FilesArgs) int
	AutoFormat(args FilesArgs) int
	Explain(code m.CheckCode, format m.SerializationFormat) (string, error)
	ListFiles(args FilesArgs) []m.Path
	ResolveSettings(args FilesArgs) (m.Path, *m.Settings, error)
}

// Observer is told about progress. FileProcessed is called from concurrent
// tasks.
type Observer interface {
	FilesDiscovered(count int)
	FileProcessed(path m.Path)
}

type nopObserver struct{}

func (nopObserver) FilesDiscovered(int) {}

func (nopObserver) FileProcessed(m.Path) {}

// Option configures a Workflow.
type Option func(*workflow)

// WithObserver installs o for every batch workflow.
func WithObserver(o Observer) Option {
	return func(w *workflow) {
		if o != nil {
			w.observer = o
		}
	}
}

type workflow struct {
	fsAdapter  adapter.SourceFSAdapter
	checker    Checker
	annotator  Annotator
	formatter  Formatter
	executor   Executor
	classifier *Classifier
	logger     Logger
	stdin      io.Reader
	observer   Observer
}

// NewWorkflow creates a Workflow from its collaborators. A nil executor runs
// sequentially and a nil logger discards output.
func NewWorkflow(
	fsAdapter adapter.SourceFSAdapter,
	checker Checker,
	annotator Annotator,
	formatter Formatter,
	executor Executor,
	logger Logger,
	stdin io.Reader,
	opts ...Option,
) Workflow {
	if executor == nil {
		executor = NewSequentialExecutor()
	}

	if logger == nil {
		logger = nopLogger{}
	}

	w := &workflow{
		fsAdapter:  fsAdapter,
		checker:    checker,
		annotator:  annotator,
		formatter:  formatter,
		executor:   executor,
		classifier: NewClassifier(logger),
		logger:     logger,
		stdin:      stdin,
		observer:   nopObserver{},
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// Check lints every discovered file. Failures become E902 messages or log
// lines; the result is sorted.
func (w *workflow) Check(args CheckArgs) m.Diagnostics {
	entries, resolver := w.discover(args.Files, args.Overrides, args.Defaults)

	start := time.Now()

	parts := dispatch(w.executor, entries, func(entry m.DiscoveryResult) m.Diagnostics {
		defer w.observer.FileProcessed(entry.Path)

		settings := settingsFor(resolver, entry.Path, args.Defaults)

		if entry.Failed() {
			return w.classifier.Classify(DiscoveryFailure{Path: entry.Path, Err: entry.Err}, settings)
		}

		diagnostics, err := w.checker.Lint(entry.Path, settings, args.Cache, args.Autofix)
		if err != nil {
			return w.classifier.Classify(OperationFailure{Path: entry.Path, Err: err}, settings)
		}

		return diagnostics
	}, func(entry m.DiscoveryResult, recovered any) m.Diagnostics {
		return w.classifier.Classify(
			OperationFailure{Path: entry.Path, Err: fmt.Errorf("panic: %v", recovered)},
			settingsFor(resolver, entry.Path, args.Defaults),
		)
	})

	diagnostics := ReduceDiagnostics(parts)
	SortMessages(diagnostics.Messages)

	w.logger.Debugf("Checked files in: %s", time.Since(start))

	return diagnostics
}

// CheckStdin reads all of stdin before linting it as filename. Every failure
// is returned.
func (w *workflow) CheckStdin(args StdinArgs) (m.Diagnostics, error) {
	if w.stdin == nil {
		return m.Diagnostics{}, errors.New("read stdin: no input configured")
	}

	content, err := io.ReadAll(w.stdin)
	if err != nil {
		return m.Diagnostics{}, fmt.Errorf("read stdin: %w", err)
	}

	diagnostics, err := w.checker.LintText(args.Filename, content, args.Settings, args.Autofix)
	if err != nil {
		return m.Diagnostics{}, fmt.Errorf("check %s: %w", args.Filename, err)
	}

	SortMessages(diagnostics.Messages)

	return diagnostics, nil
}

// AddSuppressions adds //noqa directives and returns how many lines changed.
func (w *workflow) AddSuppressions(args FilesArgs) int {
	entries, resolver := w.discover(args.Files, args.Overrides, args.Defaults)

	start := time.Now()

	counts := dispatch(w.executor, entries, func(entry m.DiscoveryResult) int {
		defer w.observer.FileProcessed(entry.Path)

		if entry.Failed() {
			w.logDiscoveryFailure(entry)
			return 0
		}

		count, err := w.annotator.AddSuppressions(entry.Path, settingsFor(resolver, entry.Path, args.Defaults))
		if err != nil {
			w.logger.Errorf("Failed to add noqa to %s: %v", entry.Path, err)
			return 0
		}

		return count
	}, func(entry m.DiscoveryResult, recovered any) int {
		w.logger.Errorf("Failed to add noqa to %s: panic: %v", entry.Path, recovered)
		return 0
	})

	total := 0
	for _, count := range counts {
		total += count
	}

	w.logger.Debugf("Added noqa to files in: %s", time.Since(start))

	return total
}

// AutoFormat formats every discovered file and returns how many succeeded.
func (w *workflow) AutoFormat(args FilesArgs) int {
	entries, resolver := w.discover(args.Files, args.Overrides, args.Defaults)

	start := time.Now()

	results := dispatch(w.executor, entries, func(entry m.DiscoveryResult) bool {
		defer w.observer.FileProcessed(entry.Path)

		if entry.Failed() {
			w.logDiscoveryFailure(entry)
			return false
		}

		if err := w.formatter.Format(entry.Path, settingsFor(resolver, entry.Path, args.Defaults)); err != nil {
			w.logger.Errorf("Failed to autoformat %s: %v", entry.Path, err)
			return false
		}

		return true
	}, func(entry m.DiscoveryResult, recovered any) bool {
		w.logger.Errorf("Failed to autoformat %s: panic: %v", entry.Path, recovered)
		return false
	})

	total := 0

	for _, ok := range results {
		if ok {
			total++
		}
	}

	w.logger.Debugf("Auto-formatted files in: %s", time.Since(start))

	return total
}

// Explain renders the description of code.
func (w *workflow) Explain(code m.CheckCode, format m.SerializationFormat) (string, error) {
	return Explain(code, format)
}

// ListFiles returns the discovered files sorted by path. Discovery failures
// are dropped.
func (w *workflow) ListFiles(args FilesArgs) []m.Path {
	entries, _ := w.discover(args.Files, args.Overrides, args.Defaults)

	files := make([]m.Path, 0, len(entries))

	for _, entry := range entries {
		if !entry.Failed() {
			files = append(files, entry.Path)
		}
	}

	slices.Sort(files)

	return files
}

// ResolveSettings returns the first discovered file, in path order, and the
// settings that apply to it.
func (w *workflow) ResolveSettings(args FilesArgs) (m.Path, *m.Settings, error) {
	entries, resolver := w.discover(args.Files, args.Overrides, args.Defaults)

	var first m.Path

	for _, entry := range entries {
		if entry.Failed() {
			continue
		}

		if first == "" || entry.Path < first {
			first = entry.Path
		}
	}

	if first == "" {
		return "", nil, ErrNoFiles
	}

	return first, settingsFor(resolver, first, args.Defaults), nil
}

func (w *workflow) discover(files []m.Path, overrides m.Overrides, defaults *m.Settings) ([]m.DiscoveryResult, adapter.Resolver) {
	start := time.Now()

	entries, resolver := w.fsAdapter.Discover(files, overrides, defaults)

	w.logger.Debugf("Identified files to lint in: %s", time.Since(start))
	w.observer.FilesDiscovered(len(entries))

	return entries, resolver
}

func (w *workflow) logDiscoveryFailure(entry m.DiscoveryResult) {
	if entry.Path == "" {
		w.logger.Errorf("%v", entry.Err)
		return
	}

	w.logger.Errorf("Failed to discover %s: %v", entry.Path, entry.Err)
}

// settingsFor resolves the settings of path, falling back to defaults.
func settingsFor(resolver adapter.Resolver, path m.Path, defaults *m.Settings) *m.Settings {
	if path == "" || resolver == nil {
		return defaults
	}

	if settings, ok := resolver.Resolve(path); ok {
		return settings
	}

	return defaults
}
