package domain

import (
	m "github.com/mouse-blink/lintel/internal/model"
)

// Failure is a per-file or discovery-level fault. The set of implementations
// is closed: DiscoveryFailure and OperationFailure.
type Failure interface {
	error
	failure()
}

// DiscoveryFailure is raised while enumerating files. Path is empty when the
// failure cannot be attributed to a file.
type DiscoveryFailure struct {
	Path m.Path
	Err  error
}

func (f DiscoveryFailure) Error() string { return failureText(f.Err) }

func (DiscoveryFailure) failure() {}

// OperationFailure is raised by the checker, annotator or formatter for Path.
type OperationFailure struct {
	Path m.Path
	Err  error
}

func (f OperationFailure) Error() string { return failureText(f.Err) }

func (OperationFailure) failure() {}

// Classifier turns failures into diagnostics or log lines.
type Classifier struct {
	logger Logger
}

// NewClassifier returns a Classifier logging through logger.
func NewClassifier(logger Logger) *Classifier {
	if logger == nil {
		logger = nopLogger{}
	}

	return &Classifier{logger: logger}
}

// Classify never fails. A failure with a known path becomes one E902 message
// when settings enable E902 for that path, and a logged skip otherwise.
// Failures without a path are always logged.
func (c *Classifier) Classify(f Failure, settings *m.Settings) m.Diagnostics {
	var path m.Path

	switch f := f.(type) {
	case DiscoveryFailure:
		path = f.Path
	case OperationFailure:
		path = f.Path
	}

	if path == "" {
		c.logger.Errorf("%v", f)
		return m.Diagnostics{}
	}

	if !settings.EnabledFor(path, m.CodeE902) {
		c.logger.Errorf("Failed to check %s: %v", path, f)
		return m.Diagnostics{}
	}

	return m.NewDiagnostics(m.Message{
		Kind:     m.IOError(f.Error()),
		Filename: string(path),
	})
}

func failureText(err error) string {
	if err == nil {
		return "unknown error"
	}

	return err.Error()
}
