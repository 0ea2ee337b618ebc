package domain

// Logger is the logging capability handed to the workflow and the failure
// classifier. *log.Logger from charmbracelet/log satisfies it.
type Logger interface {
	Debugf(format string, args ...interface{})
	Errorf(format string, args ...interface{})
}

type nopLogger struct{}

func (nopLogger) Debugf(string, ...interface{}) {}

func (nopLogger) Errorf(string, ...interface{}) {}
