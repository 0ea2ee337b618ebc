package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	m "github.com/mouse-blink/lintel/internal/model"
)

type recordingLogger struct {
	errors []string
}

func (l *recordingLogger) Debugf(string, ...interface{}) {}

func (l *recordingLogger) Errorf(format string, args ...interface{}) {
	l.errors = append(l.errors, fmt.Sprintf(format, args...))
}

func TestClassifier_Classify(t *testing.T) {
	withE902 := &m.Settings{Enabled: map[m.CheckCode]struct{}{m.CodeE902: {}}}
	withoutE902 := &m.Settings{Enabled: map[m.CheckCode]struct{}{m.CodeE501: {}}}
	ignoredForGenerated := &m.Settings{
		Root:           "/repo",
		Enabled:        map[m.CheckCode]struct{}{m.CodeE902: {}},
		PerFileIgnores: []m.PerFileIgnore{{Pattern: "gen/**", Codes: []m.CheckCode{m.CodeE902}}},
	}

	cases := []struct {
		name     string
		failure  Failure
		settings *m.Settings
		want     []m.Message
		logged   []string
	}{
		{
			name:     "operation failure with E902 enabled",
			failure:  OperationFailure{Path: "a.go", Err: errors.New("permission denied")},
			settings: withE902,
			want:     []m.Message{{Kind: m.IOError("permission denied"), Filename: "a.go"}},
		},
		{
			name:     "discovery failure with path",
			failure:  DiscoveryFailure{Path: "missing.go", Err: errors.New("no such file")},
			settings: withE902,
			want:     []m.Message{{Kind: m.IOError("no such file"), Filename: "missing.go"}},
		},
		{
			name:     "E902 disabled is logged",
			failure:  OperationFailure{Path: "a.go", Err: errors.New("boom")},
			settings: withoutE902,
			logged:   []string{"Failed to check a.go: boom"},
		},
		{
			name:     "per-file ignore disables E902",
			failure:  OperationFailure{Path: "/repo/gen/x.go", Err: errors.New("boom")},
			settings: ignoredForGenerated,
			logged:   []string{"Failed to check /repo/gen/x.go: boom"},
		},
		{
			name:     "path-less discovery failure is logged",
			failure:  DiscoveryFailure{Err: errors.New("walk aborted")},
			settings: withE902,
			logged:   []string{"walk aborted"},
		},
		{
			name:     "missing cause",
			failure:  OperationFailure{Path: "a.go"},
			settings: withE902,
			want:     []m.Message{{Kind: m.IOError("unknown error"), Filename: "a.go"}},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			logger := &recordingLogger{}

			got := NewClassifier(logger).Classify(tc.failure, tc.settings)

			assert.Equal(t, tc.want, got.Messages)
			assert.Zero(t, got.Fixed)
			assert.Equal(t, tc.logged, logger.errors)
		})
	}
}

func TestNewClassifier_NilLogger(t *testing.T) {
	got := NewClassifier(nil).Classify(DiscoveryFailure{Err: errors.New("x")}, nil)
	assert.Empty(t, got.Messages)
}
