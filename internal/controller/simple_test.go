package controller

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	m "github.com/mouse-blink/lintel/internal/model"
)

func newTestCommand() (*cobra.Command, *bytes.Buffer) {
	var buf bytes.Buffer

	cmd := &cobra.Command{}
	cmd.SetOut(&buf)

	return cmd, &buf
}

func TestSimpleUI_DisplayDiagnostics(t *testing.T) {
	cmd, buf := newTestCommand()
	ui := NewSimpleUI(cmd)

	require.NoError(t, ui.Start())
	ui.FilesDiscovered(1)
	ui.FileProcessed("a.go")
	ui.Close()

	err := ui.DisplayDiagnostics(m.NewDiagnostics(m.Message{
		Kind:     m.TrailingWhitespace(),
		Location: m.Location{Row: 3, Column: 7},
		Filename: "a.go",
	}), m.FormatText)
	require.NoError(t, err)

	assert.Equal(t, "a.go:3:7: W291 Trailing whitespace\nFound 1 error(s).\n", buf.String())
}

func TestSimpleUI_DisplayCount(t *testing.T) {
	tests := []struct {
		name string
		kind CountKind
		want string
	}{
		{name: "suppressions", kind: CountSuppressions, want: "Added 4 noqa directive(s).\n"},
		{name: "formatted", kind: CountFormatted, want: "Formatted 4 file(s).\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, buf := newTestCommand()

			require.NoError(t, NewSimpleUI(cmd).DisplayCount(tt.kind, 4))
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestSimpleUI_DisplayFiles(t *testing.T) {
	cmd, buf := newTestCommand()

	require.NoError(t, NewSimpleUI(cmd).DisplayFiles([]m.Path{"a.go", "pkg/b.go"}))
	assert.Equal(t, "a.go\npkg/b.go\n", buf.String())
}

func TestSimpleUI_DisplaySettings(t *testing.T) {
	cmd, buf := newTestCommand()

	settings := &m.Settings{
		Root:       "/repo",
		Enabled:    map[m.CheckCode]struct{}{m.CodeE501: {}, m.CodeW291: {}},
		LineLength: 88,
		Exclude:    []string{"vendor"},
		PerFileIgnores: []m.PerFileIgnore{
			{Pattern: "gen_*.go", Codes: []m.CheckCode{m.CodeE501}},
		},
		Fingerprint: "abc",
	}

	require.NoError(t, NewSimpleUI(cmd).DisplaySettings("/repo/main.go", settings))

	header, body, ok := strings.Cut(buf.String(), "\n")
	require.True(t, ok)
	assert.Equal(t, "Resolved settings for: /repo/main.go", header)

	var view settingsView
	require.NoError(t, yaml.Unmarshal([]byte(body), &view))

	assert.Equal(t, settingsView{
		Root:           "/repo",
		Enabled:        []string{"E501", "W291"},
		Fixable:        []string{"W291"},
		LineLength:     88,
		Exclude:        []string{"vendor"},
		PerFileIgnores: map[string][]string{"gen_*.go": {"E501"}},
		Fingerprint:    "abc",
	}, view)
}

func TestSimpleUI_DisplaySettings_Nil(t *testing.T) {
	cmd, _ := newTestCommand()

	assert.Error(t, NewSimpleUI(cmd).DisplaySettings("x.go", nil))
}

func TestSimpleUI_DisplayExplanation(t *testing.T) {
	cmd, buf := newTestCommand()

	require.NoError(t, NewSimpleUI(cmd).DisplayExplanation("E501 (Errors): Line too long\n"))
	assert.Equal(t, "E501 (Errors): Line too long\n", buf.String())
}
