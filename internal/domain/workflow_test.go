package domain_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync/atomic"
	"testing"
	"testing/iotest"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	adaptermocks "github.com/mouse-blink/lintel/internal/adapter/mocks"
	"github.com/mouse-blink/lintel/internal/domain"
	domainmocks "github.com/mouse-blink/lintel/internal/domain/mocks"
	m "github.com/mouse-blink/lintel/internal/model"
)

func newTestLogger() (*log.Logger, *bytes.Buffer) {
	var buf bytes.Buffer

	return log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel}), &buf
}

func settingsWith(codes ...m.CheckCode) *m.Settings {
	enabled := make(map[m.CheckCode]struct{}, len(codes))
	for _, code := range codes {
		enabled[code] = struct{}{}
	}

	return &m.Settings{Enabled: enabled, LineLength: 100}
}

type workflowFixture struct {
	fs        *adaptermocks.MockSourceFSAdapter
	resolver  *adaptermocks.MockResolver
	checker   *domainmocks.MockChecker
	annotator *domainmocks.MockAnnotator
	formatter *domainmocks.MockFormatter
	logs      *bytes.Buffer
	workflow  domain.Workflow
}

func newWorkflowFixture(t *testing.T, executor domain.Executor, stdin io.Reader, opts ...domain.Option) *workflowFixture {
	t.Helper()

	logger, logs := newTestLogger()

	f := &workflowFixture{
		fs:        adaptermocks.NewMockSourceFSAdapter(t),
		resolver:  adaptermocks.NewMockResolver(t),
		checker:   domainmocks.NewMockChecker(t),
		annotator: domainmocks.NewMockAnnotator(t),
		formatter: domainmocks.NewMockFormatter(t),
		logs:      logs,
	}

	f.workflow = domain.NewWorkflow(f.fs, f.checker, f.annotator, f.formatter, executor, logger, stdin, opts...)

	return f
}

func msgAt(filename string, row int, code m.CheckCode) m.Message {
	return m.Message{
		Kind:        m.CheckKind{Code: code},
		Location:    m.Location{Row: row, Column: 1},
		EndLocation: m.Location{Row: row, Column: 2},
		Filename:    filename,
	}
}

func TestWorkflow_Check_ScenarioUnreadableEmptyAndFindings(t *testing.T) {
	f := newWorkflowFixture(t, domain.NewSequentialExecutor(), nil)

	settings := settingsWith(m.CodeE902, m.CodeE501)
	defaults := settingsWith()

	f.fs.EXPECT().Discover([]m.Path{"."}, m.Overrides{}, defaults).Return([]m.DiscoveryResult{
		{Path: "c.go"}, {Path: "a.go"}, {Path: "b.go"},
	}, f.resolver)
	f.resolver.EXPECT().Resolve(mock.Anything).Return(settings, true)

	f.checker.EXPECT().Lint(m.Path("a.go"), settings, m.CacheReadWrite, m.AutofixNone).
		Return(m.Diagnostics{}, errors.New("open a.go: permission denied"))
	f.checker.EXPECT().Lint(m.Path("b.go"), settings, m.CacheReadWrite, m.AutofixNone).
		Return(m.Diagnostics{}, nil)
	f.checker.EXPECT().Lint(m.Path("c.go"), settings, m.CacheReadWrite, m.AutofixNone).
		Return(m.NewDiagnostics(msgAt("c.go", 9, m.CodeE501), msgAt("c.go", 2, m.CodeE501)), nil)

	got := f.workflow.Check(domain.CheckArgs{
		Files:    []m.Path{"."},
		Defaults: defaults,
		Cache:    m.CacheReadWrite,
		Autofix:  m.AutofixNone,
	})

	require.Len(t, got.Messages, 3)
	assert.Equal(t, m.Message{Kind: m.IOError("open a.go: permission denied"), Filename: "a.go"}, got.Messages[0])
	assert.Equal(t, msgAt("c.go", 2, m.CodeE501), got.Messages[1])
	assert.Equal(t, msgAt("c.go", 9, m.CodeE501), got.Messages[2])
	assert.NotContains(t, f.logs.String(), "Failed to check")
	assert.Contains(t, f.logs.String(), "Checked files in")
}

func TestWorkflow_Check_IOErrorDisabledSkipsFile(t *testing.T) {
	f := newWorkflowFixture(t, domain.NewParallelExecutor(4), nil)

	brokenSettings := settingsWith(m.CodeE501)
	okSettings := settingsWith(m.CodeE902, m.CodeE501)

	f.fs.EXPECT().Discover(mock.Anything, mock.Anything, mock.Anything).Return([]m.DiscoveryResult{
		{Path: "broken1.go"}, {Path: "ok.go"}, {Path: "broken2.go"},
	}, f.resolver)
	f.resolver.EXPECT().Resolve(m.Path("broken1.go")).Return(brokenSettings, true)
	f.resolver.EXPECT().Resolve(m.Path("broken2.go")).Return(brokenSettings, true)
	f.resolver.EXPECT().Resolve(m.Path("ok.go")).Return(okSettings, true)

	f.checker.EXPECT().Lint(m.Path("broken1.go"), mock.Anything, mock.Anything, mock.Anything).
		Return(m.Diagnostics{}, errors.New("read failed"))
	f.checker.EXPECT().Lint(m.Path("broken2.go"), mock.Anything, mock.Anything, mock.Anything).
		Return(m.Diagnostics{}, errors.New("read failed"))
	f.checker.EXPECT().Lint(m.Path("ok.go"), mock.Anything, mock.Anything, mock.Anything).
		Return(m.NewDiagnostics(msgAt("ok.go", 1, m.CodeE501)), nil)

	got := f.workflow.Check(domain.CheckArgs{Files: []m.Path{"."}, Defaults: settingsWith()})

	assert.Equal(t, []m.Message{msgAt("ok.go", 1, m.CodeE501)}, got.Messages)
	assert.Contains(t, f.logs.String(), "Failed to check broken1.go: read failed")
	assert.Contains(t, f.logs.String(), "Failed to check broken2.go: read failed")
}

func TestWorkflow_Check_DiscoveryFailures(t *testing.T) {
	f := newWorkflowFixture(t, domain.NewSequentialExecutor(), nil)

	defaults := settingsWith(m.CodeE902)

	f.fs.EXPECT().Discover(mock.Anything, mock.Anything, mock.Anything).Return([]m.DiscoveryResult{
		{Err: errors.New("lintel.toml: failed to parse TOML")},
		{Path: "missing.go", Err: errors.New("stat missing.go: no such file or directory")},
	}, f.resolver)
	f.resolver.EXPECT().Resolve(m.Path("missing.go")).Return(nil, false)

	got := f.workflow.Check(domain.CheckArgs{Files: []m.Path{"missing.go"}, Defaults: defaults})

	assert.Equal(t, []m.Message{{
		Kind:     m.IOError("stat missing.go: no such file or directory"),
		Filename: "missing.go",
	}}, got.Messages)
	assert.Contains(t, f.logs.String(), "lintel.toml: failed to parse TOML")
}

func TestWorkflow_Check_PanicIsIsolated(t *testing.T) {
	f := newWorkflowFixture(t, domain.NewParallelExecutor(2), nil)

	settings := settingsWith(m.CodeE902, m.CodeW291)

	f.fs.EXPECT().Discover(mock.Anything, mock.Anything, mock.Anything).Return([]m.DiscoveryResult{
		{Path: "boom.go"}, {Path: "fine.go"},
	}, nil)

	f.checker.EXPECT().Lint(m.Path("boom.go"), settings, mock.Anything, mock.Anything).
		RunAndReturn(func(m.Path, *m.Settings, m.CachePolicy, m.AutofixMode) (m.Diagnostics, error) {
			panic("checker exploded")
		})
	f.checker.EXPECT().Lint(m.Path("fine.go"), settings, mock.Anything, mock.Anything).
		Return(m.NewDiagnostics(msgAt("fine.go", 3, m.CodeW291)), nil)

	got := f.workflow.Check(domain.CheckArgs{Defaults: settings})

	require.Len(t, got.Messages, 2)
	assert.Equal(t, m.CodeE902, got.Messages[0].Kind.Code)
	assert.Equal(t, "boom.go", got.Messages[0].Filename)
	assert.Contains(t, got.Messages[0].Kind.Detail, "checker exploded")
	assert.Equal(t, "fine.go", got.Messages[1].Filename)
}

func TestWorkflow_Check_SameOutputSequentialAndParallel(t *testing.T) {
	const files = 64

	entries := make([]m.DiscoveryResult, 0, files)
	for i := range files {
		entries = append(entries, m.DiscoveryResult{Path: m.Path(fmt.Sprintf("f%02d.go", (i*37)%files))})
	}

	settings := settingsWith(m.CodeE902, m.CodeE501, m.CodeW291)

	lint := func(path m.Path, _ *m.Settings, _ m.CachePolicy, _ m.AutofixMode) (m.Diagnostics, error) {
		if strings.HasSuffix(string(path), "7.go") {
			return m.Diagnostics{}, errors.New("unreadable")
		}

		return m.Diagnostics{
			Messages: []m.Message{
				msgAt(string(path), 5, m.CodeW291),
				msgAt(string(path), 1, m.CodeE501),
				msgAt(string(path), 5, m.CodeE501),
			},
			Fixed: 1,
		}, nil
	}

	run := func(executor domain.Executor) m.Diagnostics {
		f := newWorkflowFixture(t, executor, nil)
		f.fs.EXPECT().Discover(mock.Anything, mock.Anything, mock.Anything).Return(entries, nil)
		f.checker.EXPECT().Lint(mock.Anything, mock.Anything, mock.Anything, mock.Anything).RunAndReturn(lint)

		return f.workflow.Check(domain.CheckArgs{Defaults: settings})
	}

	sequential := run(domain.NewSequentialExecutor())
	parallel := run(domain.NewParallelExecutor(8))
	again := run(domain.NewExecutor(0))

	assert.Equal(t, sequential, parallel)
	assert.Equal(t, sequential, again)
	assert.Len(t, sequential.Messages, 6+58*3)
	assert.Equal(t, 58, sequential.Fixed)
}

func TestWorkflow_Check_NotifiesObserver(t *testing.T) {
	observer := domainmocks.NewMockObserver(t)
	f := newWorkflowFixture(t, domain.NewParallelExecutor(2), nil, domain.WithObserver(observer))

	f.fs.EXPECT().Discover(mock.Anything, mock.Anything, mock.Anything).Return([]m.DiscoveryResult{
		{Path: "a.go"}, {Path: "b.go"},
	}, nil)
	f.checker.EXPECT().Lint(mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(m.Diagnostics{}, nil)

	observer.EXPECT().FilesDiscovered(2).Return().Once()
	observer.EXPECT().FileProcessed(m.Path("a.go")).Return().Once()
	observer.EXPECT().FileProcessed(m.Path("b.go")).Return().Once()

	got := f.workflow.Check(domain.CheckArgs{Defaults: settingsWith()})
	assert.Empty(t, got.Messages)
}

func TestWorkflow_CheckStdin(t *testing.T) {
	t.Run("returns sorted diagnostics for the synthetic file", func(t *testing.T) {
		f := newWorkflowFixture(t, nil, strings.NewReader("package main\n"))
		settings := settingsWith(m.CodeE501)

		f.checker.EXPECT().LintText("-", []byte("package main\n"), settings, m.AutofixGenerate).
			Return(m.NewDiagnostics(msgAt("-", 4, m.CodeE501), msgAt("-", 1, m.CodeE501)), nil)

		got, err := f.workflow.CheckStdin(domain.StdinArgs{Settings: settings, Filename: "-", Autofix: m.AutofixGenerate})
		require.NoError(t, err)
		assert.Equal(t, []m.Message{msgAt("-", 1, m.CodeE501), msgAt("-", 4, m.CodeE501)}, got.Messages)
	})

	t.Run("propagates checker failures", func(t *testing.T) {
		f := newWorkflowFixture(t, nil, strings.NewReader("x"))
		checkErr := errors.New("checker failed")

		f.checker.EXPECT().LintText("stdin.go", []byte("x"), mock.Anything, m.AutofixNone).Return(m.Diagnostics{}, checkErr)

		_, err := f.workflow.CheckStdin(domain.StdinArgs{Settings: settingsWith(), Filename: "stdin.go"})
		assert.ErrorIs(t, err, checkErr)
		assert.Empty(t, f.logs.String())
	})

	t.Run("propagates read failures", func(t *testing.T) {
		logger, _ := newTestLogger()
		readErr := errors.New("stdin closed")
		checker := domainmocks.NewMockChecker(t)

		wf := domain.NewWorkflow(nil, checker, nil, nil, nil, logger, iotest.ErrReader(readErr))

		_, err := wf.CheckStdin(domain.StdinArgs{Settings: settingsWith(), Filename: "-"})
		assert.ErrorIs(t, err, readErr)
	})

	t.Run("fails without an input", func(t *testing.T) {
		f := newWorkflowFixture(t, nil, nil)

		_, err := f.workflow.CheckStdin(domain.StdinArgs{Settings: settingsWith(), Filename: "-"})
		assert.Error(t, err)
	})
}

func TestWorkflow_AddSuppressions(t *testing.T) {
	f := newWorkflowFixture(t, domain.NewParallelExecutor(3), nil)
	settings := settingsWith(m.CodeE501)

	f.fs.EXPECT().Discover(mock.Anything, mock.Anything, mock.Anything).Return([]m.DiscoveryResult{
		{Path: "a.go"}, {Path: "b.go"}, {Path: "c.go"}, {Err: errors.New("walk failed")},
	}, f.resolver)
	f.resolver.EXPECT().Resolve(mock.Anything).Return(settings, true)

	f.annotator.EXPECT().AddSuppressions(m.Path("a.go"), settings).Return(2, nil)
	f.annotator.EXPECT().AddSuppressions(m.Path("b.go"), settings).Return(0, errors.New("write denied"))
	f.annotator.EXPECT().AddSuppressions(m.Path("c.go"), settings).Return(3, nil)

	got := f.workflow.AddSuppressions(domain.FilesArgs{Files: []m.Path{"."}, Defaults: settingsWith()})

	assert.Equal(t, 5, got)
	assert.Contains(t, f.logs.String(), "Failed to add noqa to b.go: write denied")
	assert.Contains(t, f.logs.String(), "walk failed")
	assert.Contains(t, f.logs.String(), "Added noqa to files in")
}

func TestWorkflow_AutoFormat(t *testing.T) {
	f := newWorkflowFixture(t, domain.NewParallelExecutor(3), nil)
	defaults := settingsWith()

	f.fs.EXPECT().Discover(mock.Anything, mock.Anything, mock.Anything).Return([]m.DiscoveryResult{
		{Path: "a.go"}, {Path: "bad.go"}, {Path: "c.go"}, {Path: "gone.go", Err: errors.New("vanished")},
	}, nil)

	f.formatter.EXPECT().Format(m.Path("a.go"), defaults).Return(nil)
	f.formatter.EXPECT().Format(m.Path("bad.go"), defaults).Return(errors.New("expected declaration"))
	f.formatter.EXPECT().Format(m.Path("c.go"), defaults).Return(nil)

	got := f.workflow.AutoFormat(domain.FilesArgs{Defaults: defaults})

	assert.Equal(t, 2, got)
	assert.Contains(t, f.logs.String(), "Failed to autoformat bad.go: expected declaration")
	assert.Contains(t, f.logs.String(), "Failed to discover gone.go: vanished")
}

func TestWorkflow_Explain(t *testing.T) {
	f := newWorkflowFixture(t, nil, nil)

	text, err := f.workflow.Explain(m.CodeE501, m.FormatText)
	require.NoError(t, err)
	assert.Equal(t, "E501 (Errors): Line too long\n", text)

	grouped, err := f.workflow.Explain(m.CodeE501, m.FormatGrouped)
	require.NoError(t, err)
	assert.Equal(t, text, grouped)

	structured, err := f.workflow.Explain(m.CodeE501, m.FormatJSON)
	require.NoError(t, err)

	var decoded domain.Explanation
	require.NoError(t, json.Unmarshal([]byte(structured), &decoded))
	assert.Equal(t, fmt.Sprintf("%s (%s): %s\n", decoded.Code, decoded.Category, decoded.Summary), text)

	for _, format := range []m.SerializationFormat{m.FormatJUnit, m.FormatGitHub} {
		_, err := f.workflow.Explain(m.CodeE501, format)
		assert.ErrorIs(t, err, domain.ErrFormatUnsupported)
	}

	_, err = f.workflow.Explain(m.CheckCode("X999"), m.FormatText)
	assert.ErrorIs(t, err, m.ErrUnknownCode)
}

func TestWorkflow_ListFiles(t *testing.T) {
	f := newWorkflowFixture(t, nil, nil)

	f.fs.EXPECT().Discover([]m.Path{"."}, m.Overrides{}, mock.Anything).Return([]m.DiscoveryResult{
		{Path: "z.go"}, {Err: errors.New("bad config")}, {Path: "a.go"}, {Path: "m/x.go", Err: errors.New("denied")},
	}, nil)

	got := f.workflow.ListFiles(domain.FilesArgs{Files: []m.Path{"."}})

	assert.Equal(t, []m.Path{"a.go", "z.go"}, got)
}

func TestWorkflow_ResolveSettings(t *testing.T) {
	t.Run("first file in path order", func(t *testing.T) {
		f := newWorkflowFixture(t, nil, nil)
		scoped := settingsWith(m.CodeW291)

		f.fs.EXPECT().Discover(mock.Anything, mock.Anything, mock.Anything).Return([]m.DiscoveryResult{
			{Path: "z.go"}, {Path: "b.go"},
		}, f.resolver)
		f.resolver.EXPECT().Resolve(m.Path("b.go")).Return(scoped, true)

		path, settings, err := f.workflow.ResolveSettings(domain.FilesArgs{Defaults: settingsWith()})
		require.NoError(t, err)
		assert.Equal(t, m.Path("b.go"), path)
		assert.Same(t, scoped, settings)
	})

	t.Run("no files", func(t *testing.T) {
		f := newWorkflowFixture(t, nil, nil)

		f.fs.EXPECT().Discover(mock.Anything, mock.Anything, mock.Anything).Return(nil, nil)

		_, _, err := f.workflow.ResolveSettings(domain.FilesArgs{})
		assert.ErrorIs(t, err, domain.ErrNoFiles)
	})
}

func TestWorkflow_Check_ConcurrentResolverLookups(t *testing.T) {
	f := newWorkflowFixture(t, domain.NewParallelExecutor(8), nil)

	entries := make([]m.DiscoveryResult, 32)
	for i := range entries {
		entries[i] = m.DiscoveryResult{Path: m.Path(fmt.Sprintf("p%02d.go", i))}
	}

	var lookups atomic.Int32

	f.fs.EXPECT().Discover(mock.Anything, mock.Anything, mock.Anything).Return(entries, f.resolver)
	f.resolver.EXPECT().Resolve(mock.Anything).RunAndReturn(func(m.Path) (*m.Settings, bool) {
		lookups.Add(1)
		return nil, false
	})
	f.checker.EXPECT().Lint(mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(m.Diagnostics{}, nil)

	f.workflow.Check(domain.CheckArgs{Defaults: settingsWith()})

	assert.Equal(t, int32(32), lookups.Load())
}
