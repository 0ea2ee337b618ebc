package domain

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mouse-blink/lintel/internal/adapter"
	m "github.com/mouse-blink/lintel/internal/model"
)

func newLocalAnnotator() Annotator {
	return NewAnnotator(adapter.NewLocalSourceFSAdapter(), adapter.NewLocalGoFileAdapter())
}

func TestAnnotator_AddSuppressions(t *testing.T) {
	dir := copyFixture(t, "violations")
	path := m.Path(filepath.Join(dir, "main.go"))
	settings := loadSettings(t, dir)

	count, err := newLocalAnnotator().AddSuppressions(path, settings)
	require.NoError(t, err)
	assert.Equal(t, 5, count)

	content, err := os.ReadFile(string(path))
	require.NoError(t, err)

	lines := strings.Split(string(content), "\n")
	assert.Equal(t, "package main  //noqa:D100", lines[0])
	assert.Equal(t, "\tif flag == true {  //noqa:B001", lines[5])
	assert.Equal(t, "\t\treturn flag != false  //noqa:B001", lines[6])
	assert.True(t, strings.HasSuffix(lines[13], "limit\")    //noqa:E501,W291"), lines[13])
	assert.Equal(t, "}  //noqa:W292", lines[14])

	remaining, err := newLocalChecker().Lint(path, settings, m.CacheNone, m.AutofixNone)
	require.NoError(t, err)
	assert.Empty(t, remaining.Messages)

	again, err := newLocalAnnotator().AddSuppressions(path, settings)
	require.NoError(t, err)
	assert.Zero(t, again)
}

func TestAnnotator_AddSuppressions_ExtendsExistingDirective(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a.go")
	require.NoError(t, os.WriteFile(path, []byte("package a\r\n\r\nvar x = 1 //noqa:E501  \r\nvar y = 2 \r\n"), 0o644))

	count, err := newLocalAnnotator().AddSuppressions(m.Path(path), defaultSettings(t))
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "package a\r\n\r\nvar x = 1 //noqa:E501,W291  \r\nvar y = 2   //noqa:W291\r\n", string(content))
}

func TestAnnotator_AddSuppressions_SkipsMultilineLiterals(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a.go")
	src := "package a\n\nvar s = `first   \nsecond`\n"
	require.NoError(t, os.WriteFile(path, []byte(src), 0o644))

	count, err := newLocalAnnotator().AddSuppressions(m.Path(path), defaultSettings(t))
	require.NoError(t, err)
	assert.Zero(t, count)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, src, string(content))
}

func TestAnnotator_AddSuppressions_ReadError(t *testing.T) {
	_, err := newLocalAnnotator().AddSuppressions(m.Path(filepath.Join(t.TempDir(), "missing.go")), defaultSettings(t))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
