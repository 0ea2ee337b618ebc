package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mouse-blink/lintel/internal/adapter"
	m "github.com/mouse-blink/lintel/internal/model"
)

func TestParseNoqaDirective(t *testing.T) {
	cases := []struct {
		line  string
		found bool
		all   bool
		codes []m.CheckCode
	}{
		{line: "x := 1", found: false},
		{line: "x := 1 //noqa", found: true, all: true},
		{line: "x := 1 // NOQA", found: true, all: true},
		{line: "x := 1 //noqa:E501", found: true, codes: []m.CheckCode{"E501"}},
		{line: "x := 1 // noqa: w291 , E501", found: true, codes: []m.CheckCode{"E501", "W291"}},
	}

	for _, tc := range cases {
		t.Run(tc.line, func(t *testing.T) {
			d, ok := parseNoqaDirective(tc.line)
			require.Equal(t, tc.found, ok)

			if !ok {
				return
			}

			assert.Equal(t, tc.all, d.rule.all)

			if !tc.all {
				assert.Equal(t, tc.codes, d.sortedCodes())
			}
		})
	}
}

func TestNoqaIndex_Suppressed(t *testing.T) {
	idx := buildNoqaIndex([]string{
		"package p",
		"var a = 1 //noqa",
		"var b = 2 //noqa:E501",
	})

	at := func(row int, code m.CheckCode) m.Message {
		return m.Message{Kind: m.CheckKind{Code: code}, Location: m.Location{Row: row, Column: 1}}
	}

	assert.False(t, idx.suppressed(at(1, m.CodeE501)))
	assert.True(t, idx.suppressed(at(2, m.CodeW291)))
	assert.True(t, idx.suppressed(at(3, m.CodeE501)))
	assert.False(t, idx.suppressed(at(3, m.CodeW291)))
	assert.False(t, idx.suppressed(m.Message{Kind: m.IOError("denied")}))
}

func TestWithCodes(t *testing.T) {
	cases := map[string]struct {
		line  string
		codes []m.CheckCode
		want  string
	}{
		"appends a directive": {
			line:  "x := 1",
			codes: []m.CheckCode{m.CodeE501, m.CodeW291},
			want:  "x := 1  //noqa:E501,W291",
		},
		"merges into an existing directive": {
			line:  "x := 1 // noqa: W291 // trailing",
			codes: []m.CheckCode{m.CodeE501},
			want:  "x := 1 //noqa:E501,W291 // trailing",
		},
		"blanket directive is kept": {
			line:  "x := 1 //noqa",
			codes: []m.CheckCode{m.CodeE501},
			want:  "x := 1 //noqa",
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			d, found := parseNoqaDirective(tc.line)
			assert.Equal(t, tc.want, withCodes(tc.line, d, found, tc.codes))
		})
	}
}

func TestNoqaFromComments(t *testing.T) {
	lines := []string{
		"package p",
		"",
		`var s = "//noqa" `,
		"var t = 1 /* x */ // noqa:E501",
		"var u = `//noqa` //noqa:W291",
	}
	content := []byte(strings.Join(lines, "\n") + "\n")

	fset, file, err := adapter.NewLocalGoFileAdapter().Parse("p.go", content)
	require.NoError(t, err)

	idx := noqaIndexFor(lines, fset, file, nil)

	require.NotContains(t, idx, 3)
	require.Contains(t, idx, 4)
	assert.Equal(t, "// noqa:E501", lines[3][idx[4].start:idx[4].end])
	assert.Equal(t, "//noqa:W291", lines[4][idx[5].start:idx[5].end])
	assert.False(t, idx[5].rule.all)

	fallback := noqaIndexFor(lines, fset, file, assert.AnError)
	assert.Contains(t, fallback, 3)

	d, found := idx[5]
	assert.Equal(t, "var u = `//noqa` //noqa:E501,W291", withCodes(lines[4], d, found, []m.CheckCode{m.CodeE501}))
	assert.Equal(t, `var s = "//noqa"   //noqa:W291`, withCodes(lines[2], idx[3], false, []m.CheckCode{m.CodeW291}))
}
