package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"

	m "github.com/mouse-blink/lintel/internal/model"
)

func TestSplitLines(t *testing.T) {
	cases := map[string][]string{
		"":           nil,
		"\n":         {""},
		"a\nb\n":     {"a", "b"},
		"a\r\nb":     {"a", "b"},
		"a\n\nb\n\n": {"a", "", "b", ""},
	}

	for input, want := range cases {
		assert.Equal(t, want, SplitLines([]byte(input)), "%q", input)
	}
}

func TestCheckLineLength(t *testing.T) {
	src := NewSource("a.go", []byte("short\nthis line is too long\nsee https://example.com/very/long/url\nhéllo wörld!!\n"),
		nil, nil, &m.Settings{LineLength: 10})

	got := CheckLineLength(src)

	assert.Equal(t, []m.Message{
		{
			Kind:        m.LineTooLong(21, 10),
			Location:    m.Location{Row: 2, Column: 11},
			EndLocation: m.Location{Row: 2, Column: 22},
			Filename:    "a.go",
		},
		{
			Kind:        m.LineTooLong(13, 10),
			Location:    m.Location{Row: 4, Column: 13},
			EndLocation: m.Location{Row: 4, Column: 16},
			Filename:    "a.go",
		},
	}, got)

	assert.Empty(t, CheckLineLength(NewSource("a.go", []byte("anything"), nil, nil, &m.Settings{})))
}

func TestCheckTrailingWhitespace(t *testing.T) {
	src := NewSource("a.go", []byte("a \t\nb\r\nc  "), nil, nil, &m.Settings{})

	got := CheckTrailingWhitespace(src)

	first := m.Location{Row: 1, Column: 2}
	firstEnd := m.Location{Row: 1, Column: 4}
	third := m.Location{Row: 3, Column: 2}
	thirdEnd := m.Location{Row: 3, Column: 4}

	assert.Equal(t, []m.Message{
		{
			Kind:        m.TrailingWhitespace(),
			Location:    first,
			EndLocation: firstEnd,
			Fix:         &m.Fix{Location: first, EndLocation: firstEnd},
			Filename:    "a.go",
		},
		{
			Kind:        m.TrailingWhitespace(),
			Location:    third,
			EndLocation: thirdEnd,
			Fix:         &m.Fix{Location: third, EndLocation: thirdEnd},
			Filename:    "a.go",
		},
	}, got)
}

func TestCheckMissingNewline(t *testing.T) {
	assert.Empty(t, CheckMissingNewline(NewSource("a.go", nil, nil, nil, &m.Settings{})))
	assert.Empty(t, CheckMissingNewline(NewSource("a.go", []byte("package a\n"), nil, nil, &m.Settings{})))

	got := CheckMissingNewline(NewSource("a.go", []byte("package a\n\nvar x = 1"), nil, nil, &m.Settings{}))

	loc := m.Location{Row: 3, Column: 10}
	assert.Equal(t, []m.Message{{
		Kind:        m.MissingNewline(),
		Location:    loc,
		EndLocation: loc,
		Fix:         &m.Fix{Content: "\n", Location: loc, EndLocation: loc},
		Filename:    "a.go",
	}}, got)
}
