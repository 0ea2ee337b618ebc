package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"

	m "github.com/mouse-blink/lintel/internal/model"
)

func fixMessage(content string, startRow, startCol, endRow, endCol int) m.Message {
	return m.Message{
		Kind: m.CheckKind{Code: m.CodeW291},
		Fix: &m.Fix{
			Content:     content,
			Location:    m.Location{Row: startRow, Column: startCol},
			EndLocation: m.Location{Row: endRow, Column: endCol},
		},
	}
}

func TestApplyFixes(t *testing.T) {
	content := []byte("abc  \ndef\nghi")

	t.Run("applies in location order", func(t *testing.T) {
		messages := []m.Message{
			fixMessage("\n", 3, 4, 3, 4),
			{Kind: m.CheckKind{Code: m.CodeE501}},
			fixMessage("", 1, 4, 1, 6),
		}

		out, applied := applyFixes(content, messages)

		assert.Equal(t, "abc\ndef\nghi\n", string(out))
		assert.Equal(t, []bool{true, false, true}, applied)
	})

	t.Run("skips overlapping fixes", func(t *testing.T) {
		messages := []m.Message{
			fixMessage("X", 2, 1, 2, 3),
			fixMessage("Y", 2, 2, 2, 4),
		}

		out, applied := applyFixes(content, messages)

		assert.Equal(t, "abc  \nXf\nghi", string(out))
		assert.Equal(t, []bool{true, false}, applied)
	})

	t.Run("skips out of range fixes", func(t *testing.T) {
		out, applied := applyFixes(content, []m.Message{fixMessage("Z", 9, 1, 9, 2)})

		assert.Equal(t, string(content), string(out))
		assert.Equal(t, []bool{false}, applied)
	})

	t.Run("nothing to fix", func(t *testing.T) {
		out, applied := applyFixes(content, nil)

		assert.Equal(t, content, out)
		assert.Empty(t, applied)
	})
}

func TestOffsetOf(t *testing.T) {
	starts := computeLineStarts([]byte("ab\ncd\n"))
	assert.Equal(t, []int{0, 3, 6}, starts)

	offset, ok := offsetOf(m.Location{Row: 2, Column: 2}, starts, 6)
	assert.True(t, ok)
	assert.Equal(t, 4, offset)

	_, ok = offsetOf(m.Location{}, starts, 6)
	assert.False(t, ok)
}
