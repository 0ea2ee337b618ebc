package rules

import (
	"strings"
	"unicode/utf8"

	m "github.com/mouse-blink/lintel/internal/model"
)

// CheckLineLength reports lines longer than the configured limit, counted in
// characters. Lines whose last word is a URL are exempt.
func CheckLineLength(src *Source) []m.Message {
	limit := src.Settings.LineLength
	if limit <= 0 {
		return nil
	}

	var messages []m.Message

	for i, line := range src.Lines {
		length := utf8.RuneCountInString(line)
		if length <= limit || endsWithURL(line) {
			continue
		}

		row := i + 1
		messages = append(messages, m.Message{
			Kind:        m.LineTooLong(length, limit),
			Location:    m.Location{Row: row, Column: byteColumn(line, limit) + 1},
			EndLocation: m.Location{Row: row, Column: len(line) + 1},
			Filename:    src.Filename,
		})
	}

	return messages
}

// CheckTrailingWhitespace reports and removes spaces and tabs at line ends.
// Rows continued by a multi-line string literal are skipped: their trailing
// whitespace is part of the literal.
func CheckTrailingWhitespace(src *Source) []m.Message {
	var messages []m.Message

	for i, line := range src.Lines {
		if src.StringRows[i+1] {
			continue
		}

		trimmed := strings.TrimRight(line, " \t")
		if len(trimmed) == len(line) {
			continue
		}

		start := m.Location{Row: i + 1, Column: len(trimmed) + 1}
		end := m.Location{Row: i + 1, Column: len(line) + 1}

		messages = append(messages, m.Message{
			Kind:        m.TrailingWhitespace(),
			Location:    start,
			EndLocation: end,
			Fix:         &m.Fix{Location: start, EndLocation: end},
			Filename:    src.Filename,
		})
	}

	return messages
}

// CheckMissingNewline reports non-empty content without a final newline.
func CheckMissingNewline(src *Source) []m.Message {
	if len(src.Content) == 0 || src.Content[len(src.Content)-1] == '\n' {
		return nil
	}

	row := len(src.Lines)
	loc := m.Location{Row: row, Column: len(src.Lines[row-1]) + 1}

	return []m.Message{{
		Kind:        m.MissingNewline(),
		Location:    loc,
		EndLocation: loc,
		Fix:         &m.Fix{Content: "\n", Location: loc, EndLocation: loc},
		Filename:    src.Filename,
	}}
}

// byteColumn returns the byte offset of the rune at index runes.
func byteColumn(line string, runes int) int {
	count := 0

	for offset := range line {
		if count == runes {
			return offset
		}

		count++
	}

	return len(line)
}

func endsWithURL(line string) bool {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false
	}

	return strings.Contains(fields[len(fields)-1], "://")
}
