package domain

import (
	"slices"

	m "github.com/mouse-blink/lintel/internal/model"
)

// applyFixes applies the fixes of messages to content in location order.
// A fix overlapping an earlier one is skipped. It returns the new content
// and, per message index, whether its fix was applied.
func applyFixes(content []byte, messages []m.Message) ([]byte, []bool) {
	applied := make([]bool, len(messages))

	order := make([]int, 0, len(messages))

	for i, msg := range messages {
		if msg.Fix != nil {
			order = append(order, i)
		}
	}

	if len(order) == 0 {
		return content, applied
	}

	slices.SortStableFunc(order, func(a, b int) int {
		fa, fb := messages[a].Fix, messages[b].Fix
		if c := fa.Location.Compare(fb.Location); c != 0 {
			return c
		}

		return fa.EndLocation.Compare(fb.EndLocation)
	})

	lineStarts := computeLineStarts(content)
	out := make([]byte, 0, len(content))
	last := 0

	for _, i := range order {
		fix := messages[i].Fix

		start, ok := offsetOf(fix.Location, lineStarts, len(content))
		if !ok {
			continue
		}

		end, ok := offsetOf(fix.EndLocation, lineStarts, len(content))
		if !ok || end < start || start < last {
			continue
		}

		out = append(out, content[last:start]...)
		out = append(out, fix.Content...)
		last = end
		applied[i] = true
	}

	out = append(out, content[last:]...)

	return out, applied
}

func computeLineStarts(content []byte) []int {
	starts := []int{0}

	for i, b := range content {
		if b == '\n' {
			starts = append(starts, i+1)
		}
	}

	return starts
}

// offsetOf converts a 1-based location to a byte offset into content.
func offsetOf(loc m.Location, lineStarts []int, size int) (int, bool) {
	if loc.Row <= 0 || loc.Row > len(lineStarts) || loc.Column <= 0 {
		return 0, false
	}

	offset := lineStarts[loc.Row-1] + loc.Column - 1
	if offset > size {
		return 0, false
	}

	return offset, true
}
