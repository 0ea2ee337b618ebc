package domain

import (
	"slices"

	m "github.com/mouse-blink/lintel/internal/model"
)

// CombineDiagnostics merges two partial results. It is associative and,
// up to message order, commutative; the zero Diagnostics is its identity.
func CombineDiagnostics(a, b m.Diagnostics) m.Diagnostics {
	return a.Combine(b)
}

// ReduceDiagnostics is the left fold of CombineDiagnostics over parts,
// computed with a single allocation.
func ReduceDiagnostics(parts []m.Diagnostics) m.Diagnostics {
	size := 0
	for _, part := range parts {
		size += len(part.Messages)
	}

	total := m.Diagnostics{Messages: make([]m.Message, 0, size)}

	for _, part := range parts {
		total.Messages = append(total.Messages, part.Messages...)
		total.Fixed += part.Fixed
	}

	return total
}

// SortMessages puts messages in their final output order. Messages are never
// deduplicated.
func SortMessages(messages []m.Message) {
	slices.SortFunc(messages, m.CompareMessages)
}
