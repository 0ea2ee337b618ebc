package model

import (
	"cmp"
	"strings"
)

// Location is a 1-based row and column. The zero value means "unknown" and
// is used for findings that are not tied to a position, such as I/O errors.
type Location struct {
	Row    int
	Column int
}

// Compare orders locations by row, then column.
func (l Location) Compare(other Location) int {
	if c := cmp.Compare(l.Row, other.Row); c != 0 {
		return c
	}

	return cmp.Compare(l.Column, other.Column)
}

// Fix replaces the text between Location and EndLocation with Content.
type Fix struct {
	Content     string
	Location    Location
	EndLocation Location
}

// Message is a single diagnostic attributed to exactly one file.
type Message struct {
	Kind        CheckKind
	Location    Location
	EndLocation Location
	Fix         *Fix
	Filename    string
	Source      *Snippet
}

// CompareMessages is the total order used for final output: filename, start,
// end, code, detail, fix, then source snippet.
func CompareMessages(a, b Message) int {
	if c := strings.Compare(a.Filename, b.Filename); c != 0 {
		return c
	}

	if c := a.Location.Compare(b.Location); c != 0 {
		return c
	}

	if c := a.EndLocation.Compare(b.EndLocation); c != 0 {
		return c
	}

	if c := strings.Compare(string(a.Kind.Code), string(b.Kind.Code)); c != 0 {
		return c
	}

	if c := strings.Compare(a.Kind.Detail, b.Kind.Detail); c != 0 {
		return c
	}

	if c := compareFixes(a.Fix, b.Fix); c != 0 {
		return c
	}

	return compareSnippets(a.Source, b.Source)
}

func compareFixes(a, b *Fix) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return -1
	case b == nil:
		return 1
	}

	if c := a.Location.Compare(b.Location); c != 0 {
		return c
	}

	if c := a.EndLocation.Compare(b.EndLocation); c != 0 {
		return c
	}

	return strings.Compare(a.Content, b.Content)
}

func compareSnippets(a, b *Snippet) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return -1
	case b == nil:
		return 1
	}

	return strings.Compare(a.Line, b.Line)
}

// Diagnostics is the aggregate result of checking one or more files.
// The zero value is the identity for Combine.
type Diagnostics struct {
	Messages []Message
	Fixed    int
}

// NewDiagnostics wraps messages in a Diagnostics value.
func NewDiagnostics(messages ...Message) Diagnostics {
	return Diagnostics{Messages: messages}
}

// Combine returns the concatenation of both message sequences and the sum of
// their counters. Neither operand is modified.
func (d Diagnostics) Combine(other Diagnostics) Diagnostics {
	messages := make([]Message, 0, len(d.Messages)+len(other.Messages))
	messages = append(messages, d.Messages...)
	messages = append(messages, other.Messages...)

	return Diagnostics{
		Messages: messages,
		Fixed:    d.Fixed + other.Fixed,
	}
}

// Len returns the number of messages.
func (d Diagnostics) Len() int {
	return len(d.Messages)
}
