// Package model defines the data structures shared by the lint workflows.
package model

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrUnknownCode is returned when a string does not name a registered check code.
var ErrUnknownCode = errors.New("unknown check code")

// CheckCode identifies a rule. Codes double as configuration toggles.
type CheckCode string

// Registered check codes.
const (
	CodeE501 CheckCode = "E501"
	CodeE902 CheckCode = "E902"
	CodeE999 CheckCode = "E999"
	CodeW291 CheckCode = "W291"
	CodeW292 CheckCode = "W292"
	CodeB001 CheckCode = "B001"
	CodeD100 CheckCode = "D100"
)

// Category groups check codes by their leading letter.
type Category string

// Available categories.
const (
	CategoryErrors        Category = "E"
	CategoryWarnings      Category = "W"
	CategoryBugRisk       Category = "B"
	CategoryDocumentation Category = "D"
)

// Title returns the human readable name of the category.
func (c Category) Title() string {
	switch c {
	case CategoryErrors:
		return "Errors"
	case CategoryWarnings:
		return "Warnings"
	case CategoryBugRisk:
		return "Bug risk"
	case CategoryDocumentation:
		return "Documentation"
	}

	return "Unknown"
}

type checkInfo struct {
	name    string
	summary string
	fixable bool
}

var registry = map[CheckCode]checkInfo{
	CodeE501: {name: "line-too-long", summary: "Line too long"},
	CodeE902: {name: "io-error", summary: "I/O error while reading the file"},
	CodeE999: {name: "syntax-error", summary: "Source could not be parsed"},
	CodeW291: {name: "trailing-whitespace", summary: "Trailing whitespace", fixable: true},
	CodeW292: {name: "missing-newline-at-end-of-file", summary: "No newline at end of file", fixable: true},
	CodeB001: {name: "bool-literal-comparison", summary: "Comparison to a boolean literal", fixable: true},
	CodeD100: {name: "missing-package-doc", summary: "Missing package doc comment"},
}

// AllCodes returns every registered code in ascending order.
func AllCodes() []CheckCode {
	codes := make([]CheckCode, 0, len(registry))
	for code := range registry {
		codes = append(codes, code)
	}

	sort.Slice(codes, func(i, j int) bool { return codes[i] < codes[j] })

	return codes
}

// ParseCheckCode validates s against the registry.
func ParseCheckCode(s string) (CheckCode, error) {
	code := CheckCode(strings.ToUpper(strings.TrimSpace(s)))
	if _, ok := registry[code]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownCode, s)
	}

	return code, nil
}

// SelectCodes returns all registered codes starting with selector. An empty
// result means the selector matches nothing.
func SelectCodes(selector string) []CheckCode {
	selector = strings.ToUpper(strings.TrimSpace(selector))
	if selector == "" {
		return nil
	}

	var codes []CheckCode

	for _, code := range AllCodes() {
		if strings.HasPrefix(string(code), selector) {
			codes = append(codes, code)
		}
	}

	return codes
}

// Category returns the category the code belongs to.
func (c CheckCode) Category() Category {
	if c == "" {
		return ""
	}

	return Category(c[:1])
}

// Name returns the kebab-case rule name.
func (c CheckCode) Name() string {
	return registry[c].name
}

// Summary returns a one-line description of the rule.
func (c CheckCode) Summary() string {
	return registry[c].summary
}

// Fixable reports whether the rule can produce fixes.
func (c CheckCode) Fixable() bool {
	return registry[c].fixable
}

// CheckKind is the tagged payload of a message: the code that produced it and
// the rendered detail text.
type CheckKind struct {
	Code   CheckCode
	Detail string
}

// Body renders the message text.
func (k CheckKind) Body() string {
	if k.Detail == "" {
		return k.Code.Summary()
	}

	return k.Detail
}

// IOError builds the kind used for files that could not be read.
func IOError(message string) CheckKind {
	return CheckKind{Code: CodeE902, Detail: message}
}

// SyntaxError builds the kind used for unparsable files.
func SyntaxError(message string) CheckKind {
	return CheckKind{Code: CodeE999, Detail: "SyntaxError: " + message}
}

// LineTooLong builds the kind for E501.
func LineTooLong(length, limit int) CheckKind {
	return CheckKind{Code: CodeE501, Detail: fmt.Sprintf("Line too long (%d > %d characters)", length, limit)}
}

// TrailingWhitespace builds the kind for W291.
func TrailingWhitespace() CheckKind {
	return CheckKind{Code: CodeW291, Detail: "Trailing whitespace"}
}

// MissingNewline builds the kind for W292.
func MissingNewline() CheckKind {
	return CheckKind{Code: CodeW292, Detail: "No newline at end of file"}
}

// BoolLiteralComparison builds the kind for B001.
func BoolLiteralComparison(op string, literal string) CheckKind {
	return CheckKind{Code: CodeB001, Detail: fmt.Sprintf("Comparison to boolean literal: `%s %s`", op, literal)}
}

// MissingPackageDoc builds the kind for D100.
func MissingPackageDoc(pkg string) CheckKind {
	return CheckKind{Code: CodeD100, Detail: fmt.Sprintf("Missing doc comment for package `%s`", pkg)}
}
