package model

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownFormat is returned for unsupported serialization format names.
var ErrUnknownFormat = errors.New("unknown serialization format")

// AutofixMode controls whether fixes are dropped, reported or applied.
type AutofixMode int

// Available AutofixMode values.
const (
	AutofixNone AutofixMode = iota
	AutofixGenerate
	AutofixApply
)

func (a AutofixMode) String() string {
	switch a {
	case AutofixNone:
		return "none"
	case AutofixGenerate:
		return "generate"
	case AutofixApply:
		return "apply"
	}

	return fmt.Sprintf("AutofixMode(%d)", int(a))
}

// CachePolicy controls whether the checker may reuse results for unchanged files.
type CachePolicy int

// Available CachePolicy values.
const (
	CacheNone CachePolicy = iota
	CacheReadWrite
)

// CachePolicyFromFlag maps the --no-cache style boolean onto a policy.
func CachePolicyFromFlag(enabled bool) CachePolicy {
	if enabled {
		return CacheReadWrite
	}

	return CacheNone
}

// SerializationFormat selects how diagnostics and explanations are rendered.
type SerializationFormat string

// Supported formats.
const (
	FormatText    SerializationFormat = "text"
	FormatGrouped SerializationFormat = "grouped"
	FormatJSON    SerializationFormat = "json"
	FormatJUnit   SerializationFormat = "junit"
	FormatGitHub  SerializationFormat = "github"
)

// SerializationFormats lists every supported format.
func SerializationFormats() []SerializationFormat {
	return []SerializationFormat{FormatText, FormatGrouped, FormatJSON, FormatJUnit, FormatGitHub}
}

// ParseSerializationFormat parses a format name, case-insensitively.
func ParseSerializationFormat(s string) (SerializationFormat, error) {
	format := SerializationFormat(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range SerializationFormats() {
		if format == known {
			return format, nil
		}
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}
