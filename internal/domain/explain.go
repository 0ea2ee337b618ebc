package domain

import (
	"encoding/json"
	"errors"
	"fmt"

	m "github.com/mouse-blink/lintel/internal/model"
)

// ErrFormatUnsupported is returned when an explanation is requested in a
// report-only format.
var ErrFormatUnsupported = errors.New("format not supported")

// Explanation is the structured form of an explained check code.
type Explanation struct {
	Code     string `json:"code"`
	Category string `json:"category"`
	Summary  string `json:"summary"`
}

// Explain renders the category and summary of code in format.
func Explain(code m.CheckCode, format m.SerializationFormat) (string, error) {
	if code.Summary() == "" {
		return "", fmt.Errorf("%w: %q", m.ErrUnknownCode, code)
	}

	explanation := Explanation{
		Code:     string(code),
		Category: code.Category().Title(),
		Summary:  code.Summary(),
	}

	switch format {
	case m.FormatText, m.FormatGrouped:
		return fmt.Sprintf("%s (%s): %s\n", explanation.Code, explanation.Category, explanation.Summary), nil
	case m.FormatJSON:
		out, err := json.MarshalIndent(explanation, "", "  ")
		if err != nil {
			return "", fmt.Errorf("encode explanation: %w", err)
		}

		return string(out) + "\n", nil
	case m.FormatJUnit, m.FormatGitHub:
		return "", fmt.Errorf("%w: explain does not support %s format", ErrFormatUnsupported, format)
	}

	return "", fmt.Errorf("%w: %q", m.ErrUnknownFormat, format)
}
