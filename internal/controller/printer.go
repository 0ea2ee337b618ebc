package controller

import (
	"bytes"
	"encoding/json"
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"

	m "github.com/mouse-blink/lintel/internal/model"
)

// Printer renders diagnostics in one of the supported report formats.
type Printer struct {
	colored bool
}

// NewPrinter returns a Printer. colored enables ANSI styling in the text and
// grouped formats.
func NewPrinter(colored bool) *Printer {
	return &Printer{colored: colored}
}

// WriteDiagnostics renders d to w without color.
func WriteDiagnostics(w io.Writer, d m.Diagnostics, format m.SerializationFormat) error {
	return NewPrinter(false).Write(w, d, format)
}

// Write renders d to w in format.
func (p *Printer) Write(w io.Writer, d m.Diagnostics, format m.SerializationFormat) error {
	switch format {
	case m.FormatText:
		return p.writeText(w, d)
	case m.FormatGrouped:
		return p.writeGrouped(w, d)
	case m.FormatJSON:
		return writeJSON(w, d)
	case m.FormatJUnit:
		return writeJUnit(w, d)
	case m.FormatGitHub:
		return writeGitHub(w, d)
	}

	return fmt.Errorf("%w: %q", m.ErrUnknownFormat, format)
}

func (p *Printer) style(attrs ...color.Attribute) *color.Color {
	c := color.New(attrs...)
	if p.colored {
		c.EnableColor()
	} else {
		c.DisableColor()
	}

	return c
}

func (p *Printer) writeText(w io.Writer, d m.Diagnostics) error {
	bold := p.style(color.Bold)
	code := p.style(color.FgRed, color.Bold)
	dim := p.style(color.FgCyan)

	var b bytes.Buffer

	for _, msg := range d.Messages {
		fmt.Fprintf(&b, "%s%s%d%s%d%s %s %s\n",
			bold.Sprint(msg.Filename), dim.Sprint(":"),
			msg.Location.Row, dim.Sprint(":"),
			msg.Location.Column, dim.Sprint(":"),
			code.Sprint(msg.Kind.Code), msg.Kind.Body())

		if msg.Source != nil {
			writeSnippet(&b, msg)
		}
	}

	p.writeSummary(&b, d)

	_, err := w.Write(b.Bytes())

	return err
}

func (p *Printer) writeGrouped(w io.Writer, d m.Diagnostics) error {
	header := p.style(color.Bold, color.Underline)
	code := p.style(color.FgRed, color.Bold)

	var b bytes.Buffer

	for start := 0; start < len(d.Messages); {
		filename := d.Messages[start].Filename

		end := start
		for end < len(d.Messages) && d.Messages[end].Filename == filename {
			end++
		}

		fmt.Fprintf(&b, "%s:\n", header.Sprint(filename))

		table := tablewriter.NewWriter(&b)
		table.SetBorder(false)
		table.SetAutoWrapText(false)
		table.SetColumnSeparator("")
		table.SetCenterSeparator("")
		table.SetRowSeparator("")
		table.SetTablePadding("  ")
		table.SetNoWhiteSpace(true)
		table.SetAlignment(tablewriter.ALIGN_LEFT)

		for _, msg := range d.Messages[start:end] {
			table.Append([]string{
				fmt.Sprintf("  %d:%d", msg.Location.Row, msg.Location.Column),
				code.Sprint(msg.Kind.Code),
				msg.Kind.Body(),
			})
		}

		table.Render()
		b.WriteString("\n")

		start = end
	}

	p.writeSummary(&b, d)

	_, err := w.Write(b.Bytes())

	return err
}

func (p *Printer) writeSummary(b *bytes.Buffer, d m.Diagnostics) {
	if d.Fixed > 0 {
		fmt.Fprintf(b, "Fixed %d error(s).\n", d.Fixed)
	}

	if len(d.Messages) > 0 {
		fmt.Fprintf(b, "Found %d error(s).\n", len(d.Messages))
	}
}

func writeSnippet(b *bytes.Buffer, msg m.Message) {
	line := strings.TrimRight(msg.Source.Line, "\r")
	fmt.Fprintf(b, "    %s\n", line)

	column := msg.Location.Column
	if column < 1 {
		column = 1
	}

	width := 1
	if msg.EndLocation.Row == msg.Location.Row && msg.EndLocation.Column > column {
		width = msg.EndLocation.Column - column
	}

	fmt.Fprintf(b, "    %s%s\n", strings.Repeat(" ", column-1), strings.Repeat("^", width))
}

type jsonLocation struct {
	Row    int `json:"row"`
	Column int `json:"column"`
}

type jsonFix struct {
	Content     string       `json:"content"`
	Location    jsonLocation `json:"location"`
	EndLocation jsonLocation `json:"end_location"`
}

type jsonMessage struct {
	Code        string       `json:"code"`
	Message     string       `json:"message"`
	Fix         *jsonFix     `json:"fix"`
	Location    jsonLocation `json:"location"`
	EndLocation jsonLocation `json:"end_location"`
	Filename    string       `json:"filename"`
}

func writeJSON(w io.Writer, d m.Diagnostics) error {
	messages := make([]jsonMessage, 0, len(d.Messages))

	for _, msg := range d.Messages {
		out := jsonMessage{
			Code:        string(msg.Kind.Code),
			Message:     msg.Kind.Body(),
			Location:    jsonLocation(msg.Location),
			EndLocation: jsonLocation(msg.EndLocation),
			Filename:    msg.Filename,
		}

		if msg.Fix != nil {
			out.Fix = &jsonFix{
				Content:     msg.Fix.Content,
				Location:    jsonLocation(msg.Fix.Location),
				EndLocation: jsonLocation(msg.Fix.EndLocation),
			}
		}

		messages = append(messages, out)
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")

	return encoder.Encode(messages)
}

type junitFailure struct {
	Message string `xml:"message,attr"`
	Text    string `xml:",chardata"`
}

type junitTestCase struct {
	Name      string        `xml:"name,attr"`
	ClassName string        `xml:"classname,attr,omitempty"`
	Failure   *junitFailure `xml:"failure,omitempty"`
}

type junitTestSuite struct {
	Name      string          `xml:"name,attr"`
	Tests     int             `xml:"tests,attr"`
	Failures  int             `xml:"failures,attr"`
	TestCases []junitTestCase `xml:"testcase"`
}

type junitTestSuites struct {
	XMLName xml.Name         `xml:"testsuites"`
	Name    string           `xml:"name,attr"`
	Tests   int              `xml:"tests,attr"`
	Fails   int              `xml:"failures,attr"`
	Suites  []junitTestSuite `xml:"testsuite"`
}

func writeJUnit(w io.Writer, d m.Diagnostics) error {
	report := junitTestSuites{Name: "lintel", Tests: len(d.Messages), Fails: len(d.Messages)}

	if len(d.Messages) == 0 {
		report.Tests = 1
		report.Suites = []junitTestSuite{{
			Name:      "lintel",
			Tests:     1,
			TestCases: []junitTestCase{{Name: "No errors found"}},
		}}
	}

	for _, msg := range d.Messages {
		if n := len(report.Suites); n == 0 || report.Suites[n-1].Name != msg.Filename {
			report.Suites = append(report.Suites, junitTestSuite{Name: msg.Filename})
		}

		suite := &report.Suites[len(report.Suites)-1]
		suite.Tests++
		suite.Failures++
		suite.TestCases = append(suite.TestCases, junitTestCase{
			Name:      "org.lintel." + string(msg.Kind.Code),
			ClassName: msg.Filename,
			Failure: &junitFailure{
				Message: msg.Kind.Body(),
				Text:    fmt.Sprintf("line %d, col %d, %s", msg.Location.Row, msg.Location.Column, msg.Kind.Body()),
			},
		})
	}

	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}

	encoder := xml.NewEncoder(w)
	encoder.Indent("", "    ")

	if err := encoder.Encode(report); err != nil {
		return err
	}

	_, err := io.WriteString(w, "\n")

	return err
}

func writeGitHub(w io.Writer, d m.Diagnostics) error {
	var b bytes.Buffer

	for _, msg := range d.Messages {
		fmt.Fprintf(&b, "::error title=lintel (%s),file=%s,line=%d,col=%d,endLine=%d,endColumn=%d::%s:%d:%d: %s %s\n",
			msg.Kind.Code, msg.Filename,
			msg.Location.Row, msg.Location.Column,
			msg.EndLocation.Row, msg.EndLocation.Column,
			msg.Filename, msg.Location.Row, msg.Location.Column,
			msg.Kind.Code, msg.Kind.Body())
	}

	_, err := w.Write(b.Bytes())

	return err
}
