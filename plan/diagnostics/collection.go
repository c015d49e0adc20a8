package diagnostics

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/fatih/color"
)

// Diagnostics represents a list of validation or parser errors and warnings.
// This is used to accumulate multiple errors and warnings during validation.
// It is used to not error out early and instead show multiple errors at once.
type Diagnostics struct {
	errors   []PlanError
	warnings []PlanWarning
}

// NewDiagnostics creates a new empty Diagnostics collection.
func NewDiagnostics() Diagnostics {
	return Diagnostics{
		errors:   make([]PlanError, 0),
		warnings: make([]PlanWarning, 0),
	}
}

// FromError creates a Diagnostics from a single error.
func FromError(err PlanError) Diagnostics {
	d := NewDiagnostics()
	d.PushError(err)
	return d
}

// Errors returns all errors in the collection.
func (d *Diagnostics) Errors() []PlanError {
	return d.errors
}

// Warnings returns all warnings in the collection.
func (d *Diagnostics) Warnings() []PlanWarning {
	return d.warnings
}

// PushError adds an error to the collection.
func (d *Diagnostics) PushError(err PlanError) {
	d.errors = append(d.errors, err)
}

// PushWarning adds a warning to the collection.
func (d *Diagnostics) PushWarning(warning PlanWarning) {
	d.warnings = append(d.warnings, warning)
}

// HasErrors returns true if there is at least one error in this collection.
func (d *Diagnostics) HasErrors() bool {
	return len(d.errors) > 0
}

// ToResult returns an error if there are errors, otherwise returns nil.
func (d *Diagnostics) ToResult() error {
	if d.HasErrors() {
		return fmt.Errorf("plan validation failed with %d errors", len(d.errors))
	}
	return nil
}

// ToPrettyString formats all errors as a pretty-printed string.
func (d *Diagnostics) ToPrettyString(fileName, planText string) string {
	var buf bytes.Buffer
	for _, err := range d.errors {
		d.writePretty(&buf, fileName, planText, err.Message(), err.Span(), false)
	}
	return buf.String()
}

// WarningsToPrettyString formats all warnings as a pretty-printed string.
func (d *Diagnostics) WarningsToPrettyString(fileName, planText string) string {
	var buf bytes.Buffer
	for _, warn := range d.warnings {
		d.writePretty(&buf, fileName, planText, warn.Message(), warn.Span(), true)
	}
	return buf.String()
}

// writePretty writes a pretty-printed diagnostic to the buffer with colors.
func (d *Diagnostics) writePretty(buf *bytes.Buffer, fileName, text, message string, span Span, warning bool) {
	startLineNum := d.getLineNumber(text, span.Start)
	endLineNum := d.getLineNumber(text, span.End)
	lines := d.getLines(text)

	bytesInLineBefore := d.getLineStart(text, startLineNum)
	line := ""
	if startLineNum < len(lines) {
		line = lines[startLineNum]
	}
	startInLine := span.Start - bytesInLineBefore
	if startInLine > len(line) {
		startInLine = len(line)
	}
	endInLine := startInLine + (span.End - span.Start)
	if endInLine > len(line) {
		endInLine = len(line)
	}

	prefix := line[:startInLine]
	offending := line[startInLine:endInLine]
	suffix := line[endInLine:]

	// Color functions
	title := color.New(color.FgRed, color.Bold)
	offendingColor := color.New(color.FgRed, color.Bold)
	label := "error"
	if warning {
		title = color.New(color.FgYellow, color.Bold)
		offendingColor = color.New(color.FgYellow, color.Bold)
		label = "warning"
	}
	desc := color.New(color.Bold)
	arrowColor := color.New(color.FgCyan, color.Bold)
	filePathColor := color.New(color.Underline)
	lineNumColor := color.New(color.FgCyan, color.Bold)

	// Title and description
	title.Fprintf(buf, "%s", label)
	fmt.Fprintf(buf, ": ")
	desc.Fprintf(buf, "%s\n", message)

	// Arrow and file path
	arrowColor.Fprintf(buf, "  --> ")
	filePathColor.Fprintf(buf, "%s:%d\n", fileName, startLineNum+1)

	// Empty line number
	lineNumColor.Fprintf(buf, "   | \n")

	// Line with content
	if startLineNum < len(lines) {
		lineNumColor.Fprintf(buf, "%2d | ", startLineNum+1)
		fmt.Fprintf(buf, "%s", prefix)
		offendingColor.Fprintf(buf, "%s", offending)
		fmt.Fprintf(buf, "%s\n", suffix)
	}

	// Pointer line
	if len(offending) > 0 {
		lineNumColor.Fprintf(buf, "   | ")
		fmt.Fprintf(buf, "%s", strings.Repeat(" ", startInLine))
		offendingColor.Fprintf(buf, "%s\n", strings.Repeat("^", len(offending)))
	}

	// Additional lines if span spans multiple lines
	for lineNum := startLineNum + 1; lineNum <= endLineNum && lineNum < len(lines); lineNum++ {
		lineNumColor.Fprintf(buf, "%2d | ", lineNum+1)
		fmt.Fprintf(buf, "%s\n", lines[lineNum])
	}

	// Empty line number at end
	lineNumColor.Fprintf(buf, "   | \n")
}

// getLineNumber returns the line number (0-based) for a given position.
func (d *Diagnostics) getLineNumber(text string, pos int) int {
	if pos > len(text) {
		pos = len(text)
	}
	return strings.Count(text[:pos], "\n")
}

// getLineStart returns the start position of a line.
func (d *Diagnostics) getLineStart(text string, lineNum int) int {
	pos := 0
	for i := 0; i < lineNum; i++ {
		if idx := strings.Index(text[pos:], "\n"); idx >= 0 {
			pos += idx + 1
		} else {
			break
		}
	}
	return pos
}

// getLines splits text into lines.
func (d *Diagnostics) getLines(text string) []string {
	return strings.Split(strings.TrimSuffix(text, "\n"), "\n")
}
