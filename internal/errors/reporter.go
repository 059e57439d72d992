package errors

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"wollok/token"
)

// ErrorLevel represents the severity of a diagnostic
type ErrorLevel string

const (
	Error   ErrorLevel = "error"
	Warning ErrorLevel = "warning"
	Note    ErrorLevel = "note"
	Help    ErrorLevel = "help"
)

// ErrorReporter renders diagnostics against the source they came from
type ErrorReporter struct {
	filename string
	source   string
	lines    []string
}

// NewErrorReporter creates a new error reporter for a file
func NewErrorReporter(filename, source string) *ErrorReporter {
	return &ErrorReporter{
		filename: filename,
		source:   source,
		lines:    strings.Split(source, "\n"),
	}
}

// FormatError formats a diagnostic with Rust-like styling: header, location,
// the offending line with an underline, and expected/found labels.
func (er *ErrorReporter) FormatError(d *Diagnostic) string {
	var result strings.Builder

	levelColor := er.getLevelColor(d.Level)
	bold := color.New(color.Bold).SprintFunc()
	dim := color.New(color.Faint).SprintFunc()

	// Header: error[E0101]: message
	if d.Code != "" {
		result.WriteString(fmt.Sprintf("%s[%s]: %s\n",
			levelColor(string(d.Level)), d.Code, d.Message))
	} else {
		result.WriteString(fmt.Sprintf("%s: %s\n",
			levelColor(string(d.Level)), d.Message))
	}

	pos := token.Locate(er.source, d.Span.From)
	lineNumberWidth := er.getLineNumberWidth(pos.Line)
	indent := strings.Repeat(" ", lineNumberWidth)

	result.WriteString(fmt.Sprintf("%s %s %s:%d:%d\n",
		indent, dim("-->"), er.filename, pos.Line, pos.Column))

	result.WriteString(fmt.Sprintf("%s %s\n", indent, dim("│")))

	if pos.Line > 1 && pos.Line-1 < len(er.lines) {
		result.WriteString(fmt.Sprintf("%s %s %s\n",
			dim(fmt.Sprintf("%*d", lineNumberWidth, pos.Line-1)),
			dim("│"),
			er.lines[pos.Line-2]))
	}

	if pos.Line <= len(er.lines) && pos.Line > 0 {
		lineContent := er.lines[pos.Line-1]
		result.WriteString(fmt.Sprintf("%s %s %s\n",
			bold(fmt.Sprintf("%*d", lineNumberWidth, pos.Line)),
			dim("│"),
			lineContent))

		// The underline never runs past the end of the line, so a newline
		// token or a span at end of input still gets a single caret.
		length := min(d.Span.Len(), len(lineContent)-pos.Column+1)
		marker := er.createMarker(pos.Column, length, d.Level)
		label := er.label(d)
		if label != "" {
			marker += " " + levelColor(label)
		}
		result.WriteString(fmt.Sprintf("%s %s %s\n", indent, dim("│"), marker))
	}

	if pos.Line < len(er.lines) {
		result.WriteString(fmt.Sprintf("%s %s %s\n",
			dim(fmt.Sprintf("%*d", lineNumberWidth, pos.Line+1)),
			dim("│"),
			er.lines[pos.Line]))
	}

	for _, note := range d.Notes {
		noteColor := color.New(color.FgBlue).SprintFunc()
		result.WriteString(fmt.Sprintf("%s %s %s %s\n",
			indent, dim("│"), noteColor("note:"), note))
	}

	if d.HelpText != "" {
		helpColor := color.New(color.FgGreen).SprintFunc()
		result.WriteString(fmt.Sprintf("%s %s %s %s\n",
			indent, dim("│"), helpColor("help:"), d.HelpText))
	}

	result.WriteString("\n")
	return result.String()
}

func (er *ErrorReporter) label(d *Diagnostic) string {
	switch {
	case d.Expected != "" && d.Found != "":
		return fmt.Sprintf("expected %s, found %s", d.Expected, d.Found)
	case d.Expected != "":
		return fmt.Sprintf("expected %s", d.Expected)
	}
	return ""
}

// getLevelColor returns the appropriate color function for an error level
func (er *ErrorReporter) getLevelColor(level ErrorLevel) func(...interface{}) string {
	switch level {
	case Warning:
		return color.New(color.FgYellow, color.Bold).SprintFunc()
	case Note:
		return color.New(color.FgBlue, color.Bold).SprintFunc()
	case Help:
		return color.New(color.FgGreen, color.Bold).SprintFunc()
	default:
		return color.New(color.FgRed, color.Bold).SprintFunc()
	}
}

// createMarker creates the underline marker for errors
func (er *ErrorReporter) createMarker(column, length int, level ErrorLevel) string {
	if length <= 0 {
		length = 1
	}

	spaces := strings.Repeat(" ", max(0, column-1))

	markerColor := color.New(color.FgRed, color.Bold).SprintFunc()
	if level == Warning {
		markerColor = color.New(color.FgYellow, color.Bold).SprintFunc()
	}

	return spaces + markerColor(strings.Repeat("^", length))
}

// getLineNumberWidth calculates the width needed for line numbers
func (er *ErrorReporter) getLineNumberWidth(line int) int {
	width := len(fmt.Sprintf("%d", line))
	if width < 3 {
		width = 3 // minimum width for visual alignment
	}
	return width
}
