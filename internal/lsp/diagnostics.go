package lsp

import (
	"strings"
	"unicode/utf16"
	"unicode/utf8"

	protocol "github.com/tliron/glsp/protocol_3_16"
	"wollok/internal/errors"
	"wollok/token"
)

const diagnosticSource = "wollok-parser"

// ConvertDiagnostic turns a parser diagnostic into its LSP form. The span
// is converted to line and UTF-16 character positions within source.
func ConvertDiagnostic(source string, d *errors.Diagnostic) protocol.Diagnostic {
	message := d.Message
	if d.HelpText != "" {
		message += " (" + d.HelpText + ")"
	}

	return protocol.Diagnostic{
		Range:    spanToRange(source, d.Span),
		Severity: ptrSeverity(severity(d.Level)),
		Code:     &protocol.IntegerOrString{Value: d.Code},
		Source:   ptrString(diagnosticSource),
		Message:  message,
	}
}

// ConvertDiagnostics is ConvertDiagnostic over a parse outcome. It never
// returns nil so that publishing it clears stale markers.
func ConvertDiagnostics(source string, d *errors.Diagnostic) []protocol.Diagnostic {
	if d == nil {
		return []protocol.Diagnostic{}
	}
	return []protocol.Diagnostic{ConvertDiagnostic(source, d)}
}

func severity(level errors.ErrorLevel) protocol.DiagnosticSeverity {
	switch level {
	case errors.Warning:
		return protocol.DiagnosticSeverityWarning
	case errors.Note, errors.Help:
		return protocol.DiagnosticSeverityHint
	}
	return protocol.DiagnosticSeverityError
}

func spanToRange(source string, span token.Span) protocol.Range {
	from := min(span.From, len(source))
	to := max(min(span.To, len(source)), from)
	return protocol.Range{
		Start: positionAt(source, from),
		End:   positionAt(source, to),
	}
}

// positionAt converts a byte offset into a zero based line and UTF-16
// character position.
func positionAt(source string, offset int) protocol.Position {
	offset = max(0, min(offset, len(source)))
	before := source[:offset]

	line := strings.Count(before, "\n")
	lineStart := strings.LastIndexByte(before, '\n') + 1

	return protocol.Position{
		Line:      protocol.UInteger(line),
		Character: protocol.UInteger(utf16Len(before[lineStart:])),
	}
}

func utf16Len(s string) int {
	n := 0
	for len(s) > 0 {
		units, size := runeUnits(s)
		n += units
		s = s[size:]
	}
	return n
}

// runeUnits decodes the first rune of s and reports its UTF-16 width.
// Invalid bytes count as one unit each.
func runeUnits(s string) (units, size int) {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError && size <= 1 {
		return 1, max(size, 1)
	}
	return utf16.RuneLen(r), size
}

func ptrSeverity(s protocol.DiagnosticSeverity) *protocol.DiagnosticSeverity {
	return &s
}

func ptrString(s string) *string {
	return &s
}
