package errors

import (
	"fmt"
	"sort"
	"strings"

	"wollok/token"
)

// Kind classifies why a parse failed
type Kind int

const (
	LEXICAL Kind = iota
	UNEXPECTED_TOKEN
	UNEXPECTED_EOF
	STRUCTURAL
)

func (k Kind) String() string {
	switch k {
	case LEXICAL:
		return "lexical error"
	case UNEXPECTED_TOKEN:
		return "unexpected token"
	case UNEXPECTED_EOF:
		return "unexpected end of input"
	case STRUCTURAL:
		return "structural error"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Code returns the error code reported for the kind
func (k Kind) Code() string {
	switch k {
	case LEXICAL:
		return ErrorLexical
	case UNEXPECTED_TOKEN:
		return ErrorUnexpectedToken
	case UNEXPECTED_EOF:
		return ErrorUnexpectedEOF
	default:
		return ErrorStructural
	}
}

// Diagnostic is the single, source anchored failure of a parse
type Diagnostic struct {
	Level    ErrorLevel
	Kind     Kind
	Code     string     // Error code like E0101
	Message  string     // Primary error message
	Span     token.Span // Offending bytes in the source
	Expected string     // What the grammar wanted (unexpected token/EOF only)
	Found    string     // What was actually there (unexpected token only)
	Notes    []string
	HelpText string
}

func (d *Diagnostic) Error() string {
	return fmt.Sprintf("%s[%s] at %s: %s", d.Level, d.Code, d.Span, d.Message)
}

// DiagnosticBuilder provides a fluent interface for creating diagnostics
type DiagnosticBuilder struct {
	d Diagnostic
}

// NewDiagnostic creates a new diagnostic builder
func NewDiagnostic(kind Kind, span token.Span, message string) *DiagnosticBuilder {
	return &DiagnosticBuilder{
		d: Diagnostic{
			Level:   Error,
			Kind:    kind,
			Code:    kind.Code(),
			Message: message,
			Span:    span,
		},
	}
}

func (b *DiagnosticBuilder) WithExpected(expected string) *DiagnosticBuilder {
	b.d.Expected = expected
	return b
}

func (b *DiagnosticBuilder) WithFound(found string) *DiagnosticBuilder {
	b.d.Found = found
	return b
}

// WithNote adds a note to the diagnostic
func (b *DiagnosticBuilder) WithNote(note string) *DiagnosticBuilder {
	b.d.Notes = append(b.d.Notes, note)
	return b
}

// WithHelp sets the help text
func (b *DiagnosticBuilder) WithHelp(help string) *DiagnosticBuilder {
	b.d.HelpText = help
	return b
}

// Build returns the completed diagnostic
func (b *DiagnosticBuilder) Build() *Diagnostic {
	d := b.d
	return &d
}

// Common diagnostic constructors

// Lexical reports input that no token recognizer accepts.
func Lexical(span token.Span, text string) *Diagnostic {
	msg := "unrecognized input"
	if text != "" {
		msg = fmt.Sprintf("unrecognized input '%s'", text)
	}
	builder := NewDiagnostic(LEXICAL, span, msg)
	if strings.HasPrefix(text, `"`) || strings.HasPrefix(text, "'") {
		builder = builder.WithNote("strings cannot span lines and escape sequences are not supported")
	}
	return builder.Build()
}

// InvalidLiteral reports a literal the tokenizer matched but could not convert.
func InvalidLiteral(span token.Span, text, reason string) *Diagnostic {
	return NewDiagnostic(LEXICAL, span, fmt.Sprintf("invalid literal '%s': %s", text, reason)).Build()
}

// UnexpectedToken reports a token that does not fit the current rule.
func UnexpectedToken(found token.SpannedToken, expected string) *Diagnostic {
	desc := found.Token.Describe()
	builder := NewDiagnostic(UNEXPECTED_TOKEN, found.Span, fmt.Sprintf("expected %s, found %s", expected, desc)).
		WithExpected(expected).
		WithFound(desc)

	if name, ok := found.Token.AsIdent(); ok {
		similar := findSimilarNames(name, keywordNames())
		if len(similar) == 1 {
			builder = builder.WithHelp(fmt.Sprintf("did you mean '%s'?", similar[0]))
		} else if len(similar) > 1 {
			builder = builder.WithHelp(fmt.Sprintf("did you mean one of: '%s'?", strings.Join(similar, "', '")))
		}
	}

	return builder.Build()
}

// UnexpectedEOF reports input that ended while the parser still needed tokens.
func UnexpectedEOF(span token.Span, expected string) *Diagnostic {
	msg := "unexpected end of input"
	if expected != "" {
		msg = fmt.Sprintf("unexpected end of input, expected %s", expected)
	}
	return NewDiagnostic(UNEXPECTED_EOF, span, msg).
		WithExpected(expected).
		WithFound("end of input").
		Build()
}

// Structural reports a rule specific illegal shape.
func Structural(span token.Span, message string) *Diagnostic {
	return NewDiagnostic(STRUCTURAL, span, message).Build()
}

func keywordNames() []string {
	names := make([]string, 0, len(token.KEYWORDS))
	for name := range token.KEYWORDS {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func findSimilarNames(target string, candidates []string) []string {
	var similar []string

	for _, candidate := range candidates {
		if candidate != target && levenshteinDistance(target, candidate) <= 2 && len(candidate) > 3 {
			similar = append(similar, candidate)
		}
	}

	return similar
}

// Simple Levenshtein distance implementation for finding similar names
func levenshteinDistance(a, b string) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	matrix := make([][]int, len(a)+1)
	for i := range matrix {
		matrix[i] = make([]int, len(b)+1)
	}

	for i := 0; i <= len(a); i++ {
		matrix[i][0] = i
	}
	for j := 0; j <= len(b); j++ {
		matrix[0][j] = j
	}

	for i := 1; i <= len(a); i++ {
		for j := 1; j <= len(b); j++ {
			cost := 0
			if a[i-1] != b[j-1] {
				cost = 1
			}

			matrix[i][j] = min(
				matrix[i-1][j]+1,      // deletion
				matrix[i][j-1]+1,      // insertion
				matrix[i-1][j-1]+cost, // substitution
			)
		}
	}

	return matrix[len(a)][len(b)]
}
