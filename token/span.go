package token

import "fmt"

// Span is a half-open [From, To) byte range into the source text.
type Span struct {
	From int
	To   int
}

// Char returns the one-byte span starting at offset.
func Char(offset int) Span {
	if offset < 0 {
		offset = 0
	}
	return Span{From: offset, To: offset + 1}
}

func (s Span) Len() int {
	return s.To - s.From
}

// Join returns the smallest span covering both s and other.
func (s Span) Join(other Span) Span {
	return Span{From: min(s.From, other.From), To: max(s.To, other.To)}
}

// Text slices src by the span, clamping to the source bounds.
func (s Span) Text(src string) string {
	from := min(max(s.From, 0), len(src))
	to := min(max(s.To, from), len(src))
	return src[from:to]
}

func (s Span) String() string {
	return fmt.Sprintf("%d..%d", s.From, s.To)
}

// Position is a human readable location. Line and Column are 1-based.
type Position struct {
	Line   int
	Column int
	Offset int
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Locate converts a byte offset into a line/column position. Columns count
// bytes, matching what the reporter underlines.
func Locate(src string, offset int) Position {
	offset = min(max(offset, 0), len(src))
	pos := Position{Line: 1, Column: 1, Offset: offset}
	for i := 0; i < offset; i++ {
		if src[i] == '\n' {
			pos.Line++
			pos.Column = 1
		} else {
			pos.Column++
		}
	}
	return pos
}
