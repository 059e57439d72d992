package lsp

import (
	"sort"

	"wollok/token"
)

// SemanticTokenTypes is the legend advertised to clients. A token's type
// is its index in this slice.
var SemanticTokenTypes = []string{
	"namespace",
	"type",
	"method",
	"variable",
	"property",
	"keyword",
	"number",
	"string",
	"comment",
	"operator",
}

// SemanticTokenModifiers is the modifier legend; a token's modifiers are
// a bitmask over it.
var SemanticTokenModifiers = []string{
	"declaration",
	"readonly",
}

const (
	typeNamespace = iota
	typeType
	typeMethod
	typeVariable
	typeProperty
	typeKeyword
	typeNumber
	typeString
	typeComment
	typeOperator
)

const (
	modDeclaration = 1 << iota
	modReadonly
)

// SemanticToken represents a single LSP semantic token entry
// Line and StartChar are 0-based positions
// TokenType is an index into SemanticTokenTypes
// TokenModifiers is a bitmask based on SemanticTokenModifiers
type SemanticToken struct {
	Line           uint32
	StartChar      uint32
	Length         uint32
	TokenType      int
	TokenModifiers int
}

// classifier carries the little context needed to tell declarations
// from uses: the previous significant token and whether we are inside
// an import path or an inherits list.
type classifier struct {
	prev       token.Token
	inImport   bool
	inInherits bool
}

func (c *classifier) classify(tok token.Token) (tokenType, mods int, ok bool) {
	defer func() {
		if !tok.IsTrivia() {
			c.prev = tok
		}
	}()

	switch tok.Kind {
	case token.COMMENT:
		return typeComment, 0, true
	case token.KEYWORD:
		switch tok.Keyword {
		case token.IMPORT:
			c.inImport = true
		case token.INHERITS:
			c.inInherits = true
		}
		return typeKeyword, 0, true
	case token.LITERAL:
		switch tok.Literal.Kind {
		case token.INTEGER, token.FLOAT:
			return typeNumber, 0, true
		case token.STRING:
			return typeString, 0, true
		}
		return typeKeyword, 0, true
	case token.PUNCTUATION:
		switch {
		case tok.Punct == token.NEWLINE || tok.Punct == token.SEMICOLON:
			c.inImport = false
		case tok.Punct == token.LEFT_BRACE:
			c.inInherits = false
		case tok.Punct >= token.PLUS && tok.Punct <= token.FAT_ARROW:
			return typeOperator, 0, true
		}
		return 0, 0, false
	case token.IDENTIFIER:
		tokenType, mods = c.identifier()
		return tokenType, mods, true
	}
	return 0, 0, false
}

func (c *classifier) identifier() (int, int) {
	if c.inImport {
		return typeNamespace, 0
	}
	if c.inInherits {
		return typeType, 0
	}

	prev := c.prev
	if prev.Kind == token.KEYWORD {
		switch prev.Keyword {
		case token.CLASS, token.OBJECT:
			return typeType, modDeclaration
		case token.NEW:
			return typeType, 0
		case token.METHOD:
			return typeMethod, modDeclaration
		case token.CONST:
			return typeVariable, modDeclaration | modReadonly
		case token.LET:
			return typeVariable, modDeclaration
		case token.PROPERTY:
			return typeProperty, modDeclaration
		case token.PACKAGE, token.PROGRAM:
			return typeNamespace, modDeclaration
		}
	}
	if prev.IsPunct(token.DOT) {
		return typeMethod, 0
	}
	return typeVariable, 0
}

func collectSemanticTokens(source string, tokens []token.SpannedToken) []SemanticToken {
	var (
		result []SemanticToken
		c      classifier
		lines  = newLineIndex(source)
	)

	for _, st := range tokens {
		tokenType, mods, ok := c.classify(st.Token)
		if !ok {
			continue
		}

		start := lines.position(st.Span.From)
		end := lines.position(st.Span.To)
		if end.line != start.line {
			continue
		}

		result = append(result, SemanticToken{
			Line:           start.line,
			StartChar:      start.char,
			Length:         end.char - start.char,
			TokenType:      tokenType,
			TokenModifiers: mods,
		})
	}
	return result
}

// encodeSemanticTokens packs tokens into the LSP wire format using
// delta-line, delta-start compression.
func encodeSemanticTokens(tokens []SemanticToken) []uint32 {
	data := make([]uint32, 0, len(tokens)*5)
	var prevLine, prevStart uint32

	for _, tok := range tokens {
		deltaLine := tok.Line - prevLine
		deltaStart := tok.StartChar
		if deltaLine == 0 {
			deltaStart = tok.StartChar - prevStart
		}

		data = append(data, deltaLine, deltaStart, tok.Length, uint32(tok.TokenType), uint32(tok.TokenModifiers))

		prevLine = tok.Line
		prevStart = tok.StartChar
	}
	return data
}

type linePos struct {
	line, char uint32
}

// lineIndex maps byte offsets to line and UTF-16 character positions
// without rescanning the source for every token.
type lineIndex struct {
	source string
	starts []int
}

func newLineIndex(source string) *lineIndex {
	starts := []int{0}
	for i := 0; i < len(source); i++ {
		if source[i] == '\n' {
			starts = append(starts, i+1)
		}
	}
	return &lineIndex{source: source, starts: starts}
}

func (li *lineIndex) position(offset int) linePos {
	offset = max(0, min(offset, len(li.source)))
	line := sort.Search(len(li.starts), func(i int) bool { return li.starts[i] > offset }) - 1
	return linePos{
		line: uint32(line),
		char: uint32(utf16Len(li.source[li.starts[line]:offset])),
	}
}

// offset is the inverse of position, clamping past the end of a line or
// of the document.
func (li *lineIndex) offset(line, char uint32) int {
	if int(line) >= len(li.starts) {
		return len(li.source)
	}
	offset := li.starts[line]
	end := len(li.source)
	if int(line)+1 < len(li.starts) {
		end = li.starts[line+1] - 1
	}

	var units uint32
	for offset < end && units < char {
		n, size := runeUnits(li.source[offset:])
		units += uint32(n)
		offset += size
	}
	return offset
}
