package token

import "fmt"

type Punctuation int

const (
	// Delimiters
	COMMA Punctuation = iota
	SEMICOLON
	COLON
	DOT
	DOLLAR
	HASH
	LEFT_PAREN
	RIGHT_PAREN
	LEFT_BRACE
	RIGHT_BRACE
	LEFT_BRACKET
	RIGHT_BRACKET

	// Operators
	PLUS
	MINUS
	STAR
	SLASH
	PERCENT
	CARET
	EQUAL
	EQUAL_EQUAL
	BANG
	BANG_EQUAL
	LESS
	LESS_EQUAL
	GREATER
	GREATER_EQUAL
	AND
	OR
	AMPERSAND
	PIPE
	ARROW
	FAT_ARROW

	// Layout
	NEWLINE
	INDENTATION
)

var punctuationText = [...]string{
	COMMA:         ",",
	SEMICOLON:     ";",
	COLON:         ":",
	DOT:           ".",
	DOLLAR:        "$",
	HASH:          "#",
	LEFT_PAREN:    "(",
	RIGHT_PAREN:   ")",
	LEFT_BRACE:    "{",
	RIGHT_BRACE:   "}",
	LEFT_BRACKET:  "[",
	RIGHT_BRACKET: "]",
	PLUS:          "+",
	MINUS:         "-",
	STAR:          "*",
	SLASH:         "/",
	PERCENT:       "%",
	CARET:         "^",
	EQUAL:         "=",
	EQUAL_EQUAL:   "==",
	BANG:          "!",
	BANG_EQUAL:    "!=",
	LESS:          "<",
	LESS_EQUAL:    "<=",
	GREATER:       ">",
	GREATER_EQUAL: ">=",
	AND:           "&&",
	OR:            "||",
	AMPERSAND:     "&",
	PIPE:          "|",
	ARROW:         "->",
	FAT_ARROW:     "=>",
	NEWLINE:       "\n",
	INDENTATION:   "\t",
}

var punctuationByText = func() map[string]Punctuation {
	m := make(map[string]Punctuation, len(punctuationText))
	for p, text := range punctuationText {
		m[text] = Punctuation(p)
	}
	return m
}()

// LookupPunctuation maps source text such as "==" to its punctuation kind.
func LookupPunctuation(text string) (Punctuation, bool) {
	p, ok := punctuationByText[text]
	return p, ok
}

func (p Punctuation) String() string {
	if int(p) >= 0 && int(p) < len(punctuationText) {
		return punctuationText[p]
	}
	return fmt.Sprintf("Punctuation(%d)", int(p))
}
