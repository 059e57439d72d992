// Package token SPDX-License-Identifier: Apache-2.0
package token

import (
	"fmt"
	"strconv"
	"strings"
)

type Kind int

const (
	COMMENT Kind = iota
	IDENTIFIER
	PUNCTUATION
	LITERAL
	KEYWORD
)

var kindNames = [...]string{
	COMMENT:     "comment",
	IDENTIFIER:  "identifier",
	PUNCTUATION: "punctuation",
	LITERAL:     "literal",
	KEYWORD:     "keyword",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

type LiteralKind int

const (
	INTEGER LiteralKind = iota
	FLOAT
	STRING
	BOOLEAN
	NULL
)

// Literal holds a literal value. Only the field selected by Kind is set.
type Literal struct {
	Kind  LiteralKind
	Int   int64
	Float float64
	Str   string
	Bool  bool
}

func (l Literal) String() string {
	switch l.Kind {
	case INTEGER:
		return strconv.FormatInt(l.Int, 10)
	case FLOAT:
		s := strconv.FormatFloat(l.Float, 'f', -1, 64)
		if !strings.ContainsAny(s, ".IN") {
			s += ".0"
		}
		return s
	case STRING:
		return strconv.Quote(l.Str)
	case BOOLEAN:
		return strconv.FormatBool(l.Bool)
	default:
		return "null"
	}
}

// Token is a classified unit of source text. It is a comparable value:
// two tokens are equal when their kind and payload are equal.
type Token struct {
	Kind    Kind
	Text    string // comment text or identifier name
	Punct   Punctuation
	Keyword Keyword
	Literal Literal
}

func Ident(name string) Token { return Token{Kind: IDENTIFIER, Text: name} }
func Comment(text string) Token { return Token{Kind: COMMENT, Text: text} }
func Punct(p Punctuation) Token { return Token{Kind: PUNCTUATION, Punct: p} }
func Kw(k Keyword) Token { return Token{Kind: KEYWORD, Keyword: k} }
func Lit(l Literal) Token { return Token{Kind: LITERAL, Literal: l} }
func Int(v int64) Token { return Lit(Literal{Kind: INTEGER, Int: v}) }
func Float(v float64) Token { return Lit(Literal{Kind: FLOAT, Float: v}) }
func Str(v string) Token { return Lit(Literal{Kind: STRING, Str: v}) }
func Bool(v bool) Token { return Lit(Literal{Kind: BOOLEAN, Bool: v}) }
func Null() Token { return Lit(Literal{Kind: NULL}) }
func (t Token) Is(other Token) bool { return t == other }
func (t Token) IsPunct(p Punctuation) bool { return t.Kind == PUNCTUATION && t.Punct == p }
func (t Token) IsKeyword(k Keyword) bool { return t.Kind == KEYWORD && t.Keyword == k }

// AsIdent returns the identifier name if the token is an identifier.
func (t Token) AsIdent() (string, bool) {
	if t.Kind != IDENTIFIER {
		return "", false
	}
	return t.Text, true
}

// IsTrivia reports layout tokens and comments, which the grammar skips
// between statements, list elements and after binary operators.
func (t Token) IsTrivia() bool {
	switch t.Kind {
	case COMMENT:
		return true
	case PUNCTUATION:
		return t.Punct == NEWLINE || t.Punct == INDENTATION
	}
	return false
}

// String renders the token the way it is quoted in diagnostics.
func (t Token) String() string {
	switch t.Kind {
	case COMMENT:
		return "//" + t.Text
	case IDENTIFIER:
		return t.Text
	case PUNCTUATION:
		return t.Punct.String()
	case LITERAL:
		return t.Literal.String()
	case KEYWORD:
		return t.Keyword.String()
	}
	return "?"
}

// Describe returns a short description such as "identifier 'foo'".
func (t Token) Describe() string {
	switch t.Kind {
	case PUNCTUATION:
		if t.Punct == NEWLINE {
			return "newline"
		}
		if t.Punct == INDENTATION {
			return "tab"
		}
		return fmt.Sprintf("'%s'", t.Punct)
	case KEYWORD:
		return fmt.Sprintf("keyword '%s'", t.Keyword)
	case LITERAL:
		return fmt.Sprintf("literal %s", t.Literal)
	case COMMENT:
		return "comment"
	}
	return fmt.Sprintf("%s '%s'", t.Kind, t)
}

// SpannedToken pairs a token with where it came from.
type SpannedToken struct {
	Token Token
	Span  Span
}

// Equal compares the token payloads only; spans are provenance.
func (st SpannedToken) Equal(other SpannedToken) bool {
	return st.Token == other.Token
}

func (st SpannedToken) String() string {
	return fmt.Sprintf("%s@%s", st.Token.Describe(), st.Span)
}
