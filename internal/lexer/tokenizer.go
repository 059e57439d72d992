// Package lexer turns source text into a lazy stream of spanned tokens.
package lexer

import (
	"unicode/utf8"

	plexer "github.com/alecthomas/participle/v2/lexer"
	"github.com/tliron/commonlog"
	"wollok/internal/errors"
	"wollok/token"
)

var log = commonlog.GetLogger("wollok.lexer")

// Tokenizer yields tokens on demand. It is consumed once: after the input
// is exhausted or a lexical error was reported, Next keeps returning
// ok == false without an error.
type Tokenizer struct {
	source string
	lex    plexer.Lexer
	offset int // end of the last matched run, whitespace included
	done   bool
}

func New(source string) *Tokenizer {
	t := &Tokenizer{source: source}
	lex, err := Definition.LexString("", source)
	if err != nil {
		log.Errorf("lexer setup failed: %s", err)
		t.done = true
		return t
	}
	t.lex = lex
	return t
}

// Next returns the next token. ok is false once the stream is finished.
func (t *Tokenizer) Next() (tok token.SpannedToken, ok bool, err error) {
	for !t.done {
		raw, lexErr := t.lex.Next()
		if lexErr != nil {
			t.done = true
			span, text := t.offending()
			log.Debugf("no token matches at offset %d", t.offset)
			return token.SpannedToken{}, false, errors.Lexical(span, text)
		}
		if raw.EOF() {
			t.done = true
			break
		}

		span := token.Span{From: raw.Pos.Offset, To: raw.Pos.Offset + len(raw.Value)}
		t.offset = span.To

		f := symbolFamilies[raw.Type]
		if f == nil || f.build == nil {
			continue
		}

		built, buildErr := f.build(raw.Value)
		if buildErr != nil {
			t.done = true
			return token.SpannedToken{}, false, errors.InvalidLiteral(span, raw.Value, buildErr.Error())
		}
		return token.SpannedToken{Token: built, Span: span}, true, nil
	}
	return token.SpannedToken{}, false, nil
}

// Collect drains the remaining tokens. On a lexical error the tokens read
// so far are returned together with the diagnostic.
func (t *Tokenizer) Collect() ([]token.SpannedToken, error) {
	var tokens []token.SpannedToken
	for {
		tok, ok, err := t.Next()
		if err != nil {
			return tokens, err
		}
		if !ok {
			return tokens, nil
		}
		tokens = append(tokens, tok)
	}
}

// Tokenize is shorthand for New(source).Collect().
func Tokenize(source string) ([]token.SpannedToken, error) {
	return New(source).Collect()
}

func (t *Tokenizer) offending() (token.Span, string) {
	if t.offset >= len(t.source) {
		return token.Char(t.offset), ""
	}
	r, width := utf8.DecodeRuneInString(t.source[t.offset:])
	return token.Span{From: t.offset, To: t.offset + width}, string(r)
}
