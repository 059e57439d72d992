package parser

import (
	"wollok/internal/errors"
	"wollok/internal/lexer"
	"wollok/token"
)

// bailout carries the first diagnostic out of the recursive descent. It is
// raised with panic and recovered in Parser.ParseScope.
type bailout struct {
	diag *errors.Diagnostic
}

// checkpoint is a saved cursor position. Restoring it rewinds every token
// consumed since, along with the end offset used for in-place errors.
type checkpoint struct {
	pos        int
	lastOffset int
}

// cursor reads tokens from the tokenizer on demand. Pulled tokens stay in
// buf so that a restore can rewind any number of tokens.
type cursor struct {
	tokens     *lexer.Tokenizer
	buf        []token.SpannedToken
	pos        int
	lastOffset int
}

func newCursor(tokens *lexer.Tokenizer) *cursor {
	return &cursor{tokens: tokens}
}

// fill makes sure buf[pos] exists. It reports false at end of input and
// bails out on a lexical error.
func (c *cursor) fill() bool {
	for c.pos >= len(c.buf) {
		tok, ok, err := c.tokens.Next()
		if err != nil {
			c.raise(err.(*errors.Diagnostic))
		}
		if !ok {
			return false
		}
		c.buf = append(c.buf, tok)
	}
	return true
}

func (c *cursor) save() checkpoint {
	return checkpoint{pos: c.pos, lastOffset: c.lastOffset}
}

func (c *cursor) restore(cp checkpoint) {
	c.pos = cp.pos
	c.lastOffset = cp.lastOffset
}

// peek returns the next token without consuming it.
func (c *cursor) peek() (token.SpannedToken, bool) {
	if !c.fill() {
		return token.SpannedToken{}, false
	}
	return c.buf[c.pos], true
}

func (c *cursor) advance() (token.SpannedToken, bool) {
	tok, ok := c.peek()
	if !ok {
		return tok, false
	}
	c.pos++
	c.lastOffset = tok.Span.To
	return tok, true
}

func (c *cursor) atEnd() bool {
	_, ok := c.peek()
	return !ok
}

// check reports whether the next token equals tok.
func (c *cursor) check(tok token.Token) bool {
	next, ok := c.peek()
	return ok && next.Token == tok
}

func (c *cursor) checkPunct(p token.Punctuation) bool {
	return c.check(token.Punct(p))
}

// consume advances past the next token if it equals tok.
func (c *cursor) consume(tok token.Token) bool {
	if c.check(tok) {
		c.advance()
		return true
	}
	return false
}

func (c *cursor) consumePunct(p token.Punctuation) bool {
	return c.consume(token.Punct(p))
}

func (c *cursor) consumeKeyword(k token.Keyword) bool {
	return c.consume(token.Kw(k))
}

// optional runs fn speculatively. When fn reports false the cursor is put
// back where it was.
func (c *cursor) optional(fn func() bool) bool {
	cp := c.save()
	if fn() {
		return true
	}
	c.restore(cp)
	return false
}

// expect consumes the next token, failing at end of input.
func (c *cursor) expect(what string) token.SpannedToken {
	tok, ok := c.advance()
	if !ok {
		c.eof(what)
	}
	return tok
}

// expectMatch consumes the next token and fails with an unexpected token
// diagnostic, anchored at that token, unless pred accepts it.
func (c *cursor) expectMatch(what string, pred func(token.Token) bool) token.SpannedToken {
	tok := c.expect(what)
	if !pred(tok.Token) {
		c.raise(errors.UnexpectedToken(tok, what))
	}
	return tok
}

func (c *cursor) expectPunct(p token.Punctuation) token.SpannedToken {
	want := token.Punct(p)
	return c.expectMatch(want.Describe(), func(t token.Token) bool { return t == want })
}

func (c *cursor) expectKeyword(k token.Keyword) token.SpannedToken {
	want := token.Kw(k)
	return c.expectMatch(want.Describe(), func(t token.Token) bool { return t == want })
}

func (c *cursor) expectIdent(what string) string {
	tok := c.expectMatch(what, func(t token.Token) bool { return t.Kind == token.IDENTIFIER })
	return tok.Token.Text
}

// skipTrivia skips newlines, tabs and comments.
func (c *cursor) skipTrivia() {
	for {
		tok, ok := c.peek()
		if !ok || !tok.Token.IsTrivia() {
			return
		}
		c.advance()
	}
}

// skipSeparators skips trivia and semicolons between statements.
func (c *cursor) skipSeparators() {
	for {
		tok, ok := c.peek()
		if !ok || !(tok.Token.IsTrivia() || tok.Token.IsPunct(token.SEMICOLON)) {
			return
		}
		c.advance()
	}
}

// skipPreStatement skips blank lines and comments before a statement and
// reports whether any input is left.
func (c *cursor) skipPreStatement() bool {
	c.skipSeparators()
	return !c.atEnd()
}

func (c *cursor) raise(d *errors.Diagnostic) {
	panic(bailout{diag: d})
}

// inPlace is the span just before the cursor: the last byte of the last
// consumed token.
func (c *cursor) inPlace() token.Span {
	return token.Char(c.lastOffset - 1)
}

func (c *cursor) errorAt(span token.Span, message string) {
	c.raise(errors.Structural(span, message))
}

func (c *cursor) errorInPlace(message string) {
	c.raise(errors.Structural(c.inPlace(), message))
}

func (c *cursor) eof(what string) {
	c.raise(errors.UnexpectedEOF(c.inPlace(), what))
}

func (c *cursor) unexpected(found token.SpannedToken, what string) {
	c.raise(errors.UnexpectedToken(found, what))
}
