package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"wollok/internal/errors"
	"wollok/internal/lexer"
	"wollok/token"
)

func cursorFor(source string) *cursor {
	return newCursor(lexer.New(source))
}

// raised runs fn and returns the diagnostic it bailed out with, if any.
func raised(fn func()) (diag *errors.Diagnostic) {
	defer func() {
		if r := recover(); r != nil {
			diag = r.(bailout).diag
		}
	}()
	fn()
	return nil
}

func TestCursorPeekAndAdvance(t *testing.T) {
	c := cursorFor("let x")

	tok, ok := c.peek()
	require.True(t, ok)
	assert.Equal(t, token.Kw(token.LET), tok.Token)

	tok, ok = c.advance()
	require.True(t, ok)
	assert.Equal(t, token.Kw(token.LET), tok.Token)
	assert.Equal(t, 3, c.lastOffset)

	tok, _ = c.advance()
	assert.Equal(t, token.Ident("x"), tok.Token)
	assert.True(t, c.atEnd())

	_, ok = c.advance()
	assert.False(t, ok)
	assert.Equal(t, 5, c.lastOffset)
}

func TestCursorSaveRestore(t *testing.T) {
	c := cursorFor("a b c")

	cp := c.save()
	c.advance()
	c.advance()
	assert.Equal(t, 3, c.lastOffset)

	c.restore(cp)
	assert.Equal(t, 0, c.lastOffset)
	tok, _ := c.peek()
	assert.Equal(t, token.Ident("a"), tok.Token)
}

func TestCursorOptional(t *testing.T) {
	c := cursorFor("a b")

	matched := c.optional(func() bool {
		c.advance()
		return c.consume(token.Ident("z"))
	})
	assert.False(t, matched)
	assert.True(t, c.check(token.Ident("a")))

	matched = c.optional(func() bool {
		return c.consume(token.Ident("a"))
	})
	assert.True(t, matched)
	assert.True(t, c.check(token.Ident("b")))
}

func TestCursorSkipping(t *testing.T) {
	c := cursorFor("\n// note\n;x")

	c.skipTrivia()
	assert.True(t, c.checkPunct(token.SEMICOLON))

	assert.True(t, c.skipPreStatement())
	assert.True(t, c.check(token.Ident("x")))

	c.advance()
	assert.False(t, c.skipPreStatement())
}

func TestCursorExpectErrors(t *testing.T) {
	c := cursorFor("class")
	diag := raised(func() { c.expectIdent("class name") })
	require.NotNil(t, diag)
	assert.Equal(t, errors.UNEXPECTED_TOKEN, diag.Kind)
	assert.Equal(t, "class name", diag.Expected)
	assert.Equal(t, "keyword 'class'", diag.Found)
	assert.Equal(t, token.Span{From: 0, To: 5}, diag.Span)

	diag = raised(func() { c.expect("'{'") })
	require.NotNil(t, diag)
	assert.Equal(t, errors.UNEXPECTED_EOF, diag.Kind)
	assert.Equal(t, token.Span{From: 4, To: 5}, diag.Span)
}

func TestCursorErrorInPlaceAtStart(t *testing.T) {
	c := cursorFor("")
	diag := raised(func() { c.errorInPlace("nothing here") })
	require.NotNil(t, diag)
	assert.Equal(t, errors.STRUCTURAL, diag.Kind)
	assert.Equal(t, token.Span{From: 0, To: 1}, diag.Span)
}

func TestCursorLexicalErrorBailsOut(t *testing.T) {
	c := cursorFor("a ~")
	c.advance()

	diag := raised(func() { c.peek() })
	require.NotNil(t, diag)
	assert.Equal(t, errors.LEXICAL, diag.Kind)
	assert.Equal(t, token.Span{From: 2, To: 3}, diag.Span)
}
