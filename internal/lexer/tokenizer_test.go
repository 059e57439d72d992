package lexer

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"wollok/internal/errors"
	"wollok/token"
)

func kinds(t *testing.T, source string) []token.Token {
	t.Helper()
	tokens, err := Tokenize(source)
	require.NoError(t, err)

	out := make([]token.Token, 0, len(tokens))
	for _, tok := range tokens {
		out = append(out, tok.Token)
	}
	return out
}

func TestObjectHeader(t *testing.T) {
	got := kinds(t, "object dummy {\n\tconst age = 42 }")

	assert.Equal(t, []token.Token{
		token.Kw(token.OBJECT),
		token.Ident("dummy"),
		token.Punct(token.LEFT_BRACE),
		token.Punct(token.NEWLINE),
		token.Kw(token.CONST),
		token.Ident("age"),
		token.Punct(token.EQUAL),
		token.Int(42),
		token.Punct(token.RIGHT_BRACE),
	}, got)
}

func TestSpansCoverMatchedBytes(t *testing.T) {
	source := "let  name = 'pepita'"
	tokens, err := Tokenize(source)
	require.NoError(t, err)
	require.Len(t, tokens, 4)

	assert.Equal(t, token.Span{From: 0, To: 3}, tokens[0].Span)
	assert.Equal(t, token.Span{From: 5, To: 9}, tokens[1].Span)
	assert.Equal(t, token.Span{From: 10, To: 11}, tokens[2].Span)
	assert.Equal(t, token.Span{From: 12, To: 20}, tokens[3].Span)
	assert.Equal(t, "'pepita'", tokens[3].Span.Text(source))
}

func TestNumbers(t *testing.T) {
	got := kinds(t, "1 -2 3.5 +4 -0.25 0")

	assert.Equal(t, []token.Token{
		token.Int(1),
		token.Int(-2),
		token.Float(3.5),
		token.Int(4),
		token.Float(-0.25),
		token.Int(0),
	}, got)
}

func TestNumberLimits(t *testing.T) {
	got := kinds(t, "-9223372036854775808 9223372036854775807")
	assert.Equal(t, []token.Token{token.Int(math.MinInt64), token.Int(math.MaxInt64)}, got)

	_, err := Tokenize("99999999999999999999")
	var d *errors.Diagnostic
	require.ErrorAs(t, err, &d)
	assert.Equal(t, errors.LEXICAL, d.Kind)
	assert.Equal(t, token.Span{From: 0, To: 20}, d.Span)
}

func TestMethodCallOnInteger(t *testing.T) {
	got := kinds(t, "1.max(2)")

	assert.Equal(t, []token.Token{
		token.Int(1),
		token.Punct(token.DOT),
		token.Ident("max"),
		token.Punct(token.LEFT_PAREN),
		token.Int(2),
		token.Punct(token.RIGHT_PAREN),
	}, got)
}

func TestStrings(t *testing.T) {
	got := kinds(t, `"double" 'single' "it's" 'raw\n'`)

	assert.Equal(t, []token.Token{
		token.Str("double"),
		token.Str("single"),
		token.Str("it's"),
		token.Str(`raw\n`),
	}, got)
}

func TestStringCannotSpanLines(t *testing.T) {
	tokens, err := Tokenize("let a = \"open\nclose\"")

	var d *errors.Diagnostic
	require.ErrorAs(t, err, &d)
	assert.Equal(t, errors.LEXICAL, d.Kind)
	assert.Equal(t, token.Char(8), d.Span)
	assert.Len(t, tokens, 3)
}

func TestKeywordsNeedWordBoundary(t *testing.T) {
	got := kinds(t, "testing selfish self newer new classy class")

	assert.Equal(t, []token.Token{
		token.Ident("testing"),
		token.Ident("selfish"),
		token.Kw(token.SELF),
		token.Ident("newer"),
		token.Kw(token.NEW),
		token.Ident("classy"),
		token.Kw(token.CLASS),
	}, got)
}

func TestKeywordsNeedUnicodeWordBoundary(t *testing.T) {
	got := kinds(t, "testé letñ trueñ nullé newÁrbol let")

	assert.Equal(t, []token.Token{
		token.Ident("testé"),
		token.Ident("letñ"),
		token.Ident("trueñ"),
		token.Ident("nullé"),
		token.Ident("newÁrbol"),
		token.Kw(token.LET),
	}, got)
}

func TestBooleansAndNull(t *testing.T) {
	got := kinds(t, "true false null nullable trueish")

	assert.Equal(t, []token.Token{
		token.Bool(true),
		token.Bool(false),
		token.Null(),
		token.Ident("nullable"),
		token.Ident("trueish"),
	}, got)
}

func TestOperators(t *testing.T) {
	got := kinds(t, "== != <= >= && || -> => ! < > = % ^ + * / & | #{ } $ : ;")

	expected := []token.Punctuation{
		token.EQUAL_EQUAL, token.BANG_EQUAL, token.LESS_EQUAL, token.GREATER_EQUAL,
		token.AND, token.OR, token.ARROW, token.FAT_ARROW, token.BANG, token.LESS,
		token.GREATER, token.EQUAL, token.PERCENT, token.CARET, token.PLUS, token.STAR,
		token.SLASH, token.AMPERSAND, token.PIPE, token.HASH, token.LEFT_BRACE,
		token.RIGHT_BRACE, token.DOLLAR, token.COLON, token.SEMICOLON,
	}
	require.Len(t, got, len(expected))
	for i, p := range expected {
		assert.Equal(t, token.Punct(p), got[i], "token %d", i)
	}
}

func TestComments(t *testing.T) {
	got := kinds(t, "let a = 1 // the answer\n// alone")

	assert.Equal(t, []token.Token{
		token.Kw(token.LET),
		token.Ident("a"),
		token.Punct(token.EQUAL),
		token.Int(1),
		token.Comment(" the answer"),
		token.Punct(token.NEWLINE),
		token.Comment(" alone"),
	}, got)
}

func TestUnicodeIdentifiers(t *testing.T) {
	got := kinds(t, "año _private x1")

	assert.Equal(t, []token.Token{token.Ident("año"), token.Ident("_private"), token.Ident("x1")}, got)
}

func TestCarriageReturnIsWhitespace(t *testing.T) {
	got := kinds(t, "a\r\nb")

	assert.Equal(t, []token.Token{token.Ident("a"), token.Punct(token.NEWLINE), token.Ident("b")}, got)
}

func TestLexicalErrorStopsTheStream(t *testing.T) {
	tz := New("let a = @ 1")

	for i := 0; i < 3; i++ {
		_, ok, err := tz.Next()
		require.NoError(t, err)
		require.True(t, ok)
	}

	_, ok, err := tz.Next()
	assert.False(t, ok)
	var d *errors.Diagnostic
	require.ErrorAs(t, err, &d)
	assert.Equal(t, errors.LEXICAL, d.Kind)
	assert.Equal(t, errors.ErrorLexical, d.Code)
	assert.Equal(t, token.Span{From: 8, To: 9}, d.Span)
	assert.Contains(t, d.Message, "'@'")

	_, ok, err = tz.Next()
	assert.False(t, ok)
	assert.NoError(t, err)
}

func TestReadingPastTheEnd(t *testing.T) {
	tz := New("x")

	_, ok, err := tz.Next()
	require.NoError(t, err)
	require.True(t, ok)

	for i := 0; i < 3; i++ {
		_, ok, err = tz.Next()
		assert.False(t, ok)
		assert.NoError(t, err)
	}
}

func TestEmptyInput(t *testing.T) {
	tokens, err := Tokenize("   \t ")
	require.NoError(t, err)
	assert.Empty(t, tokens)
}
