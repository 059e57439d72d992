package lsp_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"wollok/internal/lsp"
)

const uri = "file:///tmp/pepita.wlk"

const pepita = "object pepita {\n" +
	"  const energy = 100\n" +
	"  method fly(km) { energy = energy - km }\n" +
	"}\n"

type published struct {
	uri         string
	diagnostics []protocol.Diagnostic
}

// recordingContext captures every publishDiagnostics notification.
func recordingContext(sent *[]published) *glsp.Context {
	return &glsp.Context{
		Notify: func(method string, params any) {
			if method != protocol.ServerTextDocumentPublishDiagnostics {
				return
			}
			p := params.(*protocol.PublishDiagnosticsParams)
			*sent = append(*sent, published{uri: p.URI, diagnostics: p.Diagnostics})
		},
	}
}

func open(t *testing.T, h *lsp.WollokHandler, ctx *glsp.Context, text string) {
	t.Helper()
	err := h.TextDocumentDidOpen(ctx, &protocol.DidOpenTextDocumentParams{
		TextDocument: protocol.TextDocumentItem{URI: uri, LanguageID: "wollok", Version: 1, Text: text},
	})
	require.NoError(t, err)
}

func change(t *testing.T, h *lsp.WollokHandler, ctx *glsp.Context, changes ...any) {
	t.Helper()
	err := h.TextDocumentDidChange(ctx, &protocol.DidChangeTextDocumentParams{
		TextDocument:   protocol.VersionedTextDocumentIdentifier{TextDocumentIdentifier: protocol.TextDocumentIdentifier{URI: uri}, Version: 2},
		ContentChanges: changes,
	})
	require.NoError(t, err)
}

func completionLabels(t *testing.T, h *lsp.WollokHandler) []string {
	t.Helper()
	result, err := h.TextDocumentCompletion(nil, &protocol.CompletionParams{
		TextDocumentPositionParams: protocol.TextDocumentPositionParams{
			TextDocument: protocol.TextDocumentIdentifier{URI: uri},
		},
	})
	require.NoError(t, err)

	list := result.(*protocol.CompletionList)
	labels := make([]string, 0, len(list.Items))
	for _, item := range list.Items {
		labels = append(labels, item.Label)
	}
	return labels
}

func TestInitializeAdvertisesLegend(t *testing.T) {
	h := lsp.NewWollokHandler()

	result, err := h.Initialize(nil, &protocol.InitializeParams{})
	require.NoError(t, err)

	caps := result.(*protocol.InitializeResult).Capabilities
	tokens := caps.SemanticTokensProvider.(*protocol.SemanticTokensOptions)
	assert.Equal(t, lsp.SemanticTokenTypes, tokens.Legend.TokenTypes)
	assert.Equal(t, lsp.SemanticTokenModifiers, tokens.Legend.TokenModifiers)
	assert.NotNil(t, caps.CompletionProvider)
}

func TestOpenPublishesEmptyDiagnostics(t *testing.T) {
	var sent []published
	h := lsp.NewWollokHandler()

	open(t, h, recordingContext(&sent), pepita)

	require.Len(t, sent, 1)
	assert.Equal(t, uri, sent[0].uri)
	assert.NotNil(t, sent[0].diagnostics)
	assert.Empty(t, sent[0].diagnostics)
}

func TestOpenBrokenDocument(t *testing.T) {
	var sent []published
	h := lsp.NewWollokHandler()

	open(t, h, recordingContext(&sent), "object pepita {")

	require.Len(t, sent, 1)
	require.Len(t, sent[0].diagnostics, 1)

	d := sent[0].diagnostics[0]
	assert.Equal(t, protocol.DiagnosticSeverityError, *d.Severity)
	assert.Equal(t, "E0102", d.Code.Value)
	assert.Equal(t, "wollok-parser", *d.Source)
	assert.Contains(t, d.Message, "unexpected end of input")
	assert.Equal(t, protocol.UInteger(0), d.Range.Start.Line)
	assert.Equal(t, sent[0].diagnostics, h.Diagnostics(uri))
}

func TestIncrementalChangeRepairsDocument(t *testing.T) {
	var sent []published
	h := lsp.NewWollokHandler()
	ctx := recordingContext(&sent)

	open(t, h, ctx, "const x = 1 +\n")
	require.Len(t, sent[0].diagnostics, 1)

	// "1 +" becomes "1 + 2"
	change(t, h, ctx, protocol.TextDocumentContentChangeEvent{
		Range: &protocol.Range{
			Start: protocol.Position{Line: 0, Character: 13},
			End:   protocol.Position{Line: 0, Character: 13},
		},
		Text: " 2",
	})

	require.Len(t, sent, 2)
	assert.Empty(t, sent[1].diagnostics)
	assert.Contains(t, completionLabels(t, h), "x")
}

func TestWholeChangeReplacesText(t *testing.T) {
	var sent []published
	h := lsp.NewWollokHandler()
	ctx := recordingContext(&sent)

	open(t, h, ctx, "const a = 1")
	change(t, h, ctx, protocol.TextDocumentContentChangeEventWhole{Text: "const b = 2"})

	labels := completionLabels(t, h)
	assert.Contains(t, labels, "b")
	assert.NotContains(t, labels, "a")
}

func TestCompletionKeepsLastGoodTree(t *testing.T) {
	var sent []published
	h := lsp.NewWollokHandler()
	ctx := recordingContext(&sent)

	open(t, h, ctx, pepita)
	change(t, h, ctx, protocol.TextDocumentContentChangeEventWhole{Text: pepita + "object {"})
	require.Len(t, sent[1].diagnostics, 1)

	labels := completionLabels(t, h)
	assert.Contains(t, labels, "pepita")
	assert.Contains(t, labels, "energy")
	assert.Contains(t, labels, "fly")
	assert.Contains(t, labels, "method", "keywords are always offered")
	assert.Contains(t, labels, "null")
}

func TestCloseForgetsDocument(t *testing.T) {
	h := lsp.NewWollokHandler()
	open(t, h, nil, pepita)

	require.NoError(t, h.TextDocumentDidClose(nil, &protocol.DidCloseTextDocumentParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: uri},
	}))

	assert.Nil(t, h.Diagnostics(uri))
	assert.NotContains(t, completionLabels(t, h), "pepita")
}

func TestTextDocumentSemanticTokensFull(t *testing.T) {
	h := lsp.NewWollokHandler()
	open(t, h, nil, pepita)

	tokens, err := h.TextDocumentSemanticTokensFull(nil, &protocol.SemanticTokensParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: uri},
	})
	require.NoError(t, err)
	require.NotNil(t, tokens)

	decoded, err := decodeSemanticTokens(tokens.Data)
	require.NoError(t, err)
	require.Len(t, decoded, 14)

	assertToken(t, &decoded[0], 0, 0, 6, "keyword", nil)
	assertToken(t, &decoded[1], 0, 7, 6, "type", []string{"declaration"})
	assertToken(t, &decoded[2], 1, 2, 5, "keyword", nil)
	assertToken(t, &decoded[3], 1, 8, 6, "variable", []string{"declaration", "readonly"})
	assertToken(t, &decoded[4], 1, 15, 1, "operator", nil)
	assertToken(t, &decoded[5], 1, 17, 3, "number", nil)
	assertToken(t, &decoded[6], 2, 2, 6, "keyword", nil)
	assertToken(t, &decoded[7], 2, 9, 3, "method", []string{"declaration"})
	assertToken(t, &decoded[8], 2, 13, 2, "variable", nil)
	assertToken(t, &decoded[9], 2, 19, 6, "variable", nil)
	assertToken(t, &decoded[10], 2, 26, 1, "operator", nil)
	assertToken(t, &decoded[11], 2, 28, 6, "variable", nil)
	assertToken(t, &decoded[12], 2, 35, 1, "operator", nil)
	assertToken(t, &decoded[13], 2, 37, 2, "variable", nil)
}

func TestSemanticTokensClassifyContext(t *testing.T) {
	h := lsp.NewWollokHandler()
	open(t, h, nil, "import wollok.game.*\n"+
		"class Ave inherits Animal, Volador {}\n"+
		"const p = new Ave() // otra\n"+
		"p.volar(\"alto\")\n")

	tokens, err := h.TextDocumentSemanticTokensFull(nil, &protocol.SemanticTokensParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: uri},
	})
	require.NoError(t, err)

	decoded, err := decodeSemanticTokens(tokens.Data)
	require.NoError(t, err)

	byText := make(map[string]DecodedToken)
	source := []string{
		"import wollok.game.*",
		"class Ave inherits Animal, Volador {}",
		"const p = new Ave() // otra",
		"p.volar(\"alto\")",
	}
	for _, tok := range decoded {
		line := source[tok.Line]
		byText[line[tok.Char:tok.Char+tok.Length]] = tok
	}

	assert.Equal(t, "namespace", byText["wollok"].Type)
	assert.Equal(t, "namespace", byText["game"].Type)
	assert.Equal(t, "type", byText["Animal"].Type)
	assert.Equal(t, "type", byText["Volador"].Type)
	assert.Equal(t, "comment", byText["// otra"].Type)
	assert.Equal(t, "method", byText["volar"].Type)
	assert.Equal(t, "string", byText["\"alto\""].Type)
	assert.Equal(t, "variable", byText["p"].Type)
}

func TestSemanticTokensUseUTF16Columns(t *testing.T) {
	h := lsp.NewWollokHandler()
	open(t, h, nil, "const 𝜋 = \"ñ\" \nconst b = 1")

	tokens, err := h.TextDocumentSemanticTokensFull(nil, &protocol.SemanticTokensParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: uri},
	})
	require.NoError(t, err)

	decoded, err := decodeSemanticTokens(tokens.Data)
	require.NoError(t, err)
	require.Len(t, decoded, 8)

	assertToken(t, &decoded[1], 0, 6, 2, "variable", []string{"declaration", "readonly"})
	assertToken(t, &decoded[2], 0, 9, 1, "operator", nil)
	assertToken(t, &decoded[3], 0, 11, 3, "string", nil)
	assertToken(t, &decoded[5], 1, 6, 1, "variable", []string{"declaration", "readonly"})
}

func TestSemanticTokensForUnknownDocument(t *testing.T) {
	h := lsp.NewWollokHandler()

	tokens, err := h.TextDocumentSemanticTokensFull(nil, &protocol.SemanticTokensParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: "file:///nope.wlk"},
	})
	require.NoError(t, err)
	assert.Empty(t, tokens.Data)
}

type DecodedToken struct {
	Index     int
	Line      uint32
	Char      uint32
	Length    uint32
	Type      string
	Modifiers []string
}

// decodeSemanticTokens undoes the delta encoding. Lines and characters
// stay 0-based.
func decodeSemanticTokens(raw []uint32) ([]DecodedToken, error) {
	if len(raw)%5 != 0 {
		return nil, fmt.Errorf("raw token data length %d is not a multiple of 5", len(raw))
	}

	var (
		decoded []DecodedToken
		line    uint32
		char    uint32
	)

	for i := 0; i < len(raw); i += 5 {
		deltaLine := raw[i]
		deltaStart := raw[i+1]

		if deltaLine == 0 {
			char += deltaStart
		} else {
			line += deltaLine
			char = deltaStart
		}

		var modifiers []string
		for j, name := range lsp.SemanticTokenModifiers {
			if raw[i+4]&(1<<j) != 0 {
				modifiers = append(modifiers, name)
			}
		}

		decoded = append(decoded, DecodedToken{
			Index:     i / 5,
			Line:      line,
			Char:      char,
			Length:    raw[i+2],
			Type:      lsp.SemanticTokenTypes[raw[i+3]],
			Modifiers: modifiers,
		})
	}

	return decoded, nil
}

func assertToken(t *testing.T, token *DecodedToken, expectedLine, expectedChar, expectedLength uint32, expectedType string, expectedModifiers []string) {
	t.Helper()
	require.Equal(t, expectedLine, token.Line, "line mismatch (token %d)", token.Index)
	require.Equal(t, expectedChar, token.Char, "char mismatch (token %d)", token.Index)
	require.Equal(t, expectedLength, token.Length, "length mismatch (token %d)", token.Index)
	require.Equal(t, expectedType, token.Type, "type mismatch (token %d)", token.Index)
	require.Equal(t, expectedModifiers, token.Modifiers, "modifier mismatch (token %d)", token.Index)
}
