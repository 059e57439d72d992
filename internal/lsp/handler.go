// Package lsp serves parse diagnostics, keyword and declaration
// completion and semantic highlighting over the Language Server Protocol.
package lsp

import (
	"sort"
	"sync"

	"github.com/tliron/commonlog"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"wollok/internal/ast"
	"wollok/internal/parser"
	"wollok/token"
)

var log = commonlog.GetLogger("wollok.lsp")

// document is the server's view of one open file. scope is the tree of the
// last version that parsed cleanly, so completion keeps working while the
// user is in the middle of an edit.
type document struct {
	content string
	result  *parser.ParseResult
	scope   *ast.Scope
}

// WollokHandler implements the LSP server handlers. Documents live in
// memory and are keyed by URI.
type WollokHandler struct {
	mu        sync.RWMutex
	documents map[protocol.DocumentUri]*document
}

func NewWollokHandler() *WollokHandler {
	return &WollokHandler{
		documents: make(map[protocol.DocumentUri]*document),
	}
}

// Initialize responds to the LSP client's initialize request and advertises the server's capabilities
func (h *WollokHandler) Initialize(ctx *glsp.Context, params *protocol.InitializeParams) (any, error) {
	log.Info("initialize")

	return &protocol.InitializeResult{
		Capabilities: protocol.ServerCapabilities{
			TextDocumentSync: &protocol.TextDocumentSyncOptions{
				OpenClose: ptrBool(true),
				Change:    ptrSyncKind(protocol.TextDocumentSyncKindIncremental),
			},
			CompletionProvider: &protocol.CompletionOptions{
				ResolveProvider: ptrBool(false),
			},
			SemanticTokensProvider: &protocol.SemanticTokensOptions{
				Legend: protocol.SemanticTokensLegend{
					TokenTypes:     SemanticTokenTypes,
					TokenModifiers: SemanticTokenModifiers,
				},
				Full: ptrBool(true),
			},
		},
	}, nil
}

func (h *WollokHandler) Initialized(ctx *glsp.Context, params *protocol.InitializedParams) error {
	log.Info("initialized")
	return nil
}

func (h *WollokHandler) Shutdown(ctx *glsp.Context) error {
	log.Info("shutdown")
	return nil
}

func (h *WollokHandler) SetTrace(ctx *glsp.Context, params *protocol.SetTraceParams) error {
	protocol.SetTraceValue(params.Value)
	return nil
}

// TextDocumentDidOpen parses the opened text and publishes its diagnostics.
func (h *WollokHandler) TextDocumentDidOpen(ctx *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	uri := params.TextDocument.URI
	log.Infof("opened %s", uri)

	h.update(ctx, uri, params.TextDocument.Text)
	return nil
}

// TextDocumentDidChange applies the edits in order and reparses. A change
// without a range replaces the whole text.
func (h *WollokHandler) TextDocumentDidChange(ctx *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	uri := params.TextDocument.URI

	h.mu.RLock()
	content := ""
	if doc, ok := h.documents[uri]; ok {
		content = doc.content
	}
	h.mu.RUnlock()

	for _, change := range params.ContentChanges {
		switch c := change.(type) {
		case protocol.TextDocumentContentChangeEventWhole:
			content = c.Text
		case protocol.TextDocumentContentChangeEvent:
			if c.Range == nil {
				content = c.Text
				continue
			}
			lines := newLineIndex(content)
			start := lines.offset(c.Range.Start.Line, c.Range.Start.Character)
			end := max(lines.offset(c.Range.End.Line, c.Range.End.Character), start)
			content = content[:start] + c.Text + content[end:]
		default:
			log.Warningf("ignoring change of type %T for %s", change, uri)
		}
	}

	log.Debugf("changed %s", uri)
	h.update(ctx, uri, content)
	return nil
}

func (h *WollokHandler) TextDocumentDidClose(ctx *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	log.Infof("closed %s", params.TextDocument.URI)

	h.mu.Lock()
	delete(h.documents, params.TextDocument.URI)
	h.mu.Unlock()
	return nil
}

// TextDocumentCompletion offers the reserved words followed by every name
// declared in the document.
func (h *WollokHandler) TextDocumentCompletion(ctx *glsp.Context, params *protocol.CompletionParams) (any, error) {
	items := keywordCompletions()

	h.mu.RLock()
	doc, ok := h.documents[params.TextDocument.URI]
	h.mu.RUnlock()

	if ok && doc.scope != nil {
		seen := make(map[string]bool)
		for _, name := range ast.Declarations(doc.scope) {
			if seen[name] {
				continue
			}
			seen[name] = true
			items = append(items, protocol.CompletionItem{
				Label: name,
				Kind:  ptrCompletionKind(protocol.CompletionItemKindVariable),
			})
		}
	}

	return &protocol.CompletionList{
		IsIncomplete: false,
		Items:        items,
	}, nil
}

// TextDocumentSemanticTokensFull classifies every token of the current
// text. Tokens up to a lexical error are still highlighted.
func (h *WollokHandler) TextDocumentSemanticTokensFull(ctx *glsp.Context, params *protocol.SemanticTokensParams) (*protocol.SemanticTokens, error) {
	h.mu.RLock()
	doc, ok := h.documents[params.TextDocument.URI]
	h.mu.RUnlock()

	if !ok {
		return &protocol.SemanticTokens{Data: []uint32{}}, nil
	}

	tokens := collectSemanticTokens(doc.content, doc.result.Tokens)
	return &protocol.SemanticTokens{
		Data: encodeSemanticTokens(tokens),
	}, nil
}

// Diagnostics returns the published diagnostics for uri, or nil if the
// document is not open.
func (h *WollokHandler) Diagnostics(uri protocol.DocumentUri) []protocol.Diagnostic {
	h.mu.RLock()
	defer h.mu.RUnlock()

	doc, ok := h.documents[uri]
	if !ok {
		return nil
	}
	return ConvertDiagnostics(doc.content, doc.result.Diagnostic)
}

func (h *WollokHandler) update(ctx *glsp.Context, uri protocol.DocumentUri, content string) {
	result := parser.ParseSourceWithTokens(uri, content)

	h.mu.Lock()
	doc, ok := h.documents[uri]
	if !ok {
		doc = &document{}
		h.documents[uri] = doc
	}
	doc.content = content
	doc.result = result
	if !result.Failed() {
		doc.scope = result.Scope
	}
	h.mu.Unlock()

	if result.Failed() {
		log.Debugf("%s: %s", uri, result.Diagnostic.Message)
	}
	publishDiagnostics(ctx, uri, ConvertDiagnostics(content, result.Diagnostic))
}

// publishDiagnostics always sends, so an empty list clears markers left by
// a previous version.
func publishDiagnostics(ctx *glsp.Context, uri protocol.DocumentUri, diagnostics []protocol.Diagnostic) {
	if ctx == nil || ctx.Notify == nil {
		return
	}
	ctx.Notify(protocol.ServerTextDocumentPublishDiagnostics, &protocol.PublishDiagnosticsParams{
		URI:         uri,
		Diagnostics: diagnostics,
	})
}

func keywordCompletions() []protocol.CompletionItem {
	words := make([]string, 0, len(token.KEYWORDS)+3)
	for word := range token.KEYWORDS {
		words = append(words, word)
	}
	words = append(words, "true", "false", "null")
	sort.Strings(words)

	items := make([]protocol.CompletionItem, 0, len(words))
	for _, word := range words {
		items = append(items, protocol.CompletionItem{
			Label: word,
			Kind:  ptrCompletionKind(protocol.CompletionItemKindKeyword),
		})
	}
	return items
}

func ptrBool(b bool) *bool {
	return &b
}

func ptrSyncKind(k protocol.TextDocumentSyncKind) *protocol.TextDocumentSyncKind {
	return &k
}

func ptrCompletionKind(k protocol.CompletionItemKind) *protocol.CompletionItemKind {
	return &k
}
