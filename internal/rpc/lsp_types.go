package rpc

import "github.com/wordlib-dev/wordlib/core"

// Position is the wire shape of core.Position (§4.9): LSP calls the
// UTF-16 column "character".
type Position struct {
	Line      int `json:"line"`
	Character int `json:"character"`
}

// Range is the wire shape of core.Range.
type Range struct {
	Start Position `json:"start"`
	End   Position `json:"end"`
}

// FromPosition converts a core.Position to its wire shape.
func FromPosition(p core.Position) Position {
	return Position{Line: p.Line, Character: p.Column}
}

// ToPosition converts a wire Position to core.Position.
func (p Position) ToPosition() core.Position {
	return core.Position{Line: p.Line, Column: p.Character}
}

// FromRange converts a core.Range to its wire shape.
func FromRange(r core.Range) Range {
	return Range{Start: FromPosition(r.Start), End: FromPosition(r.End)}
}

// Diagnostic is the wire shape of core.Diagnostic (§3, §4.10). Severity,
// Code, and Message are emitted; the byte Span is not part of the LSP
// wire format (only Range is).
type Diagnostic struct {
	Range    Range  `json:"range"`
	Severity int    `json:"severity"`
	Code     string `json:"code"`
	Source   string `json:"source"`
	Message  string `json:"message"`
}

// FromDiagnostic converts a core.Diagnostic to its wire shape.
func FromDiagnostic(d core.Diagnostic) Diagnostic {
	return Diagnostic{
		Range:    FromRange(d.Range),
		Severity: d.Severity.LSPValue(),
		Code:     d.Code,
		Source:   d.Source,
		Message:  d.Message,
	}
}

// FromDiagnostics converts a slice, never returning nil (so it encodes as
// "[]" rather than "null" — an empty publish must still look like a
// clearing publish to the client, §4.10).
func FromDiagnostics(diags []core.Diagnostic) []Diagnostic {
	out := make([]Diagnostic, len(diags))
	for i, d := range diags {
		out[i] = FromDiagnostic(d)
	}
	return out
}

// TextDocumentItem is the wire shape of a didOpen text document (§6).
type TextDocumentItem struct {
	URI        string `json:"uri"`
	LanguageID string `json:"languageId"`
	Version    int    `json:"version"`
	Text       string `json:"text"`
}

// TextDocumentIdentifier identifies a document by URI alone.
type TextDocumentIdentifier struct {
	URI string `json:"uri"`
}

// VersionedTextDocumentIdentifier adds a version to a document identity.
type VersionedTextDocumentIdentifier struct {
	URI     string `json:"uri"`
	Version int    `json:"version"`
}

// DidOpenTextDocumentParams is the didOpen notification payload.
type DidOpenTextDocumentParams struct {
	TextDocument TextDocumentItem `json:"textDocument"`
}

// TextDocumentContentChangeEvent carries full-sync text (§1 Non-goals: no
// incremental sync, so Range/RangeLength are never populated by this
// server and are not modeled here).
type TextDocumentContentChangeEvent struct {
	Text string `json:"text"`
}

// DidChangeTextDocumentParams is the didChange notification payload.
type DidChangeTextDocumentParams struct {
	TextDocument   VersionedTextDocumentIdentifier  `json:"textDocument"`
	ContentChanges []TextDocumentContentChangeEvent `json:"contentChanges"`
}

// DidCloseTextDocumentParams is the didClose notification payload.
type DidCloseTextDocumentParams struct {
	TextDocument TextDocumentIdentifier `json:"textDocument"`
}

// PublishDiagnosticsParams is the server-to-client publish payload (§4.10).
type PublishDiagnosticsParams struct {
	URI         string       `json:"uri"`
	Version     *int         `json:"version,omitempty"`
	Diagnostics []Diagnostic `json:"diagnostics"`
}

// CompletionParams is the textDocument/completion request payload.
type CompletionParams struct {
	TextDocument TextDocumentIdentifier `json:"textDocument"`
	Position     Position               `json:"position"`
}

// CompletionItem is one entry of a completion response (§4.11).
type CompletionItem struct {
	Label    string `json:"label"`
	Kind     int    `json:"kind"`
	SortText string `json:"sortText"`
}

// textCompletionItemKind is the LSP CompletionItemKind for "Text" (1).
const textCompletionItemKind = 1

// CompletionList is the textDocument/completion response (§4.11).
type CompletionList struct {
	IsIncomplete bool             `json:"isIncomplete"`
	Items        []CompletionItem `json:"items"`
}

// CodeActionContext carries the diagnostics the client wants actions for.
type CodeActionContext struct {
	Diagnostics []Diagnostic `json:"diagnostics"`
}

// CodeActionParams is the textDocument/codeAction request payload.
type CodeActionParams struct {
	TextDocument TextDocumentIdentifier `json:"textDocument"`
	Range        Range                  `json:"range"`
	Context      CodeActionContext      `json:"context"`
}

// Command is an LSP command reference, either standalone or embedded in a
// CodeAction.
type Command struct {
	Title     string   `json:"title"`
	Command   string   `json:"command"`
	Arguments []string `json:"arguments,omitempty"`
}

// CodeAction is one textDocument/codeAction response entry (§4.12).
type CodeAction struct {
	Title   string      `json:"title"`
	Kind    string      `json:"kind"`
	Command Command     `json:"command"`
	Diagnostics []Diagnostic `json:"diagnostics,omitempty"`
}

// ExecuteCommandParams is the workspace/executeCommand request payload.
type ExecuteCommandParams struct {
	Command   string   `json:"command"`
	Arguments []string `json:"arguments,omitempty"`
}

// WordlibSettings is the wire shape of the "wordlib" settings key (§6).
type WordlibSettings struct {
	DiagnosticSeverity    string `json:"diagnosticSeverity"`
	CaseSensitive         bool   `json:"caseSensitive"`
	MaxSuggestionDistance int    `json:"maxSuggestionDistance"`
	DictionaryPath        string `json:"dictionaryPath"`
}

// DidChangeConfigurationParams wraps the settings key; other top-level
// keys in the settings object are ignored.
type DidChangeConfigurationParams struct {
	Settings struct {
		Wordlib WordlibSettings `json:"wordlib"`
	} `json:"settings"`
}

// InitializeParams is the initialize request payload, trimmed to the
// fields this server consults (§6): the workspace root.
type InitializeParams struct {
	RootURI string `json:"rootUri"`
}

// ServerCapabilities is the capabilities object returned from initialize
// (§6): textDocumentSync, completionProvider, codeActionProvider,
// executeCommandProvider.
type ServerCapabilities struct {
	TextDocumentSync      TextDocumentSyncOptions `json:"textDocumentSync"`
	CompletionProvider    CompletionOptions       `json:"completionProvider"`
	CodeActionProvider    CodeActionOptions       `json:"codeActionProvider"`
	ExecuteCommandProvider ExecuteCommandOptions  `json:"executeCommandProvider"`
}

// TextDocumentSyncOptions advertises full-sync, open/close notifications.
type TextDocumentSyncOptions struct {
	OpenClose bool `json:"openClose"`
	Change    int  `json:"change"` // 1 = full
}

// CompletionOptions advertises no trigger characters (§6).
type CompletionOptions struct {
	TriggerCharacters []string `json:"triggerCharacters"`
}

// CodeActionOptions advertises the single "quickfix" kind (§6).
type CodeActionOptions struct {
	CodeActionKinds []string `json:"codeActionKinds"`
}

// ExecuteCommandOptions advertises the two commands this server supports
// (§4.12, §6).
type ExecuteCommandOptions struct {
	Commands []string `json:"commands"`
}

// InitializeResult is the initialize response payload.
type InitializeResult struct {
	Capabilities ServerCapabilities `json:"capabilities"`
}

// Capabilities returns the fixed capabilities object §6 specifies.
func Capabilities() ServerCapabilities {
	return ServerCapabilities{
		TextDocumentSync:   TextDocumentSyncOptions{OpenClose: true, Change: 1},
		CompletionProvider: CompletionOptions{TriggerCharacters: []string{}},
		CodeActionProvider: CodeActionOptions{CodeActionKinds: []string{"quickfix"}},
		ExecuteCommandProvider: ExecuteCommandOptions{
			Commands: []string{"wordlib.addWord", "wordlib.ignoreWord"},
		},
	}
}
