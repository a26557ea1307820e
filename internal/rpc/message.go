// Package rpc implements the JSON-RPC 2.0 / LSP wire layer (§4.13, §6):
// message framing, message-kind discrimination, and the LSP method and
// error-code constants. Grounded on the retrieval pack's own LSP rpc
// package (teleivo-dot's internal/rpc), generalized from that package's
// token/AST-bound types to this engine's word-and-diagnostic domain, and
// on the teacher's cmd/mtlog-lsp/main.go for the framing loop shape.
package rpc

import "encoding/json"

// ErrorCode is a JSON-RPC / LSP error code (§7, §4.13).
type ErrorCode int32

// JSON-RPC 2.0 standard error codes.
const (
	ParseError     ErrorCode = -32700
	InvalidRequest ErrorCode = -32600
	MethodNotFound ErrorCode = -32601
	InvalidParams  ErrorCode = -32602
	InternalError  ErrorCode = -32603
)

// LSP-specific error codes (§4.13).
const (
	ServerNotInitialized ErrorCode = -32002
	UnknownErrorCode     ErrorCode = -32001
)

// LSP method names this server handles (§6).
const (
	MethodInitialize               = "initialize"
	MethodInitialized               = "initialized"
	MethodShutdown                  = "shutdown"
	MethodExit                      = "exit"
	MethodDidOpen                   = "textDocument/didOpen"
	MethodDidChange                 = "textDocument/didChange"
	MethodDidClose                  = "textDocument/didClose"
	MethodCompletion                = "textDocument/completion"
	MethodCodeAction                = "textDocument/codeAction"
	MethodExecuteCommand            = "workspace/executeCommand"
	MethodDidChangeConfiguration    = "workspace/didChangeConfiguration"
	MethodPublishDiagnostics        = "textDocument/publishDiagnostics"
)

// ID is a JSON-RPC request identifier: either a string or a number, per
// the spec. Exactly one of the two is meaningful; which one is tracked by
// isString since the zero value of both fields is otherwise ambiguous
// with a legitimate id of "" or 0.
type ID struct {
	str      string
	num      int64
	isString bool
}

// NewStringID wraps a string id.
func NewStringID(s string) ID { return ID{str: s, isString: true} }

// NewNumberID wraps a numeric id.
func NewNumberID(n int64) ID { return ID{num: n} }

// MarshalJSON encodes the id as whichever JSON type it was constructed
// from.
func (id ID) MarshalJSON() ([]byte, error) {
	if id.isString {
		return json.Marshal(id.str)
	}
	return json.Marshal(id.num)
}

// UnmarshalJSON accepts either a JSON string or number.
func (id *ID) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*id = ID{str: s, isString: true}
		return nil
	}
	var n int64
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*id = ID{num: n}
	return nil
}

// Message is the union of request, response, and notification, following
// §4.13's discrimination rule: presence of ID and Method is a request;
// Method alone (no ID) is a notification; ID plus Result or Error is a
// response.
type Message struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      *ID             `json:"id,omitempty"`
	Method  string          `json:"method,omitempty"`
	Params  json.RawMessage `json:"params,omitempty"`
	Result  json.RawMessage `json:"result,omitempty"`
	Error   *Error          `json:"error,omitempty"`
}

// Error is a JSON-RPC error object.
type Error struct {
	Code    ErrorCode       `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data,omitempty"`
}

// Kind classifies a Message per §4.13.
type Kind int

const (
	KindRequest Kind = iota
	KindNotification
	KindResponse
	KindMalformed // neither pattern matches; e.g. ID with neither Method nor Result/Error
)

// Classify implements §4.13's discrimination rule.
func (m *Message) Classify() Kind {
	switch {
	case m.ID != nil && m.Method != "":
		return KindRequest
	case m.ID == nil && m.Method != "":
		return KindNotification
	case m.ID != nil && (m.Result != nil || m.Error != nil):
		return KindResponse
	default:
		return KindMalformed
	}
}

// NewResponse builds a success response to id.
func NewResponse(id ID, result any) (*Message, error) {
	raw, err := json.Marshal(result)
	if err != nil {
		return nil, err
	}
	return &Message{JSONRPC: "2.0", ID: &id, Result: raw}, nil
}

// NewErrorResponse builds an error response to id.
func NewErrorResponse(id *ID, code ErrorCode, message string) *Message {
	return &Message{JSONRPC: "2.0", ID: id, Error: &Error{Code: code, Message: message}}
}

// NewNotification builds a server-to-client notification (no id).
func NewNotification(method string, params any) (*Message, error) {
	raw, err := json.Marshal(params)
	if err != nil {
		return nil, err
	}
	return &Message{JSONRPC: "2.0", Method: method, Params: raw}, nil
}
