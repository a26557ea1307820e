// Package wlerrors defines the error taxonomy shared by the engine and the
// LSP adapter (§7). Each kind is a distinct type rather than one collapsed
// error code, following the teacher's per-diagnostic-kind struct style
// (cmd/mtlog-analyzer/analyzer) rather than C-style return codes (§9).
package wlerrors

import "fmt"

// InvalidInputError is raised when a caller passes data the component
// cannot accept: a null byte reaching the tokenizer, or an empty prefix
// where one is disallowed.
type InvalidInputError struct {
	Op     string
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("wordlib: invalid input in %s: %s", e.Op, e.Reason)
}

// NotFoundError is raised when a document URI is not in the store, or a
// word is not present for Engine.Remove.
type NotFoundError struct {
	Kind string // "document" | "word"
	What string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("wordlib: %s not found: %s", e.Kind, e.What)
}

// StaleUpdateError is raised when an incoming document version regresses
// (version <= current). Adapters treat this as a silent no-op, not a
// client-visible error.
type StaleUpdateError struct {
	URI             string
	CurrentVersion  int
	AttemptVersion int
}

func (e *StaleUpdateError) Error() string {
	return fmt.Sprintf("wordlib: stale update for %s: version %d <= current %d",
		e.URI, e.AttemptVersion, e.CurrentVersion)
}

// AlreadyOpenError is raised by a duplicate didOpen for one URI.
type AlreadyOpenError struct {
	URI string
}

func (e *AlreadyOpenError) Error() string {
	return fmt.Sprintf("wordlib: document already open: %s", e.URI)
}

// IOFailureError wraps a persistence read/write failure. The in-memory
// engine state is retained regardless (§7).
type IOFailureError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOFailureError) Error() string {
	return fmt.Sprintf("wordlib: io failure during %s on %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOFailureError) Unwrap() error { return e.Err }

// InsufficientMemoryError is raised when an index's allocator fails to grow
// (e.g. the hash set's resize). The component that raises it must leave its
// prior state unchanged.
type InsufficientMemoryError struct {
	Op string
}

func (e *InsufficientMemoryError) Error() string {
	return fmt.Sprintf("wordlib: insufficient memory during %s", e.Op)
}

// NotInitializedError is raised when a request other than "initialize"
// arrives before initialization has completed.
type NotInitializedError struct{}

func (e *NotInitializedError) Error() string { return "wordlib: server not initialized" }

// UnknownMethodError is raised for a JSON-RPC method not in §6's table.
type UnknownMethodError struct {
	Method string
}

func (e *UnknownMethodError) Error() string {
	return fmt.Sprintf("wordlib: unknown method: %s", e.Method)
}

// BadParamsError is raised when a request's params are missing a required
// field or have the wrong shape.
type BadParamsError struct {
	Method string
	Reason string
}

func (e *BadParamsError) Error() string {
	return fmt.Sprintf("wordlib: bad params for %s: %s", e.Method, e.Reason)
}

// InvalidRequestError is raised when a request is rejected because of the
// connection's own lifecycle state rather than anything wrong with the
// request's shape — e.g. any request but exit arriving while the server
// is shutting down.
type InvalidRequestError struct {
	Method string
	Reason string
}

func (e *InvalidRequestError) Error() string {
	return fmt.Sprintf("wordlib: invalid request %s: %s", e.Method, e.Reason)
}
