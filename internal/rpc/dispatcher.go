package rpc

import "github.com/wordlib-dev/wordlib/internal/wlerrors"

// State is one node of the §4.13 server state machine:
//
//	Uninit --initialize(req)--> Initializing --initialized(notif)--> Running
//	Running --shutdown(req)--> ShuttingDown --exit(notif)--> Stopped
type State int

const (
	StateUninit State = iota
	StateInitializing
	StateRunning
	StateShuttingDown
	StateStopped
)

func (s State) String() string {
	switch s {
	case StateUninit:
		return "uninit"
	case StateInitializing:
		return "initializing"
	case StateRunning:
		return "running"
	case StateShuttingDown:
		return "shutting_down"
	case StateStopped:
		return "stopped"
	default:
		return "unknown"
	}
}

// Machine tracks the current server state and validates method admission
// against it (§4.13). It does not dispatch to handlers itself — the
// caller (cmd/wordlib-lsp) still owns the method switch — but it is the
// single place the admission rules live. cmd/wordlib-lsp consults it for
// requests only; notifications are dispatched without calling Admit.
type Machine struct {
	state State
}

// NewMachine starts a machine in StateUninit.
func NewMachine() *Machine { return &Machine{state: StateUninit} }

// State returns the current state.
func (m *Machine) State() State { return m.state }

// Admit checks whether method is allowed in the current state, per
// §4.13's rules, and returns the error the dispatcher should respond
// with if not (nil if admitted). It does not itself transition state:
// call one of Advance* after the corresponding handler succeeds.
func (m *Machine) Admit(method string) error {
	switch m.state {
	case StateUninit:
		if method != MethodInitialize {
			return &wlerrors.NotInitializedError{}
		}
	case StateInitializing:
		if method != MethodInitialized {
			return &wlerrors.NotInitializedError{}
		}
	case StateShuttingDown:
		if method != MethodExit {
			return &wlerrors.InvalidRequestError{Method: method, Reason: "server is shutting down"}
		}
	case StateStopped:
		return &wlerrors.BadParamsError{Method: method, Reason: "server has stopped"}
	case StateRunning:
		// every method in §6's table is admitted
	}
	return nil
}

// AdvanceInitialize transitions Uninit -> Initializing after a successful
// initialize response.
func (m *Machine) AdvanceInitialize() { m.state = StateInitializing }

// AdvanceInitialized transitions Initializing -> Running on the
// initialized notification.
func (m *Machine) AdvanceInitialized() { m.state = StateRunning }

// AdvanceShutdown transitions Running -> ShuttingDown on a shutdown
// request.
func (m *Machine) AdvanceShutdown() { m.state = StateShuttingDown }

// AdvanceExit transitions ShuttingDown -> Stopped on the exit
// notification. ExitCode reports the process exit status §6 mandates:
// 0 iff exit was preceded by shutdown, else 1.
func (m *Machine) AdvanceExit() (exitCode int) {
	wasShuttingDown := m.state == StateShuttingDown
	m.state = StateStopped
	if wasShuttingDown {
		return 0
	}
	return 1
}

// ErrorCodeFor maps an engine/adapter error to the JSON-RPC code the
// dispatcher should respond with (§7's "Adapter response" column).
func ErrorCodeFor(err error) ErrorCode {
	switch err.(type) {
	case *wlerrors.NotInitializedError:
		return ServerNotInitialized
	case *wlerrors.UnknownMethodError:
		return MethodNotFound
	case *wlerrors.InvalidRequestError:
		return InvalidRequest
	case *wlerrors.BadParamsError:
		return InvalidParams
	case *wlerrors.InsufficientMemoryError:
		return InternalError
	case *wlerrors.InvalidInputError:
		return InvalidParams
	default:
		return InternalError
	}
}
