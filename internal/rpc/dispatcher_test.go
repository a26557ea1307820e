package rpc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wordlib-dev/wordlib/internal/wlerrors"
)

func TestStateMachineHappyPath(t *testing.T) {
	m := NewMachine()
	assert.Equal(t, StateUninit, m.State())

	require.NoError(t, m.Admit(MethodInitialize))
	m.AdvanceInitialize()
	assert.Equal(t, StateInitializing, m.State())

	require.NoError(t, m.Admit(MethodInitialized))
	m.AdvanceInitialized()
	assert.Equal(t, StateRunning, m.State())

	require.NoError(t, m.Admit(MethodDidOpen))

	require.NoError(t, m.Admit(MethodShutdown))
	m.AdvanceShutdown()
	assert.Equal(t, StateShuttingDown, m.State())

	assert.Error(t, m.Admit(MethodDidOpen))
	require.NoError(t, m.Admit(MethodExit))
	code := m.AdvanceExit()
	assert.Equal(t, 0, code)
	assert.Equal(t, StateStopped, m.State())
}

func TestAdmitBeforeInitializeRejectsOtherMethods(t *testing.T) {
	m := NewMachine()
	err := m.Admit(MethodDidOpen)
	require.Error(t, err)
	var notInit *wlerrors.NotInitializedError
	assert.ErrorAs(t, err, &notInit)
}

func TestExitWithoutShutdownExitsNonZero(t *testing.T) {
	m := NewMachine()
	m.AdvanceInitialize()
	m.AdvanceInitialized()
	code := m.AdvanceExit()
	assert.Equal(t, 1, code)
}

func TestShuttingDownRejectsEverythingButExit(t *testing.T) {
	m := NewMachine()
	m.AdvanceInitialize()
	m.AdvanceInitialized()
	m.AdvanceShutdown()
	err := m.Admit(MethodCompletion)
	require.Error(t, err)
	var invalidReq *wlerrors.InvalidRequestError
	assert.ErrorAs(t, err, &invalidReq)
	assert.Equal(t, InvalidRequest, ErrorCodeFor(err))
	assert.NoError(t, m.Admit(MethodExit))
}

func TestErrorCodeMapping(t *testing.T) {
	assert.Equal(t, ServerNotInitialized, ErrorCodeFor(&wlerrors.NotInitializedError{}))
	assert.Equal(t, MethodNotFound, ErrorCodeFor(&wlerrors.UnknownMethodError{Method: "x"}))
	assert.Equal(t, InvalidRequest, ErrorCodeFor(&wlerrors.InvalidRequestError{Method: "x"}))
	assert.Equal(t, InvalidParams, ErrorCodeFor(&wlerrors.BadParamsError{Method: "x"}))
	assert.Equal(t, InternalError, ErrorCodeFor(&wlerrors.InsufficientMemoryError{Op: "x"}))
}
