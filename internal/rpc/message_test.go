package rpc

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyRequest(t *testing.T) {
	id := NewNumberID(1)
	m := Message{ID: &id, Method: "initialize"}
	assert.Equal(t, KindRequest, m.Classify())
}

func TestClassifyNotification(t *testing.T) {
	m := Message{Method: "initialized"}
	assert.Equal(t, KindNotification, m.Classify())
}

func TestClassifyResponse(t *testing.T) {
	id := NewNumberID(1)
	raw := json.RawMessage(`{}`)
	m := Message{ID: &id, Result: raw}
	assert.Equal(t, KindResponse, m.Classify())
}

func TestClassifyMalformed(t *testing.T) {
	m := Message{}
	assert.Equal(t, KindMalformed, m.Classify())
}

func TestIDRoundTripString(t *testing.T) {
	id := NewStringID("abc")
	data, err := json.Marshal(id)
	require.NoError(t, err)
	assert.Equal(t, `"abc"`, string(data))

	var got ID
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, id, got)
}

func TestIDRoundTripNumber(t *testing.T) {
	id := NewNumberID(42)
	data, err := json.Marshal(id)
	require.NoError(t, err)
	assert.Equal(t, `42`, string(data))

	var got ID
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, id, got)
}

func TestNewResponseMarshalsResult(t *testing.T) {
	msg, err := NewResponse(NewNumberID(1), map[string]int{"count": 3})
	require.NoError(t, err)
	assert.JSONEq(t, `{"count":3}`, string(msg.Result))
}
