package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIgnoreSet(t *testing.T) {
	s := NewIgnoreSet()
	assert.False(t, s.Contains("quikc"))
	s.Add("quikc")
	assert.True(t, s.Contains("quikc"))
	assert.Equal(t, 1, s.Count())
}
