package productfeed

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCursor(t *testing.T) {
	c := NewCursor()
	assert.Equal(t, 1, c.Next())
	assert.True(t, c.HasMore())

	c.Advance()
	c.Advance()
	assert.Equal(t, 3, c.Next())

	c.Exhaust()
	assert.False(t, c.HasMore())
	c.Advance()
	assert.False(t, c.HasMore(), "exhaustion is one-way")
	assert.Equal(t, 4, c.Next())
}
