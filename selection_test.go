package livechart

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSelection(t *testing.T) {
	var s Selection
	assert.False(t, s.IsSet())

	s.Set(NewSelection(1, 2))
	assert.True(t, s.IsSet())
	assert.Equal(t, 1, s.Column())
	assert.Equal(t, 2, s.Value())
	assert.True(t, s.Is(1, 2))
	assert.False(t, s.Is(2, 1))

	s.Clear()
	assert.False(t, s.IsSet())
	assert.False(t, s.Is(0, 0))

	s.Set(NewSelection(-1, 0))
	assert.False(t, s.IsSet())
}
