package term

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/backmassage/bakesmith/internal/config"
)

func TestResolve(t *testing.T) {
	var buf bytes.Buffer
	assert.True(t, resolve(config.ColorAlways, &buf))
	assert.False(t, resolve(config.ColorNever, &buf))
	// A buffer is never a terminal.
	assert.False(t, resolve(config.ColorAuto, &buf))
}

func TestSet(t *testing.T) {
	t.Cleanup(func() { set(false) })

	set(true)
	assert.True(t, Enabled())
	assert.Equal(t, "\x1b[1;91m", Red)
	assert.Equal(t, "\x1b[1;38;5;208m", Orange)
	assert.Equal(t, "\x1b[0m", NC)

	set(false)
	assert.False(t, Enabled())
	assert.Empty(t, Red)
}
