package editor

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLineBuffer_InsertAndString(t *testing.T) {
	b := NewLineBuffer(4)
	b.InsertString("héllo")

	assert.Equal(t, "héllo", b.String())
	assert.Equal(t, 5, b.Len())
}

func TestLineBuffer_Growth(t *testing.T) {
	b := NewLineBuffer(4)
	caps := []int{b.Cap()}

	for i := 0; i < 20; i++ {
		b.Insert('x')
		require.LessOrEqual(t, b.Len(), b.Cap())
		if c := b.Cap(); c != caps[len(caps)-1] {
			caps = append(caps, c)
		}
	}

	// 4 -> 6 -> 9 -> 13 -> 19 -> 28
	assert.Equal(t, []int{4, 6, 9, 13, 19, 28}, caps)
	assert.Equal(t, strings.Repeat("x", 20), b.String())
}

func TestLineBuffer_GrowthFromOne(t *testing.T) {
	b := NewLineBuffer(0)
	assert.Equal(t, 1, b.Cap())

	b.InsertString("ab")
	assert.Equal(t, 2, b.Cap())
	assert.Equal(t, "ab", b.String())
}

func TestLineBuffer_Backspace(t *testing.T) {
	b := NewLineBuffer(8)

	_, ok := b.Backspace()
	assert.False(t, ok, "backspace on empty buffer")
	assert.Equal(t, 0, b.Len())

	b.InsertString("ab")
	r, ok := b.Backspace()
	require.True(t, ok)
	assert.Equal(t, 'b', r)
	assert.Equal(t, "a", b.String())
}

func TestLineBuffer_Reset(t *testing.T) {
	b := NewLineBuffer(8)
	b.InsertString("git che")

	capBefore := b.Cap()
	b.Reset()
	assert.Equal(t, "", b.String())
	assert.Equal(t, capBefore, b.Cap())
}
