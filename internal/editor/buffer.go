package editor

import "github.com/quocvuong92/neosh/internal/constants"

// LineBuffer is a growable rune buffer. Capacity grows by a factor of 1.5
// whenever an insert finds it full and never shrinks.
type LineBuffer struct {
	data []rune
	n    int
}

// NewLineBuffer creates an empty buffer with the given initial capacity
func NewLineBuffer(capacity int) *LineBuffer {
	if capacity < 1 {
		capacity = 1
	}
	return &LineBuffer{data: make([]rune, capacity)}
}

// Len returns the number of runes in the buffer
func (b *LineBuffer) Len() int {
	return b.n
}

// Cap returns the current capacity in runes
func (b *LineBuffer) Cap() int {
	return len(b.data)
}

// Insert appends r at the end of the buffer
func (b *LineBuffer) Insert(r rune) {
	if b.n == len(b.data) {
		b.grow()
	}
	b.data[b.n] = r
	b.n++
}

// InsertString appends every rune of s
func (b *LineBuffer) InsertString(s string) {
	for _, r := range s {
		b.Insert(r)
	}
}

// Backspace removes the last rune and returns it. ok is false when the
// buffer is already empty, in which case nothing changes.
func (b *LineBuffer) Backspace() (r rune, ok bool) {
	if b.n == 0 {
		return 0, false
	}
	b.n--
	return b.data[b.n], true
}

// Reset empties the buffer, keeping its capacity
func (b *LineBuffer) Reset() {
	b.n = 0
}

// String returns the buffer content
func (b *LineBuffer) String() string {
	return string(b.data[:b.n])
}

func (b *LineBuffer) grow() {
	size := len(b.data) * constants.GrowthNumerator / constants.GrowthDenominator
	if size <= len(b.data) {
		size = len(b.data) + 1
	}
	data := make([]rune, size)
	copy(data, b.data[:b.n])
	b.data = data
}
