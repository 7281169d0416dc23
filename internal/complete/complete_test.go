package complete

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var defaultWords = []string{"help", "hello", "history", "halt", "hack"}

func TestComplete(t *testing.T) {
	c := New(defaultWords)

	tests := []struct {
		name    string
		line    string
		want    string
		matched bool
	}{
		{"first match by list order", "he", "help", true},
		{"longer prefix", "hel", "help", true},
		{"disambiguated", "hell", "hello", true},
		{"single letter", "h", "help", true},
		{"exact word", "halt", "halt", true},
		{"no match", "zz", "zz", false},
		{"case sensitive", "HE", "HE", false},
		{"empty line", "", "", false},
		{"trailing space", "git ", "git ", false},
		{"last word only", "sudo hi", "sudo history", true},
		{"tab separated", "x\tha", "x\thalt", true},
		{"earlier words untouched", "he he", "he help", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, ok := c.Complete(tt.line)
			assert.Equal(t, tt.matched, ok)

			got := tt.line
			if ok {
				got = m.Apply(tt.line)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestComplete_MatchFields(t *testing.T) {
	m, ok := New(defaultWords).Complete("cd ha")
	require.True(t, ok)

	assert.Equal(t, 3, m.Start)
	assert.Equal(t, "ha", m.Word)
	assert.Equal(t, "halt", m.Text)
}

func TestNew_SkipsEmptyWords(t *testing.T) {
	c := New([]string{"", "ls", ""})

	require.Len(t, c.suggestions, 1)
	assert.Equal(t, "ls", c.suggestions[0].Text)
}

func TestLastWordStart(t *testing.T) {
	tests := []struct {
		line string
		want int
	}{
		{"", 0},
		{"ls", 0},
		{"ls ", 3},
		{"ls -la", 3},
		{"a\u00a0b", 3}, // non-breaking space is two bytes
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, LastWordStart(tt.line), "line %q", tt.line)
	}
}
