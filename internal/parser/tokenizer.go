// Package parser splits a completed line into a command name and arguments.
package parser

import (
	"unicode"

	"github.com/quocvuong92/neosh/internal/constants"
)

// Tokenizer splits lines into tokens
type Tokenizer interface {
	Split(line string) []string
}

// WhitespaceTokenizer splits on runs of whitespace. There is no quoting or
// escaping: every non-delimiter rune belongs to a token.
type WhitespaceTokenizer struct {
	capacity int
}

// NewTokenizer creates a WhitespaceTokenizer whose token array starts at
// the default capacity
func NewTokenizer() *WhitespaceTokenizer {
	return &WhitespaceTokenizer{capacity: constants.InitialTokenCapacity}
}

// IsDelimiter reports whether r separates tokens
func IsDelimiter(r rune) bool {
	return unicode.IsSpace(r) || r == '\a'
}

// Split returns the non-empty tokens of line in order. An empty or
// all-whitespace line yields a nil slice. Tokens are copies, so they stay
// valid whatever happens to the caller's buffer.
func (t *WhitespaceTokenizer) Split(line string) []string {
	var tokens []string
	start := -1

	for i, r := range line {
		if IsDelimiter(r) {
			if start >= 0 {
				tokens = t.push(tokens, line[start:i])
				start = -1
			}
			continue
		}
		if start < 0 {
			start = i
		}
	}
	if start >= 0 {
		tokens = t.push(tokens, line[start:])
	}
	return tokens
}

func (t *WhitespaceTokenizer) push(tokens []string, tok string) []string {
	if tokens == nil {
		tokens = make([]string, 0, t.capacity)
	}
	if len(tokens) == cap(tokens) {
		size := cap(tokens) * constants.GrowthNumerator / constants.GrowthDenominator
		if size <= cap(tokens) {
			size = cap(tokens) + 1
		}
		grown := make([]string, len(tokens), size)
		copy(grown, tokens)
		tokens = grown
	}
	return append(tokens, tok)
}
