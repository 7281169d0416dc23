// Package complete implements prefix completion of the last word on a line
// against a fixed, ordered suggestion list.
package complete

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/elk-language/go-prompt"
)

// Match describes a completion of the word starting at byte offset Start
type Match struct {
	Start int    // byte offset of the current word in the line
	Word  string // the word that was completed
	Text  string // the suggestion replacing Word
}

// Apply returns line with the completed word replaced by the suggestion.
// Everything before the word is left untouched.
func (m Match) Apply(line string) string {
	return line[:m.Start] + m.Text
}

// Completer holds the suggestion list. It is immutable after New and safe
// for concurrent use.
type Completer struct {
	suggestions []prompt.Suggest
}

// New creates a Completer over words, keeping their order. Empty words are
// skipped.
func New(words []string) *Completer {
	suggestions := make([]prompt.Suggest, 0, len(words))
	for _, w := range words {
		if w == "" {
			continue
		}
		suggestions = append(suggestions, prompt.Suggest{Text: w})
	}
	return &Completer{suggestions: suggestions}
}

// Complete finds the first suggestion, in list order, that starts with the
// last whitespace-delimited word of line. An empty word never matches.
func (c *Completer) Complete(line string) (Match, bool) {
	start := LastWordStart(line)
	word := line[start:]
	if word == "" {
		return Match{}, false
	}

	found := prompt.FilterHasPrefix(c.suggestions, word, false)
	if len(found) == 0 {
		return Match{}, false
	}
	return Match{Start: start, Word: word, Text: found[0].Text}, true
}

// LastWordStart returns the byte offset just past the last whitespace rune
// in line, or 0 if line has none.
func LastWordStart(line string) int {
	i := strings.LastIndexFunc(line, unicode.IsSpace)
	if i < 0 {
		return 0
	}
	_, size := utf8.DecodeRuneInString(line[i:])
	return i + size
}
