// Package display handles user-facing output that is not part of the line
// editor: error and status messages, and markdown rendering.
package display

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/muesli/termenv"
)

// Colours used for status messages
const (
	colorError   = "1"
	colorWarning = "3"
	colorSuccess = "2"
)

var (
	stdout = termenv.NewOutput(os.Stdout)
	stderr = termenv.NewOutput(os.Stderr)
)

// ShowError prints an error message to stderr
func ShowError(msg string) {
	fmt.Fprintln(stderr, stderr.String("Error: "+msg).Foreground(stderr.Color(colorError)))
}

// ShowWarning prints a warning to stderr
func ShowWarning(msg string) {
	fmt.Fprintln(stderr, stderr.String("Warning: "+msg).Foreground(stderr.Color(colorWarning)))
}

// ShowSuccess prints a confirmation to stdout
func ShowSuccess(msg string) {
	fmt.Fprintln(stdout, stdout.String(msg).Foreground(stdout.Color(colorSuccess)))
}

// NewMarkdownRenderer returns a function rendering markdown for a terminal
// of the given width
func NewMarkdownRenderer(width int) (func(string) (string, error), error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create markdown renderer: %w", err)
	}

	return func(markdown string) (string, error) {
		out, err := r.Render(markdown)
		if err != nil {
			return "", err
		}
		return strings.TrimLeft(out, "\n"), nil
	}, nil
}
