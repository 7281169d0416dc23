// Package editor reads one line at a time from a raw-mode terminal, applying
// backspace edits and tab completion as keys arrive.
package editor

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
	"github.com/muesli/termenv"

	"github.com/quocvuong92/neosh/internal/complete"
	"github.com/quocvuong92/neosh/internal/constants"
	"github.com/quocvuong92/neosh/internal/logging"
	"github.com/quocvuong92/neosh/internal/terminal"
)

// Completer completes the last word of a line
type Completer interface {
	Complete(line string) (complete.Match, bool)
}

// Options configures an Editor
type Options struct {
	Prompt      string
	PromptColor string // ANSI colour for the prompt; empty for none

	// Echo makes the editor write every accepted key back to out. Enable it
	// when the terminal's own echo is off.
	Echo bool

	Completer Completer
	Logger    *logging.FieldLogger
}

// Editor turns keystrokes into completed lines
type Editor struct {
	in  *bufio.Reader
	out *termenv.Output

	prompt    string
	echo      bool
	completer Completer
	log       *logging.FieldLogger

	eof bool
}

// New creates an Editor reading keys from in and writing the display to out
func New(in io.Reader, out io.Writer, opts Options) *Editor {
	var output *termenv.Output
	if opts.PromptColor == "" {
		output = termenv.NewOutput(out, termenv.WithProfile(termenv.Ascii))
	} else {
		output = termenv.NewOutput(out)
	}

	prompt := opts.Prompt
	if opts.PromptColor != "" {
		prompt = output.String(prompt).Foreground(output.Color(opts.PromptColor)).String()
	}

	log := opts.Logger
	if log == nil {
		log = logging.Discard()
	}

	return &Editor{
		in:        bufio.NewReader(in),
		out:       output,
		prompt:    prompt,
		echo:      opts.Echo,
		completer: opts.Completer,
		log:       log,
	}
}

// SetEcho changes the echo policy
func (e *Editor) SetEcho(echo bool) {
	e.echo = echo
}

// ReadLine prints the prompt and reads keys until end of line. It returns
// the completed line without its terminator, or io.EOF when the input is
// exhausted (or Ctrl-D is pressed on an empty line). A final line without
// a terminator is returned first; io.EOF follows on the next call.
func (e *Editor) ReadLine() (string, error) {
	if e.eof {
		return "", io.EOF
	}

	buf := NewLineBuffer(constants.InitialLineCapacity)
	e.out.WriteString(e.prompt)

	for {
		r, _, err := e.in.ReadRune()
		if err != nil {
			if !errors.Is(err, io.EOF) {
				return "", fmt.Errorf("failed to read input: %w", err)
			}
			e.eof = true
			e.endLine()
			if buf.Len() == 0 {
				return "", io.EOF
			}
			return buf.String(), nil
		}

		switch r {
		case terminal.KeyNewline:
			e.endLine()
			return buf.String(), nil
		case terminal.KeyReturn:
			e.skipLineFeed()
			e.endLine()
			return buf.String(), nil
		case terminal.KeyDelete, terminal.KeyBackspace:
			e.backspace(buf)
		case terminal.KeyTab:
			e.complete(buf)
		case terminal.KeyCtrlD:
			if buf.Len() == 0 {
				e.endLine()
				return "", io.EOF
			}
		case terminal.KeyEscape:
			e.skipEscape()
		default:
			if r == utf8.RuneError || unicode.IsControl(r) {
				continue
			}
			buf.Insert(r)
			if e.echo {
				e.out.WriteString(string(r))
			}
		}
	}
}

func (e *Editor) backspace(buf *LineBuffer) {
	r, ok := buf.Backspace()
	if !ok || !e.echo {
		return
	}
	w := runewidth.RuneWidth(r)
	if w == 1 {
		e.out.WriteString(terminal.EraseChar)
		return
	}
	e.out.WriteString(strings.Repeat("\b", w) + strings.Repeat(" ", w) + strings.Repeat("\b", w))
}

func (e *Editor) complete(buf *LineBuffer) {
	if e.completer == nil {
		return
	}

	line := buf.String()
	m, ok := e.completer.Complete(line)
	e.log.Info("autocomplete", logging.Fields{
		"buffer":  line,
		"matched": ok,
		"match":   m.Text,
	})
	if !ok {
		return
	}

	buf.Reset()
	buf.InsertString(m.Apply(line))
	e.redraw(buf)
}

// redraw rewrites the whole display line: prompt followed by the buffer
func (e *Editor) redraw(buf *LineBuffer) {
	if !e.echo {
		return
	}
	e.out.WriteString("\r")
	e.out.ClearLine()
	e.out.WriteString(e.prompt)
	e.out.WriteString(buf.String())
}

func (e *Editor) endLine() {
	if e.echo {
		e.out.WriteString("\n")
	}
}

// skipLineFeed consumes the "\n" of a "\r\n" pair if it has already arrived
func (e *Editor) skipLineFeed() {
	if e.in.Buffered() == 0 {
		return
	}
	if b, err := e.in.Peek(1); err == nil && b[0] == '\n' {
		e.in.ReadByte()
	}
}

// skipEscape discards the remainder of an escape sequence (arrow keys,
// function keys). The tail of a CSI or SS3 sequence may arrive in a later
// read, so it is read until its final byte. Any other byte after ESC is
// left for the caller.
func (e *Editor) skipEscape() {
	b, err := e.in.ReadByte()
	if err != nil {
		return
	}
	if b != '[' && b != 'O' {
		e.in.UnreadByte()
		return
	}
	for {
		c, err := e.in.ReadByte()
		if err != nil || (c >= 0x40 && c <= 0x7e) {
			return
		}
	}
}
