// Package terminal switches the controlling terminal between its original
// (cooked) mode and the raw mode used by the line editor.
package terminal

import (
	"errors"
	"fmt"
	"os"
	"sync"

	"golang.org/x/term"
)

// ErrNotTerminal is returned by operations that need a real terminal
var ErrNotTerminal = errors.New("not a terminal")

// Fallback size reported when the terminal size cannot be queried
const (
	DefaultWidth  = 80
	DefaultHeight = 24
)

// Controller owns the terminal state snapshot for the process lifetime.
// EnterRaw and ExitRaw must be called in pairs; both are no-ops when the
// input is not a terminal.
type Controller struct {
	mu    sync.Mutex
	in    *os.File
	fd    int
	tty   bool
	saved *term.State
	raw   bool
}

// New creates a Controller for in and captures its current attributes
func New(in *os.File) (*Controller, error) {
	c := &Controller{
		in:  in,
		fd:  int(in.Fd()),
		tty: term.IsTerminal(int(in.Fd())),
	}
	if !c.tty {
		return c, nil
	}

	state, err := term.GetState(c.fd)
	if err != nil {
		return nil, fmt.Errorf("failed to read terminal state: %w", err)
	}
	c.saved = state
	return c, nil
}

// IsTerminal reports whether the controlled file is a terminal
func (c *Controller) IsTerminal() bool {
	return c.tty
}

// IsRaw reports whether raw mode is currently active
func (c *Controller) IsRaw() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.raw
}

// EnterRaw disables canonical input and echo so each keystroke is delivered
// immediately. Signal generation stays enabled so Ctrl-C still raises SIGINT.
func (c *Controller) EnterRaw() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.tty || c.raw {
		return nil
	}
	if err := makeRaw(c.fd); err != nil {
		return fmt.Errorf("failed to enter raw mode: %w", err)
	}
	c.raw = true
	return nil
}

// ExitRaw reapplies the attributes captured by New. It is safe to call when
// raw mode is not active, so it can run on every exit path.
func (c *Controller) ExitRaw() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.tty || !c.raw {
		return nil
	}
	c.raw = false
	if err := term.Restore(c.fd, c.saved); err != nil {
		return fmt.Errorf("failed to restore terminal: %w", err)
	}
	return nil
}

// Size returns the terminal width and height. When the size cannot be
// determined the defaults are returned together with the error.
func (c *Controller) Size() (width, height int, err error) {
	if !c.tty {
		return DefaultWidth, DefaultHeight, ErrNotTerminal
	}
	width, height, err = term.GetSize(c.fd)
	if err != nil || width <= 0 {
		return DefaultWidth, DefaultHeight, err
	}
	return width, height, nil
}
