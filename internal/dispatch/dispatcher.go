package dispatch

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/quocvuong92/neosh/internal/executor"
	"github.com/quocvuong92/neosh/internal/logging"
)

// Dispatcher runs one tokenized line
type Dispatcher struct {
	registry *Registry
	launcher executor.Launcher
	io       executor.IOBindings
	log      *logging.FieldLogger
}

// NewDispatcher creates a Dispatcher. log may be nil.
func NewDispatcher(registry *Registry, launcher executor.Launcher, io executor.IOBindings, log *logging.FieldLogger) *Dispatcher {
	if log == nil {
		log = logging.Discard()
	}
	return &Dispatcher{
		registry: registry,
		launcher: launcher,
		io:       io,
		log:      log,
	}
}

// Dispatch runs tokens and reports whether the shell should continue.
//   - no tokens: nothing happens
//   - a builtin name: the builtin decides
//   - anything else: the program is launched and waited for. Launch
//     failures are reported and never stop the shell.
func (d *Dispatcher) Dispatch(tokens []string) Status {
	if len(tokens) == 0 {
		return Continue
	}

	if b, ok := d.registry.Lookup(tokens[0]); ok {
		status := b.Run(tokens[1:], d.io)
		d.log.Debug("builtin", logging.Fields{"name": b.Name(), "status": status.String()})
		return status
	}

	result, err := d.launcher.Launch(tokens, d.io)
	if err != nil {
		d.reportLaunchError(tokens[0], err)
		return Continue
	}
	if !result.IsSuccess() {
		d.log.Info("command failed", logging.Fields{"command": tokens[0], "result": result.String()})
	}
	return Continue
}

func (d *Dispatcher) reportLaunchError(name string, err error) {
	d.log.Error("launch failed", err, logging.Fields{"command": name})

	if errors.Is(err, executor.ErrNotFound) {
		fmt.Fprintf(d.io.Stderr, "neosh: %s: command not found\n", name)
		return
	}
	if errors.Is(err, fs.ErrPermission) {
		fmt.Fprintf(d.io.Stderr, "neosh: %s: permission denied\n", name)
		return
	}
	fmt.Fprintf(d.io.Stderr, "neosh: %v\n", err)
}
