// Package dispatch maps a tokenized line to a builtin or an external program.
package dispatch

import (
	"errors"
	"fmt"

	"github.com/quocvuong92/neosh/internal/executor"
)

// Status tells the read loop whether to keep going
type Status int

const (
	// Terminate asks the shell to leave its read loop
	Terminate Status = iota
	// Continue asks the shell to read the next line
	Continue
)

// String returns the string representation of the status
func (s Status) String() string {
	switch s {
	case Terminate:
		return "terminate"
	case Continue:
		return "continue"
	default:
		return "unknown"
	}
}

// ErrDuplicateBuiltin is returned when a name is registered twice
var ErrDuplicateBuiltin = errors.New("builtin already registered")

// Builtin is a command run inside the shell process
type Builtin interface {
	// Name is the command word that selects the builtin
	Name() string

	// Description is the one-line summary shown by help
	Description() string

	// Run executes the builtin with the arguments following its name
	Run(args []string, io executor.IOBindings) Status
}

// Registry is an ordered set of builtins with unique names. It is filled
// once at startup and only read afterwards.
type Registry struct {
	builtins []Builtin
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{}
}

// Register appends b. Names must be unique.
func (r *Registry) Register(b Builtin) error {
	if _, ok := r.Lookup(b.Name()); ok {
		return fmt.Errorf("%s: %w", b.Name(), ErrDuplicateBuiltin)
	}
	r.builtins = append(r.builtins, b)
	return nil
}

// Lookup scans the builtins in registration order and returns the first
// whose name equals name exactly
func (r *Registry) Lookup(name string) (Builtin, bool) {
	for _, b := range r.builtins {
		if b.Name() == name {
			return b, true
		}
	}
	return nil, false
}

// All returns the builtins in registration order
func (r *Registry) All() []Builtin {
	return append([]Builtin(nil), r.builtins...)
}

// Len returns the number of registered builtins
func (r *Registry) Len() int {
	return len(r.builtins)
}
