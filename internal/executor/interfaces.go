// Package executor launches external programs and waits for them to finish.
package executor

import "io"

// Launcher runs an external command to completion.
// This interface enables dependency injection and easier testing.
type Launcher interface {
	// Launch resolves argv[0] on the search path, runs it with the remaining
	// elements as arguments and blocks until it exits or is killed
	Launch(argv []string, io IOBindings) (*Result, error)
}

// IOBindings are the standard streams handed to a child process
type IOBindings struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// Ensure concrete type implements the interface
var _ Launcher = (*ProcessLauncher)(nil)
