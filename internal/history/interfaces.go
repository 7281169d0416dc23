// Package history provides the append-only command history log.
package history

// Recorder appends accepted lines to the history log.
// This interface enables dependency injection and easier testing.
type Recorder interface {
	// Append writes one entry for line, stamped with the current time
	Append(line string) error

	// Close flushes and releases the log. Safe to call more than once.
	Close() error
}

// Reader returns previously recorded entries.
type Reader interface {
	// Recent returns up to n of the most recent entries, oldest first
	Recent(n int) ([]Entry, error)
}

// Ensure concrete type implements the interfaces
var (
	_ Recorder = (*History)(nil)
	_ Reader   = (*History)(nil)
)
