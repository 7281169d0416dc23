package history

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/quocvuong92/neosh/internal/constants"
)

// TimestampLayout is the layout used for the timestamp of each entry
const TimestampLayout = time.ANSIC

// ErrClosed is returned by Append after the log has been closed
var ErrClosed = errors.New("history log is closed")

// Entry is one parsed history record
type Entry struct {
	Line string
	Time time.Time
}

// History is an append-only history log backed by a file.
// Each entry is written as: line + separator + timestamp + "\n".
type History struct {
	mu     sync.Mutex
	path   string
	file   *os.File
	w      *bufio.Writer
	closed bool

	now func() time.Time
}

// Open opens path in append mode, creating the file and its directory if
// needed. Existing content is never truncated.
func Open(path string) (*History, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return nil, fmt.Errorf("failed to create history directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
	if err != nil {
		return nil, fmt.Errorf("failed to open history file %s: %w", path, err)
	}
	return &History{
		path: path,
		file: f,
		w:    bufio.NewWriter(f),
		now:  time.Now,
	}, nil
}

// Path returns the file backing the log
func (h *History) Path() string {
	return h.path
}

// Append records line. The entry is flushed before Append returns so a
// crash never loses an accepted line.
func (h *History) Append(line string) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return ErrClosed
	}

	h.w.WriteString(line)
	h.w.WriteString(constants.HistorySeparator)
	h.w.WriteString(h.now().Format(TimestampLayout))
	h.w.WriteByte('\n')
	if err := h.w.Flush(); err != nil {
		return fmt.Errorf("failed to write history: %w", err)
	}
	return nil
}

// Recent reads the log back and returns up to n of the newest entries.
// Lines that do not carry a parsable timestamp are returned with a zero Time.
func (h *History) Recent(n int) ([]Entry, error) {
	if n <= 0 {
		return nil, nil
	}

	h.mu.Lock()
	if !h.closed {
		h.w.Flush()
	}
	h.mu.Unlock()

	f, err := os.Open(h.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read history: %w", err)
	}
	defer f.Close()

	// Lines have no length limit, so read with a Reader rather than a Scanner.
	ring := make([]Entry, 0, n)
	r := bufio.NewReader(f)
	for {
		raw, err := r.ReadString('\n')
		if raw != "" {
			if len(ring) == n {
				ring = ring[1:]
			}
			ring = append(ring, parseEntry(strings.TrimSuffix(raw, "\n")))
		}
		if errors.Is(err, io.EOF) {
			return ring, nil
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read history: %w", err)
		}
	}
}

// Close flushes pending data and closes the file. Later calls are no-ops.
func (h *History) Close() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return nil
	}
	h.closed = true

	flushErr := h.w.Flush()
	closeErr := h.file.Close()
	if flushErr != nil {
		return fmt.Errorf("failed to flush history: %w", flushErr)
	}
	return closeErr
}

func parseEntry(raw string) Entry {
	i := strings.LastIndex(raw, constants.HistorySeparator)
	if i < 0 {
		return Entry{Line: raw}
	}
	ts, err := time.Parse(TimestampLayout, raw[i+len(constants.HistorySeparator):])
	if err != nil {
		return Entry{Line: raw}
	}
	return Entry{Line: raw[:i], Time: ts}
}
