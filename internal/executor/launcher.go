package executor

import (
	"errors"
	"fmt"
	"io/fs"
	"os/exec"
	"syscall"
	"time"

	"github.com/quocvuong92/neosh/internal/logging"
)

// Errors
var (
	ErrEmptyCommand = errors.New("empty command")
	ErrNotFound     = errors.New("command not found")
)

// Result describes how a child process ended
type Result struct {
	Pid      int
	ExitCode int // -1 when the process was killed by a signal
	Signaled bool
	Signal   syscall.Signal
	Duration time.Duration
}

// IsSuccess returns true if the process exited with status 0
func (r *Result) IsSuccess() bool {
	return !r.Signaled && r.ExitCode == 0
}

// String formats the outcome for the diagnostic log
func (r *Result) String() string {
	if r.Signaled {
		return fmt.Sprintf("pid %d killed by signal %d (%s)", r.Pid, int(r.Signal), r.Signal)
	}
	return fmt.Sprintf("pid %d exited with status %d", r.Pid, r.ExitCode)
}

// ProcessLauncher starts programs with os/exec. The child inherits the
// shell's environment and working directory.
type ProcessLauncher struct {
	lookPath func(file string) (string, error)
	log      *logging.FieldLogger
}

// NewLauncher creates a ProcessLauncher searching $PATH. log may be nil.
func NewLauncher(log *logging.FieldLogger) *ProcessLauncher {
	if log == nil {
		log = logging.Discard()
	}
	return &ProcessLauncher{
		lookPath: exec.LookPath,
		log:      log,
	}
}

// Launch runs argv and waits for it. A non-zero exit status or a signal
// death is reported in the Result, not as an error. Errors mean the program
// never ran: it could not be found or could not be started.
func (l *ProcessLauncher) Launch(argv []string, io IOBindings) (*Result, error) {
	if len(argv) == 0 {
		return nil, ErrEmptyCommand
	}

	path, err := l.lookPath(argv[0])
	if err != nil {
		l.log.Debug("lookup failed", logging.Fields{"command": argv[0], "error": err.Error()})
		if errors.Is(err, exec.ErrNotFound) || errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%s: %w", argv[0], ErrNotFound)
		}
		// e.g. a path to a file without execute permission
		return nil, fmt.Errorf("%s: %w", argv[0], err)
	}

	cmd := &exec.Cmd{
		Path:   path,
		Args:   argv,
		Stdin:  io.Stdin,
		Stdout: io.Stdout,
		Stderr: io.Stderr,
	}

	start := time.Now()
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("failed to start %s: %w", argv[0], err)
	}
	l.log.Debug("process started", logging.Fields{"command": argv[0], "pid": cmd.Process.Pid})

	// Wait only returns once the child has exited or been killed; stopped
	// children are not reported. The child is reaped before it returns.
	waitErr := cmd.Wait()

	result := &Result{
		Pid:      cmd.Process.Pid,
		ExitCode: cmd.ProcessState.ExitCode(),
		Duration: time.Since(start),
	}
	if status, ok := cmd.ProcessState.Sys().(syscall.WaitStatus); ok && status.Signaled() {
		result.Signaled = true
		result.Signal = status.Signal()
	}

	var exitErr *exec.ExitError
	if waitErr != nil && !errors.As(waitErr, &exitErr) {
		// Copying to a non-file writer failed; the process itself finished
		l.log.Warn("process I/O error", logging.Fields{"command": argv[0], "error": waitErr.Error()})
	}

	l.log.Debug("process finished", logging.Fields{
		"command":  argv[0],
		"result":   result.String(),
		"duration": result.Duration.String(),
	})
	return result, nil
}
