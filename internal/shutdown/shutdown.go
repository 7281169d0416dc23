// Package shutdown releases the shell's resources exactly once, either when
// the read loop ends or when a termination signal arrives.
package shutdown

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/quocvuong92/neosh/internal/constants"
	"github.com/quocvuong92/neosh/internal/logging"
)

// Hook releases one resource. It must tolerate a resource that was never
// opened or is already closed.
type Hook func(context.Context) error

// Option configures a Handler
type Option func(*Handler)

// WithOutput sets where the signal notice is printed (default os.Stderr)
func WithOutput(w io.Writer) Option {
	return func(h *Handler) { h.out = w }
}

// WithExit replaces os.Exit, which is called after a signal-driven shutdown
func WithExit(exit func(int)) Option {
	return func(h *Handler) { h.exit = exit }
}

// WithLogger sets the diagnostic logger
func WithLogger(log *logging.FieldLogger) Option {
	return func(h *Handler) { h.log = log }
}

// Handler runs the registered hooks at most once
type Handler struct {
	timeout time.Duration
	hooks   []Hook
	mu      sync.Mutex
	once    sync.Once
	done    chan struct{}
	err     error

	out  io.Writer
	exit func(int)
	log  *logging.FieldLogger
}

// NewHandler creates a new shutdown handler. timeout bounds the context
// passed to the hooks; zero means constants.ShutdownTimeout.
func NewHandler(timeout time.Duration, opts ...Option) *Handler {
	if timeout <= 0 {
		timeout = constants.ShutdownTimeout
	}
	h := &Handler{
		timeout: timeout,
		hooks:   make([]Hook, 0),
		done:    make(chan struct{}),
		out:     os.Stderr,
		exit:    os.Exit,
		log:     logging.Discard(),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// OnShutdown registers a shutdown hook.
// Hooks are called in reverse order of registration.
func (h *Handler) OnShutdown(hook Hook) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.hooks = append(h.hooks, hook)
}

// Shutdown runs every hook once, newest first, and returns their combined
// error. Later calls return the same result without running anything.
func (h *Handler) Shutdown(reason string) error {
	h.once.Do(func() {
		h.log.Info("shutting down", logging.Fields{"reason": reason})

		ctx, cancel := context.WithTimeout(context.Background(), h.timeout)
		defer cancel()

		h.mu.Lock()
		hooks := make([]Hook, len(h.hooks))
		copy(hooks, h.hooks)
		h.mu.Unlock()

		var errs []error
		for i := len(hooks) - 1; i >= 0; i-- {
			if err := hooks[i](ctx); err != nil {
				errs = append(errs, err)
			}
		}
		h.err = errors.Join(errs...)
		close(h.done)
	})
	return h.err
}

// Watch starts listening for sigs (SIGINT and SIGTERM when none are given).
// The first signal prints a notice, runs Shutdown and exits with status 0.
// Cancelling ctx stops watching. Registration is complete when Watch returns.
func (h *Handler) Watch(ctx context.Context, sigs ...os.Signal) {
	if len(sigs) == 0 {
		sigs = []os.Signal{syscall.SIGINT, syscall.SIGTERM}
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, sigs...)

	go func() {
		defer signal.Stop(sigCh)

		select {
		case sig := <-sigCh:
			fmt.Fprintf(h.out, "\n%s: received %s, shutting down\n", constants.AppName, sig)
			h.Shutdown("signal: " + sig.String())
			h.exit(0)
		case <-ctx.Done():
		}
	}()
}

// Done returns a channel that closes when shutdown is complete.
func (h *Handler) Done() <-chan struct{} {
	return h.done
}
