package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"

	"github.com/quocvuong92/neosh/internal/complete"
	"github.com/quocvuong92/neosh/internal/config"
	"github.com/quocvuong92/neosh/internal/dispatch"
	"github.com/quocvuong92/neosh/internal/display"
	"github.com/quocvuong92/neosh/internal/editor"
	"github.com/quocvuong92/neosh/internal/executor"
	"github.com/quocvuong92/neosh/internal/history"
	"github.com/quocvuong92/neosh/internal/logging"
	"github.com/quocvuong92/neosh/internal/parser"
	"github.com/quocvuong92/neosh/internal/shutdown"
	"github.com/quocvuong92/neosh/internal/terminal"
)

// Session is the shell's process context. It owns every long-lived
// resource and is the only place they are wired together.
type Session struct {
	id  string
	cfg *config.Config

	term       *terminal.Controller
	editor     *editor.Editor
	tokenizer  parser.Tokenizer
	dispatcher *dispatch.Dispatcher
	history    history.Recorder
	shutdown   *shutdown.Handler

	diag   *logging.Logger
	log    *logging.FieldLogger
	stderr io.Writer
}

// NewSession opens the log files and builds the components. Nothing is
// left open when it returns an error.
func NewSession(cfg *config.Config, in *os.File, out, errOut io.Writer) (*Session, error) {
	diag, err := logging.OpenFile(cfg.ErrorLogFile, logging.Options{
		Level:  cfg.LogLevelValue(),
		Format: cfg.LogFormatValue(),
	})
	if err != nil {
		return nil, err
	}

	hist, err := history.Open(cfg.HistoryFile)
	if err != nil {
		diag.Close()
		return nil, err
	}

	ctrl, err := terminal.New(in)
	if err != nil {
		hist.Close()
		diag.Close()
		return nil, err
	}

	s := &Session{
		id:        uuid.New().String(),
		cfg:       cfg,
		term:      ctrl,
		tokenizer: parser.NewTokenizer(),
		history:   hist,
		diag:      diag,
		stderr:    errOut,
	}
	s.log = diag.WithFields(logging.Fields{"session": s.id})

	s.editor = editor.New(in, out, editor.Options{
		Prompt:      cfg.Prompt,
		PromptColor: cfg.PromptColor,
		Echo:        ctrl.IsTerminal(),
		Completer:   complete.New(cfg.Suggestions),
		Logger:      s.log,
	})

	registry, err := dispatch.DefaultRegistry(dispatch.Deps{
		History: hist,
		Render:  s.newRenderer(),
		Log:     s.log,
	})
	if err != nil {
		hist.Close()
		diag.Close()
		return nil, err
	}
	streams := executor.IOBindings{Stdin: in, Stdout: out, Stderr: errOut}
	s.dispatcher = dispatch.NewDispatcher(registry, executor.NewLauncher(s.log), streams, s.log)

	// Run in reverse: terminal first, diagnostic log last
	s.shutdown = shutdown.NewHandler(0, shutdown.WithOutput(errOut), shutdown.WithLogger(s.log))
	s.shutdown.OnShutdown(func(context.Context) error { return diag.Close() })
	s.shutdown.OnShutdown(func(context.Context) error { return hist.Close() })
	s.shutdown.OnShutdown(func(context.Context) error { return ctrl.ExitRaw() })

	return s, nil
}

// ID returns the session identifier written to every diagnostic entry
func (s *Session) ID() string {
	return s.id
}

func (s *Session) newRenderer() dispatch.Renderer {
	if !s.cfg.Render {
		return nil
	}
	width, _, _ := s.term.Size()
	render, err := display.NewMarkdownRenderer(width)
	if err != nil {
		s.log.Warn("markdown rendering disabled", logging.Fields{"error": err.Error()})
		display.ShowWarning("markdown rendering disabled, falling back to plain text")
		return nil
	}
	return render
}

// Run watches for termination signals, runs the read loop and releases
// every resource. It returns the process exit status.
func (s *Session) Run(ctx context.Context) int {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	s.shutdown.Watch(ctx)

	s.log.Info("session started", logging.Fields{
		"config": s.cfg.String(),
		"tty":    s.term.IsTerminal(),
	})

	code := 0
	reason := "exit"
	if err := s.Loop(); err != nil {
		if errors.Is(err, io.EOF) {
			reason = "end of input"
		} else {
			reason = "read error"
			s.log.Error("read failed", err)
			fmt.Fprintf(s.stderr, "neosh: %v\n", err)
			code = 1
		}
	}

	if err := s.shutdown.Shutdown(reason); err != nil {
		fmt.Fprintf(s.stderr, "neosh: %v\n", err)
	}
	return code
}

// Loop reads, records, tokenizes and dispatches lines until a builtin asks
// to terminate (nil) or the input ends (io.EOF).
func (s *Session) Loop() error {
	for {
		line, err := s.readLine()
		if err != nil {
			return err
		}

		if err := s.history.Append(line); err != nil {
			s.log.Error("history append failed", err)
			fmt.Fprintf(s.stderr, "neosh: %v\n", err)
		}

		tokens := s.tokenizer.Split(line)
		s.log.Debug("dispatch", logging.Fields{"tokens": len(tokens)})
		if s.dispatcher.Dispatch(tokens) == dispatch.Terminate {
			return nil
		}
	}
}

// readLine holds the terminal in raw mode for exactly one read cycle so
// builtins and child processes always see the original settings
func (s *Session) readLine() (string, error) {
	echo := s.term.IsTerminal()
	if err := s.term.EnterRaw(); err != nil {
		// Cooked mode still works; the terminal echoes for us
		s.log.Warn("raw mode unavailable", logging.Fields{"error": err.Error()})
		echo = false
	}
	defer s.term.ExitRaw()

	s.editor.SetEcho(echo)
	return s.editor.ReadLine()
}
