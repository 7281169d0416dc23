package dispatch

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/quocvuong92/neosh/internal/constants"
	"github.com/quocvuong92/neosh/internal/executor"
	"github.com/quocvuong92/neosh/internal/history"
	"github.com/quocvuong92/neosh/internal/logging"
)

// Renderer turns markdown into terminal output
type Renderer func(markdown string) (string, error)

// Deps are the collaborators the default builtins need. Every field is optional.
type Deps struct {
	History history.Reader
	Render  Renderer
	Log     *logging.FieldLogger
}

// DefaultRegistry returns a registry holding cd, help, exit and history,
// in that order
func DefaultRegistry(deps Deps) (*Registry, error) {
	if deps.Log == nil {
		deps.Log = logging.Discard()
	}

	reg := NewRegistry()
	builtins := []Builtin{
		&CdBuiltin{log: deps.Log},
		&HelpBuiltin{registry: reg, render: deps.Render},
		&ExitBuiltin{},
		&HistoryBuiltin{reader: deps.History},
	}
	for _, b := range builtins {
		if err := reg.Register(b); err != nil {
			return nil, err
		}
	}
	return reg, nil
}

// CdBuiltin changes the shell's working directory
type CdBuiltin struct {
	log *logging.FieldLogger
}

func (b *CdBuiltin) Name() string        { return "cd" }
func (b *CdBuiltin) Description() string { return "Change the working directory" }

// Run requires exactly one path argument. Errors are reported and the
// shell keeps running.
func (b *CdBuiltin) Run(args []string, io executor.IOBindings) Status {
	if len(args) == 0 {
		fmt.Fprintln(io.Stderr, "neosh: cd: argument expected")
		return Continue
	}

	target := args[0]
	if err := os.Chdir(target); err != nil {
		b.log.Warn("cd failed", logging.Fields{"path": target, "error": err.Error()})
		switch {
		case os.IsNotExist(err):
			fmt.Fprintf(io.Stderr, "neosh: cd: %s: No such file or directory\n", target)
		case os.IsPermission(err):
			fmt.Fprintf(io.Stderr, "neosh: cd: %s: Permission denied\n", target)
		default:
			fmt.Fprintf(io.Stderr, "neosh: cd: %v\n", err)
		}
	}
	return Continue
}

// HelpBuiltin lists the builtins
type HelpBuiltin struct {
	registry *Registry
	render   Renderer
}

func (b *HelpBuiltin) Name() string        { return "help" }
func (b *HelpBuiltin) Description() string { return "Show this help" }

func (b *HelpBuiltin) Run(_ []string, io executor.IOBindings) Status {
	if b.render != nil {
		if out, err := b.render(b.markdown()); err == nil {
			fmt.Fprint(io.Stdout, out)
			return Continue
		}
	}

	fmt.Fprintln(io.Stdout, "Neo's custom shell")
	fmt.Fprintln(io.Stdout, "Type program names and arguments, and hit enter.")
	fmt.Fprintln(io.Stdout, "The following are built in:")
	for _, builtin := range b.registry.All() {
		fmt.Fprintf(io.Stdout, "  %-10s %s\n", builtin.Name(), builtin.Description())
	}
	fmt.Fprintln(io.Stdout, "Use the man command for information on other programs.")
	return Continue
}

func (b *HelpBuiltin) markdown() string {
	var sb strings.Builder
	sb.WriteString("# Neo's custom shell\n\n")
	sb.WriteString("Type program names and arguments, and hit enter.\n\n")
	sb.WriteString("| Builtin | Description |\n|---|---|\n")
	for _, builtin := range b.registry.All() {
		fmt.Fprintf(&sb, "| `%s` | %s |\n", builtin.Name(), builtin.Description())
	}
	sb.WriteString("\nUse the `man` command for information on other programs.\n")
	return sb.String()
}

// ExitBuiltin ends the read loop
type ExitBuiltin struct{}

func (b *ExitBuiltin) Name() string        { return "exit" }
func (b *ExitBuiltin) Description() string { return "Exit the shell" }

func (b *ExitBuiltin) Run(_ []string, _ executor.IOBindings) Status {
	return Terminate
}

// HistoryBuiltin prints the most recent lines from the history log
type HistoryBuiltin struct {
	reader history.Reader
}

func (b *HistoryBuiltin) Name() string { return "history" }
func (b *HistoryBuiltin) Description() string {
	return fmt.Sprintf("Show the last n entered lines (default %d)", constants.DefaultHistoryListSize)
}

func (b *HistoryBuiltin) Run(args []string, io executor.IOBindings) Status {
	if b.reader == nil {
		fmt.Fprintln(io.Stderr, "neosh: history: not available")
		return Continue
	}

	n := constants.DefaultHistoryListSize
	if len(args) > 0 {
		v, err := strconv.Atoi(args[0])
		if err != nil || v <= 0 {
			fmt.Fprintf(io.Stderr, "neosh: history: %s: positive numeric argument required\n", args[0])
			return Continue
		}
		n = v
	}

	entries, err := b.reader.Recent(n)
	if err != nil {
		fmt.Fprintf(io.Stderr, "neosh: history: %v\n", err)
		return Continue
	}

	for i, e := range entries {
		stamp := "unknown"
		if !e.Time.IsZero() {
			stamp = e.Time.Format("2006-01-02 15:04:05")
		}
		fmt.Fprintf(io.Stdout, "  %d. [%s] %s\n", i+1, stamp, e.Line)
	}
	return Continue
}
