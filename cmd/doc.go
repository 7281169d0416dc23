// Package cmd implements the neosh command line and wires the shell together.
//
// # Architecture
//
//   - root.go: Main entry point, App struct, cobra command setup, and flags
//   - init.go: The init subcommand writing a default config file
//   - shell.go: Session, the process context owning every resource, and
//     the read/dispatch loop
//
// # Session lifecycle
//
// NewSession opens the diagnostic log and the history log in append mode;
// failing to open either is a startup error (exit status 1). Run then:
//   - starts watching SIGINT and SIGTERM
//   - for each cycle enters raw mode, reads one line, and restores the
//     terminal before anything else runs
//   - appends the line to the history log, tokenizes it and dispatches it
//   - on exit, end of input or a signal, runs the shutdown hooks once:
//     terminal restore, history close, diagnostic log close
//
// # Usage
//
//	// Main entry point
//	func main() {
//	    cmd.Execute()
//	}
package cmd
