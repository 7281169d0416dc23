//go:build linux || darwin || freebsd || netbsd || openbsd || dragonfly

package terminal

import "golang.org/x/sys/unix"

// makeRaw clears ICANON and ECHO only. Output processing and ISIG are kept
// so "\n" still maps to CRLF and Ctrl-C is delivered as SIGINT.
func makeRaw(fd int) error {
	termios, err := unix.IoctlGetTermios(fd, ioctlReadTermios)
	if err != nil {
		return err
	}

	raw := *termios
	raw.Lflag &^= unix.ICANON | unix.ECHO
	raw.Cc[unix.VMIN] = 1
	raw.Cc[unix.VTIME] = 0

	return unix.IoctlSetTermios(fd, ioctlWriteTermios, &raw)
}
