//go:build !(linux || darwin || freebsd || netbsd || openbsd || dragonfly)

package terminal

import (
	"fmt"
	"runtime"
)

func makeRaw(int) error {
	return fmt.Errorf("raw mode is not supported on %s", runtime.GOOS)
}
