//go:build unix

package terminal

import (
	"os"

	"golang.org/x/sys/unix"
)

var guardedSignals = []os.Signal{unix.SIGINT, unix.SIGTERM, unix.SIGQUIT}
