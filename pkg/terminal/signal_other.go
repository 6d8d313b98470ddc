//go:build !unix

package terminal

import "os"

var guardedSignals = []os.Signal{os.Interrupt}
