package logflags

import (
	"fmt"
	"io"
	"os"
	"strings"
)

const DefaultLogDesc = ""

var (
	http   bool
	probe  bool
	logOut io.Writer = os.Stderr
)

// Logger is the subset of *zap.SugaredLogger used across the project.
type Logger interface {
	Info(args ...interface{})
	Infof(template string, args ...interface{})
	Debugf(template string, args ...interface{})
	Warnf(template string, args ...interface{})
	Errorf(template string, args ...interface{})
}

// Setup enables the subsystems named in logStr (comma separated) and points
// log output to logDest, or stderr when logDest is empty.
func Setup(flag bool, logStr, logDest string) error {
	http, probe = false, false
	logOut = os.Stderr

	if logDest != "" {
		f, err := os.OpenFile(logDest, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return fmt.Errorf("could not open log file %s: %w", logDest, err)
		}
		logOut = f
	}

	if !flag {
		return nil
	}

	if logStr == "" {
		logStr = "probe"
	}
	for _, s := range strings.Split(logStr, ",") {
		switch strings.TrimSpace(s) {
		case "http":
			http = true
		case "probe":
			probe = true
		default:
			return fmt.Errorf("unknown log subsystem: %s", s)
		}
	}

	return nil
}

// HTTP reports whether request/response logging of the simulator is enabled.
func HTTP() bool {
	return http
}

// Probe reports whether step logging of the probe client is enabled.
func Probe() bool {
	return probe
}
