package service

import (
	"cardprobe/pkg/logflags"
	"net"
)

// Server represents a card reader server for a remote client
// to connect to.
type Server interface {
	Run() error
	Stop() error
}

type ServerImpl struct {
	Logger   logflags.Logger
	Listener net.Listener
	StopChan chan struct{}
}

func (si *ServerImpl) SetupLogger(flag bool, logStr, logDest string) error {
	err := logflags.Setup(flag, logStr, logDest)
	if err != nil {
		return err
	}

	si.Logger = logflags.HTTPLogger()
	return nil
}
