package error

import "errors"

var (
	PortNotOpened  = errors.New("serial port is not open")
	PortRequired   = errors.New("serial port name is required")
	NoCard         = errors.New("no card")
	InvalidLength  = errors.New("invalid read length")
	DataTooLong    = errors.New("data exceeds card capacity")
	InvalidPayload = errors.New("invalid base64 payload")
)
