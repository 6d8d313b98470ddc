package service

import "net/url"

type CmdType int

const (
	Open CmdType = iota
	IsOpen
	Uid
	Write
	Read
	Close
)

var cmdPaths = map[CmdType]string{
	Open:   "/open",
	IsOpen: "/isopen",
	Uid:    "/uid",
	Write:  "/write",
	Read:   "/read",
	Close:  "/close",
}

// Path returns the server endpoint for the command, or "" if unknown.
func (c CmdType) Path() string {
	return cmdPaths[c]
}

func (c CmdType) String() string {
	if p, ok := cmdPaths[c]; ok {
		return p[1:]
	}
	return "unknown"
}

// Client issues single commands against a card reader server and returns
// the raw response body.
type Client interface {
	Send(cmd CmdType, params url.Values) (string, error)
	IsReaderServer() bool
}
