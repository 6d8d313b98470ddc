package http

import (
	"cardprobe/pkg/logflags"
	"cardprobe/service"
	"encoding/json"
	"net/http"
)

type Context struct {
	logger   logflags.Logger
	chain    HandlerChain
	request  *request
	response *response
	read     *http.Request
	write    http.ResponseWriter
}

type response struct {
	Status int
	service.Response
}

func newContext(logger logflags.Logger, w http.ResponseWriter, r *http.Request) *Context {
	return &Context{
		logger: logger,
		read:   r,
		write:  w,
	}
}

// done reports whether a response has already been written.
func (c *Context) done() bool {
	return c.response != nil
}

func (c *Context) respSuccess(message string) {
	c.resp(http.StatusOK, true, message)
}

// respFailed answers a failed reader operation. The reader API reports these
// with status 200 and success false.
func (c *Context) respFailed(message string) {
	c.resp(http.StatusOK, false, message)
}

func (c *Context) respStatus(status int, message string) {
	c.resp(status, false, message)
}

func (c *Context) resp(status int, success bool, message string) {
	c.response = &response{
		Status: status,
		Response: service.Response{
			Success: success,
			Message: message,
		},
	}

	bs, err := json.Marshal(c.response.Response)
	if err != nil {
		c.write.WriteHeader(http.StatusInternalServerError)
		c.write.Write([]byte(err.Error()))
		return
	}
	c.write.Header().Set("Content-Type", "application/json")
	c.write.WriteHeader(status)
	c.write.Write(bs)
}

func (c *Context) text(body string) {
	c.response = &response{
		Status:   http.StatusOK,
		Response: service.Response{Success: true, Message: "help"},
	}
	c.write.Header().Set("Content-Type", "text/plain; charset=utf-8")
	c.write.WriteHeader(http.StatusOK)
	c.write.Write([]byte(body))
}
