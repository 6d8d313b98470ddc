package http

import (
	"cardprobe/utils"
	"github.com/google/uuid"
)

type Handler func(ctx *Context)

type HandlerChain []Handler

func httpHandlerChain(do Handler) HandlerChain {
	return []Handler{
		parseRequest,
		printRequest,
		do,
		printResponse,
	}
}

// exec runs the chain, skipping the remaining handlers except the last
// (response logging) once a response has been written.
func (h HandlerChain) exec(ctx *Context) {
	last := len(h) - 1
	for i, handler := range h {
		if ctx.done() && i != last {
			continue
		}
		handler(ctx)
	}
}

func parseRequest(ctx *Context) {
	if ctx.read != nil {
		ctx.request = &request{
			requestID: uuid.New().String(),
			url:       utils.GetFullURL(ctx.read),
			path:      ctx.read.URL.Path,
			method:    ctx.read.Method,
			query:     ctx.read.URL.Query(),
			clientIP:  utils.GetClientIP(ctx.read),
		}
	}
}

func printRequest(ctx *Context) {
	logger := ctx.logger
	req := ctx.request
	if logger != nil && req != nil {
		logger.Debugf("=========== request info ===========")
		logger.Debugf("id: %s", req.requestID)
		logger.Debugf("url: %s", req.url)
		logger.Debugf("method: %s", req.method)
		logger.Debugf("clientIP: %s", req.clientIP)
		logger.Debugf("path: %s", req.path)
		logger.Debugf("query: %s", req.query.Encode())
	}
}

func printResponse(ctx *Context) {
	logger := ctx.logger
	res := ctx.response
	if logger != nil && res != nil {
		logger.Debugf("=========== response info ===========")
		if ctx.request != nil {
			logger.Debugf("id: %s", ctx.request.requestID)
		}
		logger.Debugf("status: %d", res.Status)
		logger.Debugf("success: %v", res.Success)
		logger.Debugf("message: %s", res.Message)
	}
}
