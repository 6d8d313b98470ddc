package http

import (
	"cardprobe/pkg/card"
	"cardprobe/service"
	"context"
	"github.com/urfave/cli"
	"net"
	"net/http"
	"os"
	"sync"
)

type Server struct {
	service.ServerImpl
	httpServer *http.Server
	pool       sync.Pool
}

// NewServer serves the reader API for r on listener. Logging is configured
// from the global log flags of ctx.
func NewServer(ctx *cli.Context, listener net.Listener, r *card.Reader) (*Server, error) {
	impl := service.ServerImpl{
		Listener: listener,
		StopChan: make(chan struct{}),
	}
	if err := impl.SetupLogger(ctx.GlobalBool("logFlag"), ctx.GlobalString("logStr"), ctx.GlobalString("logDesc")); err != nil {
		return nil, err
	}

	return newServer(impl, r), nil
}

func newServer(impl service.ServerImpl, r *card.Reader) *Server {
	s := &Server{
		ServerImpl: impl,
		pool: sync.Pool{
			New: func() interface{} {
				return newProcessor(r)
			},
		},
	}

	s.httpServer = &http.Server{
		Handler: s,
	}

	return s
}

func (s *Server) Run() error {
	go func() {
		defer close(s.StopChan)
		if err := s.httpServer.Serve(s.Listener); err != nil && err != http.ErrServerClosed {
			os.Stderr.WriteString(err.Error() + "\n")
		}
	}()

	return nil
}

func (s *Server) Stop() error {
	err := s.httpServer.Shutdown(context.Background())
	<-s.StopChan
	return err
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := newContext(s.Logger, w, r)
	p := s.pool.Get().(*processor)
	defer s.pool.Put(p)
	ctx.chain = httpHandlerChain(p.worker)
	ctx.chain.exec(ctx)
}
