package httpd

import (
	"errors"
	"net"
	"os"
	"strings"
	"sync"

	"dqx0.com/go/surfer/internal/obs"
)

// Server accepts connections and serves exactly one request on each,
// every connection on its own goroutine. There is no limit on concurrent
// connections and no read or write deadline, so a stalled peer holds its
// goroutine until it closes.
type Server struct {
	Addr string
	// Router holds routes and static mappings. It is created on first use.
	Router *Router
	// ReadBufferSize bounds the initial read that must hold the request
	// head. Zero means 1024 bytes.
	ReadBufferSize int
	// Logger defaults to INFO-level lines on stderr.
	Logger obs.Logger
	Meter  obs.Meter

	once sync.Once
}

func (s *Server) init() {
	s.once.Do(func() {
		if s.Router == nil {
			s.Router = NewRouter()
		}
		if s.Logger == nil {
			s.Logger = obs.NewStdLogger(os.Stderr, obs.Info)
		}
		if s.Meter == nil {
			s.Meter = obs.NopMeter{}
		}
	})
}

func (s *Server) Handle(method, path string, h Handler) {
	s.init()
	s.Router.Handle(method, path, h)
}

func (s *Server) HandleFunc(method, path string, f func(*Request) *Response) {
	s.init()
	s.Router.HandleFunc(method, path, f)
}

// Static serves files from dir under the URL prefix. An empty dir uses
// the prefix itself, relative to the working directory.
func (s *Server) Static(prefix, dir string) {
	s.init()
	if dir == "" {
		dir = strings.TrimPrefix(prefix, "/")
	}
	s.Router.Static(prefix, dir)
}

func (s *Server) ListenAndServe() error {
	addr := s.Addr
	if addr == "" {
		addr = "127.0.0.1:8080"
	}
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	return s.Serve(ln)
}

// Serve runs the accept loop until l is closed. Other accept errors are
// logged and the loop continues.
func (s *Server) Serve(l net.Listener) error {
	s.init()
	defer l.Close()
	obs.Infof(s.Logger, "Server running at http://%s", l.Addr())
	for _, m := range s.Router.Statics() {
		obs.Infof(s.Logger, "Hosting files from '%s' at GET %s", m.Root, m.Prefix)
	}
	for _, k := range s.Router.Routes() {
		obs.Infof(s.Logger, "Registered route: %s", k)
	}
	for {
		c, err := l.Accept()
		if err != nil {
			if errors.Is(err, net.ErrClosed) {
				return err
			}
			obs.Errorf(s.Logger, "Error establishing connection: %v", err)
			continue
		}
		go s.serveConn(c)
	}
}
