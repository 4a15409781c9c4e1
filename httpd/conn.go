package httpd

import (
	"bufio"
	"net"
	"time"

	"dqx0.com/go/surfer/httpd/internal/http1"
	"dqx0.com/go/surfer/internal/obs"
)

// conn carries one connection through decode, dispatch, handling and
// write. Every path ends in closeConn.
type conn struct {
	srv   *Server
	rwc   net.Conn
	bw    *bufio.Writer
	start time.Time

	req *Request
	h   Handler
	res *Response
}

type stateFunc func(*conn) stateFunc

func (s *Server) serveConn(rwc net.Conn) {
	s.init()
	c := &conn{srv: s, rwc: rwc, bw: bufio.NewWriter(rwc), start: time.Now()}
	defer func() {
		if p := recover(); p != nil {
			obs.Errorf(s.Logger, "connection %s aborted: %v", rwc.RemoteAddr(), p)
			rwc.Close()
		}
	}()
	for state := readRequest; state != nil; {
		state = state(c)
	}
}

func readRequest(c *conn) stateFunc {
	rr := &http1.Reader{R: c.rwc, ChunkSize: c.srv.ReadBufferSize}
	pr, err := rr.ReadRequest()
	if err != nil {
		obs.Errorf(c.srv.Logger, "Error parsing request from %s: %v", c.rwc.RemoteAddr(), err)
		c.res = badRequest()
		return writeResponse
	}
	c.req = newRequest(pr)
	obs.Infof(c.srv.Logger, "%s %s | User-Agent: %s", c.req.Method, c.req.Path, c.req.UserAgent())
	return dispatch
}

// dispatch tries the exact route first and static mappings second.
func dispatch(c *conn) stateFunc {
	rt := c.srv.Router
	if h, ok := rt.Lookup(c.req.Method, c.req.Path); ok {
		c.h = h
		return handle
	}
	if m, residual, ok := rt.MatchStatic(c.req.Method, c.req.Path); ok {
		c.res = ServeStatic(m.Root, residual)
		return writeResponse
	}
	c.res = notFound()
	return writeResponse
}

func handle(c *conn) stateFunc {
	c.res = c.invoke()
	return writeResponse
}

func (c *conn) invoke() (res *Response) {
	defer func() {
		if p := recover(); p != nil {
			obs.Errorf(c.srv.Logger, "[%s] handler for %s %s panicked: %v", c.req.RequestID, c.req.Method, c.req.Path, p)
			res = internalError()
		}
	}()
	res = c.h.Serve(c.req)
	if res == nil {
		obs.Errorf(c.srv.Logger, "[%s] handler for %s %s returned no response", c.req.RequestID, c.req.Method, c.req.Path)
		res = internalError()
	}
	return res
}

// writeResponse makes a single attempt; a failure only costs this connection.
func writeResponse(c *conn) stateFunc {
	if err := http1.WriteResponse(c.bw, c.res.StatusCode, c.res.Header, c.res.Body); err != nil {
		obs.Errorf(c.srv.Logger, "Error writing response to %s: %v", c.rwc.RemoteAddr(), err)
		return closeConn
	}
	if err := c.bw.Flush(); err != nil {
		obs.Errorf(c.srv.Logger, "Error flushing stream to %s: %v", c.rwc.RemoteAddr(), err)
	}
	return closeConn
}

func closeConn(c *conn) stateFunc {
	c.rwc.Close()
	method := "unknown"
	if c.req != nil {
		method = c.req.Method
	}
	status := 0
	if c.res != nil {
		status = c.res.StatusCode
	}
	elapsed := time.Since(c.start)
	c.srv.Logger.Logf(obs.Debug, "%s %s -> %d in %s", method, c.rwc.RemoteAddr(), status, elapsed)
	c.srv.Meter.Counter("httpd.requests", 1, obs.Label{Key: "method", Value: method}, obs.StatusLabel(status))
	c.srv.Meter.Histogram("httpd.request.duration_ms", float64(elapsed)/float64(time.Millisecond))
	return nil
}
