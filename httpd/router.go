package httpd

import (
	"strings"
	"sync"
)

type Handler interface {
	Serve(*Request) *Response
}

type HandlerFunc func(*Request) *Response

func (f HandlerFunc) Serve(r *Request) *Response {
	return f(r)
}

// StaticMapping serves files under Root for GET requests whose path
// starts with Prefix.
type StaticMapping struct {
	Prefix string
	Root   string
}

// Router dispatches on the exact "METHOD PATH" key, with no patterns.
// Registration normally completes before serving starts; the lock only
// makes late registration safe.
type Router struct {
	mu      sync.RWMutex
	routes  map[string]Handler
	order   []string
	statics []StaticMapping
}

func NewRouter() *Router {
	return &Router{routes: make(map[string]Handler)}
}

func routeKey(method, path string) string {
	return method + " " + path
}

// Handle registers h for method and the exact path. A second registration
// of the same pair replaces the first.
func (rt *Router) Handle(method, path string, h Handler) {
	k := routeKey(method, path)
	rt.mu.Lock()
	defer rt.mu.Unlock()
	if _, dup := rt.routes[k]; !dup {
		rt.order = append(rt.order, k)
	}
	rt.routes[k] = h
}

func (rt *Router) HandleFunc(method, path string, f func(*Request) *Response) {
	rt.Handle(method, path, HandlerFunc(f))
}

// Static maps GET requests under prefix to files below root.
func (rt *Router) Static(prefix, root string) {
	rt.mu.Lock()
	defer rt.mu.Unlock()
	rt.statics = append(rt.statics, StaticMapping{Prefix: prefix, Root: root})
}

// Lookup finds the handler registered for method and target. Any query
// component of target is ignored.
func (rt *Router) Lookup(method, target string) (Handler, bool) {
	path, _, _ := strings.Cut(target, "?")
	rt.mu.RLock()
	defer rt.mu.RUnlock()
	h, ok := rt.routes[routeKey(method, path)]
	return h, ok
}

// MatchStatic picks the mapping with the longest prefix of "METHOD target",
// the earliest registered one on ties. It returns the residual path with
// the prefix and any query removed.
func (rt *Router) MatchStatic(method, target string) (StaticMapping, string, bool) {
	key := routeKey(method, target)
	rt.mu.RLock()
	defer rt.mu.RUnlock()
	best, bestLen := -1, -1
	for i, m := range rt.statics {
		mk := routeKey("GET", m.Prefix)
		if len(mk) > bestLen && strings.HasPrefix(key, mk) {
			best, bestLen = i, len(mk)
		}
	}
	if best < 0 {
		return StaticMapping{}, "", false
	}
	residual, _, _ := strings.Cut(key[bestLen:], "?")
	return rt.statics[best], residual, true
}

// Routes lists route keys in registration order.
func (rt *Router) Routes() []string {
	rt.mu.RLock()
	defer rt.mu.RUnlock()
	return append([]string(nil), rt.order...)
}

func (rt *Router) Statics() []StaticMapping {
	rt.mu.RLock()
	defer rt.mu.RUnlock()
	return append([]StaticMapping(nil), rt.statics...)
}
