package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"dqx0.com/go/surfer/httpd"
	"dqx0.com/go/surfer/internal/obs"
)

// staticFlags collects repeated -static /prefix=dir values.
type staticFlags []httpd.StaticMapping

func (f *staticFlags) String() string {
	parts := make([]string, len(*f))
	for i, m := range *f {
		parts[i] = m.Prefix + "=" + m.Root
	}
	return strings.Join(parts, ",")
}

func (f *staticFlags) Set(v string) error {
	prefix, dir, _ := strings.Cut(v, "=")
	if !strings.HasPrefix(prefix, "/") {
		return fmt.Errorf("static prefix %q must start with /", prefix)
	}
	*f = append(*f, httpd.StaticMapping{Prefix: prefix, Root: dir})
	return nil
}

var (
	addr  = flag.String("addr", "127.0.0.1:8080", "listen address")
	debug = flag.Bool("debug", false, "log at DEBUG level")
)

func index(*httpd.Request) *httpd.Response {
	res, err := httpd.JSON(200, map[string]string{"message": "Hello, Surfer!"})
	if err != nil {
		return httpd.Text(500, err.Error())
	}
	return res
}

func main() {
	var statics staticFlags
	flag.Var(&statics, "static", "serve `/prefix=dir` (repeatable; dir defaults to prefix)")
	flag.Parse()

	level := obs.Info
	if *debug {
		level = obs.Debug
	}
	s := &httpd.Server{Addr: *addr, Logger: obs.NewStdLogger(os.Stderr, level)}
	s.HandleFunc("GET", "/", index)
	for _, m := range statics {
		s.Static(m.Prefix, m.Root)
	}
	if err := s.ListenAndServe(); err != nil {
		log.Fatal(err)
	}
}
