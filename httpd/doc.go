// Package httpd is a small HTTP/1.1 server engine that serves exactly
// one request per connection.
//
// Highlights
//   - Decoding: the request head is read from one bounded chunk; a body
//     declared by Content-Length is completed with an exact read.
//     multipart/form-data bodies are decomposed into ordered FormEntry
//     values, duplicates included.
//   - Dispatch: exact "METHOD PATH" routes first, then GET static
//     mappings by longest URL prefix, then 404. Static resolution refuses
//     any path that would escape its directory root.
//   - Isolation: decode failures answer 400, handler panics answer 500,
//     write failures are logged; none of them affect other connections.
//   - Observability: plug-in Logger and Meter interfaces.
//
// Quick start:
//
//	s := &httpd.Server{Addr: "127.0.0.1:8080"}
//	s.HandleFunc("GET", "/", func(r *httpd.Request) *httpd.Response {
//	    return httpd.Text(200, "hello")
//	})
//	s.Static("/assets", "public")
//	if err := s.ListenAndServe(); err != nil { log.Fatal(err) }
package httpd
