package httpd

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"
)

// Response is what a handler returns. A nil Body sends no payload.
type Response struct {
	StatusCode int
	Header     Header
	Body       []byte
}

func NewResponse(status int) *Response {
	return &Response{StatusCode: status, Header: Header{}}
}

func (r *Response) WithHeader(key, value string) *Response {
	if r.Header == nil {
		r.Header = Header{}
	}
	r.Header.Set(key, value)
	return r
}

// WithBody sets the body and its Content-Length.
func (r *Response) WithBody(b []byte) *Response {
	r.Body = b
	return r.WithHeader("Content-Length", strconv.Itoa(len(b)))
}

// JSON encodes v as an application/json response.
func JSON(status int, v interface{}) (*Response, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return NewResponse(status).WithHeader("Content-Type", "application/json").WithBody(b), nil
}

// HTML returns a text/html response.
func HTML(status int, content string) *Response {
	return NewResponse(status).WithHeader("Content-Type", "text/html").WithBody([]byte(content))
}

// Text returns a text/plain response.
func Text(status int, s string) *Response {
	return NewResponse(status).WithHeader("Content-Type", "text/plain").WithBody([]byte(s))
}

// File reads path into a response typed by its extension. A missing or
// non-regular file yields 404.
func File(status int, path string) *Response {
	b, ok := readRegularFile(path)
	if !ok {
		return notFound()
	}
	return NewResponse(status).WithHeader("Content-Type", MimeType(filepath.Ext(path))).WithBody(b)
}

func readRegularFile(path string) ([]byte, bool) {
	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		return nil, false
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, false
	}
	return b, true
}

func badRequest() *Response    { return Text(400, badRequestBody) }
func notFound() *Response      { return Text(404, notFoundBody) }
func internalError() *Response { return Text(500, internalErrorBody) }
