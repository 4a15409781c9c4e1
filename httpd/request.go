package httpd

import (
	"context"
	"net/url"
	"strings"

	"dqx0.com/go/surfer/httpd/internal/http1"
)

// FormEntry is one decoded multipart/form-data field.
type FormEntry struct {
	Name        string
	Filename    string // empty unless the field carried a file
	ContentType string
	Data        []byte
}

// Request represents one decoded HTTP request. It lives for a single
// connection and is never shared with another.
type Request struct {
	Method string
	// Path is the request target as sent, query component included.
	Path   string
	Proto  string
	Header Header
	// Body holds exactly Content-Length bytes, or nothing when the header is absent.
	Body []byte
	// Form is populated for multipart/form-data bodies, in order of appearance.
	Form []FormEntry
	// RequestID is generated by the server for log correlation.
	RequestID string
	ctx       context.Context
}

func newRequest(pr *http1.ParsedRequest) *Request {
	r := &Request{
		Method:    pr.Method,
		Path:      pr.RequestURI,
		Proto:     pr.Proto,
		Header:    Header(pr.Header),
		Body:      pr.Body,
		RequestID: newRequestID(),
	}
	for _, p := range pr.Parts {
		r.Form = append(r.Form, FormEntry{Name: p.Name, Filename: p.Filename, ContentType: p.ContentType, Data: p.Data})
	}
	r.ctx = WithRequestID(context.Background(), r.RequestID)
	return r
}

// Context returns the request's context. If nil, returns Background.
func (r *Request) Context() context.Context {
	if r == nil || r.ctx == nil {
		return context.Background()
	}
	return r.ctx
}

// URLPath returns Path without its query component.
func (r *Request) URLPath() string {
	p, _, _ := strings.Cut(r.Path, "?")
	return p
}

// Query parses the query component of Path. Malformed pairs are skipped.
func (r *Request) Query() url.Values {
	_, q, _ := strings.Cut(r.Path, "?")
	v, _ := url.ParseQuery(q)
	return v
}

// FormValue returns the first form entry named name.
func (r *Request) FormValue(name string) (FormEntry, bool) {
	for _, e := range r.Form {
		if e.Name == name {
			return e, true
		}
	}
	return FormEntry{}, false
}

// UserAgent returns the User-Agent header or "N/A".
func (r *Request) UserAgent() string {
	if ua, ok := r.Header.Lookup("User-Agent"); ok {
		return ua
	}
	return "N/A"
}
