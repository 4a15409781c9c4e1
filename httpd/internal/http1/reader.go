package http1

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"mime"
	"strconv"
	"strings"
)

// DefaultChunkSize bounds the initial read, which must contain the whole
// request head.
const DefaultChunkSize = 1024

var headTerminator = []byte("\r\n\r\n")

// ParsedRequest is a minimal representation parsed from the wire.
type ParsedRequest struct {
	Method        string
	RequestURI    string
	Proto         string
	Header        map[string]string
	ContentLength int64 // -1 when no Content-Length was sent
	Body          []byte
	// Parts holds the decoded entries of a multipart/form-data body.
	Parts []Part
}

// Reader decodes one request from R. The request head is taken from a
// single bounded chunk; a body longer than what that chunk carried is
// completed with an exact blocking read.
type Reader struct {
	R         io.Reader
	ChunkSize int
}

func (r *Reader) ReadRequest() (*ParsedRequest, error) {
	size := r.ChunkSize
	if size <= 0 {
		size = DefaultChunkSize
	}
	buf := make([]byte, size)
	n, headEnd, err := r.readHead(buf)
	if err != nil {
		return nil, err
	}

	lines := strings.Split(string(buf[:headEnd]), "\r\n")
	pr := &ParsedRequest{ContentLength: -1}
	if err := parseRequestLine(pr, lines[0]); err != nil {
		return nil, err
	}
	pr.Header = parseHeaderLines(lines[1:])

	if v, ok := lookupHeader(pr.Header, "Content-Length"); ok {
		cl, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
		if err != nil || cl < 0 {
			return nil, fmt.Errorf("%w: Content-Length %q", ErrMalformedHeader, v)
		}
		pr.ContentLength = cl
		body, err := r.readBody(buf[headEnd+len(headTerminator):n], cl)
		if err != nil {
			return nil, err
		}
		pr.Body = body
	}

	if ct, ok := lookupHeader(pr.Header, "Content-Type"); ok && primaryMediaType(ct) == "multipart/form-data" {
		boundary := multipartBoundary(ct)
		if boundary == "" {
			return nil, fmt.Errorf("%w: multipart Content-Type without boundary", ErrMalformedHeader)
		}
		pr.Parts = ParseMultipart(pr.Body, boundary)
	}
	return pr, nil
}

// readHead fills buf until it holds the header terminator, the buffer is
// full or the stream ends. It returns the number of bytes read and the
// offset of the terminator.
func (r *Reader) readHead(buf []byte) (int, int, error) {
	n := 0
	var rerr error
	for n < len(buf) {
		m, err := r.R.Read(buf[n:])
		n += m
		if i := bytes.Index(buf[:n], headTerminator); i >= 0 {
			return n, i, nil
		}
		if err != nil {
			rerr = err
			break
		}
	}
	switch {
	case n == 0 && rerr != nil && rerr != io.EOF:
		return 0, 0, fmt.Errorf("%w: %v", ErrMalformedRequest, rerr)
	case n == 0:
		return 0, 0, fmt.Errorf("%w: empty request", ErrMalformedRequest)
	case bytes.IndexByte(buf[:n], '\n') < 0:
		return 0, 0, fmt.Errorf("%w: no request line", ErrMalformedRequest)
	default:
		return 0, 0, fmt.Errorf("%w: header terminator not found in first %d bytes", ErrMalformedRequest, n)
	}
}

// readBody returns exactly cl body bytes, starting from the bytes already
// read past the head. Storage grows with the bytes that actually arrive,
// never with the declared length.
func (r *Reader) readBody(rest []byte, cl int64) ([]byte, error) {
	if cl <= int64(len(rest)) {
		body := make([]byte, cl)
		copy(body, rest[:cl])
		return body, nil
	}
	var buf bytes.Buffer
	buf.Write(rest)
	want := cl - int64(len(rest))
	if n, err := io.CopyN(&buf, r.R, want); n < want {
		if err == nil {
			err = io.ErrUnexpectedEOF
		}
		return nil, fmt.Errorf("%w: want %d bytes, got %d: %v", ErrIncompleteBody, cl, int64(len(rest))+n, err)
	}
	return buf.Bytes(), nil
}

func parseRequestLine(pr *ParsedRequest, line string) error {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return fmt.Errorf("%w: empty request line", ErrMalformedRequest)
	}
	pr.Method = fields[0]
	pr.RequestURI = "/"
	pr.Proto = "unknown"
	if len(fields) > 1 {
		pr.RequestURI = fields[1]
	}
	if len(fields) > 2 {
		pr.Proto = fields[2]
	}
	return nil
}

// parseHeaderLines keeps keys as received; a repeated key keeps its last value.
// Lines without a colon are ignored.
func parseHeaderLines(lines []string) map[string]string {
	h := make(map[string]string, len(lines))
	for _, line := range lines {
		k, v, ok := strings.Cut(line, ":")
		if !ok || k == "" {
			continue
		}
		h[k] = strings.TrimSpace(v)
	}
	return h
}

// lookupHeader prefers the exact key and falls back to a case-insensitive match.
func lookupHeader(h map[string]string, key string) (string, bool) {
	if v, ok := h[key]; ok {
		return v, true
	}
	for k, v := range h {
		if strings.EqualFold(k, key) {
			return v, true
		}
	}
	return "", false
}

// multipartBoundary extracts the boundary parameter of ct. Parameters
// that mime.ParseMediaType rejects do not hide a well-formed boundary.
func multipartBoundary(ct string) string {
	if _, params, err := mime.ParseMediaType(ct); err == nil {
		return params["boundary"]
	}
	for _, p := range strings.Split(ct, ";")[1:] {
		k, v, ok := strings.Cut(strings.TrimSpace(p), "=")
		if ok && strings.EqualFold(strings.TrimSpace(k), "boundary") {
			return strings.Trim(strings.TrimSpace(v), `"`)
		}
	}
	return ""
}

func primaryMediaType(ct string) string {
	if i := strings.IndexByte(ct, ';'); i >= 0 {
		ct = ct[:i]
	}
	return strings.ToLower(strings.TrimSpace(ct))
}

// ParsedResponse is a response read back from the wire.
type ParsedResponse struct {
	Proto      string
	StatusCode int
	Reason     string
	Header     map[string]string
	Body       []byte
}

// ReadResponse reads one response written by WriteResponse. Without a
// Content-Length the body runs to the end of the stream.
func ReadResponse(br *bufio.Reader) (*ParsedResponse, error) {
	line, err := readLine(br)
	if err != nil {
		return nil, err
	}
	proto, rest, _ := strings.Cut(line, " ")
	codeStr, reason, _ := strings.Cut(rest, " ")
	code, err := strconv.Atoi(codeStr)
	if err != nil || code < 100 || code > 999 {
		return nil, fmt.Errorf("%w: status line %q", ErrMalformedRequest, line)
	}
	var lines []string
	for {
		l, err := readLine(br)
		if err != nil {
			return nil, err
		}
		if l == "" {
			break
		}
		lines = append(lines, l)
	}
	res := &ParsedResponse{Proto: proto, StatusCode: code, Reason: reason, Header: parseHeaderLines(lines)}
	if v, ok := lookupHeader(res.Header, "Content-Length"); ok {
		cl, err := strconv.Atoi(v)
		if err != nil || cl < 0 {
			return nil, fmt.Errorf("%w: Content-Length %q", ErrMalformedHeader, v)
		}
		res.Body = make([]byte, cl)
		if _, err := io.ReadFull(br, res.Body); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrIncompleteBody, err)
		}
		return res, nil
	}
	res.Body, err = io.ReadAll(br)
	return res, err
}

func readLine(br *bufio.Reader) (string, error) {
	s, err := br.ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimRight(s, "\r\n"), nil
}
