package http1

import (
	"bytes"
	"strings"
)

// Part is one decoded multipart/form-data field.
type Part struct {
	Name        string
	Filename    string // empty when the part is not a file
	ContentType string
	Data        []byte
}

var crlf = []byte("\r\n")

// ParseMultipart splits body on "--"+boundary and decodes each segment.
// The search is byte-exact so binary payloads survive untouched. Parts
// keep their order of appearance, including parts sharing a name.
// Segments without a name parameter are dropped.
func ParseMultipart(body []byte, boundary string) []Part {
	delim := []byte("--" + boundary)
	var parts []Part
	i := bytes.Index(body, delim)
	for i >= 0 {
		start := i + len(delim)
		next := bytes.Index(body[start:], delim)
		if next < 0 {
			// Text after the last delimiter is the epilogue.
			break
		}
		seg := body[start : start+next]
		if p, ok := parsePart(seg); ok {
			parts = append(parts, p)
		}
		i = start + next
		if bytes.HasPrefix(body[i+len(delim):], []byte("--")) {
			break
		}
	}
	return parts
}

func parsePart(seg []byte) (Part, bool) {
	seg = bytes.TrimPrefix(seg, crlf)
	if len(seg) == 0 {
		return Part{}, false
	}
	sep := bytes.Index(seg, headTerminator)
	if sep < 0 {
		return Part{}, false
	}
	var p Part
	for _, line := range strings.Split(string(seg[:sep]), "\r\n") {
		k, v, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		switch strings.ToLower(strings.TrimSpace(k)) {
		case "content-disposition":
			p.Name, p.Filename = parseDisposition(v)
		case "content-type":
			p.ContentType = strings.TrimSpace(v)
		}
	}
	if p.Name == "" {
		return Part{}, false
	}
	data := seg[sep+len(headTerminator):]
	data = bytes.TrimSuffix(data, crlf)
	p.Data = append([]byte(nil), data...)
	return p, true
}

// parseDisposition extracts name and filename from a Content-Disposition
// value such as `form-data; name="f"; filename="a.txt"`.
func parseDisposition(v string) (name, filename string) {
	for _, attr := range strings.Split(v, ";") {
		attr = strings.TrimSpace(attr)
		k, val, ok := strings.Cut(attr, "=")
		if !ok {
			continue
		}
		val = strings.Trim(strings.TrimSpace(val), `"`)
		switch strings.ToLower(strings.TrimSpace(k)) {
		case "name":
			name = val
		case "filename":
			filename = val
		}
	}
	return name, filename
}
