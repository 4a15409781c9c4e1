package httpd

import (
	"net/url"
	"path/filepath"
	"strings"
)

const indexFile = "index.html"

// ServeStatic resolves residual below root. An empty or slash-terminated
// residual names the directory's index.html. Paths containing a ".."
// segment, resolving outside root, or naming anything but a regular file
// yield 404 without a filesystem read.
func ServeStatic(root, residual string) *Response {
	full, ok := resolveStatic(root, residual)
	if !ok {
		return notFound()
	}
	b, ok := readRegularFile(full)
	if !ok {
		return notFound()
	}
	return NewResponse(200).
		WithHeader("Content-Type", MimeType(filepath.Ext(full))).
		WithHeader("Server", "surfer").
		WithBody(b)
}

func resolveStatic(root, residual string) (string, bool) {
	rel, err := url.PathUnescape(residual)
	if err != nil || strings.IndexByte(rel, 0) >= 0 {
		return "", false
	}
	if rel == "" || strings.HasSuffix(rel, "/") {
		rel += indexFile
	}
	for _, seg := range strings.FieldsFunc(rel, func(r rune) bool { return r == '/' || r == '\\' }) {
		if seg == ".." {
			return "", false
		}
	}
	cleanRoot := filepath.Clean(root)
	full := filepath.Join(cleanRoot, filepath.FromSlash(strings.TrimLeft(rel, "/")))
	inside, err := filepath.Rel(cleanRoot, full)
	if err != nil || inside == ".." || strings.HasPrefix(inside, ".."+string(filepath.Separator)) {
		return "", false
	}
	return full, true
}
