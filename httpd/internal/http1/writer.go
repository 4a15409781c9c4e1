package http1

import (
	"bufio"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// WriteResponse writes a complete HTTP/1.1 response to bw. Headers are
// written in sorted order. Content-Length always reflects len(body), and
// Connection: close is added when hdr lacks it, since a connection
// carries a single exchange.
// Keys that are not valid tokens are skipped. The caller must Flush bw.
func WriteResponse(bw *bufio.Writer, status int, hdr map[string]string, body []byte) error {
	line := "HTTP/1.1 " + strconv.Itoa(status)
	if reason := StatusText(status); reason != "" {
		line += " " + reason
	}
	if _, err := bw.WriteString(line + "\r\n"); err != nil {
		return err
	}
	out := make(map[string]string, len(hdr)+2)
	for k, v := range hdr {
		if k = SanitizeHeaderKey(k); k != "" && !strings.EqualFold(k, "Content-Length") {
			out[k] = SanitizeHeaderValue(v)
		}
	}
	out["Content-Length"] = strconv.Itoa(len(body))
	if _, ok := lookupHeader(out, "Connection"); !ok {
		out["Connection"] = "close"
	}
	keys := make([]string, 0, len(out))
	for k := range out {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if _, err := fmt.Fprintf(bw, "%s: %s\r\n", k, out[k]); err != nil {
			return err
		}
	}
	if _, err := bw.WriteString("\r\n"); err != nil {
		return err
	}
	if len(body) > 0 {
		if _, err := bw.Write(body); err != nil {
			return err
		}
	}
	return nil
}

// StatusText returns the reason phrase for code, or "" if unknown.
func StatusText(code int) string {
	switch code {
	case 200:
		return "OK"
	case 201:
		return "Created"
	case 204:
		return "No Content"
	case 301:
		return "Moved Permanently"
	case 302:
		return "Found"
	case 304:
		return "Not Modified"
	case 400:
		return "Bad Request"
	case 401:
		return "Unauthorized"
	case 403:
		return "Forbidden"
	case 404:
		return "Not Found"
	case 405:
		return "Method Not Allowed"
	case 500:
		return "Internal Server Error"
	case 501:
		return "Not Implemented"
	default:
		return ""
	}
}

