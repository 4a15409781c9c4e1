package http1

import (
	"bufio"
	"bytes"
	"errors"
	"testing"
)

func encode(t *testing.T, status int, hdr map[string]string, body []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	bw := bufio.NewWriter(&buf)
	if err := WriteResponse(bw, status, hdr, body); err != nil {
		t.Fatalf("WriteResponse: %v", err)
	}
	if err := bw.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}
	return buf.Bytes()
}

func TestWriteResponse_Format(t *testing.T) {
	got := encode(t, 200, map[string]string{
		"Content-Type":   "application/json",
		"Content-Length": "2",
		"Connection":     "close",
	}, []byte("{}"))
	want := "HTTP/1.1 200 OK\r\n" +
		"Connection: close\r\n" +
		"Content-Length: 2\r\n" +
		"Content-Type: application/json\r\n" +
		"\r\n{}"
	if string(got) != want {
		t.Fatalf("got %q\nwant %q", got, want)
	}
}

func TestWriteResponse_Defaults(t *testing.T) {
	got := encode(t, 404, nil, []byte("404 Not Found"))
	want := "HTTP/1.1 404 Not Found\r\nConnection: close\r\nContent-Length: 13\r\n\r\n404 Not Found"
	if string(got) != want {
		t.Fatalf("got %q", got)
	}
}

func TestWriteResponse_Sanitizes(t *testing.T) {
	got := encode(t, 200, map[string]string{
		"X-Evil":     "a\r\nSet-Cookie: pwned=1",
		"Bad Header": "dropped",
	}, nil)
	if bytes.Contains(got, []byte("Bad Header")) {
		t.Fatalf("invalid key written: %q", got)
	}
	if !bytes.Contains(got, []byte("X-Evil: aSet-Cookie: pwned=1\r\n")) {
		t.Fatalf("value not sanitized: %q", got)
	}
}

func TestWriteResponse_StableOrder(t *testing.T) {
	hdr := map[string]string{"B": "2", "A": "1", "C": "3", "Content-Length": "0"}
	first := encode(t, 204, hdr, nil)
	for i := 0; i < 20; i++ {
		if again := encode(t, 204, hdr, nil); !bytes.Equal(first, again) {
			t.Fatalf("order changed:\n%q\n%q", first, again)
		}
	}
}

func TestResponseRoundTrip(t *testing.T) {
	cases := []struct {
		status int
		hdr    map[string]string
		body   []byte
	}{
		{200, map[string]string{"Content-Type": "application/json", "Content-Length": "28", "Connection": "close"}, []byte(`{"message":"Hello, Surfer!"}`)},
		{404, map[string]string{"Content-Type": "text/plain", "Content-Length": "13", "Connection": "close"}, []byte("404 Not Found")},
		{201, map[string]string{"Set-Cookie": "id=1; Path=/; HttpOnly", "Content-Length": "0", "Connection": "close"}, nil},
		{299, map[string]string{"Content-Length": "3", "Connection": "close"}, []byte{0, '\r', '\n'}},
	}
	for _, tc := range cases {
		raw := encode(t, tc.status, tc.hdr, tc.body)
		res, err := ReadResponse(bufio.NewReader(bytes.NewReader(raw)))
		if err != nil {
			t.Fatalf("ReadResponse(%q): %v", raw, err)
		}
		if res.StatusCode != tc.status {
			t.Fatalf("status=%d, want %d", res.StatusCode, tc.status)
		}
		if len(res.Header) != len(tc.hdr) {
			t.Fatalf("header=%v, want %v", res.Header, tc.hdr)
		}
		for k, v := range tc.hdr {
			if res.Header[k] != v {
				t.Fatalf("header %s=%q, want %q", k, res.Header[k], v)
			}
		}
		if !bytes.Equal(res.Body, tc.body) && !(len(res.Body) == 0 && len(tc.body) == 0) {
			t.Fatalf("body=%q, want %q", res.Body, tc.body)
		}
	}
}

func TestReadResponse_Truncated(t *testing.T) {
	raw := "HTTP/1.1 200 OK\r\nContent-Length: 10\r\n\r\nabc"
	_, err := ReadResponse(bufio.NewReader(bytes.NewReader([]byte(raw))))
	if !errors.Is(err, ErrIncompleteBody) {
		t.Fatalf("err=%v", err)
	}
}

func TestWriteResponse_UnknownStatusHasNoReason(t *testing.T) {
	got := encode(t, 299, nil, nil)
	if !bytes.HasPrefix(got, []byte("HTTP/1.1 299\r\n")) {
		t.Fatalf("got %q", got)
	}
}

func TestWriteResponse_ContentLengthMatchesBody(t *testing.T) {
	for _, hdr := range []map[string]string{
		{"Content-Length": "99"},
		{"content-length": "1"},
		{"Content-Length": "abc"},
	} {
		got := encode(t, 200, hdr, []byte("hello"))
		want := "HTTP/1.1 200 OK\r\nConnection: close\r\nContent-Length: 5\r\n\r\nhello"
		if string(got) != want {
			t.Fatalf("%v: got %q", hdr, got)
		}
	}
}
