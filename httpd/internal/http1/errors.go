package http1

import "errors"

var (
	// ErrMalformedRequest reports input without a parsable request line or
	// without a header terminator inside the initial read.
	ErrMalformedRequest = errors.New("http1: malformed request")
	// ErrMalformedHeader reports a header value the decoder cannot use,
	// such as a non-numeric Content-Length or a multipart type without boundary.
	ErrMalformedHeader = errors.New("http1: malformed header")
	// ErrIncompleteBody reports a stream that closed before Content-Length bytes arrived.
	ErrIncompleteBody = errors.New("http1: incomplete body")
)
