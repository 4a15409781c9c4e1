package httpd

import "dqx0.com/go/surfer/httpd/internal/http1"

var (
	ErrMalformedRequest = http1.ErrMalformedRequest
	ErrMalformedHeader  = http1.ErrMalformedHeader
	ErrIncompleteBody   = http1.ErrIncompleteBody
)

// Fixed bodies for responses the server produces on its own.
const (
	badRequestBody    = "400 Bad Request"
	notFoundBody      = "404 Not Found"
	internalErrorBody = "500 Internal Server Error"
)
