package icap

import "errors"

var (
	ErrHTTPRequestRequired   = errors.New("icap: REQMOD requires an encapsulated HTTP request")
	ErrHTTPResponseRequired  = errors.New("icap: RESPMOD requires an encapsulated HTTP response")
	ErrHTTPRequestForbidden  = errors.New("icap: method forbids an encapsulated HTTP request")
	ErrHTTPResponseForbidden = errors.New("icap: method forbids an encapsulated HTTP response")
	ErrAmbiguousParts        = errors.New("icap: both HTTP request and HTTP response are encapsulated")
	ErrBodyMode              = errors.New("icap: body was built for another method")
	ErrContentForbidden      = errors.New("icap: status code forbids encapsulated content")
)
