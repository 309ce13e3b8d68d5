package http

import (
	"github.com/ikrivosheev/icap/http/method"
	"github.com/ikrivosheev/icap/http/proto"
	"github.com/ikrivosheev/icap/kv"
)

type Headers = *kv.Storage

// RequestParts is the head of an encapsulated HTTP request. It is produced and consumed
// by the codec; this package only holds it.
type RequestParts struct {
	// Method is an enum representing the request method.
	Method method.Method
	// Path is the request target exactly as it appeared on the request line.
	Path string
	// Protocol is the HTTP version of the request.
	Protocol proto.Protocol
	// Headers holds non-normalized header pairs, even though lookup is case-insensitive.
	Headers Headers
}

func NewRequestParts(m method.Method, path string, protocol proto.Protocol) *RequestParts {
	return &RequestParts{
		Method:   m,
		Path:     path,
		Protocol: protocol,
		Headers:  kv.New(),
	}
}

// Clone returns a deep copy.
func (r *RequestParts) Clone() *RequestParts {
	clone := *r
	if r.Headers != nil {
		clone.Headers = r.Headers.Clone()
	}

	return &clone
}

// ResponseParts is the head of an encapsulated HTTP response.
type ResponseParts struct {
	Protocol proto.Protocol
	// Code is the HTTP status code. It isn't validated, as it is an opaque value for ICAP.
	Code uint16
	// Status is the reason phrase, as it was received.
	Status  string
	Headers Headers
}

func NewResponseParts(protocol proto.Protocol, code uint16, status string) *ResponseParts {
	return &ResponseParts{
		Protocol: protocol,
		Code:     code,
		Status:   status,
		Headers:  kv.New(),
	}
}

// Clone returns a deep copy.
func (r *ResponseParts) Clone() *ResponseParts {
	clone := *r
	if r.Headers != nil {
		clone.Headers = r.Headers.Clone()
	}

	return &clone
}
