package icap

import (
	"github.com/ikrivosheev/icap/http"
	"github.com/ikrivosheev/icap/kv"
	"github.com/ikrivosheev/icap/method"
	"github.com/ikrivosheev/icap/proto"
)

type Headers = *kv.Storage

// Request represents an ICAP request. Which encapsulated HTTP heads it carries and the
// mode of its body always agree with its method:
//
//   - REQMOD: an HTTP request, no HTTP response, body in request mode;
//   - RESPMOD: an HTTP response, optionally the HTTP request it answers, body in response mode;
//   - OPTIONS: no HTTP heads, body in options mode or none.
//
// Every setter that could break this returns an error and leaves the request untouched.
type Request[T any] struct {
	method       method.Method
	uri          string
	version      proto.Version
	headers      Headers
	httpRequest  *http.RequestParts
	httpResponse *http.ResponseParts
	body         *Body[T]
}

// NewReqmod returns a REQMOD request adapting the passed HTTP request.
func NewReqmod[T any](uri string, httpRequest *http.RequestParts) (*Request[T], error) {
	return newRequest[T](method.REQMOD, uri, httpRequest, nil)
}

// NewRespmod returns a RESPMOD request adapting the passed HTTP response. The HTTP request
// that produced the response may be nil, if unknown.
func NewRespmod[T any](
	uri string, httpRequest *http.RequestParts, httpResponse *http.ResponseParts,
) (*Request[T], error) {
	return newRequest[T](method.RESPMOD, uri, httpRequest, httpResponse)
}

// NewOptions returns an OPTIONS request.
func NewOptions[T any](uri string) *Request[T] {
	return &Request[T]{
		method:  method.OPTIONS,
		uri:     uri,
		version: proto.Default(),
		headers: kv.New(),
	}
}

func newRequest[T any](
	m method.Method, uri string, httpRequest *http.RequestParts, httpResponse *http.ResponseParts,
) (*Request[T], error) {
	if err := checkRequestParts(m, httpRequest, httpResponse); err != nil {
		return nil, err
	}

	return &Request[T]{
		method:       m,
		uri:          uri,
		version:      proto.Default(),
		headers:      kv.New(),
		httpRequest:  httpRequest,
		httpResponse: httpResponse,
	}, nil
}

func checkRequestParts(m method.Method, httpRequest *http.RequestParts, httpResponse *http.ResponseParts) error {
	switch m {
	case method.REQMOD:
		if httpRequest == nil {
			return ErrHTTPRequestRequired
		}
		if httpResponse != nil {
			return ErrHTTPResponseForbidden
		}
	case method.RESPMOD:
		if httpResponse == nil {
			return ErrHTTPResponseRequired
		}
	case method.OPTIONS:
		if httpRequest != nil {
			return ErrHTTPRequestForbidden
		}
		if httpResponse != nil {
			return ErrHTTPResponseForbidden
		}
	default:
		return method.ErrInvalidMethod
	}

	return nil
}

func (r *Request[T]) Method() method.Method {
	return r.method
}

// SetMethod changes the method, if the encapsulated heads and the body are legal for it.
func (r *Request[T]) SetMethod(m method.Method) error {
	if err := checkRequestParts(m, r.httpRequest, r.httpResponse); err != nil {
		return err
	}

	if r.body != nil && r.body.mode != modeOf(m) {
		return ErrBodyMode
	}

	r.method = m
	return nil
}

func (r *Request[T]) URI() string {
	return r.uri
}

func (r *Request[T]) SetURI(uri string) {
	r.uri = uri
}

func (r *Request[T]) Version() proto.Version {
	return r.version
}

func (r *Request[T]) SetVersion(version proto.Version) {
	r.version = version
}

// Headers returns the ICAP header fields. They're mutable in place.
func (r *Request[T]) Headers() Headers {
	return r.headers
}

func (r *Request[T]) SetHeaders(headers Headers) {
	if headers == nil {
		headers = kv.New()
	}

	r.headers = headers
}

// HTTPRequest returns the encapsulated HTTP request head, or nil.
func (r *Request[T]) HTTPRequest() *http.RequestParts {
	return r.httpRequest
}

func (r *Request[T]) SetHTTPRequest(parts *http.RequestParts) error {
	if err := checkRequestParts(r.method, parts, r.httpResponse); err != nil {
		return err
	}

	r.httpRequest = parts
	return nil
}

// HTTPResponse returns the encapsulated HTTP response head, or nil.
func (r *Request[T]) HTTPResponse() *http.ResponseParts {
	return r.httpResponse
}

func (r *Request[T]) SetHTTPResponse(parts *http.ResponseParts) error {
	if err := checkRequestParts(r.method, r.httpRequest, parts); err != nil {
		return err
	}

	r.httpResponse = parts
	return nil
}

// Body returns nil if the request carries no body.
func (r *Request[T]) Body() *Body[T] {
	return r.body
}

// SetBody wraps the payload into a Body in the mode of the request's method.
func (r *Request[T]) SetBody(payload T) {
	r.body = &Body[T]{mode: modeOf(r.method), payload: payload}
}

// AttachBody sets an already built body. It must have been built for the request's method.
func (r *Request[T]) AttachBody(body *Body[T]) error {
	if body != nil && body.mode != modeOf(r.method) {
		return ErrBodyMode
	}

	r.body = body
	return nil
}

// TakeBody detaches the body and returns its payload. The head and the encapsulated
// HTTP heads are left as they are.
func (r *Request[T]) TakeBody() (payload T, ok bool) {
	if r.body == nil {
		return payload, false
	}

	payload, r.body = r.body.payload, nil
	return payload, true
}
