package icap

import (
	"errors"

	"github.com/dchest/uniuri"
	"github.com/ikrivosheev/icap/http"
	"github.com/ikrivosheev/icap/kv"
	"github.com/ikrivosheev/icap/method"
	"github.com/ikrivosheev/icap/proto"
	"github.com/ikrivosheev/icap/status"
)

// Response represents an ICAP response to a request of a known method. What it may
// encapsulate depends on that method and on the status code:
//
//   - 100 and 204 carry neither HTTP heads nor a body;
//   - to REQMOD: either the adapted HTTP request or an HTTP response satisfying it;
//   - to RESPMOD: the adapted HTTP response only;
//   - to OPTIONS: no HTTP heads.
type Response[T any] struct {
	method       method.Method
	code         status.Code
	version      proto.Version
	headers      Headers
	httpRequest  *http.RequestParts
	httpResponse *http.ResponseParts
	body         *Body[T]
}

// NewResponse returns an empty response to a request of the method m.
func NewResponse[T any](m method.Method, code status.Code) (*Response[T], error) {
	if !m.IsValid() {
		return nil, method.ErrInvalidMethod
	}

	if !code.IsValid() {
		return nil, status.ErrInvalidStatusCode
	}

	return &Response[T]{
		method:  m,
		code:    code,
		version: proto.Default(),
		headers: kv.New(),
	}, nil
}

// ErrorResponse returns a bodiless response for the error. The code is taken from
// status.ICAPError; unrecognized methods are answered with 501 and everything else with
// 500. m may be method.Unknown, e.g. when the request line itself failed to parse.
func ErrorResponse[T any](m method.Method, err error) *Response[T] {
	code := status.InternalServerError

	var icapErr status.ICAPError
	switch {
	case errors.As(err, &icapErr) && icapErr.Code.IsValid():
		code = icapErr.Code
	case errors.Is(err, method.ErrInvalidMethod):
		code = status.NotImplemented
	case errors.Is(err, status.ErrInvalidStatusCode):
		code = status.BadRequest
	}

	return &Response[T]{
		method:  m,
		code:    code,
		version: proto.Default(),
		headers: kv.New(),
	}
}

func checkResponseParts(
	m method.Method, code status.Code,
	httpRequest *http.RequestParts, httpResponse *http.ResponseParts, hasBody bool,
) error {
	if httpRequest == nil && httpResponse == nil && !hasBody {
		return nil
	}

	if code == status.Continue || code == status.NoContent {
		return ErrContentForbidden
	}

	switch m {
	case method.REQMOD:
		if httpRequest != nil && httpResponse != nil {
			return ErrAmbiguousParts
		}
	case method.RESPMOD:
		if httpRequest != nil {
			return ErrHTTPRequestForbidden
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

// Method returns the method of the request being answered.
func (r *Response[T]) Method() method.Method {
	return r.method
}

func (r *Response[T]) Code() status.Code {
	return r.code
}

// SetCode changes the status code. 100 and 204 are refused while the response
// encapsulates anything.
func (r *Response[T]) SetCode(code status.Code) error {
	if !code.IsValid() {
		return status.ErrInvalidStatusCode
	}

	if err := checkResponseParts(r.method, code, r.httpRequest, r.httpResponse, r.body != nil); err != nil {
		return err
	}

	r.code = code
	return nil
}

func (r *Response[T]) Version() proto.Version {
	return r.version
}

func (r *Response[T]) SetVersion(version proto.Version) {
	r.version = version
}

func (r *Response[T]) Headers() Headers {
	return r.headers
}

func (r *Response[T]) SetHeaders(headers Headers) {
	if headers == nil {
		headers = kv.New()
	}

	r.headers = headers
}

// ISTag returns the service tag header value, if any.
func (r *Response[T]) ISTag() string {
	return r.headers.Value("ISTag")
}

func (r *Response[T]) SetISTag(tag string) {
	r.headers.Set("ISTag", tag)
}

func (r *Response[T]) HTTPRequest() *http.RequestParts {
	return r.httpRequest
}

func (r *Response[T]) SetHTTPRequest(parts *http.RequestParts) error {
	if err := checkResponseParts(r.method, r.code, parts, r.httpResponse, r.body != nil); err != nil {
		return err
	}

	r.httpRequest = parts
	return nil
}

func (r *Response[T]) HTTPResponse() *http.ResponseParts {
	return r.httpResponse
}

func (r *Response[T]) SetHTTPResponse(parts *http.ResponseParts) error {
	if err := checkResponseParts(r.method, r.code, r.httpRequest, parts, r.body != nil); err != nil {
		return err
	}

	r.httpResponse = parts
	return nil
}

func (r *Response[T]) Body() *Body[T] {
	return r.body
}

// SetBody wraps the payload into a Body in the mode of the answered method.
func (r *Response[T]) SetBody(payload T) error {
	if err := checkResponseParts(r.method, r.code, r.httpRequest, r.httpResponse, true); err != nil {
		return err
	}

	r.body = &Body[T]{mode: modeOf(r.method), payload: payload}
	return nil
}

// TakeBody detaches the body and returns its payload.
func (r *Response[T]) TakeBody() (payload T, ok bool) {
	if r.body == nil {
		return payload, false
	}

	payload, r.body = r.body.payload, nil
	return payload, true
}

// istagLength leaves room for the quotes within the 32 bytes RFC 3507 allows.
const istagLength = 30

// NewISTag returns a random quoted service tag, suitable for the ISTag header.
// It must be regenerated each time the service changes the way it adapts messages.
func NewISTag() string {
	return `"` + uniuri.NewLen(istagLength) + `"`
}
