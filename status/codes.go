package status

import "strconv"

type (
	// Code is an ICAP status code, always within [100, 999] when obtained via
	// FromUint16 or FromBytes. The zero value is invalid.
	Code   uint16
	Status string
)

// ICAP status codes with a canonical reason phrase.
// See: RFC 3507, 4.3.3
const (
	Continue Code = 100 // continue after ICAP preview

	NoContent Code = 204 // no modifications needed

	BadRequest       Code = 400
	NotFound         Code = 404 // ICAP service not found
	MethodNotAllowed Code = 405 // method not allowed for service
	RequestTimeout   Code = 408 // server gave up waiting for a request from the client

	InternalServerError     Code = 500
	NotImplemented          Code = 501
	BadGateway              Code = 502
	ServiceUnavailable      Code = 503 // service overloaded
	ICAPVersionNotSupported Code = 505
)

// KnownCodes lists every code having a canonical reason, in ascending order.
var KnownCodes = []Code{
	Continue, NoContent, BadRequest, NotFound, MethodNotAllowed, RequestTimeout,
	InternalServerError, NotImplemented, BadGateway, ServiceUnavailable, ICAPVersionNotSupported,
}

// InvalidStatusCode is returned when an integer or a token isn't a valid ICAP status
// code. It carries no details and its fields are private, so compare against
// ErrInvalidStatusCode or use errors.As.
type InvalidStatusCode struct {
	_ struct{}
}

func (InvalidStatusCode) Error() string {
	return "icap: invalid status code"
}

var ErrInvalidStatusCode error = InvalidStatusCode{}

// FromUint16 accepts codes in the range [100, 999].
func FromUint16(n uint16) (Code, error) {
	if n < 100 || n >= 1000 {
		return 0, ErrInvalidStatusCode
	}

	return Code(n), nil
}

// FromBytes parses a 3-digit status code token. The first digit must not be zero.
func FromBytes(token []byte) (Code, error) {
	if len(token) != 3 {
		return 0, ErrInvalidStatusCode
	}

	// non-digits wrap around to values above 9 and are caught by the range check below
	a, b, c := token[0]-'0', token[1]-'0', token[2]-'0'
	if a == 0 || a > 9 || b > 9 || c > 9 {
		return 0, ErrInvalidStatusCode
	}

	return Code(uint16(a)*100 + uint16(b)*10 + uint16(c)), nil
}

// IsValid reports whether the code is within [100, 999].
func (c Code) IsValid() bool {
	return c >= 100 && c < 1000
}

func (c Code) Uint16() uint16 {
	return uint16(c)
}

// CanonicalReason returns the reason phrase, if the code has one. A valid code
// lacking a phrase isn't an error.
func (c Code) CanonicalReason() (Status, bool) {
	text := Text(c)
	return text, len(text) > 0
}

// String renders the code followed by its reason, e.g. "100 Continue".
func (c Code) String() string {
	reason, ok := c.CanonicalReason()
	if !ok {
		reason = "<unknown status code>"
	}

	return strconv.Itoa(int(c)) + " " + string(reason)
}

func (c Code) MarshalText() ([]byte, error) {
	return strconv.AppendUint(nil, uint64(c), 10), nil
}

// Text returns a text for the ICAP status code. It returns the empty
// string if the code is unknown.
func Text(code Code) Status {
	switch code {
	case Continue:
		return "Continue"
	case NoContent:
		return "No Content"
	case BadRequest:
		return "Bad Request"
	case NotFound:
		return "Not Found"
	case MethodNotAllowed:
		return "Method Not Allowed"
	case RequestTimeout:
		return "Request Timeout"
	case InternalServerError:
		return "Internal Server Error"
	case NotImplemented:
		return "Not Implemented"
	case BadGateway:
		return "Bad Gateway"
	case ServiceUnavailable:
		return "Service Unavailable"
	case ICAPVersionNotSupported:
		return "ICAP Version Not Supported"
	default:
		return ""
	}
}
