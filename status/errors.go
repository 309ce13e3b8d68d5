package status

// ICAPError is an error bound to the status code it must be answered with.
type ICAPError struct {
	Message string
	Code    Code
}

func NewError(code Code, message string) error {
	return ICAPError{
		Code:    code,
		Message: message,
	}
}

func (e ICAPError) Error() string {
	return e.Message
}

var (
	ErrBadRequest           = NewError(BadRequest, "bad request")
	ErrServiceNotFound      = NewError(NotFound, "ICAP service not found")
	ErrMethodNotAllowed     = NewError(MethodNotAllowed, "method not allowed for service")
	ErrRequestTimeout       = NewError(RequestTimeout, "request timeout")
	ErrInternalServerError  = NewError(InternalServerError, "internal server error")
	ErrMethodNotImplemented = NewError(NotImplemented, "method not implemented")
	ErrBadGateway           = NewError(BadGateway, "bad gateway")
	ErrServiceUnavailable   = NewError(ServiceUnavailable, "service overloaded")
	ErrVersionNotSupported  = NewError(ICAPVersionNotSupported, "ICAP version not supported")
)
