package icap

import "github.com/ikrivosheev/icap/method"

type mode uint8

const (
	modeRequest mode = iota + 1
	modeResponse
	modeOptions
)

// modeOf returns zero for methods outside method.List.
func modeOf(m method.Method) mode {
	switch m {
	case method.REQMOD:
		return modeRequest
	case method.RESPMOD:
		return modeResponse
	case method.OPTIONS:
		return modeOptions
	default:
		return 0
	}
}

// Body is a payload remembering which ICAP mode it was produced for. The mode is set
// once by the constructor and is never exposed; a Body always holds a payload, its
// absence is expressed by a nil *Body.
type Body[T any] struct {
	mode    mode
	payload T
}

// RequestBody wraps a payload produced for a REQMOD message.
func RequestBody[T any](payload T) *Body[T] {
	return &Body[T]{mode: modeRequest, payload: payload}
}

// ResponseBody wraps a payload produced for a RESPMOD message.
func ResponseBody[T any](payload T) *Body[T] {
	return &Body[T]{mode: modeResponse, payload: payload}
}

// OptionsBody wraps a payload produced for an OPTIONS message.
func OptionsBody[T any](payload T) *Body[T] {
	return &Body[T]{mode: modeOptions, payload: payload}
}

// Unwrap returns the payload, whatever the mode is.
func (b *Body[T]) Unwrap() T {
	return b.payload
}

// Payload gives read-write access to the payload.
func (b *Body[T]) Payload() *T {
	return &b.payload
}
