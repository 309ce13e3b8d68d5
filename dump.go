package icap

import (
	"github.com/ikrivosheev/icap/http"
	"github.com/ikrivosheev/icap/kv"
	json "github.com/json-iterator/go"
)

type httpHeadDump struct {
	Method   string    `json:"method,omitempty"`
	Path     string    `json:"path,omitempty"`
	Code     uint16    `json:"code,omitempty"`
	Status   string    `json:"status,omitempty"`
	Protocol string    `json:"protocol"`
	Headers  []kv.Pair `json:"headers,omitempty"`
}

type headDump struct {
	Method       string        `json:"method,omitempty"`
	URI          string        `json:"uri,omitempty"`
	Code         uint16        `json:"code,omitempty"`
	Status       string        `json:"status,omitempty"`
	Version      string        `json:"version"`
	Headers      []kv.Pair     `json:"headers,omitempty"`
	HTTPRequest  *httpHeadDump `json:"http_request,omitempty"`
	HTTPResponse *httpHeadDump `json:"http_response,omitempty"`
	Body         bool          `json:"body"`
}

// DumpRequest renders the request head and the encapsulated HTTP heads as JSON. The
// body payload isn't rendered, only its presence.
func DumpRequest[T any](r *Request[T]) ([]byte, error) {
	return json.ConfigCompatibleWithStandardLibrary.Marshal(headDump{
		Method:       r.method.String(),
		URI:          r.uri,
		Version:      r.version.String(),
		Headers:      exposeHeaders(r.headers),
		HTTPRequest:  dumpHTTPRequest(r.httpRequest),
		HTTPResponse: dumpHTTPResponse(r.httpResponse),
		Body:         r.body != nil,
	})
}

// DumpResponse behaves as DumpRequest. The method is the one of the answered request.
func DumpResponse[T any](r *Response[T]) ([]byte, error) {
	reason, _ := r.code.CanonicalReason()

	return json.ConfigCompatibleWithStandardLibrary.Marshal(headDump{
		Method:       r.method.String(),
		Code:         r.code.Uint16(),
		Status:       string(reason),
		Version:      r.version.String(),
		Headers:      exposeHeaders(r.headers),
		HTTPRequest:  dumpHTTPRequest(r.httpRequest),
		HTTPResponse: dumpHTTPResponse(r.httpResponse),
		Body:         r.body != nil,
	})
}

func dumpHTTPRequest(parts *http.RequestParts) *httpHeadDump {
	if parts == nil {
		return nil
	}

	return &httpHeadDump{
		Method:   parts.Method.String(),
		Path:     parts.Path,
		Protocol: parts.Protocol.String(),
		Headers:  exposeHeaders(parts.Headers),
	}
}

func dumpHTTPResponse(parts *http.ResponseParts) *httpHeadDump {
	if parts == nil {
		return nil
	}

	return &httpHeadDump{
		Code:     parts.Code,
		Status:   parts.Status,
		Protocol: parts.Protocol.String(),
		Headers:  exposeHeaders(parts.Headers),
	}
}

func exposeHeaders(headers Headers) []kv.Pair {
	if headers == nil {
		return nil
	}

	return headers.Expose()
}
