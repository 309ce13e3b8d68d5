package icap

import (
	"testing"

	"github.com/ikrivosheev/icap/method"
	"github.com/ikrivosheev/icap/status"
	"github.com/stretchr/testify/require"
)

func TestDumpRequest(t *testing.T) {
	request, err := NewReqmod[[]byte](serviceURI, getHTTPRequest())
	require.NoError(t, err)
	request.Headers().Add("Host", "icap-server.net")
	request.SetBody([]byte("secret payload"))

	dump, err := DumpRequest(request)
	require.NoError(t, err)
	require.JSONEq(t, `{
		"method": "REQMOD",
		"uri": "icap://icap-server.net/server?arg=87",
		"version": "ICAP/1.0",
		"headers": [{"Key": "Host", "Value": "icap-server.net"}],
		"http_request": {
			"method": "GET",
			"path": "/origin-resource",
			"protocol": "HTTP/1.1",
			"headers": [{"Key": "Host", "Value": "www.origin-server.com"}]
		},
		"body": true
	}`, string(dump))
}

func TestDumpResponse(t *testing.T) {
	response, err := NewResponse[string](method.RESPMOD, status.Code(200))
	require.NoError(t, err)
	require.NoError(t, response.SetHTTPResponse(getHTTPResponse()))

	dump, err := DumpResponse(response)
	require.NoError(t, err)
	require.JSONEq(t, `{
		"method": "RESPMOD",
		"code": 200,
		"version": "ICAP/1.0",
		"http_response": {
			"code": 200,
			"status": "OK",
			"protocol": "HTTP/1.1",
			"headers": [{"Key": "Content-Type", "Value": "text/html"}]
		},
		"body": false
	}`, string(dump))

	dump, err = DumpResponse(ErrorResponse[string](method.Unknown, status.ErrServiceNotFound))
	require.NoError(t, err)
	require.JSONEq(t, `{"code": 404, "status": "Not Found", "version": "ICAP/1.0", "body": false}`, string(dump))
}
