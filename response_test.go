package icap

import (
	"errors"
	"strings"
	"testing"

	"github.com/ikrivosheev/icap/method"
	"github.com/ikrivosheev/icap/proto"
	"github.com/ikrivosheev/icap/status"
	"github.com/stretchr/testify/require"
)

func TestNewResponse(t *testing.T) {
	response, err := NewResponse[string](method.REQMOD, status.NoContent)
	require.NoError(t, err)
	require.Equal(t, method.REQMOD, response.Method())
	require.Equal(t, status.NoContent, response.Code())
	require.Equal(t, proto.ICAP10, response.Version())
	require.True(t, response.Headers().Empty())

	_, err = NewResponse[string](method.Unknown, status.NoContent)
	require.ErrorIs(t, err, method.ErrInvalidMethod)

	_, err = NewResponse[string](method.OPTIONS, status.Code(42))
	require.ErrorIs(t, err, status.ErrInvalidStatusCode)
}

func TestErrorResponse(t *testing.T) {
	tcs := []struct {
		Name string
		Err  error
		Code status.Code
	}{
		{"icap error", status.ErrServiceNotFound, status.NotFound},
		{"wrapped icap error", errors.Join(errors.New("lookup"), status.ErrMethodNotAllowed), status.MethodNotAllowed},
		{"invalid method", method.ErrInvalidMethod, status.NotImplemented},
		{"invalid status", status.ErrInvalidStatusCode, status.BadRequest},
		{"out of range icap error", status.NewError(0, "broken"), status.InternalServerError},
		{"arbitrary", errors.New("boom"), status.InternalServerError},
	}

	for _, tc := range tcs {
		t.Run(tc.Name, func(t *testing.T) {
			response := ErrorResponse[string](method.Unknown, tc.Err)
			require.Equal(t, tc.Code, response.Code())
			require.Equal(t, method.Unknown, response.Method())
			require.Nil(t, response.Body())
		})
	}
}

func TestResponseParts(t *testing.T) {
	t.Run("no content", func(t *testing.T) {
		for _, code := range []status.Code{status.Continue, status.NoContent} {
			response, err := NewResponse[string](method.RESPMOD, code)
			require.NoError(t, err)
			require.ErrorIs(t, response.SetHTTPResponse(getHTTPResponse()), ErrContentForbidden)
			require.ErrorIs(t, response.SetBody("body"), ErrContentForbidden)
			require.Nil(t, response.HTTPResponse())
			require.Nil(t, response.Body())
		}
	})

	t.Run("reqmod", func(t *testing.T) {
		response, err := NewResponse[string](method.REQMOD, status.Code(200))
		require.NoError(t, err)
		require.NoError(t, response.SetHTTPRequest(getHTTPRequest()))
		require.ErrorIs(t, response.SetHTTPResponse(getHTTPResponse()), ErrAmbiguousParts)

		require.NoError(t, response.SetHTTPRequest(nil))
		require.NoError(t, response.SetHTTPResponse(getHTTPResponse()))
		require.NotNil(t, response.HTTPResponse())
	})

	t.Run("respmod", func(t *testing.T) {
		response, err := NewResponse[string](method.RESPMOD, status.Code(200))
		require.NoError(t, err)
		require.ErrorIs(t, response.SetHTTPRequest(getHTTPRequest()), ErrHTTPRequestForbidden)
		require.NoError(t, response.SetHTTPResponse(getHTTPResponse()))
	})

	t.Run("options", func(t *testing.T) {
		response, err := NewResponse[string](method.OPTIONS, status.Code(200))
		require.NoError(t, err)
		require.ErrorIs(t, response.SetHTTPRequest(getHTTPRequest()), ErrHTTPRequestForbidden)
		require.ErrorIs(t, response.SetHTTPResponse(getHTTPResponse()), ErrHTTPResponseForbidden)
		require.NoError(t, response.SetBody("opt-body"))
		require.Equal(t, modeOptions, response.Body().mode)
	})

	t.Run("unknown method", func(t *testing.T) {
		response := ErrorResponse[string](method.Unknown, status.ErrBadRequest)
		require.ErrorIs(t, response.SetBody("body"), method.ErrInvalidMethod)
		require.ErrorIs(t, response.SetHTTPRequest(getHTTPRequest()), method.ErrInvalidMethod)
	})
}

func TestResponseCode(t *testing.T) {
	response, err := NewResponse[[]byte](method.RESPMOD, status.Code(200))
	require.NoError(t, err)
	require.NoError(t, response.SetHTTPResponse(getHTTPResponse()))
	require.NoError(t, response.SetBody([]byte("<html></html>")))
	require.Equal(t, modeResponse, response.Body().mode)

	require.ErrorIs(t, response.SetCode(status.NoContent), ErrContentForbidden)
	require.ErrorIs(t, response.SetCode(status.Code(1000)), status.ErrInvalidStatusCode)
	require.Equal(t, status.Code(200), response.Code())

	payload, ok := response.TakeBody()
	require.True(t, ok)
	require.Equal(t, "<html></html>", string(payload))
	require.NoError(t, response.SetHTTPResponse(nil))
	require.NoError(t, response.SetCode(status.NoContent))

	_, ok = response.TakeBody()
	require.False(t, ok)
}

func TestISTag(t *testing.T) {
	tag := NewISTag()
	require.Len(t, tag, 32)
	require.True(t, strings.HasPrefix(tag, `"`) && strings.HasSuffix(tag, `"`))
	require.NotEqual(t, tag, NewISTag())

	response, err := NewResponse[string](method.OPTIONS, status.Code(200))
	require.NoError(t, err)
	response.SetISTag(tag)
	response.Headers().Add("istag", `"stale"`)
	response.SetISTag(tag)
	require.Equal(t, tag, response.ISTag())
	require.Equal(t, 1, response.Headers().Len())

	response.SetVersion(proto.Default())
	response.SetHeaders(nil)
	require.Empty(t, response.ISTag())
}
