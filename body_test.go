package icap

import (
	"testing"

	"github.com/ikrivosheev/icap/method"
	"github.com/stretchr/testify/require"
)

func TestBody(t *testing.T) {
	t.Run("unwrap ignores mode", func(t *testing.T) {
		require.Equal(t, 7, RequestBody(7).Unwrap())
		require.Equal(t, 7, ResponseBody(7).Unwrap())
		require.Equal(t, 7, OptionsBody(7).Unwrap())
	})

	t.Run("mode", func(t *testing.T) {
		require.Equal(t, modeRequest, RequestBody("").mode)
		require.Equal(t, modeResponse, ResponseBody("").mode)
		require.Equal(t, modeOptions, OptionsBody("").mode)
	})

	t.Run("payload", func(t *testing.T) {
		body := ResponseBody([]byte("hello"))
		*body.Payload() = append(*body.Payload(), ", world"...)
		require.Equal(t, "hello, world", string(body.Unwrap()))
		require.Equal(t, modeResponse, body.mode)
	})

	t.Run("mode of method", func(t *testing.T) {
		require.Equal(t, modeRequest, modeOf(method.REQMOD))
		require.Equal(t, modeResponse, modeOf(method.RESPMOD))
		require.Equal(t, modeOptions, modeOf(method.OPTIONS))
		require.Zero(t, modeOf(method.Unknown))
	})
}
