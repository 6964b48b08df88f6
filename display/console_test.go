package display

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/sukh8282/exconsole/model"
)

func TestConsoleSink(t *testing.T) {
	t.Run("test columns are union across rows", func(t *testing.T) {
		var buf bytes.Buffer
		sink := NewConsoleSinkWithWriter(&buf)
		sink.Present([]model.Row{
			{"user": "a@x.com", "rights": "FullAccess"},
			{"user": "b@x.com", "inherited": true},
		})
		out := buf.String()
		require.Contains(t, out, "inherited")
		require.Contains(t, out, "rights")
		require.Contains(t, out, "user")
		require.Contains(t, out, "a@x.com")
		require.Contains(t, out, "b@x.com")
	})

	t.Run("test single info row", func(t *testing.T) {
		var buf bytes.Buffer
		sink := NewConsoleSinkWithWriter(&buf)
		sink.Present([]model.Row{{"info": "no results"}})
		require.Contains(t, buf.String(), "no results")
	})
}
