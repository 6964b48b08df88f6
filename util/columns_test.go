package util

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSelectColumns(t *testing.T) {
	columns := map[string]string{
		"user":   "$.User",
		"rights": "$.AccessRights",
	}

	t.Run("test columns extracted", func(t *testing.T) {
		rows := SelectColumns([]any{
			map[string]any{"User": "a@x.com", "AccessRights": "FullAccess", "Noise": true},
			map[string]any{"User": "b@x.com", "AccessRights": "SendAs"},
		}, columns)
		require.Len(t, rows, 2)
		require.Equal(t, "a@x.com", rows[0]["user"])
		require.Equal(t, "SendAs", rows[1]["rights"])
		require.NotContains(t, rows[0], "Noise")
	})

	t.Run("test missing path leaves column out", func(t *testing.T) {
		rows := SelectColumns([]any{
			map[string]any{"User": "a@x.com"},
		}, columns)
		require.Len(t, rows, 1)
		require.Equal(t, "a@x.com", rows[0]["user"])
		require.NotContains(t, rows[0], "rights")
	})

	t.Run("test elements never dropped", func(t *testing.T) {
		rows := SelectColumns([]any{
			map[string]any{},
			"not an object",
			map[string]any{"User": "c@x.com"},
		}, columns)
		require.Len(t, rows, 3)
		require.Equal(t, "c@x.com", rows[2]["user"])
	})

	t.Run("test empty payload", func(t *testing.T) {
		rows := SelectColumns(nil, columns)
		require.Empty(t, rows)
	})
}
