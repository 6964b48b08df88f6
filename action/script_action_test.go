package action

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/sukh8282/exconsole/model"
)

func TestScriptAction(t *testing.T) {
	act := NewScriptAction(*NewBaseAction(0, "script", model.FieldSpec{Extra: true}, true))

	t.Run("test script builds rows", func(t *testing.T) {
		ctx := &model.Context{Extra: `$ = [{"mailbox": $.primary, "n": 1}, {"mailbox": $.primary, "n": 2}];`, Primary: "a@x.com"}
		out, err := act.Execute(ctx)
		require.NoError(t, err)
		list, ok := out.([]any)
		require.True(t, ok)
		require.Len(t, list, 2)
		first, ok := list[0].(map[string]any)
		require.True(t, ok)
		require.Equal(t, "a@x.com", first["mailbox"])
	})

	t.Run("test invalid script fails", func(t *testing.T) {
		ctx := &model.Context{Extra: "this is not javascript ((("}
		_, err := act.Execute(ctx)
		require.Error(t, err)
	})
}
