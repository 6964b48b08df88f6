package action

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/sukh8282/exconsole/model"
)

func TestRegistry(t *testing.T) {
	first := NewBaseAction(0, "first", model.FieldSpec{}, false)
	second := NewBaseAction(1, "second", model.FieldSpec{Primary: true}, true)
	registry := NewRegistry(first, second)

	require.Equal(t, 2, registry.Count())

	act, ok := registry.Get(0)
	require.True(t, ok)
	require.Equal(t, "first", act.GetLabel())

	act, ok = registry.Get(1)
	require.True(t, ok)
	require.Equal(t, "second", act.GetLabel())
	require.True(t, act.IsHeavy())

	_, ok = registry.Get(-1)
	require.False(t, ok)
	_, ok = registry.Get(2)
	require.False(t, ok)

	all := registry.All()
	require.Len(t, all, 2)
	all[0] = second
	act, _ = registry.Get(0)
	require.Equal(t, "first", act.GetLabel())
}

func TestBaseActionExecute(t *testing.T) {
	act := NewBaseAction(0, "bare", model.FieldSpec{}, false)
	_, err := act.Execute(&model.Context{})
	require.Error(t, err)
}
