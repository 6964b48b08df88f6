package action

import (
	"encoding/json"
	"fmt"

	"github.com/dop251/goja"
	"github.com/sukh8282/exconsole/logger"
	"github.com/sukh8282/exconsole/model"
	"go.uber.org/zap"
)

var _ Action = new(ScriptAction)

// ScriptAction evaluates the javascript expression typed into the extra
// field. The script sees the invocation fields as $ and leaves its
// result in $.
type ScriptAction struct {
	BaseAction
}

func NewScriptAction(bAction BaseAction) *ScriptAction {
	return &ScriptAction{
		BaseAction: bAction,
	}
}

func (a *ScriptAction) Execute(ctx *model.Context) (any, error) {
	logger.Info("running script action", zap.String("name", a.GetLabel()))
	fields := map[string]any{
		"primary":   ctx.Primary,
		"secondary": ctx.Secondary,
		"option":    ctx.Option,
	}
	data, _ := json.Marshal(fields)
	expression := fmt.Sprintf("var $ = %s;\n", data)
	expression = expression + ctx.Extra
	vm := goja.New()
	_, err := vm.RunString(expression)
	if err != nil {
		return nil, fmt.Errorf("error executing javascript %w", err)
	}
	val, err := vm.RunString("$")
	if err != nil {
		return nil, fmt.Errorf("error executing javascript %w", err)
	}
	res, err := json.Marshal(val.Export())
	if err != nil {
		return nil, err
	}
	var output any
	json.Unmarshal(res, &output)
	return output, nil
}
