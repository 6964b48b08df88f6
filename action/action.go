package action

import (
	"fmt"

	"github.com/sukh8282/exconsole/model"
)

// Action describes one catalog operation: identity, declared input
// fields, the heavy flag and the handler. Descriptors are immutable
// after construction; the catalog is compiled in.
type Action interface {
	GetKey() int
	GetLabel() string
	GetFieldSpec() model.FieldSpec
	IsHeavy() bool
	Execute(ctx *model.Context) (any, error)
}

var _ Action = new(BaseAction)

type BaseAction struct {
	key       int
	label     string
	fieldSpec model.FieldSpec
	heavy     bool
}

func NewBaseAction(key int, label string, fieldSpec model.FieldSpec, heavy bool) *BaseAction {
	return &BaseAction{
		key:       key,
		label:     label,
		fieldSpec: fieldSpec,
		heavy:     heavy,
	}
}

func (ba *BaseAction) GetKey() int {
	return ba.key
}

func (ba *BaseAction) GetLabel() string {
	return ba.label
}

func (ba *BaseAction) GetFieldSpec() model.FieldSpec {
	return ba.fieldSpec
}

func (ba *BaseAction) IsHeavy() bool {
	return ba.heavy
}

func (ba *BaseAction) Execute(ctx *model.Context) (any, error) {
	return nil, fmt.Errorf("action %s implementation not found", ba.label)
}
