package exchange

import (
	"github.com/sukh8282/exconsole/action"
	"github.com/sukh8282/exconsole/logger"
	"github.com/sukh8282/exconsole/model"
	"github.com/sukh8282/exconsole/remote"
	"github.com/sukh8282/exconsole/util"
	"go.uber.org/zap"
)

var _ action.Action = new(listGroupMembersAction)

type listGroupMembersAction struct {
	action.BaseAction
	client remote.Client
}

func newListGroupMembersAction(bAction action.BaseAction, client remote.Client) *listGroupMembersAction {
	return &listGroupMembersAction{
		BaseAction: bAction,
		client:     client,
	}
}

func (a *listGroupMembersAction) Execute(ctx *model.Context) (any, error) {
	logger.Info("running action", zap.String("name", a.GetLabel()), zap.String("group", ctx.Primary))
	raw, err := a.client.Call("Get-DistributionGroupMember", map[string]any{
		"Identity": ctx.Primary,
	})
	if err != nil {
		return nil, err
	}
	list, ok := raw.([]any)
	if !ok {
		return raw, nil
	}
	return util.SelectColumns(list, map[string]string{
		"name":  "$.DisplayName",
		"email": "$.PrimarySmtpAddress",
		"type":  "$.RecipientType",
	}), nil
}

var _ action.Action = new(groupMemberEditAction)

type groupMemberEditAction struct {
	action.BaseAction
	client remote.Client
	op     string
	status string
}

func newGroupMemberEditAction(bAction action.BaseAction, client remote.Client, op string, status string) *groupMemberEditAction {
	return &groupMemberEditAction{
		BaseAction: bAction,
		client:     client,
		op:         op,
		status:     status,
	}
}

func (a *groupMemberEditAction) Execute(ctx *model.Context) (any, error) {
	logger.Info("running action", zap.String("name", a.GetLabel()), zap.String("group", ctx.Primary), zap.String("member", ctx.Secondary))
	_, err := a.client.Call(a.op, map[string]any{
		"Identity": ctx.Primary,
		"Member":   ctx.Secondary,
	})
	if err != nil {
		return nil, err
	}
	return model.Row{
		"group":  ctx.Primary,
		"member": ctx.Secondary,
		"status": a.status,
	}, nil
}
