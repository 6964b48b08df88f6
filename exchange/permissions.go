package exchange

import (
	"github.com/sukh8282/exconsole/action"
	"github.com/sukh8282/exconsole/logger"
	"github.com/sukh8282/exconsole/model"
	"github.com/sukh8282/exconsole/remote"
	"github.com/sukh8282/exconsole/util"
	"go.uber.org/zap"
)

var _ action.Action = new(listPermissionsAction)

type listPermissionsAction struct {
	action.BaseAction
	client remote.Client
}

func newListPermissionsAction(bAction action.BaseAction, client remote.Client) *listPermissionsAction {
	return &listPermissionsAction{
		BaseAction: bAction,
		client:     client,
	}
}

func (a *listPermissionsAction) Execute(ctx *model.Context) (any, error) {
	logger.Info("running action", zap.String("name", a.GetLabel()), zap.String("mailbox", ctx.Primary))
	raw, err := a.client.Call("Get-MailboxPermission", map[string]any{
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
		"user":      "$.User",
		"rights":    "$.AccessRights",
		"inherited": "$.IsInherited",
	}), nil
}

var _ action.Action = new(permissionEditAction)

// permissionEditAction covers both grant and revoke. The remote operation
// for each legal access right is fixed at registration; Execute only
// looks the validated option up, it never branches on free text.
type permissionEditAction struct {
	action.BaseAction
	client remote.Client
	ops    map[string]string
	status string
}

func newPermissionEditAction(bAction action.BaseAction, client remote.Client, ops map[string]string, status string) *permissionEditAction {
	return &permissionEditAction{
		BaseAction: bAction,
		client:     client,
		ops:        ops,
		status:     status,
	}
}

func (a *permissionEditAction) Execute(ctx *model.Context) (any, error) {
	logger.Info("running action", zap.String("name", a.GetLabel()), zap.String("mailbox", ctx.Primary), zap.String("trustee", ctx.Secondary), zap.String("right", ctx.Option))
	_, err := a.client.Call(a.ops[ctx.Option], map[string]any{
		"Identity":     ctx.Primary,
		"User":         ctx.Secondary,
		"AccessRights": ctx.Option,
	})
	if err != nil {
		return nil, err
	}
	return model.Row{
		"mailbox": ctx.Primary,
		"trustee": ctx.Secondary,
		"rights":  ctx.Option,
		"status":  a.status,
	}, nil
}
