package exchange

import (
	"github.com/sukh8282/exconsole/action"
	"github.com/sukh8282/exconsole/logger"
	"github.com/sukh8282/exconsole/model"
	"github.com/sukh8282/exconsole/remote"
	"go.uber.org/zap"
)

var _ action.Action = new(setQuotaAction)

type setQuotaAction struct {
	action.BaseAction
	client remote.Client
}

func newSetQuotaAction(bAction action.BaseAction, client remote.Client) *setQuotaAction {
	return &setQuotaAction{
		BaseAction: bAction,
		client:     client,
	}
}

func (a *setQuotaAction) Execute(ctx *model.Context) (any, error) {
	logger.Info("running action", zap.String("name", a.GetLabel()), zap.String("mailbox", ctx.Primary), zap.String("quota", ctx.Extra))
	_, err := a.client.Call("Set-Mailbox", map[string]any{
		"Identity":          ctx.Primary,
		"ProhibitSendQuota": ctx.Extra,
	})
	if err != nil {
		return nil, err
	}
	return model.Row{
		"mailbox": ctx.Primary,
		"quota":   ctx.Extra,
		"status":  "updated",
	}, nil
}

var _ action.Action = new(setAutoReplyAction)

// setAutoReplyAction is fire and forget: the gateway acknowledges the
// configuration change and there is nothing tabular to show.
type setAutoReplyAction struct {
	action.BaseAction
	client remote.Client
}

func newSetAutoReplyAction(bAction action.BaseAction, client remote.Client) *setAutoReplyAction {
	return &setAutoReplyAction{
		BaseAction: bAction,
		client:     client,
	}
}

func (a *setAutoReplyAction) Execute(ctx *model.Context) (any, error) {
	logger.Info("running action", zap.String("name", a.GetLabel()), zap.String("mailbox", ctx.Primary))
	_, err := a.client.Call("Set-MailboxAutoReplyConfiguration", map[string]any{
		"Identity":        ctx.Primary,
		"AutoReplyState":  "Enabled",
		"InternalMessage": ctx.MessageInternal,
		"ExternalMessage": ctx.MessageExternal,
	})
	if err != nil {
		return nil, err
	}
	return nil, nil
}
