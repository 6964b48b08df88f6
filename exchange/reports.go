package exchange

import (
	"github.com/sukh8282/exconsole/action"
	"github.com/sukh8282/exconsole/logger"
	"github.com/sukh8282/exconsole/model"
	"github.com/sukh8282/exconsole/remote"
	"github.com/sukh8282/exconsole/util"
	"go.uber.org/zap"
)

var _ action.Action = new(mailboxSizeReportAction)

type mailboxSizeReportAction struct {
	action.BaseAction
	client remote.Client
}

func newMailboxSizeReportAction(bAction action.BaseAction, client remote.Client) *mailboxSizeReportAction {
	return &mailboxSizeReportAction{
		BaseAction: bAction,
		client:     client,
	}
}

func (a *mailboxSizeReportAction) Execute(ctx *model.Context) (any, error) {
	logger.Info("running action", zap.String("name", a.GetLabel()))
	raw, err := a.client.Call("Get-MailboxStatistics", nil)
	if err != nil {
		return nil, err
	}
	list, ok := raw.([]any)
	if !ok {
		return raw, nil
	}
	return util.SelectColumns(list, map[string]string{
		"mailbox": "$.DisplayName",
		"items":   "$.ItemCount",
		"size":    "$.TotalItemSize",
	}), nil
}

var _ action.Action = new(messageTraceAction)

type messageTraceAction struct {
	action.BaseAction
	client remote.Client
}

func newMessageTraceAction(bAction action.BaseAction, client remote.Client) *messageTraceAction {
	return &messageTraceAction{
		BaseAction: bAction,
		client:     client,
	}
}

func (a *messageTraceAction) Execute(ctx *model.Context) (any, error) {
	logger.Info("running action", zap.String("name", a.GetLabel()), zap.String("sender", ctx.Primary), zap.String("recipient", ctx.Secondary))
	raw, err := a.client.Call("Get-MessageTrace", map[string]any{
		"SenderAddress":    ctx.Primary,
		"RecipientAddress": ctx.Secondary,
		"StartDate":        ctx.Start.Format(model.TimestampFormat),
		"EndDate":          ctx.End.Format(model.TimestampFormat),
	})
	if err != nil {
		return nil, err
	}
	list, ok := raw.([]any)
	if !ok {
		return raw, nil
	}
	return util.SelectColumns(list, map[string]string{
		"received":  "$.Received",
		"sender":    "$.SenderAddress",
		"recipient": "$.RecipientAddress",
		"subject":   "$.Subject",
		"status":    "$.Status",
	}), nil
}

var _ action.Action = new(inactiveMailboxReportAction)

// inactiveMailboxReportAction returns the gateway payload as is; the rows
// are heterogeneous (shared mailboxes carry a different shape) and the
// normalizer flattens them without dropping records.
type inactiveMailboxReportAction struct {
	action.BaseAction
	client remote.Client
}

func newInactiveMailboxReportAction(bAction action.BaseAction, client remote.Client) *inactiveMailboxReportAction {
	return &inactiveMailboxReportAction{
		BaseAction: bAction,
		client:     client,
	}
}

func (a *inactiveMailboxReportAction) Execute(ctx *model.Context) (any, error) {
	logger.Info("running action", zap.String("name", a.GetLabel()))
	return a.client.Call("Get-MailboxStatistics", map[string]any{
		"InactiveSince": ctx.Start.Format(model.TimestampFormat),
		"InactiveUntil": ctx.End.Format(model.TimestampFormat),
	})
}
