package exchange

import (
	"github.com/sukh8282/exconsole/action"
	"github.com/sukh8282/exconsole/model"
	"github.com/sukh8282/exconsole/remote"
)

const ACCESS_FULL = "FullAccess"
const ACCESS_SEND_AS = "SendAs"
const ACCESS_SEND_ON_BEHALF = "SendOnBehalf"

var accessRights = []string{ACCESS_FULL, ACCESS_SEND_AS, ACCESS_SEND_ON_BEHALF}

var grantOps = map[string]string{
	ACCESS_FULL:           "Add-MailboxPermission",
	ACCESS_SEND_AS:        "Add-RecipientPermission",
	ACCESS_SEND_ON_BEHALF: "Set-Mailbox-GrantSendOnBehalfTo",
}

var revokeOps = map[string]string{
	ACCESS_FULL:           "Remove-MailboxPermission",
	ACCESS_SEND_AS:        "Remove-RecipientPermission",
	ACCESS_SEND_ON_BEHALF: "Set-Mailbox-RevokeSendOnBehalfTo",
}

// BuildRegistry assembles the compiled-in catalog. Keys are catalog
// positions; the registry is read-only afterwards.
func BuildRegistry(client remote.Client) *action.Registry {
	return action.NewRegistry(
		newListPermissionsAction(
			*action.NewBaseAction(0, "List Mailbox Permissions", model.FieldSpec{Primary: true}, false), client),
		newPermissionEditAction(
			*action.NewBaseAction(1, "Grant Mailbox Permission", model.FieldSpec{Primary: true, Secondary: true, Option: true, Options: accessRights}, false),
			client, grantOps, "granted"),
		newPermissionEditAction(
			*action.NewBaseAction(2, "Revoke Mailbox Permission", model.FieldSpec{Primary: true, Secondary: true, Option: true, Options: accessRights}, false),
			client, revokeOps, "revoked"),
		newMailboxSizeReportAction(
			*action.NewBaseAction(3, "Mailbox Size Report", model.FieldSpec{}, true), client),
		newMessageTraceAction(
			*action.NewBaseAction(4, "Message Trace", model.FieldSpec{Primary: true, Secondary: true, TimeRange: true}, true), client),
		newListGroupMembersAction(
			*action.NewBaseAction(5, "List Group Members", model.FieldSpec{Primary: true}, false), client),
		newGroupMemberEditAction(
			*action.NewBaseAction(6, "Add Group Member", model.FieldSpec{Primary: true, Secondary: true}, false),
			client, "Add-DistributionGroupMember", "added"),
		newGroupMemberEditAction(
			*action.NewBaseAction(7, "Remove Group Member", model.FieldSpec{Primary: true, Secondary: true}, false),
			client, "Remove-DistributionGroupMember", "removed"),
		newSetQuotaAction(
			*action.NewBaseAction(8, "Set Mailbox Quota", model.FieldSpec{Primary: true, Extra: true}, false), client),
		newSetAutoReplyAction(
			*action.NewBaseAction(9, "Set Auto Reply", model.FieldSpec{Primary: true, Messages: true}, false), client),
		newInactiveMailboxReportAction(
			*action.NewBaseAction(10, "Inactive Mailbox Report", model.FieldSpec{TimeRange: true}, true), client),
		action.NewScriptAction(
			*action.NewBaseAction(11, "Script Report", model.FieldSpec{Extra: true}, true)),
	)
}
