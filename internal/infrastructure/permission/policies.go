package permission

import "helpdesk/internal/shared/authorization"

// Resources guarded by route-level permission checks.
const (
	ResourceTicket     = "ticket"
	ResourceComment    = "comment"
	ResourceAttachment = "attachment"
	ResourceUser       = "user"
	ResourceUpload     = "upload"
)

const (
	ActionCreate     = "create"
	ActionRead       = "read"
	ActionList       = "list"
	ActionUpdate     = "update"
	ActionDelete     = "delete"
	ActionDeactivate = "deactivate"
	ActionAll        = "*"
)

// DefaultPolicies is the role matrix. Ownership of individual records is
// checked by the use cases, not here.
func DefaultPolicies() [][]string {
	admin := authorization.RoleAdmin.String()
	user := authorization.RoleUser.String()

	return [][]string{
		// Admin permissions - full access
		{admin, ResourceTicket, ActionAll},
		{admin, ResourceComment, ActionAll},
		{admin, ResourceAttachment, ActionAll},
		{admin, ResourceUser, ActionAll},
		{admin, ResourceUpload, ActionAll},

		// User permissions - own tickets and own profile
		{user, ResourceTicket, ActionCreate},
		{user, ResourceTicket, ActionRead},
		{user, ResourceTicket, ActionList},
		{user, ResourceTicket, ActionUpdate},
		{user, ResourceComment, ActionCreate},
		{user, ResourceComment, ActionUpdate},
		{user, ResourceComment, ActionDelete},
		{user, ResourceAttachment, ActionCreate},
		{user, ResourceAttachment, ActionDelete},
		{user, ResourceUser, ActionRead},
		{user, ResourceUser, ActionUpdate},
	}
}
