package policy

import "tourbook/internal/domain"

// Action names one permission toggle in the role table.
type Action string

const (
	ActionManageUsers       Action = "can_manage_users"
	ActionManagePackages    Action = "can_manage_packages"
	ActionProcessRefunds    Action = "can_process_refunds"
	ActionModerateReviews   Action = "can_moderate_reviews"
	ActionSendAnnouncements Action = "can_send_announcements"
	ActionManageSettings    Action = "can_manage_settings"
	ActionViewReports       Action = "can_view_reports"
)

// Can answers "is action permitted for role" as a plain table lookup.
func Can(perms domain.PermissionSet, role domain.UserRole, action Action) bool {
	p, ok := perms[role]
	if !ok {
		return false
	}
	switch action {
	case ActionManageUsers:
		return p.CanManageUsers
	case ActionManagePackages:
		return p.CanManagePackages
	case ActionProcessRefunds:
		return p.CanProcessRefunds
	case ActionModerateReviews:
		return p.CanModerateReviews
	case ActionSendAnnouncements:
		return p.CanSendAnnouncements
	case ActionManageSettings:
		return p.CanManageSettings
	case ActionViewReports:
		return p.CanViewReports
	}
	return false
}

// EnforceImmutable forces the invariants no permission update may break.
// Today that is a single rule: ADMIN keeps can_manage_settings. A request
// that clears it is applied with the flag restored, not rejected.
func EnforceImmutable(perms PermissionUpdate) PermissionUpdate {
	if perms == nil {
		perms = PermissionUpdate{}
	}
	admin := perms[domain.RoleAdmin]
	admin.CanManageSettings = true
	perms[domain.RoleAdmin] = admin
	return perms
}

// PermissionUpdate is the mutable form used while applying a settings save.
type PermissionUpdate = domain.PermissionSet
