package rbac

// Role constants
const (
	RoleSuperAdmin = "super_admin"
	RoleAdmin      = "admin"
	RoleHR         = "hr"
	RoleManager    = "manager"
	RoleEmployee   = "employee"
)

// Permission constants
const (
	PermViewAuditTrail   = "view_audit_trail"
	PermViewAuditPayload = "view_audit_payload"
)

// RolePermissions defines what each role can do with the audit trail.
var RolePermissions = map[string][]string{
	RoleSuperAdmin: {PermViewAuditTrail, PermViewAuditPayload},
	RoleAdmin:      {PermViewAuditTrail, PermViewAuditPayload},
	RoleHR:         {PermViewAuditTrail},
	RoleManager:    {},
	RoleEmployee:   {},
}

// HasPermission checks if a role has a specific permission.
func HasPermission(role, permission string) bool {
	perms, ok := RolePermissions[role]
	if !ok {
		return false
	}
	for _, p := range perms {
		if p == permission {
			return true
		}
	}
	return false
}
