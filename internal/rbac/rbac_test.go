package rbac

import "testing"

func TestHasPermission(t *testing.T) {
	tests := []struct {
		role     string
		perm     string
		expected bool
	}{
		{RoleSuperAdmin, PermViewAuditTrail, true},
		{RoleAdmin, PermViewAuditPayload, true},
		{RoleHR, PermViewAuditTrail, true},
		{RoleHR, PermViewAuditPayload, false},
		{RoleManager, PermViewAuditTrail, false},
		{RoleEmployee, PermViewAuditTrail, false},
		{"nonexistent", PermViewAuditTrail, false},
	}

	for _, tt := range tests {
		t.Run(tt.role+"/"+tt.perm, func(t *testing.T) {
			if got := HasPermission(tt.role, tt.perm); got != tt.expected {
				t.Errorf("HasPermission(%q, %q) = %v, want %v", tt.role, tt.perm, got, tt.expected)
			}
		})
	}
}
