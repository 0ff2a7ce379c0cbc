package dto

// AuditLogQuery is the query string of GET /admin/audit-logs. Dates accept RFC3339 or
// YYYY-MM-DD; a bare "to" date covers the whole day.
type AuditLogQuery struct {
	Search     string `query:"q"`
	Action     string `query:"action"`
	Category   string `query:"category"`
	EntityType string `query:"entity_type"`
	Department string `query:"department"`
	UserID     string `query:"user_id"`
	From       string `query:"from"`
	To         string `query:"to"`
}
