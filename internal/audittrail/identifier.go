package audittrail

import (
	"strings"

	"github.com/opsdesk/backend/internal/models"
)

const maxIdentifierLen = 50

// resolveIdentifier picks a short label for what was acted on.
func resolveIdentifier(n normalized, lk *Lookups) string {
	var id string
	switch n.kind {
	case KindAsset:
		a := lk.Assets[assetID(n)]
		id = firstNonEmpty(
			models.Deref(a.UniqueID),
			n.after.First("unique_id", "asset_code", "asset_tag"),
			n.before.First("unique_id", "asset_code", "asset_tag"),
			models.Deref(a.Name),
			n.after.First("asset_name", "name"),
			n.before.First("asset_name", "name"),
		)
	case KindEmployee:
		u := lk.Users[n.entityID]
		id = firstNonEmpty(
			models.Deref(u.EmployeeNumber),
			n.after.String("employee_number"),
			n.before.String("employee_number"),
		)
		if id == "" {
			id = emailLocalPart(firstNonEmpty(models.Deref(u.Email), n.after.String("email"), n.before.String("email")))
		}
	case KindTask:
		t := lk.Tasks[taskID(n)]
		id = truncate(firstNonEmpty(
			models.Deref(t.Title),
			n.after.First("title", "task_title", "name"),
			n.before.First("title", "task_title", "name"),
		))
	case KindDevice:
		d := lk.Devices[deviceID(n)]
		id = firstNonEmpty(
			models.Deref(d.Name),
			models.Deref(d.SerialNumber),
			n.after.First("device_name", "name", "serial_number"),
			n.before.First("device_name", "name", "serial_number"),
		)
	case KindProject:
		id = truncate(firstNonEmpty(
			n.after.First("name", "project_name", "title"),
			n.before.First("name", "project_name", "title"),
		))
	case KindFinance:
		id = truncate(firstNonEmpty(
			n.after.First("reference", "invoice_number", "receipt_number", "title"),
			n.before.First("reference", "invoice_number", "receipt_number", "title"),
			paymentCategoryName(n, lk),
		))
	case KindLeave:
		r, _ := leaveRequest(n, lk)
		id = titleize(firstNonEmpty(
			n.after.String("leave_type"),
			n.before.String("leave_type"),
			models.Deref(r.LeaveType),
		))
	case KindDepartment:
		d := lk.Departments[n.entityID]
		id = firstNonEmpty(
			models.Deref(d.Code),
			d.Name,
			n.after.First("code", "name"),
			n.before.First("code", "name"),
		)
	case KindFeedback:
		id = truncate(firstNonEmpty(
			n.after.First("subject", "title"),
			n.before.First("subject", "title"),
			plainText(n.after.First("message", "content", "body")),
			plainText(n.before.First("message", "content", "body")),
		))
	case KindDocumentation:
		id = truncate(firstNonEmpty(
			n.after.First("file_name", "filename", "title", "name"),
			n.before.First("file_name", "filename", "title", "name"),
			plainText(n.after.First("content", "body")),
			plainText(n.before.First("content", "body")),
		))
	default:
		id = truncate(firstNonEmpty(
			n.after.First("name", "title"),
			n.before.First("name", "title"),
		))
	}

	if id == "" {
		return models.NoTarget
	}
	return id
}

func emailLocalPart(email string) string {
	if i := strings.IndexByte(email, '@'); i > 0 {
		return email[:i]
	}
	return email
}

// truncate shortens s to maxIdentifierLen runes, marking the cut with "...".
func truncate(s string) string {
	r := []rune(s)
	if len(r) <= maxIdentifierLen {
		return s
	}
	return strings.TrimSpace(string(r[:maxIdentifierLen-3])) + "..."
}
