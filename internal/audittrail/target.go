package audittrail

import (
	"strings"

	"github.com/opsdesk/backend/internal/models"
)

// Name keys a write may have captured for the person an asset event was about. The
// resolved names of captured ids land under the same keys via annotate.
var capturedTargetKeys = []string{
	"target_name", "target_user_name", "assigned_to_name", "assigned_user_name",
	"assignee_name", "employee_name",
}

// Person keys that name who an action was performed on, as opposed to who performed it.
var subjectKeys = []string{
	"target_user_id", "assigned_to", "assigned_user_id", "assignee_id", "employee_id",
	"user_id", "requester_id",
}

// Id keys through which an asset row names who it was assigned to.
var assigneeIDKeys = []string{
	"assigned_to", "assigned_user_id", "assignee_id", "target_user_id", "employee_id", "user_id",
}

var (
	departmentAssignmentTypes = map[string]bool{"department": true, "dept": true, "team": true}
	locationAssignmentTypes   = map[string]bool{"location": true, "office": true, "office_location": true, "site": true}
)

// resolveTarget picks the entity or person an event was performed on.
func resolveTarget(n normalized, lk *Lookups) string {
	var t string
	switch n.kind {
	case KindAsset:
		t = assetTarget(n)
	case KindTask:
		current := ""
		if task, ok := lk.Tasks[taskID(n)]; ok {
			current = lk.UserName(models.Deref(task.AssignedTo))
		}
		t = firstNonEmpty(payloadAssignee(n), current, subjectName(n))
	case KindDevice:
		current := ""
		if d, ok := lk.Devices[deviceID(n)]; ok {
			current = lk.UserName(models.Deref(d.AssignedTo))
		}
		t = firstNonEmpty(payloadAssignee(n), current, subjectName(n))
	case KindEmployee:
		t = firstNonEmpty(
			lk.UserName(n.entityID),
			personName(n.after),
			personName(n.before),
			subjectName(n),
		)
	case KindFinance:
		t = firstNonEmpty(
			paymentCategoryName(n, lk),
			n.after.First("title", "name", "payee", "description"),
			n.before.First("title", "name", "payee", "description"),
		)
	case KindLeave:
		t = firstNonEmpty(
			leaveRequesterName(n, lk),
			n.after.First("requester_name", "employee_name", "user_name"),
			n.before.First("requester_name", "employee_name", "user_name"),
		)
	case KindDepartment:
		t = firstNonEmpty(
			lk.DepartmentName(n.entityID),
			firstLabel(n.after, "name", "department_name"),
			firstLabel(n.before, "name", "department_name"),
		)
	case KindProject, KindFeedback, KindDocumentation:
		t = subjectName(n)
	}

	if t == "" {
		return models.NoTarget
	}
	return t
}

// assetTarget only trusts what the event itself recorded. Rows written before targets were
// captured show no target for individual assignments: the asset's current holder is not
// necessarily who the event was about. The before-state is only consulted when the after-state
// names no assignee at all (returns, unassignments, deletes); on a reassignment it holds the
// previous holder.
func assetTarget(n normalized) string {
	sources := []models.Payload{n.after}
	if !hasAny(n.after, assigneeIDKeys...) {
		sources = append(sources, n.before)
	}
	for _, p := range sources {
		if name := p.First(capturedTargetKeys...); name != "" {
			return name
		}
	}

	typ := strings.ToLower(firstNonEmpty(
		n.after.First("assignment_type", "assigned_type"),
		n.before.First("assignment_type", "assigned_type"),
	))
	switch {
	case departmentAssignmentTypes[typ]:
		return firstNonEmpty(
			firstLabel(n.after, "department_name", "department"),
			firstLabel(n.before, "department_name", "department"),
			models.Deref(n.rec.Department),
		)
	case locationAssignmentTypes[typ]:
		return firstNonEmpty(
			firstLabel(n.after, "office_location", "location", "office"),
			firstLabel(n.before, "office_location", "location", "office"),
		)
	default:
		return ""
	}
}

func hasAny(p models.Payload, keys ...string) bool {
	for _, k := range keys {
		if p.Has(k) {
			return true
		}
	}
	return false
}

func currentHolder(n normalized, lk *Lookups) string {
	a, ok := lk.Assignments[assetID(n)]
	if !ok {
		return ""
	}
	return firstNonEmpty(
		lk.UserName(models.Deref(a.AssignedTo)),
		models.Deref(a.DepartmentName),
		models.Deref(a.OfficeLocation),
	)
}

func payloadAssignee(n normalized) string {
	for _, p := range []models.Payload{n.after, n.before} {
		if name := p.First("assigned_to_name", "assignee_name", "assigned_user_name"); name != "" {
			return name
		}
	}
	return ""
}

// subjectName is the generic target: the first resolved person the payload is about.
func subjectName(n normalized) string {
	for _, p := range []models.Payload{n.after, n.before} {
		for _, k := range subjectKeys {
			if name := p.String(nameKey(k)); name != "" {
				return name
			}
		}
		if name := p.First("target_name", "full_name"); name != "" {
			return name
		}
	}
	return ""
}

func personName(p models.Payload) string {
	if name := strings.TrimSpace(p.String("first_name") + " " + p.String("last_name")); name != "" {
		return name
	}
	return p.First("full_name", "name")
}

func paymentCategoryName(n normalized, lk *Lookups) string {
	for _, id := range []string{
		n.entityID,
		n.after.String("payment_category_id"), n.after.String("category_id"),
		n.before.String("payment_category_id"), n.before.String("category_id"),
	} {
		if pc, ok := lk.PaymentCategories[id]; ok && pc.Name != "" {
			return pc.Name
		}
	}
	return ""
}

func leaveRequest(n normalized, lk *Lookups) (models.LeaveRequestSummary, bool) {
	ids := []string{n.after.String("leave_request_id"), n.before.String("leave_request_id")}
	if a, ok := lk.LeaveApprovals[n.entityID]; ok {
		ids = append([]string{models.Deref(a.LeaveRequestID)}, ids...)
	} else {
		ids = append([]string{n.entityID}, ids...)
	}
	for _, id := range ids {
		if r, ok := lk.LeaveRequests[id]; ok {
			return r, true
		}
	}
	return models.LeaveRequestSummary{}, false
}

func leaveRequesterName(n normalized, lk *Lookups) string {
	r, ok := leaveRequest(n, lk)
	if !ok {
		return ""
	}
	return lk.UserName(models.Deref(r.RequesterID))
}

func assetID(n normalized) string {
	return firstNonEmpty(n.after.String("asset_id"), n.before.String("asset_id"), n.entityID)
}

func taskID(n normalized) string {
	return firstNonEmpty(n.after.String("task_id"), n.before.String("task_id"), n.entityID)
}

func deviceID(n normalized) string {
	return firstNonEmpty(n.after.String("device_id"), n.before.String("device_id"), n.entityID)
}
